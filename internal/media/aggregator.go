package media

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wol-api/internal/metrics"
)

const EventAggregated = "media.aggregated"

type ItemFetcher interface {
	FetchItem(ctx context.Context, language, id string) (MediatorResponse, error)
}

type Publisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

type Aggregator struct {
	client      ItemFetcher
	concurrency int // <= 0 is unlimited
	grouping    Grouping
	publisher   Publisher
	logger      *zap.Logger
}

func NewAggregator(client ItemFetcher, concurrency int, grouping Grouping, publisher Publisher, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Aggregator{
		client:      client,
		concurrency: concurrency,
		grouping:    grouping,
		publisher:   publisher,
		logger:      logger,
	}
}

type slot struct {
	language string
	record   Record
	ok       bool
}

// Aggregate fetches every language x id pair and returns one group per language, in the
// order given. Fetches run concurrently but records keep language-major, id-minor order.
// The first failed fetch cancels the rest and is returned as *ItemError.
func (a *Aggregator) Aggregate(ctx context.Context, languages, ids []string) ([]LanguageGroup, error) {
	slots := make([]slot, len(languages)*len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	for li, language := range languages {
		for ii, id := range ids {
			i := li*len(ids) + ii
			language, id := language, id
			g.Go(func() error {
				resp, err := a.client.FetchItem(gctx, language, id)
				if err != nil {
					return &ItemError{Language: language, ID: id, Err: err}
				}

				slots[i].language = language
				if len(resp.Media) == 0 {
					a.logger.Warn("media item has no entries",
						zap.String("language", language),
						zap.String("id", id))
					return nil
				}
				slots[i].record = MapMediatorItem(resp.Media[0])
				slots[i].ok = true
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("media aggregation failed", zap.Error(err))
		return nil, err
	}

	groups := a.group(languages, slots)

	var total int
	for _, s := range slots {
		if s.ok {
			total++
		}
	}
	metrics.AddMediaRecords(total)
	a.logger.Info("media aggregated",
		zap.Strings("languages", languages),
		zap.Int("items", len(ids)),
		zap.Int("records", total),
		zap.Stringer("grouping", a.grouping))

	a.notify(ctx, AggregatedEvent{Languages: languages, MediaItems: ids, Records: total})

	return groups, nil
}

func (a *Aggregator) group(languages []string, slots []slot) []LanguageGroup {
	all := make([]Record, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			all = append(all, s.record)
		}
	}

	groups := make([]LanguageGroup, 0, len(languages))
	for _, language := range languages {
		g := LanguageGroup{LanguageCode: language}

		switch a.grouping {
		case GroupPerLanguage:
			g.Media = make([]Record, 0)
			for _, s := range slots {
				if s.ok && s.language == language {
					g.Media = append(g.Media, s.record)
				}
			}
		default:
			g.Media = slices.Clone(all)
		}

		groups = append(groups, g)
	}
	return groups
}

func (a *Aggregator) notify(ctx context.Context, ev AggregatedEvent) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, EventAggregated, ev); err != nil {
		a.logger.Warn("failed publishing media event", zap.Error(err))
	}
}
