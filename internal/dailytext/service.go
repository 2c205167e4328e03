package dailytext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"wol-api/internal/apperr"
)

const EventRetrieved = "dailytext.retrieved"

type PageFetcher interface {
	FetchDay(ctx context.Context, day time.Time) (*goquery.Document, error)
}

type Publisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

type Service struct {
	pages     PageFetcher
	extractor *Extractor
	publisher Publisher
	logger    *zap.Logger
}

func NewService(pages PageFetcher, extractor *Extractor, publisher Publisher, logger *zap.Logger) *Service {
	if extractor == nil {
		extractor = NewExtractor()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		pages:     pages,
		extractor: extractor,
		publisher: publisher,
		logger:    logger,
	}
}

// Today fetches today's page and extracts it with strategy.
func (s *Service) Today(ctx context.Context, strategy Strategy) (Result, error) {
	today := s.extractor.Now()

	doc, err := s.pages.FetchDay(ctx, today)
	if err != nil {
		return Result{}, fmt.Errorf("fetch daily text for %s: %w", today.Format(time.DateOnly), err)
	}

	res, err := s.extractor.Extract(doc, strategy)
	if err != nil {
		return Result{}, err
	}

	s.logger.Info("daily text retrieved",
		zap.String("strategy", strategy.String()),
		zap.String("date", res.DateText),
		zap.String("reference", res.ScriptureReference))

	s.notify(ctx, RetrievedEvent{
		Strategy: strategy.String(),
		Date:     today.Format(time.DateOnly),
		Result:   res,
	})

	return res, nil
}

// FromHTML extracts from caller-supplied markup. Mangled em-dashes are repaired before
// the markup is parsed.
func (s *Service) FromHTML(html string, strategy Strategy) (Result, error) {
	if strings.TrimSpace(html) == "" {
		return Result{}, apperr.InvalidInput("no HTML content provided")
	}
	return s.extractor.ExtractHTML(strings.NewReader(RepairMojibake(html)), strategy)
}

func (s *Service) notify(ctx context.Context, ev RetrievedEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, EventRetrieved, ev); err != nil {
		s.logger.Warn("failed publishing daily text event", zap.Error(err))
	}
}
