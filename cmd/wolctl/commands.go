package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"wol-api/internal/catalog"
	"wol-api/internal/config"
	"wol-api/internal/dailytext"
	"wol-api/internal/event"
	"wol-api/internal/media"
	"wol-api/internal/upstream"
)

// app carries what every command needs; kong binds it into Run.
type app struct {
	cfg      config.Config
	up       *upstream.Client
	logger   *zap.Logger
	out      io.Writer
	strategy string
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type DailyTextCmd struct {
	File string `name:"file" short:"f" type:"existingfile" help:"Read HTML from this file instead of fetching today's page"`
}

func (c *DailyTextCmd) Run(a *app) error {
	strategy, err := dailytext.ParseStrategy(a.strategy)
	if err != nil {
		return err
	}

	svc := dailytext.NewService(
		dailytext.NewWOLClient(a.cfg.DailyTextBaseURL, a.up),
		dailytext.NewExtractor(),
		event.NopPublisher{},
		a.logger,
	)

	var res dailytext.Result
	if c.File != "" {
		b, err := os.ReadFile(c.File)
		if err != nil {
			return err
		}
		res, err = svc.FromHTML(string(b), strategy)
		if err != nil {
			return err
		}
	} else {
		res, err = svc.Today(context.Background(), strategy)
		if err != nil {
			return err
		}
	}
	return a.print(res)
}

type CatalogCmd struct {
	Language string `arg:"" optional:"" default:"E" help:"Catalog language code"`
}

func (c *CatalogCmd) Run(a *app) error {
	items, err := catalog.NewFetcher(a.cfg.CatalogBaseURL, a.up, a.logger).Fetch(context.Background(), c.Language)
	if err != nil {
		return err
	}
	return a.print(items)
}

type MediaCmd struct {
	Languages []string `name:"languages" short:"l" default:"E" sep:"," help:"Comma separated language codes"`
	Items     []string `name:"items" short:"i" required:"" sep:"," help:"Comma separated media item ids"`
}

func (c *MediaCmd) Run(a *app) error {
	agg := media.NewAggregator(
		media.NewMediatorClient(a.cfg.MediaItemBaseURL, a.up),
		a.cfg.MediaConcurrency,
		a.cfg.Grouping(),
		nil,
		a.logger,
	)

	groups, err := agg.Aggregate(context.Background(), trimAll(c.Languages), trimAll(c.Items))
	if err != nil {
		return err
	}
	return a.print(groups)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
