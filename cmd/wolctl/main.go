// Command wolctl runs the daily-text extractor, catalog fetcher and media aggregator from
// the command line and prints their JSON to stdout.
package main

import (
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"wol-api/internal/config"
	"wol-api/internal/logging"
	"wol-api/internal/upstream"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Strategy string `name:"strategy" short:"s" default:"first-match" enum:"first-match,dated-index" help:"Daily-text extraction strategy"`

	DailyText DailyTextCmd `cmd:"" name:"daily-text" help:"Extract today's daily text from the web or a local HTML file"`
	Catalog   CatalogCmd   `cmd:"" help:"List the video items of a language catalog"`
	Media     MediaCmd     `cmd:"" help:"Aggregate media items for one or more languages"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wolctl"),
		kong.Description("WOL daily text and media catalog tool"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	ctx.FatalIfErrorf(err)

	logger, err := logging.New(cfg.LogLevel)
	ctx.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()

	a := &app{
		cfg:      cfg,
		up:       upstream.NewClient(&http.Client{Timeout: cfg.Timeout}, logger),
		logger:   logger,
		out:      os.Stdout,
		strategy: CLI.Strategy,
	}

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
