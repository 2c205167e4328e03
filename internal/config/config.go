package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"wol-api/internal/media"
)

type Config struct {
	HTTPAddr         string        `yaml:"httpAddr"`
	DailyTextBaseURL string        `yaml:"dailyTextBaseUrl"`
	CatalogBaseURL   string        `yaml:"catalogBaseUrl"`
	MediaItemBaseURL string        `yaml:"mediaItemBaseUrl"`
	Timeout          time.Duration `yaml:"timeout"`
	MediaConcurrency int           `yaml:"mediaConcurrency"` // <= 0 is unlimited
	MediaGrouping    string        `yaml:"mediaGrouping"`    // shared | per-language
	LogLevel         string        `yaml:"logLevel"`
	RabbitURI        string        `yaml:"rabbitUri"` // empty disables event publishing
	RabbitExchange   string        `yaml:"rabbitExchange"`
}

const (
	ConfigFile        = "CONFIG_FILE"
	HTTPAddr          = "HTTP_ADDR"
	DailyTextBaseURL  = "DAILY_TEXT_BASE_URL"
	CatalogBaseURL    = "CATALOG_BASE_URL"
	MediaItemBaseURL  = "MEDIA_ITEM_BASE_URL"
	Timeout           = "TIMEOUT"
	MediaConcurrency  = "MEDIA_CONCURRENCY"
	MediaGrouping     = "MEDIA_GROUPING"
	LogLevel          = "LOG_LEVEL"
	RabbitURIEnv      = "RABBIT_URI"
	RabbitExchangeEnv = "RABBIT_EXCHANGE"
)

func Defaults() Config {
	return Config{
		HTTPAddr:         ":8080",
		DailyTextBaseURL: "https://wol.jw.org/en/wol/dt/r1/lp-e/",
		CatalogBaseURL:   "https://app.jw-cdn.org/catalogs/media/",
		MediaItemBaseURL: "https://b.jw-cdn.org/apis/mediator/v1/media-items/",
		Timeout:          10 * time.Second,
		MediaConcurrency: 4,
		MediaGrouping:    "shared",
		LogLevel:         "info",
		RabbitExchange:   "wol.events",
	}
}

// FromEnv starts from Defaults, applies the YAML file named by CONFIG_FILE if set, then
// applies environment overrides.
func FromEnv() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv(ConfigFile); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid %v: %w", ConfigFile, err)
		}
	}

	cfg.HTTPAddr = getEnv(HTTPAddr, cfg.HTTPAddr)
	cfg.DailyTextBaseURL = getEnv(DailyTextBaseURL, cfg.DailyTextBaseURL)
	cfg.CatalogBaseURL = getEnv(CatalogBaseURL, cfg.CatalogBaseURL)
	cfg.MediaItemBaseURL = getEnv(MediaItemBaseURL, cfg.MediaItemBaseURL)
	cfg.MediaGrouping = getEnv(MediaGrouping, cfg.MediaGrouping)
	cfg.LogLevel = getEnv(LogLevel, cfg.LogLevel)
	cfg.RabbitURI = getEnv(RabbitURIEnv, cfg.RabbitURI)
	cfg.RabbitExchange = getEnv(RabbitExchangeEnv, cfg.RabbitExchange)

	var err error
	if cfg.MediaConcurrency, err = getEnvInt(MediaConcurrency, cfg.MediaConcurrency); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", MediaConcurrency, err)
	}
	if cfg.Timeout, err = getEnvDuration(Timeout, cfg.Timeout); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, err)
	}

	if _, err := media.ParseGrouping(cfg.MediaGrouping); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", MediaGrouping, err)
	}
	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, errors.New("must be positive"))
	}

	return cfg, nil
}

// Grouping returns the parsed MediaGrouping; FromEnv has already validated it.
func (c Config) Grouping() media.Grouping {
	g, _ := media.ParseGrouping(c.MediaGrouping)
	return g
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return i, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}
