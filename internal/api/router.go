package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"wol-api/internal/catalog"
	"wol-api/internal/dailytext"
	"wol-api/internal/media"
)

type DailyTextService interface {
	Today(ctx context.Context, strategy dailytext.Strategy) (dailytext.Result, error)
	FromHTML(html string, strategy dailytext.Strategy) (dailytext.Result, error)
}

type CatalogFetcher interface {
	Fetch(ctx context.Context, language string) ([]catalog.Item, error)
}

type MediaAggregator interface {
	Aggregate(ctx context.Context, languages, ids []string) ([]media.LanguageGroup, error)
}

type Handlers struct {
	daily   DailyTextService
	catalog CatalogFetcher
	media   MediaAggregator
	logger  *zap.Logger
}

func NewHandlers(daily DailyTextService, cat CatalogFetcher, med MediaAggregator, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handlers{
		daily:   daily,
		catalog: cat,
		media:   med,
		logger:  logger,
	}
}

// NewRouter maps every route onto h.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, accessLog(h.logger))

	r.HandleFunc("/daily-text", h.dailyText(dailytext.FirstMatch)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/dailytext", h.dailyText(dailytext.DatedIndex)).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/catalog", h.catalogItems).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{language}", h.catalogItems).Methods(http.MethodGet)

	r.HandleFunc("/mediaitems", h.mediaItems).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/mediaitem/{language}/{mediaItem}", h.mediaItem).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
