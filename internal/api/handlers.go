package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"wol-api/internal/apperr"
	"wol-api/internal/catalog"
	"wol-api/internal/dailytext"
)

const (
	msgNoHTML       = "No HTML content provided"
	msgFetchFailed  = "Failed to retrieve the page from the URL"
	defaultLanguage = "E"
)

type dailyTextRequest struct {
	HTML string `json:"html"`
}

type mediaItemsRequest struct {
	Languages  string `json:"languages"`
	MediaItems string `json:"mediaItems"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) dailyText(strategy dailytext.Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var req dailyTextRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.HTML) == "" {
				writeError(w, http.StatusBadRequest, msgNoHTML)
				return
			}

			res, err := h.daily.FromHTML(req.HTML, strategy)
			if err != nil {
				h.fail(w, r, err, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, res)
			return
		}

		res, err := h.daily.Today(r.Context(), strategy)
		if err != nil {
			h.fail(w, r, err, msgFetchFailed)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (h *Handlers) catalogItems(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]
	if language == "" {
		language = catalog.DefaultLanguage
	}

	items, err := h.catalog.Fetch(r.Context(), language)
	if err != nil {
		h.fail(w, r, err, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) mediaItems(w http.ResponseWriter, r *http.Request) {
	req := mediaItemsRequest{
		Languages:  r.URL.Query().Get("languages"),
		MediaItems: r.URL.Query().Get("mediaItems"),
	}

	if r.Method == http.MethodPost {
		var body mediaItemsRequest
		err := json.NewDecoder(r.Body).Decode(&body)
		switch {
		case errors.Is(err, io.EOF):
			// empty body, query string only
		case err != nil:
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		default:
			if body.Languages != "" {
				req.Languages = body.Languages
			}
			if body.MediaItems != "" {
				req.MediaItems = body.MediaItems
			}
		}
	}

	languages := splitList(req.Languages)
	if len(languages) == 0 {
		languages = []string{defaultLanguage}
	}
	h.aggregate(w, r, languages, splitList(req.MediaItems))
}

func (h *Handlers) mediaItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.aggregate(w, r, []string{vars["language"]}, []string{vars["mediaItem"]})
}

func (h *Handlers) aggregate(w http.ResponseWriter, r *http.Request, languages, ids []string) {
	groups, err := h.media.Aggregate(r.Context(), languages, ids)
	if err != nil {
		h.fail(w, r, err, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusBadRequest {
		msg = err.Error()
	}

	h.logger.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Int("status", status),
		zap.Error(err))
	writeError(w, status, msg)
}

// splitList splits a comma separated value and drops blank entries.
func splitList(v string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
