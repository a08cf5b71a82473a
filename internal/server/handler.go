package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ClementV78/TimeReach/internal/models"
)

// Finder runs one search request through the pipeline.
type Finder interface {
	FindPlaces(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// PlacesHandler serves the places search endpoint.
type PlacesHandler struct {
	finder Finder       // Search pipeline
	log    *slog.Logger // Logger for logging operations
}

// NewPlacesHandler returns a handler backed by the given pipeline.
func NewPlacesHandler(finder Finder, log *slog.Logger) *PlacesHandler {
	return &PlacesHandler{finder: finder, log: log}
}

// errorResponse is the JSON envelope for failures.
type errorResponse struct {
	Detail string `json:"detail"`
}

// FindPlaces handles GET /places. The origin comes from the location query
// parameter or the lat and lon pair; minutes, mode, type and keyword shape
// the search. Invalid input answers 422, upstream failures 503.
func (ph *PlacesHandler) FindPlaces(wrt http.ResponseWriter, req *http.Request) {
	search, err := parseSearchRequest(req)
	if err != nil {
		ph.writeError(req.Context(), wrt, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := ph.finder.FindPlaces(req.Context(), search)
	if err != nil {
		status := statusForError(err)
		ph.log.ErrorContext(req.Context(), "Search failed", "status", status, "error", err)
		ph.writeError(req.Context(), wrt, status, err.Error())

		return
	}

	ph.writeJSON(req.Context(), wrt, http.StatusOK, resp)
}

// parseSearchRequest decodes the query string into the canonical request
// shape. Parsing here is purely syntactic; range and filter rules are
// enforced by the pipeline.
func parseSearchRequest(req *http.Request) (models.SearchRequest, error) {
	query := req.URL.Query()

	search := models.SearchRequest{
		Minutes: models.DefaultTravelMinutes,
		Mode:    models.DefaultTravelMode,
		Type:    query.Get("type"),
		Keyword: query.Get("keyword"),
	}

	if location := query.Get("location"); location != "" {
		search.Location = &location
	}

	if raw := query.Get("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.SearchRequest{}, fmt.Errorf("invalid lat: %q", raw)
		}

		search.Latitude = &lat
	}

	if raw := query.Get("lon"); raw != "" {
		lon, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.SearchRequest{}, fmt.Errorf("invalid lon: %q", raw)
		}

		search.Longitude = &lon
	}

	if raw := query.Get("minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return models.SearchRequest{}, fmt.Errorf("invalid minutes: %q", raw)
		}

		search.Minutes = minutes
	}

	if raw := query.Get("mode"); raw != "" {
		mode, err := models.ParseTravelMode(raw)
		if err != nil {
			return models.SearchRequest{}, err
		}

		search.Mode = mode
	}

	return search, nil
}

// statusForError maps pipeline failure kinds onto HTTP status codes.
// Unrecognized errors answer 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUpstream):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (ph *PlacesHandler) writeJSON(ctx context.Context, wrt http.ResponseWriter, status int, payload any) {
	wrt.Header().Set("Content-Type", "application/json")
	wrt.WriteHeader(status)

	if err := json.NewEncoder(wrt).Encode(payload); err != nil {
		ph.log.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}

func (ph *PlacesHandler) writeError(ctx context.Context, wrt http.ResponseWriter, status int, detail string) {
	ph.writeJSON(ctx, wrt, status, errorResponse{Detail: detail})
}
