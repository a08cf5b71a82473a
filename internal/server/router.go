package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// New assembles the HTTP surface: the places search endpoint, the service
// info root and the monitoring endpoints, wrapped with request logging and
// permissive CORS for browser clients.
func New(finder Finder, reg *prometheus.Registry, log *slog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(log))

	handler := NewPlacesHandler(finder, log)
	router.HandleFunc("/", Info).Methods(http.MethodGet)
	router.HandleFunc("/places", handler.FindPlaces).Methods(http.MethodGet)
	router.HandleFunc("/healthz", Healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// All origins are allowed; the API is read-only and unauthenticated.
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(router)
}

// Info handles GET /, answering basic service information and the available
// endpoints.
func Info(wrt http.ResponseWriter, _ *http.Request) {
	wrt.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(wrt).Encode(map[string]string{
		"name":        "TimeReach API",
		"description": "Find places reachable within a travel-time budget",
		"version":     "1.0.0",
		"places":      "/places",
		"health":      "/healthz",
		"metrics":     "/metrics",
	})
}

// Healthz handles GET /healthz. The service holds no connections or state,
// so liveness is a static OK.
func Healthz(wrt http.ResponseWriter, _ *http.Request) {
	wrt.WriteHeader(http.StatusOK)
	_, _ = wrt.Write([]byte("OK"))
}
