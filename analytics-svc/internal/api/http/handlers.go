package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"overcooked-storefront/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/analytics/revenue", h.getRevenue).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, false
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, true
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
		return
	}
	report, err := h.Analytics.TopToday(r.Context(), limit)
	if err != nil {
		log.Printf("[analytics-svc] ERROR: %v", err)
		http.Error(w, "analytics unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
		return
	}
	report, err := h.Analytics.TopAllTime(r.Context(), limit)
	if err != nil {
		log.Printf("[analytics-svc] ERROR: %v", err)
		http.Error(w, "analytics unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	report, err := h.Analytics.Revenue(r.Context(), r.URL.Query().Get("day"))
	if errors.Is(err, service.ErrInvalidDay) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[analytics-svc] ERROR: %v", err)
		http.Error(w, "analytics unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
