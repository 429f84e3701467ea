package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"gourmet-burgers/agg-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	dayLayout       = "2006-01-02"
	defaultTopLimit = 10
)

type Handler struct {
	Stats service.StatsReader
}

func NewHandler(stats service.StatsReader) *Handler {
	return &Handler{Stats: stats}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/stats/daily", h.getDailyStats).Methods("GET")
	r.HandleFunc("/api/stats/daily/ingredients", h.getTopIngredients).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "agg-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getDailyStats(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	stats, err := h.Stats.DailyStats(r.Context(), day)
	if err != nil {
		log.Printf("Failed to read stats for %s: %v", day, err)
		http.Error(w, "Failed to read stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

func (h *Handler) getTopIngredients(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	limit := defaultTopLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	stats, err := h.Stats.DailyStats(r.Context(), day)
	if err != nil {
		log.Printf("Failed to read stats for %s: %v", day, err)
		http.Error(w, "Failed to read stats", http.StatusInternalServerError)
		return
	}
	top := stats.Ingredients
	if len(top) > limit {
		top = top[:limit]
	}
	writeJSON(w, top)
}

// dayParam reads ?day=, defaulting to the current UTC day.
func dayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := r.URL.Query().Get("day")
	if day == "" {
		return time.Now().UTC().Format(dayLayout), true
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		http.Error(w, "Invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
		return "", false
	}
	return day, true
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
