package server

import (
	"net/http"

	"finch/internal/database"

	"github.com/charmbracelet/log"
)

func (h *Handlers) admin(w http.ResponseWriter, r *http.Request) {
	stats, err := database.GetStatistics()
	if err != nil {
		log.Error("Failed to load dashboard statistics", "error", err)
		http.Error(w, "Admin dashboard error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "admin.html", stats)
}

// apiStats serves the same aggregates as the dashboard, as JSON for the
// external metrics consumer.
func (h *Handlers) apiStats(w http.ResponseWriter, r *http.Request) {
	stats, err := database.GetStatistics()
	if err != nil {
		log.Error("Failed to load statistics", "error", err)
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
