package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Routes registers every endpoint against the handler set. Split from
// OpenRoutes so tests can drive the mux directly.
func Routes(h *Handlers) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", h.home)
	router.HandleFunc("POST /predict", h.predict)
	router.HandleFunc("GET /admin", h.admin)
	router.HandleFunc("GET /api/stats", h.apiStats)

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return router
}

func OpenRoutes(port int, h *Handlers) error {
	log.Debug("Routes opened")

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: enableCORS(Routes(h)),
	}

	log.Infof("Starting server on port :%d", port)
	return server.ListenAndServe()
}
