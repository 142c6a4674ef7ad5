package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vr33ni-dev/gke-backend/db"
)

const greeting = "Hello from GKE Backend"

// Prober runs one database reachability check.
type Prober interface {
	Probe(ctx context.Context) db.Result
}

type Handler struct {
	DB  Prober
	Cfg *Config
}

// GET /
func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(greeting))
}

// GET /api
func (h *Handler) dbCheck(w http.ResponseWriter, r *http.Request) {
	res := h.DB.Probe(r.Context())
	if !res.OK() {
		slog.Warn("db probe failed",
			"db_addr", h.Cfg.DB.Addr(),
			"error", res.Err,
		)
		// every failure kind maps to 500
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"db":    "error",
			"error": res.Err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"db":   "ok",
		"time": res.Time,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
