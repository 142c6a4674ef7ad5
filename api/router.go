package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouterWithConfig(prober Prober, cfg *Config) *chi.Mux {
	h := &Handler{DB: prober, Cfg: cfg}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Use(chimw.Recoverer)

	// go-chi/cors allows every origin when the list is empty, so only mount
	// it when origins are configured.
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins, // e.g. ["https://frontend.example.com"]
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/", h.home)
	r.Get("/api", h.dbCheck)

	return r
}
