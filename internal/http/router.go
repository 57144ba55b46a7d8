package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/nomadmatch/internal/http/auth"
	"github.com/MrJamesThe3rd/nomadmatch/internal/http/citypref"
	"github.com/MrJamesThe3rd/nomadmatch/internal/http/health"
	"github.com/MrJamesThe3rd/nomadmatch/internal/http/match"
)

// Options carries the optional parts of the router. A nil field leaves its routes unmounted.
type Options struct {
	Logger      *slog.Logger
	Auth        *auth.Authenticator
	Preferences *citypref.Handler
	Metrics     http.Handler
}

func New(
	healthV1 *health.Handler,
	matchV1 *match.Handler,
	opts Options,
) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authn := opts.Auth
	if authn == nil {
		authn = auth.New("")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", healthV1.Routes)

		r.Route("/match", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Use(authn.Optional)
			matchV1.Routes(r)
		})

		if opts.Preferences != nil {
			r.Route("/preferences", func(r chi.Router) {
				r.Use(authn.Required)
				opts.Preferences.Routes(r)
			})
		}
	})

	return router
}
