package translations

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/umbra-platform/localization-service/pkg/httpserver"
	"github.com/umbra-platform/localization-service/pkg/requestid"
	"github.com/umbra-platform/localization-service/svc/catalog"
)

// RouterOptions configures the translations router.
type RouterOptions struct {
	// Catalog is the loaded translation catalog. Required.
	Catalog *catalog.Catalog
	// ServiceName is reported by the health endpoint.
	ServiceName string
	// Logger receives request-scoped log records. Optional.
	Logger *slog.Logger
	// ReadinessChecks are dependency probes run by /health/ready.
	ReadinessChecks []func(context.Context) error
}

// Router creates the HTTP surface of the localization service:
//
//	GET /health                          liveness, fixed success envelope
//	GET /health/ready                    dependency readiness probe
//	GET /locales                         available locale codes
//	GET /translations/{locale}           full table for one locale
//	GET /translations/{locale}/{key}     single translated string
func Router(opts RouterOptions) chi.Router {
	if opts.Catalog == nil {
		panic("translations.Router: nil catalog")
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := &handlers{
		catalog: opts.Catalog,
		service: opts.ServiceName,
		log:     log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(allowCORS)

	r.Get("/health", h.health)
	r.Get("/health/ready", httpserver.ReadinessHandler(log, opts.ReadinessChecks...))
	r.Get("/locales", h.locales)
	r.Route("/translations", func(r chi.Router) {
		r.Get("/{locale}", h.translationsForLocale)
		r.Get("/{locale}/{key}", h.translationByKey)
	})

	return r
}
