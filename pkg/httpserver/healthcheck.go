package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/umbra-platform/localization-service/pkg/logger"
)

// ReadinessHandler returns an HTTP handler usable for both liveness and
// readiness probes.
//
//   - Liveness: with no dependency functions supplied the handler simply
//     returns 200 OK with body "ALIVE".
//   - Readiness: with one or more dependency functions supplied each function
//     is executed; if all succeed the handler returns 200 OK with body
//     "READY", otherwise 503 Service Unavailable with body "NOT_READY".
func ReadinessHandler(log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		ctx := r.Context()
		for _, f := range funcs {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
