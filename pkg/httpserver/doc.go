// Package httpserver wraps net/http.Server with graceful shutdown, option
// based configuration and optional slog logging.
//
// A Server is created with New (functional options) or NewFromConfig (env
// tagged Config struct). Run blocks until the context is cancelled, an
// interrupt/termination signal arrives or the listener fails; shutdown is
// bounded by the configured ShutdownTimeout. Hooks registered via
// WithStartHook/WithStopHook fire around the listening lifecycle.
//
// ReadinessHandler builds a probe endpoint from dependency check functions,
// returning 200 "READY" when all pass and 503 "NOT_READY" otherwise. With no
// checks it degrades to a liveness probe returning "ALIVE".
package httpserver
