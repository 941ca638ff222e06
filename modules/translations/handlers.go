package translations

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/umbra-platform/localization-service/pkg/logger"
	"github.com/umbra-platform/localization-service/pkg/response"
	"github.com/umbra-platform/localization-service/svc/catalog"
)

// Error codes surfaced in the envelope's error field.
const (
	codeLocaleNotFound = "locale_not_found"
	codeKeyNotFound    = "key_not_found"
	codeInternal       = "internal_error"
)

type handlers struct {
	catalog *catalog.Catalog
	service string
	log     *slog.Logger
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request, resp *response.Response) {
	if err := resp.Render(w); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to render response", logger.Error(err))
	}
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, response.OK(
		map[string]any{
			"status":  "healthy",
			"service": h.service,
		},
		response.WithMessage("Service is healthy"),
	))
}

func (h *handlers) locales(w http.ResponseWriter, r *http.Request) {
	locales := h.catalog.Locales()
	h.render(w, r, response.OK(
		map[string]any{"locales": locales},
		response.WithMessage("Available locales retrieved"),
		response.WithMeta(map[string]any{"count": len(locales)}),
	))
}

func (h *handlers) translationsForLocale(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")

	table, err := h.catalog.Translations(locale)
	if err != nil {
		h.renderLookupError(w, r, err, locale, "")
		return
	}

	h.render(w, r, response.OK(
		map[string]any{
			"locale":       locale,
			"translations": table,
		},
		response.WithMessage("Translations retrieved"),
		response.WithMeta(map[string]any{"count": len(table)}),
	))
}

func (h *handlers) translationByKey(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	key := chi.URLParam(r, "key")

	value, err := h.catalog.Translation(locale, key)
	if err != nil {
		h.renderLookupError(w, r, err, locale, key)
		return
	}

	h.render(w, r, response.OK(
		map[string]any{
			"locale": locale,
			"key":    key,
			"value":  value,
		},
		response.WithMessage("Translation retrieved"),
	))
}

func (h *handlers) renderLookupError(w http.ResponseWriter, r *http.Request, err error, locale, key string) {
	switch {
	case errors.Is(err, catalog.ErrLocaleNotFound):
		h.render(w, r, response.NotFound(codeLocaleNotFound,
			response.WithMessage(fmt.Sprintf("Unknown locale %q", locale)),
		))
	case errors.Is(err, catalog.ErrKeyNotFound):
		h.render(w, r, response.NotFound(codeKeyNotFound,
			response.WithMessage(fmt.Sprintf("Key %q not found for locale %q", key, locale)),
		))
	default:
		// The catalog only returns not-found errors today; anything else is a bug.
		h.log.ErrorContext(r.Context(), "Unexpected catalog error", logger.Error(err), logger.Locale(locale))
		h.render(w, r, response.Fail(codeInternal,
			response.WithMessage("Internal server error"),
		))
	}
}
