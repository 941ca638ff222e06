package translations_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/localization-service/modules/translations"
	"github.com/umbra-platform/localization-service/svc/catalog"
)

func newRouter(t *testing.T, opts ...func(*translations.RouterOptions)) http.Handler {
	t.Helper()

	c, err := catalog.New(map[string]map[string]string{
		"en": {"greeting": "Hello", "thanks": "Thank you"},
		"fr": {"greeting": "Bonjour", "thanks": "Merci"},
	})
	require.NoError(t, err)

	ro := translations.RouterOptions{
		Catalog:     c,
		ServiceName: "umbra-localization-service",
	}
	for _, opt := range opts {
		opt(&ro)
	}
	return translations.Router(ro)
}

func get(t *testing.T, h http.Handler, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec.Code, body
}

// assertEnvelope checks the envelope contract: success == true iff error is
// null iff data is not null, and all five keys are present.
func assertEnvelope(t *testing.T, body map[string]any) {
	t.Helper()
	for _, key := range []string{"success", "data", "message", "error", "meta"} {
		require.Contains(t, body, key)
	}
	if body["success"] == true {
		assert.Nil(t, body["error"])
		assert.NotNil(t, body["data"])
	} else {
		assert.NotNil(t, body["error"])
		assert.Nil(t, body["data"])
	}
}

func TestHealth(t *testing.T) {
	status, body := get(t, newRouter(t), "/health")

	assert.Equal(t, http.StatusOK, status)
	assertEnvelope(t, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "umbra-localization-service", data["service"])
}

func TestHealthReady(t *testing.T) {
	called := false
	h := newRouter(t, func(ro *translations.RouterOptions) {
		ro.ReadinessChecks = []func(context.Context) error{
			func(context.Context) error { called = true; return nil },
		}
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
	assert.True(t, called)
}

func TestHealthReadyFailingDependency(t *testing.T) {
	h := newRouter(t, func(ro *translations.RouterOptions) {
		ro.ReadinessChecks = []func(context.Context) error{
			func(context.Context) error { return errors.New("pg down") },
		}
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLocales(t *testing.T) {
	status, body := get(t, newRouter(t), "/locales")

	assert.Equal(t, http.StatusOK, status)
	assertEnvelope(t, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, []any{"en", "fr"}, data["locales"])

	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["count"])
}

func TestTranslationsForKnownLocale(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/en")

	assert.Equal(t, http.StatusOK, status)
	assertEnvelope(t, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, "en", data["locale"])
	assert.Equal(t, map[string]any{"greeting": "Hello", "thanks": "Thank you"}, data["translations"])

	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["count"])
}

func TestTranslationsForUnknownLocale(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/it")

	assert.Equal(t, http.StatusNotFound, status)
	assertEnvelope(t, body)
	assert.Equal(t, "locale_not_found", body["error"])
}

func TestTranslationByKey(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/fr/thanks")

	assert.Equal(t, http.StatusOK, status)
	assertEnvelope(t, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, "fr", data["locale"])
	assert.Equal(t, "thanks", data["key"])
	assert.Equal(t, "Merci", data["value"])
}

func TestTranslationByKeyMissingKey(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/fr/unknown-key")

	assert.Equal(t, http.StatusNotFound, status)
	assertEnvelope(t, body)
	assert.Equal(t, "key_not_found", body["error"])
}

func TestTranslationByKeyUnknownLocale(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/xx/greeting")

	assert.Equal(t, http.StatusNotFound, status)
	assertEnvelope(t, body)
	assert.Equal(t, "locale_not_found", body["error"])
}

func TestLocaleLookupIsCaseInsensitive(t *testing.T) {
	status, body := get(t, newRouter(t), "/translations/EN/greeting")

	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Hello", data["value"])
}

func TestSingleLocaleCatalog(t *testing.T) {
	c, err := catalog.New(map[string]map[string]string{
		"en": {"greeting": "Hello"},
	})
	require.NoError(t, err)

	h := translations.Router(translations.RouterOptions{
		Catalog:     c,
		ServiceName: "umbra-localization-service",
	})

	status, body := get(t, h, "/translations/en/greeting")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello", body["data"].(map[string]any)["value"])

	status, body = get(t, h, "/translations/fr/greeting")
	assert.Equal(t, http.StatusNotFound, status)
	assertEnvelope(t, body)
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locales", nil))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/locales", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterPanicsWithoutCatalog(t *testing.T) {
	assert.Panics(t, func() {
		translations.Router(translations.RouterOptions{})
	})
}
