package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/localization-service/pkg/response"
)

func render(t *testing.T, r *response.Response) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestOKEnvelopeShape(t *testing.T) {
	status, body := render(t, response.OK(
		map[string]any{"locale": "en"},
		response.WithMessage("Translations retrieved"),
		response.WithMeta(map[string]any{"count": 1}),
	))

	assert.Equal(t, http.StatusOK, status)

	// Fixed five-key shape, every field present.
	for _, key := range []string{"success", "data", "message", "error", "meta"} {
		assert.Contains(t, body, key)
	}

	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
	assert.Nil(t, body["error"])
	assert.Equal(t, "Translations retrieved", body["message"])
	assert.Equal(t, map[string]any{"count": float64(1)}, body["meta"])
}

func TestFailEnvelopeShape(t *testing.T) {
	status, body := render(t, response.NotFound("locale_not_found",
		response.WithMessage(`Unknown locale "it"`),
	))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["data"])
	assert.Equal(t, "locale_not_found", body["error"])
	assert.Equal(t, `Unknown locale "it"`, body["message"])
	assert.Nil(t, body["meta"])
}

func TestSuccessErrorExclusivity(t *testing.T) {
	// success == true iff error == nil iff data != nil
	cases := []*response.Response{
		response.OK("Hello"),
		response.OK(map[string]any{"locales": []string{"en"}}),
		response.Fail("key_not_found"),
		response.NotFound("locale_not_found"),
	}

	for _, r := range cases {
		body := r.Body()
		if body.Success {
			assert.Nil(t, body.Error)
			assert.NotNil(t, body.Data)
		} else {
			assert.NotNil(t, body.Error)
			assert.Nil(t, body.Data)
		}
	}
}

func TestFailDefaultsTo500(t *testing.T) {
	status, _ := render(t, response.Fail("internal_error"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestWithStatusOverride(t *testing.T) {
	status, _ := render(t, response.Fail("teapot", response.WithStatus(http.StatusTeapot)))
	assert.Equal(t, http.StatusTeapot, status)
}
