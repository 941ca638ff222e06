package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper for every API reply. All five fields are
// always serialized so clients see a fixed shape: on success `data` is set
// and `error` is null, on failure `data` is null and `error` carries a
// machine-readable code.
type Envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data"`
	Message *string        `json:"message"`
	Error   *string        `json:"error"`
	Meta    map[string]any `json:"meta"`
}

// Response couples an envelope with the HTTP status it renders with.
type Response struct {
	status int
	body   Envelope
}

// Status returns the HTTP status code the response renders with.
func (r *Response) Status() int { return r.status }

// Body returns the envelope that will be serialized.
func (r *Response) Body() Envelope { return r.body }

// Render writes the envelope as JSON with the configured status code.
func (r *Response) Render(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(r.status)
	return json.NewEncoder(w).Encode(r.body)
}

// Option configures a response.
type Option func(*Response)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) Option {
	return func(r *Response) { r.status = status }
}

// WithMessage sets the human-readable message field.
func WithMessage(msg string) Option {
	return func(r *Response) { r.body.Message = &msg }
}

// WithMeta attaches additional metadata to the response.
func WithMeta(meta map[string]any) Option {
	return func(r *Response) { r.body.Meta = meta }
}

// OK creates a success response with the given payload. Defaults to 200.
func OK(data any, opts ...Option) *Response {
	r := &Response{
		status: http.StatusOK,
		body: Envelope{
			Success: true,
			Data:    data,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fail creates a failure response carrying an error code. Defaults to 500;
// callers set the appropriate status with WithStatus.
func Fail(code string, opts ...Option) *Response {
	r := &Response{
		status: http.StatusInternalServerError,
		body: Envelope{
			Success: false,
			Error:   &code,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NotFound creates a 404 failure response carrying an error code.
func NotFound(code string, opts ...Option) *Response {
	return Fail(code, append([]Option{WithStatus(http.StatusNotFound)}, opts...)...)
}
