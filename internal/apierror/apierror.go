// Package apierror provides the response envelopes for API errors. All errors
// returned to clients go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Campo and ProductoID locate the offending input when the error is scoped to
// one field of one planilla line, so the grid can highlight the exact cell.
type APIError struct {
	Detail     string `json:"detail"`
	Campo      string `json:"campo,omitempty"`
	ProductoID string `json:"producto_id,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NewCampo builds an error envelope scoped to one field, optionally pinned to
// a product line (empty productoID for header-level fields).
func NewCampo(msg, campo, productoID string) *APIError {
	return &APIError{Detail: msg, Campo: campo, ProductoID: productoID}
}

// ValidationError wraps multiple field errors from request-shape validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
