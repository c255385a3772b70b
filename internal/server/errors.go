package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Detail     string `json:"detail,omitempty"`
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ErrInvalidRequest describes a malformed or invalid request body.
func ErrInvalidRequest(detail string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request",
		Detail:     detail,
	}
}

// ErrUpstreamFetch describes a failed page fetch. The upstream page is the
// only collaborator whose failure reaches the caller.
func ErrUpstreamFetch(detail string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadGateway,
		Message:    "failed to fetch profile page",
		Detail:     detail,
	}
}

// ErrInternal describes everything else.
func ErrInternal(detail string) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal error",
		Detail:     detail,
	}
}
