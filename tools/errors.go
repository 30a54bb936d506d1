package tools

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/morikuni/failure/v2"

	"github.com/betahubio/betahub-mcp/api"
)

// ErrorCode defines error types for tool operations
type ErrorCode string

const (
	// ErrValidation marks malformed tool input caught before any network call
	ErrValidation ErrorCode = "ValidationError"
	// ErrNotFound marks a 404 from the API reclassified to the requested resource
	ErrNotFound ErrorCode = "NotFoundError"
	// ErrAccessDenied marks a 403 from the API
	ErrAccessDenied ErrorCode = "AccessDeniedError"
	// ErrAPI marks any other API or transport failure
	ErrAPI ErrorCode = "APIError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// resourceRef names the resource reported when a call is reclassified.
type resourceRef struct {
	kind string
	id   string
}

// translateAPIError reclassifies a client error by its HTTP status: 404
// becomes a not-found error for notFound, 403 an access-denied error for
// denied, and everything else a generic failure naming the operation.
func translateAPIError(err error, op string, notFound, denied resourceRef) error {
	var se *api.StatusError
	if errors.As(err, &se) {
		switch se.Status {
		case http.StatusNotFound:
			return failure.New(ErrNotFound,
				failure.Message(fmt.Sprintf("%s %s not found", notFound.kind, notFound.id)),
				failure.Context{"endpoint": se.Endpoint},
			)
		case http.StatusForbidden:
			return failure.New(ErrAccessDenied,
				failure.Message(fmt.Sprintf("Access denied to %s %s", denied.kind, denied.id)),
				failure.Context{"endpoint": se.Endpoint},
			)
		}
	}
	return failure.New(ErrAPI,
		failure.Message(fmt.Sprintf("Failed to %s: %s", op, err.Error())),
	)
}

// validationError wraps a validator failure into the tool error taxonomy.
func validationError(err error) error {
	return failure.New(ErrValidation, failure.Message("Invalid input: "+err.Error()))
}
