package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPStatus maps an error's code to the response status the handlers
// return. Precondition-style failures all collapse to 400 with the
// human-readable message; anything unrecognized is treated as internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case CodeUnauthenticated, CodePermissionDenied:
		return http.StatusUnauthorized
	case CodeNotFound, CodeAlreadyExists, CodeFailedPrecondition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the human-readable reason carried by an AppError, or a
// generic fallback for unexpected errors so internals never leak to clients.
func Message(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
