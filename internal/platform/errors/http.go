package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodePlayStageInvalid:
		return http.StatusBadRequest
	case CodeSessionMissing, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeSessionInvalid:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeGameLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf extracts the domain code from an error chain, or CodeUnknown.
func CodeOf(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// HTTPStatusOf resolves the HTTP status for any error.
func HTTPStatusOf(err error) int {
	return CodeOf(err).HTTPStatus()
}
