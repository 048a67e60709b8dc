package errors

import (
	"errors"
	"net/http"
)

// Exception is an expected, caller-recoverable failure carrying the HTTP
// status it maps to. Details is optional structured context for the client.
type Exception struct {
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func Details(err error) map[string]interface{} {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}
