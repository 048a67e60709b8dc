package errors

import "net/http"

var ErrMissingFields = &Exception{
	Message:    "required fields are missing",
	StatusCode: http.StatusBadRequest,
}
