package errors

import "net/http"

var ErrResponseNotFound = &Exception{
	Message:    "response not found",
	StatusCode: http.StatusNotFound,
}
