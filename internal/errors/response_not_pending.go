package errors

import "net/http"

var ErrResponseNotPending = &Exception{
	Message:    "response is not pending",
	StatusCode: http.StatusBadRequest,
}
