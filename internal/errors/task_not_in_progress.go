package errors

import "net/http"

var ErrTaskNotInProgress = &Exception{
	Message:    "task is not in progress",
	StatusCode: http.StatusBadRequest,
}
