package errors

import "net/http"

var ErrNotReviewable = &Exception{
	Message:    "task cannot be reviewed",
	StatusCode: http.StatusBadRequest,
}
