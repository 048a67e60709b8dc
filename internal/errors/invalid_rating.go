package errors

import "net/http"

var ErrInvalidRating = &Exception{
	Message:    "rating must be an integer between 1 and 5",
	StatusCode: http.StatusBadRequest,
}
