package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "you do not own this resource",
	StatusCode: http.StatusForbidden,
}
