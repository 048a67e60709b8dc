package errors

import "net/http"

var ErrProviderRequired = &Exception{
	Message:    "only providers can respond to tasks",
	StatusCode: http.StatusForbidden,
}
