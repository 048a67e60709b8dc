package errors

import "net/http"

var ErrSubscriptionRequired = &Exception{
	Message:    "an active subscription is required",
	StatusCode: http.StatusForbidden,
}
