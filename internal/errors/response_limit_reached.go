package errors

import "net/http"

// NewResponseLimitReached reports an exhausted response quota together with
// the numbers the client needs to render the limit to the user.
func NewResponseLimitReached(limit, used int, period string) *Exception {
	return &Exception{
		Message:    "response limit reached for the current period",
		StatusCode: http.StatusForbidden,
		Details: map[string]interface{}{
			"limit":  limit,
			"used":   used,
			"period": period,
		},
	}
}

// IsResponseLimitReached reports whether err carries quota details.
func IsResponseLimitReached(err error) bool {
	d := Details(err)
	if d == nil {
		return false
	}
	_, ok := d["limit"]
	return ok
}
