package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryIntLenient reads a numeric query parameter, falling back to defaultVal
// when the parameter is missing, malformed, or non-positive, and clamping to
// max. Listing endpoints historically tolerate junk limits rather than
// rejecting the request.
func QueryIntLenient(r *http.Request, key string, defaultVal, max int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultVal
	}
	if max > 0 && value > max {
		return max
	}
	return value
}
