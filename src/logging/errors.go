package logging

import "strings"

// IsRateLimit reports whether a provider error looks like a rate-limit
// rejection.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "rate_limit") || strings.Contains(msg, "429")
}
