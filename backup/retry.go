package backup

import (
	"strings"
	"time"
)

// retryDelay doubles base for every consecutive failure, capped at ceiling
func retryDelay(failures int, base, ceiling time.Duration) time.Duration {
	if failures <= 1 {
		return min(base, ceiling)
	}

	delay := base
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay >= ceiling {
			return ceiling
		}
	}
	return delay
}

// isTokenExpiredError checks if an error is related to token expiration
func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	return strings.Contains(errMsg, "token expired") ||
		strings.Contains(errMsg, "Token has been expired") ||
		strings.Contains(errMsg, "invalid_grant") ||
		strings.Contains(errMsg, "401")
}
