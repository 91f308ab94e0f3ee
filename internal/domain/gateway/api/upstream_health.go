package api

import (
	"sync"
	"time"

	"skycast/internal/domain/model"
)

// upstreamHealth tracks the outcome of the most recent call to an upstream so
// health checks do not have to issue probe traffic of their own.
type upstreamHealth struct {
	mu          sync.Mutex
	baseURL     string
	lastSuccess time.Time
	lastFailure time.Time
	lastError   string
}

func newUpstreamHealth(baseURL string) *upstreamHealth {
	return &upstreamHealth{baseURL: baseURL}
}

func (u *upstreamHealth) recordSuccess() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastSuccess = time.Now()
	u.lastError = ""
}

func (u *upstreamHealth) recordFailure(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastFailure = time.Now()
	u.lastError = err.Error()
}

// status reports UP after a success newer than the last failure, DOWN after a
// failure newer than the last success, and UNKNOWN before any call was made.
func (u *upstreamHealth) status() model.ComponentHealthStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	details := map[string]string{"baseUrl": u.baseURL}
	if !u.lastSuccess.IsZero() {
		details["lastSuccess"] = u.lastSuccess.Format(time.RFC3339)
	}
	if u.lastError != "" {
		details["lastError"] = u.lastError
	}

	switch {
	case u.lastSuccess.IsZero() && u.lastFailure.IsZero():
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: details}
	case u.lastFailure.After(u.lastSuccess):
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	default:
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	}
}
