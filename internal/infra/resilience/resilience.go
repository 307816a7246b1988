// Package resilience provides the circuit breaker guarding the AI provider.
// Calls are attempted once; the breaker only makes an outage fail fast.
package resilience

import (
	"errors"
	"time"

	"github.com/boddenberg/startup-bot-go/internal/domain"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker creates a circuit breaker with sensible defaults.
// Client-side rejections (4xx) do not count as provider failures.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: IsProviderHealthy,
	})
}

// IsProviderHealthy reports whether err leaves the provider's health intact.
func IsProviderHealthy(err error) bool {
	if err == nil {
		return true
	}
	var status *domain.ErrUpstreamStatus
	if errors.As(err, &status) {
		return status.Status < 500
	}
	return false
}

// IsOpen reports whether err is the breaker refusing a call.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
