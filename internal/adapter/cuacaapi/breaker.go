package cuacaapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
	"github.com/sony/gobreaker"
)

// breakerName labels the breaker in logs and metrics.
const breakerName = "cuaca-api"

// BreakerClient wraps a domain.CuacaAPI with a circuit breaker so a failing
// remote is not hammered. It never retries; an open breaker is reported as
// an ordinary error.
type BreakerClient struct {
	inner   domain.CuacaAPI
	circuit *gobreaker.CircuitBreaker
}

// NewBreakerClient trips after five consecutive failures and probes again
// after thirty seconds.
func NewBreakerClient(inner domain.CuacaAPI, metrics *observability.Metrics, logger *slog.Logger) *BreakerClient {
	return newBreakerClient(inner, 5, 30*time.Second, metrics, logger)
}

func newBreakerClient(inner domain.CuacaAPI, maxFailures uint32, openTimeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *BreakerClient {
	metrics.BreakerOpen.WithLabelValues(breakerName).Set(0)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			open := 0.0
			if to == gobreaker.StateOpen {
				open = 1
			}
			metrics.BreakerOpen.WithLabelValues(name).Set(open)
		},
	})
	return &BreakerClient{inner: inner, circuit: cb}
}

func (b *BreakerClient) ListAll(ctx context.Context) (domain.CuacaResponse, error) {
	return b.execute(func() (domain.CuacaResponse, error) {
		return b.inner.ListAll(ctx)
	})
}

func (b *BreakerClient) DeleteByID(ctx context.Context, id string) (domain.CuacaResponse, error) {
	return b.execute(func() (domain.CuacaResponse, error) {
		return b.inner.DeleteByID(ctx, id)
	})
}

func (b *BreakerClient) execute(call func() (domain.CuacaResponse, error)) (domain.CuacaResponse, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		return domain.CuacaResponse{}, err
	}
	return result.(domain.CuacaResponse), nil
}
