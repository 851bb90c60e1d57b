package cuacaapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	resp  domain.CuacaResponse
	err   error
	calls int
}

func (s *stubAPI) ListAll(_ context.Context) (domain.CuacaResponse, error) {
	s.calls++
	return s.resp, s.err
}

func (s *stubAPI) DeleteByID(_ context.Context, _ string) (domain.CuacaResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestBreakerClient_PassesThrough(t *testing.T) {
	inner := &stubAPI{resp: domain.CuacaResponse{Data: []domain.DataItem{{ID: "1"}}}}
	b := NewBreakerClient(inner, observability.NewMetricsForTesting(), discardLogger())

	resp, err := b.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)

	resp, err = b.DeleteByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, inner.calls)
}

func TestBreakerClient_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &stubAPI{err: errors.New("connection refused")}
	metrics := observability.NewMetricsForTesting()
	b := newBreakerClient(inner, 2, time.Minute, metrics, discardLogger())

	for i := 0; i < 2; i++ {
		_, err := b.ListAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	}

	_, err := b.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls, "open breaker must not reach the remote")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.BreakerOpen.WithLabelValues(breakerName)))
}
