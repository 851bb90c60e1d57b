package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/candra1525/DEKAT-APPS-CENTRAL/internal/adapter/http"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	err   error
	state screen.State
}

func (m *mockSource) CheckReadiness(_ context.Context) error { return m.err }
func (m *mockSource) Snapshot() screen.State                 { return m.state }

func newTestServer(src *mockSource) *httpadapter.Server {
	return httpadapter.NewServer(":0", src, slog.Default())
}

func get(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(newTestServer(&mockSource{}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := get(newTestServer(&mockSource{}), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := get(newTestServer(&mockSource{err: fmt.Errorf("cuaca list has not loaded yet")}), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(&mockSource{}), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestStateEndpoint(t *testing.T) {
	src := &mockSource{state: screen.State{
		Items: []domain.DataItem{{ID: "1", Kecamatan: domain.Ptr("medan")}},
	}}

	rec := get(newTestServer(src), "/state")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body screen.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "medan", domain.StringValue(body.Items[0].Kecamatan))
	assert.False(t, body.IsLoading)
}
