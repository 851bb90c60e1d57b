package cuacaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
	"github.com/google/uuid"
)

const (
	cuacaPath       = "/api/api/cuaca"
	headerRequestID = "X-Request-ID"
)

// Client implements domain.CuacaAPI over the DEKAT REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a cuaca API client rooted at baseURL. The underlying
// transport defaults apply; no timeout is imposed here.
func NewClient(baseURL string, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		metrics:    metrics,
		logger:     logger,
	}
}

// ListAll fetches every record from GET /api/api/cuaca.
func (c *Client) ListAll(ctx context.Context) (domain.CuacaResponse, error) {
	return c.doRequest(ctx, http.MethodGet, c.baseURL+cuacaPath, "list")
}

// DeleteByID removes one record via DELETE /api/api/cuaca/{id}.
func (c *Client) DeleteByID(ctx context.Context, id string) (domain.CuacaResponse, error) {
	if id == "" {
		return domain.CuacaResponse{}, &domain.NetworkError{Op: "delete", Err: domain.ErrMissingID}
	}
	return c.doRequest(ctx, http.MethodDelete, c.baseURL+cuacaPath+"/"+url.PathEscape(id), "delete")
}

func (c *Client) doRequest(ctx context.Context, method, fullURL, op string) (domain.CuacaResponse, error) {
	start := time.Now()
	resp, err := c.roundTrip(ctx, method, fullURL, op)
	c.metrics.APIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.APIRequests.WithLabelValues(op, outcome).Inc()
	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, method, fullURL, op string) (domain.CuacaResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return domain.CuacaResponse{}, &domain.NetworkError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.CuacaResponse{}, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.CuacaResponse{}, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("cuaca API error response",
			"operation", op,
			"status", resp.StatusCode,
			"request_id", requestID,
		)
		return domain.CuacaResponse{}, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(statusMessage(resp.StatusCode, body))}
	}

	var out domain.CuacaResponse
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.CuacaResponse{}, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug("cuaca API response",
		"operation", op,
		"status", resp.StatusCode,
		"items", len(out.Data),
		"request_id", requestID,
	)
	return out, nil
}

// statusMessage prefers a short body over the bare status text.
func statusMessage(code int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" || len(msg) > 200 {
		return http.StatusText(code)
	}
	return msg
}
