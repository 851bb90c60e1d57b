package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
)

// defaultErrorMessage is reported when a failure carries no message of its own.
const defaultErrorMessage = "Error Occurred!"

// auditTimeout bounds how long a deletion audit publish may take.
const auditTimeout = 5 * time.Second

// Stream is a single-shot sequence of results: exactly one Loading followed by
// exactly one Success or Error, after which the channel is closed.
type Stream = <-chan domain.Result[domain.CuacaResponse]

// AuditPublisher receives a record of each successful delete.
type AuditPublisher interface {
	PublishDeletion(ctx context.Context, event domain.DeletionEvent) error
}

// Repository turns cuaca API calls into result streams.
type Repository struct {
	api     domain.CuacaAPI
	audit   AuditPublisher
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Repository. Pass a nil audit publisher to disable deletion auditing.
func New(api domain.CuacaAPI, audit AuditPublisher, logger *slog.Logger, metrics *observability.Metrics) *Repository {
	return &Repository{
		api:     api,
		audit:   audit,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchAll streams the outcome of listing every record.
func (r *Repository) FetchAll(ctx context.Context) Stream {
	return r.run(ctx, "list", r.api.ListAll, nil)
}

// DeleteByID streams the outcome of deleting one record. On success the
// deletion is handed to the audit publisher after the result is emitted.
func (r *Repository) DeleteByID(ctx context.Context, id string) Stream {
	call := func(ctx context.Context) (domain.CuacaResponse, error) {
		return r.api.DeleteByID(ctx, id)
	}
	return r.run(ctx, "delete", call, func(resp domain.CuacaResponse) {
		r.publishDeletion(ctx, id, resp)
	})
}

// run emits Loading before returning, then performs the call on its own
// goroutine. The channel holds both results, so a subscriber that stops
// reading never blocks the call. The stream is closed as soon as the terminal
// result is sent; onSuccess runs afterwards.
func (r *Repository) run(
	ctx context.Context,
	op string,
	call func(context.Context) (domain.CuacaResponse, error),
	onSuccess func(domain.CuacaResponse),
) Stream {
	out := make(chan domain.Result[domain.CuacaResponse], 2)
	out <- domain.Loading[domain.CuacaResponse]()

	go func() {
		resp, err := call(ctx)
		if err != nil {
			r.logger.Warn("cuaca operation failed", "operation", op, "error", err)
			r.metrics.RepositoryResults.WithLabelValues(op, domain.StatusError.String()).Inc()
			out <- domain.Failure[domain.CuacaResponse](errorMessage(err))
			close(out)
			return
		}

		r.logger.Debug("cuaca operation succeeded", "operation", op, "items", len(resp.Data))
		r.metrics.RepositoryResults.WithLabelValues(op, domain.StatusSuccess.String()).Inc()
		out <- domain.Success(resp)
		close(out)

		if onSuccess != nil {
			onSuccess(resp)
		}
	}()

	return out
}

func (r *Repository) publishDeletion(ctx context.Context, id string, resp domain.CuacaResponse) {
	if r.audit == nil {
		return
	}

	// Detached from the subscriber: a teardown right after the delete must not
	// drop the audit record.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := r.audit.PublishDeletion(ctx, domain.NewDeletionEvent(id, resp)); err != nil {
		r.logger.Error("publish deletion audit failed", "id", id, "error", err)
		r.metrics.AuditEvents.WithLabelValues("error").Inc()
		return
	}
	r.metrics.AuditEvents.WithLabelValues("success").Inc()
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return defaultErrorMessage
}
