package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/repository"
	"github.com/jonboulle/clockwork"
)

// ViewModel supplies the result streams the screen subscribes to.
type ViewModel interface {
	FetchAll(ctx context.Context) repository.Stream
	DeleteByID(ctx context.Context, id string) repository.Stream
}

// Renderer draws a snapshot of the screen state. It is only ever called from
// the screen's event loop.
type Renderer interface {
	Render(state State)
}

// Screen projects cuaca result streams onto UI state. All state lives on the
// goroutine running Run; the exported methods post events to it.
type Screen struct {
	vm       ViewModel
	renderer Renderer
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics

	events chan event
	done   chan struct{}

	running  atomic.Bool
	ready    atomic.Bool
	snapshot atomic.Pointer[State]

	// Owned by the event loop.
	state     State
	fetchGen  uint64
	noticeSeq uint64
}

// New creates a Screen. Nothing is fetched until Run is called.
func New(vm ViewModel, renderer Renderer, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Screen {
	s := &Screen{
		vm:       vm,
		renderer: renderer,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
		events:   make(chan event, 16),
		done:     make(chan struct{}),
	}
	initial := State{}
	s.snapshot.Store(&initial)
	return s
}

// Run mounts the screen: it starts the initial fetch and processes events
// until ctx is cancelled. Cancelling ctx tears the screen down; in-flight
// calls are cancelled and no result is delivered or rendered afterwards.
func (s *Screen) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("screen is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer close(s.done)

	s.logger.Info("screen mounted")
	s.fetch(ctx, sourceMount)
	s.state.IsLoading = true
	s.publish()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("screen unmounted")
			return nil
		case ev := <-s.events:
			if s.handle(ctx, ev) {
				s.publish()
			}
		}
	}
}

// Done is closed once Run has returned.
func (s *Screen) Done() <-chan struct{} {
	return s.done
}

// Refresh re-fetches the list on user request.
func (s *Screen) Refresh() { s.post(refreshEvent{source: sourceManual}) }

// AutoRefresh re-fetches the list without notifying the user.
func (s *Screen) AutoRefresh() { s.post(refreshEvent{source: sourceScheduled}) }

// LongPress selects item and opens the delete confirmation dialog.
func (s *Screen) LongPress(item domain.DataItem) { s.post(longPressEvent{item: item}) }

// ConfirmDelete deletes the selected item. It is ignored while the dialog is
// hidden by loading or a delete is already running.
func (s *Screen) ConfirmDelete() { s.post(confirmEvent{}) }

// CancelDelete closes the dialog unless it is hidden by loading or a delete is
// in progress.
func (s *Screen) CancelDelete() { s.post(cancelEvent{}) }

// Snapshot returns a copy of the most recently rendered state.
func (s *Screen) Snapshot() State {
	return s.snapshot.Load().clone()
}

// CheckReadiness returns nil once the list has loaded successfully at least once.
func (s *Screen) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("cuaca list has not loaded yet")
	}
	return nil
}

// post hands an event to the loop. Events sent after teardown are dropped.
func (s *Screen) post(ev event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

// subscribe forwards every result of stream to the loop until the stream
// completes or the screen is torn down.
func (s *Screen) subscribe(ctx context.Context, stream repository.Stream, wrap func(domain.Result[domain.CuacaResponse]) event) {
	go func() {
		for result := range stream {
			select {
			case s.events <- wrap(result):
			case <-ctx.Done():
				return
			}
		}
	}()
}

// handle applies one event and reports whether the state changed.
func (s *Screen) handle(ctx context.Context, ev event) bool {
	switch ev := ev.(type) {
	case refreshEvent:
		s.fetch(ctx, ev.source)
		return ev.source == sourceManual
	case longPressEvent:
		return s.longPress(ev.item)
	case confirmEvent:
		return s.confirmDelete(ctx)
	case cancelEvent:
		return s.cancelDelete()
	case fetchResultEvent:
		return s.applyFetch(ev)
	case deleteResultEvent:
		return s.applyDelete(ctx, ev.result)
	case expireEvent:
		return s.expire(ev.seq)
	default:
		s.logger.Error("unknown screen event", "event", ev)
		return false
	}
}

func (s *Screen) fetch(ctx context.Context, source string) {
	s.fetchGen++
	gen := s.fetchGen
	s.metrics.RefreshTriggers.WithLabelValues(source).Inc()
	s.logger.Debug("fetching cuaca list", "source", source, "generation", gen)

	if source == sourceManual {
		s.notify(MsgRefreshing)
	}

	s.subscribe(ctx, s.vm.FetchAll(ctx), func(r domain.Result[domain.CuacaResponse]) event {
		return fetchResultEvent{gen: gen, result: r}
	})
}

// applyFetch ignores results from any fetch but the newest one.
func (s *Screen) applyFetch(ev fetchResultEvent) bool {
	if ev.gen != s.fetchGen {
		s.logger.Debug("dropping stale fetch result", "generation", ev.gen, "current", s.fetchGen)
		return false
	}

	switch ev.result.Status {
	case domain.StatusLoading:
		s.state.IsLoading = true
	case domain.StatusSuccess:
		s.state.Items = ev.result.Data.Data
		s.state.IsLoading = false
		s.ready.Store(true)
		s.metrics.ItemsDisplayed.Set(float64(len(s.state.Items)))
		s.logger.Info("cuaca list loaded", "items", len(s.state.Items))
	case domain.StatusError:
		s.state.IsLoading = false
		s.notify(MsgLoadFailed)
		s.logger.Warn("cuaca list load failed", "error", ev.result.Message)
	}
	return true
}

func (s *Screen) longPress(item domain.DataItem) bool {
	if s.state.IsDeleting {
		return false
	}
	s.state.SelectedItem = &item
	s.state.ShowDialog = true
	return true
}

// confirmDelete only acts on a dialog that is on screen, which rules out
// loading and in-flight deletes.
func (s *Screen) confirmDelete(ctx context.Context) bool {
	if s.state.IsDeleting || s.state.IsLoading || !s.state.ShowDialog {
		return false
	}
	if s.state.SelectedItem == nil || s.state.SelectedItem.ID == "" {
		s.logger.Warn("delete confirmed without a selected item")
		return false
	}

	id := s.state.SelectedItem.ID
	s.state.IsDeleting = true
	s.logger.Info("deleting cuaca", "id", id)

	s.subscribe(ctx, s.vm.DeleteByID(ctx, id), func(r domain.Result[domain.CuacaResponse]) event {
		return deleteResultEvent{result: r}
	})
	return true
}

func (s *Screen) applyDelete(ctx context.Context, result domain.Result[domain.CuacaResponse]) bool {
	switch result.Status {
	case domain.StatusLoading:
		s.state.IsDeleting = true
	case domain.StatusSuccess:
		s.state.IsDeleting = false
		s.state.ShowDialog = false
		s.fetch(ctx, sourceDelete)
	case domain.StatusError:
		s.state.IsDeleting = false
		s.state.ShowDialog = false
		s.notify(MsgDeleteFailed)
		s.logger.Warn("cuaca delete failed", "error", result.Message)
	}
	return true
}

func (s *Screen) cancelDelete() bool {
	if s.state.IsDeleting || s.state.IsLoading || !s.state.ShowDialog {
		return false
	}
	s.state.ShowDialog = false
	return true
}

// notify shows msg and schedules its removal.
func (s *Screen) notify(msg string) {
	s.noticeSeq++
	seq := s.noticeSeq
	s.state.Notification = &Notification{Message: msg, ShownAt: s.clock.Now()}
	s.clock.AfterFunc(NotificationDuration, func() {
		s.post(expireEvent{seq: seq})
	})
}

// expire clears notification seq unless a newer one has replaced it.
func (s *Screen) expire(seq uint64) bool {
	if s.state.Notification == nil || seq != s.noticeSeq {
		return false
	}
	s.state.Notification = nil
	return true
}

func (s *Screen) publish() {
	st := s.state.clone()
	s.snapshot.Store(&st)
	s.metrics.Renders.Inc()
	s.renderer.Render(st)
}
