package screens

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"go.uber.org/atomic"
)

// FetchFunc performs one GET and decode. It is called on a background goroutine.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListOptions configures a RemoteList.
type ListOptions[T any] struct {
	Name       string // Used in log lines
	Fetch      FetchFunc[T]
	Dispatcher Dispatcher // Required
	Presenter  Presenter
	Alert      Alert
	Logger     *slog.Logger
	OnLoaded   func(items []T) // Called on the dispatcher goroutine after rows are replaced
	OnFailed   func(err error) // Called on the dispatcher goroutine after the alert is presented
}

// RemoteList loads a list with a single GET and keeps the last successful
// result. At most one fetch is outstanding at a time. A failed fetch leaves the
// previous rows untouched and presents the alert; Retry issues the same fetch
// again.
type RemoteList[T any] struct {
	name       string
	fetch      FetchFunc[T]
	dispatcher Dispatcher
	presenter  Presenter
	alert      Alert
	logger     *slog.Logger
	onLoaded   func([]T)
	onFailed   func(error)

	ctx    context.Context
	cancel context.CancelFunc

	generation atomic.Uint64
	inFlight   atomic.Bool
	closed     atomic.Bool

	// Owned by the dispatcher goroutine.
	items      []T
	state      State
	refreshing bool
	lastErr    error
}

// NewRemoteList creates an idle list. Nothing is fetched until Load.
func NewRemoteList[T any](opts ListOptions[T]) *RemoteList[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Name != "" {
		logger = logger.With("list", opts.Name)
	}

	presenter := opts.Presenter
	if presenter == nil {
		presenter = NopPresenter{}
	}

	dispatcher := mustDispatcher(opts.Dispatcher, "RemoteList")

	ctx, cancel := context.WithCancel(context.Background())

	return &RemoteList[T]{
		name:       opts.Name,
		fetch:      opts.Fetch,
		dispatcher: dispatcher,
		presenter:  presenter,
		alert:      opts.Alert,
		logger:     logger,
		onLoaded:   opts.OnLoaded,
		onFailed:   opts.OnFailed,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Load issues the fetch. It returns false when the list is closed or a fetch
// is already in flight; a coalesced refresh still keeps the refresh indicator
// up until the outstanding fetch completes.
func (l *RemoteList[T]) Load(trigger Trigger) bool {
	if l.closed.Load() {
		return false
	}

	if !l.inFlight.CompareAndSwap(false, true) {
		l.logger.Debug("Fetch already in flight, ignoring", "trigger", trigger.String())
		if trigger == TriggerRefresh {
			l.setRefreshing(true)
		}
		return false
	}

	gen := l.generation.Inc()
	l.state = StateLoading

	if trigger == TriggerRefresh {
		l.setRefreshing(true)
	} else {
		l.presenter.SetLoading(true)
	}

	l.logger.Debug("Fetch started", "trigger", trigger.String(), "generation", gen)

	ctx := l.ctx
	go func() {
		items, err := l.fetch(ctx)
		l.dispatcher.Dispatch(func() {
			l.complete(gen, items, err)
		})
	}()

	return true
}

// Refresh re-issues the fetch even when the list is already loaded.
func (l *RemoteList[T]) Refresh() bool {
	return l.Load(TriggerRefresh)
}

// Retry is the alert's single action.
func (l *RemoteList[T]) Retry() bool {
	l.logger.Debug("User tapped the retry button")
	return l.Load(TriggerRetry)
}

// Seed installs rows from an earlier successful load without fetching.
func (l *RemoteList[T]) Seed(items []T) {
	if l.closed.Load() || l.inFlight.Load() {
		return
	}
	l.items = items
	l.state = StateLoaded
	l.presenter.ReloadRows()
}

// Close invalidates the outstanding fetch. A completion that arrives later is
// dropped without touching the rows or the presenter.
func (l *RemoteList[T]) Close() {
	if l.closed.Swap(true) {
		return
	}
	l.generation.Inc()
	l.cancel()
}

// State returns the load state.
func (l *RemoteList[T]) State() State {
	return l.state
}

// Refreshing reports whether the pull-to-refresh indicator is up.
func (l *RemoteList[T]) Refreshing() bool {
	return l.refreshing
}

// Err returns the error of the last fetch, or nil after a success.
func (l *RemoteList[T]) Err() error {
	return l.lastErr
}

// Items returns a copy of the loaded rows.
func (l *RemoteList[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of loaded rows.
func (l *RemoteList[T]) Len() int {
	return len(l.items)
}

// At returns the row at index i.
func (l *RemoteList[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

func (l *RemoteList[T]) complete(gen uint64, items []T, err error) {
	if l.closed.Load() || gen != l.generation.Load() {
		l.logger.Debug("Dropping stale fetch result", "generation", gen)
		return
	}

	l.inFlight.Store(false)
	l.presenter.SetLoading(false)
	l.setRefreshing(false)

	if err != nil {
		l.state = StateFailed
		l.lastErr = err
		l.logger.Warn("Fetch failed", "generation", gen, "error", err)
		l.presenter.PresentAlert(l.alert)
		if l.onFailed != nil {
			l.onFailed(err)
		}
		return
	}

	l.items = items
	l.state = StateLoaded
	l.lastErr = nil
	l.logger.Debug("Fetch completed", "generation", gen, "count", len(items))
	l.presenter.ReloadRows()
	if l.onLoaded != nil {
		l.onLoaded(items)
	}
}

func (l *RemoteList[T]) setRefreshing(refreshing bool) {
	if l.refreshing == refreshing {
		return
	}
	l.refreshing = refreshing
	l.presenter.SetRefreshing(refreshing)
}
