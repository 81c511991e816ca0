package screens

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// FlagSource downloads one flag image.
type FlagSource interface {
	Flag(ctx context.Context, code string) ([]byte, error)
}

// FlagOptions configures a FlagLoader.
type FlagOptions struct {
	Source     FlagSource
	Dispatcher Dispatcher        // Required
	Workers    int               // Concurrent downloads, default 4
	OnFlag     func(code string) // Called on the dispatcher goroutine when an image arrives
	Logger     *slog.Logger
}

type flagStatus int

const (
	flagPending flagStatus = iota
	flagLoaded
	flagMissing
)

type flagEntry struct {
	status flagStatus
	data   []byte
}

// FlagLoader downloads flag images in the background, one per country code.
// A failed download leaves the code without an icon and is not retried.
type FlagLoader struct {
	source     FlagSource
	dispatcher Dispatcher
	workers    int
	onFlag     func(string)
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	// Owned by the dispatcher goroutine.
	entries map[string]*flagEntry
}

// NewFlagLoader creates a loader. Nothing is downloaded until Request.
func NewFlagLoader(opts FlagOptions) *FlagLoader {
	workers := opts.Workers
	if workers < 1 {
		workers = 4
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dispatcher := mustDispatcher(opts.Dispatcher, "FlagLoader")

	ctx, cancel := context.WithCancel(context.Background())

	return &FlagLoader{
		source:     opts.Source,
		dispatcher: dispatcher,
		workers:    workers,
		onFlag:     opts.OnFlag,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		entries:    make(map[string]*flagEntry),
	}
}

// Request queues downloads for codes that were never requested before.
func (f *FlagLoader) Request(codes ...string) {
	if f.closed.Load() || f.source == nil {
		return
	}

	pending := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, seen := f.entries[code]; seen {
			continue
		}
		f.entries[code] = &flagEntry{status: flagPending}
		pending = append(pending, code)
	}

	if len(pending) == 0 {
		return
	}

	go f.download(pending)
}

// Get returns the image for code once it has arrived.
func (f *FlagLoader) Get(code string) ([]byte, bool) {
	entry, ok := f.entries[code]
	if !ok || entry.status != flagLoaded {
		return nil, false
	}
	return entry.data, true
}

// Missing reports whether the download for code failed.
func (f *FlagLoader) Missing(code string) bool {
	entry, ok := f.entries[code]
	return ok && entry.status == flagMissing
}

// Close stops outstanding downloads and drops their results.
func (f *FlagLoader) Close() {
	if f.closed.Swap(true) {
		return
	}
	f.cancel()
}

func (f *FlagLoader) download(codes []string) {
	sem := make(chan struct{}, f.workers)
	var wg sync.WaitGroup

	for _, code := range codes {
		select {
		case <-f.ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			defer func() { <-sem }()

			data, err := f.source.Flag(f.ctx, code)
			if f.closed.Load() {
				return
			}
			f.dispatcher.Dispatch(func() {
				f.complete(code, data, err)
			})
		}(code)
	}

	wg.Wait()
}

func (f *FlagLoader) complete(code string, data []byte, err error) {
	if f.closed.Load() {
		return
	}

	entry, ok := f.entries[code]
	if !ok {
		return
	}

	if err != nil {
		entry.status = flagMissing
		f.logger.Debug("Flag unavailable", "code", code, "error", err)
		return
	}

	entry.status = flagLoaded
	entry.data = data
	if f.onFlag != nil {
		f.onFlag(code)
	}
}
