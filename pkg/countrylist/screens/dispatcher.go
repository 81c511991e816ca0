package screens

// Dispatcher runs a function on the goroutine that owns the view.
// Background fetches never touch screen or presenter state directly; they hand
// their completion to a Dispatcher.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// mustDispatcher panics when d is nil. Completions must not run on the fetch
// goroutine.
func mustDispatcher(d Dispatcher, owner string) Dispatcher {
	if d == nil {
		panic("screens: " + owner + " requires a Dispatcher")
	}
	return d
}

// MainQueue is a Dispatcher drained by the UI loop once per frame.
type MainQueue struct {
	ch chan func()
}

// NewMainQueue creates a queue with room for size pending functions.
// Dispatch blocks the calling goroutine while the queue is full.
func NewMainQueue(size int) *MainQueue {
	if size < 1 {
		size = 1
	}
	return &MainQueue{ch: make(chan func(), size)}
}

// Dispatch enqueues fn. Safe to call from any goroutine.
func (q *MainQueue) Dispatch(fn func()) {
	q.ch <- fn
}

// Drain runs every queued function on the calling goroutine without waiting
// for new ones. It returns how many ran.
func (q *MainQueue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Pending reports how many functions are waiting.
func (q *MainQueue) Pending() int {
	return len(q.ch)
}
