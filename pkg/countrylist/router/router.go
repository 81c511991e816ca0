package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen until the user leaves it.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
//
// Return (screen, input) to navigate to a new screen.
// Return the values of stack.Pop() to go back.
// Return (ScreenExit, nil) to leave the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

var (
	// ErrNoTransition is returned by Run when OnTransition was never called.
	ErrNoTransition = errors.New("router: no transition function set")

	// ErrUnknownScreen is returned by Run when a transition targets an unregistered screen.
	ErrUnknownScreen = errors.New("router: screen not registered")
)

type registration struct {
	name string
	fn   ScreenFunc
}

// Router runs one screen at a time. Screens are registered with their
// functions, and a single transition function holds all routing logic.
type Router struct {
	screens    map[Screen]registration
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a Router that logs nothing.
func New() *Router {
	return &Router{
		screens: make(map[Screen]registration),
		stack:   NewStack(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger logs every screen entry and exit to logger.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Register adds a screen to the router under a name used in logs and errors.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = registration{name: name, fn: fn}
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Name returns the registered name of a screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if reg, ok := r.screens[screen]; ok && reg.name != "" {
		return reg.name
	}
	return fmt.Sprintf("screen(%d)", int(screen))
}

// Run starts the router at the given screen with the given input.
// It continues until the transition function returns ScreenExit or a screen
// returns an error.
func (r *Router) Run(start Screen, input any) error {
	return r.RunContext(context.Background(), start, input)
}

// RunContext is Run with a context checked between screens. Cancelling ctx
// does not interrupt the screen that is currently showing.
func (r *Router) RunContext(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("router: stopped before %s: %w", r.Name(current), err)
		}

		reg, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownScreen, current)
		}

		r.logger.Debug("Entering screen", "screen", r.Name(current), "depth", r.stack.Len())

		result, err := reg.fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", r.Name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		r.logger.Debug("Leaving screen", "screen", r.Name(current), "next", r.Name(next))

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack used by the transition function.
func (r *Router) Stack() *Stack {
	return r.stack
}
