// Package screens holds the data-loading logic of the country list and the
// country details screens, independent of any rendering backend.
//
// A screen owns one RemoteList. The list issues its fetch on a background
// goroutine and hands the completion to a Dispatcher, so every Presenter call
// and every mutation of the loaded rows happens on the goroutine that drains
// the dispatcher (the UI loop). Constructors panic without a Dispatcher.
package screens

import "fmt"

// State is the load state of a RemoteList.
type State int

const (
	StateIdle    State = iota // Nothing requested yet
	StateLoading              // A fetch is outstanding
	StateLoaded               // Rows hold the result of the last successful fetch
	StateFailed               // The last fetch failed and the alert is showing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Trigger records why a fetch was issued.
type Trigger int

const (
	TriggerAppear  Trigger = iota // Screen became visible
	TriggerRefresh                // Pull-to-refresh
	TriggerRetry                  // Retry action on the failure alert
)

func (t Trigger) String() string {
	switch t {
	case TriggerAppear:
		return "appear"
	case TriggerRefresh:
		return "refresh"
	case TriggerRetry:
		return "retry"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Alert is the blocking failure alert. It always offers exactly one action.
type Alert struct {
	Title      string
	Message    string
	RetryLabel string
}

// Labels are the user-visible strings of a screen.
type Labels struct {
	Title        string
	AlertTitle   string
	AlertMessage string
	RetryLabel   string
}

// DefaultLabels returns the English strings with the given screen title.
func DefaultLabels(title string) Labels {
	return Labels{
		Title:        title,
		AlertTitle:   "Loading Failure",
		AlertMessage: "We are having trouble accessing our country data.",
		RetryLabel:   "Retry",
	}
}

func (l Labels) alert() Alert {
	return Alert{Title: l.AlertTitle, Message: l.AlertMessage, RetryLabel: l.RetryLabel}
}

// withDefaults fills empty fields from DefaultLabels.
func (l Labels) withDefaults(title string) Labels {
	d := DefaultLabels(title)
	if l.Title == "" {
		l.Title = d.Title
	}
	if l.AlertTitle == "" {
		l.AlertTitle = d.AlertTitle
	}
	if l.AlertMessage == "" {
		l.AlertMessage = d.AlertMessage
	}
	if l.RetryLabel == "" {
		l.RetryLabel = d.RetryLabel
	}
	return l
}

// Presenter is the view side of a screen. All methods are called on the
// dispatcher goroutine.
type Presenter interface {
	SetLoading(loading bool)       // Show or hide the centered spinner
	SetRefreshing(refreshing bool) // Show or hide the pull-to-refresh indicator
	ReloadRows()                   // Rows changed; re-read them from the screen
	PresentAlert(alert Alert)      // Show the blocking failure alert
}

// NopPresenter ignores every call.
type NopPresenter struct{}

func (NopPresenter) SetLoading(bool)    {}
func (NopPresenter) SetRefreshing(bool) {}
func (NopPresenter) ReloadRows()        {}
func (NopPresenter) PresentAlert(Alert) {}
