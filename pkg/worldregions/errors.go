package worldregions

import (
	"errors"
	"fmt"
)

// ErrLoadFailure is the single failure category for a list fetch. Every error
// returned by Client.Countries and Client.Provinces matches it with errors.Is.
var ErrLoadFailure = errors.New("worldregions: load failure")

// FailureKind tells the three collapsed failure causes apart for logging.
type FailureKind int

const (
	FailureNetwork FailureKind = iota // transport error, no response
	FailureStatus                     // response with a non-2xx status
	FailureDecode                     // body was not the expected JSON array
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// LoadError describes a failed fetch.
type LoadError struct {
	Kind   FailureKind
	URL    string
	Status int   // HTTP status, zero for network failures
	Err    error // Underlying error
}

func (e *LoadError) Error() string {
	switch {
	case e.Kind == FailureStatus:
		return fmt.Sprintf("worldregions: GET %s: unexpected status %d", e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("worldregions: GET %s: %s: %v", e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("worldregions: GET %s: %s", e.URL, e.Kind)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes every LoadError match ErrLoadFailure.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// IsLoadFailure reports whether err is a failed list fetch.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrLoadFailure)
}

// FailureKindOf returns the kind of a LoadError found in err's chain.
func FailureKindOf(err error) (FailureKind, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind, true
	}
	return 0, false
}
