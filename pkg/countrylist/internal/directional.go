package internal

import (
	"time"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
)

// DirectionalInput turns a held direction into repeated presses: the first
// repeat fires after the delay, the rest at the interval.
type DirectionalInput struct {
	held           []constants.VirtualButton // press order, newest last
	lastRepeatTime time.Time
	hasRepeated    bool
	repeatDelay    time.Duration
	repeatInterval time.Duration
	now            func() time.Time
}

// NewDirectionalInput uses the list repeat timing.
func NewDirectionalInput() *DirectionalInput {
	return NewDirectionalInputWithTiming(constants.RepeatDelay, constants.RepeatInterval)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) *DirectionalInput {
	return &DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld records a press or release. It returns false for non-directional
// buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !button.IsDirectional() {
		return false
	}

	d.release(button)
	if held {
		d.held = append(d.held, button)
	}
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	return true
}

func (d *DirectionalInput) release(button constants.VirtualButton) {
	for i, b := range d.held {
		if b == button {
			d.held = append(d.held[:i], d.held[i+1:]...)
			return
		}
	}
}

// Held returns the most recently pressed direction still held.
func (d *DirectionalInput) Held() (constants.VirtualButton, bool) {
	if len(d.held) == 0 {
		return constants.VirtualButtonUnassigned, false
	}
	return d.held[len(d.held)-1], true
}

// Update is called every frame and returns a direction when a repeat is due.
func (d *DirectionalInput) Update() (constants.VirtualButton, bool) {
	button, ok := d.Held()
	if !ok {
		return constants.VirtualButtonUnassigned, false
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.now()
	if now.Sub(d.lastRepeatTime) < threshold {
		return constants.VirtualButtonUnassigned, false
	}

	d.lastRepeatTime = now
	d.hasRepeated = true
	return button, true
}

// Reset clears all held directions.
func (d *DirectionalInput) Reset() {
	d.held = d.held[:0]
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
