// Package constants defines the virtual buttons, environment variable names and
// timing values shared by the country list front end.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that selects a desktop window.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvEnvironment     = "ENVIRONMENT"
	EnvWindowWidth     = "WINDOW_WIDTH"
	EnvWindowHeight    = "WINDOW_HEIGHT"
	EnvFlipFaceButtons = "FLIP_FACE_BUTTONS"
	EnvBaseURL         = "COUNTRYLIST_BASE_URL"
	EnvLocale          = "COUNTRYLIST_LOCALE"
	EnvLogLevel        = "COUNTRYLIST_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvEnvironment) == Development
}

// VirtualButton is an abstract input button mapped from a keyboard, controller
// or joystick.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

func (vb VirtualButton) String() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// IsDirectional reports whether the button moves the selection.
func (vb VirtualButton) IsDirectional() bool {
	switch vb {
	case VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight:
		return true
	}
	return false
}

const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	FrameDelay                = 16 * time.Millisecond // ~60fps render loop
	RepeatDelay               = 300 * time.Millisecond
	RepeatInterval            = 70 * time.Millisecond
	SpinnerStep               = 12.0 // degrees per frame
	DispatchQueueSize         = 64
)
