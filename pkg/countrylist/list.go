package countrylist

import (
	"time"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
)

// command is what one input asks the screen owning the list to do.
type command int

const (
	commandNone command = iota
	commandSelect
	commandBack
	commandRefresh
	commandRetry
	commandQuit
)

// ListSettings configures a list.
type ListSettings struct {
	Title           string
	FooterHelpItems []FooterHelpItem
	EmptyText       string
	LoadingText     string
	RefreshingText  string
	AllowRefresh    bool
	ShowFlags       bool
	SelectedIndex   int
	VisibleStart    int
}

// listController holds the state of a list and implements screens.Presenter.
// Every method runs on the SDL loop goroutine.
type listController struct {
	Settings ListSettings

	rows          []Row
	rowSource     func() []Row
	SelectedIndex int
	VisibleStart  int
	MaxVisible    int

	loading    bool
	refreshing bool
	alert      *screens.Alert

	directional   *internal.DirectionalInput
	lastInputTime time.Time
	inputDelay    time.Duration
}

var _ screens.Presenter = (*listController)(nil)

func newListController(settings ListSettings, rowSource func() []Row) *listController {
	c := &listController{
		Settings:      settings,
		rowSource:     rowSource,
		SelectedIndex: settings.SelectedIndex,
		VisibleStart:  settings.VisibleStart,
		MaxVisible:    8,
		directional:   internal.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
	}
	c.ReloadRows()
	return c
}

func (c *listController) SetLoading(loading bool) {
	c.loading = loading
}

func (c *listController) SetRefreshing(refreshing bool) {
	c.refreshing = refreshing
}

func (c *listController) ReloadRows() {
	if c.rowSource != nil {
		c.rows = c.rowSource()
	}
	c.clampSelection()
}

func (c *listController) PresentAlert(alert screens.Alert) {
	c.alert = &alert
	c.directional.Reset()
}

// Rows returns the rows currently shown.
func (c *listController) Rows() []Row {
	return c.rows
}

// AlertShowing reports whether the failure alert is up.
func (c *listController) AlertShowing() bool {
	return c.alert != nil
}

// clampSelection keeps the cursor on a row. With no rows the cursor is left
// alone so a restored position survives until the rows arrive.
func (c *listController) clampSelection() {
	if len(c.rows) == 0 {
		return
	}
	if c.SelectedIndex >= len(c.rows) {
		c.SelectedIndex = len(c.rows) - 1
	}
	if c.SelectedIndex < 0 {
		c.SelectedIndex = 0
	}
	c.scrollTo(c.SelectedIndex)
}

// handleInput applies one input event and returns the command it triggers.
func (c *listController) handleInput(ev *internal.Event, now time.Time) command {
	if ev.ReleaseAll {
		c.directional.Reset()
		return commandNone
	}
	if !ev.Pressed {
		c.directional.SetHeld(ev.Button, false)
		return commandNone
	}

	if now.Sub(c.lastInputTime) < c.inputDelay {
		return commandNone
	}
	c.lastInputTime = now

	if c.alert != nil {
		switch ev.Button {
		case constants.VirtualButtonA, constants.VirtualButtonStart:
			c.alert = nil
			return commandRetry
		}
		return commandNone
	}

	if c.directional.SetHeld(ev.Button, true) {
		c.move(ev.Button)
		return commandNone
	}

	switch ev.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if len(c.rows) > 0 && !c.loading {
			return commandSelect
		}
	case constants.VirtualButtonB:
		return commandBack
	case constants.VirtualButtonY:
		if c.Settings.AllowRefresh && !c.loading {
			return commandRefresh
		}
	case constants.VirtualButtonL1:
		c.page(-1)
	case constants.VirtualButtonR1:
		c.page(1)
	case constants.VirtualButtonMenu:
		return commandQuit
	}

	return commandNone
}

// tick fires held-direction repeats; call once per frame.
func (c *listController) tick() {
	if c.alert != nil {
		return
	}
	if button, ok := c.directional.Update(); ok {
		c.move(button)
	}
}

func (c *listController) move(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		c.moveSelection(-1)
	case constants.VirtualButtonDown:
		c.moveSelection(1)
	case constants.VirtualButtonLeft:
		c.page(-1)
	case constants.VirtualButtonRight:
		c.page(1)
	}
}

// moveSelection steps one row and wraps at either end.
func (c *listController) moveSelection(delta int) {
	if len(c.rows) == 0 {
		return
	}

	c.SelectedIndex += delta
	if c.SelectedIndex >= len(c.rows) {
		c.SelectedIndex = 0
	}
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.rows) - 1
	}
	c.scrollTo(c.SelectedIndex)
}

// page jumps one screenful without wrapping.
func (c *listController) page(direction int) {
	if len(c.rows) == 0 {
		return
	}

	c.SelectedIndex += direction * c.MaxVisible
	if c.SelectedIndex >= len(c.rows) {
		c.SelectedIndex = len(c.rows) - 1
	}
	if c.SelectedIndex < 0 {
		c.SelectedIndex = 0
	}
	c.scrollTo(c.SelectedIndex)
}

// scrollTo keeps index inside the visible window.
func (c *listController) scrollTo(index int) {
	if c.MaxVisible < 1 {
		c.MaxVisible = 1
	}

	if index < c.VisibleStart {
		c.VisibleStart = index
	}
	if index >= c.VisibleStart+c.MaxVisible {
		c.VisibleStart = index - c.MaxVisible + 1
	}

	maxStart := len(c.rows) - c.MaxVisible
	if maxStart < 0 {
		maxStart = 0
	}
	if c.VisibleStart > maxStart {
		c.VisibleStart = maxStart
	}
	if c.VisibleStart < 0 {
		c.VisibleStart = 0
	}
}

// setMaxVisible updates the window size after a layout pass.
func (c *listController) setMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	if n != c.MaxVisible {
		c.MaxVisible = n
		c.scrollTo(c.SelectedIndex)
	}
}

func (c *listController) result(action ListAction) ListResult {
	return ListResult{Action: action, SelectedIndex: c.SelectedIndex, VisibleStart: c.VisibleStart}
}
