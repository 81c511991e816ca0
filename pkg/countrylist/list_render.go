package countrylist

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
)

// listRuntime is everything a list needs while it is on screen.
type listRuntime struct {
	ctx        context.Context // cancellation ends the list like a window close
	controller *listController
	queue      *screens.MainQueue
	flag       func(index int) ([]byte, bool) // nil when the list has no icons
	onCommand  func(cmd command, index int) (ListAction, bool)
}

// listView renders a listController.
type listView struct {
	window      *internal.Window
	text        *internal.TextRenderer
	spinner     *spinner
	flags       *internal.TextureCache
	badFlags    map[string]bool
	placeholder *sdl.Texture
	margins     internal.Padding
}

func newListView(window *internal.Window) *listView {
	v := &listView{
		window:   window,
		text:     internal.NewTextRenderer(window.Renderer),
		spinner:  newSpinner(window.Renderer, internal.Scale(48)),
		flags:    internal.NewTextureCache(),
		badFlags: make(map[string]bool),
		margins:  internal.UniformPadding(20).Scaled(),
	}

	flagW, flagH := v.flagSize()
	if data, err := internal.FlagPlaceholderPNG(internal.GetTheme().HintColor, int(flagW), int(flagH)); err == nil {
		v.placeholder, _ = internal.TextureFromImage(window.Renderer, data)
	}

	return v
}

func (v *listView) destroy() {
	v.text.Destroy()
	v.spinner.destroy()
	v.flags.Destroy()
	if v.placeholder != nil {
		v.placeholder.Destroy()
	}
}

func (v *listView) rowHeight() int32 {
	return internal.Scale(44)
}

func (v *listView) flagSize() (int32, int32) {
	return internal.Scale(32), internal.Scale(24)
}

func (v *listView) titleHeight() int32 {
	_, h := internal.MeasureText(internal.Fonts.LargeFont, "Ag")
	return h + constants.DefaultTitleSpacing + internal.Scale(10)
}

func (v *listView) listTop() int32 {
	return v.margins.Top + v.titleHeight()
}

func (v *listView) maxVisible() int {
	available := v.window.GetHeight() - v.listTop() - internal.Scale(footerHeight) - v.margins.Bottom
	return int(available / v.rowHeight())
}

// runList shows a list until the command handler reports it is done. Backing
// out returns ErrCancelled. Closing the window or cancelling rt.ctx returns
// ErrQuit.
func runList(rt listRuntime) (ListResult, error) {
	window := internal.GetWindow()
	processor := internal.GetInputProcessor()

	view := newListView(window)
	defer view.destroy()

	rt.controller.setMaxVisible(view.maxVisible())

	var inputs []*internal.Event
	for {
		inputs = inputs[:0]
		if event := sdl.WaitEventTimeout(int(constants.FrameDelay / time.Millisecond)); event != nil {
			for ; event != nil; event = sdl.PollEvent() {
				if _, ok := event.(*sdl.QuitEvent); ok {
					return rt.controller.result(ListActionQuit), ErrQuit
				}
				if input := processor.ProcessSDLEvent(event); input != nil {
					inputs = append(inputs, input)
				}
			}
		}

		if result, done, err := rt.frame(inputs, time.Now()); done {
			return result, err
		}

		view.render(rt.controller, rt.flag)
		window.Present()
	}
}

// frame applies one frame of input, runs posted completions and fires held
// direction repeats. It reports done once the list should close.
func (rt listRuntime) frame(inputs []*internal.Event, now time.Time) (ListResult, bool, error) {
	c := rt.controller

	if rt.ctx != nil && rt.ctx.Err() != nil {
		return c.result(ListActionQuit), true, ErrQuit
	}

	for _, input := range inputs {
		cmd := c.handleInput(input, now)
		if cmd == commandNone {
			continue
		}
		action, done := rt.onCommand(cmd, c.SelectedIndex)
		if !done {
			continue
		}
		if action == ListActionBack {
			return c.result(action), true, ErrCancelled
		}
		return c.result(action), true, nil
	}

	rt.queue.Drain()
	c.tick()
	return ListResult{}, false, nil
}

func (v *listView) render(c *listController, flag func(int) ([]byte, bool)) {
	renderer := v.window.Renderer
	theme := internal.GetTheme()
	width := v.window.GetWidth()
	height := v.window.GetHeight()

	v.window.Clear()

	title := c.Settings.Title
	titleWidth, _ := v.text.Draw(internal.Fonts.LargeFont, title, theme.TextColor, v.margins.Left, v.margins.Top, width-v.margins.Horizontal())
	if c.refreshing {
		label := constants.Refresh + " " + c.Settings.RefreshingText
		v.text.Draw(internal.Fonts.SmallFont, label, theme.AccentColor, v.margins.Left+titleWidth+internal.Scale(16), v.margins.Top+internal.Scale(8), 0)
	}

	rowHeight := v.rowHeight()
	font := internal.Fonts.MediumFont
	_, textHeight := internal.MeasureText(font, "Ag")
	flagW, flagH := v.flagSize()
	y := v.listTop()

	rows := c.Rows()
	for i := c.VisibleStart; i < len(rows) && i < c.VisibleStart+c.MaxVisible; i++ {
		textColor := theme.TextColor
		if i == c.SelectedIndex {
			textColor = theme.HighlightedTextColor
			highlight := &sdl.Rect{X: v.margins.Left - internal.Scale(10), Y: y, W: width - v.margins.Horizontal() + internal.Scale(20), H: rowHeight}
			internal.DrawRoundedRect(renderer, highlight, rowHeight/2, theme.HighlightColor)
		}

		x := v.margins.Left
		if c.Settings.ShowFlags {
			v.drawFlag(rows[i].FlagKey, i, flag, &sdl.Rect{X: x, Y: y + (rowHeight-flagH)/2, W: flagW, H: flagH})
			x += flagW + internal.Scale(12)
		}

		v.text.Draw(font, rows[i].Text, textColor, x, y+(rowHeight-textHeight)/2, width-x-v.margins.Right)
		y += rowHeight
	}

	switch {
	case c.loading:
		v.spinner.draw(renderer, width/2, height/2)
		v.text.DrawCentered(internal.Fonts.SmallFont, c.Settings.LoadingText, theme.HintColor, width/2, height/2+internal.Scale(36))
	case len(rows) == 0 && c.alert == nil:
		v.text.DrawCentered(internal.Fonts.SmallFont, c.Settings.EmptyText, theme.HintColor, width/2, height/2)
	}

	renderFooter(renderer, v.text, c.Settings.FooterHelpItems, v.margins)

	if c.alert != nil {
		renderAlert(renderer, v.text, *c.alert)
	}
}

// drawFlag draws the flag of row i, or the placeholder while it is missing.
// A flag whose bytes do not decode is not tried again.
func (v *listView) drawFlag(key string, i int, flag func(int) ([]byte, bool), dst *sdl.Rect) {
	renderer := v.window.Renderer

	if key != "" && !v.badFlags[key] {
		if texture, ok := v.flags.Get(key); ok {
			renderer.Copy(texture, nil, dst)
			return
		}

		if flag != nil {
			if data, ok := flag(i); ok {
				texture, err := internal.TextureFromImage(renderer, data)
				if err != nil {
					internal.GetInternalLogger().Debug("Flag image did not decode", "code", key, "error", err)
					v.badFlags[key] = true
				} else {
					v.flags.Set(key, texture)
					renderer.Copy(texture, nil, dst)
					return
				}
			}
		}
	}

	if v.placeholder != nil {
		renderer.Copy(v.placeholder, nil, dst)
	}
}
