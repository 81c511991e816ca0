package countrylist

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
)

// renderAlert draws the failure alert over the dimmed list: a title, the
// wrapped message and its only action, highlighted.
func renderAlert(renderer *sdl.Renderer, text *internal.TextRenderer, alert screens.Alert) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	internal.FillRect(renderer, &sdl.Rect{X: 0, Y: 0, W: windowWidth, H: windowHeight}, theme.OverlayColor)

	titleFont := internal.Fonts.MediumFont
	messageFont := internal.Fonts.SmallFont

	boxWidth := windowWidth * 3 / 4
	if limit := internal.Scale(520); boxWidth > limit {
		boxWidth = limit
	}
	pad := internal.Scale(20)
	spacing := internal.Scale(14)

	title := constants.CloudAlert + " " + alert.Title
	_, titleHeight := internal.MeasureText(titleFont, title)
	lines := internal.WrapText(messageFont, alert.Message, boxWidth-2*pad)
	lineHeight := int32(messageFont.Height())
	buttonHeight := internal.Scale(36)

	boxHeight := pad + titleHeight + spacing + int32(len(lines))*lineHeight + spacing + buttonHeight + pad
	box := &sdl.Rect{X: (windowWidth - boxWidth) / 2, Y: (windowHeight - boxHeight) / 2, W: boxWidth, H: boxHeight}
	internal.DrawRoundedRect(renderer, box, internal.Scale(12), theme.BackgroundColor)

	centerX := windowWidth / 2
	y := box.Y + pad
	text.DrawCentered(titleFont, title, theme.TextColor, centerX, y)
	y += titleHeight + spacing

	for _, line := range lines {
		text.DrawCentered(messageFont, line, theme.TextColor, centerX, y)
		y += lineHeight
	}
	y += spacing

	labelWidth, labelHeight := internal.MeasureText(titleFont, alert.RetryLabel)
	buttonWidth := labelWidth + 2*pad
	button := &sdl.Rect{X: centerX - buttonWidth/2, Y: y, W: buttonWidth, H: buttonHeight}
	internal.DrawRoundedRect(renderer, button, buttonHeight/2, theme.AccentColor)
	text.DrawCentered(titleFont, alert.RetryLabel, theme.TextColor, centerX, y+(buttonHeight-labelHeight)/2)
}
