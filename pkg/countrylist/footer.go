package countrylist

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
)

// footerHeight is the unscaled height reserved for the footer.
const footerHeight int32 = 40

// renderFooter draws the help items as button pills along the bottom edge,
// left to right.
func renderFooter(renderer *sdl.Renderer, text *internal.TextRenderer, items []FooterHelpItem, margins internal.Padding) {
	if len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont

	pillHeight := internal.Scale(28)
	y := window.GetHeight() - margins.Bottom - pillHeight
	x := margins.Left
	pad := internal.Scale(8)

	for _, item := range items {
		x += renderFooterItem(renderer, text, font, theme, item, x, y, pillHeight, pad) + internal.Scale(16)
	}
}

func renderFooterItem(renderer *sdl.Renderer, text *internal.TextRenderer, font *ttf.Font, theme internal.Theme, item FooterHelpItem, x, y, pillHeight, pad int32) int32 {
	buttonW, buttonH := internal.MeasureText(font, item.ButtonName)
	pillW := buttonW + 2*pad
	if pillW < pillHeight {
		pillW = pillHeight
	}

	internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: pillW, H: pillHeight}, pillHeight/2, theme.HighlightColor)
	text.Draw(font, item.ButtonName, theme.ButtonLabelColor, x+(pillW-buttonW)/2, y+(pillHeight-buttonH)/2, 0)

	_, helpHeight := internal.MeasureText(font, item.HelpText)
	helpW, _ := text.Draw(font, item.HelpText, theme.HintColor, x+pillW+pad, y+(pillHeight-helpHeight)/2, 0)

	return pillW + pad + helpW
}
