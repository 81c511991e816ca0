package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colors and assets used for rendering.
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer pill background
	AccentColor          sdl.Color // Title bar, spinner, alert button
	ButtonLabelColor     sdl.Color // Text inside footer pills
	TextColor            sdl.Color
	HighlightedTextColor sdl.Color // Text on the selected row
	HintColor            sdl.Color // Footer help text, empty list text
	BackgroundColor      sdl.Color
	OverlayColor         sdl.Color // Dims the list behind the alert
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme = DefaultTheme(0x008080, "", "")

// DefaultTheme is a dark theme with the given accent color.
func DefaultTheme(accent uint32, fontPath, backgroundPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(accent),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xB4B4B4),
		BackgroundColor:      HexToColor(0x000000),
		OverlayColor:         sdl.Color{R: 0, G: 0, B: 0, A: 200},
		FontPath:             fontPath,
		BackgroundImagePath:  backgroundPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}
