package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes at a 480 pixel tall screen; they scale with the
// window height.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{Large: 30, Medium: 22, Small: 16}

// fallbackFontPaths are tried when the theme font is missing, mostly for dev
// mode on a desktop.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	path       string
}

// Fonts are the open fonts, valid between Init and Cleanup.
var Fonts fontsManager

var errNoFont = errors.New("no usable font found")

// GetScaleFactor relates the window height to the 480 pixel baseline.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}
	scale := float32(window.GetHeight()) / 480
	if scale < 1 {
		return 1
	}
	return scale
}

// Scale multiplies a baseline pixel size by the scale factor.
func Scale(v int32) int32 {
	return int32(float32(v) * GetScaleFactor())
}

func resolveFontPath(preferred string) (string, error) {
	candidates := append([]string{preferred}, fallbackFontPaths...)
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errNoFont
}

func initFonts(sizes FontSizes) error {
	path, err := resolveFontPath(GetTheme().FontPath)
	if err != nil {
		return err
	}

	scale := GetScaleFactor()
	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, int(float32(size)*scale))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return font, nil
	}

	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		closeFonts()
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		closeFonts()
		return err
	}
	Fonts.path = path

	GetInternalLogger().Debug("Fonts loaded", "path", path, "scale", scale)
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = fontsManager{}
}
