package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// spinnerSVG is a three-quarter ring; {color} is replaced with the accent.
const spinnerSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48">
<circle cx="24" cy="24" r="20" fill="none" stroke="{color}" stroke-opacity="0.25" stroke-width="6"/>
<path d="M24 4 A20 20 0 0 1 44 24" fill="none" stroke="{color}" stroke-width="6" stroke-linecap="round"/>
</svg>`

// flagPlaceholderSVG is drawn for a row whose flag is missing or still loading.
const flagPlaceholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 48">
<rect x="2" y="2" width="60" height="44" rx="6" fill="none" stroke="{color}" stroke-width="3"/>
<path d="M14 36 L26 20 L36 30 L42 24 L52 36 Z" fill="{color}"/>
</svg>`

// RasterizeSVG renders an SVG document into a width x height PNG.
func RasterizeSVG(svg string, width, height int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func colorHex(c sdl.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// SpinnerPNG is the spinner ring in color c.
func SpinnerPNG(c sdl.Color, size int) ([]byte, error) {
	return RasterizeSVG(strings.ReplaceAll(spinnerSVG, "{color}", colorHex(c)), size, size)
}

// FlagPlaceholderPNG is the empty flag frame in color c.
func FlagPlaceholderPNG(c sdl.Color, width, height int) ([]byte, error) {
	return RasterizeSVG(strings.ReplaceAll(flagPlaceholderSVG, "{color}", colorHex(c)), width, height)
}

// TextureFromImage decodes PNG, JPEG or GIF bytes into a texture.
func TextureFromImage(renderer *sdl.Renderer, data []byte) (*sdl.Texture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadTextureRW(renderer, rw, true)
}
