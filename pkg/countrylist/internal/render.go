package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// TextRenderer draws strings and keeps their textures in an LRU cache, so a
// list that is redrawn every frame does not rasterize every row every frame.
type TextRenderer struct {
	renderer *sdl.Renderer
	cache    *TextureCache
}

func NewTextRenderer(renderer *sdl.Renderer) *TextRenderer {
	return &TextRenderer{renderer: renderer, cache: NewTextureCacheWithSize(128)}
}

func (t *TextRenderer) texture(font *ttf.Font, text string, c sdl.Color) (*sdl.Texture, int32, int32, error) {
	key := fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, c.R, c.G, c.B, c.A, text)
	if tex, ok := t.cache.Get(key); ok {
		_, _, w, h, err := tex.Query()
		return tex, w, h, err
	}

	surface, err := font.RenderUTF8Blended(text, c)
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	tex, err := t.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}
	t.cache.Set(key, tex)
	return tex, surface.W, surface.H, nil
}

// Draw renders text with its top-left corner at (x, y), clipped to maxWidth
// when maxWidth is positive. It returns the drawn size.
func (t *TextRenderer) Draw(font *ttf.Font, text string, c sdl.Color, x, y, maxWidth int32) (int32, int32) {
	if text == "" || font == nil {
		return 0, 0
	}

	tex, w, h, err := t.texture(font, text, c)
	if err != nil {
		GetInternalLogger().Debug("Text render failed", "text", text, "error", err)
		return 0, 0
	}

	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	t.renderer.Copy(tex, &sdl.Rect{X: 0, Y: 0, W: w, H: h}, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// DrawCentered renders text horizontally centered on cx.
func (t *TextRenderer) DrawCentered(font *ttf.Font, text string, c sdl.Color, cx, y int32) (int32, int32) {
	w, _ := MeasureText(font, text)
	return t.Draw(font, text, c, cx-w/2, y, 0)
}

func (t *TextRenderer) Destroy() {
	t.cache.Destroy()
}

// MeasureText returns the rendered size of text.
func MeasureText(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// WrapText breaks text into lines no wider than maxWidth.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	return wrapWords(text, maxWidth, func(s string) int32 {
		w, _ := MeasureText(font, s)
		return w
	})
}

func wrapWords(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	line := ""
	for _, word := range splitWords(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func splitWords(text string) []string {
	var words []string
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// FillRect fills r with color c.
func FillRect(renderer *sdl.Renderer, r *sdl.Rect, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(r)
}

// DrawRoundedRect fills a rectangle with rounded corners of the given radius.
func DrawRoundedRect(renderer *sdl.Renderer, r *sdl.Rect, radius int32, c sdl.Color) {
	if radius*2 > r.H {
		radius = r.H / 2
	}
	if radius*2 > r.W {
		radius = r.W / 2
	}

	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	renderer.FillRect(&sdl.Rect{X: r.X + radius, Y: r.Y, W: r.W - 2*radius, H: r.H})
	renderer.FillRect(&sdl.Rect{X: r.X, Y: r.Y + radius, W: radius, H: r.H - 2*radius})
	renderer.FillRect(&sdl.Rect{X: r.X + r.W - radius, Y: r.Y + radius, W: radius, H: r.H - 2*radius})

	for dy := int32(0); dy < radius; dy++ {
		// Horizontal inset of the arc at this row.
		y := radius - dy
		inset := radius - isqrt(radius*radius-y*y)
		renderer.FillRect(&sdl.Rect{X: r.X + inset, Y: r.Y + dy, W: radius - inset, H: 1})
		renderer.FillRect(&sdl.Rect{X: r.X + r.W - radius, Y: r.Y + dy, W: radius - inset, H: 1})
		renderer.FillRect(&sdl.Rect{X: r.X + inset, Y: r.Y + r.H - 1 - dy, W: radius - inset, H: 1})
		renderer.FillRect(&sdl.Rect{X: r.X + r.W - radius, Y: r.Y + r.H - 1 - dy, W: radius - inset, H: 1})
	}
}

func isqrt(n int32) int32 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
