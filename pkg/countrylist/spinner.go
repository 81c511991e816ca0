package countrylist

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
)

// spinner is the rasterized loading ring, rotated a little every frame.
type spinner struct {
	texture *sdl.Texture
	size    int32
	angle   float64
}

func newSpinner(renderer *sdl.Renderer, size int32) *spinner {
	s := &spinner{size: size}

	data, err := internal.SpinnerPNG(internal.GetTheme().AccentColor, int(size))
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize spinner", "error", err)
		return s
	}
	if s.texture, err = internal.TextureFromImage(renderer, data); err != nil {
		internal.GetInternalLogger().Error("Failed to load spinner texture", "error", err)
	}
	return s
}

// draw renders the spinner centered on (cx, cy) and advances it.
func (s *spinner) draw(renderer *sdl.Renderer, cx, cy int32) {
	if s.texture == nil {
		return
	}
	dst := &sdl.Rect{X: cx - s.size/2, Y: cy - s.size/2, W: s.size, H: s.size}
	renderer.CopyEx(s.texture, nil, dst, s.angle, nil, sdl.FLIP_NONE)

	s.angle += constants.SpinnerStep
	if s.angle >= 360 {
		s.angle -= 360
	}
}

func (s *spinner) destroy() {
	if s.texture != nil {
		s.texture.Destroy()
	}
}
