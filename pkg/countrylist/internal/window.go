package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowConfig sizes and decorates the window.
type WindowConfig struct {
	Title          string
	Width, Height  int32 // Used in dev mode; a handheld takes the display size
	DevMode        bool
	ShowBackground bool
	Options        WindowOptions
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

var window *Window

func initWindow(cfg WindowConfig) (*Window, error) {
	width, height := cfg.Width, cfg.Height
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if !cfg.DevMode {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
		} else {
			width, height = mode.W, mode.H
		}
		x, y = 0, 0
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(cfg.Title, x, y, width, height, cfg.Options.ToSDLFlags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		sdlWindow.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             cfg.Title,
		DisplayBackground: cfg.ShowBackground,
		hasVSync:          vsync,
	}

	if cfg.ShowBackground {
		win.loadBackground()
	}

	return win, nil
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	w.Background = texture
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the window created by Init.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _, err := w.Renderer.GetOutputSize()
	if err != nil {
		width, _ = w.Window.GetSize()
	}
	return width
}

func (w *Window) GetHeight() int32 {
	_, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		_, height = w.Window.GetSize()
	}
	return height
}

// Clear paints the background image or the theme background color.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	w.Renderer.Clear()

	if w.DisplayBackground && w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()})
	}
}

// Present swaps the render buffer and holds ~60fps when VSync is unavailable.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
