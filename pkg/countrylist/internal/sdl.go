package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitConfig is everything Init needs to bring up SDL.
type InitConfig struct {
	Window          WindowConfig
	FlipFaceButtons bool
	Power           PowerButtonConfig
}

var (
	powerCancel context.CancelFunc
	powerWG     sync.WaitGroup
)

// Init starts SDL, opens the window, loads fonts and starts the power button
// handler when a device is configured.
func Init(cfg InitConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image codecs unavailable", "error", err)
	}

	InitInputProcessor(cfg.FlipFaceButtons)

	if cfg.Window.Options == (WindowOptions{}) {
		cfg.Window.Options = DefaultWindowOptions(cfg.Window.DevMode)
	}

	w, err := initWindow(cfg.Window)
	if err != nil {
		shutdownSubsystems()
		return fmt.Errorf("creating window: %w", err)
	}
	window = w

	if err := initFonts(DefaultFontSizes); err != nil {
		window.closeWindow()
		window = nil
		shutdownSubsystems()
		return fmt.Errorf("loading fonts: %w", err)
	}

	if !cfg.Window.DevMode && cfg.Power.DevicePath != "" {
		startPowerButton(cfg.Power)
	}

	return nil
}

func startPowerButton(cfg PowerButtonConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	powerCancel = cancel
	powerWG.Add(1)

	go func() {
		defer powerWG.Done()
		if err := RunPowerButtonHandler(ctx, cfg); err != nil {
			GetInternalLogger().Error("Power button handler stopped", "device", cfg.DevicePath, "error", err)
		}
	}()
}

func shutdownSubsystems() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	if powerCancel != nil {
		powerCancel()
		powerWG.Wait()
	}

	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	shutdownSubsystems()
	CloseLogger()
}
