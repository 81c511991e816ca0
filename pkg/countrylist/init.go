// Package countrylist is the SDL front end of the country browser: it brings
// up the window, runs the country and province lists, and wires the loading
// logic of package screens to the world regions client.
package countrylist

import (
	"log/slog"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/config"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
)

// Options configures initialization.
type Options struct {
	WindowTitle     string
	WindowWidth     int32 // Dev mode only
	WindowHeight    int32 // Dev mode only
	DevMode         bool
	ShowBackground  bool
	BackgroundPath  string
	FontPath        string
	AccentColor     uint32
	FlipFaceButtons bool // Direct face mapping (A=A, B=B) instead of the Nintendo-style swap
	LogPath         string
	LogLevel        string
	LogMaxSizeMB    int
	LogMaxBackups   int
	PowerDevice     string // evdev node of the power key; empty disables handling
	SuspendScript   string
	ShutdownCommand string
}

// OptionsFromConfig maps the loaded configuration onto Options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		WindowTitle:     cfg.UI.WindowTitle,
		WindowWidth:     cfg.UI.WindowWidth,
		WindowHeight:    cfg.UI.WindowHeight,
		DevMode:         cfg.UI.DevMode,
		ShowBackground:  cfg.UI.ShowBackground,
		BackgroundPath:  cfg.UI.BackgroundPath,
		FontPath:        cfg.UI.FontPath,
		AccentColor:     cfg.UI.AccentColor,
		FlipFaceButtons: cfg.UI.FlipFaceButtons,
		LogPath:         cfg.Log.Path,
		LogLevel:        cfg.Log.Level,
		LogMaxSizeMB:    cfg.Log.MaxSizeMB,
		LogMaxBackups:   cfg.Log.MaxBackups,
		PowerDevice:     cfg.Power.DevicePath,
		SuspendScript:   cfg.Power.SuspendScript,
		ShutdownCommand: cfg.Power.ShutdownCommand,
	}
}

// Init sets up logging and the theme, then starts SDL. Failures are returned
// as *InfrastructureError.
func Init(options Options) error {
	internal.SetLogOptions(internal.LogOptions{
		Path:       options.LogPath,
		MaxSizeMB:  options.LogMaxSizeMB,
		MaxBackups: options.LogMaxBackups,
	})
	internal.SetRawLogLevel(options.LogLevel)

	if options.DevMode {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	accent := options.AccentColor
	if accent == 0 {
		accent = 0x008080
	}
	internal.SetTheme(internal.DefaultTheme(accent, options.FontPath, options.BackgroundPath))

	err := internal.Init(internal.InitConfig{
		Window: internal.WindowConfig{
			Title:          options.WindowTitle,
			Width:          options.WindowWidth,
			Height:         options.WindowHeight,
			DevMode:        options.DevMode,
			ShowBackground: options.ShowBackground,
		},
		FlipFaceButtons: options.FlipFaceButtons,
		Power: internal.PowerButtonConfig{
			DevicePath:      options.PowerDevice,
			SuspendScript:   options.SuspendScript,
			ShutdownCommand: options.ShutdownCommand,
		},
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	return nil
}

// Close releases all SDL resources and flushes the log file.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
