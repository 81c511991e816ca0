// Package config loads the application settings from a TOML file, a .env file
// and the process environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

// Duration is a time.Duration written as a string such as "30s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type API struct {
	BaseURL   string   `toml:"base_url"`
	Timeout   Duration `toml:"timeout"`
	UserAgent string   `toml:"user_agent"`
}

type Flags struct {
	Enabled           bool    `toml:"enabled"`
	URLTemplate       string  `toml:"url_template"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type UI struct {
	WindowTitle     string `toml:"window_title"`
	Locale          string `toml:"locale"`
	FontPath        string `toml:"font_path"`
	ShowBackground  bool   `toml:"show_background"`
	BackgroundPath  string `toml:"background_path"`
	AccentColor     uint32 `toml:"accent_color"`
	FlipFaceButtons bool   `toml:"flip_face_buttons"`
	WindowWidth     int32  `toml:"-"`
	WindowHeight    int32  `toml:"-"`
	DevMode         bool   `toml:"-"`
}

type Log struct {
	Path       string `toml:"path"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type Power struct {
	DevicePath      string `toml:"device_path"`
	SuspendScript   string `toml:"suspend_script"`
	ShutdownCommand string `toml:"shutdown_command"`
}

type Config struct {
	API   API   `toml:"api"`
	Flags Flags `toml:"flags"`
	UI    UI    `toml:"ui"`
	Log   Log   `toml:"log"`
	Power Power `toml:"power"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		API: API{
			BaseURL:   worldregions.DefaultBaseURL,
			Timeout:   Duration{worldregions.DefaultTimeout},
			UserAgent: worldregions.DefaultUserAgent,
		},
		Flags: Flags{
			Enabled:           true,
			URLTemplate:       worldregions.DefaultFlagURLTemplate,
			RequestsPerSecond: 8,
			Burst:             4,
		},
		UI: UI{
			WindowTitle:  "Countries",
			Locale:       "en",
			AccentColor:  0x008080,
			WindowWidth:  1024,
			WindowHeight: 768,
		},
		Log: Log{
			Path:       "logs/countrylist.log",
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
		Power: Power{
			ShutdownCommand: "/sbin/poweroff",
		},
	}
}

// Load reads path on top of the defaults, applies the environment and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: loading env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(constants.EnvBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(constants.EnvLocale); ok && v != "" {
		c.UI.Locale = v
	}
	if v, ok := lookup(constants.EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(constants.EnvEnvironment); ok {
		c.UI.DevMode = strings.EqualFold(v, "DEV")
	}
	if v, ok := lookup(constants.EnvFlipFaceButtons); ok && v != "" {
		flip, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, &ValidationError{Field: constants.EnvFlipFaceButtons, Reason: "must be a boolean"})
		} else {
			c.UI.FlipFaceButtons = flip
		}
	}
	if v, ok := lookup(constants.EnvWindowWidth); ok && v != "" {
		w, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			errs = append(errs, &ValidationError{Field: constants.EnvWindowWidth, Reason: "must be an integer"})
		} else {
			c.UI.WindowWidth = int32(w)
		}
	}
	if v, ok := lookup(constants.EnvWindowHeight); ok && v != "" {
		h, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			errs = append(errs, &ValidationError{Field: constants.EnvWindowHeight, Reason: "must be an integer"})
		} else {
			c.UI.WindowHeight = int32(h)
		}
	}

	return errors.Join(errs...)
}

// ValidationError reports one invalid setting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Validate checks every setting and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	invalid := func(field, reason string) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason})
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		invalid("api.base_url", "must be an absolute http(s) URL")
	}
	if c.Flags.Enabled {
		if !strings.Contains(c.Flags.URLTemplate, "{code}") {
			invalid("flags.url_template", "must contain {code}")
		}
		if c.Flags.RequestsPerSecond < 0 {
			invalid("flags.requests_per_second", "must not be negative")
		}
		if c.Flags.Burst < 1 {
			invalid("flags.burst", "must be at least 1")
		}
	}
	if _, ok := ParseLevel(c.Log.Level); !ok {
		invalid("log.level", "must be debug, info, warn or error")
	}
	if c.Log.MaxSizeMB < 0 {
		invalid("log.max_size_mb", "must not be negative")
	}
	if c.Log.MaxBackups < 0 {
		invalid("log.max_backups", "must not be negative")
	}
	if c.UI.AccentColor > 0xFFFFFF {
		invalid("ui.accent_color", "must be a 24-bit RGB value")
	}
	if c.UI.WindowWidth <= 0 || c.UI.WindowHeight <= 0 {
		invalid("ui.window size", "must be positive")
	}

	return errors.Join(errs...)
}
