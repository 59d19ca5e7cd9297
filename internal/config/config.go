// Package config loads the flexui command configuration from a YAML file
// and FLEXUI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FLEXUI_FPS.
const EnvPrefix = "FLEXUI"

// Surface is the size of the headless render surface.
type Surface struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Config is the full command configuration.
type Config struct {
	// Designs lists design files. Relative paths are resolved against the
	// directory of the config file.
	Designs []string `mapstructure:"designs"`

	// Scene is the class of the design built as the scene root.
	Scene string `mapstructure:"scene"`

	Surface Surface `mapstructure:"surface"`

	// FPS is the frame rate used to derive the simulated frame duration.
	FPS int `mapstructure:"fps"`

	// Frames is the number of frames simulated by the layout command.
	Frames int `mapstructure:"frames"`

	// LineHeight is the item line height of headless selectable windows.
	LineHeight float64 `mapstructure:"line_height"`

	// Windows lists the classes that get a headless host window. Empty means
	// every window element.
	Windows []string `mapstructure:"windows"`

	DebugLog string `mapstructure:"debug_log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Designs:    []string{},
		Surface:    Surface{Width: 816, Height: 624},
		FPS:        60,
		Frames:     60,
		LineHeight: 36,
		Windows:    []string{},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("designs", d.Designs)
	v.SetDefault("scene", d.Scene)
	v.SetDefault("surface.width", d.Surface.Width)
	v.SetDefault("surface.height", d.Surface.Height)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("frames", d.Frames)
	v.SetDefault("line_height", d.LineHeight)
	v.SetDefault("windows", d.Windows)
	v.SetDefault("debug_log", d.DebugLog)
}

// Load reads the config file at path, applies environment overrides and
// validates the result. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if path != "" {
		dir := filepath.Dir(path)
		for i, d := range cfg.Designs {
			if !filepath.IsAbs(d) {
				cfg.Designs[i] = filepath.Join(dir, d)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FieldError describes one invalid configuration key.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Is reports whether target is ErrInvalid.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Validate checks every field and joins the failures.
func (c *Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.FPS < 1 || c.FPS > 240 {
		add("fps", "must be between 1 and 240, got %d", c.FPS)
	}
	if c.Frames < 0 {
		add("frames", "must not be negative, got %d", c.Frames)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		add("surface", "size must be positive, got %gx%g", c.Surface.Width, c.Surface.Height)
	}
	if c.LineHeight <= 0 {
		add("line_height", "must be positive, got %g", c.LineHeight)
	}
	for i, d := range c.Designs {
		if strings.TrimSpace(d) == "" {
			add(fmt.Sprintf("designs[%d]", i), "path is empty")
		}
	}
	for i, w := range c.Windows {
		if strings.TrimSpace(w) == "" {
			add(fmt.Sprintf("windows[%d]", i), "class is empty")
		}
	}
	return errors.Join(errs...)
}

// FrameDuration returns the duration of one simulated frame.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
