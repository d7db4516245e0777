// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config holds the user settings of the gesture recognizer.

A Config is a plain value. The recognizer derives its alphabet,
thresholds and overlay style from it whenever a new value is applied,
so settings can be reloaded at any time.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"mousegesture.org/font"
	"mousegesture.org/internal/f32color"
	"mousegesture.org/io/pointer"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Prefix is the prefix of the environment variables read by Load.
const Prefix = "MOUSEGESTURE_"

// Config is the set of user settings. Colors accept #rgb, #rrggbb or
// color names; alphas and positions are percentages.
type Config struct {
	// GestureButton is "left", "middle", "right" or empty to disable
	// drag and wheel gestures.
	GestureButton string `env:"GESTURE_BUTTON"`
	// GestureDirections is the direction alphabet, one symbol per
	// uppercase letter, starting at the right and turning clockwise.
	GestureDirections string `env:"GESTURE_DIRECTIONS"`
	WheelGestures     bool   `env:"WHEEL_GESTURES"`
	RockerGestures    bool   `env:"ROCKER_GESTURES"`
	// DistanceThreshold is the distance in logical pixels the pointer
	// must travel from the press before a gesture starts.
	DistanceThreshold int `env:"DISTANCE_THRESHOLD"`
	// DistanceStep is the distance between two direction samples.
	DistanceStep int `env:"DISTANCE_STEP"`

	DisplayTrace    bool   `env:"DISPLAY_TRACE"`
	TraceColor      string `env:"TRACE_COLOR"`
	TraceColorAlpha int    `env:"TRACE_COLOR_ALPHA"`
	TraceWidth      int    `env:"TRACE_WIDTH"`

	DisplayStatus              bool   `env:"DISPLAY_STATUS"`
	StatusFont                 string `env:"STATUS_FONT"`
	StatusTextColor            string `env:"STATUS_TEXT_COLOR"`
	StatusTextColorAlpha       int    `env:"STATUS_TEXT_COLOR_ALPHA"`
	StatusBackgroundColor      string `env:"STATUS_BACKGROUND_COLOR"`
	StatusBackgroundColorAlpha int    `env:"STATUS_BACKGROUND_COLOR_ALPHA"`
	StatusBorderColor          string `env:"STATUS_BORDER_COLOR"`
	StatusBorderColorAlpha     int    `env:"STATUS_BORDER_COLOR_ALPHA"`
	StatusPositionX            int    `env:"STATUS_POSITION_X"`
	StatusPositionY            int    `env:"STATUS_POSITION_Y"`
	StatusPadding              int    `env:"STATUS_PADDING"`

	// GestureMappings maps gesture codes to command names, as
	// comma separated code=name pairs.
	GestureMappings string `env:"GESTURE_MAPPINGS"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL"`
	// LogFormat is text or json.
	LogFormat string `env:"LOG_FORMAT"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		GestureButton:     "right",
		GestureDirections: "RDLU",
		WheelGestures:     true,
		RockerGestures:    true,
		DistanceThreshold: 10,
		DistanceStep:      10,

		DisplayTrace:    true,
		TraceColor:      "#0652ff",
		TraceColorAlpha: 80,
		TraceWidth:      3,

		DisplayStatus:              true,
		StatusFont:                 "24pt monospace",
		StatusTextColor:            "#000000",
		StatusTextColorAlpha:       90,
		StatusBackgroundColor:      "#ffffe4",
		StatusBackgroundColorAlpha: 90,
		StatusBorderColor:          "#b7c9e2",
		StatusBorderColorAlpha:     90,
		StatusPositionX:            50,
		StatusPositionY:            90,
		StatusPadding:              4,

		GestureMappings: DefaultMappings,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load returns the default settings overridden by the environment
// variables of the process.
func Load() (Config, error) {
	return LoadFrom(envMap(os.Environ()))
}

// LoadFrom is like Load but reads the variables from environ.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// Button returns the gesture button. The boolean is false if drag
// gestures are disabled.
func (c Config) Button() (pointer.Button, bool) {
	switch strings.ToLower(c.GestureButton) {
	case "left":
		return pointer.Primary, true
	case "middle":
		return pointer.Tertiary, true
	case "right":
		return pointer.Secondary, true
	default:
		return pointer.ButtonNone, false
	}
}

// Validate reports every setting out of range. The direction alphabet
// is not checked here: the recognizer falls back to a disabled
// alphabet instead.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	switch strings.ToLower(c.GestureButton) {
	case "", "left", "middle", "right":
	default:
		bad("gesture button %q", c.GestureButton)
	}
	if c.DistanceThreshold < 0 {
		bad("distance threshold %d", c.DistanceThreshold)
	}
	if c.DistanceStep < 0 {
		bad("distance step %d", c.DistanceStep)
	}
	if c.TraceWidth <= 0 {
		bad("trace width %d", c.TraceWidth)
	}
	if c.StatusPadding < 0 {
		bad("status padding %d", c.StatusPadding)
	}
	for name, pct := range map[string]int{
		"trace color alpha":             c.TraceColorAlpha,
		"status text color alpha":       c.StatusTextColorAlpha,
		"status background color alpha": c.StatusBackgroundColorAlpha,
		"status border color alpha":     c.StatusBorderColorAlpha,
		"status position x":             c.StatusPositionX,
		"status position y":             c.StatusPositionY,
	} {
		if pct < 0 || pct > 100 {
			bad("%s %d not in 0-100", name, pct)
		}
	}
	for _, col := range []string{c.TraceColor, c.StatusTextColor, c.StatusBackgroundColor, c.StatusBorderColor} {
		if _, err := f32color.Parse(col); err != nil {
			bad("%v", err)
		}
	}
	if _, err := font.Parse(c.StatusFont); err != nil {
		bad("%v", err)
	}
	if _, err := ParseMappings(c.GestureMappings); err != nil {
		bad("%v", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		bad("log level %q", c.LogLevel)
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "text", "console", "json":
	default:
		bad("log format %q", c.LogFormat)
	}
	return errors.Join(errs...)
}
