// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"errors"
	"testing"

	"mousegesture.org/io/pointer"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
	b, ok := Default().Button()
	if !ok || b != pointer.Secondary {
		t.Errorf("got button %v %v, expected Secondary", b, ok)
	}
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MOUSEGESTURE_GESTURE_BUTTON":     "middle",
		"MOUSEGESTURE_DISTANCE_THRESHOLD": "25",
		"MOUSEGESTURE_WHEEL_GESTURES":     "false",
		"MOUSEGESTURE_GESTURE_DIRECTIONS": "RRdDLdLLuURu",
		"GESTURE_BUTTON":                  "left",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GestureButton != "middle" {
		t.Errorf("got button %q, expected middle", cfg.GestureButton)
	}
	if cfg.DistanceThreshold != 25 || cfg.DistanceStep != 10 {
		t.Errorf("got thresholds %d/%d, expected 25/10", cfg.DistanceThreshold, cfg.DistanceStep)
	}
	if cfg.WheelGestures || !cfg.RockerGestures {
		t.Errorf("got wheel %v rocker %v", cfg.WheelGestures, cfg.RockerGestures)
	}
	if cfg.GestureDirections != "RRdDLdLLuURu" {
		t.Errorf("got directions %q", cfg.GestureDirections)
	}
	if cfg.TraceColor != "#0652ff" {
		t.Errorf("default lost: trace color %q", cfg.TraceColor)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	for _, environ := range []map[string]string{
		{"MOUSEGESTURE_TRACE_COLOR_ALPHA": "120"},
		{"MOUSEGESTURE_GESTURE_BUTTON": "thumb"},
		{"MOUSEGESTURE_STATUS_FONT": "huge"},
		{"MOUSEGESTURE_STATUS_FONT": "NaNpx monospace"},
		{"MOUSEGESTURE_TRACE_COLOR": "#12"},
		{"MOUSEGESTURE_DISTANCE_STEP": "-1"},
		{"MOUSEGESTURE_GESTURE_MAPPINGS": "U"},
		{"MOUSEGESTURE_LOG_LEVEL": "trace"},
		{"MOUSEGESTURE_LOG_FORMAT": "xml"},
	} {
		if _, err := LoadFrom(environ); !errors.Is(err, ErrInvalid) {
			t.Errorf("LoadFrom(%v): got %v, expected ErrInvalid", environ, err)
		}
	}
	if _, err := LoadFrom(map[string]string{"MOUSEGESTURE_TRACE_WIDTH": "wide"}); err == nil {
		t.Error("unparsable integer accepted")
	}
}

func TestButton(t *testing.T) {
	for _, tc := range []struct {
		name string
		b    pointer.Button
		ok   bool
	}{
		{"left", pointer.Primary, true},
		{"Middle", pointer.Tertiary, true},
		{"right", pointer.Secondary, true},
		{"", pointer.ButtonNone, false},
	} {
		cfg := Config{GestureButton: tc.name}
		b, ok := cfg.Button()
		if b != tc.b || ok != tc.ok {
			t.Errorf("Button(%q): got %v %v, expected %v %v", tc.name, b, ok, tc.b, tc.ok)
		}
	}
}

func TestMappings(t *testing.T) {
	m, err := ParseMappings(DefaultMappings)
	if err != nil {
		t.Fatal(err)
	}
	for code, want := range map[string]string{
		"UR":     "UR: newTab",
		"WheelD": "WheelD: nextTab",
		"LURD":   "LURD",
		"":       "",
	} {
		if got := m.Label(code); got != want {
			t.Errorf("Label(%q): got %q, expected %q", code, got, want)
		}
	}
	if _, err := ParseMappings("U=up,=down"); err == nil {
		t.Error("empty code accepted")
	}
	m, err = ParseMappings(" U = up , U=top ,")
	if err != nil {
		t.Fatal(err)
	}
	if m["U"] != "top" {
		t.Errorf("got %q, expected top", m["U"])
	}
}
