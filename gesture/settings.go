// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"image/color"
	"log/slog"

	"mousegesture.org/config"
	"mousegesture.org/f32"
	"mousegesture.org/font"
	"mousegesture.org/internal/f32color"
	"mousegesture.org/io/pointer"
	"mousegesture.org/overlay"
)

// settings is the state derived from a config.Config.
type settings struct {
	button  pointer.Button
	enabled bool
	dirs    Directions
	// threshold is the distance from the press that commits a session,
	// step the distance between direction samples afterwards.
	threshold, step float64
	wheel, rocker   bool
	style           overlay.Style
}

// derive computes settings from cfg. Malformed values fall back to
// their defaults with a warning; they never fail.
func derive(cfg config.Config, log *slog.Logger) settings {
	def := config.Default()
	s := settings{
		threshold: float64(max(cfg.DistanceThreshold, 0)),
		step:      float64(max(cfg.DistanceStep, 0)),
		wheel:     cfg.WheelGestures,
		rocker:    cfg.RockerGestures,
	}
	s.button, s.enabled = cfg.Button()

	dirs, err := ParseDirections(cfg.GestureDirections)
	if err != nil {
		log.Warn("directional gestures disabled", "directions", cfg.GestureDirections, "err", err)
		dirs = DisabledDirections()
	}
	s.dirs = dirs

	parseColor := func(v, fallback string, pct int) color.NRGBA {
		c, err := f32color.Parse(v)
		if err != nil {
			log.Warn("using default color", "color", v, "default", fallback, "err", err)
			c, _ = f32color.Parse(fallback)
		}
		return f32color.MulAlpha(c, f32color.Percent(float32(pct)))
	}
	statusFont, err := font.Parse(cfg.StatusFont)
	if err != nil {
		log.Warn("using default status font", "font", cfg.StatusFont, "err", err)
		statusFont, _ = font.Parse(def.StatusFont)
	}
	width := cfg.TraceWidth
	if width <= 0 {
		width = def.TraceWidth
	}
	s.style = overlay.Style{
		DisplayTrace: cfg.DisplayTrace,
		// The trace alpha applies to the whole layer, not per stroke.
		TraceColor: parseColor(cfg.TraceColor, def.TraceColor, 100),
		TraceAlpha: float32(cfg.TraceColorAlpha) / 100,
		TraceWidth: float32(width),

		DisplayStatus:    cfg.DisplayStatus,
		StatusFont:       statusFont,
		StatusText:       parseColor(cfg.StatusTextColor, def.StatusTextColor, cfg.StatusTextColorAlpha),
		StatusBackground: parseColor(cfg.StatusBackgroundColor, def.StatusBackgroundColor, cfg.StatusBackgroundColorAlpha),
		StatusBorder:     parseColor(cfg.StatusBorderColor, def.StatusBorderColor, cfg.StatusBorderColorAlpha),
		StatusPosition:   f32.Pt(float32(cfg.StatusPositionX), float32(cfg.StatusPositionY)),
		StatusPadding:    float32(max(cfg.StatusPadding, 0)),
	}
	return s
}
