// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

// wheelAdapter turns axis aligned wheel flicks during a session into
// wheel gestures.
type wheelAdapter struct{}

// scroll handles a wheel event. Every wheel event in the session's
// window is suppressed: the page must not scroll while the gesture
// button is held.
func (wheelAdapter) scroll(r *Recognizer, e pointer.Event) (suppress bool) {
	s := r.session
	if s == nil || !r.cfg.wheel || e.Window != s.window {
		return false
	}
	dir := wheelDirection(e.Scroll)
	if dir == "" {
		return true
	}
	if s.state != StateWheeling {
		r.log.Debug("drag gesture replaced by wheel", "code", s.code.String())
		r.stopDrag()
	}
	r.emit(WheelPrefix+dir, s.window)
	return true
}

// wheelDirection returns U, D, L or R for a purely vertical or purely
// horizontal delta and "" otherwise.
func wheelDirection(d f32.Point) string {
	switch {
	case d.X == 0 && d.Y > 0:
		return "D"
	case d.X == 0 && d.Y < 0:
		return "U"
	case d.Y == 0 && d.X > 0:
		return "R"
	case d.Y == 0 && d.X < 0:
		return "L"
	default:
		return ""
	}
}
