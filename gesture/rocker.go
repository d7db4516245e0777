// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"mousegesture.org/io/pointer"
)

const rockerChord = pointer.ButtonPrimary | pointer.ButtonSecondary

// rockerAdapter emits rocker gestures: one of the left and right
// buttons pressed while the other is held.
type rockerAdapter struct {
	// blocking is set after a rocker gesture until all buttons are
	// released, so the chord does not also click or open a menu.
	blocking bool
}

// press emits a rocker gesture if e completes the left and right
// chord. A chord involving any third button emits nothing.
func (a *rockerAdapter) press(r *Recognizer, e pointer.Event) {
	if !r.cfg.rocker || r.buttons.Buttons() != rockerChord {
		return
	}
	var dir string
	switch e.Button {
	case pointer.Primary:
		dir = "L"
	case pointer.Secondary:
		dir = "R"
	default:
		return
	}
	a.blocking = true
	r.emit(RockerPrefix+dir, e.Window)
}

// block reports whether e is swallowed by a pending rocker gesture. The
// block lifts with the event that releases the last button.
func (a *rockerAdapter) block(e pointer.Event) bool {
	if !a.blocking {
		return false
	}
	if e.Buttons == 0 {
		a.blocking = false
	}
	return true
}
