// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"mousegesture.org/io/pointer"
)

// ButtonState is the authoritative view of the mouse buttons shared by
// the drag state machine and the wheel and rocker adapters.
type ButtonState struct {
	buttons pointer.Buttons
	held    pointer.Button
	holding bool
}

// Update records the buttons held after e.
func (b *ButtonState) Update(e pointer.Event) {
	b.buttons = e.Buttons
}

// Buttons returns the set of pressed buttons.
func (b *ButtonState) Buttons() pointer.Buttons {
	return b.buttons
}

// Only reports whether btn is pressed and no other button is.
func (b *ButtonState) Only(btn pointer.Button) bool {
	m := btn.Mask()
	return m != 0 && b.buttons == m
}

// Hold marks btn as the button driving the current gesture session.
func (b *ButtonState) Hold(btn pointer.Button) {
	b.held = btn
	b.holding = true
}

// Drop forgets the gesture button.
func (b *ButtonState) Drop() {
	b.held = pointer.ButtonNone
	b.holding = false
}

// Held returns the button driving the current gesture session, if any.
func (b *ButtonState) Held() (pointer.Button, bool) {
	if !b.holding {
		return pointer.ButtonNone, false
	}
	return b.held, true
}
