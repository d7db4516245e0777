// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer describes the mouse events consumed by the gesture
recognizer.

An Event is an immutable snapshot of one input event in one window:
the pointer position in logical pixels, the button that changed (if
any), the set of buttons held after the change and, for wheel events,
the scroll deltas. The window's client size and device pixel ratio
travel with every event so that consumers never need to query the
window.
*/
package pointer

import (
	"strconv"
	"strings"

	"mousegesture.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Button is the button whose state changed for Press and Release
	// events. It is ButtonNone for other kinds.
	Button Button
	// Buttons are the set of pressed mouse buttons after this event.
	Buttons Buttons
	// Position is the coordinates of the event in the client area of
	// the window, in logical pixels.
	Position f32.Point
	// Scroll is the scroll amount of Scroll events.
	Scroll f32.Point
	// Window identifies the window the event was delivered to.
	Window WindowID
	// Viewport is the size of the client area in logical pixels.
	Viewport f32.Point
	// Scale is the number of device pixels per logical pixel.
	Scale float32
}

// WindowID identifies a top-level window.
type WindowID int

// Kind of an Event. Kinds are bits so that a set of kinds can
// describe the events a listener subscribes to.
type Kind uint8

// Button is the index of a single mouse button, in the order
// used by the platform event (primary, auxiliary, secondary, ...).
type Button int8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Press of a button.
	Press Kind = 1 << iota
	// Release of a button.
	Release
	// Move of the pointer.
	Move
	// Scroll of the wheel.
	Scroll
	// ContextMenu is the request to open a context menu.
	ContextMenu
)

const (
	// ButtonNone marks events without a button change.
	ButtonNone Button = iota - 1
	// Primary is usually the left button.
	Primary
	// Tertiary is usually the middle button.
	Tertiary
	// Secondary is usually the right button.
	Secondary
	// Back is the browser back button.
	Back
	// Forward is the browser forward button.
	Forward
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
	// ButtonBack is the back button.
	ButtonBack
	// ButtonForward is the forward button.
	ButtonForward
)

// buttonMasks maps a Button index to its bit in Buttons. The index order
// and the mask order differ for the middle and right buttons.
var buttonMasks = [...]Buttons{
	Primary:   ButtonPrimary,
	Tertiary:  ButtonTertiary,
	Secondary: ButtonSecondary,
	Back:      ButtonBack,
	Forward:   ButtonForward,
}

// Mask returns the Buttons bit of b, or 0 for ButtonNone and
// unknown buttons.
func (b Button) Mask() Buttons {
	if b < 0 || int(b) >= len(buttonMasks) {
		return 0
	}
	return buttonMasks[b]
}

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case Primary:
		return "Primary"
	case Tertiary:
		return "Tertiary"
	case Secondary:
		return "Secondary"
	case Back:
		return "Back"
	case Forward:
		return "Forward"
	default:
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
}

// Contain reports whether the set b contains
// all of buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	if b.Contain(ButtonBack) {
		strs = append(strs, "ButtonBack")
	}
	if b.Contain(ButtonForward) {
		strs = append(strs, "ButtonForward")
	}
	return strings.Join(strs, "|")
}

func (t Kind) String() string {
	if t == 0 {
		return "None"
	}
	var strs []string
	for tt := Press; tt <= ContextMenu; tt <<= 1 {
		if t&tt > 0 {
			strs = append(strs, tt.string())
		}
	}
	if unknown := t &^ (ContextMenu<<1 - 1); unknown != 0 {
		strs = append(strs, "Kind(0x"+strconv.FormatUint(uint64(unknown), 16)+")")
	}
	return strings.Join(strs, "|")
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	case ContextMenu:
		return "ContextMenu"
	default:
		panic("unknown Kind")
	}
}
