// SPDX-License-Identifier: Unlicense OR MIT

// Package term translates terminal mouse reports into pointer events.
//
// Terminals report the pointer in character cells and the button state
// as a mask. A Translator tracks the previous report to derive presses,
// releases and motion, and maps cells to logical pixels so distance
// thresholds keep their meaning.
package term

import (
	"github.com/gdamore/tcell/v2"

	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

// Cell is the default size of a character cell in logical pixels.
var Cell = f32.Pt(8, 16)

// buttons maps tcell buttons to pointer buttons, in the order
// presses and releases are reported within one mouse event.
var buttons = [...]struct {
	mask tcell.ButtonMask
	btn  pointer.Button
}{
	{tcell.ButtonPrimary, pointer.Primary},
	{tcell.ButtonMiddle, pointer.Tertiary},
	{tcell.ButtonSecondary, pointer.Secondary},
}

// Translator converts tcell mouse events of one window.
type Translator struct {
	Window pointer.WindowID
	// Cell is the size of a character cell. Zero means the package
	// default.
	Cell f32.Point

	cols, rows int
	pressed    pointer.Buttons
	pos        f32.Point
	seen       bool
}

// Resize records the terminal size in cells.
func (t *Translator) Resize(cols, rows int) {
	t.cols, t.rows = cols, rows
}

// Viewport returns the terminal size in logical pixels.
func (t *Translator) Viewport() f32.Point {
	c := t.cell()
	return f32.Pt(float32(t.cols)*c.X, float32(t.rows)*c.Y)
}

// CellAt returns the cell containing the logical point p.
func (t *Translator) CellAt(p f32.Point) (x, y int) {
	c := t.cell()
	return int(p.X / c.X), int(p.Y / c.Y)
}

func (t *Translator) cell() f32.Point {
	if t.Cell == (f32.Point{}) {
		return Cell
	}
	return t.Cell
}

// Translate appends the pointer events described by ev to evs. Motion
// comes first, then wheel, then button changes. Pointer positions are
// at the center of the reported cell.
func (t *Translator) Translate(evs []pointer.Event, ev *tcell.EventMouse) []pointer.Event {
	x, y := ev.Position()
	c := t.cell()
	pos := f32.Pt((float32(x)+.5)*c.X, (float32(y)+.5)*c.Y)
	mask := ev.Buttons()

	if !t.seen || pos != t.pos {
		t.pos = pos
		if t.seen {
			evs = append(evs, t.event(pointer.Move, pointer.ButtonNone))
		}
		t.seen = true
	}
	if d := wheel(mask); d != (f32.Point{}) {
		e := t.event(pointer.Scroll, pointer.ButtonNone)
		e.Scroll = d
		evs = append(evs, e)
	}
	for _, b := range buttons {
		m := b.btn.Mask()
		switch down := mask&b.mask != 0; {
		case down && !t.pressed.Contain(m):
			t.pressed |= m
			evs = append(evs, t.event(pointer.Press, b.btn))
		case !down && t.pressed.Contain(m):
			t.pressed &^= m
			evs = append(evs, t.event(pointer.Release, b.btn))
		}
	}
	return evs
}

func wheel(mask tcell.ButtonMask) f32.Point {
	var d f32.Point
	if mask&tcell.WheelUp != 0 {
		d.Y--
	}
	if mask&tcell.WheelDown != 0 {
		d.Y++
	}
	if mask&tcell.WheelLeft != 0 {
		d.X--
	}
	if mask&tcell.WheelRight != 0 {
		d.X++
	}
	return d
}

func (t *Translator) event(k pointer.Kind, b pointer.Button) pointer.Event {
	return pointer.Event{
		Kind:     k,
		Button:   b,
		Buttons:  t.pressed,
		Position: t.pos,
		Window:   t.Window,
		Viewport: t.Viewport(),
		Scale:    1,
	}
}
