// SPDX-License-Identifier: Unlicense OR MIT

/*
Package evdev reads relative pointer devices through the Linux input
event interface and translates their raw events into pointer.Events.

A Decoder is fed the raw input_event stream and tracks a virtual
pointer position inside a fixed viewport. Events are delivered once
per SYN_REPORT: motion first, then wheel, then buttons in the order
they were reported.
*/
package evdev

import (
	"encoding/binary"
	"errors"

	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

// Event types and codes of linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	synReport  = 0x00
	synDropped = 0x03

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08
)

// ErrEventSize is returned for an input_event size other than 16 or 24
// bytes.
var ErrEventSize = errors.New("evdev: unsupported event size")

// Raw is one input_event without its timestamp.
type Raw struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Decoder converts raw input events to pointer events.
type Decoder struct {
	// Window is stamped on every event.
	Window pointer.WindowID
	// Viewport bounds the virtual pointer position, in logical pixels.
	Viewport f32.Point
	// Scale is the device pixel ratio stamped on every event.
	Scale float32
	// ContextMenu makes the Decoder follow each secondary button
	// release with a ContextMenu event, like desktop hosts do.
	ContextMenu bool

	size    int
	buf     []byte
	pos     f32.Point
	buttons pointer.Buttons

	// Pending state of the current report.
	motion  f32.Point
	scroll  f32.Point
	keys    []Raw
	dropped bool
}

// NewDecoder returns a Decoder for input_event records of size bytes:
// 24 on 64-bit kernels, 16 on 32-bit ones. The pointer starts at the
// center of viewport.
func NewDecoder(size int, viewport f32.Point) (*Decoder, error) {
	if size != 16 && size != 24 {
		return nil, ErrEventSize
	}
	return &Decoder{
		Viewport: viewport,
		Scale:    1,
		size:     size,
		pos:      viewport.Mul(.5),
	}, nil
}

// Position returns the virtual pointer position.
func (d *Decoder) Position() f32.Point {
	return d.pos
}

// Feed decodes the complete records of chunk, keeping any trailing
// partial record for the next call, and appends the resulting events
// to evs.
func (d *Decoder) Feed(evs []pointer.Event, chunk []byte) []pointer.Event {
	d.buf = append(d.buf, chunk...)
	n := 0
	for ; len(d.buf)-n >= d.size; n += d.size {
		evs = d.Decode(evs, d.parse(d.buf[n:n+d.size]))
	}
	d.buf = append(d.buf[:0], d.buf[n:]...)
	return evs
}

func (d *Decoder) parse(rec []byte) Raw {
	// The timestamp is a struct timeval of two longs.
	o := d.size - 8
	return Raw{
		Type:  binary.LittleEndian.Uint16(rec[o:]),
		Code:  binary.LittleEndian.Uint16(rec[o+2:]),
		Value: int32(binary.LittleEndian.Uint32(rec[o+4:])),
	}
}

// Decode processes one raw event and appends the pointer events it
// completes to evs.
func (d *Decoder) Decode(evs []pointer.Event, r Raw) []pointer.Event {
	switch r.Type {
	case evSyn:
		switch r.Code {
		case synReport:
			if d.dropped {
				// The report after SYN_DROPPED resynchronizes; its
				// partial content is unreliable.
				d.dropped = false
				d.reset()
				return evs
			}
			return d.flush(evs)
		case synDropped:
			d.dropped = true
		}
	case evRel:
		switch r.Code {
		case relX:
			d.motion.X += float32(r.Value)
		case relY:
			d.motion.Y += float32(r.Value)
		case relWheel:
			// Positive values turn the wheel away from the user.
			d.scroll.Y -= float32(r.Value)
		case relHWheel:
			d.scroll.X += float32(r.Value)
		}
	case evKey:
		// Auto repeat (2) is meaningless for buttons.
		if r.Value == 0 || r.Value == 1 {
			if _, ok := buttonOf(r.Code); ok {
				d.keys = append(d.keys, r)
			}
		}
	}
	return evs
}

func (d *Decoder) flush(evs []pointer.Event) []pointer.Event {
	defer d.reset()
	if d.motion != (f32.Point{}) {
		p := d.pos.Add(d.motion)
		d.pos = f32.Pt(clamp(p.X, d.Viewport.X), clamp(p.Y, d.Viewport.Y))
		evs = append(evs, d.event(pointer.Move, pointer.ButtonNone))
	}
	if d.scroll != (f32.Point{}) {
		e := d.event(pointer.Scroll, pointer.ButtonNone)
		e.Scroll = d.scroll
		evs = append(evs, e)
	}
	for _, k := range d.keys {
		b, _ := buttonOf(k.Code)
		if k.Value == 1 {
			if d.buttons.Contain(b.Mask()) {
				continue
			}
			d.buttons |= b.Mask()
			evs = append(evs, d.event(pointer.Press, b))
			continue
		}
		if !d.buttons.Contain(b.Mask()) {
			continue
		}
		d.buttons &^= b.Mask()
		evs = append(evs, d.event(pointer.Release, b))
		if d.ContextMenu && b == pointer.Secondary {
			evs = append(evs, d.event(pointer.ContextMenu, pointer.ButtonNone))
		}
	}
	return evs
}

func (d *Decoder) reset() {
	d.motion = f32.Point{}
	d.scroll = f32.Point{}
	d.keys = d.keys[:0]
}

func (d *Decoder) event(k pointer.Kind, b pointer.Button) pointer.Event {
	return pointer.Event{
		Kind:     k,
		Button:   b,
		Buttons:  d.buttons,
		Position: d.pos,
		Window:   d.Window,
		Viewport: d.Viewport,
		Scale:    d.Scale,
	}
}

func buttonOf(code uint16) (pointer.Button, bool) {
	switch code {
	case btnLeft:
		return pointer.Primary, true
	case btnRight:
		return pointer.Secondary, true
	case btnMiddle:
		return pointer.Tertiary, true
	case btnSide:
		return pointer.Back, true
	case btnExtra:
		return pointer.Forward, true
	default:
		return pointer.ButtonNone, false
	}
}

func clamp(v, hi float32) float32 {
	switch {
	case v < 0:
		return 0
	case hi > 0 && v > hi:
		return hi
	}
	return v
}
