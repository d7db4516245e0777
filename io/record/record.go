// SPDX-License-Identifier: Unlicense OR MIT

// Package record reads and writes pointer event recordings as JSON
// lines, one event per line.
//
// A recording line looks like
//
//	{"kind":"press","button":"secondary","buttons":2,"x":10,"y":20,"width":800,"height":600}
//
// Blank lines and lines starting with # are ignored.
package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

// ErrFormat is wrapped by every malformed recording error.
var ErrFormat = errors.New("record: malformed event")

type line struct {
	Kind    string  `json:"kind"`
	Button  string  `json:"button,omitempty"`
	Buttons uint8   `json:"buttons"`
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	DX      float32 `json:"dx,omitempty"`
	DY      float32 `json:"dy,omitempty"`
	Window  int     `json:"window,omitempty"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Scale   float32 `json:"scale,omitempty"`
}

var kinds = map[string]pointer.Kind{
	"press":       pointer.Press,
	"release":     pointer.Release,
	"move":        pointer.Move,
	"scroll":      pointer.Scroll,
	"contextmenu": pointer.ContextMenu,
}

var buttons = map[string]pointer.Button{
	"":          pointer.ButtonNone,
	"primary":   pointer.Primary,
	"tertiary":  pointer.Tertiary,
	"secondary": pointer.Secondary,
	"back":      pointer.Back,
	"forward":   pointer.Forward,
}

// Encoder writes events.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes e as one line. Events of a single kind only can be
// encoded.
func (enc *Encoder) Encode(e pointer.Event) error {
	l := line{
		Kind:    strings.ToLower(e.Kind.String()),
		Buttons: uint8(e.Buttons),
		X:       e.Position.X,
		Y:       e.Position.Y,
		DX:      e.Scroll.X,
		DY:      e.Scroll.Y,
		Window:  int(e.Window),
		Width:   e.Viewport.X,
		Height:  e.Viewport.Y,
	}
	if _, ok := kinds[l.Kind]; !ok {
		return fmt.Errorf("%w: kind %v", ErrFormat, e.Kind)
	}
	if e.Button != pointer.ButtonNone {
		l.Button = strings.ToLower(e.Button.String())
	}
	if e.Scale != 1 {
		l.Scale = e.Scale
	}
	return enc.enc.Encode(l)
}

// Decoder reads events.
type Decoder struct {
	s    *bufio.Scanner
	line int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{s: bufio.NewScanner(r)}
}

// Decode returns the next event, or io.EOF at the end of the
// recording.
func (d *Decoder) Decode() (pointer.Event, error) {
	for d.s.Scan() {
		d.line++
		b := bytes.TrimSpace(d.s.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		var l line
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&l); err != nil {
			return pointer.Event{}, fmt.Errorf("%w: line %d: %v", ErrFormat, d.line, err)
		}
		e, err := l.event()
		if err != nil {
			return pointer.Event{}, fmt.Errorf("line %d: %w", d.line, err)
		}
		return e, nil
	}
	if err := d.s.Err(); err != nil {
		return pointer.Event{}, err
	}
	return pointer.Event{}, io.EOF
}

func (l line) event() (pointer.Event, error) {
	k, ok := kinds[strings.ToLower(l.Kind)]
	if !ok {
		return pointer.Event{}, fmt.Errorf("%w: kind %q", ErrFormat, l.Kind)
	}
	b, ok := buttons[strings.ToLower(l.Button)]
	if !ok {
		return pointer.Event{}, fmt.Errorf("%w: button %q", ErrFormat, l.Button)
	}
	if (k == pointer.Press || k == pointer.Release) && b == pointer.ButtonNone {
		return pointer.Event{}, fmt.Errorf("%w: %s without button", ErrFormat, l.Kind)
	}
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}
	return pointer.Event{
		Kind:     k,
		Button:   b,
		Buttons:  pointer.Buttons(l.Buttons),
		Position: f32.Pt(l.X, l.Y),
		Scroll:   f32.Pt(l.DX, l.DY),
		Window:   pointer.WindowID(l.Window),
		Viewport: f32.Pt(l.Width, l.Height),
		Scale:    scale,
	}, nil
}

// ReadAll decodes every event of r.
func ReadAll(r io.Reader) ([]pointer.Event, error) {
	d := NewDecoder(r)
	var evs []pointer.Event
	for {
		e, err := d.Decode()
		if err == io.EOF {
			return evs, nil
		}
		if err != nil {
			return evs, err
		}
		evs = append(evs, e)
	}
}
