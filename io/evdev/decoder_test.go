// SPDX-License-Identifier: Unlicense OR MIT

package evdev

import (
	"encoding/binary"
	"testing"

	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

func record(size int, r Raw) []byte {
	b := make([]byte, size)
	o := size - 8
	binary.LittleEndian.PutUint16(b[o:], r.Type)
	binary.LittleEndian.PutUint16(b[o+2:], r.Code)
	binary.LittleEndian.PutUint32(b[o+4:], uint32(r.Value))
	return b
}

var syn = Raw{Type: evSyn, Code: synReport}

func stream(size int, raws ...Raw) []byte {
	var b []byte
	for _, r := range raws {
		b = append(b, record(size, r)...)
	}
	return b
}

func newTestDecoder(t *testing.T, size int) *Decoder {
	t.Helper()
	d, err := NewDecoder(size, f32.Pt(200, 100))
	if err != nil {
		t.Fatal(err)
	}
	d.Window = 4
	return d
}

func TestDecodeMotion(t *testing.T) {
	for _, size := range []int{16, 24} {
		d := newTestDecoder(t, size)
		evs := d.Feed(nil, stream(size,
			Raw{evRel, relX, 5},
			Raw{evRel, relY, -3},
			Raw{evRel, relX, 2},
			syn,
		))
		if len(evs) != 1 {
			t.Fatalf("size %d: got %d events, expected 1", size, len(evs))
		}
		e := evs[0]
		if e.Kind != pointer.Move || e.Position != f32.Pt(107, 47) || e.Window != 4 {
			t.Errorf("size %d: got %+v", size, e)
		}
	}
}

func TestDecodeClamp(t *testing.T) {
	d := newTestDecoder(t, 24)
	d.Feed(nil, stream(24, Raw{evRel, relX, -1000}, Raw{evRel, relY, 1000}, syn))
	if p := d.Position(); p != f32.Pt(0, 100) {
		t.Errorf("got position %v, expected (0,100)", p)
	}
}

func TestDecodeButtons(t *testing.T) {
	d := newTestDecoder(t, 24)
	d.ContextMenu = true
	evs := d.Feed(nil, stream(24,
		Raw{evKey, btnRight, 1}, syn,
		Raw{evRel, relX, 20}, Raw{evKey, btnLeft, 1}, syn,
		Raw{evKey, btnLeft, 2}, syn,
		Raw{evKey, btnLeft, 0}, Raw{evKey, btnRight, 0}, syn,
		Raw{evKey, 0x1e, 1}, syn,
	))
	want := []struct {
		kind    pointer.Kind
		button  pointer.Button
		buttons pointer.Buttons
	}{
		{pointer.Press, pointer.Secondary, pointer.ButtonSecondary},
		{pointer.Move, pointer.ButtonNone, pointer.ButtonSecondary},
		{pointer.Press, pointer.Primary, pointer.ButtonSecondary | pointer.ButtonPrimary},
		{pointer.Release, pointer.Primary, pointer.ButtonSecondary},
		{pointer.Release, pointer.Secondary, 0},
		{pointer.ContextMenu, pointer.ButtonNone, 0},
	}
	if len(evs) != len(want) {
		t.Fatalf("got %d events, expected %d: %+v", len(evs), len(want), evs)
	}
	for i, w := range want {
		e := evs[i]
		if e.Kind != w.kind || e.Button != w.button || e.Buttons != w.buttons {
			t.Errorf("event %d: got %v %v %v, expected %v %v %v", i, e.Kind, e.Button, e.Buttons, w.kind, w.button, w.buttons)
		}
	}
}

func TestDecodeWheel(t *testing.T) {
	d := newTestDecoder(t, 24)
	evs := d.Feed(nil, stream(24, Raw{evRel, relWheel, 1}, syn, Raw{evRel, relHWheel, -2}, syn))
	if len(evs) != 2 {
		t.Fatalf("got %d events, expected 2", len(evs))
	}
	if evs[0].Kind != pointer.Scroll || evs[0].Scroll != f32.Pt(0, -1) {
		t.Errorf("got %+v, expected an upward scroll", evs[0])
	}
	if evs[1].Scroll != f32.Pt(-2, 0) {
		t.Errorf("got scroll %v, expected (-2,0)", evs[1].Scroll)
	}
}

func TestDecodePartial(t *testing.T) {
	d := newTestDecoder(t, 16)
	b := stream(16, Raw{evRel, relX, 1}, syn)
	var evs []pointer.Event
	for i := range b {
		evs = d.Feed(evs, b[i:i+1])
	}
	if len(evs) != 1 || evs[0].Position != f32.Pt(101, 50) {
		t.Errorf("got %+v", evs)
	}
}

func TestDecodeDropped(t *testing.T) {
	d := newTestDecoder(t, 24)
	evs := d.Feed(nil, stream(24,
		Raw{evRel, relX, 10},
		Raw{evSyn, synDropped, 0},
		Raw{evKey, btnLeft, 1},
		syn,
		Raw{evRel, relY, 1},
		syn,
	))
	if len(evs) != 1 || evs[0].Kind != pointer.Move || evs[0].Position != f32.Pt(100, 51) {
		t.Errorf("got %+v, expected the dropped report discarded", evs)
	}
}

func TestEventSize(t *testing.T) {
	if _, err := NewDecoder(20, f32.Pt(1, 1)); err != ErrEventSize {
		t.Errorf("got %v, expected ErrEventSize", err)
	}
}
