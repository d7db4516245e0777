// SPDX-License-Identifier: Unlicense OR MIT

package record

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mousegesture.org/f32"
	"mousegesture.org/io/pointer"
)

func TestRoundTrip(t *testing.T) {
	evs := []pointer.Event{
		{Kind: pointer.Press, Button: pointer.Secondary, Buttons: pointer.ButtonSecondary, Position: f32.Pt(1, 2), Window: 3, Viewport: f32.Pt(800, 600), Scale: 2},
		{Kind: pointer.Scroll, Button: pointer.ButtonNone, Buttons: pointer.ButtonSecondary, Scroll: f32.Pt(0, -3), Window: 3, Viewport: f32.Pt(800, 600), Scale: 1},
	}
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, e := range evs {
		if err := enc.Encode(e); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ReadAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(evs) {
		t.Fatalf("got %d events, expected %d", len(got), len(evs))
	}
	for i := range evs {
		if got[i] != evs[i] {
			t.Errorf("event %d: got %+v, expected %+v", i, got[i], evs[i])
		}
	}
}

func TestDecodeHandWritten(t *testing.T) {
	src := `
# right button drag
{"kind":"press","button":"secondary","buttons":2,"width":400,"height":300}
{"kind":"move","buttons":2,"x":20,"width":400,"height":300}

{"kind":"Release","button":"Secondary","buttons":0,"x":20,"width":400,"height":300}
`
	evs, err := ReadAll(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 3 {
		t.Fatalf("got %d events, expected 3", len(evs))
	}
	if e := evs[1]; e.Kind != pointer.Move || e.Button != pointer.ButtonNone || e.Position != f32.Pt(20, 0) || e.Scale != 1 {
		t.Errorf("got %+v", e)
	}
	if e := evs[2]; e.Kind != pointer.Release || e.Button != pointer.Secondary {
		t.Errorf("got %+v", e)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, src := range []string{
		`{"kind":"hover"}`,
		`{"kind":"press"}`,
		`{"kind":"press","button":"thumb"}`,
		`{"kind":"move","pressure":1}`,
		`{"kind":`,
	} {
		_, err := NewDecoder(strings.NewReader(src)).Decode()
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%s: got %v, expected ErrFormat", src, err)
		}
	}
	err := NewEncoder(new(bytes.Buffer)).Encode(pointer.Event{Kind: pointer.Press | pointer.Move})
	if !errors.Is(err, ErrFormat) {
		t.Errorf("got %v for a combined kind, expected ErrFormat", err)
	}
}
