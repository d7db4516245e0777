// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"image/color"
	"testing"

	"mousegesture.org/f32"
	"mousegesture.org/font"
)

func TestMeasureMono(t *testing.T) {
	s := NewShaper()
	spec := font.Spec{Font: font.Font{Variant: font.Mono}, Size: 20}
	one, err := s.Measure(spec, 1, "RD")
	if err != nil {
		t.Fatal(err)
	}
	if one.Advance <= 0 || one.Ascent <= 0 || one.Height() <= one.Ascent {
		t.Fatalf("unexpected metrics %+v", one)
	}
	two, err := s.Measure(spec, 1, "RDLU")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := two.Advance, 2*one.Advance; got != want {
		t.Errorf("monospace advance: got %v, expected %v", got, want)
	}
	scaled, err := s.Measure(spec, 2, "RD")
	if err != nil {
		t.Fatal(err)
	}
	if scaled.Advance <= one.Advance {
		t.Errorf("scaled advance %v not larger than %v", scaled.Advance, one.Advance)
	}
	if n := len(s.faces.m); n != 2 {
		t.Errorf("got %d cached faces, expected 2", n)
	}
}

func TestDraw(t *testing.T) {
	s := NewShaper()
	spec := font.Spec{Size: 16}
	m, err := s.Measure(spec, 1, "U")
	if err != nil {
		t.Fatal(err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	if err := s.Draw(dst, spec, 1, f32.Pt(2, 2+m.Ascent), "U", color.NRGBA{A: 0xff}); err != nil {
		t.Fatal(err)
	}
	var painted int
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("no pixels painted")
	}
}
