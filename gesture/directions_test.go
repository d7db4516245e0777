// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"errors"
	"math"
	"testing"

	"mousegesture.org/f32"
)

func polar(deg float64) f32.Point {
	a := deg * math.Pi / 180
	return f32.Pt(float32(100*math.Cos(a)), float32(100*math.Sin(a)))
}

func TestDirectionsEvenlySpaced(t *testing.T) {
	for _, src := range []string{"RDLU", "RRdDLdLLuURu", "AbCdEfG", "X", "RL"} {
		t.Run(src, func(t *testing.T) {
			d, err := ParseDirections(src)
			if err != nil {
				t.Fatal(err)
			}
			n := d.Len()
			seen := make(map[string]int)
			for j := 0; j < n; j++ {
				deg := float64(j) * 360 / float64(n)
				got := d.Classify(f32.Point{}, polar(deg))
				if want := d.Symbols()[j]; got != want {
					t.Errorf("angle %v: got %q, expected %q", deg, got, want)
				}
				for i := 0; i < 3; i++ {
					if again := d.Classify(f32.Point{}, polar(deg)); again != got {
						t.Errorf("angle %v: unstable result %q then %q", deg, got, again)
					}
				}
				seen[got]++
			}
			for _, sym := range d.Symbols() {
				if seen[sym] != 1 {
					t.Errorf("symbol %q seen %d times", sym, seen[sym])
				}
			}
		})
	}
}

func TestDirectionsScreenAxes(t *testing.T) {
	d, err := ParseDirections("RDLU")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		to   f32.Point
		want string
	}{
		{f32.Pt(11, 0), "R"},
		{f32.Pt(0, 11), "D"},
		{f32.Pt(-11, 0), "L"},
		{f32.Pt(0, -11), "U"},
		{polar(44), "R"},
		{polar(46), "D"},
		{polar(-44), "R"},
		{polar(-46), "U"},
		{polar(179), "L"},
		{polar(-179), "L"},
	} {
		if got := d.Classify(f32.Point{}, tc.to); got != tc.want {
			t.Errorf("Classify(%v): got %q, expected %q", tc.to, got, tc.want)
		}
	}
	// Translation does not matter.
	if got := d.Classify(f32.Pt(500, 500), f32.Pt(500, 520)); got != "D" {
		t.Errorf("got %q, expected D", got)
	}
}

func TestParseDirections(t *testing.T) {
	d, err := ParseDirections("RRdDLdLLuURu")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"R", "Rd", "D", "Ld", "L", "Lu", "U", "Ru"}
	got := d.Symbols()
	if len(got) != len(want) {
		t.Fatalf("got %q, expected %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbol %d: got %q, expected %q", i, got[i], want[i])
		}
	}
	if d.String() != "RRdDLdLLuURu" {
		t.Errorf("got %q", d.String())
	}
	for _, src := range []string{"", "rDLU", "R1", "RR", "RDLUR", "R-D", "R D"} {
		if _, err := ParseDirections(src); !errors.Is(err, ErrInvalidDirections) {
			t.Errorf("ParseDirections(%q): got %v, expected ErrInvalidDirections", src, err)
		}
	}
}

func TestDisabledDirections(t *testing.T) {
	d := DisabledDirections()
	if !d.Disabled() || d.Len() != 1 {
		t.Fatalf("got %d symbols, expected the disabled alphabet", d.Len())
	}
	for _, to := range []f32.Point{f32.Pt(1, 0), f32.Pt(-3, 7), f32.Pt(0, -1)} {
		if got := d.Classify(f32.Point{}, to); got != "" {
			t.Errorf("got %q, expected empty symbol", got)
		}
	}
	single := NewDirections("R")
	if got := single.Classify(f32.Point{}, f32.Pt(-5, -5)); got != "R" {
		t.Errorf("got %q, expected R", got)
	}
	var zero Directions
	if got := zero.Classify(f32.Point{}, f32.Pt(1, 0)); got != "" {
		t.Errorf("zero alphabet: got %q", got)
	}
}

func TestCode(t *testing.T) {
	var c Code
	for _, sym := range []string{"R", "R", "D", "D", "D", "R", "", "U"} {
		c.Append(sym)
	}
	if got, want := c.String(), "RDRU"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
	if c.Len() != 4 {
		t.Errorf("got length %d, expected 4", c.Len())
	}
	if c.Append("U") {
		t.Error("repeated symbol appended")
	}
	c.Reset()
	if c.String() != "" || c.Len() != 0 {
		t.Errorf("reset code is %q", c.String())
	}
	if !c.Append("U") {
		t.Error("symbol not appended after reset")
	}
	var m Code
	for _, sym := range []string{"Rd", "R", "R", "Rd", "Rd"} {
		m.Append(sym)
	}
	if got, want := m.String(), "RdRRd"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
