// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"mousegesture.org/font"
)

func TestLookup(t *testing.T) {
	for _, fnt := range []font.Font{
		{},
		{Variant: font.Mono},
		{Variant: font.Mono, Weight: font.Bold, Style: font.Italic},
		{Weight: font.Medium, Style: font.Italic},
	} {
		f, err := Lookup(fnt)
		if err != nil {
			t.Fatalf("Lookup(%v): %v", fnt, err)
		}
		if f.NumGlyphs() == 0 {
			t.Errorf("Lookup(%v): font without glyphs", fnt)
		}
		again, _ := Lookup(fnt)
		if again != f {
			t.Errorf("Lookup(%v): parsed font not reused", fnt)
		}
	}
}

func TestClosest(t *testing.T) {
	for _, tc := range []struct {
		in, want font.Font
	}{
		{font.Font{Variant: font.Mono, Weight: font.Medium}, font.Font{Variant: font.Mono}},
		{font.Font{Variant: font.Mono, Weight: font.Medium, Style: font.Italic}, font.Font{Variant: font.Mono, Style: font.Italic}},
		{font.Font{Variant: "Smallcaps"}, font.Font{}},
		{font.Font{Weight: font.Bold}, font.Font{Weight: font.Bold}},
	} {
		if got := closest(tc.in); got != tc.want {
			t.Errorf("closest(%v): got %v, expected %v", tc.in, got, tc.want)
		}
	}
}
