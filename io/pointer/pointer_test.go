// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Scroll, "Scroll"},
		{ContextMenu, "ContextMenu"},
		{Press | Release, "Press|Release"},
		{Move | Scroll, "Move|Scroll"},
		{Press | Release | ContextMenu, "Press|Release|ContextMenu"},
		{0, "None"},
		{Kind(0x40), "Kind(0x40)"},
		{Kind(0xff), "Press|Release|Move|Scroll|ContextMenu|Kind(0xe0)"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestButtonMask(t *testing.T) {
	for _, tc := range []struct {
		b    Button
		mask Buttons
	}{
		{Primary, ButtonPrimary},
		{Tertiary, ButtonTertiary},
		{Secondary, ButtonSecondary},
		{Back, ButtonBack},
		{Forward, ButtonForward},
		{ButtonNone, 0},
		{Button(7), 0},
	} {
		if got := tc.b.Mask(); got != tc.mask {
			t.Errorf("%v.Mask(): got %v, expected %v", tc.b, got, tc.mask)
		}
	}
	// The platform numbering: left=1, right=2, middle=4.
	if ButtonPrimary != 1 || ButtonSecondary != 2 || ButtonTertiary != 4 {
		t.Errorf("unexpected mask values %d %d %d", ButtonPrimary, ButtonSecondary, ButtonTertiary)
	}
}

func TestButtonsString(t *testing.T) {
	if got, want := (ButtonPrimary | ButtonSecondary).String(), "ButtonPrimary|ButtonSecondary"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if got, want := Button(12).String(), "Button(12)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
