// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"image/color"

	"golang.org/x/image/draw"

	"mousegesture.org/f32"
)

// SetStatus paints label into the status box, replacing the previous
// label, and records both the old and the new box as dirty. Painting
// the same label twice is a no-op, as is a session without a status
// layer.
//
// The box is measured from the label, placed at StatusPosition percent
// of the free viewport space, and painted border first, then
// background, then text.
func (c *Compositor) SetStatus(label string) error {
	l := c.layers[Status]
	if !c.active || l == nil {
		return nil
	}
	if c.status.drawn && c.status.label == label {
		return nil
	}
	if old := c.status.rect; !old.Empty() {
		c.fill(l, old, color.Transparent, draw.Src)
		c.dirty = append(c.dirty, old)
		c.status.rect = f32.Rectangle{}
	}
	c.status.drawn = false

	st := &c.style
	m, err := c.shaper.Measure(st.StatusFont, c.scale, label)
	if err != nil {
		return err
	}
	pad := st.StatusPadding
	w := m.Advance/c.scale + 2*pad
	h := m.Height()/c.scale + 2*pad
	x := (c.viewport.X - w) * st.StatusPosition.X / 100
	y := (c.viewport.Y - h) * st.StatusPosition.Y / 100
	box := f32.Rect(x, y, x+w, y+h)

	c.fill(l, box.Outset(1), st.StatusBorder, draw.Over)
	c.fill(l, box, color.Transparent, draw.Src)
	c.fill(l, box, st.StatusBackground, draw.Over)
	dot := f32.Pt(x+pad, y+pad).Mul(c.scale).Add(f32.Pt(0, m.Ascent))
	err = c.shaper.Draw(l.img, st.StatusFont, c.scale, dot, label, st.StatusText)

	// The extra pixel covers anti-aliasing around the border.
	c.status.rect = box.Outset(2)
	c.status.label = label
	c.status.drawn = true
	c.dirty = append(c.dirty, c.status.rect)
	return err
}

// StatusRect returns the logical area covered by the status box, or
// the empty rectangle if no status is shown.
func (c *Compositor) StatusRect() f32.Rectangle {
	return c.status.rect
}
