// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"mousegesture.org/f32"
)

// kappa is the cubic Bézier control distance approximating a quarter
// circle of radius 1.
const kappa = 0.5522847498

// Segment strokes the line from one logical point to another on the
// trace layer with round caps and records the touched area. It is a
// no-op if the trace layer is not enabled.
func (c *Compositor) Segment(from, to f32.Point) {
	l := c.layers[Trace]
	if !c.active || l == nil {
		return
	}
	width := c.style.TraceWidth
	r := segmentBounds(from, to, width)
	c.dirty = append(c.dirty, r)

	dr := DeviceRect(r, c.scale).Intersect(l.img.Rect)
	if dr.Empty() || width <= 0 {
		return
	}
	off := f32.Pt(float32(dr.Min.X), float32(dr.Min.Y))
	a := from.Mul(c.scale).Sub(off)
	b := to.Mul(c.scale).Sub(off)

	vr := vector.NewRasterizer(dr.Dx(), dr.Dy())
	vr.DrawOp = draw.Over
	capsule(vr, a, b, width*c.scale/2)
	vr.Draw(l.img, dr, image.NewUniform(c.style.TraceColor), image.Point{})
}

// capsule adds the outline of a line from a to b stroked with half
// width hw and round caps.
func capsule(vr *vector.Rasterizer, a, b f32.Point, hw float32) {
	d := b.Sub(a)
	n := float32(d.Len())
	if n == 0 {
		// A dot: any direction gives a full circle.
		d, n = f32.Pt(1, 0), 1
	}
	u := d.Mul(hw / n)
	// Normal pointing to the left of the direction of travel.
	v := f32.Pt(u.Y, -u.X)

	start := a.Add(v)
	vr.MoveTo(start.X, start.Y)
	p := b.Add(v)
	vr.LineTo(p.X, p.Y)
	arc(vr, b, v, u)
	arc(vr, b, u, v.Mul(-1))
	p = a.Sub(v)
	vr.LineTo(p.X, p.Y)
	arc(vr, a, v.Mul(-1), u.Mul(-1))
	arc(vr, a, u.Mul(-1), v)
	vr.ClosePath()
}

// arc adds a quarter circle around center from center+r0 to center+r1,
// where r0 and r1 are perpendicular radius vectors.
func arc(vr *vector.Rasterizer, center, r0, r1 f32.Point) {
	c0 := center.Add(r0).Add(r1.Mul(kappa))
	c1 := center.Add(r1).Add(r0.Mul(kappa))
	p := center.Add(r1)
	vr.CubeTo(c0.X, c0.Y, c1.X, c1.Y, p.X, p.Y)
}

// segmentBounds returns the logical rectangle touched by a segment
// stroked with the given width.
func segmentBounds(from, to f32.Point, width float32) f32.Rectangle {
	return f32.Rectangle{Min: from, Max: to}.Canon().Outset(width)
}
