// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay draws the live feedback of a gesture in progress: the
trace of the pointer and a status label showing the gesture code.

A Compositor owns the layers of one gesture session. Every drawing
operation records the logical rectangles it touched; Flush composes
only those rectangles and publishes them to the window's Surface in
device pixels. The full surface is never redrawn.
*/
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"mousegesture.org/f32"
	"mousegesture.org/font"
	"mousegesture.org/io/pointer"
	"mousegesture.org/text"
)

// Surface is the presentation surface of a window, owned by the host.
// Publish must copy the pixels it needs: img is only valid during the
// call. Implementations ignore windows that no longer exist.
type Surface interface {
	// Publish blits img with its top left corner at origin. If
	// deviceScaled is set, origin and img are in device pixels.
	Publish(w pointer.WindowID, img image.Image, origin image.Point, deviceScaled bool)
	// Clear removes all overlay output from the window.
	Clear(w pointer.WindowID)
}

// Style describes the appearance of the overlay.
type Style struct {
	DisplayTrace bool
	TraceColor   color.NRGBA
	// TraceAlpha is the opacity of the whole trace layer, in [0, 1].
	TraceAlpha float32
	// TraceWidth is the stroke width in logical pixels.
	TraceWidth float32

	DisplayStatus    bool
	StatusFont       font.Spec
	StatusText       color.NRGBA
	StatusBackground color.NRGBA
	StatusBorder     color.NRGBA
	// StatusPosition places the status box, as percentages of the free
	// space of the viewport on each axis.
	StatusPosition f32.Point
	// StatusPadding is the space between the box edge and the text, in
	// logical pixels.
	StatusPadding float32
}

// Compositor maintains the layers of one gesture session at a time.
type Compositor struct {
	surface Surface
	shaper  *text.Shaper

	style    Style
	window   pointer.WindowID
	viewport f32.Point
	scale    float32
	active   bool

	layers [numLayers]*Layer
	// dirty are the logical rectangles changed since the last Flush.
	dirty []f32.Rectangle

	status struct {
		label string
		drawn bool
		// rect is the logical area covered by the last status box,
		// including its anti-aliasing margin.
		rect f32.Rectangle
	}
}

// NewCompositor returns a Compositor publishing to s. A nil shaper
// gets a private one.
func NewCompositor(s Surface, shaper *text.Shaper) *Compositor {
	if shaper == nil {
		shaper = text.NewShaper()
	}
	return &Compositor{surface: s, shaper: shaper}
}

// Begin allocates the layers enabled by style for a session in window
// w. The viewport is in logical pixels; scale is the device pixel
// ratio. A previous session still in progress is ended first.
func (c *Compositor) Begin(w pointer.WindowID, viewport f32.Point, scale float32, style Style) {
	if c.active {
		c.End()
	}
	if scale <= 0 {
		scale = 1
	}
	c.window = w
	c.viewport = viewport
	c.scale = scale
	c.style = style
	c.active = true

	size := f32.Rectangle{Max: viewport}.Scale(scale).RoundOut().Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if style.DisplayTrace {
		c.layers[Trace] = newLayer(Trace, size, clamp01(style.TraceAlpha))
	}
	if style.DisplayStatus {
		c.layers[Status] = newLayer(Status, size, 1)
	}
	visual, opaque := 0, true
	for _, k := range visualLayers {
		if l := c.layers[k]; l != nil {
			visual++
			opaque = opaque && l.opaque()
		}
	}
	if visual > 1 || (visual == 1 && !opaque) {
		c.layers[Composite] = newLayer(Composite, size, 1)
	}
}

// Active reports whether a session is in progress.
func (c *Compositor) Active() bool {
	return c.active
}

// Window returns the window of the current session.
func (c *Compositor) Window() pointer.WindowID {
	return c.window
}

// Layer returns the layer of kind k, or nil if it is not allocated.
func (c *Compositor) Layer(k LayerKind) *Layer {
	return c.layers[k]
}

// Flush composes the dirty rectangles and publishes them.
func (c *Compositor) Flush() {
	defer func() { c.dirty = c.dirty[:0] }()
	if !c.active || c.surface == nil {
		return
	}
	out := c.output()
	if out == nil {
		return
	}
	for _, r := range c.dirty {
		dr := DeviceRect(r, c.scale).Intersect(out.img.Rect)
		if dr.Empty() {
			continue
		}
		if out.Kind == Composite {
			c.compose(out.img, dr)
		}
		c.surface.Publish(c.window, out.img.SubImage(dr), dr.Min, true)
	}
}

// output returns the layer to publish from: the composite buffer if
// allocated, or else the single visual layer.
func (c *Compositor) output() *Layer {
	if l := c.layers[Composite]; l != nil {
		return l
	}
	for _, k := range visualLayers {
		if l := c.layers[k]; l != nil {
			return l
		}
	}
	return nil
}

func (c *Compositor) compose(dst *image.RGBA, dr image.Rectangle) {
	draw.Draw(dst, dr, image.Transparent, image.Point{}, draw.Src)
	for _, k := range visualLayers {
		l := c.layers[k]
		if l == nil {
			continue
		}
		if l.opaque() {
			draw.Draw(dst, dr, l.img, dr.Min, draw.Over)
			continue
		}
		mask := image.NewUniform(color.Alpha{A: uint8(l.Alpha*0xff + .5)})
		draw.DrawMask(dst, dr, l.img, dr.Min, mask, image.Point{}, draw.Over)
	}
}

// End clears the window overlay and releases every layer.
func (c *Compositor) End() {
	if !c.active {
		return
	}
	if c.surface != nil {
		c.surface.Clear(c.window)
	}
	for k, l := range c.layers {
		if l != nil {
			l.release()
			c.layers[k] = nil
		}
	}
	c.dirty = c.dirty[:0]
	c.status.label = ""
	c.status.drawn = false
	c.status.rect = f32.Rectangle{}
	c.active = false
}

// DeviceRect converts a logical rectangle to device pixels, rounding
// outward so the result covers every touched device pixel.
func DeviceRect(r f32.Rectangle, scale float32) image.Rectangle {
	return r.Scale(scale).RoundOut()
}

func (c *Compositor) fill(l *Layer, r f32.Rectangle, col color.Color, op draw.Op) {
	dr := DeviceRect(r, c.scale).Intersect(l.img.Rect)
	if dr.Empty() {
		return
	}
	draw.Draw(l.img, dr, image.NewUniform(col), image.Point{}, op)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
