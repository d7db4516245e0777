// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"image"
)

// LayerKind identifies one of the per-session drawing layers.
type LayerKind uint8

const (
	// Trace holds the stroked path of the gesture.
	Trace LayerKind = iota
	// Status holds the status label box.
	Status
	// Composite is the merge buffer the visual layers are composed
	// into before publishing.
	Composite

	numLayers
)

// visualLayers lists the layers composed into Composite, bottom first.
var visualLayers = [...]LayerKind{Trace, Status}

// Layer is a device-sized drawing surface with the alpha it is
// composed with.
type Layer struct {
	Kind LayerKind
	// Alpha in [0, 1] is applied when the layer is composed.
	Alpha float32

	img *image.RGBA
}

func newLayer(kind LayerKind, size image.Point, alpha float32) *Layer {
	return &Layer{
		Kind:  kind,
		Alpha: alpha,
		img:   image.NewRGBA(image.Rectangle{Max: size}),
	}
}

// Bounds returns the device pixel bounds of the layer.
func (l *Layer) Bounds() image.Rectangle {
	if l.img == nil {
		return image.Rectangle{}
	}
	return l.img.Rect
}

// opaque reports whether the layer is composed without alpha.
func (l *Layer) opaque() bool {
	return l.Alpha >= 1
}

// release shrinks the pixel buffer to a placeholder and drops it, so
// that stale references to the image no longer pin device-sized memory.
// A released layer must not be drawn to.
func (l *Layer) release() {
	if l.img == nil {
		return
	}
	*l.img = *image.NewRGBA(image.Rect(0, 0, 1, 1))
	l.img = nil
}

func (k LayerKind) String() string {
	switch k {
	case Trace:
		return "Trace"
	case Status:
		return "Status"
	case Composite:
		return "Composite"
	default:
		panic("invalid LayerKind")
	}
}
