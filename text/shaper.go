// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures and draws single lines of text with the Go
fonts. It is used to paint the gesture status label.
*/
package text

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"mousegesture.org/f32"
	"mousegesture.org/font"
	"mousegesture.org/font/gofont"
)

// Shaper measures and draws text. Faces are created per font and
// device size and kept in a bounded cache.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	faces faceCache
}

// Metrics of a line of text, in device pixels.
type Metrics struct {
	// Advance is the width of the text.
	Advance float32
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32
	// Descent is the distance from the baseline to the bottom of the line.
	Descent float32
}

// Height returns the line height.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent
}

// NewShaper returns an empty Shaper.
func NewShaper() *Shaper {
	return new(Shaper)
}

func (s *Shaper) face(spec font.Spec, scale float32) (xfont.Face, error) {
	if scale <= 0 {
		scale = 1
	}
	key := faceKey{font: spec.Font, ppem: fixed.Int26_6(spec.Size*scale*64 + .5)}
	if f, ok := s.faces.Get(key); ok {
		return f, nil
	}
	otf, err := gofont.Lookup(spec.Font)
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(key.ppem) / 64,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces.Put(key, f)
	return f, nil
}

// Measure returns the metrics of str drawn with spec at scale device
// pixels per logical pixel.
func (s *Shaper) Measure(spec font.Spec, scale float32, str string) (Metrics, error) {
	f, err := s.face(spec, scale)
	if err != nil {
		return Metrics{}, err
	}
	m := f.Metrics()
	return Metrics{
		Advance: fromFixed(xfont.MeasureString(f, str)),
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
	}, nil
}

// Draw draws str onto dst with its baseline origin at dot, in device
// pixels.
func (s *Shaper) Draw(dst draw.Image, spec font.Spec, scale float32, dot f32.Point, str string, col color.Color) error {
	f, err := s.face(spec, scale)
	if err != nil {
		return err
	}
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.Point26_6{X: toFixed(dot.X), Y: toFixed(dot.Y)},
	}
	d.DrawString(str)
	return nil
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + .5)
}
