// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"mousegesture.org/f32"
)

// ErrInvalidDirections is wrapped by the errors of ParseDirections.
var ErrInvalidDirections = errors.New("invalid gesture directions")

// Directions is a direction alphabet: its symbols partition the circle
// into equal sectors, the first centered on the positive X axis and
// the others following clockwise on screen.
type Directions struct {
	symbols []string
	// k is the sector width and b the offset putting sector
	// boundaries halfway between symbol centers. b is chosen so that
	// angle-b is positive for every angle returned by atan2.
	k, b float64
}

// NewDirections returns the alphabet of symbols. It panics if symbols
// is empty.
func NewDirections(symbols ...string) Directions {
	if len(symbols) == 0 {
		panic("gesture: empty direction alphabet")
	}
	k := 2 * math.Pi / float64(len(symbols))
	return Directions{
		symbols: append([]string(nil), symbols...),
		k:       k,
		b:       -k/2 - 2*math.Pi,
	}
}

// DisabledDirections returns the single symbol alphabet that maps
// every movement to the empty symbol, turning directional gestures
// off.
func DisabledDirections() Directions {
	return NewDirections("")
}

// ParseDirections splits src before every uppercase letter. "RDLU"
// is the four direction alphabet; "RRdDLdLLuURu" has eight symbols.
// Every symbol must be one uppercase letter followed by lowercase
// letters, and symbols must be unique.
func ParseDirections(src string) (Directions, error) {
	if src == "" {
		return Directions{}, fmt.Errorf("%w: empty", ErrInvalidDirections)
	}
	var symbols []string
	start := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case 'A' <= c && c <= 'Z':
			if i > start {
				symbols = append(symbols, src[start:i])
			}
			start = i
		case 'a' <= c && c <= 'z':
			if i == 0 {
				return Directions{}, fmt.Errorf("%w %q: symbol must start with an uppercase letter", ErrInvalidDirections, src)
			}
		default:
			return Directions{}, fmt.Errorf("%w %q: unexpected %q", ErrInvalidDirections, src, c)
		}
	}
	symbols = append(symbols, src[start:])
	for i, s := range symbols {
		if slices.Contains(symbols[:i], s) {
			return Directions{}, fmt.Errorf("%w %q: duplicate symbol %q", ErrInvalidDirections, src, s)
		}
	}
	return NewDirections(symbols...), nil
}

// Len returns the number of symbols.
func (d Directions) Len() int {
	return len(d.symbols)
}

// Symbols returns a copy of the symbols.
func (d Directions) Symbols() []string {
	return slices.Clone(d.symbols)
}

// Disabled reports whether d cannot distinguish directions.
func (d Directions) Disabled() bool {
	return len(d.symbols) <= 1
}

// Classify returns the symbol of the sector containing the direction
// from one point to another. Callers never classify a zero movement.
func (d Directions) Classify(from, to f32.Point) string {
	n := len(d.symbols)
	switch n {
	case 0:
		return ""
	case 1:
		return d.symbols[0]
	}
	a := to.Sub(from).Angle()
	i := int(math.Floor((a-d.b)/d.k)) % n
	return d.symbols[i]
}

func (d Directions) String() string {
	var s string
	for _, sym := range d.symbols {
		s += sym
	}
	return s
}
