// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font describes font faces and parses the CSS-like font
shorthand used by the status configuration, such as "24pt monospace"
or "italic bold 16px sans-serif".
*/
package font

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned by Parse for malformed font strings.
var ErrInvalidSpec = errors.New("invalid font")

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Variant denotes a typeface variant such as "Mono".
type Variant string

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Variant Variant
	Style   Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Spec is a Font at a particular size.
type Spec struct {
	Font Font
	// Size is the font size in logical pixels.
	Size float32
}

const (
	Regular Style = iota
	Italic
)

const (
	Normal Weight = 0
	Medium Weight = 100
	Bold   Weight = 300
)

// Mono is the variant selected by monospace families.
const Mono Variant = "Mono"

// CSS reference sizes.
const (
	pxPerPt = 96.0 / 72.0
	pxPerEm = 16.0
)

// Parse parses a font shorthand: optional style and weight keywords
// followed by a size with a px, pt or em unit and a comma separated
// family list. Only monospace families are distinguished.
func Parse(s string) (Spec, error) {
	fields := strings.Fields(s)
	var spec Spec
	i := 0
loop:
	for ; i < len(fields); i++ {
		f := strings.ToLower(fields[i])
		switch f {
		case "normal":
		case "italic", "oblique":
			spec.Font.Style = Italic
		case "bold", "bolder":
			spec.Font.Weight = Bold
		case "medium":
			spec.Font.Weight = Medium
		default:
			if w, err := strconv.Atoi(f); err == nil {
				spec.Font.Weight = cssWeight(w)
				continue
			}
			size, err := parseSize(f)
			if err != nil {
				return Spec{}, fmt.Errorf("%w %q: %v", ErrInvalidSpec, s, err)
			}
			spec.Size = size
			break loop
		}
	}
	if spec.Size == 0 {
		return Spec{}, fmt.Errorf("%w %q: missing size", ErrInvalidSpec, s)
	}
	families := strings.Join(fields[i+1:], " ")
	if strings.TrimSpace(families) == "" {
		return Spec{}, fmt.Errorf("%w %q: missing family", ErrInvalidSpec, s)
	}
	for _, fam := range strings.Split(families, ",") {
		fam = strings.ToLower(strings.Trim(strings.TrimSpace(fam), `"'`))
		if fam == "monospace" || strings.Contains(fam, "mono") || strings.Contains(fam, "courier") {
			spec.Font.Variant = Mono
			break
		}
	}
	return spec, nil
}

func parseSize(f string) (float32, error) {
	var unit float64
	switch {
	case strings.HasSuffix(f, "px"):
		unit = 1
	case strings.HasSuffix(f, "pt"):
		unit = pxPerPt
	case strings.HasSuffix(f, "em"):
		unit = pxPerEm
	default:
		return 0, fmt.Errorf("unknown unit in %q", f)
	}
	v, err := strconv.ParseFloat(f[:len(f)-2], 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite size %q", f)
	}
	if v <= 0 {
		return 0, fmt.Errorf("non-positive size %q", f)
	}
	return float32(v * unit), nil
}

func cssWeight(w int) Weight {
	switch {
	case w >= 600:
		return Bold
	case w >= 500:
		return Medium
	default:
		return Normal
	}
}

func (s Spec) String() string {
	return fmt.Sprintf("%s %s %s %gpx", s.Font.Variant, s.Font.Style, s.Font.Weight, s.Size)
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	default:
		panic("invalid Weight")
	}
}
