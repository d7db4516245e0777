// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont maps font descriptions to the Go fonts.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"mousegesture.org/font"
)

var ttfs = map[font.Font][]byte{
	{}:                                      goregular.TTF,
	{Style: font.Italic}:                    goitalic.TTF,
	{Weight: font.Bold}:                     gobold.TTF,
	{Style: font.Italic, Weight: font.Bold}: gobolditalic.TTF,
	{Weight: font.Medium}:                   gomedium.TTF,
	{Weight: font.Medium, Style: font.Italic}:                   gomediumitalic.TTF,
	{Variant: font.Mono}:                                        gomono.TTF,
	{Variant: font.Mono, Weight: font.Bold}:                     gomonobold.TTF,
	{Variant: font.Mono, Weight: font.Bold, Style: font.Italic}: gomonobolditalic.TTF,
	{Variant: font.Mono, Style: font.Italic}:                    gomonoitalic.TTF,
}

var (
	mu     sync.Mutex
	parsed = make(map[font.Font]*opentype.Font)
)

// Lookup returns the Go font closest to fnt. Style, then weight are
// dropped until a registered face matches; the variant is kept as long
// as possible.
func Lookup(fnt font.Font) (*opentype.Font, error) {
	fnt = closest(fnt)
	mu.Lock()
	defer mu.Unlock()
	if f, ok := parsed[fnt]; ok {
		return f, nil
	}
	f, err := opentype.Parse(ttfs[fnt])
	if err != nil {
		return nil, fmt.Errorf("gofont: failed to parse font: %w", err)
	}
	parsed[fnt] = f
	return f, nil
}

func closest(fnt font.Font) font.Font {
	if _, ok := ttfs[fnt]; ok {
		return fnt
	}
	for _, f := range []font.Font{
		{Variant: fnt.Variant, Weight: fnt.Weight},
		{Variant: fnt.Variant, Style: fnt.Style},
		{Variant: fnt.Variant},
	} {
		if _, ok := ttfs[f]; ok {
			return f
		}
	}
	return font.Font{}
}
