// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"mousegesture.org/config"
	"mousegesture.org/gesture"
	"mousegesture.org/io/pointer"
	"mousegesture.org/io/term"
	"mousegesture.org/surface"
)

// playground renders the gesture overlay into terminal cells.
type playground struct {
	screen   tcell.Screen
	mem      *surface.Memory
	tr       *term.Translator
	rec      *gesture.Recognizer
	mappings config.Mappings
	sound    *sound
	// statusPos places the gesture label, in percent of the free
	// space, like the pixel status box.
	statusPos image.Point

	cols, rows int
	cells      *image.RGBA
	last       string
	suppressed pointer.Kind
}

func (p *playground) resize() {
	p.cols, p.rows = p.screen.Size()
	p.tr.Resize(p.cols, p.rows)
	// A resize invalidates the window: drop any gesture in progress.
	p.rec.Reset()
	v := p.tr.Viewport()
	p.mem.Open(window, int(v.X), int(v.Y))
	p.cells = image.NewRGBA(image.Rect(0, 0, p.cols, p.rows))
	p.draw()
}

func (p *playground) gesture(code string, w pointer.WindowID) error {
	p.last = p.mappings.Label(code)
	if p.sound != nil {
		p.sound.play(code)
	}
	if _, ok := p.mappings[code]; !ok && code != "" {
		return fmt.Errorf("no command for gesture %q", code)
	}
	return nil
}

func (p *playground) draw() {
	img, err := p.mem.Image(window)
	if err != nil {
		return
	}
	// Average the overlay pixels of every cell.
	draw.BiLinear.Scale(p.cells, p.cells.Rect, img, img.Rect, draw.Src, nil)

	p.screen.Clear()
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			c := p.cells.RGBAAt(x, y)
			if c.A < 0x10 {
				continue
			}
			st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			p.screen.SetContent(x, y, ' ', nil, st)
		}
	}

	p.text(0, 0, fmt.Sprintf(" %s ", p.rec.State()), tcell.StyleDefault.Reverse(true))
	if code := p.rec.Code(); code != "" {
		label := " " + p.mappings.Label(code) + " "
		x := (p.cols - len(label)) * p.statusPos.X / 100
		y := (p.rows - 1) * p.statusPos.Y / 100
		p.text(max(x, 0), y, label, tcell.StyleDefault.Reverse(true).Bold(true))
	}
	if p.last != "" {
		p.text(0, p.rows-1, "last: "+p.last, tcell.StyleDefault.Bold(true))
	}
	if p.suppressed != 0 {
		p.text(0, 1, "suppressed "+strings.ToLower(p.suppressed.String()), tcell.StyleDefault.Dim(true))
		p.suppressed = 0
	}
	p.screen.Show()
}

func (p *playground) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		if x >= p.cols {
			return
		}
		p.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
