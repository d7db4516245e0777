// SPDX-License-Identifier: Unlicense OR MIT

// Package surface implements in-memory overlay surfaces for
// rendering gesture feedback to an image.
package surface

import (
	"errors"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"mousegesture.org/io/pointer"
	"mousegesture.org/overlay"
)

// ErrUnknownWindow is returned for a window that is not open.
var ErrUnknownWindow = errors.New("surface: unknown window")

// Memory is an overlay.Surface holding one device pixel image per open
// window. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	windows map[pointer.WindowID]*window
}

type window struct {
	img       *image.RGBA
	publishes int
}

var _ overlay.Surface = (*Memory)(nil)

// NewMemory returns a Memory without windows.
func NewMemory() *Memory {
	return &Memory{windows: make(map[pointer.WindowID]*window)}
}

// Open creates or resizes the image of window w to width by height
// device pixels. Resizing clears the image.
func (m *Memory) Open(w pointer.WindowID, width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows[w] = &window{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Close forgets window w. Later output for w is dropped.
func (m *Memory) Close(w pointer.WindowID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.windows, w)
}

// Publish implements overlay.Surface. Logical origins are taken as
// device pixels at scale 1.
func (m *Memory) Publish(w pointer.WindowID, img image.Image, origin image.Point, deviceScaled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	win, ok := m.windows[w]
	if !ok {
		return
	}
	b := img.Bounds()
	dr := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
	draw.Draw(win.img, dr, img, b.Min, draw.Src)
	win.publishes++
}

// Clear implements overlay.Surface.
func (m *Memory) Clear(w pointer.WindowID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	win, ok := m.windows[w]
	if !ok {
		return
	}
	draw.Draw(win.img, win.img.Rect, image.Transparent, image.Point{}, draw.Src)
}

// Image returns a copy of the current content of window w.
func (m *Memory) Image(w pointer.WindowID) (*image.RGBA, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	win, ok := m.windows[w]
	if !ok {
		return nil, ErrUnknownWindow
	}
	img := image.NewRGBA(win.img.Rect)
	copy(img.Pix, win.img.Pix)
	return img, nil
}

// Publishes returns the number of Publish calls for window w since it
// was opened.
func (m *Memory) Publishes(w pointer.WindowID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if win, ok := m.windows[w]; ok {
		return win.publishes
	}
	return 0
}
