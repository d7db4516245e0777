// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements mouse gestures.

A Recognizer accepts low level pointer Events and turns them into
gesture codes. Three kinds of gestures share the mouse buttons:

  - Drag gestures: while the gesture button is held, the pointer
    movement is quantized into direction symbols such as "RD".
  - Wheel gestures: a vertical or horizontal wheel flick while the
    gesture button is held emits "WheelU", "WheelD", "WheelL" or
    "WheelR".
  - Rocker gestures: pressing the right button while the left one is
    held emits "RockerR"; the reverse emits "RockerL".

While a drag gesture is in progress the Recognizer draws its trace
and code through an overlay.Compositor.

A Recognizer is not safe for concurrent use: all events must be
delivered from the one input goroutine.
*/
package gesture

import (
	"log/slog"

	"mousegesture.org/config"
	"mousegesture.org/io/pointer"
	"mousegesture.org/overlay"
	"mousegesture.org/text"
)

// Code prefixes of the one-shot gestures.
const (
	WheelPrefix  = "Wheel"
	RockerPrefix = "Rocker"
)

// State is the state of the drag gesture session.
type State uint8

const (
	// StateIdle is the default state: no session.
	StateIdle State = iota
	// StatePending is reported while the gesture button is held but
	// the pointer has not moved far enough to start a gesture.
	StatePending
	// StateCommitted is reported while a drag gesture is drawn and
	// its code accumulates.
	StateCommitted
	// StateWheeling is reported after a wheel gesture while the
	// gesture button is still held. More wheel gestures may follow;
	// drag recognition is stopped until the button is released.
	StateWheeling
)

// Options configure a Recognizer.
type Options struct {
	// OnGesture receives every finished gesture. Errors and panics
	// are logged and otherwise ignored.
	OnGesture func(code string, w pointer.WindowID) error
	// OnStatus returns the status text displayed for a code in
	// progress. If nil, the code itself is displayed.
	OnStatus func(code string) string
	// Surface receives the overlay. If nil, nothing is drawn.
	Surface overlay.Surface
	// Shaper measures and draws the status text. If nil, the
	// Recognizer creates its own.
	Shaper *text.Shaper
	// Logger defaults to slog.Default.
	Logger *slog.Logger
	// Config defaults to config.Default.
	Config *config.Config
}

// Recognizer detects drag, wheel and rocker gestures.
type Recognizer struct {
	onGesture func(code string, w pointer.WindowID) error
	onStatus  func(code string) string
	log       *slog.Logger

	cfg        settings
	buttons    ButtonState
	session    *session
	compositor *overlay.Compositor
	wheel      wheelAdapter
	rocker     rockerAdapter
}

// session is the state of one held-button gesture attempt.
type session struct {
	button pointer.Button
	window pointer.WindowID
	state  State
	origin pointer.Event
	last   pointer.Event
	code   Code
}

// NewRecognizer returns a Recognizer in StateIdle.
func NewRecognizer(opts Options) *Recognizer {
	r := &Recognizer{
		onGesture:  opts.OnGesture,
		onStatus:   opts.OnStatus,
		log:        opts.Logger,
		compositor: overlay.NewCompositor(opts.Surface, opts.Shaper),
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	r.cfg = derive(cfg, r.log)
	return r
}

// ApplyConfig replaces the settings. The direction alphabet and the
// thresholds apply from the next event on; an overlay in progress
// keeps its style. A session armed for a different gesture button is
// aborted.
func (r *Recognizer) ApplyConfig(cfg config.Config) {
	next := derive(cfg, r.log)
	if s := r.session; s != nil && (!next.enabled || next.button != s.button) {
		r.abort("gesture button changed")
	}
	r.cfg = next
}

// Event processes one input event and reports whether the host must
// suppress its default action, such as opening a context menu.
// Events of kinds not included in Kinds are ignored.
func (r *Recognizer) Event(e pointer.Event) (suppress bool) {
	kinds := r.Kinds()
	r.buttons.Update(e)
	if e.Kind&kinds == 0 {
		return false
	}
	switch e.Kind {
	case pointer.Press:
		r.press(e)
		r.rocker.press(r, e)
	case pointer.Release:
		suppress = r.rocker.block(e)
		suppress = r.release(e) || suppress
	case pointer.Move:
		r.move(e)
	case pointer.Scroll:
		suppress = r.wheel.scroll(r, e)
	case pointer.ContextMenu:
		suppress = r.rocker.block(e)
		if s := r.session; s != nil && e.Window == s.window && (s.state == StateCommitted || s.state == StateWheeling) {
			suppress = true
		}
	}
	return suppress
}

// Kinds returns the event kinds the Recognizer currently listens to.
// Move, Scroll and ContextMenu are only subscribed while a session or
// the rocker block needs them.
func (r *Recognizer) Kinds() pointer.Kind {
	k := pointer.Press | pointer.Release
	if s := r.session; s != nil {
		switch s.state {
		case StatePending:
			k |= pointer.Move
		case StateCommitted:
			k |= pointer.Move | pointer.ContextMenu
		case StateWheeling:
			k |= pointer.ContextMenu
		}
		if r.cfg.wheel {
			k |= pointer.Scroll
		}
	}
	if r.rocker.blocking {
		k |= pointer.ContextMenu
	}
	return k
}

// State returns the session state.
func (r *Recognizer) State() State {
	if r.session == nil {
		return StateIdle
	}
	return r.session.state
}

// Code returns the code accumulated by the session in progress.
func (r *Recognizer) Code() string {
	if r.session == nil {
		return ""
	}
	return r.session.code.String()
}

// Buttons returns the shared button state.
func (r *Recognizer) Buttons() *ButtonState {
	return &r.buttons
}

// Reset aborts any session without emitting a gesture and drops a
// pending rocker block, for example when the window closes.
func (r *Recognizer) Reset() {
	r.abort("reset")
	r.rocker.blocking = false
}

func (r *Recognizer) press(e pointer.Event) {
	if s := r.session; s != nil {
		if e.Button != s.button {
			r.abort("button chord")
			return
		}
		// The release was lost; start over.
		r.abort("repeated press")
	}
	if !r.cfg.enabled || e.Button != r.cfg.button || !r.buttons.Only(e.Button) {
		return
	}
	r.session = &session{
		button: e.Button,
		window: e.Window,
		state:  StatePending,
		origin: e,
		last:   e,
	}
	r.buttons.Hold(e.Button)
	r.log.Debug("gesture armed", "button", e.Button, "window", e.Window)
}

func (r *Recognizer) move(e pointer.Event) {
	s := r.session
	if s == nil || e.Window != s.window {
		return
	}
	if s.state != StatePending && s.state != StateCommitted {
		return
	}
	if !e.Buttons.Contain(s.button.Mask()) {
		// The release happened outside of our view.
		r.abort("button released")
		return
	}
	threshold := r.cfg.step
	if s.state == StatePending {
		threshold = r.cfg.threshold
	}
	if e.Position.Dist(s.last.Position) < threshold {
		return
	}
	if s.state == StatePending {
		s.state = StateCommitted
		r.compositor.Begin(s.window, e.Viewport, e.Scale, r.cfg.style)
		r.log.Debug("gesture committed", "window", s.window)
	}
	sym := r.cfg.dirs.Classify(s.last.Position, e.Position)
	changed := s.code.Append(sym)
	r.compositor.Segment(s.last.Position, e.Position)
	if changed {
		if err := r.compositor.SetStatus(r.status(s.code.String())); err != nil {
			r.log.Error("status not drawn", "code", s.code.String(), "err", err)
		}
	}
	r.compositor.Flush()
	s.last = e
}

func (r *Recognizer) release(e pointer.Event) (suppress bool) {
	s := r.session
	if s == nil || e.Button != s.button {
		return false
	}
	state, code := s.state, s.code.String()
	r.end()
	switch state {
	case StateCommitted:
		r.emit(code, e.Window)
		return true
	case StateWheeling:
		return true
	default:
		r.log.Debug("gesture discarded", "window", e.Window)
		return false
	}
}

// stopDrag ends drag recognition but keeps the session armed for
// wheel gestures.
func (r *Recognizer) stopDrag() {
	s := r.session
	r.compositor.End()
	s.code.Reset()
	s.state = StateWheeling
}

// abort ends the session without emitting.
func (r *Recognizer) abort(reason string) {
	s := r.session
	if s == nil {
		return
	}
	r.log.Debug("gesture aborted", "reason", reason, "state", s.state, "code", s.code.String())
	r.end()
}

// end releases the overlay and returns to StateIdle.
func (r *Recognizer) end() {
	r.compositor.End()
	r.session = nil
	r.buttons.Drop()
}

// emit delivers a finished gesture. The engine state must be final
// before emit is called: the handler may feed events back.
func (r *Recognizer) emit(code string, w pointer.WindowID) {
	r.log.Debug("gesture", "code", code, "window", w)
	if r.onGesture == nil {
		return
	}
	defer func() {
		if err := recover(); err != nil {
			r.log.Error("gesture handler panicked", "code", code, "panic", err)
		}
	}()
	if err := r.onGesture(code, w); err != nil {
		r.log.Error("gesture handler failed", "code", code, "err", err)
	}
}

// status returns the status text of code.
func (r *Recognizer) status(code string) (label string) {
	if r.onStatus == nil {
		return code
	}
	defer func() {
		if err := recover(); err != nil {
			r.log.Error("status handler panicked", "code", code, "panic", err)
			label = code
		}
	}()
	return r.onStatus(code)
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StatePending:
		return "StatePending"
	case StateCommitted:
		return "StateCommitted"
	case StateWheeling:
		return "StateWheeling"
	default:
		panic("invalid State")
	}
}
