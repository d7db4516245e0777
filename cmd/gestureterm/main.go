// SPDX-License-Identifier: Unlicense OR MIT

// Command gestureterm is an interactive gesture playground for the
// terminal. Hold the right mouse button and draw: the trace and the
// gesture code are shown live, and every recognized gesture is
// reported with a short tone. Press q or Escape to quit.
//
// Settings are read from MOUSEGESTURE_* environment variables. Logs go
// to the file named by -log since the terminal is in use.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"mousegesture.org/config"
	"mousegesture.org/gesture"
	"mousegesture.org/internal/log"
	"mousegesture.org/io/pointer"
	"mousegesture.org/io/record"
	"mousegesture.org/io/term"
	"mousegesture.org/surface"
)

var (
	logFile = flag.String("log", "", "write logs to `file`")
	recFile = flag.String("record", "", "record the pointer events to `file` for gesturereplay")
	quiet   = flag.Bool("quiet", false, "disable the gesture tones")
)

const window pointer.WindowID = 1

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "gestureterm: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOut})
	if err != nil {
		return err
	}
	mappings, err := config.ParseMappings(cfg.GestureMappings)
	if err != nil {
		return err
	}
	var rec *record.Encoder
	if *recFile != "" {
		f, err := os.Create(*recFile)
		if err != nil {
			return err
		}
		defer f.Close()
		rec = record.NewEncoder(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	var snd *sound
	if !*quiet {
		snd, err = newSound(logger)
		if err != nil {
			// Non-fatal: the playground works without sound.
			logger.Warn("audio unavailable", "err", err)
		}
	}

	ui := &playground{
		screen:    screen,
		mem:       surface.NewMemory(),
		tr:        &term.Translator{Window: window},
		mappings:  mappings,
		sound:     snd,
		statusPos: image.Pt(cfg.StatusPositionX, cfg.StatusPositionY),
	}
	// Text does not survive the reduction to cells; the label is
	// printed as terminal text instead.
	cfg.DisplayStatus = false
	ui.rec = gesture.NewRecognizer(gesture.Options{
		OnGesture: ui.gesture,
		OnStatus:  mappings.Label,
		Surface:   ui.mem,
		Logger:    logger,
		Config:    &cfg,
	})
	ui.resize()

	var evs []pointer.Event
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			ui.resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventMouse:
			evs = ui.tr.Translate(evs[:0], ev)
			for _, e := range evs {
				if rec != nil {
					if err := rec.Encode(e); err != nil {
						return err
					}
				}
				if ui.rec.Event(e) {
					ui.suppressed = e.Kind
				}
			}
			ui.draw()
		case nil:
			return nil
		}
	}
}
