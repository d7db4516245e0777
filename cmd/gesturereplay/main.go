// SPDX-License-Identifier: Unlicense OR MIT

// Command gesturereplay feeds a pointer event recording through the
// gesture recognizer and prints the recognized gestures.
//
// Settings are read from MOUSEGESTURE_* environment variables. With
// -snapshot, the overlay of every drag gesture is saved as a PNG image
// just before the gesture finishes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mousegesture.org/config"
	"mousegesture.org/gesture"
	"mousegesture.org/internal/log"
	"mousegesture.org/io/pointer"
	"mousegesture.org/io/record"
	"mousegesture.org/surface"
)

var (
	snapshot  = flag.String("snapshot", "", "save the overlay of each drag gesture to `file`.png, numbered from 1")
	logLevel  = flag.String("log", "", "log level (debug, info, warn, error); overrides MOUSEGESTURE_LOG_LEVEL")
	showNames = flag.Bool("names", true, "print the mapped command name of each gesture")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gesturereplay [flags] [recording.jsonl]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "gesturereplay: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	mappings, err := config.ParseMappings(cfg.GestureMappings)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	switch flag.NArg() {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	default:
		return errors.New("specify at most one recording")
	}
	evs, err := record.ReadAll(in)
	if err != nil {
		return err
	}

	out := os.Stdout
	mem := surface.NewMemory()
	r := gesture.NewRecognizer(gesture.Options{
		OnGesture: func(code string, w pointer.WindowID) error {
			if *showNames {
				if name, ok := mappings[code]; ok {
					_, err := fmt.Fprintf(out, "%s\t%s\n", code, name)
					return err
				}
			}
			_, err := fmt.Fprintln(out, code)
			return err
		},
		OnStatus: mappings.Label,
		Surface:  mem,
		Logger:   logger,
		Config:   &cfg,
	})

	shots := 0
	opened := make(map[pointer.WindowID]image.Point)
	for _, e := range evs {
		size := e.Viewport.Mul(e.Scale)
		dev := image.Pt(int(size.X+.5), int(size.Y+.5))
		if opened[e.Window] != dev {
			mem.Open(e.Window, dev.X, dev.Y)
			opened[e.Window] = dev
		}
		if *snapshot != "" && e.Kind == pointer.Release && r.State() == gesture.StateCommitted {
			shots++
			if err := save(mem, e.Window, shots); err != nil {
				return err
			}
		}
		if r.Kinds()&e.Kind == 0 {
			logger.Debug("event not subscribed", "kind", e.Kind)
		}
		if r.Event(e) {
			logger.Debug("default action suppressed", "kind", e.Kind, "button", e.Button)
		}
	}
	if r.State() != gesture.StateIdle {
		logger.Warn("recording ends inside a gesture", "state", r.State(), "code", r.Code())
		r.Reset()
	}
	return nil
}

func save(mem *surface.Memory, w pointer.WindowID, n int) error {
	img, err := mem.Image(w)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(*snapshot, filepath.Ext(*snapshot))
	f, err := os.Create(fmt.Sprintf("%s-%d.png", name, n))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
