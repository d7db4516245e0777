// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux

// Command gestureevdev recognizes gestures made with Linux mice.
//
// It reads one or more /dev/input/event* devices, tracks a virtual
// pointer inside a -width by -height viewport and prints every
// recognized gesture with its mapped command name. With -grab, the
// devices are taken exclusively so that gesture clicks do not reach
// the desktop. With -record, the decoded events are saved for
// gesturereplay.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"mousegesture.org/config"
	"mousegesture.org/f32"
	"mousegesture.org/gesture"
	"mousegesture.org/internal/log"
	"mousegesture.org/io/evdev"
	"mousegesture.org/io/pointer"
	"mousegesture.org/io/record"
)

var (
	width   = flag.Int("width", 1920, "viewport width in logical pixels")
	height  = flag.Int("height", 1080, "viewport height in logical pixels")
	grab    = flag.Bool("grab", false, "grab the devices exclusively")
	recFile = flag.String("record", "", "record the decoded events to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gestureevdev [flags] /dev/input/eventN...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "gestureevdev: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if flag.NArg() == 0 {
		return errors.New("specify at least one device")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := log.New(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
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

	// There is no window to draw into: recognition only.
	cfg.DisplayTrace = false
	cfg.DisplayStatus = false
	r := gesture.NewRecognizer(gesture.Options{
		OnGesture: func(code string, w pointer.WindowID) error {
			name, ok := mappings[code]
			if !ok {
				name = "-"
			}
			fmt.Printf("%s\t%s\n", code, name)
			return nil
		},
		Logger: logger,
		Config: &cfg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// All devices drive the one recognizer.
	var mu sync.Mutex
	deliver := func(e pointer.Event) {
		mu.Lock()
		defer mu.Unlock()
		if rec != nil {
			if err := rec.Encode(e); err != nil {
				logger.Error("event not recorded", "err", err)
			}
		}
		r.Event(e)
	}

	viewport := f32.Pt(float32(*width), float32(*height))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range flag.Args() {
		dev, err := evdev.Open(path, logger)
		if err != nil {
			return err
		}
		defer dev.Close()
		name, err := dev.Name()
		if err != nil {
			logger.Warn("device name unavailable", "device", path, "err", err)
		}
		if *grab {
			if err := dev.Grab(true); err != nil {
				return err
			}
		}
		dec, err := evdev.NewDecoder(evdev.EventSize(), viewport)
		if err != nil {
			return err
		}
		dec.Window = pointer.WindowID(i + 1)
		logger.Info("reading device", "device", path, "name", name, "window", dec.Window)
		g.Go(func() error {
			return dev.Run(ctx, dec, deliver)
		})
	}
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
