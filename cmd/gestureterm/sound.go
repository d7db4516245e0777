// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"mousegesture.org/gesture"
)

const sampleRate = beep.SampleRate(44100)

// sound plays one short tone per gesture, pitched by gesture kind.
type sound struct {
	log  *slog.Logger
	rate beep.SampleRate
}

func newSound(log *slog.Logger) (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sound{log: log, rate: sampleRate}, nil
}

func (s *sound) play(code string) {
	freq := 660.0
	switch {
	case strings.HasPrefix(code, gesture.WheelPrefix):
		freq = 440
	case strings.HasPrefix(code, gesture.RockerPrefix):
		freq = 880
	case code == "":
		freq = 220
	}
	tone, err := generators.SineTone(s.rate, freq)
	if err != nil {
		s.log.Warn("gesture tone unavailable", "code", code, "freq", freq, "err", err)
		return
	}
	speaker.Play(beep.Take(s.rate.N(60*time.Millisecond), tone))
}
