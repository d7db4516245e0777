// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gopxl/beep"
)

func TestToneFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	// Below twice the tone frequency: the sine generator refuses it.
	s := &sound{
		log:  slog.New(slog.NewTextHandler(&buf, nil)),
		rate: beep.SampleRate(1000),
	}
	s.play("RD")
	out := buf.String()
	if !strings.Contains(out, "gesture tone unavailable") || !strings.Contains(out, "code=RD") {
		t.Errorf("got log %q, expected the tone failure", out)
	}
}
