// SPDX-License-Identifier: Unlicense OR MIT

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "debug", Format: "JSON", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("gesture", "code", "RD")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("%v: %q", err, buf.String())
	}
	if rec["code"] != "RD" || rec["msg"] != "gesture" {
		t.Errorf("unexpected record %v", rec)
	}
	ts, _ := rec["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("got time %q, expected UTC", ts)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("dropped")
	l.Warn("kept")
	if out := buf.String(); strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := New(Options{Level: "trace"}); err == nil {
		t.Error("unknown level accepted")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("unknown format accepted")
	}
	if lvl, err := ParseLevel(" Warning "); err != nil || lvl != slog.LevelWarn {
		t.Errorf("got %v %v, expected LevelWarn", lvl, err)
	}
}
