package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fishchase/internal/game"
)

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 12345)
	cases := []struct {
		name, flag, env string
		want            uint64
		wantErr         bool
	}{
		{"flag wins", "7", "9", 7, false},
		{"env fallback", "", "9", 9, false},
		{"clock fallback", "", "", 12345, false},
		{"whitespace ignored", " ", " 42 ", 42, false},
		{"bad flag", "x", "9", 0, true},
		{"bad env", "", "-1", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ResolveSeed(c.flag, c.env, now)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr && got != c.want {
				t.Fatalf("seed = %d, want %d", got, c.want)
			}
		})
	}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestAttachLoggingChainFull(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	bus := game.NewEventBus()
	AttachLogging(bus, log)

	bus.Emit(game.Event{Type: game.EventCapture, Tick: 3, Data: 1}) // debug, filtered
	bus.Emit(game.Event{Type: game.EventChainFull, Tick: 9, Data: 30})

	lines := logLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %s", len(lines), buf.String())
	}
	if lines[0]["message"] != "follower chain full" || lines[0]["followers"] != float64(30) {
		t.Fatalf("line = %v", lines[0])
	}
}

func TestAttachLoggingCaptureAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	bus := game.NewEventBus()
	AttachLogging(bus, log)

	bus.Emit(game.Event{Type: game.EventCapture, Tick: 3, Data: 5})
	lines := logLines(t, &buf)
	if len(lines) != 1 || lines[0]["score"] != float64(5) || lines[0]["tick"] != float64(3) {
		t.Fatalf("lines = %v", lines)
	}
}

func TestLogFinal(t *testing.T) {
	var buf bytes.Buffer
	w := game.NewWorld(game.DefaultTuning(), 1, 800, 600, nil)
	w.Score = 4
	LogFinal(zerolog.New(&buf), w)
	lines := logLines(t, &buf)
	if len(lines) != 1 || lines[0]["score"] != float64(4) || lines[0]["message"] != "run finished" {
		t.Fatalf("lines = %v", lines)
	}
}
