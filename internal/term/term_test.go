package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"fishchase/internal/app"
	"fishchase/internal/game"
	"fishchase/internal/scene"
)

func TestKeyHoldDecays(t *testing.T) {
	h := NewKeyHold()
	t0 := time.Unix(100, 0)
	h.Press(game.KeyUp, t0)

	if ks := h.Held(t0.Add(KeyTimeout - time.Millisecond)); !ks.Has(game.KeyUp) {
		t.Fatalf("key released too early")
	}
	if ks := h.Held(t0.Add(KeyTimeout)); ks.Has(game.KeyUp) {
		t.Fatalf("key still held after timeout")
	}
}

func TestKeyHoldRepeatExtends(t *testing.T) {
	h := NewKeyHold()
	t0 := time.Unix(100, 0)
	h.Press(game.KeyRight, t0)
	h.Press(game.KeyRight, t0.Add(100*time.Millisecond))
	if !h.Held(t0.Add(200 * time.Millisecond)).Has(game.KeyRight) {
		t.Fatalf("auto-repeat should keep the key held")
	}
}

func TestKeyHoldOppositeReleases(t *testing.T) {
	h := NewKeyHold()
	t0 := time.Unix(100, 0)
	h.Press(game.KeyLeft, t0)
	h.Press(game.KeyUp, t0)
	h.Press(game.KeyRight, t0.Add(time.Millisecond))
	ks := h.Held(t0.Add(2 * time.Millisecond))
	if ks.Has(game.KeyLeft) || !ks.Has(game.KeyRight) || !ks.Has(game.KeyUp) {
		t.Fatalf("held = %08b", ks)
	}
	h.Reset()
	if h.Held(t0) != 0 {
		t.Fatalf("reset left keys held")
	}
}

func TestMoveKeyAndQuit(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want game.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), game.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}
	for _, c := range cases {
		got, ok := moveKey(c.ev)
		if got != c.want || ok != c.ok {
			t.Errorf("moveKey(%v) = %v,%v want %v,%v", c.ev.Name(), got, ok, c.want, c.ok)
		}
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) ||
		!isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) ||
		!isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatalf("quit keys not recognised")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatalf("w is not quit")
	}
}

func TestViewSizeAndScale(t *testing.T) {
	w, h := ViewSize(80, 30)
	if w != 800 || h != 600 {
		t.Fatalf("view = %vx%v", w, h)
	}
	if s := game.FitScale(w, h); s != 1 {
		t.Fatalf("80x30 terminal scale = %v, want 1", s)
	}
}

func TestToCells(t *testing.T) {
	cases := []struct {
		r    game.Rect
		want CellSpan
	}{
		{game.Rect{X: 0, Y: 0, Width: 72, Height: 36}, CellSpan{0, 0, 7, 2}},
		{game.Rect{X: 200, Y: 300, Width: 72, Height: 36}, CellSpan{20, 15, 27, 17}},
		{game.Rect{X: 12, Y: 22, Width: 3, Height: 3}, CellSpan{1, 1, 2, 2}},
		{game.Rect{X: -50, Y: 0, Width: 72, Height: 36}, CellSpan{-5, 0, 2, 2}},
	}
	for _, c := range cases {
		if got := ToCells(c.r); got != c.want {
			t.Errorf("ToCells(%+v) = %+v, want %+v", c.r, got, c.want)
		}
	}
	if !(CellSpan{X0: 3, X1: 3, Y0: 0, Y1: 1}).Empty() {
		t.Fatalf("zero-width span should be empty")
	}
}

func TestCellCentre(t *testing.T) {
	if p := CellCentre(3, 2); p.X != 35 || p.Y != 50 {
		t.Fatalf("centre = %+v", p)
	}
}

func TestFishRow(t *testing.T) {
	cases := []struct {
		n     int
		right bool
		want  string
	}{
		{0, true, ""},
		{1, false, "<"},
		{3, true, "><>"},
		{3, false, "<><"},
		{7, true, "><====>"},
		{7, false, "<====><"},
	}
	for _, c := range cases {
		if got := fishRow(c.n, c.right); got != c.want {
			t.Errorf("fishRow(%d, %v) = %q, want %q", c.n, c.right, got, c.want)
		}
	}
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y, from, n int) string {
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDrawPlaying(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	snap := game.Snapshot{
		Score:     3,
		Player:    game.Rect{X: 200, Y: 300, Width: 72, Height: 36},
		Obstacles: []game.Rect{{X: 500, Y: 100, Width: 72, Height: 36}},
	}
	Draw(s, game.StatePlaying, snap, nil)

	if got := rowText(s, 0, 2, 8); got != "Score: 3" {
		t.Fatalf("hud = %q", got)
	}
	if got := rowText(s, 15, 20, 7); got != "><====>" {
		t.Fatalf("player row = %q", got)
	}
	if got := rowText(s, 5, 50, 7); got != "<====><" {
		t.Fatalf("obstacle row = %q", got)
	}
	_, _, st, _ := s.GetContent(20, 15)
	if fg, _, _ := st.Decompose(); fg != tcell.ColorYellow {
		t.Fatalf("player colour = %v", fg)
	}
}

func TestDrawBubbles(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	bs := scene.NewBubbles(4, 1)
	bs.Add(scene.Bubble{X: 305, Y: 105, MaxLife: 1})
	bs.Add(scene.Bubble{X: 405, Y: 105, Life: -0.1, MaxLife: 1})
	Draw(s, game.StatePlaying, game.Snapshot{}, bs)
	if r, _, _, _ := s.GetContent(31, 5); r != 'o' {
		t.Fatalf("bubble cell = %q", r)
	}
	if r, _, _, _ := s.GetContent(41, 5); r != ' ' {
		t.Fatalf("delayed bubble drawn: %q", r)
	}
}

func TestDrawLoading(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	Draw(s, game.StateLoading, game.Snapshot{}, nil)
	if got := rowText(s, 5, 15, 10); got != "Loading..." {
		t.Fatalf("banner = %q", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	cfg := app.Config{Tuning: game.DefaultTuning(), Seed: 1, Log: zerolog.Nop()}

	done := make(chan error, 1)
	go func() { done <- run(s, cfg) }()

	time.Sleep(100 * time.Millisecond)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("run did not quit")
	}
}
