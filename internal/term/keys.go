package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"fishchase/internal/game"
)

// KeyTimeout is how long a key counts as held after its last press or
// auto-repeat. Terminals report presses, never releases.
const KeyTimeout = 150 * time.Millisecond

// KeyHold turns a stream of key presses into held-key state.
type KeyHold struct {
	Timeout time.Duration
	last    map[game.Key]time.Time
}

func NewKeyHold() *KeyHold {
	return &KeyHold{Timeout: KeyTimeout, last: make(map[game.Key]time.Time)}
}

// Press records k as pressed at now. Pressing the opposite direction
// releases the old one so reversing is immediate.
func (h *KeyHold) Press(k game.Key, now time.Time) {
	if o, ok := opposite[k]; ok {
		delete(h.last, o)
	}
	h.last[k] = now
}

// Held returns the keys pressed within Timeout of now.
func (h *KeyHold) Held(now time.Time) game.KeySet {
	var ks game.KeySet
	for k, t := range h.last {
		if now.Sub(t) < h.Timeout {
			ks = ks.With(k)
		} else {
			delete(h.last, k)
		}
	}
	return ks
}

// Reset releases everything.
func (h *KeyHold) Reset() {
	clear(h.last)
}

var opposite = map[game.Key]game.Key{
	game.KeyUp:    game.KeyDown,
	game.KeyDown:  game.KeyUp,
	game.KeyLeft:  game.KeyRight,
	game.KeyRight: game.KeyLeft,
}

// moveKey maps arrows, WASD and hjkl to a movement intent.
func moveKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return game.KeyUp, true
		case 's', 'S', 'j':
			return game.KeyDown, true
		case 'a', 'A', 'h':
			return game.KeyLeft, true
		case 'd', 'D', 'l':
			return game.KeyRight, true
		}
	}
	return 0, false
}

// isQuit reports Esc, Ctrl-C and q.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return true
		}
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
