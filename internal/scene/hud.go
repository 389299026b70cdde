package scene

import (
	"strconv"

	"fishchase/internal/game"
)

const (
	LoadingText = "Loading..."
	hudMargin   = 10
	hudBaseText = 2
)

// ScoreText is the score label shown in the corner.
func ScoreText(score int) string { return "Score: " + strconv.Itoa(score) }

// HUDLine is one positioned string.
type HUDLine struct {
	Text   string
	X, Y   int
	Scale  float32
	Banner bool
}

// HUD is the text overlay for one frame.
type HUD struct {
	Lines []HUDLine
}

// LayoutHUD places the score top-left, sized with the viewport scale. While
// loading it shows a centred banner instead.
func LayoutHUD(state game.GameState, score int, viewScale float64, fbW, fbH int) HUD {
	ts := float32(hudBaseText * viewScale)
	if ts < 1 {
		ts = 1
	}
	if state == game.StateLoading {
		w := TextWidth(LoadingText, ts)
		h := int(float32(FontCellH) * ts)
		return HUD{Lines: []HUDLine{{
			Text:   LoadingText,
			X:      (fbW - w) / 2,
			Y:      (fbH - h) / 2,
			Scale:  ts,
			Banner: true,
		}}}
	}
	m := int(hudMargin * viewScale)
	return HUD{Lines: []HUDLine{{Text: ScoreText(score), X: m, Y: m, Scale: ts}}}
}
