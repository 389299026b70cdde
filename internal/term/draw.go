package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"fishchase/internal/game"
	"fishchase/internal/scene"
)

var (
	styleWater    = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 82, 140))
	stylePlayer   = styleWater.Foreground(tcell.ColorYellow).Bold(true)
	styleObstacle = styleWater.Foreground(tcell.ColorRed)
	styleFollower = styleWater.Foreground(tcell.ColorLightCoral)
	styleBubble   = styleWater.Foreground(tcell.NewRGBColor(220, 245, 255))
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(10, 30, 50)).Bold(true)
)

// fishRow renders one row of a fish n cells wide.
func fishRow(n int, facingRight bool) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		if facingRight {
			return ">"
		}
		return "<"
	case n == 2:
		return "><"
	}
	body := strings.Repeat("=", n-3)
	if facingRight {
		return "><" + body + ">"
	}
	return "<" + body + "><"
}

func drawFish(s tcell.Screen, r game.Rect, facingRight bool, st tcell.Style) {
	c := ToCells(r)
	if c.Empty() {
		return
	}
	row := []rune(fishRow(c.X1-c.X0, facingRight))
	for y := c.Y0; y < c.Y1; y++ {
		for i, ch := range row {
			s.SetContent(c.X0+i, y, ch, nil, st)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

// Draw paints one frame: water, obstacles, followers, player, bubbles, then
// the score line on the top row. Cells off-screen are dropped by tcell.
// bubbles may be nil.
func Draw(s tcell.Screen, state game.GameState, snap game.Snapshot, bubbles *scene.Bubbles) {
	s.SetStyle(styleWater)
	s.Clear()
	cols, rows := s.Size()

	if state == game.StateLoading {
		x := (cols - len(scene.LoadingText)) / 2
		drawText(s, max(x, 0), rows/2, scene.LoadingText, styleHUD)
		s.Show()
		return
	}

	for _, r := range snap.Obstacles {
		drawFish(s, r, false, styleObstacle)
	}
	for i := len(snap.Followers) - 1; i >= 0; i-- {
		drawFish(s, snap.Followers[i], true, styleFollower)
	}
	drawFish(s, snap.Player, true, stylePlayer)
	if bubbles != nil {
		for _, b := range bubbles.P {
			if b.Alpha() <= 0 {
				continue
			}
			ch := 'o'
			if b.Alpha() < 0.5 {
				ch = '.'
			}
			c := ToCells(game.Rect{X: b.X, Y: b.Y, Width: 1, Height: 1})
			s.SetContent(c.X0, c.Y0, ch, nil, styleBubble)
		}
	}

	drawText(s, 1, 0, " "+scene.ScoreText(snap.Score)+" ", styleHUD)
	s.Show()
}
