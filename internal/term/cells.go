package term

import (
	"math"

	"fishchase/internal/game"
)

// A terminal cell stands for CellW x CellH simulation pixels, roughly the
// 1:2 aspect of a monospace glyph.
const (
	CellW = 10
	CellH = 20
)

// ViewSize is the simulation surface for a cols x rows terminal.
func ViewSize(cols, rows int) (float64, float64) {
	return float64(cols * CellW), float64(rows * CellH)
}

// CellSpan is an inclusive-exclusive cell rectangle.
type CellSpan struct {
	X0, Y0, X1, Y1 int
}

func (c CellSpan) Empty() bool { return c.X1 <= c.X0 || c.Y1 <= c.Y0 }

// ToCells maps a pixel rect to the cells whose centres it covers. Anything
// at least one pixel wide still gets one cell so tiny fish stay visible.
func ToCells(r game.Rect) CellSpan {
	x0 := int(math.Round(r.X / CellW))
	y0 := int(math.Round(r.Y / CellH))
	x1 := int(math.Round((r.X + r.Width) / CellW))
	y1 := int(math.Round((r.Y + r.Height) / CellH))
	if x1 <= x0 && r.Width > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.Height > 0 {
		y1 = y0 + 1
	}
	return CellSpan{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// CellCentre is the simulation pixel at the centre of a cell.
func CellCentre(col, row int) game.Point {
	return game.Point{
		X: float64(col)*CellW + CellW/2,
		Y: float64(row)*CellH + CellH/2,
	}
}
