package game

import "math"

// Viewport is the drawable surface size and the derived gameplay scale.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// NewViewport fits the reference resolution into w x h.
func NewViewport(w, h float64) Viewport {
	v := Viewport{Width: ReferenceWidth, Height: ReferenceHeight, Scale: 1}
	v.Resize(w, h)
	return v
}

// FitScale is the uniform scale that keeps the reference resolution's
// aspect inside w x h.
func FitScale(w, h float64) float64 {
	return math.Min(w/ReferenceWidth, h/ReferenceHeight)
}

// Resize updates the surface size and scale. Non-positive sizes (minimised
// windows, a terminal mid-resize) are ignored so Scale stays positive.
// It reports whether anything changed.
func (v *Viewport) Resize(w, h float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if w == v.Width && h == v.Height {
		return false
	}
	v.Width = w
	v.Height = h
	v.Scale = FitScale(w, h)
	return true
}

// Smallest window the desktop frontend allows; a fish still spans several
// pixels at this scale.
const (
	MinWindowWidth  = ReferenceWidth / 4
	MinWindowHeight = ReferenceHeight / 4
)

// windowFill is the share of the monitor work area an initial window may use.
const windowFill = 0.9

// FitWindow picks the initial window size for a monitor work area: the
// reference resolution at the largest quarter-step scale that fits within
// windowFill of the area. An unknown work area yields the default size.
func FitWindow(workW, workH int) (int, int) {
	if workW <= 0 || workH <= 0 {
		return WindowWidth, WindowHeight
	}
	s := math.Floor(FitScale(float64(workW)*windowFill, float64(workH)*windowFill)*4) / 4
	if s < 0.25 {
		return MinWindowWidth, MinWindowHeight
	}
	return int(ReferenceWidth * s), int(ReferenceHeight * s)
}
