package desktop

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalised GL components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	SkyTop    RGB
	DeepWater RGB
	Text      RGB
	Shadow    RGB
	Loading   RGB
	Bubble    RGB
}{
	SkyTop:    RGB{R: 135, G: 206, B: 235}, // #87ceeb
	DeepWater: RGB{R: 24, G: 82, B: 140},
	Text:      RGB{R: 255, G: 255, B: 255},
	Shadow:    RGB{R: 10, G: 30, B: 50},
	Loading:   RGB{R: 255, G: 255, B: 160},
	Bubble:    RGB{R: 220, G: 245, B: 255},
}
