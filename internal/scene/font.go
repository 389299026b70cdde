package scene

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII (32..126) in a 16-column grid of
// basicfont 7x13 cells.
const (
	FontFirst  = 32
	FontLast   = 126
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 16
	FontRows   = (FontLast - FontFirst + FontCols) / FontCols
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)

// Atlas is a white-on-transparent glyph sheet.
type Atlas struct {
	Image *image.NRGBA
}

// NewAtlas rasterises basicfont.Face7x13 into an atlas.
func NewAtlas() *Atlas {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := FontFirst; ch <= FontLast; ch++ {
		col, row := cell(rune(ch))
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return &Atlas{Image: img}
}

func cell(ch rune) (col, row int) {
	i := int(ch) - FontFirst
	return i % FontCols, i / FontCols
}

// GlyphUV returns texture coordinates for ch, or ok=false when the atlas
// has no glyph for it.
func GlyphUV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FontFirst || ch > FontLast {
		return 0, 0, 0, 0, false
	}
	col, row := cell(ch)
	u0 = float32(col*FontCellW) / float32(FontAtlasW)
	v0 = float32(row*FontCellH) / float32(FontAtlasH)
	u1 = float32((col+1)*FontCellW) / float32(FontAtlasW)
	v1 = float32((row+1)*FontCellH) / float32(FontAtlasH)
	return u0, v0, u1, v1, true
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// AppendText lays out text at (sx, sy) as textured quads, 8 floats per
// vertex: x, y, u, v, r, g, b, a.
func AppendText(buf []float32, text string, sx, sy int, scale float32, r, g, b float32) []float32 {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	w, h := advance, lineAdvance
	baseX := float32(sx)
	x, y := baseX, float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		u0, v0, u1, v1, ok := GlyphUV(ch)
		if ok {
			buf = append(buf,
				x, y, u0, v0, r, g, b, 1,
				x+w, y, u1, v0, r, g, b, 1,
				x, y+h, u0, v1, r, g, b, 1,
				x+w, y, u1, v0, r, g, b, 1,
				x+w, y+h, u1, v1, r, g, b, 1,
				x, y+h, u0, v1, r, g, b, 1,
			)
		}
		x += advance
	}
	return buf
}
