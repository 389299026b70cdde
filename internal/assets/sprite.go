package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Sprite is a decoded raster in straight-alpha RGBA, ready for upload.
type Sprite struct {
	Name      string
	Image     *image.NRGBA
	Generated bool // drawn in code because the file was missing
}

// Size returns the intrinsic pixel size.
func (s *Sprite) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// toNRGBA converts any decoded image to a tightly packed NRGBA at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
		return n
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Fish sprite colours for the generated fallbacks.
var (
	SwimmyBody = color.NRGBA{R: 28, G: 30, B: 38, A: 255}
	SwimmyFin  = color.NRGBA{R: 60, G: 64, B: 80, A: 255}
	RedBody    = color.NRGBA{R: 214, G: 48, B: 42, A: 255}
	RedFin     = color.NRGBA{R: 168, G: 28, B: 30, A: 255}
	eyeWhite   = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	eyePupil   = color.NRGBA{R: 10, G: 10, B: 12, A: 255}
)

// DrawFish paints a simple fish (oval body, triangular tail, one eye) into a
// w x h image. facingRight puts the head on the right.
func DrawFish(w, h int, body, fin color.NRGBA, facingRight bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)

	tailW := fw * 0.28
	cx := tailW + (fw-tailW)/2
	cy := fh / 2
	rx := (fw - tailW) / 2
	ry := fh * 0.42

	eyeX := cx + rx*0.55
	eyeY := cy - ry*0.25
	eyeR := fh * 0.09

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			var c color.NRGBA
			var hit bool

			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				c, hit = body, true
			} else if px < tailW+1 {
				// Tail: a triangle whose height grows toward the left edge.
				spread := (tailW - px) / tailW * fh * 0.45
				if spread < fh*0.12 {
					spread = fh * 0.12
				}
				if py >= cy-spread && py <= cy+spread {
					c, hit = fin, true
				}
			}
			if ex, ey := px-eyeX, py-eyeY; ex*ex+ey*ey <= eyeR*eyeR {
				c, hit = eyeWhite, true
				if ex*ex+ey*ey <= eyeR*eyeR*0.3 {
					c = eyePupil
				}
			}
			if !hit {
				continue
			}
			tx := x
			if !facingRight {
				tx = w - 1 - x
			}
			img.SetNRGBA(tx, y, c)
		}
	}
	return img
}
