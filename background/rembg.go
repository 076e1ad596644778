package background

import (
	"image"
	"image/color"
)

// DefaultTolerance is how far below 255 a channel may fall and still count as white.
const DefaultTolerance = 30

// Transparent is what every background pixel is replaced with.
var Transparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

type BackgroundRemover interface {
	Remove(img image.Image) (image.Image, error)
}

// WhiteRemover clears near-white pixels.
//
// A pixel is background when R, G and B are all greater than 255-Tolerance.
// Alpha is ignored when classifying. Background pixels become Transparent and
// every other pixel is copied unchanged, original alpha included. Tolerance
// is not range checked: a negative value clears nothing and anything above
// 255 clears everything.
type WhiteRemover struct {
	Tolerance int
}

var _ BackgroundRemover = (*WhiteRemover)(nil)

func NewWhiteRemover(tolerance int) *WhiteRemover {
	return &WhiteRemover{Tolerance: tolerance}
}

// Remove returns a new *image.NRGBA with the same bounds as img. img is not modified.
func (w *WhiteRemover) Remove(img image.Image) (image.Image, error) {
	return w.clear(toNRGBA(img)), nil
}

func (w *WhiteRemover) IsWhite(r, g, b uint8) bool {
	th := 255 - w.Tolerance
	return int(r) > th && int(g) > th && int(b) > th
}

func (w *WhiteRemover) clear(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	rowLen := b.Dx() * 4

	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+rowLen]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+rowLen]
		for i := 0; i < rowLen; i += 4 {
			if w.IsWhite(s[i], s[i+1], s[i+2]) {
				d[i], d[i+1], d[i+2], d[i+3] = Transparent.R, Transparent.G, Transparent.B, Transparent.A
				continue
			}
			copy(d[i:i+4], s[i:i+4])
		}
	}
	return dst
}
