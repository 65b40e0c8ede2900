package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// StrokeWidth is the outline thickness in pixels drawn around the text
// glyphs.
const StrokeWidth = 2

// strokeColor is the outline color. Black keeps the text legible against
// bright backgrounds while the fill color handles dark ones.
var strokeColor = color.NRGBA{A: 255}

// Stamp draws text onto a copy of img at the given anchor and returns the
// copy. The caller's image is never mutated: drawing happens on an NRGBA
// clone, which also guarantees an alpha-capable working canvas regardless
// of the source color model. The outline is rendered by repeating the
// string at every offset within the stroke ring before the fill pass.
func Stamp(img image.Image, text string, face font.Face, fill color.Color, anchor Anchor) *image.NRGBA {
	dst := imaging.Clone(img)

	textW, textH := Measure(face, text)
	pos := Position(dst.Bounds().Dx(), dst.Bounds().Dy(), textW, textH, anchor)

	// The drawer's dot sits on the baseline, not the top of the box.
	baseline := pos.Y + face.Metrics().Ascent.Ceil()

	for dy := -StrokeWidth; dy <= StrokeWidth; dy++ {
		for dx := -StrokeWidth; dx <= StrokeWidth; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(dst, text, face, strokeColor, pos.X+dx, baseline+dy)
		}
	}
	drawString(dst, text, face, fill, pos.X, baseline)

	return dst
}

func drawString(dst *image.NRGBA, text string, face font.Face, c color.Color, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
