package render

import (
	"image"

	"golang.org/x/image/font"
)

// Anchor is a named position on the canvas where the text's bounding box
// is placed.
type Anchor string

// The seven supported anchor positions. Coordinates use a top-left origin.
const (
	AnchorLeftTop      Anchor = "left_top"
	AnchorLeftBottom   Anchor = "left_bottom"
	AnchorRightTop     Anchor = "right_top"
	AnchorRightBottom  Anchor = "right_bottom"
	AnchorCenter       Anchor = "center"
	AnchorTopCenter    Anchor = "top_center"
	AnchorBottomCenter Anchor = "bottom_center"
)

// Margin is the fixed distance in pixels between the text box and the
// nearest canvas edge for edge-relative anchors.
const Margin = 12

// Anchors returns all supported anchors in display order.
func Anchors() []Anchor {
	return []Anchor{
		AnchorLeftTop,
		AnchorLeftBottom,
		AnchorRightTop,
		AnchorRightBottom,
		AnchorCenter,
		AnchorTopCenter,
		AnchorBottomCenter,
	}
}

// Position computes the top-left pixel coordinate of a text box of size
// (textW, textH) placed at the given anchor on a canvas of size
// (canvasW, canvasH). Edge-relative coordinates are clamped at zero so a
// text box wider or taller than the canvas never yields a negative
// position. Unknown anchors place as AnchorLeftTop.
func Position(canvasW, canvasH, textW, textH int, anchor Anchor) image.Point {
	switch anchor {
	case AnchorLeftBottom:
		return image.Pt(Margin, clamp(canvasH-textH-Margin))
	case AnchorRightTop:
		return image.Pt(clamp(canvasW-textW-Margin), Margin)
	case AnchorRightBottom:
		return image.Pt(clamp(canvasW-textW-Margin), clamp(canvasH-textH-Margin))
	case AnchorCenter:
		return image.Pt((canvasW-textW)/2, (canvasH-textH)/2)
	case AnchorTopCenter:
		return image.Pt((canvasW-textW)/2, Margin)
	case AnchorBottomCenter:
		return image.Pt((canvasW-textW)/2, clamp(canvasH-textH-Margin))
	default:
		// AnchorLeftTop and any unrecognized key.
		return image.Pt(Margin, Margin)
	}
}

// Measure returns the pixel dimensions of the bounding box of text when
// rendered with face. Width comes from the drawer's advance; height from
// the face's ascent plus descent.
func Measure(face font.Face, text string) (width, height int) {
	d := &font.Drawer{Face: face}
	metrics := face.Metrics()
	return d.MeasureString(text).Ceil(), (metrics.Ascent + metrics.Descent).Ceil()
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
