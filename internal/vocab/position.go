package vocab

import (
	"errors"
	"fmt"

	"github.com/nao1215/photostamp/internal/render"
)

// ErrUnknownAnchor is returned when the input names no known position.
var ErrUnknownAnchor = errors.New("unknown position: choose one of left_top, left_bottom, right_top, right_bottom, center, top_center, bottom_center")

// positionAliases maps localized position vocabulary to canonical anchor
// names. Same closed-table rule as colorAliases.
var positionAliases = map[string]string{
	"左上":   "left_top",
	"左上角":  "left_top",
	"左下":   "left_bottom",
	"左下角":  "left_bottom",
	"右上":   "right_top",
	"右上角":  "right_top",
	"右下":   "right_bottom",
	"右下角":  "right_bottom",
	"居中":   "center",
	"中间":   "center",
	"正中":   "center",
	"顶部居中": "top_center",
	"上中":   "top_center",
	"底部居中": "bottom_center",
	"下中":   "bottom_center",
}

// ParseAnchor resolves a user-supplied position to a canonical anchor.
// Validation happens here at the input boundary; the placement engine
// itself treats anything unknown as left_top.
func ParseAnchor(input string) (render.Anchor, error) {
	name := Fold(input)
	if canonical, ok := positionAliases[name]; ok {
		name = canonical
	}

	for _, anchor := range render.Anchors() {
		if name == string(anchor) {
			return anchor, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAnchor, input)
}
