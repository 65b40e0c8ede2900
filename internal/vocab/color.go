package vocab

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/width"
)

// ErrUnknownColor is returned when the input is neither a recognized
// color name, a known alias, nor a hex triple.
var ErrUnknownColor = errors.New("unknown color: use a common color name or a hex value such as #FFFFFF")

// colorAliases maps localized color vocabulary to the canonical names
// understood by the SVG 1.1 color table. The mapping is closed: anything
// not listed here is handed to the validator untouched.
var colorAliases = map[string]string{
	"白":   "white",
	"白色":  "white",
	"黑":   "black",
	"黑色":  "black",
	"红":   "red",
	"红色":  "red",
	"绿":   "green",
	"绿色":  "green",
	"蓝":   "blue",
	"蓝色":  "blue",
	"黄":   "yellow",
	"黄色":  "yellow",
	"橙色":  "orange",
	"紫色":  "purple",
	"灰色":  "gray",
	"粉色":  "pink",
	"粉红色": "pink",
}

// ParseColor resolves a user-supplied color to an NRGBA value. Resolution
// order: localized alias, hex triple (#RGB or #RRGGBB), then the SVG 1.1
// named color table. Input is full-width-folded and lowercased first so
// full-width characters typed under a CJK input method validate the same
// as their ASCII forms.
func ParseColor(input string) (color.NRGBA, error) {
	name := Fold(input)
	if canonical, ok := colorAliases[name]; ok {
		name = canonical
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}

	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, input)
}

// parseHex parses #RGB and #RRGGBB triples.
func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// Fold normalizes user input for vocabulary lookup: trims whitespace,
// folds full-width characters to their narrow forms, and lowercases.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}
