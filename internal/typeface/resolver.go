package typeface

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// BitmapFallback describes the terminal fallback face in Resolve's
// source string. Callers can match on it to warn that the requested
// size was not honored.
const BitmapFallback = "built-in bitmap font (fixed 7x13, requested size ignored)"

// wellKnownFonts are scalable font files probed in order: a generic
// sans-serif and a CJK-capable font per platform.
var wellKnownFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
	`C:\Windows\Fonts\msyh.ttc`,
}

// fontDirs are the default search locations for loading a font by
// common name when none of the well-known paths exist.
var fontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/System/Library/Fonts",
	"/Library/Fonts",
	`C:\Windows\Fonts`,
}

// commonNames are filenames searched for within fontDirs.
var commonNames = []string{"DejaVuSans.ttf", "arial.ttf", "Arial.ttf"}

// Resolve returns a font face at the requested point size (72 DPI) and a
// description of where it came from. The fallback chain is an ordered
// list of attempts, first success wins:
//
//  1. caller-supplied font file paths (flags or config file)
//  2. well-known scalable font locations
//  3. a search of the default font directories by common name
//  4. the embedded Go Regular typeface at the requested size
//  5. the fixed-size bitmap face, whose size is backend-determined
//
// Step 5 always succeeds, so Resolve never returns a nil face. Reaching
// it is a degraded-but-functional state, not an error.
func Resolve(size int, extraPaths ...string) (font.Face, string) {
	attempts := []func() (font.Face, string){
		func() (font.Face, string) { return fromFiles(size, extraPaths) },
		func() (font.Face, string) { return fromFiles(size, wellKnownFonts) },
		func() (font.Face, string) { return fromFiles(size, searchDirs()) },
		func() (font.Face, string) { return fromEmbedded(size) },
	}

	for _, attempt := range attempts {
		if face, source := attempt(); face != nil {
			return face, source
		}
	}
	return basicfont.Face7x13, BitmapFallback
}

// fromFiles loads the first path that exists and parses at the requested
// size. Collections (.ttc) contribute their first font.
func fromFiles(size int, paths []string) (font.Face, string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			continue
		}
		fnt, err := coll.Font(0)
		if err != nil {
			continue
		}
		face, err := newFace(fnt, size)
		if err != nil {
			continue
		}
		return face, path
	}
	return nil, ""
}

// searchDirs walks the default font directories looking for the common
// filenames, case-insensitively.
func searchDirs() []string {
	var found []string
	for _, dir := range fontDirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // unreadable entries are skipped, not fatal
			}
			for _, name := range commonNames {
				if strings.EqualFold(filepath.Base(path), name) {
					found = append(found, path)
					break
				}
			}
			return nil
		})
	}
	return found
}

// fromEmbedded builds a face from the Go Regular typeface compiled into
// the binary. It honors the requested size, unlike the bitmap fallback.
func fromEmbedded(size int) (font.Face, string) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, ""
	}
	face, err := newFace(fnt, size)
	if err != nil {
		return nil, ""
	}
	return face, "embedded Go Regular"
}

func newFace(fnt *opentype.Font, size int) (font.Face, error) {
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
