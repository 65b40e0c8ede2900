package exifdate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
	legacyexif "github.com/rwcarlsen/goexif/exif"
)

// tagPreference is the ordered list of EXIF tags consulted for a capture
// date: the original capture time first, the file modification time as a
// fallback.
var tagPreference = []string{"DateTimeOriginal", "DateTime"}

// Extract reads the capture date from the image at path and returns it
// as YYYY-MM-DD. The second return value is false when no tag is present
// or the value cannot be parsed; this is the common skip condition, not
// an error.
//
// Two accessors are tried in order, first non-empty raw value wins:
// a full EXIF block scan via go-exif, then the legacy goexif decoder,
// which tolerates some files the primary scan rejects.
func Extract(path string) (string, bool) {
	raw := extractFlat(path)
	if raw == "" {
		raw = extractLegacy(path)
	}
	if raw == "" {
		return "", false
	}
	return Normalize(raw)
}

// extractFlat scans the file's EXIF block and returns the first value in
// tag preference order, or "" when the file carries no usable EXIF data.
func extractFlat(path string) string {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return ""
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return ""
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, ok := values[entry.TagName]; !ok && entry.Formatted != "" {
			values[entry.TagName] = entry.Formatted
		}
	}

	for _, tag := range tagPreference {
		if v := values[tag]; v != "" {
			return v
		}
	}
	return ""
}

// extractLegacy reads the same tags through the older goexif decoder.
func extractLegacy(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	x, err := legacyexif.Decode(f)
	if err != nil {
		return ""
	}

	for _, field := range []legacyexif.FieldName{legacyexif.DateTimeOriginal, legacyexif.DateTime} {
		tag, err := x.Get(field)
		if err != nil || tag == nil {
			continue
		}
		if s, err := tag.StringVal(); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// Normalize converts a raw EXIF timestamp to YYYY-MM-DD. The primary
// format is the EXIF standard "YYYY:MM:DD HH:MM:SS"; "YYYY-MM-DD HH:MM:SS"
// is accepted as a fallback. Only the date portion is kept, re-emitted
// zero-padded. Garbled values yield ("", false).
func Normalize(raw string) (string, bool) {
	datePart := strings.SplitN(strings.TrimSpace(raw), " ", 2)[0]

	for _, sep := range []string{":", "-"} {
		parts := strings.Split(datePart, sep)
		if len(parts) != 3 {
			continue
		}
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}
	return "", false
}
