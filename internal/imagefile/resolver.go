package imagefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Path resolution errors. Sentinel errors so the interactive layer can
// distinguish "try again" conditions with errors.Is.
var (
	// ErrInvalidPath is returned when the path does not exist or is
	// neither a regular file nor a directory.
	ErrInvalidPath = errors.New("invalid path: must be an existing image file or directory")

	// ErrUnsupportedExtension is returned for a file input whose
	// extension is not a supported image format.
	ErrUnsupportedExtension = errors.New("unsupported extension: expected .jpg, .jpeg, or .png")
)

// OutputSuffix is appended to the source directory name to form the
// output directory name.
const OutputSuffix = "_watermark"

// supportedExtensions is the closed set of image formats this tool
// processes, matched case-insensitively.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsSupported reports whether the path has a supported image extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Resolve turns a user-supplied path into the source directory and the
// ordered set of image targets.
//
// A directory yields its direct children (non-recursive) with supported
// extensions, sorted by filename for deterministic summaries. A file
// yields itself when supported and ErrUnsupportedExtension otherwise.
// A missing or irregular path yields ErrInvalidPath.
func Resolve(path string) (dir string, targets []string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	switch {
	case info.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return "", nil, fmt.Errorf("read directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsSupported(entry.Name()) {
				continue
			}
			targets = append(targets, filepath.Join(path, entry.Name()))
		}
		sort.Strings(targets)
		return path, targets, nil

	case info.Mode().IsRegular():
		if !IsSupported(path) {
			return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
		}
		return filepath.Dir(path), []string{path}, nil

	default:
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
}

// OutputDir returns the path of the output directory for a source
// directory: a sibling named "<source-dir-name>_watermark".
func OutputDir(sourceDir string) string {
	cleaned := filepath.Clean(sourceDir)
	return filepath.Join(filepath.Dir(cleaned), filepath.Base(cleaned)+OutputSuffix)
}

// EnsureOutputDir creates the output directory for sourceDir if it does
// not exist and returns its path. An existing directory is reused;
// same-name files inside it are overwritten later without warning.
func EnsureOutputDir(sourceDir string) (string, error) {
	out := OutputDir(sourceDir)
	if err := os.MkdirAll(out, 0750); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", out, err)
	}
	return out, nil
}
