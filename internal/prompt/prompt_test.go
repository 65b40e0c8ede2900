package prompt

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/nao1215/photostamp/internal/render"
)

// TestPrompterFontSize tests retry on invalid input.
func TestPrompterFontSize(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("abc\n-5\n36\n"), &out)

	size, err := p.FontSize()
	if err != nil {
		t.Fatalf("FontSize returned error: %v", err)
	}
	if size != 36 {
		t.Errorf("FontSize = %d, expected 36", size)
	}
	if got := strings.Count(out.String(), "Invalid font size"); got != 2 {
		t.Errorf("printed %d retry messages, expected 2", got)
	}
}

// TestPrompterFontSizeFullWidth tests that full-width digits are accepted.
func TestPrompterFontSizeFullWidth(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("４８\n"), &bytes.Buffer{})
	size, err := p.FontSize()
	if err != nil {
		t.Fatalf("FontSize returned error: %v", err)
	}
	if size != 48 {
		t.Errorf("FontSize = %d, expected 48", size)
	}
}

// TestPrompterColor tests retry and alias resolution.
func TestPrompterColor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("notacolor\n白色\n"), &out)

	c, entered, err := p.Color()
	if err != nil {
		t.Fatalf("Color returned error: %v", err)
	}
	if c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Color = %+v, expected white", c)
	}
	if entered != "白色" {
		t.Errorf("entered text = %q, expected the raw input", entered)
	}
	if !strings.Contains(out.String(), "Invalid color") {
		t.Error("missing retry message for the bad color")
	}
}

// TestPrompterAnchor tests retry and the localized alias path.
func TestPrompterAnchor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("middle\n右下\n"), &out)

	anchor, err := p.Anchor()
	if err != nil {
		t.Fatalf("Anchor returned error: %v", err)
	}
	if anchor != render.AnchorRightBottom {
		t.Errorf("Anchor = %q, expected right_bottom", anchor)
	}
	if !strings.Contains(out.String(), "Invalid position") {
		t.Error("missing retry message for the bad position")
	}
}

// TestPrompterPath tests quote stripping and directory resolution.
func TestPrompterPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := imaging.New(8, 8, color.NRGBA{A: 255})
	if err := imaging.Save(img, filepath.Join(dir, "a.png")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	input := "/no/such/place\n\"" + dir + "\"\n"
	p := New(strings.NewReader(input), &out)

	gotDir, targets, err := p.Path()
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if gotDir != dir {
		t.Errorf("dir = %q, expected %q", gotDir, dir)
	}
	if len(targets) != 1 || filepath.Base(targets[0]) != "a.png" {
		t.Errorf("targets = %v, expected only a.png", targets)
	}
	if !strings.Contains(out.String(), "Invalid path") {
		t.Error("missing retry message for the bad path")
	}
}

// TestPrompterPathUnsupportedExtension tests the dedicated message for a
// real file with the wrong extension.
func TestPrompterPathUnsupportedExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	img := filepath.Join(dir, "ok.jpg")
	if err := imaging.Save(imaging.New(8, 8, color.NRGBA{A: 255}), img); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := New(strings.NewReader(txt+"\n"+img+"\n"), &out)

	_, targets, err := p.Path()
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if len(targets) != 1 || targets[0] != img {
		t.Errorf("targets = %v, expected the jpg", targets)
	}
	if !strings.Contains(out.String(), "Unsupported file type") {
		t.Error("missing the unsupported-extension message")
	}
}

// TestPrompterInputClosed tests the EOF sentinel on every prompt.
func TestPrompterInputClosed(t *testing.T) {
	t.Parallel()

	if _, err := New(strings.NewReader(""), &bytes.Buffer{}).FontSize(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("FontSize error = %v, expected ErrInputClosed", err)
	}
	if _, _, err := New(strings.NewReader("bogus\n"), &bytes.Buffer{}).Color(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Color error = %v, expected ErrInputClosed", err)
	}
	if _, err := New(strings.NewReader(""), &bytes.Buffer{}).Anchor(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Anchor error = %v, expected ErrInputClosed", err)
	}
	if _, _, err := New(strings.NewReader(""), &bytes.Buffer{}).Path(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Path error = %v, expected ErrInputClosed", err)
	}
}
