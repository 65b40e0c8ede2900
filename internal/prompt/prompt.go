package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/photostamp/internal/imagefile"
	"github.com/nao1215/photostamp/internal/render"
	"github.com/nao1215/photostamp/internal/vocab"
)

// ErrInputClosed is returned when the input stream ends before a valid
// value was read.
var ErrInputClosed = errors.New("input closed before a valid value was entered")

// Prompter reads interactive input. It takes an io.Reader and io.Writer
// so tests can script the conversation.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Path prompts for an image file or directory until one resolves, and
// returns the source directory plus target set. Surrounding quotes are
// stripped so paths pasted from a file manager work.
func (p *Prompter) Path() (dir string, targets []string, err error) {
	for {
		line, err := p.readLine("Enter an image file or directory path: ")
		if err != nil {
			return "", nil, err
		}
		line = strings.Trim(strings.TrimSpace(line), `"'`)

		dir, targets, err = imagefile.Resolve(line)
		switch {
		case err == nil:
			return dir, targets, nil
		case errors.Is(err, imagefile.ErrUnsupportedExtension):
			fmt.Fprintln(p.out, "Unsupported file type. Supported extensions: .jpg, .jpeg, .png.")
		default:
			fmt.Fprintln(p.out, "Invalid path. Enter an existing image file or directory.")
		}
	}
}

// FontSize prompts for a positive integer font size.
func (p *Prompter) FontSize() (int, error) {
	for {
		line, err := p.readLine("Enter a font size (e.g. 36): ")
		if err != nil {
			return 0, err
		}

		size, err := strconv.Atoi(vocab.Fold(line))
		if err == nil && size > 0 {
			return size, nil
		}
		fmt.Fprintln(p.out, "Invalid font size. Enter a positive integer.")
	}
}

// Color prompts for a fill color: an English name, a localized alias,
// or a hex triple. Returns the resolved color and the text as entered.
func (p *Prompter) Color() (color.NRGBA, string, error) {
	for {
		line, err := p.readLine("Enter a color (e.g. white, 白色, #FFFFFF): ")
		if err != nil {
			return color.NRGBA{}, "", err
		}

		c, err := vocab.ParseColor(line)
		if err == nil {
			return c, strings.TrimSpace(line), nil
		}
		fmt.Fprintln(p.out, "Invalid color. Enter a common color name or a hex value such as #FFFFFF.")
	}
}

// Anchor prompts for one of the seven watermark positions.
func (p *Prompter) Anchor() (render.Anchor, error) {
	choices := make([]string, 0, len(render.Anchors()))
	for _, a := range render.Anchors() {
		choices = append(choices, string(a))
	}
	menu := strings.Join(choices, " / ")

	for {
		line, err := p.readLine(fmt.Sprintf("Enter a position (%s): ", menu))
		if err != nil {
			return "", err
		}

		anchor, err := vocab.ParseAnchor(line)
		if err == nil {
			return anchor, nil
		}
		fmt.Fprintf(p.out, "Invalid position. Choose one of: %s.\n", menu)
	}
}

// readLine prints the prompt text and reads one line.
func (p *Prompter) readLine(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}
