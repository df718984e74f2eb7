package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Printer writes command results and errors, colored when enabled
type Printer struct {
	out    io.Writer
	errOut io.Writer

	errColor    *color.Color
	addColor    *color.Color
	removeColor *color.Color
}

// NewPrinter creates a printer. In auto mode color is used only when the
// writer is a terminal.
func NewPrinter(out, errOut io.Writer, mode string) *Printer {
	p := &Printer{
		out:         out,
		errOut:      errOut,
		errColor:    color.New(color.FgRed, color.Bold),
		addColor:    color.New(color.FgGreen),
		removeColor: color.New(color.FgRed),
	}

	outColor, errColor := false, false
	switch mode {
	case colorAlways:
		outColor, errColor = true, true
	case colorAuto, "":
		outColor, errColor = isTerminal(out), isTerminal(errOut)
	}
	setColor(p.errColor, errColor)
	setColor(p.addColor, outColor)
	setColor(p.removeColor, outColor)
	return p
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Raw writes already encoded output
func (p *Printer) Raw(b []byte) {
	_, _ = p.out.Write(b)
}

// Line writes a single line
func (p *Printer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Error reports a failure as "error: <message>". Engine errors end with
// their code, e.g. "[MISSING_KEY]".
func (p *Printer) Error(err error) {
	_, _ = p.errColor.Fprintf(p.errOut, "error: %s\n", strings.TrimSpace(err.Error()))
}

// Diff writes a line diff between two renderings of a document
func (p *Printer) Diff(before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				_, _ = p.addColor.Fprintf(p.out, "+%s\n", line)
			case diffmatchpatch.DiffDelete:
				_, _ = p.removeColor.Fprintf(p.out, "-%s\n", line)
			default:
				_, _ = fmt.Fprintf(p.out, " %s\n", line)
			}
		}
	}
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
