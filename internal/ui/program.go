package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes styled command output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Width returns the terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Printf writes formatted content
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Field) {
	h := NewHeader(title, command, params...)
	h.Width = p.width
	p.Println(h.Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Field) {
	r := NewSuccessResult(title, details...)
	r.Width = p.width
	p.Println(r.Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	r := NewFailureResult(title, err, troubleshooting)
	r.Width = p.width
	p.Println(r.Render())
}

// PrintWarning prints a warning result box with troubleshooting tips
func (p *Printer) PrintWarning(title string, troubleshooting []string) {
	r := NewWarningResult(title, troubleshooting)
	r.Width = p.width
	p.Println(r.Render())
}

// PrintFields prints key/value lines without a box
func (p *Printer) PrintFields(fields ...Field) {
	p.Println(renderFields(fields))
}
