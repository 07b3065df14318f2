// Package console prints the "[*]"-prefixed status lines shared by the CLIs.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoMark    = color.New(color.FgCyan).Sprint("[*]")
	warnMark    = color.New(color.FgYellow).Sprint("[!]")
	successMark = color.New(color.FgGreen, color.Bold).Sprint("[+++]")
	stepMark    = color.New(color.FgBlue).Sprint("[>]")
)

// Printer writes status lines to w. A nil Printer is silent.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Info(format string, args ...any) {
	p.line(infoMark, format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.line(warnMark, format, args...)
}

func (p *Printer) Step(format string, args ...any) {
	p.line(stepMark, format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.line(successMark, format, args...)
}

func (p *Printer) line(mark, format string, args ...any) {
	if p == nil || p.w == nil {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
