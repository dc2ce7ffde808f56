package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"calc-app/calc"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// Printer writes results and errors to the user's terminal.
// It implements session.Display.
type Printer struct {
	out    io.Writer
	clear  bool
	result *color.Color
	failed *color.Color
}

// NewPrinter builds a Printer. Colors are forced on or off rather than
// auto-detected so output does not depend on the terminal.
func NewPrinter(out io.Writer, useColor, clearEach bool) *Printer {
	p := &Printer{
		out:    out,
		clear:  clearEach,
		result: color.New(color.FgGreen, color.Bold),
		failed: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.result, p.failed} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Clear erases the screen when enabled; otherwise it does nothing.
func (p *Printer) Clear() error {
	if !p.clear {
		return nil
	}
	_, err := io.WriteString(p.out, clearScreen)
	return err
}

// Result prints the outcome of a calculation.
func (p *Printer) Result(v float64) error {
	_, err := fmt.Fprintln(p.out, p.result.Sprintf("Result: %s", calc.FormatResult(v)))
	return err
}

// Failure prints a recoverable error such as division by zero.
func (p *Printer) Failure(err error) error {
	_, werr := fmt.Fprintln(p.out, p.failed.Sprintf("Error: %v", err))
	return werr
}
