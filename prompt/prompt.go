// Package prompt reads line-oriented answers from a text stream, re-prompting
// until each answer parses.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"calc-app/calc"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter writes prompts to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New constructs a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine shows prompt and returns the next line without its line ending.
// A final unterminated line is still returned; after that, ErrInputClosed.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprintln(p.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			slog.ErrorContext(ctx, "read failed", "error", err)
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask is the retry combinator: it keeps prompting until parse accepts a line.
// Rejected lines are reported to the user; only read failures end the loop.
func Ask[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for attempt := 1; ; attempt++ {
		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		slog.DebugContext(ctx, "input rejected", "prompt", prompt, "attempt", attempt, "error", err)
		if _, werr := fmt.Fprintf(p.out, "Invalid input: %v\n", err); werr != nil {
			var zero T
			return zero, fmt.Errorf("write prompt: %w", werr)
		}
	}
}

// ReadOperand prompts until a number is entered.
func (p *Prompter) ReadOperand(ctx context.Context, prompt string) (float64, error) {
	return Ask(ctx, p, prompt, calc.ParseOperand)
}

// ReadOperator prompts until one of the accepted operator forms is entered.
func (p *Prompter) ReadOperator(ctx context.Context, prompt string) (calc.Operator, error) {
	return Ask(ctx, p, prompt, calc.ParseOperator)
}

// AskContinue prompts until a yes/no answer is given.
func (p *Prompter) AskContinue(ctx context.Context, prompt string) (bool, error) {
	return Ask(ctx, p, prompt, calc.ParseAnswer)
}
