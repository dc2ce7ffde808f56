// Package calc holds the arithmetic and input parsing rules of the calculator.
// It does no I/O; the prompt and session packages own the terminal.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned by Compute when dividing by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidNumber wraps every operand parse failure.
	ErrInvalidNumber = errors.New("please type a number")
	// ErrInvalidAnswer wraps every unrecognized yes/no reply.
	ErrInvalidAnswer = errors.New("please answer y or n")
)

// ParseOperand parses a single floating-point operand.
// Leading and trailing whitespace is ignored. Literals too large for a
// float64 parse to ±Inf rather than failing.
func ParseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// Compute applies op to a and b.
func Compute(a, b float64, op Operator) (float64, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	}
	// Divide.
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// ParseAnswer interprets a yes/no reply.
func ParseAnswer(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidAnswer, strings.TrimSpace(s))
	}
}

// FormatResult renders v in its shortest round-trip decimal form.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
