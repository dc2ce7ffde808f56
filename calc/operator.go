package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperator is returned when input does not name one of the four operations.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator is one of the four supported arithmetic operations.
// The zero value is not a valid operator.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// operatorForms maps every accepted (lowercased) spelling to its operator.
var operatorForms = map[string]Operator{
	"+":        Add,
	"add":      Add,
	"plus":     Add,
	"-":        Subtract,
	"sub":      Subtract,
	"subtract": Subtract,
	"minus":    Subtract,
	"*":        Multiply,
	"x":        Multiply,
	"mul":      Multiply,
	"multiply": Multiply,
	"times":    Multiply,
	"/":        Divide,
	"div":      Divide,
	"divide":   Divide,
}

// ParseOperator matches s against the accepted symbol and word forms.
// Matching ignores case and surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if op, ok := operatorForms[key]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q (use +, -, *, /)", ErrUnknownOperator, strings.TrimSpace(s))
}

// Valid reports whether op is one of the defined operators.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Symbol returns the single-character form of op.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}
