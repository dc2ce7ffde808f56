package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

// TestCalc_Compute covers each operation plus the division-by-zero case.
func TestCalc_Compute(t *testing.T) {
	cases := []struct {
		name    string
		a, b    float64
		op      Operator
		want    float64
		wantErr error
	}{
		{"add", 4, 2, Add, 6, nil},
		{"subtract", 4, 2, Subtract, 2, nil},
		{"multiply", 4, 2, Multiply, 8, nil},
		{"divide", 4, 2, Divide, 2, nil},
		{"divide_fraction", 1, 4, Divide, 0.25, nil},
		{"negative_result", 2, 5, Subtract, -3, nil},
		{"divide_by_zero", 5, 0, Divide, 0, ErrDivisionByZero},
		{"divide_by_negative_zero", 5, math.Copysign(0, -1), Divide, 0, ErrDivisionByZero},
		{"zero_divided", 0, 5, Divide, 0, nil},
		{"invalid_operator", 1, 1, Operator(0), 0, ErrUnknownOperator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(tc.a, tc.b, tc.op)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Compute() err=%v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Compute(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.op, got, tc.want)
			}
		})
	}
}

// TestCalc_ParseOperand checks that accepted input matches strconv.ParseFloat
// and that everything else wraps ErrInvalidNumber.
func TestCalc_ParseOperand(t *testing.T) {
	valid := []string{"5", "-3", "3.14", "  42  ", "1e3", "-0.5", ".5", "7.", "0x1p-2", "Inf", "-inf", "1e400", "-1e400", " 1E999 "}
	for _, s := range valid {
		t.Run("valid_"+s, func(t *testing.T) {
			got, err := ParseOperand(s)
			if err != nil {
				t.Fatalf("ParseOperand(%q) error: %v", s, err)
			}
			want, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if perr != nil && !errors.Is(perr, strconv.ErrRange) {
				t.Fatalf("bad fixture %q: %v", s, perr)
			}
			if got != want {
				t.Fatalf("ParseOperand(%q) = %v, want %v", s, got, want)
			}
		})
	}

	invalid := []string{"", "   ", "abc", "1,5", "5a", "1e", "--1", "+"}
	for _, s := range invalid {
		t.Run("invalid_"+s, func(t *testing.T) {
			if _, err := ParseOperand(s); !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("ParseOperand(%q) err=%v want ErrInvalidNumber", s, err)
			}
		})
	}
}

// Out-of-range literals are still numbers; they saturate to infinity.
func TestCalc_ParseOperandOverflow(t *testing.T) {
	cases := map[string]float64{
		"1e400":  math.Inf(1),
		"-1e400": math.Inf(-1),
	}
	for in, want := range cases {
		got, err := ParseOperand(in)
		if err != nil {
			t.Fatalf("ParseOperand(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOperand(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCalc_ParseAnswer(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"y", true, false},
		{"Y", true, false},
		{"yes", true, false},
		{"YES", true, false},
		{" Yes ", true, false},
		{"n", false, false},
		{"N", false, false},
		{"no", false, false},
		{"NO", false, false},
		{"", false, true},
		{"maybe", false, true},
		{"nope", false, true},
		{"yess", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAnswer(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAnswer) {
					t.Fatalf("ParseAnswer(%q) err=%v want ErrInvalidAnswer", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswer(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseAnswer(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCalc_FormatResult(t *testing.T) {
	cases := map[float64]string{
		8:    "8",
		2.5:  "2.5",
		-3:   "-3",
		0.1:  "0.1",
		1e21: "1e+21",
	}
	for in, want := range cases {
		if got := FormatResult(in); got != want {
			t.Fatalf("FormatResult(%v) = %q, want %q", in, got, want)
		}
	}
}
