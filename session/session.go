// Package session runs the interactive calculator loop: two operands, an
// operator, the result, then whether to go again.
//
// Division by zero is reported and restarts input collection from the first
// operand without asking whether to continue. Running out of input ends the
// session normally; any other read failure is returned to the caller.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"calc-app/calc"
	"calc-app/prompt"
	"calc-app/trace"
)

// Fixed prompt set.
const (
	PromptOperandA = "Enter a number:"
	PromptOperandB = "Enter another number:"
	PromptOperator = "Enter the operator (+, -, *, /):"
	PromptContinue = "Do you want to continue? (y/n)"
)

// Display renders session output.
type Display interface {
	// Clear is called before each new calculation, except when the
	// previous attempt ended in a division by zero.
	Clear() error
	Result(v float64) error
	Failure(err error) error
}

// Stats counts what happened during a session.
type Stats struct {
	Calculations   int
	DivisionErrors int
}

// Session owns one run of the loop.
type Session struct {
	prompter *prompt.Prompter
	display  Display
	state    State
	stats    Stats
}

// New builds a Session reading through p and writing results to d.
func New(p *prompt.Prompter, d Display) *Session {
	return &Session{prompter: p, display: d, state: AwaitingOperandA}
}

// Stats returns the counters accumulated so far.
func (s *Session) Stats() Stats { return s.stats }

func (s *Session) transition(ctx context.Context, next State) {
	slog.DebugContext(ctx, "session transition", "from", s.state, "to", next)
	s.state = next
}

// Run drives the session until the user declines to continue or input ends.
func (s *Session) Run(ctx context.Context) error {
	var (
		a, b    float64
		op      calc.Operator
		result  float64
		seq     int
		restart bool
		err     error
	)
	calcCtx := ctx

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch s.state {
		case AwaitingOperandA:
			seq++
			calcCtx = trace.WithCalculation(ctx, seq)
			// Keep the division error on screen for the retry.
			if !restart {
				if err := s.display.Clear(); err != nil {
					return fmt.Errorf("clear screen: %w", err)
				}
			}
			restart = false
			if a, err = s.prompter.ReadOperand(calcCtx, PromptOperandA); err != nil {
				return s.stop(calcCtx, err)
			}
			s.transition(calcCtx, AwaitingOperandB)

		case AwaitingOperandB:
			if b, err = s.prompter.ReadOperand(calcCtx, PromptOperandB); err != nil {
				return s.stop(calcCtx, err)
			}
			s.transition(calcCtx, AwaitingOperator)

		case AwaitingOperator:
			if op, err = s.prompter.ReadOperator(calcCtx, PromptOperator); err != nil {
				return s.stop(calcCtx, err)
			}
			s.transition(calcCtx, Computing)

		case Computing:
			result, err = calc.Compute(a, b, op)
			if errors.Is(err, calc.ErrDivisionByZero) {
				s.stats.DivisionErrors++
				slog.InfoContext(calcCtx, "division by zero; restarting calculation", "a", a)
				if werr := s.display.Failure(err); werr != nil {
					return fmt.Errorf("write output: %w", werr)
				}
				restart = true
				s.transition(calcCtx, AwaitingOperandA)
				continue
			}
			if err != nil {
				return err
			}
			s.transition(calcCtx, DisplayingResult)

		case DisplayingResult:
			slog.DebugContext(calcCtx, "computed", "a", a, "b", b, "op", op.String(), "result", result)
			if err := s.display.Result(result); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			s.stats.Calculations++
			s.transition(calcCtx, AwaitingContinue)

		case AwaitingContinue:
			more, err := s.prompter.AskContinue(calcCtx, PromptContinue)
			if err != nil {
				return s.stop(calcCtx, err)
			}
			if more {
				s.transition(calcCtx, AwaitingOperandA)
			} else {
				s.transition(calcCtx, Terminated)
			}

		case Terminated:
			s.finish(ctx)
			return nil

		default:
			return fmt.Errorf("session in unknown state %v", s.state)
		}
	}
}

// stop handles a read failure: closed input ends the session cleanly,
// anything else is fatal.
func (s *Session) stop(ctx context.Context, err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		slog.InfoContext(ctx, "input closed; ending session", "state", s.state)
		s.transition(ctx, Terminated)
		s.finish(ctx)
		return nil
	}
	slog.ErrorContext(ctx, "session aborted", "error", err, "state", s.state)
	return err
}

func (s *Session) finish(ctx context.Context) {
	slog.InfoContext(ctx, "session finished",
		"calculations", s.stats.Calculations,
		"division_errors", s.stats.DivisionErrors)
}
