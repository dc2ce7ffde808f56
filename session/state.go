package session

import "fmt"

// State is a step of the calculator session loop.
type State int

const (
	AwaitingOperandA State = iota
	AwaitingOperandB
	AwaitingOperator
	Computing
	DisplayingResult
	AwaitingContinue
	Terminated
)

var stateNames = [...]string{
	AwaitingOperandA: "awaiting_operand_a",
	AwaitingOperandB: "awaiting_operand_b",
	AwaitingOperator: "awaiting_operator",
	Computing:        "computing",
	DisplayingResult: "displaying_result",
	AwaitingContinue: "awaiting_continue",
	Terminated:       "terminated",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}
