package domain

import "fmt"

// Operation selects which attendance control a run presses.
type Operation string

const (
	OperationClockIn  Operation = "clock-in"
	OperationClockOut Operation = "clock-out"
)

// ParseOperation validates the CLI token against the closed operation set.
// It runs before anything else in a run, so a typo never opens a browser.
func ParseOperation(token string) (Operation, error) {
	switch op := Operation(token); op {
	case OperationClockIn, OperationClockOut:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOperation, token)
}
