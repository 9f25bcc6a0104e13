package buffer

import "fmt"

// InvariantError is the panic value raised when a caller passes an offset
// that no valid cursor state can produce, or when the piece table is found
// to be internally inconsistent. It is never returned for user-reachable
// conditions; those are clamped.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return "buffer: " + e.Op + ": " + e.Msg
}

func violation(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
