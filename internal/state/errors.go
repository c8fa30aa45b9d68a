// internal/state/errors.go
package state

import (
	"errors"
	"fmt"
)

var (
	// ErrNilState — в Push/Replace передали nil. Стек при этом не меняется.
	ErrNilState = errors.New("nil state")
	// ErrEmptyStack — Top вызван на пустом стеке.
	ErrEmptyStack = errors.New("empty stack")
)

// StackError описывает отклонённую операцию стека.
type StackError struct {
	Op  string // "push", "replace", "top"
	Err error
}

func (e *StackError) Error() string {
	return fmt.Sprintf("state stack: %s: %v", e.Op, e.Err)
}

func (e *StackError) Unwrap() error {
	return e.Err
}
