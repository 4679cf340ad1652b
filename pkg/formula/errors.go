package formula

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty     = errors.New("formula: empty expression")
	ErrTooLong   = fmt.Errorf("formula: expression longer than %d characters", MaxLength)
	ErrNotFinite = errors.New("formula: result is not a finite number")
)

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// UnknownIdentifierError is returned when the resolver has no binding for a name.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("formula: unknown identifier %q", e.Name)
}
