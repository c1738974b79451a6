package calculator

import "strconv"

// NumberError is an error indicating that a numeric literal was required but
// none was found. It implements InputError.
type NumberError struct {
	// Col is the position at which a number was expected.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "expected number")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// ParenError is an error indicating an opening parenthesis with no matching
// closing parenthesis. It implements InputError.
type ParenError struct {
	// Col is the position at which the closing parenthesis was expected.
	Col int
}

func (err *ParenError) Error() string {
	return errpos(err.Col, "missing closing parenthesis")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// DivideByZeroError is an error indicating a division whose right operand
// evaluated to exactly zero. It implements InputError.
type DivideByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivideByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivideByZeroError) Pos() int {
	return err.Col
}

// ModuloByZeroError is an error indicating a modulo whose right operand
// truncated to integer zero. It implements InputError.
type ModuloByZeroError struct {
	// Col is the position of the modulo operator.
	Col int
}

func (err *ModuloByZeroError) Error() string {
	return errpos(err.Col, "modulo by zero")
}

func (err *ModuloByZeroError) Pos() int {
	return err.Col
}

// TrailingInputError is an error indicating that input remained after a
// complete expression was parsed. It implements InputError.
type TrailingInputError struct {
	// Col is the position of the first unconsumed character.
	Col int
	// Text is the unconsumed remainder of the input.
	Text string
}

func (err *TrailingInputError) Error() string {
	return errpos(err.Col, "unexpected trailing input "+strconv.Quote(err.Text))
}

func (err *TrailingInputError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the token or operator that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*ModuloByZeroError)(nil)
	_ InputError = (*TrailingInputError)(nil)
)
