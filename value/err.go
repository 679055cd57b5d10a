package value

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrInvalidLiteral = errors.New(f("invalid literal"))
)

// ErrParseLiteral is a register literal that is not an integer.
type ErrParseLiteral string

func (err ErrParseLiteral) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseLiteral) Is(target error) bool {
	return target == ErrInvalidLiteral
}

// ErrParseAssignment is a register assignment that is not of the form rN=value.
type ErrParseAssignment string

func (err ErrParseAssignment) Error() string {
	return f("'%v' is not a register assignment", string(err))
}

func (err ErrParseAssignment) Is(target error) bool {
	return target == ErrInvalidLiteral
}
