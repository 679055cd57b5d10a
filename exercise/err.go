package exercise

import (
	"errors"
	"fmt"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrExerciseNotFound  = errors.New(f("exercise not found"))
	ErrMalformedExercise = errors.New(f("malformed exercise"))
)

// ErrSyntax locates a fault in an exercise definition.
type ErrSyntax struct {
	Name   string
	LineNo int // Zero when the fault is not on a single line.
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	if err.LineNo == 0 {
		return f("exercise %v: %v", err.Name, err.Err)
	}
	return fmt.Sprintf("exercise %v line %d '%v' %v", err.Name, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

func (err *ErrSyntax) Is(target error) bool {
	return target == ErrMalformedExercise
}

// ErrCountMismatch is an exercise whose in: and out: line counts differ.
type ErrCountMismatch struct {
	Inputs  int
	Outputs int
}

func (err ErrCountMismatch) Error() string {
	return f("%d input vectors but %d output vectors", err.Inputs, err.Outputs)
}

func (err ErrCountMismatch) Is(target error) bool {
	return target == ErrMalformedExercise
}

// ErrNotFound names a missing exercise.
type ErrNotFound string

func (err ErrNotFound) Error() string {
	return f("exercise %v not found", string(err))
}

func (err ErrNotFound) Is(target error) bool {
	return target == ErrExerciseNotFound
}
