package cpu

import (
	"errors"
	"fmt"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrMissingHalt     = errors.New(f("reaching end of ROM, missing HALT"))
	ErrMaxInstructions = errors.New(f("reaching max instruction count, missing HALT or infinite loop?"))
	ErrMemoryBounds    = errors.New(f("index of memory out of bounds"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrArchUnsupported = errors.New(f("architecture not supported"))
	ErrArchInvalid     = errors.New(f("architecture unknown"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction unknown"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return fmt.Sprintf("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrExecute locates a runtime fault.
type ErrExecute struct {
	Pc          int
	Instruction Instruction
	Err         error
}

func (err ErrExecute) Error() string {
	return fmt.Sprintf("%v (pc %d, line %d '%v')", err.Err, err.Pc, err.Instruction.LineNo, err.Instruction)
}

func (err ErrExecute) Unwrap() error {
	return err.Err
}
