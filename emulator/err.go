package emulator

import (
	"errors"
	"fmt"

	"github.com/ezrec/risc16/cpu"
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	// cpu.ErrExecute already carries the location.
	var exec *cpu.ErrExecute
	if err.LineNo == 0 || errors.As(err.Err, &exec) {
		return err.Err.Error()
	}
	return fmt.Sprintf("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
