package harness

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrRequestInvalid = errors.New(f("request invalid"))
	ErrSourceEmpty    = errors.New(f("program source empty"))
)

// ErrBudgetInvalid is a negative instruction budget.
type ErrBudgetInvalid int

func (err ErrBudgetInvalid) Error() string {
	return f("instruction budget %d invalid", int(err))
}

func (err ErrBudgetInvalid) Is(target error) bool {
	return target == ErrRequestInvalid
}
