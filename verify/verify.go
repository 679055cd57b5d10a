// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package verify compares the final register banks of a batch of runs
// against the expected register values of an exercise.
package verify

import (
	"errors"

	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrLengthMismatch = errors.New(f("length mismatch"))
)

// ErrRunCount is a batch whose run count differs from its expectations.
type ErrRunCount struct {
	Expected int
	Runs     int
}

func (err ErrRunCount) Error() string {
	return f("%d expectations but %d runs", err.Expected, err.Runs)
}

func (err ErrRunCount) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Outcome is the verdict of one run.
type Outcome struct {
	Run    int  // Index of the run.
	Passed bool // Every expected register matched.
}

// Check reports whether a run's registers hold every expected value. A
// register missing from the bank never matches.
func Check(expected exercise.Expected, run *engine.Result) bool {
	for _, as := range expected {
		reg, ok := run.Register(as.Register)
		if !ok || reg != as.Value {
			return false
		}
	}

	return true
}

// Verify checks runs[i] against outputs[i] for every run.
func Verify(outputs []exercise.Expected, runs []*engine.Result) (outcomes []Outcome, err error) {
	if len(outputs) != len(runs) {
		err = ErrRunCount{Expected: len(outputs), Runs: len(runs)}
		return
	}

	outcomes = make([]Outcome, len(runs))
	for n, run := range runs {
		outcomes[n] = Outcome{Run: n, Passed: run != nil && Check(outputs[n], run)}
	}

	return
}

// Passed counts the passing outcomes.
func Passed(outcomes []Outcome) (count int) {
	for _, outcome := range outcomes {
		if outcome.Passed {
			count++
		}
	}
	return
}
