// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report renders the per-run messages of a graded exercise.
//
// A message that cannot be rendered (bad template syntax, or a placeholder
// with no value for that run) only degrades its own entry: the entry keeps
// its verdict, its message becomes the error text and Error is set. Every
// other entry of the batch renders normally.
package report

import (
	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/verify"
)

// Entry is the report of one run: the final machine state, the verdict and
// the rendered message.
type Entry struct {
	engine.Result
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// parsed parses a template, remembering the error for each use.
type parsed struct {
	tmpl *Template
	err  error
}

func parse(source string) (p parsed) {
	p.tmpl, p.err = ParseTemplate(source)
	return
}

func (p parsed) render(binds *Bindings) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.tmpl.Render(binds)
}

// Create renders one entry per outcome, in outcome order.
func Create(outcomes []verify.Outcome, inputs []exercise.TestCase, outputs []exercise.Expected, runs []*engine.Result, pass, fail string) (entries []Entry, err error) {
	for _, outcome := range outcomes {
		n := outcome.Run
		if n < 0 || n >= len(inputs) || n >= len(outputs) || n >= len(runs) {
			err = verify.ErrRunCount{Expected: len(outputs), Runs: len(runs)}
			return nil, err
		}
	}

	pass_tmpl := parse(pass)
	fail_tmpl := parse(fail)

	entries = make([]Entry, 0, len(outcomes))
	for _, outcome := range outcomes {
		n := outcome.Run

		entry := Entry{Passed: outcome.Passed}
		if runs[n] != nil {
			entry.Result = *runs[n]
		}

		tmpl := fail_tmpl
		if outcome.Passed {
			tmpl = pass_tmpl
		}

		binds := NewBindings(inputs[n], outputs[n], runs[n])
		message, render_err := tmpl.render(binds)
		if render_err != nil {
			entry.Message = render_err.Error()
			entry.Error = render_err.Error()
		} else {
			entry.Message = message
		}

		entries = append(entries, entry)
	}

	return
}

// ForExercise renders the report of an exercise's batch.
func ForExercise(ex *exercise.Exercise, outcomes []verify.Outcome, runs []*engine.Result) ([]Entry, error) {
	return Create(outcomes, ex.Inputs, ex.Outputs, runs, ex.Pass, ex.Fail)
}
