package harness

import (
	"strings"

	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/value"
)

// Request is a single grading request from the presentation layer.
type Request struct {
	Exercise        string // Exercise name. Empty for a single unchecked run.
	Source          string // Program source text.
	MaxInstructions int    // Instruction budget of each run. Zero selects the default.
	Architecture    string // Instruction set. Empty selects the default.
	Trace           bool   // Record executed instructions in the output buffer.

	Initial []value.Assignment // Initial registers of a single run.
}

// NewRequest creates a request for source, run with opts.
func NewRequest(source string, opts engine.Options) Request {
	return Request{
		Source:          source,
		MaxInstructions: opts.MaxInstructions,
		Architecture:    opts.Architecture,
		Trace:           opts.Trace,
	}
}

// Validate applies the defaults of unset fields, and checks the request.
func (req *Request) Validate() (err error) {
	if req.MaxInstructions < 0 {
		err = ErrBudgetInvalid(req.MaxInstructions)
		return
	}
	if req.MaxInstructions == 0 {
		req.MaxInstructions = engine.DEFAULT_MAX_INSTRUCTIONS
	}

	if len(req.Architecture) == 0 {
		req.Architecture = engine.DEFAULT_ARCHITECTURE
	}

	if len(strings.TrimSpace(req.Source)) == 0 {
		err = ErrSourceEmpty
		return
	}

	return
}

// Options returns the engine options of a validated request.
func (req *Request) Options() engine.Options {
	return engine.Options{
		MaxInstructions: req.MaxInstructions,
		Architecture:    req.Architecture,
		Trace:           req.Trace,
	}
}
