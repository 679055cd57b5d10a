// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package harness grades RISC-16 programs against exercises.
//
// A request with an exercise name runs the program once per test case of
// the exercise, verifies every run and renders a report entry for each. A
// request without one runs the program once and returns its output. In both
// cases the assembled listing is returned for display.
//
// Grade never fails: loading, assembly and execution errors are rendered
// into the Error field of the response.
package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/report"
	"github.com/ezrec/risc16/value"
	"github.com/ezrec/risc16/verify"
)

// END_STATE_ERROR is the end state of a failed request.
const END_STATE_ERROR = "Error!"

// Response is the outcome of a grading request.
type Response struct {
	Results  []report.Entry `json:"tests_results"` // One entry per test case.
	Output   string         `json:"output"`        // Buffer of a single run.
	EndState string         `json:"end_state"`     // Final state of a single run.
	Listing  string         `json:"code_content"`  // Assembled listing, or why it failed.
	Error    string         `json:"error,omitempty"`
}

func (resp *Response) fail(err error) {
	resp.Error = err.Error()
	resp.EndState = END_STATE_ERROR
}

// Harness connects the exercise collection to a simulation engine.
type Harness struct {
	Loader *exercise.Loader
	Engine engine.Engine
	Logger *zap.Logger
}

// New creates a harness. A nil logger discards all logging.
func New(loader *exercise.Loader, eng engine.Engine, logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Harness{
		Loader: loader,
		Engine: eng,
		Logger: logger,
	}
}

func (h *Harness) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// Exercises lists the names of the available exercises.
func (h *Harness) Exercises() ([]string, error) {
	return h.Loader.List()
}

// Grade handles a request.
func (h *Harness) Grade(ctx context.Context, req Request) (resp *Response) {
	resp = &Response{Results: []report.Entry{}}

	log := h.logger().With(
		zap.String("request", uuid.NewString()),
		zap.String("exercise", req.Exercise),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("grade: panic", zap.Any("panic", r))
			resp.fail(fmt.Errorf("%v", r))
		}
	}()

	log.Debug("grade: start", zap.Int("source_bytes", len(req.Source)))

	err := req.Validate()
	switch {
	case err != nil:
	case len(req.Exercise) > 0:
		err = h.batch(ctx, log, &req, resp)
	default:
		err = h.single(ctx, log, &req, resp)
	}

	if err != nil {
		log.Info("grade: failed", zap.Error(err))
		resp.fail(err)
	}

	if len(strings.TrimSpace(req.Source)) > 0 {
		resp.Listing = h.listing(req.Source)
	}

	return
}

// batch runs and verifies every test case of the request's exercise.
func (h *Harness) batch(ctx context.Context, log *zap.Logger, req *Request, resp *Response) (err error) {
	ex, err := h.Loader.Load(req.Exercise)
	if err != nil {
		return
	}

	inputs := make([][]value.Assignment, len(ex.Inputs))
	for n, test := range ex.Inputs {
		inputs[n] = test
	}

	runs, err := h.Engine.ExecuteBatch(ctx, req.Options(), req.Source, inputs)
	if err != nil {
		return
	}

	outcomes, err := verify.Verify(ex.Outputs, runs)
	if err != nil {
		return
	}

	entries, err := report.ForExercise(ex, outcomes, runs)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if len(entry.Error) > 0 {
			log.Warn("grade: report entry degraded", zap.String("error", entry.Error))
		}
	}

	resp.Results = entries

	log.Info("grade: done",
		zap.Int("runs", len(runs)),
		zap.Int("passed", verify.Passed(outcomes)))

	return
}

// single runs the request's program once.
func (h *Harness) single(ctx context.Context, log *zap.Logger, req *Request, resp *Response) (err error) {
	result, err := h.Engine.ExecuteSingle(ctx, req.Options(), req.Source, req.Initial)
	if result == nil {
		return
	}

	// A runtime fault is already recorded in the buffer.
	if err != nil {
		log.Debug("grade: run faulted", zap.Error(err))
		err = nil
	}

	resp.Output = result.Buffer
	resp.EndState = result.State()

	log.Info("grade: done",
		zap.Int("pc", result.PC),
		zap.Int("instructions", result.InstrCount))

	return
}

// listing returns the listing of source, or why it could not be made.
func (h *Harness) listing(source string) string {
	listing, err := h.Engine.LoadProgram(source)
	if err != nil {
		return err.Error()
	}
	return listing
}
