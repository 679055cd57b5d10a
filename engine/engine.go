// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package engine defines the boundary to a RISC-16 simulation engine: the
// per-run result it produces and the operations the grader calls on it.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/ezrec/risc16/value"
)

// Defaults of Options.
const (
	DEFAULT_MAX_INSTRUCTIONS = 100000
	DEFAULT_ARCHITECTURE     = "IS0"
)

// Options are passed through to the engine unchanged.
type Options struct {
	MaxInstructions int    // Instruction budget of a single run.
	Architecture    string // Instruction set name.
	Trace           bool   // Record every executed instruction in the buffer.
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		MaxInstructions: DEFAULT_MAX_INSTRUCTIONS,
		Architecture:    DEFAULT_ARCHITECTURE,
	}
}

// Result is the final machine state of one run.
type Result struct {
	Registers  []value.Register `json:"registers"`         // Final register bank.
	PC         int              `json:"program_counter"`   // Program counter.
	Labels     map[string]int   `json:"labels"`            // Label table of the program.
	InstrCount int              `json:"instruction_count"` // Instructions executed.
	Buffer     string           `json:"raw_buffer"`        // Warnings, errors and trace output.
}

// Register returns register n, and false if the bank has no such register.
func (res *Result) Register(n int) (reg value.Register, ok bool) {
	if n < 0 || n >= len(res.Registers) {
		return
	}
	return res.Registers[n], true
}

// State renders the end state of a run on one line.
func (res *Result) State() string {
	regs := make([]string, len(res.Registers))
	for n, reg := range res.Registers {
		regs[n] = fmt.Sprintf("%x", reg.Unsigned())
	}
	return fmt.Sprintf("PC: %d, Instr. count: %d, regs: [%s]\n",
		res.PC, res.InstrCount, strings.Join(regs, ", "))
}

// Engine executes RISC-16 programs.
type Engine interface {
	// ExecuteSingle runs source once from the initial register state. A
	// runtime fault returns both the partial result and the error.
	ExecuteSingle(ctx context.Context, opts Options, source string, initial []value.Assignment) (*Result, error)
	// ExecuteBatch runs source once per input vector. results[i] belongs
	// to inputs[i]. Runtime faults are recorded in each result's buffer;
	// an error means no run was attempted.
	ExecuteBatch(ctx context.Context, opts Options, source string, inputs [][]value.Assignment) ([]*Result, error)
	// LoadProgram assembles source and returns its listing.
	LoadProgram(source string) (string, error)
}
