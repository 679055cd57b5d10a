// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs RISC-16 programs on the in-process cpu, one fresh
// processor per input vector.
package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/risc16/cpu"
	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/value"
)

var _emulator_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", cpu.REGISTER_COUNT),
	"IMM7_MIN":       fmt.Sprintf("%v", cpu.IMM7_MIN),
	"IMM7_MAX":       fmt.Sprintf("%v", cpu.IMM7_MAX),
	"IMM10_MAX":      fmt.Sprintf("%v", cpu.IMM10_MAX),
}

// Emulator executes programs for the grader.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	Parallelism int  // Concurrent runs of a batch. GOMAXPROCS if not positive.
}

var _ engine.Engine = (*Emulator)(nil)

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}

	return
}

// Defines returns an iterator over all of the assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return maps.All(_emulator_defines)
}

func (emu *Emulator) parallelism() int {
	if emu.Parallelism > 0 {
		return emu.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}

// Assemble a program, with the emulator predefines.
func (emu *Emulator) Assemble(source string) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for equ, val := range emu.Defines() {
		asm.Predefine(equ, val)
	}

	return asm.Parse(strings.NewReader(source))
}

// newCpu creates a processor configured by the options.
func (emu *Emulator) newCpu(opts engine.Options) (proc *cpu.Cpu, err error) {
	name := opts.Architecture
	if len(name) == 0 {
		name = engine.DEFAULT_ARCHITECTURE
	}
	arch, err := cpu.ParseArch(name)
	if err != nil {
		return
	}

	max_instr := opts.MaxInstructions
	if max_instr <= 0 {
		max_instr = engine.DEFAULT_MAX_INSTRUCTIONS
	}

	proc = cpu.NewCpu(max_instr)
	proc.Arch = arch
	proc.Trace = opts.Trace
	proc.Verbose = emu.Verbose

	return
}

// run executes prog from the initial register state. The result is valid
// even when err is set.
func (emu *Emulator) run(proc *cpu.Cpu, prog *cpu.Program, initial []value.Assignment) (result *engine.Result, err error) {
	proc.Reset()
	proc.Load(initial)

	err = proc.Run(prog)
	if err != nil {
		err = &ErrRuntime{LineNo: prog.LineNo(proc.Pc), Err: err}
		if emu.Verbose {
			log.Printf("emulator: %v", err)
		}
	}

	result = &engine.Result{
		Registers:  proc.Registers(),
		PC:         proc.Pc,
		Labels:     prog.LabelTable(),
		InstrCount: proc.InstrCount,
		Buffer:     proc.Buffer.String(),
	}

	return
}

// ExecuteSingle runs source once.
func (emu *Emulator) ExecuteSingle(ctx context.Context, opts engine.Options, source string, initial []value.Assignment) (result *engine.Result, err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	prog, err := emu.Assemble(source)
	if err != nil {
		return
	}

	proc, err := emu.newCpu(opts)
	if err != nil {
		return
	}

	return emu.run(proc, prog, initial)
}

// ExecuteBatch assembles source once, and runs it for every input vector.
func (emu *Emulator) ExecuteBatch(ctx context.Context, opts engine.Options, source string, inputs [][]value.Assignment) (results []*engine.Result, err error) {
	prog, err := emu.Assemble(source)
	if err != nil {
		return
	}

	// Check the options before any run is attempted.
	_, err = emu.newCpu(opts)
	if err != nil {
		return
	}

	slots := make([]*engine.Result, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(emu.parallelism())

	for n, initial := range inputs {
		eg.Go(func() error {
			err := egCtx.Err()
			if err != nil {
				return err
			}

			proc, err := emu.newCpu(opts)
			if err != nil {
				return err
			}

			// Runtime faults are recorded in the buffer.
			slots[n], _ = emu.run(proc, prog, initial)
			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		return
	}

	results = slots

	return
}

// LoadProgram assembles source, and returns its listing.
func (emu *Emulator) LoadProgram(source string) (listing string, err error) {
	prog, err := emu.Assemble(source)
	if err != nil {
		return
	}

	listing = prog.Listing()

	return
}
