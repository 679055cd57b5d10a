package cpu

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/risc16/value"
)

const (
	REGISTER_COUNT = 8   // Registers r0-r7; r0 always reads as zero.
	RAM_SIZE       = 256 // Words of data memory.

	IMM7_MIN  = -64  // Smallest signed 7-bit immediate.
	IMM7_MAX  = 63   // Largest signed 7-bit immediate.
	IMM10_MAX = 1023 // Largest unsigned 10-bit immediate.
	LUI_SHIFT = 6    // lui loads the upper bits of a register.

	DEFAULT_MAX_INSTR = 10000 // Instruction budget of a new Cpu.
)

// Arch is an instruction set architecture.
type Arch int

const (
	ARCH_IS0 = Arch(0) // IS0
	ARCH_IS1 = Arch(1) // IS1
	ARCH_IS2 = Arch(2) // IS2
)

// ParseArch returns the architecture of a name. Only IS0 can be executed.
func ParseArch(name string) (arch Arch, err error) {
	for arch = ARCH_IS0; arch <= ARCH_IS2; arch++ {
		if strings.EqualFold(name, arch.String()) {
			if arch != ARCH_IS0 {
				err = fmt.Errorf("%v: %w", arch, ErrArchUnsupported)
			}
			return
		}
	}

	arch = ARCH_IS0
	err = fmt.Errorf("%v: %w", name, ErrArchInvalid)
	return
}

// Cpu is the simulation context of a RISC-16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Trace   bool // Set to record each executed instruction in Buffer.

	Arch       Arch                           // Instruction set.
	Pc         int                            // Program counter.
	Register   [REGISTER_COUNT]value.Register // Register bank.
	Ram        [RAM_SIZE]value.Register       // Data memory.
	InstrCount int                            // Instructions retired since reset.
	MaxInstr   int                            // Instruction budget.

	Buffer strings.Builder // Warnings, errors and trace output.
}

// NewCpu creates a new CPU with an instruction budget.
func NewCpu(max_instr int) (cpu *Cpu) {
	cpu = &Cpu{
		MaxInstr: max_instr,
	}

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros the program counter and statistics.
// - Empties the buffer.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Ram[:])
	cpu.Pc = 0
	cpu.InstrCount = 0
	cpu.Buffer.Reset()
}

// Load sets initial register values. Register 0 and registers outside the
// bank are ignored.
func (cpu *Cpu) Load(assignments []value.Assignment) {
	for _, as := range assignments {
		if as.Register > 0 && as.Register < REGISTER_COUNT {
			cpu.Register[as.Register] = as.Value
		}
	}
}

// Registers returns a copy of the register bank.
func (cpu *Cpu) Registers() []value.Register {
	regs := make([]value.Register, REGISTER_COUNT)
	copy(regs, cpu.Register[:])
	return regs
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	regs := make([]string, REGISTER_COUNT)
	for n, reg := range cpu.Register {
		regs[n] = fmt.Sprintf("%x", reg.Unsigned())
	}
	return fmt.Sprintf("PC: %d, Instr. count: %d, regs: [%s]\n", cpu.Pc, cpu.InstrCount, strings.Join(regs, ", "))
}

// warnf appends a warning to the buffer.
func (cpu *Cpu) warnf(format string, args ...any) {
	fmt.Fprintf(&cpu.Buffer, format+"\n", args...)
}

// address computes a data memory address.
func (cpu *Cpu) address(inst *Instruction) (addr int, err error) {
	if inst.Imm < IMM7_MIN || inst.Imm > IMM7_MAX {
		cpu.warnf("/!\\ Immediate Too BIG : %d", inst.Imm)
	}
	addr = int(cpu.Register[inst.Reg[1]]) + int(inst.Imm)
	if addr < 0 || addr >= RAM_SIZE {
		err = ErrMemoryBounds
	}
	return
}

// execute runs a single instruction.
func (cpu *Cpu) execute(inst *Instruction) (halt bool, err error) {
	reg := &cpu.Register
	a, b, c := inst.Reg[0], inst.Reg[1], inst.Reg[2]

	switch inst.Op {
	case OP_NOP:
	case OP_HALT:
		halt = true
	case OP_RESET:
		// jalr 0,0
		cpu.Pc = int(reg[0]) - 1
	case OP_ADD:
		reg[a] = reg[b] + reg[c]
	case OP_ADDI:
		if inst.Imm < IMM7_MIN || inst.Imm > IMM7_MAX {
			cpu.warnf("/!\\ Immediate Too BIG : %d", inst.Imm)
		}
		reg[a] = reg[b] + inst.Imm
	case OP_NAND:
		reg[a] = ^(reg[b] & reg[c])
	case OP_MOVI:
		reg[a] = inst.Imm
	case OP_LUI:
		if inst.Imm < 0 || inst.Imm > IMM10_MAX {
			cpu.warnf("/!\\ Immediate Too BIG : %d", inst.Imm)
		}
		reg[a] = value.Register(uint16(inst.Imm) << LUI_SHIFT)
	case OP_LW:
		var addr int
		addr, err = cpu.address(inst)
		if err != nil {
			return
		}
		reg[a] = cpu.Ram[addr]
	case OP_SW:
		var addr int
		addr, err = cpu.address(inst)
		if err != nil {
			return
		}
		cpu.Ram[addr] = reg[a]
	case OP_BEQ:
		if reg[a] != reg[b] {
			break
		}
		var target int
		if len(inst.LinkLabel) > 0 {
			target = int(inst.Imm) - 1
		} else {
			target = cpu.Pc + int(inst.Imm)
		}
		jump := target - cpu.Pc
		if jump < IMM7_MIN || jump > IMM7_MAX {
			cpu.warnf("WARNING, Jump too long: \"%v\" of size %d", inst.ImmText, jump)
		}
		cpu.Pc = target
	case OP_JALR:
		target := reg[b]
		reg[a] = value.FromInt(int64(cpu.Pc + 1))
		cpu.Pc = int(target) - 1
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// Tick executes the instruction at the program counter. done is set when
// the program halts.
func (cpu *Cpu) Tick(prog *Program) (done bool, err error) {
	if cpu.Pc < 0 || cpu.Pc >= len(prog.Instructions) {
		err = ErrMissingHalt
		return
	}

	pc := cpu.Pc
	inst := &prog.Instructions[pc]

	defer func() {
		if err != nil {
			err = &ErrExecute{Pc: pc, Instruction: *inst, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %d: %v", pc, inst)
	}
	if cpu.Trace {
		fmt.Fprintf(&cpu.Buffer, "%v\n", inst)
	}

	done, err = cpu.execute(inst)
	cpu.Register[0] = 0
	if done || err != nil {
		return
	}

	if cpu.InstrCount >= cpu.MaxInstr {
		err = ErrMaxInstructions
		return
	}

	cpu.InstrCount++
	cpu.Pc++

	return
}

// Run executes from the current program counter until the program halts
// or faults. A fault is also written to the buffer.
func (cpu *Cpu) Run(prog *Program) (err error) {
	for done := false; !done; {
		done, err = cpu.Tick(prog)
		if err != nil {
			fmt.Fprintf(&cpu.Buffer, "Error! %v\n", err)
			return
		}
	}

	return
}
