package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/risc16/value"
)

// Op is a RISC-16 instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op,ArgKind,Arch
const (
	OP_NOP   = Op(0)  // nop
	OP_HALT  = Op(1)  // halt
	OP_RESET = Op(2)  // reset
	OP_ADD   = Op(3)  // add
	OP_ADDI  = Op(4)  // addi
	OP_NAND  = Op(5)  // nand
	OP_MOVI  = Op(6)  // movi
	OP_LUI   = Op(7)  // lui
	OP_LW    = Op(8)  // lw
	OP_SW    = Op(9)  // sw
	OP_BEQ   = Op(10) // beq
	OP_JALR  = Op(11) // jalr
)

// ArgKind is the operand layout of an instruction.
type ArgKind int

const (
	ARGS_NONE = ArgKind(0) // no operands
	ARGS_RR   = ArgKind(1) // rA,rB
	ARGS_RRR  = ArgKind(2) // rA,rB,rC
	ARGS_RI   = ArgKind(3) // rA,imm
	ARGS_RRI  = ArgKind(4) // rA,rB,imm
)

// Registers is the number of register operands of the layout.
func (ak ArgKind) Registers() int {
	switch ak {
	case ARGS_RR:
		return 2
	case ARGS_RRR:
		return 3
	case ARGS_RI:
		return 1
	case ARGS_RRI:
		return 2
	}
	return 0
}

// Immediate is true if the layout ends with an immediate.
func (ak ArgKind) Immediate() bool {
	return ak == ARGS_RI || ak == ARGS_RRI
}

// opArgs is the operand layout of each op.
var opArgs = [...]ArgKind{
	OP_NOP:   ARGS_NONE,
	OP_HALT:  ARGS_NONE,
	OP_RESET: ARGS_NONE,
	OP_ADD:   ARGS_RRR,
	OP_ADDI:  ARGS_RRI,
	OP_NAND:  ARGS_RRR,
	OP_MOVI:  ARGS_RI,
	OP_LUI:   ARGS_RI,
	OP_LW:    ARGS_RRI,
	OP_SW:    ARGS_RRI,
	OP_BEQ:   ARGS_RRI,
	OP_JALR:  ARGS_RR,
}

// opMap maps mnemonics to ops.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, len(opArgs))
	for op := range Op(len(opArgs)) {
		ops[op.String()] = op
	}
	return ops
}()

// Args returns the operand layout of the op.
func (op Op) Args() ArgKind {
	if op < 0 || int(op) >= len(opArgs) {
		return ARGS_NONE
	}
	return opArgs[op]
}

// Instruction is one assembled line of code.
type Instruction struct {
	LineNo    int            // Source line number.
	Op        Op             // Operation.
	Reg       [3]int         // Register operands.
	Imm       value.Register // Immediate, or resolved label.
	ImmText   string         // Immediate as written.
	LinkLabel string         // Label resolved into Imm at link time.
}

// String renders the instruction as it is listed.
func (inst Instruction) String() string {
	kind := inst.Op.Args()

	args := make([]string, 0, 3)
	for n := range kind.Registers() {
		args = append(args, fmt.Sprintf("%d", inst.Reg[n]))
	}
	if kind.Immediate() {
		text := inst.ImmText
		if len(text) == 0 {
			text = inst.Imm.String()
		}
		args = append(args, text)
	}

	if len(args) == 0 {
		return inst.Op.String()
	}

	return inst.Op.String() + " " + strings.Join(args, ",")
}
