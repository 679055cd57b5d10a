package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(len(opArgs), len(opMap))
	for mnemonic, op := range opMap {
		assert.Equal(mnemonic, op.String())
	}

	assert.Equal(OP_NOP, opMap["nop"])
	assert.Equal(OP_JALR, opMap["jalr"])
	assert.Equal("lui", OP_LUI.String())
	assert.Equal("Op(12)", Op(12).String())
	assert.Equal(ARGS_NONE, Op(-1).Args())
}

func TestArgKind(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		kind      ArgKind
		name      string
		registers int
		immediate bool
	}){
		{ARGS_NONE, "no operands", 0, false},
		{ARGS_RR, "rA,rB", 2, false},
		{ARGS_RRR, "rA,rB,rC", 3, false},
		{ARGS_RI, "rA,imm", 1, true},
		{ARGS_RRI, "rA,rB,imm", 2, true},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.kind.String())
		assert.Equal(entry.registers, entry.kind.Registers(), entry.name)
		assert.Equal(entry.immediate, entry.kind.Immediate(), entry.name)
	}

	assert.Equal(ARGS_RRI, OP_BEQ.Args())
	assert.Equal(ARGS_RR, OP_JALR.Args())
}
