package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		".equ STEP -1",
		"start: loop: beq 1,0,done",
		"      addi 1,1,STEP",
		"      beq 0,0,loop",
		"done: halt",
		"tail:",
	}, "\n")

	prog, err := Assemble(source)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"loop: start: beq 1,0,done",
		"addi 1,1,-1",
		"beq 0,0,loop",
		"done: halt",
		"tail:",
	}, "\n")

	assert.Equal(expected, prog.Listing())
	assert.Equal([]string{"loop", "start"}, prog.LabelsAt(0))
	assert.Nil(prog.LabelsAt(1))
	assert.Equal([]string{"tail"}, prog.LabelsAt(4))
}

func TestProgramLines(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble("a: nop\nb: halt\nc:")
	assert.NoError(err)

	var pcs []int
	for pc := range prog.Lines() {
		pcs = append(pcs, pc)
		if pc == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, pcs)
}

func TestProgramLabelTable(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Equal(map[string]int{}, prog.LabelTable())
	assert.Equal("", prog.Listing())

	prog, err := Assemble("x: halt")
	assert.NoError(err)

	table := prog.LabelTable()
	table["y"] = 1
	assert.Equal(map[string]int{"x": 0}, prog.Labels)
}
