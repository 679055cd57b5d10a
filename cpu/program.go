package cpu

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Program is an assembled RISC-16 program.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Map of labels to instruction indexes.
}

// LabelsAt returns the labels of an instruction index, sorted.
func (prog *Program) LabelsAt(pc int) (labels []string) {
	for label, index := range prog.Labels {
		if index == pc {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return
}

// LineNo returns the source line of the instruction at pc, or 0.
func (prog *Program) LineNo(pc int) int {
	if pc < 0 || pc >= len(prog.Instructions) {
		return 0
	}
	return prog.Instructions[pc].LineNo
}

// Lines iterates over the listing lines of the program.
func (prog *Program) Lines() iter.Seq2[int, string] {
	return func(yield func(pc int, line string) bool) {
		for pc, inst := range prog.Instructions {
			line := inst.String()
			if labels := prog.LabelsAt(pc); len(labels) > 0 {
				line = strings.Join(labels, ": ") + ": " + line
			}
			if !yield(pc, line) {
				return
			}
		}

		// Labels after the last instruction.
		if labels := prog.LabelsAt(len(prog.Instructions)); len(labels) > 0 {
			yield(len(prog.Instructions), strings.Join(labels, ": ")+":")
		}
	}
}

// Listing renders the program, one instruction per line, each prefixed
// with its labels.
func (prog *Program) Listing() string {
	var lines []string
	for _, line := range prog.Lines() {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// LabelTable returns a copy of the label table.
func (prog *Program) LabelTable() map[string]int {
	if prog.Labels == nil {
		return map[string]int{}
	}
	return maps.Clone(prog.Labels)
}
