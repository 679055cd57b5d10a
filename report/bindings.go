package report

import (
	"fmt"
	"iter"

	"github.com/ezrec/risc16/engine"
	"github.com/ezrec/risc16/internal"
	"github.com/ezrec/risc16/value"
)

// Binding prefixes.
const (
	PREFIX_INPUT    = "ri"   // Initial value of an input register.
	PREFIX_OUTPUT   = "ro"   // Expected value of an output register.
	PREFIX_REGISTER = "risc" // Final value of a machine register.
)

// Binding names a displayed value.
type Binding struct {
	Name  string
	Value uint16
}

// Bindings is an ordered set of named values. Rebinding a name replaces
// its value and keeps its position.
type Bindings struct {
	list  []Binding
	index map[string]int
}

// Set binds a name.
func (binds *Bindings) Set(name string, val uint16) {
	if binds.index == nil {
		binds.index = make(map[string]int)
	}
	n, ok := binds.index[name]
	if ok {
		binds.list[n].Value = val
		return
	}
	binds.index[name] = len(binds.list)
	binds.list = append(binds.list, Binding{Name: name, Value: val})
}

// Get returns the value bound to a name.
func (binds *Bindings) Get(name string) (val uint16, ok bool) {
	n, ok := binds.index[name]
	if ok {
		val = binds.list[n].Value
	}
	return
}

// Len is the number of bound names.
func (binds *Bindings) Len() int {
	return len(binds.list)
}

// All iterates over the bindings in order.
func (binds *Bindings) All() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, bind := range binds.list {
			if !yield(bind.Name, bind.Value) {
				return
			}
		}
	}
}

// assignments names a list of register assignments.
func assignments(prefix string, list []value.Assignment) iter.Seq2[string, value.Register] {
	return func(yield func(string, value.Register) bool) {
		for _, as := range list {
			if !yield(fmt.Sprintf("%s%d", prefix, as.Register), as.Value) {
				return
			}
		}
	}
}

// NewBindings binds the inputs, expected outputs and final registers of a
// run to their unsigned display values.
func NewBindings(input []value.Assignment, output []value.Assignment, run *engine.Result) (binds *Bindings) {
	binds = &Bindings{}

	var bank []value.Register
	if run != nil {
		bank = run.Registers
	}

	all := internal.Concat2(
		assignments(PREFIX_INPUT, input),
		assignments(PREFIX_OUTPUT, output),
		internal.Named(PREFIX_REGISTER, bank),
	)
	for name, reg := range all {
		binds.Set(name, reg.Unsigned())
	}

	return
}
