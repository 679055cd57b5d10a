// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package exercise

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/ezrec/risc16/value"
)

// Line prefixes of the exercise format.
const (
	PREFIX_IN   = "in:"
	PREFIX_OUT  = "out:"
	PREFIX_FAIL = "# fail:"
	PREFIX_PASS = "# pass:"
)

// MAX_LINE_SIZE is the longest exercise line Parse accepts.
const MAX_LINE_SIZE = 16 * 1024 * 1024

// TestCase is the initial register state of one run.
type TestCase []value.Assignment

// Expected is the subset of registers checked after one run.
type Expected []value.Assignment

// Exercise is a named set of paired test cases and expectations, with the
// messages reported for passing and failing runs.
type Exercise struct {
	Name    string
	Inputs  []TestCase // Inputs[i] is run i's initial state.
	Outputs []Expected // Outputs[i] is checked against run i.
	Pass    string     // Message template for a passing run.
	Fail    string     // Message template for a failing run.
}

// Len returns the number of runs of the exercise.
func (ex *Exercise) Len() int {
	return len(ex.Inputs)
}

var assignmentRe = regexp.MustCompile(`r(\d)=(-?\w+);`)

// parseAssignments collects every register assignment of a line.
func parseAssignments(line string) (list []value.Assignment, err error) {
	for _, match := range assignmentRe.FindAllStringSubmatch(line, -1) {
		var reg value.Register
		reg, err = value.Decode(match[2])
		if err != nil {
			return
		}
		list = append(list, value.Assignment{
			Register: int(match[1][0] - '0'),
			Value:    reg,
		})
	}

	return
}

// Parse reads an exercise definition.
func Parse(name string, input io.Reader) (ex *Exercise, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_SIZE)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{Name: name, LineNo: lineno, Line: line, Err: err}
		}
	}()

	parsed := &Exercise{Name: name}

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		switch {
		case strings.HasPrefix(line, PREFIX_IN):
			var list []value.Assignment
			list, err = parseAssignments(line[len(PREFIX_IN):])
			if err != nil {
				return
			}
			if len(list) > 0 {
				parsed.Inputs = append(parsed.Inputs, TestCase(list))
			}
		case strings.HasPrefix(line, PREFIX_OUT):
			var list []value.Assignment
			list, err = parseAssignments(line[len(PREFIX_OUT):])
			if err != nil {
				return
			}
			if len(list) > 0 {
				parsed.Outputs = append(parsed.Outputs, Expected(list))
			}
		case strings.HasPrefix(line, PREFIX_FAIL):
			parsed.Fail = strings.TrimSpace(line[len(PREFIX_FAIL):])
		case strings.HasPrefix(line, PREFIX_PASS):
			parsed.Pass = strings.TrimSpace(line[len(PREFIX_PASS):])
		default:
			// Comments, blank lines and sample source.
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	line, lineno = "", 0
	if len(parsed.Inputs) != len(parsed.Outputs) {
		err = ErrCountMismatch{Inputs: len(parsed.Inputs), Outputs: len(parsed.Outputs)}
		return
	}

	ex = parsed
	return
}
