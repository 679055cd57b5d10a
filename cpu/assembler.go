// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/risc16/value"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":   "0",
	"RAM_SIZE": fmt.Sprintf("%d", RAM_SIZE),
}

// Assembler is a single pass assembler for the RISC-16 instruction set.
type Assembler struct {
	Verbose bool          // If set, verbosely logs the assembler actions.
	Program []Instruction // List of assembled instructions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to instruction indexes.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var labelRe = regexp.MustCompile(`^([A-Za-z_.][A-Za-z0-9_.]*)\s*:`)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (reg value.Register, err error) {
	reg, err = value.Decode(word)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// registerOf returns the register index of a word, "3" or "r3".
func (asm *Assembler) registerOf(word string) (reg int, err error) {
	digits := strings.TrimPrefix(word, "r")
	reg, err = strconv.Atoi(digits)
	if err != nil || reg < 0 || reg >= REGISTER_COUNT || len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = ErrParseRegister(word)
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (reg value.Register, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var equ value.Register
		equ, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(equ))
	}
	for label, index := range asm.Label {
		if _, ok := pred[label]; !ok {
			pred[label] = starlark.MakeInt(index)
		}
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	reg = value.FromInt(st_int64)
	return
}

// expand performs $(...) evaluations and equate substitution.
func (asm *Assembler) expand(line string) (expanded string, err error) {
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	expanded = re.ReplaceAllStringFunc(line, func(str string) string {
		reg, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", reg)
	})

	return
}

// parseLine parses a single line of assembly text.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Labels
	for {
		match := labelRe.FindStringSubmatch(line)
		if match == nil {
			break
		}
		label := match[1]
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.Program)
		line = strings.TrimSpace(line[len(match[0]):])
	}

	line, err = asm.expand(line)
	if err != nil {
		return
	}

	line = strings.TrimSpace(line)

	// .equ CONST VALUE
	if strings.HasPrefix(line, ".equ") {
		words := strings.Fields(line)
		if words[0] != ".equ" || len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	if len(line) == 0 {
		return
	}

	if strings.HasSuffix(line, ":") {
		err = ErrLabelInvalid
		return
	}

	return asm.parseInstruction(line, lineno)
}

// parseInstruction assembles "mnemonic arg,arg,arg".
func (asm *Assembler) parseInstruction(line string, lineno int) (err error) {
	mnemonic, rest := line, ""
	if space := strings.IndexFunc(line, unicode.IsSpace); space >= 0 {
		mnemonic, rest = line[:space], line[space:]
	}

	op, ok := opMap[strings.ToLower(mnemonic)]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var args []string
	rest = strings.TrimSpace(rest)
	if len(rest) > 0 {
		for _, arg := range strings.Split(rest, ",") {
			arg = strings.TrimSpace(arg)
			if equate, ok := asm.Equate[arg]; ok {
				arg = equate
			}
			args = append(args, arg)
		}
	}

	kind := op.Args()
	count := kind.Registers()
	if kind.Immediate() {
		count++
	}
	if len(args) < count {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > count {
		err = ErrOpcodeExtraArgs
		return
	}

	inst := Instruction{LineNo: lineno, Op: op}
	for n := range kind.Registers() {
		inst.Reg[n], err = asm.registerOf(args[n])
		if err != nil {
			return
		}
	}

	if kind.Immediate() {
		word := args[len(args)-1]
		if len(word) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		inst.ImmText = word
		inst.Imm, err = asm.valueOf(word)
		if err != nil {
			// Only beq and movi take labels.
			if (op != OP_BEQ && op != OP_MOVI) || !labelRe.MatchString(word+":") {
				return
			}
			err = nil
			inst.LinkLabel = word
		}
	}

	asm.Program = append(asm.Program, inst)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Program = asm.Program[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment, _, _ := strings.Cut(text, "//")
		line = strings.TrimSpace(text_comment)
		if len(line) == 0 {
			continue
		}

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range asm.Program {
		inst := &asm.Program[n]

		if len(inst.LinkLabel) == 0 {
			continue
		}
		index, ok := asm.Label[inst.LinkLabel]
		if !ok {
			lineno, line = inst.LineNo, inst.String()
			err = ErrLabelMissing(inst.LinkLabel)
			return
		}
		inst.Imm = value.FromInt(int64(index))
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Program),
		Labels:       maps.Clone(asm.Label),
	}

	return
}

// Assemble is a convenience wrapper around Assembler.Parse for source text.
func Assemble(source string) (*Program, error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}
