// Package exercise loads RISC-16 exercise definitions.
//
// An exercise definition is a line oriented text file:
//
//	in: r1=3;r2=4;
//	out: r3=7;
//	# pass: {ri1} + {ri2} = {risc3}
//	# fail: {ri1} + {ri2} gave {risc3}, expected {ro3}
//
// Every 'in:' line with at least one assignment is the initial register
// state of one run, and the matching 'out:' line lists the registers
// checked after that run. The '# pass:' and '# fail:' lines are the
// message templates of the report. All other lines are ignored.
//
// Templates use {name} or {name:spec} placeholders, with '{{' and '}}' for
// literal braces. The names are ri<n> and ro<n> for the input and expected
// registers of a run, and risc<n> for its result. A spec is
// [[fill]align][#][0][width][,|_][type], where align is '<', '>' or '^'
// and type is one of d, x, X, b or o. Sign options, precision, '='
// alignment and zero padding combined with grouping without an align are
// not supported, and make the template invalid.
package exercise
