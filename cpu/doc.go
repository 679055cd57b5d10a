// Package cpu implements the processor and assembler of the RISC-16
// teaching machine.
//
// The processor has eight 16-bit registers (r0-r7, with r0 always reading
// as zero), 256 words of data memory and a program counter indexing the
// assembled instruction list. Arithmetic wraps at 16 bits.
//
// The assembler reads one instruction per line, with '//' comments,
// 'label:' prefixes, '.equ' constants and compile-time $(...) expressions.
//
// Two instructions differ from some other RISC-16 engines. 'lui' loads
// its 10-bit immediate into the top bits, shifting it left by 6. A 'beq'
// with a numeric target branches relative to the next instruction, while
// a label target is absolute. Programs written for an engine that shifts
// 'lui' by 5, or treats numeric 'beq' targets as absolute addresses, will
// compute different results here.
package cpu
