// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package value converts between the textual and numeric forms of a
// 16-bit RISC-16 register and its canonical signed representation.
//
// Literals are read as unsigned 16-bit quantities and folded into the
// signed range, so "0xffff", "65535" and "-1" all decode to the same
// register value. The display form is always the unsigned two's-complement
// encoding.
package value

import (
	"strconv"
	"strings"
)

const (
	REGISTER_BITS = 16
	REGISTER_SPAN = 1 << REGISTER_BITS       // 65536
	REGISTER_SIGN = 1 << (REGISTER_BITS - 1) // 32768
)

// Register is the canonical signed 16-bit register value.
type Register int16

// FromInt folds any integer into the signed 16-bit range, keeping the low
// 16 bits of its two's-complement form.
func FromInt(n int64) Register {
	return Register(int16(uint16(n)))
}

// Decode parses a numeric literal. Decimal, 0x, 0b and 0o prefixes, an
// optional sign and '_' digit separators are accepted.
func Decode(text string) (reg Register, err error) {
	word := strings.TrimSpace(text)

	digits := strings.TrimLeft(word, "+-")
	base := 0
	if len(digits) > 1 && digits[0] == '0' && digits[1] >= '0' && digits[1] <= '9' {
		// No implicit octal: "010" is ten.
		base = 10
	}

	n, err := strconv.ParseInt(word, base, 64)
	if err != nil {
		un, uerr := strconv.ParseUint(word, base, 64)
		if uerr != nil {
			err = ErrParseLiteral(text)
			return
		}
		n = int64(un)
		err = nil
	}

	reg = FromInt(n)
	return
}

// MustDecode is Decode for literals known to be valid.
func MustDecode(text string) Register {
	reg, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return reg
}

// Unsigned returns the 16-bit two's-complement encoding.
func (reg Register) Unsigned() uint16 {
	return uint16(reg)
}

// String returns the signed decimal form.
func (reg Register) String() string {
	return strconv.Itoa(int(reg))
}

// Hex returns the unsigned display form as 0xNNNN.
func (reg Register) Hex() string {
	return "0x" + strconv.FormatUint(uint64(reg.Unsigned())|0x10000, 16)[1:]
}
