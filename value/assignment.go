package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Assignment sets one register to a value.
type Assignment struct {
	Register int      // Register index.
	Value    Register // Register value.
}

func (as Assignment) String() string {
	return fmt.Sprintf("r%d=%d;", as.Register, as.Value)
}

// ParseAssignment parses a single "rN=value" token, with or without the
// trailing ';'.
func ParseAssignment(text string) (as Assignment, err error) {
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")

	name, literal, ok := strings.Cut(text, "=")
	if !ok || len(name) < 2 || name[0] != 'r' {
		err = ErrParseAssignment(text)
		return
	}

	index, err := strconv.Atoi(name[1:])
	if err != nil || index < 0 || strconv.Itoa(index) != name[1:] {
		err = ErrParseAssignment(text)
		return
	}

	reg, err := Decode(literal)
	if err != nil {
		return
	}

	as = Assignment{Register: index, Value: reg}
	return
}
