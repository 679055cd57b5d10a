package exercise

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/risc16/value"
)

func parseLines(t *testing.T, lines ...string) (*Exercise, error) {
	t.Helper()
	return Parse("test", strings.NewReader(strings.Join(lines, "\n")))
}

func TestParse(t *testing.T) {
	require := require.New(t)

	ex, err := parseLines(t,
		"in: r0=1;",
		"out: r0=2;",
		"# pass: ok {ri0} {risc0}",
		"# fail: bad {ri0} {risc0} != {ro0}",
	)
	require.NoError(err)

	expected := &Exercise{
		Name:    "test",
		Inputs:  []TestCase{{{Register: 0, Value: 1}}},
		Outputs: []Expected{{{Register: 0, Value: 2}}},
		Pass:    "ok {ri0} {risc0}",
		Fail:    "bad {ri0} {risc0} != {ro0}",
	}
	if diff := cmp.Diff(expected, ex); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMultiple(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"A comment, then some sample code",
		"    add 3,1,2",
		"",
		"in: r1=1;r2=0xffff;",
		"out: r3=0;",
		"in: r1=-2; r2=3;",
		"out: r3=1;r1=-2;",
		"in: r7=0x8000;",
		"out:r3=5;",
	)
	assert.NoError(err)
	assert.Equal(3, ex.Len())
	assert.Equal(3, len(ex.Outputs))

	assert.Equal(TestCase{{Register: 1, Value: 1}, {Register: 2, Value: -1}}, ex.Inputs[0])
	assert.Equal(TestCase{{Register: 1, Value: -2}, {Register: 2, Value: 3}}, ex.Inputs[1])
	assert.Equal(TestCase{{Register: 7, Value: -32768}}, ex.Inputs[2])
	assert.Equal(Expected{{Register: 3, Value: 1}, {Register: 1, Value: -2}}, ex.Outputs[1])
	assert.Equal(Expected{{Register: 3, Value: 5}}, ex.Outputs[2])
	assert.Empty(ex.Pass)
	assert.Empty(ex.Fail)
}

func TestParseEmptyVectors(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"in: r1=1;",
		"in:",
		"in: nothing here",
		"out: r1=1;",
		"out: r1=;",
	)
	assert.NoError(err)
	assert.Equal(1, len(ex.Inputs))
	assert.Equal(1, len(ex.Outputs))
}

func TestParseTemplatesLastWins(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"# pass: first",
		"# fail: first",
		"# pass:   second  ",
		"# fail:second",
	)
	assert.NoError(err)
	assert.Equal("second", ex.Pass)
	assert.Equal("second", ex.Fail)
	assert.Equal(0, ex.Len())
}

func TestParseCountMismatch(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"in: r1=1;",
		"in: r1=2;",
		"out: r2=1;",
	)
	assert.Nil(ex)
	assert.ErrorIs(err, ErrMalformedExercise)
	assert.ErrorAs(err, new(ErrCountMismatch))
	assert.Equal(ErrCountMismatch{Inputs: 2, Outputs: 1}, errors.Unwrap(err))
}

func TestParseInvalidLiteral(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"in: r1=1;",
		"out: r2=0xzz;",
	)
	assert.Nil(ex)
	assert.ErrorIs(err, ErrMalformedExercise)
	assert.ErrorIs(err, value.ErrInvalidLiteral)

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(2, syntax.LineNo)
	assert.Equal("out: r2=0xzz;", syntax.Line)
	assert.Equal("test", syntax.Name)
}

func TestParseIgnoresOtherLines(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		" in: r1=1;",
		"#pass: nope",
		"input: r1=1;",
		"outcome",
	)
	assert.NoError(err)
	assert.Equal(0, ex.Len())
	assert.Empty(ex.Pass)
}

func TestParseLongLine(t *testing.T) {
	assert := assert.New(t)

	ex, err := parseLines(t,
		"// "+strings.Repeat("x", 70000),
		"in: r1=1;",
		"out: r1=1;",
		"# pass: "+strings.Repeat("y", 70000),
	)
	assert.NoError(err)
	assert.Equal(1, ex.Len())
	assert.Len(ex.Pass, 70000)
}
