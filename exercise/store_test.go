package exercise_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/risc16/exercise"
	"github.com/ezrec/risc16/exercises"
)

func testStore() *exercise.FSStore {
	return &exercise.FSStore{FS: fstest.MapFS{
		"add":         {Data: []byte("in: r1=1;r2=2;\nout: r3=3;\n# pass: ok\n# fail: bad\n")},
		"broken":      {Data: []byte("in: r1=1;\n")},
		".hidden":     {Data: []byte("in: r1=1;\n")},
		"sub/nested":  {Data: []byte("in: r1=1;\nout: r1=1;\n")},
		"literal.txt": {Data: []byte("in: r1=0xq;\nout: r1=1;\n")},
	}}
}

func TestFSStoreList(t *testing.T) {
	assert := assert.New(t)

	names, err := testStore().List()
	assert.NoError(err)
	assert.ElementsMatch([]string{"add", "broken", "literal.txt"}, names)
}

func TestLoaderLoad(t *testing.T) {
	require := require.New(t)

	ld := exercise.NewLoader(testStore())

	ex, err := ld.Load("add")
	require.NoError(err)
	require.Equal("add", ex.Name)
	require.Equal(1, ex.Len())
	require.Equal("ok", ex.Pass)
	require.Equal("bad", ex.Fail)
}

func TestLoaderErrors(t *testing.T) {
	assert := assert.New(t)

	ld := exercise.NewLoader(testStore())

	for _, name := range []string{"missing", "", ".", "..", "sub", "sub/nested", "../add"} {
		ex, err := ld.Load(name)
		assert.Nil(ex, name)
		assert.ErrorIs(err, exercise.ErrExerciseNotFound, name)
	}

	ex, err := ld.Load("broken")
	assert.Nil(ex)
	assert.ErrorIs(err, exercise.ErrMalformedExercise)

	ex, err = ld.Load("literal.txt")
	assert.Nil(ex)
	assert.ErrorIs(err, exercise.ErrMalformedExercise)
}

func TestBuiltinExercises(t *testing.T) {
	assert := assert.New(t)

	ld := exercise.NewLoader(exercises.Store())

	names, err := ld.List()
	assert.NoError(err)
	assert.ElementsMatch([]string{"add.txt", "double.txt", "negate.txt", "swap.txt"}, names)

	for _, name := range names {
		ex, err := ld.Load(name)
		if !assert.NoError(err, name) {
			continue
		}
		assert.NotZero(ex.Len(), name)
		assert.Equal(len(ex.Inputs), len(ex.Outputs), name)
		assert.NotEmpty(ex.Pass, name)
		assert.NotEmpty(ex.Fail, name)
	}
}
