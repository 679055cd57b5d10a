package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	var vals []int
	for key, val := range Concat2(Named("a", []int{1, 2}), Named("b", []int{3})) {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]string{"a0", "a1", "b0"}, keys)
	assert.Equal([]int{1, 2, 3}, vals)


	for range Concat2[string, int]() {
		t.Fatal("empty concatenation yielded")
	}
}

func TestConcat2Stop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Concat2(Named("x", []int{1, 2, 3}), Named("y", []int{4})) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}
