package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_OrdersByDescendingCount(t *testing.T) {
	tokens := []string{"b", "a", "a", "c", "b", "a"}

	lex, ids := Build(tokens)

	assert.Equal(t, []string{"a", "b", "c"}, lex)
	assert.Equal(t, []int{1, 0, 0, 2, 1, 0}, ids)
}

func TestBuild_TiesBrokenByFirstOccurrence(t *testing.T) {
	tokens := []string{"z", "y", "x"}

	lex, ids := Build(tokens)

	assert.Equal(t, []string{"z", "y", "x"}, lex)
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func TestBuild_Empty(t *testing.T) {
	lex, ids := Build(nil)

	assert.Empty(t, lex)
	assert.Empty(t, ids)
}

func TestBuild_SingleToken(t *testing.T) {
	lex, ids := Build([]string{"only"})

	assert.Equal(t, []string{"only"}, lex)
	assert.Equal(t, []int{0}, ids)
}
