package recipe

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfirex/ziggurat-go/format"
)

func TestNewIndexedStringVariable_DedupsLexiconByFrequency(t *testing.T) {
	strings := []string{"the", "cat", "sat", "the", "the", "cat"}
	c, err := NewIndexedStringVariable(uuid.New(), []int64{0, int64(len(strings))}, strings)
	require.NoError(t, err)

	assert.Equal(t, format.TagIndexedStringVariable, c.Tag)
	assert.Equal(t, int64(len(strings)), c.Dim1)
	assert.Equal(t, int64(3), c.Dim2, "three distinct tokens")

	require.Len(t, c.Components, 5)
	assert.Equal(t, "Lexicon", c.Components[0].Name)
	assert.Equal(t, "LexHash", c.Components[1].Name)
	assert.Equal(t, "Partition", c.Components[2].Name)
	assert.Equal(t, "LexIDStream", c.Components[3].Name)
	assert.Equal(t, "LexIDIndex", c.Components[4].Name)
	assert.Equal(t, int64(3), c.Components[0].Params[0])

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
}

func TestNewIndexedStringVariable_UncompressedLexIDStream(t *testing.T) {
	c, err := NewIndexedStringVariable(uuid.New(), []int64{0, 2}, []string{"a", "b"}, WithCompressed(false))
	require.NoError(t, err)
	assert.Equal(t, format.ModePlain, c.Components[3].Mode)
}
