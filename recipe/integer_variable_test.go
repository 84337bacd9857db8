package recipe

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfirex/ziggurat-go/format"
)

func TestNewIntegerVariable_BuildsStreamAndSortIndex(t *testing.T) {
	ints := []int64{5, 1, 3, 1, 9}
	c, err := NewIntegerVariable(uuid.New(), ints, 1)
	require.NoError(t, err)

	assert.Equal(t, format.TagIntegerVariable, c.Tag)
	assert.Equal(t, int64(len(ints)), c.Dim1)
	assert.Equal(t, int64(1), c.Dim2)

	require.Len(t, c.Components, 2)
	assert.Equal(t, "IntStream", c.Components[0].Name)
	assert.Equal(t, "IntSort", c.Components[1].Name)
	assert.Equal(t, format.ModeCompressed, c.Components[0].Mode, "compressed by default selects VectorComp")

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
}

func TestNewIntegerVariable_DeltaSelectsVectorDelta(t *testing.T) {
	c, err := NewIntegerVariable(uuid.New(), []int64{1, 2, 3}, 1, WithDelta(true))
	require.NoError(t, err)
	assert.Equal(t, format.ModeDelta, c.Components[0].Mode)
}

func TestNewIntegerVariable_UncompressedSelectsPlainCodecs(t *testing.T) {
	c, err := NewIntegerVariable(uuid.New(), []int64{1, 2, 3}, 1, WithCompressed(false))
	require.NoError(t, err)
	assert.Equal(t, format.ModePlain, c.Components[0].Mode)
	assert.Equal(t, format.ModePlain, c.Components[1].Mode)
}
