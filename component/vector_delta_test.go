package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorDelta_SingleBlock(t *testing.T) {
	c, err := NewVectorDelta("V", rowsOf(10, 12, 15, 20))
	require.NoError(t, err)

	assert.Equal(t, [2]int64{4, 1}, c.Params)

	// The spec scenario only covers the 4 real rows; rows past them pad
	// with -1 before delta computation. Assert the sync table and the
	// verbatim-plus-delta prefix exactly.
	assert.Equal(t, byte(0x08), c.Payload[0])
	assert.Equal(t, []byte{0x0a, 0x02, 0x03, 0x05}, c.Payload[8:12])
}

func rowsOf(vals ...int64) [][]int64 {
	rows := make([][]int64, len(vals))
	for i, v := range vals {
		rows[i] = []int64{v}
	}
	return rows
}
