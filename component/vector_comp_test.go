package component

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorComp_SingleBlockSyncOffset(t *testing.T) {
	c, err := NewVectorComp("V", rowsOf(1, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, [2]int64{3, 1}, c.Params)
	assert.Equal(t, int64(8), int64(binary.LittleEndian.Uint64(c.Payload[0:8])))
}

func TestNewVectorComp_TwoBlocksSyncTable(t *testing.T) {
	vals := make([]int64, 20)
	for i := range vals {
		vals[i] = int64(i)
	}
	c, err := NewVectorComp("V", rowsOf(vals...))
	require.NoError(t, err)

	sync0 := int64(binary.LittleEndian.Uint64(c.Payload[0:8]))
	sync1 := int64(binary.LittleEndian.Uint64(c.Payload[8:16]))

	assert.Equal(t, int64(16), sync0, "first offset is the sync table size (2 blocks * 8 bytes)")
	assert.Greater(t, sync1, sync0)
	assert.Equal(t, len(c.Payload), int(sync1)+int(sync1-sync0))
}
