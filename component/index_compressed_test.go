package component

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfirex/ziggurat-go/varint"
)

func TestNewIndexCompressed_OverflowBlockStaysWhole(t *testing.T) {
	pairs := make([]Pair, 17)
	for i := range pairs {
		pairs[i] = Pair{Key: 7, Position: int64(i)}
	}

	c, err := NewIndexCompressed("Idx", pairs, false)
	require.NoError(t, err)

	r := int64(binary.LittleEndian.Uint64(c.Payload[0:8]))
	assert.Equal(t, int64(17), r, "r equals the total input pair count")

	blockKey := binary.LittleEndian.Uint64(c.Payload[8:16])
	assert.Equal(t, uint64(7), blockKey)

	// Single block: header table is one 16-byte entry after the 8-byte r
	// preamble, so block data physically starts at byte 24 (the header's
	// own stored offset field intentionally does not reflect this, see
	// DESIGN.md).
	bo, _ := varint.Decode(c.Payload[24:])
	assert.Equal(t, int64(1), bo, "overflow block's bo is its real count (17) minus 16")
}

func TestNewIndexCompressed_PadsShortFinalBlock(t *testing.T) {
	pairs := []Pair{
		{Key: 1, Position: 10},
		{Key: 2, Position: 20},
		{Key: 3, Position: 30},
	}

	c, err := NewIndexCompressed("Idx", pairs, false)
	require.NoError(t, err)

	r := int64(binary.LittleEndian.Uint64(c.Payload[0:8]))
	assert.Equal(t, int64(3), r)

	// Single block: data physically starts at byte 24, regardless of the
	// header's own (intentionally non-physical) stored offset field.
	bo, _ := varint.Decode(c.Payload[24:])
	assert.Equal(t, int64(-13), bo, "padded block's bo is the real count (3) minus 16, not 0")
}

func TestNewIndexCompressed_KeyDeltaEncodedUnsigned(t *testing.T) {
	// A full, unpadded 16-row block whose first key delta (1<<63) would be
	// negative if reinterpreted as a signed int64.
	pairs := make([]Pair, 16)
	pairs[0] = Pair{Key: 1, Position: 0}
	pairs[1] = Pair{Key: 1 + (uint64(1) << 63), Position: 1}
	for i := 2; i < 16; i++ {
		pairs[i] = Pair{Key: pairs[i-1].Key + 1, Position: int64(i)}
	}

	c, err := NewIndexCompressed("Idx", pairs, true)
	require.NoError(t, err)

	// Single block: data physically starts at byte 24, regardless of the
	// header's own (intentionally non-physical) stored offset field.
	const blockOffset = 24
	bo, n := varint.Decode(c.Payload[blockOffset:])
	assert.Equal(t, int64(0), bo, "exactly 16 entries, no overflow or padding")

	delta, _ := varint.Decode(c.Payload[blockOffset+n:])
	assert.Equal(t, uint64(1)<<63, uint64(delta), "first key delta round-trips as a full-range unsigned magnitude")
}

func TestNewIndexCompressed_Empty(t *testing.T) {
	c, err := NewIndexCompressed("Idx", nil, false)
	require.NoError(t, err)

	r := int64(binary.LittleEndian.Uint64(c.Payload[0:8]))
	assert.Equal(t, int64(0), r)
}
