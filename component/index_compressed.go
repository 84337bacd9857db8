package component

import (
	"encoding/binary"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
	"github.com/spitfirex/ziggurat-go/varint"
)

// padKey and padPosition are the sentinel (-1, -1) entry (u64 bit pattern
// of all ones) used to pad a short final block to 16 rows.
const padKey = ^uint64(0)
const padPosition = int64(-1)

// NewIndexCompressed builds an IndexCompressed component (component_type
// 0x06, mode 0x01): the same logical sort as Index, split into blocks
// targeting 16 entries each under the no-split-on-equal-key overflow
// rule, with a short final block padded to 16 rows of the sentinel pair.
// Pass presorted true to skip the sort when pairs are already ordered.
//
// params = (n, 2).
func NewIndexCompressed(name string, pairs []Pair, presorted bool) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	sorted := pairs
	if !presorted {
		sorted = sortPairs(pairs)
	}
	blocks := splitOverflowBlocks(sorted)

	realLens := make([]int, len(blocks))
	for i, block := range blocks {
		realLens[i] = len(block)
	}
	if m := len(blocks); m > 0 && len(blocks[m-1]) < blockRows {
		blocks[m-1] = padBlock(blocks[m-1])
	}

	encoded := make([][]byte, len(blocks))
	keys := make([]uint64, len(blocks))
	for i, block := range blocks {
		encoded[i] = encodeIndexBlock(block, realLens[i])
		keys[i] = block[0].Key
	}

	m := int64(len(blocks))
	offsets := make([]int64, len(blocks))
	if len(blocks) > 0 {
		offsets[0] = m*8 + 8
		for i := 1; i < len(blocks); i++ {
			offsets[i] = offsets[i-1] + int64(len(encoded[i-1]))
		}
	}

	buf := pool.Get()
	defer pool.Put(buf)

	var rb [8]byte
	binary.LittleEndian.PutUint64(rb[:], uint64(len(pairs)))
	buf.MustWrite(rb[:])

	for i := range blocks {
		var b [16]byte
		binary.LittleEndian.PutUint64(b[0:8], keys[i])
		binary.LittleEndian.PutUint64(b[8:16], uint64(offsets[i]))
		buf.MustWrite(b[:])
	}
	for _, block := range encoded {
		buf.MustWrite(block)
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentIndex,
		Mode:    format.ModeCompressed,
		Name:    name,
		Params:  [2]int64{int64(len(pairs)), 2},
		Payload: payload,
	}, nil
}

// splitOverflowBlocks groups sorted pairs into blocks of at least 16
// entries, extending a block past 16 whenever the next entry shares the
// previous entry's key, so that all entries with that key land in the
// same block.
func splitOverflowBlocks(sorted []Pair) [][]Pair {
	var blocks [][]Pair
	blen := 0
	bstart := 0

	for i := range sorted {
		if blen < blockRows {
			blen++
			continue
		}

		if sorted[i].Key == sorted[i-1].Key {
			blen++
			continue
		}

		blocks = append(blocks, sorted[bstart:i])
		bstart = i
		blen = 1
	}

	if blen != 0 {
		blocks = append(blocks, sorted[bstart:])
	}

	return blocks
}

// padBlock extends a short block to exactly blockRows entries using the
// sentinel (-1, -1) pair.
func padBlock(block []Pair) []Pair {
	padded := make([]Pair, blockRows)
	copy(padded, block)
	for i := len(block); i < blockRows; i++ {
		padded[i] = Pair{Key: padKey, Position: padPosition}
	}

	return padded
}

// encodeIndexBlock encodes a single (possibly overflowed or padded) block
// as bo, the first 16 keys' 15 inter-key deltas, then the full block's
// position deltas (one fewer than the block's row count). realLen is the
// block's entry count before any sentinel padding was appended: bo is
// varint(realLen-16), so a padded final block encodes a negative value
// equal to -padding rather than 0.
//
// Key deltas are computed in u64 arithmetic and written with
// varint.EncodeUnsigned: keys sort ascending (including the all-ones
// sentinel pad key, which sorts last), so the delta is always a
// nonnegative u64 quantity that can exceed int64's range, and
// EncodeUnsigned keeps every such delta recoverable as its full 64-bit
// value.
func encodeIndexBlock(block []Pair, realLen int) []byte {
	var encoded []byte
	encoded = varint.Encode(encoded, int64(realLen)-blockRows)

	for i := 1; i < blockRows; i++ {
		delta := block[i].Key - block[i-1].Key
		encoded = varint.EncodeUnsigned(encoded, delta)
	}

	for i := 1; i < len(block); i++ {
		delta := block[i].Position - block[i-1].Position
		encoded = varint.Encode(encoded, delta)
	}

	return encoded
}
