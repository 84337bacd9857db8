package component

import (
	"encoding/binary"
	"slices"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
	"github.com/spitfirex/ziggurat-go/varint"
)

// NewSet builds a Set component (component_type 0x05, mode 0x01): n sets
// of nonnegative integer type IDs, each sorted ascending and delta-encoded
// (first element verbatim, subsequent as differences), grouped into
// blocks of 16 sets. A short final block pads its offset/length entries
// with the sentinel offset -1 and length 0, rather than padding the set
// count itself.
//
// params = (n, 2).
func NewSet(name string, sets [][]int64) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	n := len(sets)
	m := (n + blockRows - 1) / blockRows

	blocks := make([][]byte, m)
	for b := 0; b < m; b++ {
		start := b * blockRows
		end := min(start+blockRows, n)
		blocks[b] = encodeSetBlock(sets[start:end])
	}

	sync := buildSyncTableInclusive(blocks)

	buf := pool.Get()
	defer pool.Put(buf)

	for _, off := range sync {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(off))
		buf.MustWrite(b[:])
	}
	for _, block := range blocks {
		buf.MustWrite(block)
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentSet,
		Mode:    format.ModeCompressed,
		Name:    name,
		Params:  [2]int64{int64(n), 2},
		Payload: payload,
	}, nil
}

// encodeSetBlock builds a single Set block from up to 16 real sets: the
// per-set delta-encoded varint streams, their byte offsets and lengths
// within the concatenated stream (padded to 16 entries for a short final
// block), and the delta-encoded offset table.
func encodeSetBlock(sets [][]int64) []byte {
	realCount := len(sets)

	items := make([][]byte, realCount)
	for i, set := range sets {
		items[i] = encodeDeltaSortedSet(set)
	}

	offsets := make([]int64, blockRows)
	lengths := make([]int64, blockRows)

	var cursor int64
	for i := 0; i < blockRows; i++ {
		if i < realCount {
			offsets[i] = cursor
			lengths[i] = int64(len(items[i]))
			cursor += lengths[i]
		} else {
			offsets[i] = -1
			lengths[i] = 0
		}
	}

	var block []byte
	block = varint.Encode(block, offsets[0])
	for i := 1; i < blockRows; i++ {
		block = varint.Encode(block, offsets[i]-offsets[i-1])
	}
	for i := 0; i < blockRows; i++ {
		block = varint.Encode(block, lengths[i])
	}
	for _, item := range items {
		block = append(block, item...)
	}

	return block
}

// encodeDeltaSortedSet sorts set ascending and varint-encodes it as the
// first element verbatim followed by successive differences.
func encodeDeltaSortedSet(set []int64) []byte {
	sorted := slices.Clone(set)
	slices.Sort(sorted)

	var stream []byte
	for i, v := range sorted {
		if i == 0 {
			stream = varint.Encode(stream, v)
			continue
		}
		stream = varint.Encode(stream, v-sorted[i-1])
	}

	return stream
}

// buildSyncTableInclusive computes the (m+1)-entry sync table Set uses:
// unlike the Vector-family's m-entry table, Set's table carries an
// explicit end marker as its final entry.
func buildSyncTableInclusive(blocks [][]byte) []int64 {
	m := len(blocks)
	offsets := make([]int64, m+1)
	offsets[0] = 0
	for i := 0; i < m; i++ {
		offsets[i+1] = offsets[i] + int64(len(blocks[i]))
	}

	return offsets
}
