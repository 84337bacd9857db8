package component

import (
	"encoding/binary"
	"fmt"

	"github.com/spitfirex/ziggurat-go/errs"
	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
	"github.com/spitfirex/ziggurat-go/varint"
)

// NewInvertedIndex builds an InvertedIndex component (component_type
// 0x07, mode 0x01): given K types and a parallel stream of length N
// assigning each position a type ID in [0, K), builds per-type ascending
// posting lists and delta-encodes them (first position verbatim, rest as
// differences), each list prefixed by a placeholder jump-table offset.
//
// jumpGranularity must currently be 0; jump tables are reserved for
// future use and any nonzero value fails with errs.ErrNotImplemented.
//
// params = (K, jumpGranularity).
func NewInvertedIndex(name string, typeIDs []int, k int, jumpGranularity int64) (*Component, error) {
	postings := make([][]int64, k)
	for pos, t := range typeIDs {
		postings[t] = append(postings[t], int64(pos))
	}

	return newInvertedIndex(name, postings, k, jumpGranularity)
}

// NewInvertedIndexMulti builds an InvertedIndex over a per-position SET of
// type IDs (SetVariable's IDSetIndex), rather than one type ID per
// position: every type in typeSets[pos] gets pos appended to its posting
// list.
func NewInvertedIndexMulti(name string, typeSets [][]int, k int, jumpGranularity int64) (*Component, error) {
	postings := make([][]int64, k)
	for pos, types := range typeSets {
		for _, t := range types {
			postings[t] = append(postings[t], int64(pos))
		}
	}

	return newInvertedIndex(name, postings, k, jumpGranularity)
}

func newInvertedIndex(name string, postings [][]int64, k int, jumpGranularity int64) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if jumpGranularity != 0 {
		return nil, fmt.Errorf("%w: jump-table granularity %d not supported", errs.ErrNotImplemented, jumpGranularity)
	}

	blocks := make([][]byte, k)
	freqs := make([]int64, k)
	for t, list := range postings {
		freqs[t] = int64(len(list))
		blocks[t] = encodePostingBlock(list)
	}

	offsets := make([]int64, k)
	if k > 0 {
		offsets[0] = int64(k * 16)
		for t := 1; t < k; t++ {
			offsets[t] = offsets[t-1] + int64(len(blocks[t-1]))
		}
	}

	buf := pool.Get()
	defer pool.Put(buf)

	for t := 0; t < k; t++ {
		var b [16]byte
		binary.LittleEndian.PutUint64(b[0:8], uint64(freqs[t]))
		binary.LittleEndian.PutUint64(b[8:16], uint64(offsets[t]))
		buf.MustWrite(b[:])
	}
	for _, block := range blocks {
		buf.MustWrite(block)
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentInvertedIndex,
		Mode:    format.ModeCompressed,
		Name:    name,
		Params:  [2]int64{int64(k), jumpGranularity},
		Payload: payload,
	}, nil
}

// encodePostingBlock encodes a single type's posting list as a leading
// placeholder jump-table offset of zero, followed by the first position
// verbatim and each subsequent position as a delta from the previous one.
func encodePostingBlock(positions []int64) []byte {
	var block []byte
	block = varint.Encode(block, 0)

	for i, p := range positions {
		if i == 0 {
			block = varint.Encode(block, p)
			continue
		}
		block = varint.Encode(block, p-positions[i-1])
	}

	return block
}
