package component

import (
	"encoding/binary"
	"sort"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
)

// Pair is a single (key, position) entry of a sorted 2-column index.
// Position is carried as signed so variables that index by a signed
// quantity can use it; it is written to the wire as a raw 8-byte pattern
// regardless of sign.
type Pair struct {
	Key      uint64
	Position int64
}

// sortPairs reproduces the spec's two-pass stable sort: first by
// position ascending, then stably by key ascending, so that ties on key
// retain position order.
func sortPairs(pairs []Pair) []Pair {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	return sorted
}

// NewIndex builds an Index component (component_type 0x06, mode 0x00): a
// forward sorted (key, position) index, stably sorted by key ascending
// then position ascending, emitted as little-endian u64 pairs. Pass
// presorted true when pairs are already in the required order (e.g. a
// segmentation range stream built in position order), to skip the sort.
//
// bytelen = n*16. params = (n, 2).
func NewIndex(name string, pairs []Pair, presorted bool) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	sorted := pairs
	if !presorted {
		sorted = sortPairs(pairs)
	}

	buf := pool.Get()
	defer pool.Put(buf)
	buf.Grow(len(sorted) * 16)

	for _, p := range sorted {
		var b [16]byte
		binary.LittleEndian.PutUint64(b[0:8], p.Key)
		binary.LittleEndian.PutUint64(b[8:16], uint64(p.Position))
		buf.MustWrite(b[:])
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentIndex,
		Mode:    format.ModePlain,
		Name:    name,
		Params:  [2]int64{int64(len(pairs)), 2},
		Payload: payload,
	}, nil
}
