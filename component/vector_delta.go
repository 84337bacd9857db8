package component

import (
	"encoding/binary"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
	"github.com/spitfirex/ziggurat-go/varint"
)

// NewVectorDelta builds a VectorDelta component (mode 0x02): identical
// framing to VectorComp, but within each block, row 0 is stored verbatim
// and row i>0 as the column-wise delta from row i-1. Padding rows
// (all -1) are applied before delta computation, so a short final block's
// deltas transition into the sentinel.
//
// params = (n, d).
func NewVectorDelta(name string, rows [][]int64) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	n := int64(len(rows))
	var d int
	if n > 0 {
		d = len(rows[0])
	}

	padded, m := padRows(rows, d)

	blocks := make([][]byte, m)
	for b := 0; b < m; b++ {
		block := padded[b*blockRows : (b+1)*blockRows]
		blocks[b] = encodeDeltaBlock(block, d)
	}

	sync := buildSyncTable(blocks)

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
		Type:    format.ComponentVector,
		Mode:    format.ModeDelta,
		Name:    name,
		Params:  [2]int64{n, int64(d)},
		Payload: payload,
	}, nil
}

// encodeDeltaBlock varint-encodes a single 16-row block in column-major
// order: for each column, row 0 verbatim, rows 1..15 as the delta from
// the previous row.
func encodeDeltaBlock(rows [][]int64, d int) []byte {
	var block []byte
	for j := 0; j < d; j++ {
		block = varint.Encode(block, rows[0][j])
		for i := 1; i < blockRows; i++ {
			block = varint.Encode(block, rows[i][j]-rows[i-1][j])
		}
	}

	return block
}
