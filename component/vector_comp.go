package component

import (
	"encoding/binary"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
	"github.com/spitfirex/ziggurat-go/varint"
)

// NewVectorComp builds a VectorComp component (mode 0x01): a block-
// compressed int64 vector. Rows are grouped into fixed 16-row blocks, the
// final block padded with all-(-1) rows; within a block, each column's 16
// values are varint-encoded and the per-column streams are concatenated.
// A sync table of m little-endian int64 offsets precedes the blocks.
//
// params = (n, d).
func NewVectorComp(name string, rows [][]int64) (*Component, error) {
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
		blocks[b] = encodeCompBlock(block, d)
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
		Mode:    format.ModeCompressed,
		Name:    name,
		Params:  [2]int64{n, int64(d)},
		Payload: payload,
	}, nil
}

// encodeCompBlock varint-encodes a single 16-row block in column-major
// order: for each column, 16 varints, one per row.
func encodeCompBlock(rows [][]int64, d int) []byte {
	var block []byte
	for j := 0; j < d; j++ {
		for i := 0; i < blockRows; i++ {
			block = varint.Encode(block, rows[i][j])
		}
	}

	return block
}
