package component

import (
	"encoding/binary"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
)

// NewVector builds a Vector component (mode 0x00): an n x d matrix of
// int64, emitted row by row, each row's columns written little-endian in
// order. All rows must share the same width; a zero-row matrix is valid
// and produces an empty payload.
//
// params = (n, d).
func NewVector(name string, rows [][]int64) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	n := int64(len(rows))
	var d int64
	if n > 0 {
		d = int64(len(rows[0]))
	}

	buf := pool.Get()
	defer pool.Put(buf)
	buf.Grow(int(n * d * 8))

	for _, row := range rows {
		for _, v := range row {
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(v))
			buf.MustWrite(b[:])
		}
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentVector,
		Mode:    format.ModePlain,
		Name:    name,
		Params:  [2]int64{n, d},
		Payload: payload,
	}, nil
}

// NewVectorFlat is a convenience constructor for a single-column (d=1)
// Vector built from a flat int64 sequence.
func NewVectorFlat(name string, values []int64) (*Component, error) {
	rows := make([][]int64, len(values))
	for i, v := range values {
		rows[i] = []int64{v}
	}

	return NewVector(name, rows)
}
