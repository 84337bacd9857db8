package component

import (
	"encoding/binary"

	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
)

// NewStringVector builds a StringVector component (component_type 0x03,
// mode 0x00): an offset table of n little-endian int64 starting byte
// offsets (offset 0 is the first string), followed by the same string
// payload StringList writes: each string followed by a 0x00 terminator.
//
// bytelen = n*8 + payload_len. params = (n, 0).
func NewStringVector(name string, strings []string) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	offsets := make([]int64, len(strings))
	var cursor int64
	for i, s := range strings {
		offsets[i] = cursor
		cursor += int64(len(s)) + 1
	}

	buf := pool.Get()
	defer pool.Put(buf)
	buf.Grow(len(strings)*8 + int(cursor))

	for _, off := range offsets {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(off))
		buf.MustWrite(b[:])
	}
	for _, s := range strings {
		buf.MustWrite([]byte(s))
		buf.MustWrite([]byte{0})
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentStringVector,
		Mode:    format.ModePlain,
		Name:    name,
		Params:  [2]int64{int64(len(strings)), 0},
		Payload: payload,
	}, nil
}
