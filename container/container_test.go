package container

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/format"
)

func TestContainer_EmptyPrimaryLayer(t *testing.T) {
	partition, err := component.NewVectorFlat("Partition", []int64{0, 0})
	require.NoError(t, err)

	c, err := New(format.TagPrimaryLayer, 0, 0, uuid.Nil, nil, nil, []*component.Component{partition})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	assert.Equal(t, 160+48+16, buf.Len())

	b := buf.Bytes()
	assert.Equal(t, "Ziggurat", string(b[0:8]))
	assert.Equal(t, "1.0\t", string(b[8:12]))
	assert.Equal(t, "ZLp", string(b[12:15]))
	assert.Equal(t, byte('\n'), b[15])
	assert.Equal(t, byte('\n'), b[52])
	assert.Equal(t, byte(0x04), b[53])
	assert.Equal(t, byte(0x00), b[54])
	assert.Equal(t, byte(0x00), b[55])
	assert.Equal(t, byte(1), b[56])
	assert.Equal(t, byte(1), b[57])
	assert.Equal(t, make([]byte, 6), b[58:64])

	dim1 := int64(binary.LittleEndian.Uint64(b[64:72]))
	dim2 := int64(binary.LittleEndian.Uint64(b[72:80]))
	assert.Equal(t, int64(0), dim1)
	assert.Equal(t, int64(0), dim2)

	assert.Equal(t, make([]byte, 36), b[80:116])
	assert.Equal(t, make([]byte, 4), b[116:120])
	assert.Equal(t, make([]byte, 36), b[120:156])
	assert.Equal(t, make([]byte, 4), b[156:160])

	bom := b[160:208]
	assert.Equal(t, byte(0x01), bom[0])
	assert.Equal(t, byte(format.ComponentVector), bom[1])
	assert.Equal(t, byte(format.ModePlain), bom[2])

	offset := int64(binary.LittleEndian.Uint64(bom[16:24]))
	size := int64(binary.LittleEndian.Uint64(bom[24:32]))
	assert.Equal(t, int64(208), offset)
	assert.Equal(t, int64(16), size)

	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, b[208:224])
}

func TestContainer_AlignsOffsetsTo8Bytes(t *testing.T) {
	odd, err := component.NewStringList("Odd", []string{"x"})
	require.NoError(t, err)
	next, err := component.NewVectorFlat("Next", []int64{1})
	require.NoError(t, err)

	c, err := New(format.TagPlainStringVariable, 1, 0, uuid.Nil, nil, nil, []*component.Component{odd, next})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	b := buf.Bytes()
	bomStart := 160
	entry1Offset := int64(binary.LittleEndian.Uint64(b[bomStart+48+16 : bomStart+48+24]))

	assert.Equal(t, int64(0), entry1Offset%8, "second component's offset must be 8-byte aligned")
}

func TestContainer_InvalidTagRejected(t *testing.T) {
	_, err := New("ZZ", 0, 0, uuid.Nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestContainer_GeneratesUUIDWhenNil(t *testing.T) {
	c, err := New(format.TagPrimaryLayer, 0, 0, uuid.Nil, nil, nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.UUID)
}
