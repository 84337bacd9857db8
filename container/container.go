// Package container assembles a Ziggurat container file: the 160-byte
// header, the 48-byte-per-entry Bill of Materials, and the concatenated
// component payloads at 8-byte-aligned offsets.
package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/errs"
	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
)

const (
	headerSize   = 160
	bomEntrySize = 48

	maxComponents = 255
)

// Container is a complete Ziggurat file description: a container type
// tag, two dimensions, an identity UUID, up to two base UUIDs, and the
// ordered components that make up its BOM.
type Container struct {
	Tag        format.ContainerTag
	Dim1, Dim2 int64
	UUID       uuid.UUID
	BaseUUID1  *uuid.UUID
	BaseUUID2  *uuid.UUID
	Components []*component.Component
}

// New validates and constructs a Container. If id is the zero UUID, a
// fresh one is generated. base1 and base2 identify up to two parent
// containers this one was built from (e.g. a Variable's base Layer); nil
// means absent and is written as 36 zero bytes.
func New(tag format.ContainerTag, dim1, dim2 int64, id uuid.UUID, base1, base2 *uuid.UUID, components []*component.Component) (*Container, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidContainerType, tag)
	}
	if len(components) > maxComponents {
		return nil, fmt.Errorf("%w: %d components exceeds the %d-slot limit", errs.ErrDimensionMismatch, len(components), maxComponents)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Container{
		Tag:        tag,
		Dim1:       dim1,
		Dim2:       dim2,
		UUID:       id,
		BaseUUID1:  base1,
		BaseUUID2:  base2,
		Components: components,
	}, nil
}

// align8 rounds o up to the next multiple of 8.
func align8(o int64) int64 {
	if rem := o % 8; rem != 0 {
		return o + (8 - rem)
	}

	return o
}

// offsets computes the 8-byte-aligned data offset of each component, in
// BOM order: component 0 starts at data_start, every following component
// starts at align8(prev_offset + prev_bytelen).
func (c *Container) offsets() []int64 {
	n := int64(len(c.Components))
	dataStart := headerSize + bomEntrySize*n

	offs := make([]int64, len(c.Components))
	if len(offs) == 0 {
		return offs
	}

	offs[0] = dataStart
	for i := 1; i < len(offs); i++ {
		prev := c.Components[i-1]
		offs[i] = align8(offs[i-1] + int64(prev.ByteLen()))
	}

	return offs
}

// Write emits the complete container: header, BOM, then each component's
// payload with zero-fill padding up to the next component's aligned
// offset.
func (c *Container) Write(w io.Writer) error {
	offs := c.offsets()

	if err := c.writeHeader(w); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOError, err)
	}
	if err := c.writeBOM(w, offs); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOError, err)
	}

	cursor := int64(0)
	if len(offs) > 0 {
		cursor = offs[0]
	}

	for i, comp := range c.Components {
		if offs[i] > cursor {
			if _, err := w.Write(make([]byte, offs[i]-cursor)); err != nil {
				return fmt.Errorf("%w: %w", errs.ErrIOError, err)
			}
		}
		if _, err := w.Write(comp.Payload); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrIOError, err)
		}
		cursor = offs[i] + int64(comp.ByteLen())
	}

	return nil
}

func (c *Container) writeHeader(w io.Writer) error {
	buf := pool.Get()
	defer pool.Put(buf)
	buf.Grow(headerSize)

	buf.MustWrite([]byte("Ziggurat"))
	buf.MustWrite([]byte("1.0\t"))
	buf.MustWrite([]byte(c.Tag))
	buf.MustWrite([]byte("\n"))

	buf.MustWrite([]byte(c.UUID.String()))
	buf.MustWrite([]byte{'\n', 0x04, 0x00, 0x00})

	n := len(c.Components)
	buf.MustWrite([]byte{byte(n), byte(n)})
	buf.MustWrite(make([]byte, 6))

	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[0:8], uint64(c.Dim1))
	binary.LittleEndian.PutUint64(dims[8:16], uint64(c.Dim2))
	buf.MustWrite(dims[:])

	writeOptionalUUID(buf, c.BaseUUID1)
	buf.MustWrite(make([]byte, 4))
	writeOptionalUUID(buf, c.BaseUUID2)
	buf.MustWrite(make([]byte, 4))

	_, err := w.Write(buf.Bytes())
	return err
}

func writeOptionalUUID(buf *pool.ByteBuffer, id *uuid.UUID) {
	if id == nil {
		buf.MustWrite(make([]byte, 36))
		return
	}
	buf.MustWrite([]byte(id.String()))
}

func (c *Container) writeBOM(w io.Writer, offs []int64) error {
	buf := pool.Get()
	defer pool.Put(buf)
	buf.Grow(bomEntrySize * len(c.Components))

	for i, comp := range c.Components {
		var entry [bomEntrySize]byte
		entry[0] = 0x01
		entry[1] = byte(comp.Type)
		entry[2] = byte(comp.Mode)
		copy(entry[3:16], comp.Name)

		binary.LittleEndian.PutUint64(entry[16:24], uint64(offs[i]))
		binary.LittleEndian.PutUint64(entry[24:32], uint64(comp.ByteLen()))
		binary.LittleEndian.PutUint64(entry[32:40], uint64(comp.Params[0]))
		binary.LittleEndian.PutUint64(entry[40:48], uint64(comp.Params[1]))

		buf.MustWrite(entry[:])
	}

	_, err := w.Write(buf.Bytes())
	return err
}
