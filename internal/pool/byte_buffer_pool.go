// Package pool provides a pooled, amortized-growth byte buffer used by
// component codecs while they accumulate a payload prior to emitting
// Bytes(). Ported from mebo's internal/pool package and trimmed to the
// single buffer tier components actually need (no decoder-side "blob set"
// tier, since this module never reads a container back).
package pool

import "sync"

// DefaultSize is the default capacity of a ByteBuffer obtained from the pool.
// MaxThreshold is the capacity above which a returned buffer is discarded
// rather than retained, to avoid pooling pathologically large payloads.
const (
	DefaultSize  = 1024 * 16  // 16KiB
	MaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth
// strategy tuned for accumulating a component payload in a handful of
// reallocations rather than one-byte-at-a-time appends.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end. Panics if the
// indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n. Panics if n is out of
// [0, cap(bb.B)].
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if there isn't enough spare capacity.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		bb.B = bb.B[:len(bb.B)+n]
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy: small buffers grow by DefaultSize to minimize the number
// of reallocations for the common case; larger buffers grow by 25% of
// current capacity to bound memory overhead.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var defaultPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DefaultSize)}
	},
}

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer {
	bb, _ := defaultPool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the default pool for reuse. Buffers whose
// backing array grew past MaxThreshold are discarded instead of retained,
// to avoid pooling pathologically large payloads indefinitely.
func Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if cap(bb.B) > MaxThreshold {
		return
	}
	bb.Reset()
	defaultPool.Put(bb)
}
