// Package component implements the bit-exact codecs for the typed data
// units a Ziggurat container carries: plain and block-compressed vectors,
// string lists and vectors, sets, forward and inverted indexes. Every
// codec in this package materializes its full payload at construction, so
// that a BOM entry can be filled before a single byte is written (see
// container.Container).
package component

import (
	"fmt"

	"github.com/spitfirex/ziggurat-go/errs"
	"github.com/spitfirex/ziggurat-go/format"
)

// MaxNameLen is the maximum byte length of a component name.
const MaxNameLen = 12

// Component is a fully-built, self-describing data unit ready to be
// placed in a container's BOM. Payload is immutable once returned by a
// constructor in this package.
type Component struct {
	Type    format.ComponentType
	Mode    format.Mode
	Name    string
	Params  [2]int64
	Payload []byte
}

// ByteLen returns the exact payload length, as recorded in the BOM entry's
// size field.
func (c *Component) ByteLen() int {
	return len(c.Payload)
}

// validateName reports errs.ErrNameTooLong if name doesn't fit the
// 12-byte component name budget.
func validateName(name string) error {
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: %q is %d bytes, max %d", errs.ErrNameTooLong, name, len(name), MaxNameLen)
	}

	return nil
}
