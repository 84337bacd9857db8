package component

import (
	"github.com/spitfirex/ziggurat-go/format"
	"github.com/spitfirex/ziggurat-go/internal/pool"
)

// NewStringList builds a StringList component (component_type 0x02, mode
// 0x00): the input byte strings concatenated, each followed by a 0x00
// terminator. There is no offset table; random access requires scanning.
//
// params = (n, 0).
func NewStringList(name string, strings []string) (*Component, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	buf := pool.Get()
	defer pool.Put(buf)

	for _, s := range strings {
		buf.MustWrite([]byte(s))
		buf.MustWrite([]byte{0})
	}

	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())

	return &Component{
		Type:    format.ComponentStringList,
		Mode:    format.ModePlain,
		Name:    name,
		Params:  [2]int64{int64(len(strings)), 0},
		Payload: payload,
	}, nil
}
