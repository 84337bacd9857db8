package recipe

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/format"
	fnvhash "github.com/spitfirex/ziggurat-go/internal/fnv"
)

// NewPlainStringVariable builds a PlainStringVariable (ZVc) container: a
// StringData list holding strings verbatim, a cumulative OffsetStream
// giving each string's starting byte offset within StringData, and a
// StringHash index pairing each string's FNV-1a/64 hash with its
// position, letting a position be recovered by hash lookup without
// decoding StringData.
//
// strings must have length equal to the base layer's n; OffsetStream
// therefore carries n+1 entries (the final entry is StringData's total
// byte length, 0x00 terminators included). opts.Compressed selects VectorDelta/IndexCompressed over
// Vector/Index for OffsetStream and StringHash respectively.
func NewPlainStringVariable(baseLayerUUID uuid.UUID, strings []string, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	n := int64(len(strings))

	stringData, err := component.NewStringList("StringData", strings)
	if err != nil {
		return nil, err
	}

	offsets := make([]int64, len(strings)+1)
	var cursor int64
	for i, s := range strings {
		offsets[i] = cursor
		cursor += int64(len(s)) + 1
	}
	offsets[len(strings)] = cursor

	var offsetStream *component.Component
	if cfg.Compressed {
		rows := make([][]int64, len(offsets))
		for i, v := range offsets {
			rows[i] = []int64{v}
		}
		offsetStream, err = component.NewVectorDelta("OffsetStream", rows)
	} else {
		offsetStream, err = component.NewVectorFlat("OffsetStream", offsets)
	}
	if err != nil {
		return nil, err
	}

	pairs := make([]component.Pair, len(strings))
	for i, s := range strings {
		pairs[i] = component.Pair{Key: fnvhash.Sum64a(s), Position: int64(i)}
	}

	var stringHash *component.Component
	if cfg.Compressed {
		stringHash, err = component.NewIndexCompressed("StringHash", pairs, false)
	} else {
		stringHash, err = component.NewIndex("StringHash", pairs, false)
	}
	if err != nil {
		return nil, err
	}
	cfg.log("PlainStringVariable: hashed %d strings for StringHash", len(strings))

	base := baseLayerUUID
	return container.New(format.TagPlainStringVariable, n, 0, cfg.UUID, &base, cfg.BaseUUID2,
		[]*component.Component{stringData, offsetStream, stringHash})
}
