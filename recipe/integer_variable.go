package recipe

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/format"
)

// NewIntegerVariable builds an IntegerVariable (ZVi) container: an
// IntStream holding the raw values in position order, and an IntSort
// index pairing each value with its position, sorted by value.
//
// b is a caller-supplied bit-width hint carried in dims; it does not
// affect encoding. opts.Compressed selects VectorComp (or, with
// opts.Delta, VectorDelta) over Vector for IntStream, and IndexCompressed
// over Index for IntSort.
func NewIntegerVariable(baseLayerUUID uuid.UUID, ints []int64, b int64, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	n := int64(len(ints))

	var intStream *component.Component
	switch {
	case cfg.Compressed && cfg.Delta:
		rows := make([][]int64, len(ints))
		for i, v := range ints {
			rows[i] = []int64{v}
		}
		intStream, err = component.NewVectorDelta("IntStream", rows)
	case cfg.Compressed:
		rows := make([][]int64, len(ints))
		for i, v := range ints {
			rows[i] = []int64{v}
		}
		intStream, err = component.NewVectorComp("IntStream", rows)
	default:
		intStream, err = component.NewVectorFlat("IntStream", ints)
	}
	if err != nil {
		return nil, err
	}

	pairs := make([]component.Pair, len(ints))
	for i, v := range ints {
		pairs[i] = component.Pair{Key: uint64(v), Position: int64(i)}
	}

	var intSort *component.Component
	if cfg.Compressed {
		intSort, err = component.NewIndexCompressed("IntSort", pairs, false)
	} else {
		intSort, err = component.NewIndex("IntSort", pairs, false)
	}
	if err != nil {
		return nil, err
	}
	cfg.log("IntegerVariable: sorted %d values for IntSort", len(ints))

	base := baseLayerUUID
	return container.New(format.TagIntegerVariable, n, b, cfg.UUID, &base, cfg.BaseUUID2,
		[]*component.Component{intStream, intSort})
}
