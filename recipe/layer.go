// Package recipe implements the composition layer: named container
// recipes (PrimaryLayer, SegmentationLayer, PlainStringVariable,
// IndexedStringVariable, IntegerVariable, SetVariable) that select and
// parameterize component codecs. A recipe invents no new wire format; it
// only decides which components go in a container, in what order, and
// with what parameters.
package recipe

import (
	"fmt"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/errs"
	"github.com/spitfirex/ziggurat-go/format"
)

// minPartitionLen is the shortest valid partition: a single range
// spanning all positions, i.e. (0, n).
const minPartitionLen = 2

func validatePartition(partition []int64) error {
	if len(partition) < minPartitionLen {
		return fmt.Errorf("%w: partition needs at least %d entries, got %d", errs.ErrDimensionMismatch, minPartitionLen, len(partition))
	}

	return nil
}

// NewPrimaryLayer builds a PrimaryLayer (ZLp) container: a single
// Partition vector describing the corpus's top-level position range.
func NewPrimaryLayer(n int64, partition []int64, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := validatePartition(partition); err != nil {
		return nil, err
	}

	p, err := component.NewVectorFlat("Partition", partition)
	if err != nil {
		return nil, err
	}

	return container.New(format.TagPrimaryLayer, n, 0, cfg.UUID, cfg.BaseUUID1, cfg.BaseUUID2, []*component.Component{p})
}

// Range is a half-open [Start, End) position span, the unit a
// SegmentationLayer indexes.
type Range struct {
	Start, End int64
}

// NewSegmentationLayer builds a SegmentationLayer (ZLs) container: the
// same Partition vector as PrimaryLayer, a delta-encoded RangeStream of
// (start, end) pairs, and two compressed indexes letting a position be
// located by the range it starts or ends at. ranges must already be in
// position order; StartSort is built without re-sorting on that
// assumption, while EndSort is sorted by end value.
func NewSegmentationLayer(n int64, partition []int64, ranges []Range, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := validatePartition(partition); err != nil {
		return nil, err
	}

	p, err := component.NewVectorFlat("Partition", partition)
	if err != nil {
		return nil, err
	}

	rows := make([][]int64, len(ranges))
	startPairs := make([]component.Pair, len(ranges))
	endPairs := make([]component.Pair, len(ranges))
	for i, r := range ranges {
		rows[i] = []int64{r.Start, r.End}
		startPairs[i] = component.Pair{Key: uint64(r.Start), Position: int64(i)}
		endPairs[i] = component.Pair{Key: uint64(r.End), Position: int64(i)}
	}

	rangeStream, err := component.NewVectorDelta("RangeStream", rows)
	if err != nil {
		return nil, err
	}

	startSort, err := component.NewIndexCompressed("StartSort", startPairs, true)
	if err != nil {
		return nil, err
	}
	cfg.log("SegmentationLayer: built StartSort over %d ranges", len(ranges))

	endSort, err := component.NewIndexCompressed("EndSort", endPairs, false)
	if err != nil {
		return nil, err
	}
	cfg.log("SegmentationLayer: built EndSort over %d ranges", len(ranges))

	return container.New(format.TagSegmentationLayer, n, 0, cfg.UUID, cfg.BaseUUID1, cfg.BaseUUID2,
		[]*component.Component{p, rangeStream, startSort, endSort})
}
