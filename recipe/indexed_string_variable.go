package recipe

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/format"
	fnvhash "github.com/spitfirex/ziggurat-go/internal/fnv"
	"github.com/spitfirex/ziggurat-go/internal/lexicon"
)

// NewIndexedStringVariable builds an IndexedStringVariable (ZVx)
// container: a deduplicated Lexicon ordered by descending occurrence
// count, a LexHash index from each lexicon entry's FNV-1a/64 hash to its
// lexicon ID, the base layer's Partition vector carried alongside for
// standalone decoding, a per-position LexIDStream of lexicon IDs, and a
// LexIDIndex mapping each lexicon ID back to its occurrence positions.
//
// opts.Compressed selects VectorComp over Vector for LexIDStream.
func NewIndexedStringVariable(baseLayerUUID uuid.UUID, partition []int64, strings []string, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	n := int64(len(strings))
	lex, lexIDs := lexicon.Build(strings)
	v := int64(len(lex))

	lexiconVec, err := component.NewStringVector("Lexicon", lex)
	if err != nil {
		return nil, err
	}

	hashPairs := make([]component.Pair, len(lex))
	for i, s := range lex {
		hashPairs[i] = component.Pair{Key: fnvhash.Sum64a(s), Position: int64(i)}
	}
	lexHash, err := component.NewIndex("LexHash", hashPairs, false)
	if err != nil {
		return nil, err
	}

	partitionVec, err := component.NewVectorFlat("Partition", partition)
	if err != nil {
		return nil, err
	}

	var lexIDStream *component.Component
	if cfg.Compressed {
		rows := make([][]int64, len(lexIDs))
		for i, id := range lexIDs {
			rows[i] = []int64{int64(id)}
		}
		lexIDStream, err = component.NewVectorComp("LexIDStream", rows)
	} else {
		flat := make([]int64, len(lexIDs))
		for i, id := range lexIDs {
			flat[i] = int64(id)
		}
		lexIDStream, err = component.NewVectorFlat("LexIDStream", flat)
	}
	if err != nil {
		return nil, err
	}

	lexIDIndex, err := component.NewInvertedIndex("LexIDIndex", lexIDs, len(lex), 0)
	if err != nil {
		return nil, err
	}
	cfg.log("IndexedStringVariable: built lexicon of %d entries over %d positions", len(lex), len(strings))

	base := baseLayerUUID
	return container.New(format.TagIndexedStringVariable, n, v, cfg.UUID, &base, cfg.BaseUUID2,
		[]*component.Component{lexiconVec, lexHash, partitionVec, lexIDStream, lexIDIndex})
}
