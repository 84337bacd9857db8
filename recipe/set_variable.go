package recipe

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/component"
	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/format"
	fnvhash "github.com/spitfirex/ziggurat-go/internal/fnv"
	"github.com/spitfirex/ziggurat-go/internal/lexicon"
)

// NewSetVariable builds a SetVariable (ZVs) container: a deduplicated
// Lexicon of the distinct types that appear across all positions' sets,
// a LexHash index from hash to lexicon ID, the base layer's Partition
// vector, an IDSetStream of per-position type-ID sets, and an IDSetIndex
// mapping each lexicon ID back to the positions whose set contains it.
//
// sets[i] holds the raw type strings occurring at position i; the
// lexicon is built once over their concatenation so every position's set
// is re-expressed as lexicon IDs.
func NewSetVariable(baseLayerUUID uuid.UUID, partition []int64, sets [][]string, opts ...Option) (*container.Container, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	n := int64(len(sets))

	var flat []string
	lengths := make([]int, len(sets))
	for i, s := range sets {
		flat = append(flat, s...)
		lengths[i] = len(s)
	}
	lex, flatIDs := lexicon.Build(flat)
	v := int64(len(lex))

	idSets := make([][]int64, len(sets))
	cursor := 0
	for i, length := range lengths {
		ids := make([]int64, length)
		for j := 0; j < length; j++ {
			ids[j] = int64(flatIDs[cursor])
			cursor++
		}
		idSets[i] = ids
	}

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

	idSetStream, err := component.NewSet("IDSetStream", idSets)
	if err != nil {
		return nil, err
	}

	typeSets := make([][]int, len(idSets))
	for i, ids := range idSets {
		ts := make([]int, len(ids))
		for j, id := range ids {
			ts[j] = int(id)
		}
		typeSets[i] = ts
	}
	idSetIndex, err := component.NewInvertedIndexMulti("IDSetIndex", typeSets, len(lex), 0)
	if err != nil {
		return nil, err
	}
	cfg.log("SetVariable: built lexicon of %d types over %d positions", len(lex), len(sets))

	base := baseLayerUUID
	return container.New(format.TagSetVariable, n, v, cfg.UUID, &base, cfg.BaseUUID2,
		[]*component.Component{lexiconVec, lexHash, partitionVec, idSetStream, idSetIndex})
}
