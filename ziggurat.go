// Package ziggurat provides convenient top-level wrappers around the
// container and recipe packages for building Ziggurat format files: a
// write-only binary container for corpus-linguistic data, built from a
// fixed 160-byte header, a Bill-of-Materials index, and typed compressed
// components.
//
// # Core Features
//
//   - Layer containers describing a corpus's position range and its
//     segmentation into ranges (sentences, documents, ...)
//   - Variable containers attaching string, lexicon-indexed, integer, or
//     set-valued data to a layer's positions
//   - Block-compressed and delta-encoded component codecs selectable per
//     variable
//   - Little-endian, single-threaded, fully in-memory construction
//
// # Basic Usage
//
// Building a primary layer and a string variable over it:
//
//	import "github.com/spitfirex/ziggurat-go"
//
//	layer, err := ziggurat.NewPrimaryLayer(3, []int64{0, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	variable, err := ziggurat.NewPlainStringVariable(layer.UUID, []string{"the", "cat", "sat"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var buf bytes.Buffer
//	if err := layer.Write(&buf); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package forwards to the recipe package's composition recipes,
// simplifying the most common constructions. For direct control over
// component selection and container assembly, use the recipe, component,
// and container packages directly.
package ziggurat

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/container"
	"github.com/spitfirex/ziggurat-go/recipe"
)

// Option configures a recipe constructor; see recipe.WithCompressed,
// recipe.WithDelta, recipe.WithUUID, recipe.WithBaseUUID1,
// recipe.WithBaseUUID2, and recipe.WithLogger.
type Option = recipe.Option

// Range is a half-open [Start, End) position span, the unit a
// SegmentationLayer indexes.
type Range = recipe.Range

// NewPrimaryLayer builds a PrimaryLayer (ZLp) container: a single
// Partition vector describing the corpus's top-level position range.
func NewPrimaryLayer(n int64, partition []int64, opts ...Option) (*container.Container, error) {
	return recipe.NewPrimaryLayer(n, partition, opts...)
}

// NewSegmentationLayer builds a SegmentationLayer (ZLs) container: a
// Partition vector, a delta-encoded RangeStream, and two compressed
// indexes letting a position be located by the range it starts or ends
// at.
func NewSegmentationLayer(n int64, partition []int64, ranges []Range, opts ...Option) (*container.Container, error) {
	return recipe.NewSegmentationLayer(n, partition, ranges, opts...)
}

// NewPlainStringVariable builds a PlainStringVariable (ZVc) container
// over baseLayerUUID: a StringData list, a cumulative OffsetStream, and a
// StringHash index pairing each string's FNV-1a/64 hash with its
// position.
func NewPlainStringVariable(baseLayerUUID uuid.UUID, strings []string, opts ...Option) (*container.Container, error) {
	return recipe.NewPlainStringVariable(baseLayerUUID, strings, opts...)
}

// NewIndexedStringVariable builds an IndexedStringVariable (ZVx)
// container over baseLayerUUID: a frequency-ordered Lexicon, a LexHash
// index, the layer's Partition, a per-position LexIDStream, and a
// LexIDIndex mapping lexicon IDs back to occurrence positions.
func NewIndexedStringVariable(baseLayerUUID uuid.UUID, partition []int64, strings []string, opts ...Option) (*container.Container, error) {
	return recipe.NewIndexedStringVariable(baseLayerUUID, partition, strings, opts...)
}

// NewIntegerVariable builds an IntegerVariable (ZVi) container over
// baseLayerUUID: an IntStream holding the raw values and an IntSort
// index pairing each value with its position.
func NewIntegerVariable(baseLayerUUID uuid.UUID, ints []int64, b int64, opts ...Option) (*container.Container, error) {
	return recipe.NewIntegerVariable(baseLayerUUID, ints, b, opts...)
}

// NewSetVariable builds a SetVariable (ZVs) container over baseLayerUUID:
// a Lexicon of the distinct types occurring across all positions' sets, a
// LexHash index, the layer's Partition, an IDSetStream, and an
// IDSetIndex mapping lexicon IDs back to the positions whose set
// contains them.
func NewSetVariable(baseLayerUUID uuid.UUID, partition []int64, sets [][]string, opts ...Option) (*container.Container, error) {
	return recipe.NewSetVariable(baseLayerUUID, partition, sets, opts...)
}

// WithCompressed selects the block-compressed codec variant where the
// recipe offers a choice.
func WithCompressed(compressed bool) Option { return recipe.WithCompressed(compressed) }

// WithDelta selects the delta-encoded codec variant for integer streams.
func WithDelta(delta bool) Option { return recipe.WithDelta(delta) }

// WithUUID sets the container's identity UUID explicitly.
func WithUUID(id uuid.UUID) Option { return recipe.WithUUID(id) }

// WithBaseUUID1 records the first parent container's UUID.
func WithBaseUUID1(id uuid.UUID) Option { return recipe.WithBaseUUID1(id) }

// WithBaseUUID2 records the second parent container's UUID.
func WithBaseUUID2(id uuid.UUID) Option { return recipe.WithBaseUUID2(id) }

// WithLogger installs a diagnostic logger, which recipes call with a
// one-line summary of entry counts after building their indexes or
// lexicon.
func WithLogger(logger func(format string, args ...any)) Option { return recipe.WithLogger(logger) }
