package recipe

import (
	"github.com/google/uuid"

	"github.com/spitfirex/ziggurat-go/internal/options"
)

// Config carries the per-recipe knobs every Variable/Layer constructor
// accepts: codec selection, identity, and an optional diagnostic logger.
type Config struct {
	// Compressed selects a block-compressed vector codec (VectorComp or
	// VectorDelta, depending on the recipe) and IndexCompressed over the
	// plain Vector/Index codecs, where the recipe offers the choice.
	Compressed bool
	// Delta selects VectorDelta over VectorComp for an integer stream,
	// where the recipe offers the choice.
	Delta bool
	// UUID is this container's identity. The zero UUID requests one be
	// generated.
	UUID uuid.UUID
	// BaseUUID1 and BaseUUID2 identify up to two parent containers this
	// one is built from (e.g. a Variable's base Layer).
	BaseUUID1, BaseUUID2 *uuid.UUID
	// Logger receives optional diagnostic messages during construction:
	// every recipe except PrimaryLayer sends a one-line summary of entry
	// counts after building its indexes or lexicon. IndexCompressed's own
	// block and overflow counts are not reported. Nil by default.
	Logger func(format string, args ...any)
}

// Option configures a Config.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{Compressed: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) log(format string, args ...any) {
	if c.Logger != nil {
		c.Logger(format, args...)
	}
}

// WithCompressed selects the block-compressed codec variant where the
// recipe offers a choice.
func WithCompressed(compressed bool) Option {
	return options.NoError(func(c *Config) { c.Compressed = compressed })
}

// WithDelta selects the delta-encoded codec variant for integer streams.
func WithDelta(delta bool) Option {
	return options.NoError(func(c *Config) { c.Delta = delta })
}

// WithUUID sets the container's identity UUID explicitly.
func WithUUID(id uuid.UUID) Option {
	return options.NoError(func(c *Config) { c.UUID = id })
}

// WithBaseUUID1 records the first parent container's UUID.
func WithBaseUUID1(id uuid.UUID) Option {
	return options.NoError(func(c *Config) { c.BaseUUID1 = &id })
}

// WithBaseUUID2 records the second parent container's UUID.
func WithBaseUUID2(id uuid.UUID) Option {
	return options.NoError(func(c *Config) { c.BaseUUID2 = &id })
}

// WithLogger installs a diagnostic logger, which recipes call with a
// one-line summary of entry counts after building their indexes or
// lexicon (see Config.Logger).
func WithLogger(logger func(format string, args ...any)) Option {
	return options.NoError(func(c *Config) { c.Logger = logger })
}
