// Package generator orchestrates seeded record generation: it owns the
// one randomness source of a session and wires the sampling modules that
// share it.
package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/rcrowley/go-metrics"

	"github.com/fablegen/fable/internal/company"
	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/internet"
	"github.com/fablegen/fable/internal/lorem"
	"github.com/fablegen/fable/internal/number"
	"github.com/fablegen/fable/internal/person"
	"github.com/fablegen/fable/internal/random"
)

// Config holds configuration for a generation session.
type Config struct {
	// Seed drives the whole session; 0 draws a crypto seed.
	Seed int64

	// Locale selects the dataset, with fallback to the base locale.
	Locale string

	// Preset names the generation profile.
	Preset Preset

	// Count overrides the preset's record count (0 = use preset default).
	Count int

	// Verbose enables progress logging.
	Verbose bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale: dataset.BaseLocale,
		Preset: PresetDemo,
	}
}

// Generator produces deterministic fake records. All modules share the
// session source, so a seed replays the exact record stream. A Generator
// is not safe for concurrent use.
type Generator struct {
	config Config
	preset PresetConfig
	seed   int64

	numbers   *number.Sampler
	people    *person.Module
	companies *company.Module
	net       *internet.Module
	filler    *lorem.Module

	meter metrics.Meter
}

// New creates a Generator with the given configuration.
func New(cfg Config) (*Generator, error) {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("generate seed: %w", err)
		}
	}

	data, err := dataset.Resolve(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("resolve locale: %w", err)
	}

	if cfg.Verbose {
		log.Printf("generating with seed %d, locale %s", seed, data.Locale)
	}

	numbers := number.NewSampler(random.New(seed))
	return &Generator{
		config:    cfg,
		preset:    GetPresetConfig(cfg.Preset),
		seed:      seed,
		numbers:   numbers,
		people:    person.New(numbers, data),
		companies: company.New(numbers, data),
		net:       internet.New(numbers, data),
		filler:    lorem.New(numbers, data),
		meter:     metrics.NewMeter(),
	}, nil
}

// Seed returns the seed driving this session, resolved if the config left
// it at zero.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Count returns the number of records the session will produce.
func (g *Generator) Count() int {
	if g.config.Count > 0 {
		return g.config.Count
	}
	return g.preset.Count
}

// Run generates the configured number of records into the sink. The
// context is checked between records, so cancellation leaves the sink
// with a clean prefix of the stream.
func (g *Generator) Run(ctx context.Context, sink Sink) error {
	count := g.Count()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation canceled after %d records: %w", i, err)
		}

		rec, err := g.Record()
		if err != nil {
			return fmt.Errorf("generate record %d: %w", i+1, err)
		}
		if err := sink.Write(ctx, rec); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}

		g.meter.Mark(1)
		if g.config.Verbose && (i+1)%1000 == 0 {
			log.Printf("generated %d/%d records (%.0f/s)", i+1, count, g.meter.RateMean())
		}
	}

	if g.config.Verbose {
		log.Printf("generated %d records (%.0f/s)", count, g.meter.RateMean())
	}
	return nil
}
