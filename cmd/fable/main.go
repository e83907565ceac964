// Package main provides a CLI for generating deterministic fake-data
// fixtures, either as JSON lines or into a SQLite or BoltDB file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fablegen/fable/internal/config"
	"github.com/fablegen/fable/internal/dataset"
	"github.com/fablegen/fable/internal/generator"
	"github.com/fablegen/fable/internal/generator/bolt"
	"github.com/fablegen/fable/internal/generator/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		list     bool
		out      string
		boltPath string
		verbose  bool
	)

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "dataset locale (see -list)")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "generation preset (see -list)")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of records to generate (0 = preset default)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "write records to a SQLite file instead of JSON lines")
	flag.StringVar(&boltPath, "bolt", "", "write records to a BoltDB file instead of JSON lines")
	flag.StringVar(&out, "out", "-", "JSON lines output path (- = stdout)")
	flag.BoolVar(&list, "list", false, "list available presets and locales")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()

	if list {
		fmt.Println("Available presets:")
		for _, preset := range generator.Presets {
			pc := generator.GetPresetConfig(preset)
			fmt.Printf("  %-8s - %d records\n", preset, pc.Count)
		}
		fmt.Println("\nAvailable locales:")
		for _, locale := range dataset.Locales() {
			fmt.Printf("  %s\n", locale)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "Interrupted, stopping...")
		cancel()
	}()

	if err := run(ctx, cfg, boltPath, out, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, boltPath, out string, verbose bool) error {
	gen, err := generator.New(generator.Config{
		Seed:    cfg.Seed,
		Locale:  cfg.Locale,
		Preset:  generator.Preset(cfg.Preset),
		Count:   cfg.Count,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	sink, err := openSink(cfg, boltPath, out, gen.Seed())
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := gen.Run(ctx, sink); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Generated %d records with seed %d\n", gen.Count(), gen.Seed())
	return nil
}

func openSink(cfg config.Config, boltPath, out string, seed int64) (generator.Sink, error) {
	if cfg.DBPath != "" {
		store, err := sqlite.Open(cfg.DBPath, seed)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	if boltPath != "" {
		store, err := bolt.Open(boltPath, seed)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	if out == "" || out == "-" {
		return generator.NewJSONSink(os.Stdout), nil
	}

	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", out, err)
	}
	return &fileSink{JSONSink: generator.NewJSONSink(f), f: f}, nil
}

// fileSink closes the backing file along with the JSON sink.
type fileSink struct {
	*generator.JSONSink
	f *os.File
}

func (s *fileSink) Close() error {
	if err := s.JSONSink.Close(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
