// main.go - Test-vector generator for the shielded note core.
//
// Reads a JSON configuration listing input cases, evaluates key derivation,
// address derivation, value commitment, note commitment and nullifiers for
// each case, and writes the results as JSON.
//
// Usage:
//   sapvectors -config sapvectors.json [-out vectors.json]
//
// A missing configuration file is created with the default cases. An output
// path of "-" writes to stdout.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"sapling/internal/jubjub"
)

func main() {
	configPath := flag.String("config", "sapvectors.json", "path to the configuration file")
	outPath := flag.String("out", "", "output path, overrides output_path from the config")
	flag.Parse()

	if err := run(context.Background(), *configPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "sapvectors: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, outPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		config.OutputPath = outPath
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := NewLogger(config.LogLevel, config.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	start := time.Now()
	params, err := jubjub.NewParams(
		jubjub.WithLogger(logger.Logger),
		jubjub.WithPedersenGenerators(config.PedersenGenerators),
	)
	if err != nil {
		return fmt.Errorf("building parameters: %w", err)
	}
	logger.Info().Dur("elapsed", time.Since(start)).Msg("parameters ready")

	vectors, err := evaluateAll(ctx, config.Cases, params, config.MaxConcurrency)
	if err != nil {
		return err
	}

	if err := writeVectors(config.OutputPath, vectors); err != nil {
		return err
	}
	logger.Info().
		Int("cases", len(vectors)).
		Str("output", config.OutputPath).
		Dur("elapsed", time.Since(start)).
		Msg("vectors written")
	return nil
}

func writeVectors(path string, vectors []*Vector) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(vectors); err != nil {
		return fmt.Errorf("failed to encode vectors: %w", err)
	}
	return nil
}
