// config.go - Configuration management for the vector generator
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	hex "github.com/tmthrgd/go-hex"

	"sapling/internal/sapling"
)

// Config represents the application configuration
type Config struct {
	// Output
	OutputPath string `json:"output_path"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Performance
	MaxConcurrency int `json:"max_concurrency"`

	// Parameters
	PedersenGenerators int `json:"pedersen_generators"`

	// Inputs
	Cases []Case `json:"cases"`
}

// Case is one set of inputs. Scalars are 32-byte big-endian hex strings.
type Case struct {
	Name        string   `json:"name"`
	Ask         string   `json:"ask"`
	Rsk         string   `json:"rsk"`
	Diversifier string   `json:"diversifier"`
	Value       uint64   `json:"value"`
	Rcm         string   `json:"rcm"`
	Rcv         string   `json:"rcv"`
	Positions   []uint64 `json:"positions"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OutputPath:         "vectors.json",
		LogLevel:           "info",
		LogFile:            "",
		MaxConcurrency:     4,
		PedersenGenerators: 5,
		Cases: []Case{
			{
				Name:        "default",
				Ask:         "000123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd",
				Rsk:         "0000fedcba9876543210fedcba9876543210fedcba9876543210fedcba987654",
				Diversifier: "0000000000000000000000",
				Value:       1000,
				Rcm:         "0000abcdef0123456789abcdef0123456789abcdef0123456789abcdef012345",
				Rcv:         "0000000000000000000000000000000000000000000000000000000123456789",
				Positions:   []uint64{0, 1, 42},
			},
			{
				Name:        "no-base",
				Ask:         "000123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd",
				Rsk:         "0000fedcba9876543210fedcba9876543210fedcba9876543210fedcba987654",
				Diversifier: "0100000000000000000000",
				Value:       1000,
				Rcm:         "0000abcdef0123456789abcdef0123456789abcdef0123456789abcdef012345",
				Rcv:         "0000000000000000000000000000000000000000000000000000000000000001",
				Positions:   []uint64{0},
			},
		},
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig(configPath string) (*Config, error) {
	// Try to load from file
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		var config Config
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}

		return &config, nil
	}

	// Create default config and save it
	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config, configPath string) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive")
	}
	if c.PedersenGenerators <= 0 {
		return fmt.Errorf("pedersen_generators must be positive")
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	names := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("case %d: name is required", i)
		}
		if names[cs.Name] {
			return fmt.Errorf("case %q: duplicate name", cs.Name)
		}
		names[cs.Name] = true
		d, err := hex.DecodeString(cs.Diversifier)
		if err != nil {
			return fmt.Errorf("case %q: diversifier: %w", cs.Name, err)
		}
		if len(d) != sapling.DiversifierLen {
			return fmt.Errorf("case %q: diversifier must be %d bytes", cs.Name, sapling.DiversifierLen)
		}
	}
	return nil
}
