package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sapvectors.json")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	require.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config, reloaded)
}

func TestValidateRejects(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"zero concurrency": func(c *Config) { c.MaxConcurrency = 0 },
		"zero generators":  func(c *Config) { c.PedersenGenerators = 0 },
		"no cases":         func(c *Config) { c.Cases = nil },
		"empty name":       func(c *Config) { c.Cases[0].Name = "" },
		"duplicate name":   func(c *Config) { c.Cases[1].Name = c.Cases[0].Name },
		"bad hex":          func(c *Config) { c.Cases[0].Diversifier = "zz" },
		"short diversifier": func(c *Config) {
			c.Cases[0].Diversifier = "00"
		},
	} {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			mutate(config)
			require.Error(t, config.Validate())
		})
	}
}
