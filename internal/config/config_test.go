package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnaflow/internal/analysis"
	"dnaflow/internal/seqio"
	"dnaflow/internal/writers"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dnaflow.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("workers: 2\ncapacity: 16\nrevcomp: skip\n"), 0o644))

	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 16, cfg.Capacity)
	assert.Equal(t, "skip", cfg.RevComp)
	assert.Equal(t, "ATG", cfg.Motif, "absent keys keep their default")
	assert.True(t, cfg.Header)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	fn := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(fn, nil, 0o644))
	cfg, err = Load(fn)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("threads: 4\n"), 0o644))
	_, err := Load(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threads")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"negative capacity", func(c *Config) { c.Capacity = -3 }, "capacity"},
		{"empty motif", func(c *Config) { c.Motif = "" }, "motif"},
		{"bad policy", func(c *Config) { c.RevComp = "drop" }, "revcomp"},
		{"bad input", func(c *Config) { c.InputFormat = "genbank" }, "input_format"},
		{"bad output", func(c *Config) { c.Output = "xml" }, "output"},
		{"exit code range", func(c *Config) { c.NoMatchExitCode = 300 }, "no_match_exit_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

// The schema enums must accept everything the packages accept.
func TestSchemaMatchesPackages(t *testing.T) {
	for _, p := range analysis.Policies {
		cfg := Default()
		cfg.RevComp = string(p)
		assert.NoError(t, cfg.Validate(), "policy %s", p)
	}
	for _, f := range seqio.Formats {
		cfg := Default()
		cfg.InputFormat = f
		assert.NoError(t, cfg.Validate(), "input format %s", f)
	}
	for _, f := range writers.Formats() {
		cfg := Default()
		cfg.Output = f
		assert.NoError(t, cfg.Validate(), "output format %s", f)
	}
	assert.True(t, strings.Contains(schema, "#Config"))
}
