// Package config holds the run settings shared by every dnaflow command.
//
// Settings come from Default, are overlaid by an optional YAML file (Load),
// then by explicitly set command-line flags, and are finally checked by
// Validate against an embedded CUE schema.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of run settings. The json tags name the fields for
// the CUE schema; the yaml tags name them in config files.
type Config struct {
	Workers         int    `yaml:"workers" json:"workers"`   // 0 = all CPUs
	Capacity        int    `yaml:"capacity" json:"capacity"` // 0 = unbounded
	Motif           string `yaml:"motif" json:"motif"`
	RevComp         string `yaml:"revcomp" json:"revcomp"`
	InputFormat     string `yaml:"input_format" json:"input_format"`
	NamePrefix      string `yaml:"name_prefix" json:"name_prefix"`
	Output          string `yaml:"output" json:"output"`
	Sort            bool   `yaml:"sort" json:"sort"`
	Header          bool   `yaml:"header" json:"header"`
	NoMatchExitCode int    `yaml:"no_match_exit_code" json:"no_match_exit_code"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:     0,
		Capacity:    0,
		Motif:       "ATG",
		RevComp:     "mask",
		InputFormat: "lines",
		NamePrefix:  "DNA",
		Output:      "text",
		Header:      true,
	}
}

// Load reads a YAML file over Default. Unknown keys are an error; keys that
// are absent keep their default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
