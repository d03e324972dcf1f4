// SPDX-License-Identifier: MIT
// Package config loads the YAML settings of the ticketrail CLI.
//
// Example:
//
//	map: eu              # catalog name, "generated", or a payload file path
//	seed: 42             # 0 seeds from the clock
//	strategy: linesopt   # empty: ask on the first neutral turn
//	graph: restricted    # or full
//	savePath: ~/.ticketrail/save.json
//	logLevel: info
//	generated:
//	  cities: 20
//	  density: 0.15
//	  doubleProb: 0.4
//	  cars: 30
//	  stations: 2
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ticketrail/strategy"
)

// ErrInvalidConfig indicates a setting outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GeneratedMap is the name that selects a synthetic board.
const GeneratedMap = "generated"

const minGeneratedCities = 3

// Generated describes the synthetic board: a ring of Cities cities plus
// random chords with probability Density.
type Generated struct {
	Cities     int     `yaml:"cities"`
	Density    float64 `yaml:"density"`
	DoubleProb float64 `yaml:"doubleProb"`
	Cars       int     `yaml:"cars"`
	Stations   int     `yaml:"stations"`
}

// Config holds every CLI setting.
type Config struct {
	Map        string    `yaml:"map"`
	Generated  Generated `yaml:"generated"`
	Seed       int64     `yaml:"seed"`
	Strategy   string    `yaml:"strategy"`
	Graph      string    `yaml:"graph"`
	SkipChance float64   `yaml:"skipChance"`
	SavePath   string    `yaml:"savePath"`
	LogLevel   string    `yaml:"logLevel"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Map: "usa",
		Generated: Generated{
			Cities:     16,
			Density:    0.15,
			DoubleProb: 0.5,
			Cars:       30,
			Stations:   1,
		},
		Seed:       0,
		Strategy:   "",
		Graph:      "restricted",
		SkipChance: 0.2,
		SavePath:   "ticketrail-save.json",
		LogLevel:   "warn",
	}
}

// Load reads path from fs over Default and validates the result. Unknown
// keys are rejected.
func Load(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Map == "" {
		return fmt.Errorf("%w: map is empty", ErrInvalidConfig)
	}
	if c.Strategy != "" {
		if _, err := strategy.ParseKind(c.Strategy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := strategy.ParseGraphKind(c.Graph); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.SkipChance < 0 || c.SkipChance > 1 {
		return fmt.Errorf("%w: skipChance %.3f not in [0,1]", ErrInvalidConfig, c.SkipChance)
	}
	if c.SavePath == "" {
		return fmt.Errorf("%w: savePath is empty", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Map == GeneratedMap {
		return c.Generated.validate()
	}

	return nil
}

func (g Generated) validate() error {
	switch {
	case g.Cities < minGeneratedCities:
		return fmt.Errorf("%w: generated.cities %d < %d", ErrInvalidConfig, g.Cities, minGeneratedCities)
	case g.Density < 0 || g.Density > 1:
		return fmt.Errorf("%w: generated.density %.3f not in [0,1]", ErrInvalidConfig, g.Density)
	case g.DoubleProb < 0 || g.DoubleProb > 1:
		return fmt.Errorf("%w: generated.doubleProb %.3f not in [0,1]", ErrInvalidConfig, g.DoubleProb)
	case g.Cars < 0 || g.Stations < 0:
		return fmt.Errorf("%w: generated budget cars=%d stations=%d", ErrInvalidConfig, g.Cars, g.Stations)
	}

	return nil
}

// StrategyKind returns the configured strategy, or nil when unset.
func (c Config) StrategyKind() *strategy.Kind {
	if c.Strategy == "" {
		return nil
	}
	k, err := strategy.ParseKind(c.Strategy)
	if err != nil {
		return nil
	}

	return &k
}

// GraphKind returns the configured graph selector.
func (c Config) GraphKind() strategy.GraphKind {
	g, _ := strategy.ParseGraphKind(c.Graph)

	return g
}
