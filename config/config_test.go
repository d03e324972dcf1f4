// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/config"
	"github.com/katalvlaran/ticketrail/strategy"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Nil(t, c.StrategyKind())
	assert.Equal(t, strategy.Restricted, c.GraphKind())
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ticketrail.yaml", []byte(`
map: generated
seed: 42
strategy: LinesOpt
graph: full
logLevel: debug
generated:
  cities: 20
  doubleProb: 0.25
`), 0o644))

	c, err := config.Load(fs, "ticketrail.yaml")
	require.NoError(t, err)
	assert.Equal(t, "generated", c.Map)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 20, c.Generated.Cities)
	assert.Equal(t, 0.25, c.Generated.DoubleProb)
	assert.Equal(t, 0.15, c.Generated.Density, "unset keys keep defaults")
	assert.Equal(t, "ticketrail-save.json", c.SavePath)
	require.NotNil(t, c.StrategyKind())
	assert.Equal(t, strategy.LinesOpt, *c.StrategyKind())
	assert.Equal(t, strategy.Full, c.GraphKind())

	_, err = config.Load(fs, "missing.yaml")
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key": "colour: red\n",
		"strategy":    "strategy: dfs\n",
		"graph":       "graph: sparse\n",
		"skip":        "skipChance: 2\n",
		"level":       "logLevel: chatty\n",
		"map":         "map: \"\"\n",
		"save":        "savePath: \"\"\n",
		"cities":      "map: generated\ngenerated:\n  cities: 2\n",
		"density":     "map: generated\ngenerated:\n  density: 1.5\n",
		"budget":      "map: generated\ngenerated:\n  cars: -1\n",
		"syntax":      "map: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
