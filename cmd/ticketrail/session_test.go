// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/config"
	"github.com/katalvlaran/ticketrail/mapdata"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/store"
)

func testSession(t *testing.T, cfg config.Config, st *store.File) (*session, *bytes.Buffer) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	if cfg.Seed == 0 {
		cfg.Seed = 7
	}

	return newSession(cfg, afero.NewMemMapFs(), st, log, &out), &out
}

func TestSession_HumanRound(t *testing.T) {
	s, out := testSession(t, config.Default(), store.NewMemory())
	script := strings.Join([]string{
		"maps", "load usa", "distance Boston, Miami", "tickets",
		"keep 1", "keep 3", "accept", "build 1", "bogus", "quit", "state",
	}, "\n")
	require.NoError(t, s.run(strings.NewReader(script)))

	text := out.String()
	assert.Contains(t, text, "eu")
	assert.Contains(t, text, "[FirstStep] usa")
	assert.Contains(t, text, "Boston – Miami: 12")
	assert.Contains(t, text, "[SelectTickets] usa")
	assert.Contains(t, text, "route 2:")
	assert.Contains(t, text, "*whistle*")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.Contains(t, text, "[PlayGame] usa")
}

func TestSession_NeutralAndRestore(t *testing.T) {
	st := store.NewMemory()
	cfg := config.Default()
	cfg.Map = config.GeneratedMap
	cfg.SkipChance = 0

	s, out := testSession(t, cfg, st)
	require.NoError(t, s.run(strings.NewReader("load\nneutral\nstrategy fill\nok\n")))
	assert.Contains(t, out.String(), "choose: strategy random | bfs")
	assert.Contains(t, out.String(), "[SelectNeighborTickets] generated cars=")

	again, out2 := testSession(t, cfg, st)
	require.NoError(t, again.run(strings.NewReader("state\n")))
	assert.Contains(t, out2.String(), "resumed saved session")
	assert.Contains(t, out2.String(), "[PlayGame] generated cars=")
	assert.Contains(t, out2.String(), "route 1:")
}

func TestSession_Errors(t *testing.T) {
	s, out := testSession(t, config.Default(), store.NewMemory())
	require.NoError(t, s.run(strings.NewReader("accept\nload nowhere.json\nload usa\nkeep x\ndistance Boston\nstrategy dfs\n")))
	text := out.String()
	assert.Contains(t, text, "error: game: command not allowed in this phase")
	assert.Contains(t, text, "error: mapdata: read nowhere.json")
	assert.Contains(t, text, `error: expected a number, got "x"`)
	assert.Contains(t, text, "error: usage: distance")
	assert.Contains(t, text, "error: strategy: unknown strategy")
}

func TestResolveBoard_CatalogFailureIsReported(t *testing.T) {
	broken := fmt.Errorf("%w: gazetteer", mapdata.ErrInvalidMapData)
	openMap = func(string) (mapdata.Info, []routes.Route, error) {
		return mapdata.Info{}, nil, broken
	}
	t.Cleanup(func() { openMap = mapdata.Open })

	_, err := resolveBoard("eu", config.Default(), afero.NewMemMapFs())
	require.ErrorIs(t, err, mapdata.ErrInvalidMapData)
	assert.NotContains(t, err.Error(), "file does not exist")
}

func TestResolveBoard_FileFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "boards/mini.json",
		[]byte(`[["A","B",2,"red"],["B","C",3,"blue"]]`), 0o644))

	lm, err := resolveBoard("boards/mini.json", config.Default(), fs)
	require.NoError(t, err)
	assert.Equal(t, "mini", lm.Map.Name)
	assert.Len(t, lm.Routes, 2)

	lm, err = resolveBoard("usa", config.Default(), fs)
	require.NoError(t, err)
	assert.Equal(t, "usa", lm.Map.Name)
}

func TestSession_Tracks(t *testing.T) {
	st := store.NewMemory()
	s, out := testSession(t, config.Default(), st)
	require.NoError(t, s.run(strings.NewReader("load usa\ntracks San Francisco, Portland\ntracks Boston, Miami\ntracks Boston\n")))

	text := out.String()
	assert.Contains(t, text, "Portland – San Francisco: 2 route(s), shortest 5")
	assert.Contains(t, text, "error: no route joins Boston – Miami")
	assert.Contains(t, text, "error: usage: tracks")
	assert.NotContains(t, text, "resumed saved session")
}
