// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/ticketrail/builder"
	"github.com/katalvlaran/ticketrail/config"
	"github.com/katalvlaran/ticketrail/game"
	"github.com/katalvlaran/ticketrail/mapdata"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/rng"
)

// Budget of boards read from a file.
const (
	fileBoardCars     = 45
	fileBoardStations = 3
)

// openMap opens a catalog board; tests replace it.
var openMap = mapdata.Open

// resolveBoard turns a board name into a LoadMap command: a catalog name,
// "generated", or a payload path.
func resolveBoard(name string, cfg config.Config, fs afero.Fs) (game.LoadMap, error) {
	if name == config.GeneratedMap {
		return generatedBoard(cfg)
	}
	info, rs, err := openMap(name)
	if err == nil {
		return game.LoadMap{
			Map:    game.MapInfo{Name: info.Name, Cars: info.Cars, Stations: info.Stations},
			Routes: rs,
		}, nil
	}
	if !errors.Is(err, mapdata.ErrUnknownMap) {
		return game.LoadMap{}, err
	}
	rs, err = mapdata.LoadFile(fs, name)
	if err != nil {
		return game.LoadMap{}, err
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	return game.LoadMap{
		Map:    game.MapInfo{Name: base, Cars: fileBoardCars, Stations: fileBoardStations},
		Routes: rs,
	}, nil
}

// generatedBoard builds a ring with random chords; both use the configured
// double-track probability.
func generatedBoard(cfg config.Config) (game.LoadMap, error) {
	g := cfg.Generated
	seed := cfg.Seed
	if seed == 0 {
		seed = rng.DefaultSeed
	}
	opts := []builder.BuilderOption{
		builder.WithRand(rng.FromSeed(seed)),
		builder.WithLengthFn(builder.UniformLength(1, 6)),
		builder.WithDoubleProb(g.DoubleProb),
	}
	ring, err := builder.Build(builder.Cycle(g.Cities), opts...)
	if err != nil {
		return game.LoadMap{}, err
	}
	chords, err := builder.Build(builder.RandomSparse(g.Cities, g.Density), opts...)
	if err != nil {
		return game.LoadMap{}, err
	}

	return game.LoadMap{
		Map:    game.MapInfo{Name: config.GeneratedMap, Cars: g.Cars, Stations: g.Stations},
		Routes: append(append([]routes.Route(nil), ring...), chords...),
	}, nil
}
