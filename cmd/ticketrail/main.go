// SPDX-License-Identifier: MIT
// Command ticketrail is a line-oriented front end for the ticket tracker.
//
// Usage:
//
//	ticketrail [-config file] [-map name] [-seed n] [-log-level level]
//
// Commands are read from standard input, one per line; "help" lists them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/katalvlaran/ticketrail/config"
	"github.com/katalvlaran/ticketrail/logging"
	"github.com/katalvlaran/ticketrail/store"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ticketrail [-config file] [-map name] [-seed n] [-log-level level]")
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "YAML configuration file")
	mapName := flag.String("map", "", "board: usa, eu, generated, or a payload file")
	seed := flag.Int64("seed", 0, "random seed (0: from the clock)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *mapName != "" {
		cfg.Map = *mapName
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fs := afero.NewOsFs()
	sess := newSession(cfg, fs, store.New(fs, cfg.SavePath), log, os.Stdout)
	if err = sess.run(os.Stdin); err != nil && !errors.Is(err, errQuit) {
		log.WithError(err).Error("ticketrail stopped")
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(afero.NewOsFs(), path)
}
