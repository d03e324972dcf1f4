// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/ticketrail/config"
	"github.com/katalvlaran/ticketrail/game"
	"github.com/katalvlaran/ticketrail/mapdata"
	"github.com/katalvlaran/ticketrail/rng"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/store"
	"github.com/katalvlaran/ticketrail/strategy"
	"github.com/katalvlaran/ticketrail/tickets"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

const helpText = `commands:
  maps                      list embedded boards
  load [board]              load a board (default from the configuration)
  tickets                   draw three tickets (human player)
  keep <n>                  toggle keeping offered ticket n
  accept                    take the kept tickets
  build <n>                 toggle the build state of route n
  neutral [strategy]        play a neutral turn
  strategy [name|random]    choose the neutral strategy
  ok                        acknowledge the neutral route
  distance <city>, <city>   shortest distance
  tracks <city>, <city>     parallel routes joining two cities
  state                     show the session
  reset                     abandon the session
  quit`

// session binds a Machine to a text stream.
type session struct {
	cfg config.Config
	fs  afero.Fs
	m   *game.Machine
	st  *store.File
	out io.Writer
	log logrus.FieldLogger
}

func newSession(cfg config.Config, fs afero.Fs, st *store.File, log logrus.FieldLogger, out io.Writer) *session {
	var r *rand.Rand
	if cfg.Seed == 0 {
		r = rng.FromClock()
	} else {
		r = rng.FromSeed(cfg.Seed)
	}
	m := game.New(
		game.WithRand(r),
		game.WithStore(st),
		game.WithLogger(log),
		game.WithSkipChance(cfg.SkipChance),
	)

	return &session{cfg: cfg, fs: fs, m: m, st: st, out: out, log: log}
}

// run restores any save and executes commands until EOF or quit.
func (s *session) run(in io.Reader) error {
	saved, err := s.st.Exists()
	if err != nil {
		s.log.WithError(err).Warn("cannot check for a save")
	}
	if saved {
		if err = s.m.Restore(); err != nil {
			fmt.Fprintf(s.out, "save discarded: %v\n", err)
		} else {
			fmt.Fprintln(s.out, "resumed saved session")
		}
	}
	s.render(s.m.Snapshot())

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := s.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	return sc.Err()
}

// exec runs one command line.
func (s *session) exec(line string) error {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	var cmd game.Command
	switch strings.ToLower(verb) {
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
		return nil
	case "quit", "exit":
		return errQuit
	case "maps":
		for _, info := range mapdata.Catalog() {
			fmt.Fprintf(s.out, "%-10s %-8s cars=%d stations=%d\n", info.Name, info.Title, info.Cars, info.Stations)
		}
		fmt.Fprintf(s.out, "%-10s synthetic board\n", config.GeneratedMap)
		return nil
	case "state":
		s.render(s.m.Snapshot())
		return nil
	case "distance":
		return s.distance(arg)
	case "tracks":
		return s.tracks(arg)
	case "load":
		name := arg
		if name == "" {
			name = s.cfg.Map
		}
		lm, err := resolveBoard(name, s.cfg, s.fs)
		if err != nil {
			return err
		}
		cmd = lm
	case "tickets":
		cmd = game.RequestNewTickets{}
	case "keep":
		i, err := index(arg)
		if err != nil {
			return err
		}
		cmd = game.ToggleTicketKeep{Index: i}
	case "accept":
		cmd = game.AcceptTickets{}
	case "build":
		i, err := index(arg)
		if err != nil {
			return err
		}
		cmd = game.ToggleBuild{Index: i}
	case "neutral":
		kind, err := s.kind(arg)
		if err != nil {
			return err
		}
		cmd = game.RequestNeutralTicket{Strategy: kind, Graph: s.cfg.GraphKind()}
	case "strategy":
		var kind *strategy.Kind
		if arg != "" && !strings.EqualFold(arg, "random") {
			k, err := strategy.ParseKind(arg)
			if err != nil {
				return err
			}
			kind = &k
		}
		cmd = game.SelectStrategy{Kind: kind, Graph: s.cfg.GraphKind()}
	case "ok":
		cmd = game.AckNeutralTicket{}
	case "reset":
		cmd = game.Reset{}
	default:
		return fmt.Errorf("unknown command %q (try help)", verb)
	}

	snap, err := s.m.Dispatch(cmd)
	if err != nil {
		return err
	}
	s.render(snap)

	return nil
}

// kind resolves the strategy of a neutral request: the argument, else the
// configured one.
func (s *session) kind(arg string) (*strategy.Kind, error) {
	if arg == "" {
		return s.cfg.StrategyKind(), nil
	}
	k, err := strategy.ParseKind(arg)
	if err != nil {
		return nil, err
	}

	return &k, nil
}

func (s *session) distance(arg string) error {
	from, to, ok := strings.Cut(arg, ",")
	if !ok {
		return errors.New("usage: distance <city>, <city>")
	}
	d, err := s.m.Distance(strings.TrimSpace(from), strings.TrimSpace(to))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s – %s: %d\n", strings.TrimSpace(from), strings.TrimSpace(to), d)

	return nil
}

// tracks reports how many routes join two cities and the shortest one.
func (s *session) tracks(arg string) error {
	from, to, ok := strings.Cut(arg, ",")
	if !ok {
		return errors.New("usage: tracks <city>, <city>")
	}
	rs := s.m.Snapshot().State.Routes
	p := routes.NewPair(routes.City(strings.TrimSpace(from)), routes.City(strings.TrimSpace(to)))
	n := routes.Count(rs)[p]
	if n == 0 {
		return fmt.Errorf("no route joins %s", p)
	}
	fmt.Fprintf(s.out, "%s: %d route(s), shortest %d\n", p, n, routes.ShortestLength(rs, p))

	return nil
}

// index parses a 1-based list position.
func index(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", arg)
	}

	return n - 1, nil
}

// render prints the parts of the snapshot relevant to its phase.
func (s *session) render(snap game.Snapshot) {
	st := snap.State
	if snap.Cue == game.CueWhistle {
		fmt.Fprintln(s.out, "*whistle*")
	}
	if snap.Notice != game.NoticeNone {
		fmt.Fprintln(s.out, snap.Notice)
	}
	fmt.Fprintf(s.out, "[%s]", st.Phase)
	if st.Map.Name != "" {
		fmt.Fprintf(s.out, " %s", st.Map.Name)
	}
	if st.Player == game.Neutral {
		fmt.Fprintf(s.out, " cars=%d stations=%d", snap.RemainingCars, snap.RemainingStations)
	}
	fmt.Fprintln(s.out)

	for i, t := range st.NewTickets {
		fmt.Fprintf(s.out, "  offer %d: %-30s %s\n", i+1, t, keepMark(t.Keep))
	}
	for i, e := range st.ToBuild {
		fmt.Fprintf(s.out, "  route %d: %-30s %d %s\n", i+1, e.Pair, e.Distance, e.Built)
	}
	if st.Phase == game.SelectNeighborAlgorithm {
		names := make([]string, 0, len(strategy.Kinds()))
		for _, k := range strategy.Kinds() {
			names = append(names, k.String())
		}
		fmt.Fprintf(s.out, "  choose: strategy %s | random\n", strings.Join(names, " | "))
	}
}

func keepMark(k tickets.Keep) string {
	switch k {
	case tickets.KeepYes:
		return "[x]"
	case tickets.KeepNo:
		return "[ ]"
	default:
		return "[?]"
	}
}
