// SPDX-License-Identifier: MIT
// File: state.go
// Role: State aggregate, to-build entries, map info and budget accounting.

package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/strategy"
	"github.com/katalvlaran/ticketrail/tickets"
)

// MapInfo names a board and its neutral-player budget.
type MapInfo struct {
	Name     string `json:"name"`
	Cars     int    `json:"cars"`
	Stations int    `json:"stations"`
}

// Entry is one to-build route: a kept ticket or a neutral-player route.
type Entry struct {
	Pair     routes.Pair `json:"pair"`
	Distance int         `json:"distance"`
	Built    BuildState  `json:"built"`
	Owner    PlayerType  `json:"owner"`
}

// State is everything a session persists.
type State struct {
	Version    int              `json:"version"`
	Phase      Phase            `json:"phase"`
	Player     PlayerType       `json:"player"`
	Map        MapInfo          `json:"map"`
	Routes     []routes.Route   `json:"routes"`
	NewTickets []tickets.Ticket `json:"newTickets"`
	Queue      *strategy.Queue  `json:"queue"`
	ToBuild    []Entry          `json:"toBuild"`
	Session    uuid.UUID        `json:"session"`
	Turn       int              `json:"turn"`
}

// newState returns the state of a fresh machine.
func newState() State {
	return State{Version: SaveVersion, Phase: SelectMap}
}

// clone returns a deep copy of s. Routes are shared: they are replaced
// validate rejects a negative car or station budget.
func (mi MapInfo) validate() error {
	if mi.Cars < 0 || mi.Stations < 0 {
		return fmt.Errorf("negative budget cars=%d stations=%d", mi.Cars, mi.Stations)
	}

	return nil
}

// wholesale on load and never modified in place.
func (s State) clone() State {
	c := s
	if s.NewTickets != nil {
		c.NewTickets = make([]tickets.Ticket, len(s.NewTickets))
		copy(c.NewTickets, s.NewTickets)
	}
	if s.ToBuild != nil {
		c.ToBuild = make([]Entry, len(s.ToBuild))
		copy(c.ToBuild, s.ToBuild)
	}
	c.Queue = s.Queue.Clone()

	return c
}

// Usage sums the neutral player's built cars and stations.
func (s State) Usage() (cars, stations int) {
	for _, e := range s.ToBuild {
		switch {
		case e.Built == Built && e.Owner == Neutral:
			cars += e.Distance
		case e.Built == Station:
			stations++
		}
	}

	return cars, stations
}

// Remaining returns the cars and stations still available to the neutral
// player. Values may be negative for an inconsistent state.
func (s State) Remaining() (cars, stations int) {
	usedCars, usedStations := s.Usage()

	return s.Map.Cars - usedCars, s.Map.Stations - usedStations
}

// anyBuilt reports whether any to-build entry is built or covered by a
// station.
func (s State) anyBuilt() bool {
	for _, e := range s.ToBuild {
		if e.Built != NotBuilt {
			return true
		}
	}

	return false
}

// committed returns the pair keys already on the to-build list.
func (s State) committed() []routes.Pair {
	out := make([]routes.Pair, len(s.ToBuild))
	for i, e := range s.ToBuild {
		out[i] = e.Pair
	}

	return out
}
