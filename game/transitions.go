// SPDX-License-Identifier: MIT
// File: transitions.go
// Role: handlers of the map, ticket and build commands.

package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/tickets"
)

// loadMap validates the board, derives its graphs and opens a session.
func (m *Machine) loadMap(next *State, eff *effects, c LoadMap) error {
	if err := routes.Validate(c.Routes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMapData, err)
	}
	if err := c.Map.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMapData, err)
	}
	session, err := uuid.NewRandomFromReader(m.opts.Rand)
	if err != nil {
		return fmt.Errorf("game: session id: %w", err)
	}

	rs := routes.Normalize(c.Routes)
	*next = newState()
	next.Phase = FirstStep
	next.Map = c.Map
	next.Routes = rs
	next.Session = session
	eff.graph = network.NewSnapshot(rs)

	return nil
}

// claimPlayer fixes the player type on first use and rejects the other one.
func claimPlayer(next *State, want PlayerType) error {
	switch next.Player {
	case PlayerUnset:
		next.Player = want
		return nil
	case want:
		return nil
	}

	return fmt.Errorf("%w: session plays %s", ErrWrongPlayerType, next.Player)
}

// requestNewTickets offers TicketOffer tickets avoiding every direct route
// and every committed pair.
func (m *Machine) requestNewTickets(next *State, eff *effects) error {
	if err := claimPlayer(next, Human); err != nil {
		return err
	}
	gen := tickets.NewGenerator(eff.graph.Full, m.opts.Rand,
		tickets.WithMaxAttempts(m.opts.TicketAttempts))
	avoid := routes.NewPairSet(eff.graph.Neighbors, next.committed())
	offer, err := gen.Draw(TicketOffer, avoid)
	if err != nil {
		return err
	}
	next.NewTickets = offer
	next.Phase = SelectTickets

	return nil
}

func toggleTicketKeep(next *State, i int) error {
	if i < 0 || i >= len(next.NewTickets) {
		return fmt.Errorf("%w: ticket %d of %d", ErrIndexOutOfRange, i, len(next.NewTickets))
	}
	next.NewTickets[i].Keep = next.NewTickets[i].Keep.Toggle()

	return nil
}

// acceptTickets commits the kept offers as unbuilt entries.
func acceptTickets(next *State) error {
	kept := 0
	for _, t := range next.NewTickets {
		if t.Keep == tickets.KeepYes {
			kept++
		}
	}
	if kept == 0 {
		return ErrNoTicketKept
	}
	for _, t := range next.NewTickets {
		if t.Keep != tickets.KeepYes {
			continue
		}
		next.ToBuild = append(next.ToBuild, Entry{
			Pair:     t.Pair,
			Distance: t.Distance,
			Built:    NotBuilt,
			Owner:    Human,
		})
	}
	next.NewTickets = nil
	next.Phase = PlayGame
	next.Turn++

	return nil
}

// toggleBuild cycles NotBuilt↔Built for human entries and
// NotBuilt→Built→Station→NotBuilt for neutral ones.
func toggleBuild(next *State, eff *effects, i int) error {
	if i < 0 || i >= len(next.ToBuild) {
		return fmt.Errorf("%w: entry %d of %d", ErrIndexOutOfRange, i, len(next.ToBuild))
	}
	e := &next.ToBuild[i]
	if e.Owner == Neutral {
		e.Built = (e.Built + 1) % 3
	} else if e.Built == Built {
		e.Built = NotBuilt
	} else {
		e.Built = Built
	}
	if e.Built == Built {
		eff.cue = CueWhistle
	}

	return nil
}
