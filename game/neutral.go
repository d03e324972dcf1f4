// SPDX-License-Identifier: MIT
// File: neutral.go
// Role: neutral-player turns – strategy selection, budget checks, building.

package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ticketrail/rng"
	"github.com/katalvlaran/ticketrail/strategy"
)

// requestNeutralTicket plays one neutral turn, asking for a strategy first
// when no queue exists and none was given.
func (m *Machine) requestNeutralTicket(next *State, eff *effects, c RequestNeutralTicket) error {
	if err := claimPlayer(next, Neutral); err != nil {
		return err
	}
	if err := checkBudget(*next); err != nil {
		return err
	}
	if next.Queue == nil {
		if c.Strategy == nil {
			next.Phase = SelectNeighborAlgorithm
			return nil
		}
		if err := m.buildQueue(next, eff, *c.Strategy, c.Graph); err != nil {
			return err
		}
	}

	return m.neutralTurn(next, eff)
}

// selectStrategy builds the queue (random strategy for a nil Kind) and
// plays one turn.
func (m *Machine) selectStrategy(next *State, eff *effects, c SelectStrategy) error {
	kind := strategy.Pick(m.opts.Rand)
	if c.Kind != nil {
		kind = *c.Kind
	}
	if err := m.buildQueue(next, eff, kind, c.Graph); err != nil {
		return err
	}

	return m.neutralTurn(next, eff)
}

// buildQueue generates the queue on its own random stream per strategy.
func (m *Machine) buildQueue(next *State, eff *effects, kind strategy.Kind, graph strategy.GraphKind) error {
	q, err := strategy.NewQueue(kind, graph, eff.graph, rng.Derive(m.opts.Rand, uint64(kind)),
		strategy.WithCarBudget(next.Map.Cars))
	if err != nil {
		return err
	}
	next.Queue = q

	return nil
}

// checkBudget reports ErrOverBudget for an inconsistent to-build list and
// ErrNoResourcesLeft when both budgets are spent.
func checkBudget(s State) error {
	cars, stations := s.Remaining()
	if cars < 0 || stations < 0 {
		usedCars, usedStations := s.Usage()
		return fmt.Errorf("%w: cars %d/%d stations %d/%d",
			ErrOverBudget, usedCars, s.Map.Cars, usedStations, s.Map.Stations)
	}
	if cars == 0 && stations == 0 {
		return ErrNoResourcesLeft
	}

	return nil
}

// neutralTurn builds the first affordable queued route, or covers the first
// queued route with a station when no route is affordable. Once anything is
// built the turn may be skipped with probability SkipChance.
func (m *Machine) neutralTurn(next *State, eff *effects) error {
	if err := checkBudget(*next); err != nil {
		return err
	}
	if next.anyBuilt() && rng.Chance(m.opts.Rand, m.opts.SkipChance) {
		eff.notice = NoticeNoTicket
		next.Phase = PlayGame
		return nil
	}
	if next.Queue.Len() == 0 {
		return ErrNoBuildableRoute
	}

	cars, stations := next.Remaining()
	built := Built
	e, err := next.Queue.TakeNext(func(e strategy.Entry) bool { return e.Length <= cars })
	if errors.Is(err, strategy.ErrNoBuildableRoute) {
		if stations <= 0 {
			return fmt.Errorf("%w: %d cars left", ErrNoResourcesLeft, cars)
		}
		built = Station
		e, err = next.Queue.TakeNext(func(strategy.Entry) bool { return true })
	}
	if err != nil {
		return err
	}

	next.ToBuild = append(next.ToBuild, Entry{
		Pair:     e.Pair,
		Distance: e.Length,
		Built:    built,
		Owner:    Neutral,
	})
	next.Phase = SelectNeighborTickets
	next.Turn++

	return nil
}
