// SPDX-License-Identifier: MIT
// File: machine.go
// Role: Machine – command dispatch, commit-on-success, persistence, restore.

package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/routes"
)

// Snapshot is the read-only view handed to the UI after a command.
type Snapshot struct {
	// State is a deep copy of the machine state.
	State State

	// Cue and Notice are one-shot signals of the command just executed.
	Cue    Cue
	Notice Notice

	// RemainingCars and RemainingStations are the neutral player's budget.
	RemainingCars     int
	RemainingStations int

	// Cities lists the cities of the loaded board.
	Cities []routes.City
}

// Machine sequences a session. Use New.
type Machine struct {
	opts  Options
	state State
	graph *network.Snapshot
}

// effects collects what a command produced besides the next state.
type effects struct {
	graph  *network.Snapshot
	cue    Cue
	notice Notice
	clear  bool
}

// New returns a Machine in SelectMap.
func New(opts ...Option) *Machine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Machine{opts: o, state: newState()}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.state.Phase
}

// Graph returns the derived graphs of the loaded board (nil before LoadMap).
func (m *Machine) Graph() *network.Snapshot {
	return m.graph
}

// Snapshot returns the current view without one-shot signals.
func (m *Machine) Snapshot() Snapshot {
	return m.view(effects{graph: m.graph})
}

// Distance returns the shortest-path distance between two cities of the
// loaded board.
func (m *Machine) Distance(from, to routes.City) (int64, error) {
	if m.graph == nil {
		return dijkstra.Infinity, ErrNotLoaded
	}

	return dijkstra.Distance(m.graph.Full, from, to)
}

// Dispatch executes cmd. On success the new state is committed (and saved);
// on error nothing changes and the returned Snapshot is the current view.
func (m *Machine) Dispatch(cmd Command) (Snapshot, error) {
	if cmd == nil {
		return m.Snapshot(), fmt.Errorf("%w: nil command", ErrInvalidTransition)
	}
	from := m.state.Phase
	log := m.opts.Logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"from":    from.String(),
		"session": m.state.Session.String(),
	})

	if !allowedIn(cmd, from) {
		err := fmt.Errorf("%w: %s in %s", ErrInvalidTransition, cmd.Name(), from)
		log.WithError(err).Warn("rejected")
		return m.Snapshot(), err
	}

	next := m.state.clone()
	eff := effects{graph: m.graph}
	if err := m.apply(&next, &eff, cmd); err != nil {
		log.WithError(err).Info("command failed")
		return m.Snapshot(), err
	}
	if err := m.persist(next, cmd, eff); err != nil {
		log.WithError(err).Error("save failed")
		return m.Snapshot(), err
	}

	m.state = next
	m.graph = eff.graph
	log.WithFields(logrus.Fields{
		"to":      next.Phase.String(),
		"session": next.Session.String(),
	}).Info("transition")

	return m.view(eff), nil
}

// apply routes cmd to its handler.
func (m *Machine) apply(next *State, eff *effects, cmd Command) error {
	switch c := cmd.(type) {
	case LoadMap:
		return m.loadMap(next, eff, c)
	case RequestNewTickets:
		return m.requestNewTickets(next, eff)
	case ToggleTicketKeep:
		return toggleTicketKeep(next, c.Index)
	case AcceptTickets:
		return acceptTickets(next)
	case ToggleBuild:
		return toggleBuild(next, eff, c.Index)
	case RequestNeutralTicket:
		return m.requestNeutralTicket(next, eff, c)
	case SelectStrategy:
		return m.selectStrategy(next, eff, c)
	case AckNeutralTicket:
		next.Phase = PlayGame
		return nil
	case Reset:
		*next = newState()
		eff.graph = nil
		eff.clear = true
		return nil
	}

	return fmt.Errorf("%w: unsupported command %T", ErrInvalidTransition, cmd)
}

// persist writes next to the store. LoadMap is never saved; Reset clears.
func (m *Machine) persist(next State, cmd Command, eff effects) error {
	if m.opts.Store == nil {
		return nil
	}
	if eff.clear {
		if err := m.opts.Store.Clear(); err != nil {
			return fmt.Errorf("game: clear save: %w", err)
		}
		return nil
	}
	if _, ok := cmd.(LoadMap); ok {
		return nil
	}
	blob, err := Encode(next)
	if err != nil {
		return err
	}
	if err = m.opts.Store.Save(blob); err != nil {
		return fmt.Errorf("game: save: %w", err)
	}

	return nil
}

// Restore loads the saved state. A save that cannot be used (other version,
// corrupt, inconsistent) is cleared and its error returned; the machine is
// left unchanged on any error.
func (m *Machine) Restore() error {
	if m.opts.Store == nil {
		return ErrNoStore
	}
	blob, err := m.opts.Store.Load()
	if err != nil {
		return fmt.Errorf("game: load save: %w", err)
	}

	st, graph, err := restoreState(blob)
	if err != nil {
		m.opts.Logger.WithError(err).Warn("discarding save")
		if cerr := m.opts.Store.Clear(); cerr != nil {
			return fmt.Errorf("%w (clear failed: %v)", err, cerr)
		}
		return err
	}

	m.state = st
	m.graph = graph
	m.opts.Logger.WithFields(logrus.Fields{
		"to":      st.Phase.String(),
		"session": st.Session.String(),
	}).Info("restored")

	return nil
}

// restoreState decodes blob and rebuilds the derived graphs.
func restoreState(blob []byte) (State, *network.Snapshot, error) {
	st, err := Decode(blob)
	if err != nil {
		return State{}, nil, err
	}
	if st.Phase < SelectMap || st.Phase > SelectNeighborTickets {
		return State{}, nil, fmt.Errorf("%w: phase %d", ErrCorruptSave, int(st.Phase))
	}
	if st.Phase == SelectMap {
		return newState(), nil, nil
	}
	if err = routes.Validate(st.Routes); err != nil {
		return State{}, nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	if err = st.Map.validate(); err != nil {
		return State{}, nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}

	return st, network.NewSnapshot(st.Routes), nil
}

// view builds the UI snapshot of the current state. The snapshot owns its
// slices.
func (m *Machine) view(eff effects) Snapshot {
	st := m.state.clone()
	if st.Routes != nil {
		st.Routes = append([]routes.Route(nil), st.Routes...)
	}
	cars, stations := st.Remaining()
	snap := Snapshot{
		State:             st,
		Cue:               eff.cue,
		Notice:            eff.notice,
		RemainingCars:     cars,
		RemainingStations: stations,
	}
	if m.graph != nil {
		snap.Cities = append([]routes.City(nil), m.graph.Cities...)
	}

	return snap
}
