// SPDX-License-Identifier: MIT
// File: commands.go
// Role: typed transition requests accepted by Machine.Dispatch.

package game

import (
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/strategy"
)

// Command is one transition request. The set of commands is closed.
type Command interface {
	// Name identifies the command in logs and errors.
	Name() string
	// phases lists where the command is valid; nil means everywhere.
	phases() []Phase
}

// LoadMap installs a board and starts a new session.
type LoadMap struct {
	Map    MapInfo
	Routes []routes.Route
}

// RequestNewTickets draws three fresh tickets for the human player.
type RequestNewTickets struct{}

// ToggleTicketKeep flips the keep flag of offered ticket Index.
type ToggleTicketKeep struct{ Index int }

// AcceptTickets moves the kept offered tickets to the to-build list.
type AcceptTickets struct{}

// ToggleBuild advances the build state of to-build entry Index.
type ToggleBuild struct{ Index int }

// RequestNeutralTicket plays one neutral turn. Without a queue and without
// Strategy the machine asks for a strategy first.
type RequestNeutralTicket struct {
	Strategy *strategy.Kind
	Graph    strategy.GraphKind
}

// SelectStrategy builds the neutral queue and plays one turn. A nil Kind
// picks a random strategy.
type SelectStrategy struct {
	Kind  *strategy.Kind
	Graph strategy.GraphKind
}

// AckNeutralTicket returns to PlayGame after a neutral turn, or dismisses
// the strategy selection.
type AckNeutralTicket struct{}

// Reset abandons the session and clears the save.
type Reset struct{}

func (LoadMap) Name() string              { return "LoadMap" }
func (RequestNewTickets) Name() string    { return "RequestNewTickets" }
func (ToggleTicketKeep) Name() string     { return "ToggleTicketKeep" }
func (AcceptTickets) Name() string        { return "AcceptTickets" }
func (ToggleBuild) Name() string          { return "ToggleBuild" }
func (RequestNeutralTicket) Name() string { return "RequestNeutralTicket" }
func (SelectStrategy) Name() string       { return "SelectStrategy" }
func (AckNeutralTicket) Name() string     { return "AckNeutralTicket" }
func (Reset) Name() string                { return "Reset" }

func (LoadMap) phases() []Phase              { return []Phase{SelectMap} }
func (RequestNewTickets) phases() []Phase    { return []Phase{FirstStep, PlayGame} }
func (ToggleTicketKeep) phases() []Phase     { return []Phase{SelectTickets} }
func (AcceptTickets) phases() []Phase        { return []Phase{SelectTickets} }
func (ToggleBuild) phases() []Phase          { return []Phase{PlayGame, SelectNeighborTickets} }
func (RequestNeutralTicket) phases() []Phase { return []Phase{FirstStep, PlayGame} }
func (SelectStrategy) phases() []Phase       { return []Phase{SelectNeighborAlgorithm} }
func (AckNeutralTicket) phases() []Phase {
	return []Phase{SelectNeighborTickets, SelectNeighborAlgorithm}
}
func (Reset) phases() []Phase { return nil }

// allowedIn reports whether c is valid in phase p.
func allowedIn(c Command, p Phase) bool {
	ps := c.phases()
	if ps == nil {
		return true
	}
	for _, q := range ps {
		if q == p {
			return true
		}
	}

	return false
}
