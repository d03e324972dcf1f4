// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors of the state machine.

package game

import "errors"

var (
	// ErrInvalidTransition indicates a command that is not valid in the
	// current phase.
	ErrInvalidTransition = errors.New("game: command not allowed in this phase")

	// ErrIndexOutOfRange indicates a ticket or to-build index outside its list.
	ErrIndexOutOfRange = errors.New("game: index out of range")

	// ErrWrongPlayerType indicates a human command in a neutral session or
	// the other way round.
	ErrWrongPlayerType = errors.New("game: wrong player type")

	// ErrInvalidMapData indicates a malformed route list or map budget.
	ErrInvalidMapData = errors.New("game: invalid map data")

	// ErrNoTicketKept indicates AcceptTickets with no ticket marked kept.
	ErrNoTicketKept = errors.New("game: keep at least one ticket")

	// ErrNoResourcesLeft indicates that the neutral player has neither a car
	// for the next candidate nor a station.
	ErrNoResourcesLeft = errors.New("game: no cars or stations left")

	// ErrOverBudget indicates built routes using more cars or stations than
	// the map provides.
	ErrOverBudget = errors.New("game: resources used exceed the map budget")

	// ErrNoBuildableRoute indicates an exhausted neutral strategy queue.
	ErrNoBuildableRoute = errors.New("game: no buildable route left")

	// ErrInvalidSaveVersion indicates a save written by another schema version.
	ErrInvalidSaveVersion = errors.New("game: save version mismatch")

	// ErrCorruptSave indicates a save that cannot be decoded or is inconsistent.
	ErrCorruptSave = errors.New("game: corrupt save")

	// ErrNoStore indicates Restore on a machine without a Store.
	ErrNoStore = errors.New("game: no store configured")

	// ErrNotLoaded indicates a graph query before any map was loaded.
	ErrNotLoaded = errors.New("game: no map loaded")
)
