// SPDX-License-Identifier: MIT
// Package game is the state machine of a ticket-tracker session.
//
// A Machine owns one State aggregate (phase, player type, map, tickets,
// neutral queue, to-build list) plus the graph Snapshot derived from the
// loaded map. The UI layer drives it exclusively through typed commands:
//
//	snap, err := m.Dispatch(game.RequestNewTickets{})
//
// Each command is valid in a fixed set of phases:
//
//	SelectMap ──LoadMap──▶ FirstStep ──RequestNewTickets──▶ SelectTickets
//	                          │                                 │ AcceptTickets
//	                          │ RequestNeutralTicket            ▼
//	                          ├──────────────────────────────▶ PlayGame ◀─┐
//	                          ▼                                 │          │
//	              SelectNeighborAlgorithm ──SelectStrategy──▶ SelectNeighborTickets
//	                                                      AckNeutralTicket ┘
//
// Every command runs on a private copy of the state; the copy replaces the
// current state only if the command and the following save both succeed, so
// a failed command never leaves partial changes behind. Errors are
// sentinels: expected game situations (ErrNoResourcesLeft,
// ErrNoBuildableRoute, ErrOverBudget, tickets.ErrNotEnoughTickets,
// ErrNoTicketKept) and misuse (ErrInvalidTransition, ErrIndexOutOfRange,
// ErrWrongPlayerType).
//
// The first ticket request fixes the player type of the session: a human
// draws tickets, the neutral player follows a strategy queue and builds
// one route per turn within the car and station budget of the map.
//
// Persistence: after every successful command except LoadMap the whole State
// is encoded (Encode, stamped with SaveVersion) and written to the Store.
// Restore reads it back; a save with another version is discarded.
//
// Randomness (tickets, strategy choice, skipped turns, session ids) comes
// from one injected *rand.Rand, so a fixed seed replays a session exactly.
// A Machine is not safe for concurrent use.
package game
