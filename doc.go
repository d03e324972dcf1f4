// SPDX-License-Identifier: MIT
// Package ticketrail is the rules and state engine of a ticket tracker for
// route-building board games.
//
// It turns a board (a list of colored tracks between cities) into graphs,
// measures tickets by shortest path, deals random tickets that avoid
// existing direct routes, plays a neutral opponent that follows one of
// several route-selection strategies, and sequences a whole session in a
// persisted state machine. Rendering, input and sound belong to the caller:
// the engine returns plain data plus a "whistle" cue.
//
// Packages:
//
//	routes/    — Route records, order-independent city-pair keys, validation
//	network/   — index adjacency (full and double-track graphs) and Snapshot
//	dijkstra/  — array-scan shortest paths with path reconstruction
//	bfs/       — level-aware breadth-first traversal with hooks
//	rng/       — seeded random streams and Fisher–Yates shuffles
//	tickets/   — random ticket draws with exclusions and a retry cap
//	strategy/  — Random, BFS, Walk, Fill, Increment, Star, Lines, LinesOpt + Queue
//	game/      — the session state machine, commands and save codec
//	store/     — save storage on an afero filesystem
//	mapdata/   — board payload decoding and the embedded USA/Europe boards
//	builder/   — synthetic boards for tests and the "generated" map
//	config/    — YAML settings of the CLI
//	logging/   — logrus formatter
//	cmd/ticketrail — line-oriented front end
//
// Quick example:
//
//	  Boston ══2══ New York ══2══ Washington
//
//	three cities, two double-track routes; the ticket Boston – Washington
//	is worth 4.
//
//	go install github.com/katalvlaran/ticketrail/cmd/ticketrail@latest
package ticketrail
