// SPDX-License-Identifier: MIT
// Package strategy decides in which order the neutral player builds routes.
//
// A strategy turns one graph (normally the restricted double-track graph,
// optionally the full graph) into an ordered list of Entries, each a city
// pair with its track length. The game wraps that list in a Queue and
// consumes it one turn at a time with TakeNext, which returns the FIRST
// entry in list order satisfying the caller's budget predicate.
//
// Strategies:
//
//	Random    – every key, uniformly shuffled.
//	BFS       – breadth-first levels from random roots, shuffled per level.
//	Walk      – worm-like chains grown from a head and a tail city.
//	Fill      – edges ordered by their distance from one random start city.
//	Increment – shortest tracks first, shuffled within each length.
//	Star      – city by city in random order, all incident tracks at once.
//	Lines     – edges along shortest paths between random city pairs.
//	LinesOpt  – Lines on a private copy where claimed track costs nothing.
//
// Every output holds each pair key at most once and only keys of the graph
// it ran on. All randomness comes from the injected *rand.Rand, so a fixed
// seed reproduces the same list.
//
// Lines and LinesOpt draw both ends among cities of one connected component
// that have a track. They stop when the accumulated track length exceeds
// LineBudgetFactor × the car budget (WithCarBudget), when every track is
// taken, or after a number of draws that added nothing (WithAttemptCap;
// default: number of distinct tracks).
package strategy
