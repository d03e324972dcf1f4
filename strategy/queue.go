// SPDX-License-Identifier: MIT
// File: queue.go
// Role: Queue – the mutable list of candidates consumed turn by turn.

package strategy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ticketrail/network"
)

// Queue is the neutral player's remaining candidates, in strategy order.
// The zero Queue is empty.
type Queue struct {
	Kind    Kind      `json:"kind"`
	Graph   GraphKind `json:"graph"`
	Entries []Entry   `json:"entries"`
}

// NewQueue runs strategy kind over the selected graph of s.
func NewQueue(kind Kind, graph GraphKind, s *network.Snapshot, r *rand.Rand, opts ...Option) (*Queue, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	var g *network.Network
	switch graph {
	case Restricted:
		g = s.Restricted
	case Full:
		g = s.Full
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGraph, int(graph))
	}
	entries, err := Generate(kind, g, r, opts...)
	if err != nil {
		return nil, err
	}

	return &Queue{Kind: kind, Graph: graph, Entries: entries}, nil
}

// Len returns the number of remaining entries.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}

	return len(q.Entries)
}

// Peek returns the first entry without removing it.
func (q *Queue) Peek() (Entry, bool) {
	if q.Len() == 0 {
		return Entry{}, false
	}

	return q.Entries[0], true
}

// TakeNext removes and returns the first entry, in list order, for which
// pred holds. ErrNoBuildableRoute is returned when none does.
//
// Complexity: O(len) predicate calls.
func (q *Queue) TakeNext(pred func(Entry) bool) (Entry, error) {
	if q.Len() == 0 {
		return Entry{}, fmt.Errorf("%w: queue is empty", ErrNoBuildableRoute)
	}
	for i, e := range q.Entries {
		if !pred(e) {
			continue
		}
		q.Entries = append(q.Entries[:i:i], q.Entries[i+1:]...)
		return e, nil
	}

	return Entry{}, fmt.Errorf("%w: none of %d candidates fits", ErrNoBuildableRoute, len(q.Entries))
}

// Clone returns a deep copy of q (nil stays nil).
func (q *Queue) Clone() *Queue {
	if q == nil {
		return nil
	}
	c := *q
	c.Entries = append([]Entry(nil), q.Entries...)

	return &c
}
