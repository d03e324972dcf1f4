// SPDX-License-Identifier: MIT
package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/routes"
)

// board: A–B(2), B–C(3) twice with different lengths, C–D(1), E isolated via
// a restricted-only view.
func board() []routes.Route {
	return []routes.Route{
		{From: "A", To: "B", Length: 2},
		{From: "B", To: "C", Length: 3},
		{From: "C", To: "B", Length: 4},
		{From: "D", To: "C", Length: 1},
		{From: "D", To: "E", Length: 5},
		{From: "E", To: "D", Length: 5},
	}
}

func TestBuild_FullKeepsParallelEdges(t *testing.T) {
	rs := board()
	n := network.Build(rs, routes.NeighborKeys(rs))

	require.Equal(t, 5, n.Len())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, n.Cities())
	assert.False(t, n.Collapsed())

	b, err := n.Index("B")
	require.NoError(t, err)
	c, err := n.Index("C")
	require.NoError(t, err)

	edges, err := n.Neighbors(b)
	require.NoError(t, err)
	assert.Equal(t, []network.Edge{{To: 0, Length: 2}, {To: c, Length: 3}, {To: c, Length: 4}}, edges)
	assert.Equal(t, 3, n.Degree(b))

	l, ok := n.Length(c, b)
	assert.True(t, ok)
	assert.Equal(t, 3, l)
}

func TestBuild_RestrictedCollapses(t *testing.T) {
	rs := board()
	n := network.Build(rs, routes.DoubleNeighborKeys(rs), network.WithCollapsedParallel())

	assert.True(t, n.Collapsed())
	// every city stays indexed even without edges
	assert.Equal(t, 5, n.Len())

	a, _ := n.Index("A")
	edges, err := n.Neighbors(a)
	require.NoError(t, err)
	assert.Empty(t, edges)

	b, _ := n.Index("B")
	edges, err = n.Neighbors(b)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 3, edges[0].Length)

	assert.Equal(t, []network.EdgeRef{{U: 1, V: 2, Length: 3}, {U: 3, V: 4, Length: 5}}, n.Edges())
}

func TestIndex_Unknown(t *testing.T) {
	n := network.Build(board(), nil)
	_, err := n.Index("Z")
	assert.ErrorIs(t, err, network.ErrUnknownCity)

	_, err = n.Neighbors(42)
	assert.ErrorIs(t, err, network.ErrBadIndex)
	assert.Equal(t, "", n.City(-1))
}

func TestEdges_UniqueMinimum(t *testing.T) {
	rs := board()
	n := network.Build(rs, routes.NeighborKeys(rs))
	edges := n.Edges()
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Less(t, e.U, e.V)
	}
	assert.Equal(t, routes.NewPair("B", "C"), n.Pair(edges[1]))
	assert.Equal(t, 3, edges[1].Length)
}

func TestClone_Independent(t *testing.T) {
	rs := board()
	n := network.Build(rs, routes.NeighborKeys(rs))
	clone := n.Clone()

	require.NoError(t, clone.SetLength(1, 2, 0))
	l, _ := clone.Length(2, 1)
	assert.Equal(t, 0, l)

	l, _ = n.Length(2, 1)
	assert.Equal(t, 3, l, "original must be untouched")

	assert.ErrorIs(t, clone.SetLength(-1, 2, 0), network.ErrBadIndex)
	assert.ErrorIs(t, clone.SetLength(1, 9, 0), network.ErrBadIndex)
}

func TestNewSnapshot(t *testing.T) {
	rs := board()
	s := network.NewSnapshot(rs)

	assert.Equal(t, s.Cities, s.Full.Cities())
	assert.Equal(t, s.Cities, s.Restricted.Cities())
	assert.Len(t, s.Neighbors, 4)
	assert.Equal(t, []routes.Pair{routes.NewPair("B", "C"), routes.NewPair("D", "E")}, s.Doubles)

	// snapshot keeps its own copy of the routes
	rs[0].Length = 99
	assert.Equal(t, 2, s.Routes[0].Length)
}
