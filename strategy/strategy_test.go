// SPDX-License-Identifier: MIT
package strategy_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/bfs"
	"github.com/katalvlaran/ticketrail/builder"
	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/mapdata"
	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/rng"
	"github.com/katalvlaran/ticketrail/routes"
	"github.com/katalvlaran/ticketrail/strategy"
)

// doubleBoard returns a 4×5 grid board where every track is doubled, plus a
// few single tracks from a random overlay.
func doubleBoard(t *testing.T) *network.Snapshot {
	t.Helper()
	rs, err := builder.Build(builder.Grid(4, 5), builder.WithSeed(7),
		builder.WithLengthFn(builder.UniformLength(1, 6)), builder.WithDoubleProb(1))
	require.NoError(t, err)
	extra, err := builder.Build(builder.RandomSparse(20, 0.1), builder.WithSeed(8))
	require.NoError(t, err)

	return network.NewSnapshot(append(rs, extra...))
}

func TestGenerate_DuplicateFreeAndInGraph(t *testing.T) {
	s := doubleBoard(t)
	doubles := routes.NewPairSet(s.Doubles)
	neighbors := routes.NewPairSet(s.Neighbors)

	for _, kind := range strategy.Kinds() {
		for seed := int64(1); seed <= 10; seed++ {
			for _, gk := range []strategy.GraphKind{strategy.Restricted, strategy.Full} {
				q, err := strategy.NewQueue(kind, gk, s, rng.FromSeed(seed))
				require.NoError(t, err, "%s seed %d", kind, seed)

				allowed := doubles
				if gk == strategy.Full {
					allowed = neighbors
				}
				seen := routes.PairSet{}
				for _, e := range q.Entries {
					assert.False(t, seen.Has(e.Pair), "%s/%s seed %d: %s repeated\n%s",
						kind, gk, seed, e.Pair, spew.Sdump(q.Entries))
					assert.True(t, allowed.Has(e.Pair), "%s/%s: %s not in graph", kind, gk, e.Pair)
					assert.Equal(t, routes.ShortestLength(s.Routes, e.Pair), e.Length)
					seen.Add(e.Pair)
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	s := doubleBoard(t)
	for _, kind := range strategy.Kinds() {
		a, err := strategy.Generate(kind, s.Restricted, rng.FromSeed(42))
		require.NoError(t, err)
		b, err := strategy.Generate(kind, s.Restricted, rng.FromSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a, b, kind.String())
	}
}

func TestGenerate_CoverAllTracks(t *testing.T) {
	s := doubleBoard(t)
	total := len(s.Restricted.Edges())
	for _, kind := range []strategy.Kind{strategy.Random, strategy.BFS, strategy.Fill, strategy.Increment, strategy.Star} {
		es, err := strategy.Generate(kind, s.Restricted, rng.FromSeed(5))
		require.NoError(t, err)
		assert.Len(t, es, total, kind.String())
	}
}

func TestIncrement_AscendingLengths(t *testing.T) {
	s := doubleBoard(t)
	es, err := strategy.Generate(strategy.Increment, s.Full, rng.FromSeed(3))
	require.NoError(t, err)
	for i := 1; i < len(es); i++ {
		assert.LessOrEqual(t, es[i-1].Length, es[i].Length)
	}
}

func TestWalk_CoversPath(t *testing.T) {
	rs, err := builder.Build(builder.Path(8))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)
	for seed := int64(1); seed <= 20; seed++ {
		es, err := strategy.Generate(strategy.Walk, s.Full, rng.FromSeed(seed))
		require.NoError(t, err)
		assert.Len(t, es, 7, "seed %d", seed)
	}
}

func TestBFS_FirstLevelTouchesRoot(t *testing.T) {
	rs, err := builder.Build(builder.Star(6))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)
	es, err := strategy.Generate(strategy.BFS, s.Full, rng.FromSeed(2))
	require.NoError(t, err)
	require.Len(t, es, 5)
	for _, e := range es {
		assert.True(t, e.Pair.Has("C00"))
	}
}

func TestLines_Budget(t *testing.T) {
	rs, err := builder.Build(builder.Path(10))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)

	for _, kind := range []strategy.Kind{strategy.Lines, strategy.LinesOpt} {
		// a zero budget stops after the first path
		es, err := strategy.Generate(kind, s.Full, rng.FromSeed(9), strategy.WithCarBudget(0))
		require.NoError(t, err)
		require.NotEmpty(t, es)
		cities := map[string]int{}
		for _, e := range es {
			cities[e.Pair.A]++
			cities[e.Pair.B]++
		}
		ends := 0
		for _, c := range cities {
			if c == 1 {
				ends++
			}
		}
		assert.Equal(t, 2, ends, "%s: one contiguous line", kind)

		es, err = strategy.Generate(kind, s.Full, rng.FromSeed(9),
			strategy.WithCarBudget(1000), strategy.WithAttemptCap(200))
		require.NoError(t, err)
		assert.Len(t, es, 9)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := strategy.Generate(strategy.Random, nil, nil)
	assert.ErrorIs(t, err, strategy.ErrNilGraph)

	s := doubleBoard(t)
	_, err = strategy.Generate(strategy.Kind(99), s.Full, nil)
	assert.ErrorIs(t, err, strategy.ErrUnknownKind)

	_, err = strategy.NewQueue(strategy.Random, strategy.GraphKind(5), s, nil)
	assert.ErrorIs(t, err, strategy.ErrUnknownGraph)

	_, err = strategy.NewQueue(strategy.Random, strategy.Full, nil, nil)
	assert.ErrorIs(t, err, strategy.ErrNilGraph)

	assert.Panics(t, func() { strategy.WithAttemptCap(0) })
	assert.Panics(t, func() { strategy.WithCarBudget(-1) })
}

func TestGenerate_EmptyGraph(t *testing.T) {
	// single tracks only: the restricted graph has no edges
	rs, err := builder.Build(builder.Cycle(5))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)
	for _, kind := range strategy.Kinds() {
		es, err := strategy.Generate(kind, s.Restricted, rng.FromSeed(1))
		require.NoError(t, err, kind.String())
		assert.Empty(t, es, kind.String())
	}
}

func TestQueue_TakeNext(t *testing.T) {
	q := &strategy.Queue{Entries: []strategy.Entry{
		{Pair: routes.NewPair("A", "B"), Length: 6},
		{Pair: routes.NewPair("B", "C"), Length: 2},
		{Pair: routes.NewPair("C", "D"), Length: 1},
	}}

	e, err := q.TakeNext(func(e strategy.Entry) bool { return e.Length <= 3 })
	require.NoError(t, err)
	assert.Equal(t, routes.NewPair("B", "C"), e.Pair)
	assert.Equal(t, 2, q.Len())

	_, err = q.TakeNext(func(e strategy.Entry) bool { return e.Length > 10 })
	assert.ErrorIs(t, err, strategy.ErrNoBuildableRoute)
	assert.Equal(t, 2, q.Len())

	first, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 6, first.Length)

	c := q.Clone()
	_, err = c.TakeNext(func(strategy.Entry) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 1, c.Len())

	var empty *strategy.Queue
	_, err = empty.TakeNext(func(strategy.Entry) bool { return true })
	assert.ErrorIs(t, err, strategy.ErrNoBuildableRoute)
	_, ok = empty.Peek()
	assert.False(t, ok)
}

func TestKind_Text(t *testing.T) {
	for _, k := range strategy.Kinds() {
		parsed, err := strategy.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := strategy.ParseKind(" LinesOpt ")
	require.NoError(t, err)
	assert.Equal(t, strategy.LinesOpt, k)

	_, err = strategy.ParseKind("dfs")
	assert.ErrorIs(t, err, strategy.ErrUnknownKind)

	g, err := strategy.ParseGraphKind("double")
	require.NoError(t, err)
	assert.Equal(t, strategy.Restricted, g)
	_, err = strategy.ParseGraphKind("sparse")
	assert.ErrorIs(t, err, strategy.ErrUnknownGraph)

	q := strategy.Queue{Kind: strategy.Fill, Graph: strategy.Full}
	blob, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"fill","graph":"full","entries":null}`, string(blob))

	var back strategy.Queue
	require.NoError(t, json.Unmarshal(blob, &back))
	assert.Equal(t, q, back)

	r := rng.FromSeed(4)
	for i := 0; i < 50; i++ {
		assert.True(t, strategy.Pick(r).Valid())
	}
}

// orderedFromFirst reports whether es is sorted by min(key[u], key[v]) for
// a root taken from the first entry. keys computes per-city keys from a
// root.
func orderedFromFirst(t *testing.T, n *network.Network, es []strategy.Entry, keys func(root int) []int64) bool {
	t.Helper()
	require.NotEmpty(t, es)
	for _, c := range []routes.City{es[0].Pair.A, es[0].Pair.B} {
		root, err := n.Index(c)
		require.NoError(t, err)
		k := keys(root)
		prev, ok := int64(-1), true
		for _, e := range es {
			u, err := n.Index(e.Pair.A)
			require.NoError(t, err)
			v, err := n.Index(e.Pair.B)
			require.NoError(t, err)
			cur := min(k[u], k[v])
			if cur < prev {
				ok = false
				break
			}
			prev = cur
		}
		if ok {
			return true
		}
	}

	return false
}

func TestFill_AscendingDistanceFromStart(t *testing.T) {
	s := doubleBoard(t)
	dist := func(root int) []int64 {
		d, err := dijkstra.FromIndex(s.Full, root)
		require.NoError(t, err)
		return d
	}
	for seed := int64(1); seed <= 20; seed++ {
		es, err := strategy.Generate(strategy.Fill, s.Full, rng.FromSeed(seed))
		require.NoError(t, err)
		assert.True(t, orderedFromFirst(t, s.Full, es, dist), "seed %d\n%s", seed, spew.Sdump(es))
	}
}

func TestBFS_LevelOrder(t *testing.T) {
	rs, err := builder.Build(builder.Grid(3, 4))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)
	hops := func(root int) []int64 {
		d := make([]int64, s.Full.Len())
		_, err := bfs.BFS(s.Full, root, bfs.WithOnEnqueue(func(id, depth int) { d[id] = int64(depth) }))
		require.NoError(t, err)
		return d
	}
	for seed := int64(1); seed <= 20; seed++ {
		es, err := strategy.Generate(strategy.BFS, s.Full, rng.FromSeed(seed))
		require.NoError(t, err)
		require.Len(t, es, len(s.Full.Edges()))
		assert.True(t, orderedFromFirst(t, s.Full, es, hops), "seed %d\n%s", seed, spew.Sdump(es))
	}
}

func TestWalk_ChainsArePaths(t *testing.T) {
	s := doubleBoard(t)
	for seed := int64(1); seed <= 20; seed++ {
		es, err := strategy.Generate(strategy.Walk, s.Full, rng.FromSeed(seed))
		require.NoError(t, err)

		// every track reaches a new city: the output is a forest whose
		// trees are simple paths
		degree := map[routes.City]int{}
		root := map[routes.City]routes.City{}
		var find func(c routes.City) routes.City
		find = func(c routes.City) routes.City {
			if p, ok := root[c]; ok && p != c {
				return find(p)
			}
			return c
		}
		for _, e := range es {
			degree[e.Pair.A]++
			degree[e.Pair.B]++
			ra, rb := find(e.Pair.A), find(e.Pair.B)
			require.NotEqual(t, ra, rb, "seed %d: %s closes a cycle", seed, e.Pair)
			root[ra] = rb
		}
		for c, d := range degree {
			assert.LessOrEqual(t, d, 2, "seed %d: %s branches", seed, c)
		}
	}
}

func TestWalk_GrowsBothEnds(t *testing.T) {
	rs, err := builder.Build(builder.Path(8))
	require.NoError(t, err)
	s := network.NewSnapshot(rs)

	swapped := 0
	for seed := int64(1); seed <= 20; seed++ {
		es, err := strategy.Generate(strategy.Walk, s.Full, rng.FromSeed(seed))
		require.NoError(t, err)
		for i := 1; i < len(es); i++ {
			prev, cur := es[i-1].Pair, es[i].Pair
			if !cur.Has(prev.A) && !cur.Has(prev.B) {
				swapped++
			}
		}
	}
	assert.Positive(t, swapped, "the chain never switched ends")
}

func TestLinesOpt_ReusesClaimedTrack(t *testing.T) {
	// A–C is the direct shortest path, but once A–B and B–C are claimed the
	// detour costs nothing for LinesOpt.
	rs := []routes.Route{
		{From: "A", To: "B", Length: 5},
		{From: "B", To: "C", Length: 5},
		{From: "A", To: "C", Length: 9},
	}
	s := network.NewSnapshot(rs)
	ac := routes.NewPair("A", "C")
	opts := []strategy.Option{strategy.WithCarBudget(1000), strategy.WithAttemptCap(200)}

	skipped := 0
	for seed := int64(1); seed <= 40; seed++ {
		es, err := strategy.Generate(strategy.Lines, s.Full, rng.FromSeed(seed), opts...)
		require.NoError(t, err)
		assert.Len(t, es, 3, "Lines always takes the direct track")

		es, err = strategy.Generate(strategy.LinesOpt, s.Full, rng.FromSeed(seed), opts...)
		require.NoError(t, err)
		at := map[routes.Pair]int{}
		for i, e := range es {
			at[e.Pair] = i
		}
		i, ok := at[ac]
		if !ok {
			skipped++
			continue
		}
		ab, okAB := at[routes.NewPair("A", "B")]
		bc, okBC := at[routes.NewPair("B", "C")]
		assert.False(t, okAB && okBC && i > ab && i > bc, "seed %d: A–C after the free detour", seed)
	}
	assert.Positive(t, skipped, "LinesOpt never preferred the claimed detour")
}

func TestLines_SkipsIsolatedCities(t *testing.T) {
	// a doubled line of four cities among thirty single-track cities
	line, err := builder.Build(builder.Path(4), builder.WithDoubleProb(1), builder.WithSeed(1))
	require.NoError(t, err)
	ring, err := builder.Build(builder.Cycle(30), builder.WithNameScheme(func(i int) string {
		return fmt.Sprintf("R%02d", i)
	}))
	require.NoError(t, err)
	s := network.NewSnapshot(append(line, ring...))
	require.Len(t, s.Restricted.Edges(), 3)

	for _, kind := range []strategy.Kind{strategy.Lines, strategy.LinesOpt} {
		for seed := int64(1); seed <= 20; seed++ {
			es, err := strategy.Generate(kind, s.Restricted, rng.FromSeed(seed))
			require.NoError(t, err)
			assert.NotEmpty(t, es, "%s seed %d", kind, seed)
		}
	}
}

func TestLines_EuropeDoubleTracks(t *testing.T) {
	info, rs, err := mapdata.Open("eu")
	require.NoError(t, err)
	s := network.NewSnapshot(rs)

	for _, kind := range []strategy.Kind{strategy.Lines, strategy.LinesOpt} {
		for seed := int64(1); seed <= 20; seed++ {
			q, err := strategy.NewQueue(kind, strategy.Restricted, s, rng.FromSeed(seed),
				strategy.WithCarBudget(info.Cars))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q.Len(), 4, "%s seed %d\n%s", kind, seed, spew.Sdump(q.Entries))
		}
	}
}
