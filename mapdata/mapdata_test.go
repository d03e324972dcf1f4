// SPDX-License-Identifier: MIT
package mapdata_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/dijkstra"
	"github.com/katalvlaran/ticketrail/mapdata"
	"github.com/katalvlaran/ticketrail/network"
	"github.com/katalvlaran/ticketrail/routes"
)

func TestDecode_Forms(t *testing.T) {
	data := []byte(`[
		["New York", "Boston", 2, "red"],
		["Paris", "Zürich", 3, "gray", 0, true],
		["London", "Dieppe", 2, "gray", 1],
		{"from": "Seattle", "to": "Portland", "length": 1, "color": "gray"}
	]`)
	rs, err := mapdata.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []routes.Route{
		{From: "Boston", To: "New York", Length: 2, Color: "red"},
		{From: "Paris", To: "Zürich", Length: 3, Color: "gray", Tunnel: true},
		{From: "Dieppe", To: "London", Length: 2, Color: "gray", Joker: 1},
		{From: "Portland", To: "Seattle", Length: 1, Color: "gray"},
	}, rs)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"object":        `{"from": "A"}`,
		"garbage":       `not json`,
		"empty":         `[]`,
		"scalar":        `[42]`,
		"short tuple":   `[["A", "B", 2]]`,
		"long tuple":    `[["A", "B", 2, "red", 0, false, 1]]`,
		"string length": `[["A", "B", "2", "red"]]`,
		"same city":     `[["A", "A", 2, "red"]]`,
		"empty name":    `[["", "B", 2, "red"]]`,
		"zero length":   `[["A", "B", 0, "red"]]`,
		"neg length":    `[{"from": "A", "to": "B", "length": -3}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mapdata.Decode([]byte(payload))
			assert.ErrorIs(t, err, mapdata.ErrInvalidMapData)
		})
	}
}

func TestDecode_Gazetteer(t *testing.T) {
	g := mapdata.WithGazetteer([]routes.City{"A", "B"})
	_, err := mapdata.Decode([]byte(`[["A", "B", 1, "red"]]`), g)
	require.NoError(t, err)

	_, err = mapdata.Decode([]byte(`[["A", "C", 1, "red"]]`), g)
	assert.ErrorIs(t, err, mapdata.ErrUnknownCity)
}

func TestCatalog(t *testing.T) {
	infos := mapdata.Catalog()
	require.Len(t, infos, 2)

	for _, info := range infos {
		got, rs, err := mapdata.Open(info.Name)
		require.NoError(t, err, info.Name)
		assert.Equal(t, info, got)
		assert.GreaterOrEqual(t, len(rs), 100)

		// every board is one connected network
		s := network.NewSnapshot(rs)
		dist, err := dijkstra.FromIndex(s.Full, 0)
		require.NoError(t, err)
		for i, d := range dist {
			assert.NotEqual(t, dijkstra.Infinity, d, "%s: %s unreachable", info.Name, s.Full.City(i))
		}
		assert.NotEmpty(t, s.Doubles)
	}

	info, rs, err := mapdata.Open("USA")
	require.NoError(t, err)
	assert.Equal(t, 45, info.Cars)
	assert.Equal(t, 0, info.Stations)
	s := network.NewSnapshot(rs)
	assert.Len(t, s.Cities, 36)
	d, err := dijkstra.Distance(s.Full, "Boston", "Miami")
	require.NoError(t, err)
	assert.Equal(t, int64(12), d)

	_, _, err = mapdata.Open("mars")
	assert.ErrorIs(t, err, mapdata.ErrUnknownMap)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "boards/mini.json", []byte(`[["B", "A", 2, "red"]]`), 0o644))

	rs, err := mapdata.LoadFile(fs, "boards/mini.json")
	require.NoError(t, err)
	assert.Equal(t, []routes.Route{{From: "A", To: "B", Length: 2, Color: "red"}}, rs)

	_, err = mapdata.LoadFile(fs, "boards/missing.json")
	assert.Error(t, err)
}
