// SPDX-License-Identifier: MIT
// File: catalog.go
// Role: embedded boards and their neutral-player budgets.

package mapdata

import (
	"embed"
	"fmt"
	"strings"

	"github.com/katalvlaran/ticketrail/routes"
)

//go:embed maps/*.json
var boards embed.FS

// Info describes one embedded board.
type Info struct {
	Name     string
	Title    string
	Cars     int
	Stations int

	file      string
	gazetteer []routes.City
}

// europe is the city list the Europe board is checked against.
var europe = []routes.City{
	"Edinburgh", "London", "Amsterdam", "Bruxelles", "Dieppe", "Brest", "Paris",
	"Pamplona", "Madrid", "Lisboa", "Cádiz", "Barcelona", "Marseille", "Zürich",
	"München", "Venezia", "Roma", "Frankfurt", "Essen", "Berlin", "København",
	"Stockholm", "Riga", "Danzig", "Warszawa", "Wien", "Budapest", "Zágráb",
	"Sarajevo", "Brindisi", "Palermo", "Athína", "Smyrna", "Angora", "Erzurum",
	"Constantinople", "Bucuresti", "Sevastopol", "Sochi", "Rostov", "Kharkov",
	"Kyiv", "Smolensk", "Wilno", "Petrograd", "Moskva", "Sofia",
}

var catalog = []Info{
	{Name: "usa", Title: "USA", Cars: 45, Stations: 0, file: "maps/usa.json"},
	{Name: "eu", Title: "Europe", Cars: 45, Stations: 3, file: "maps/eu.json", gazetteer: europe},
}

// Catalog lists the embedded boards.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)

	return out
}

// Lookup returns the catalog entry of name (case-insensitive).
func Lookup(name string) (Info, error) {
	for _, info := range catalog {
		if strings.EqualFold(info.Name, name) {
			return info, nil
		}
	}

	return Info{}, fmt.Errorf("%w: %q", ErrUnknownMap, name)
}

// Open decodes the embedded board name.
func Open(name string) (Info, []routes.Route, error) {
	info, err := Lookup(name)
	if err != nil {
		return Info{}, nil, err
	}
	data, err := boards.ReadFile(info.file)
	if err != nil {
		return Info{}, nil, fmt.Errorf("mapdata: %s: %w", info.file, err)
	}
	var opts []Option
	if info.gazetteer != nil {
		opts = append(opts, WithGazetteer(info.gazetteer))
	}
	rs, err := Decode(data, opts...)
	if err != nil {
		return Info{}, nil, fmt.Errorf("mapdata: %s: %w", info.Name, err)
	}

	return info, rs, nil
}
