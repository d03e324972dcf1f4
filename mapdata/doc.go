// SPDX-License-Identifier: MIT
// Package mapdata turns board payloads into validated route lists.
//
// Two payload shapes are accepted, freely mixed within one array:
//
//	["Boston", "New York", 2, "red"]               raw tuple
//	["Paris", "Zürich", 3, "gray", 0, true]        raw tuple with joker and tunnel
//	{"from": "Boston", "to": "New York", "length": 2, "color": "red"}
//
// Decode rejects anything that is not an array of such records, routes
// joining a city to itself, empty names and non-positive lengths
// (ErrInvalidMapData). With WithGazetteer every city must belong to a
// fixed list. Every accepted route is oriented alphabetically.
//
// The package embeds the USA and Europe boards; Catalog lists them and
// Open decodes one by name. LoadFile reads a payload through afero.
package mapdata
