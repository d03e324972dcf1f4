// SPDX-License-Identifier: MIT
// File: enum.go
// Role: Phase, PlayerType and BuildState enums with text encoding.

package game

import (
	"fmt"
	"strings"
)

// Phase is the state of the machine.
type Phase int

const (
	SelectMap Phase = iota
	FirstStep
	SelectTickets
	PlayGame
	SelectNeighborAlgorithm
	SelectNeighborTickets
)

var phaseNames = []string{
	"SelectMap", "FirstStep", "SelectTickets", "PlayGame",
	"SelectNeighborAlgorithm", "SelectNeighborTickets",
}

func (p Phase) String() string { return enumName(phaseNames, int(p), "Phase") }

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) { return enumMarshal(phaseNames, int(p), "phase") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	i, err := enumParse(phaseNames, string(b), "phase")
	*p = Phase(i)
	return err
}

// PlayerType tells who plays the session.
type PlayerType int

const (
	// PlayerUnset is the player type before the first ticket request.
	PlayerUnset PlayerType = iota
	Human
	Neutral
)

var playerNames = []string{"unset", "human", "neutral"}

func (t PlayerType) String() string { return enumName(playerNames, int(t), "PlayerType") }

// MarshalText implements encoding.TextMarshaler.
func (t PlayerType) MarshalText() ([]byte, error) { return enumMarshal(playerNames, int(t), "player") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PlayerType) UnmarshalText(b []byte) error {
	i, err := enumParse(playerNames, string(b), "player")
	*t = PlayerType(i)
	return err
}

// BuildState is the progress of a to-build entry.
type BuildState int

const (
	NotBuilt BuildState = iota
	Built
	// Station marks a route the neutral player covers with a station.
	Station
)

var buildNames = []string{"not-built", "built", "station"}

func (b BuildState) String() string { return enumName(buildNames, int(b), "BuildState") }

// MarshalText implements encoding.TextMarshaler.
func (b BuildState) MarshalText() ([]byte, error) { return enumMarshal(buildNames, int(b), "build state") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BuildState) UnmarshalText(text []byte) error {
	i, err := enumParse(buildNames, string(text), "build state")
	*b = BuildState(i)
	return err
}

// Cue is a one-shot side effect for the UI.
type Cue int

const (
	CueNone Cue = iota
	// CueWhistle asks the UI to play the train whistle.
	CueWhistle
)

// Notice is a one-shot informational message for the UI.
type Notice int

const (
	NoticeNone Notice = iota
	// NoticeNoTicket reports a neutral turn skipped by chance.
	NoticeNoTicket
)

func (n Notice) String() string {
	switch n {
	case NoticeNoTicket:
		return "no ticket this turn"
	default:
		return ""
	}
}

func enumName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func enumMarshal(names []string, i int, what string) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("game: invalid %s %d", what, i)
	}
	return []byte(names[i]), nil
}

func enumParse(names []string, s, what string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("game: unknown %s %q", what, s)
}
