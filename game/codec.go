// SPDX-License-Identifier: MIT
// File: codec.go
// Role: versioned JSON encoding of State.

package game

import (
	"encoding/json"
	"fmt"
)

// SaveVersion is the schema version written by Encode. Decode rejects any
// other version.
const SaveVersion = 3

// Encode serializes s stamped with SaveVersion.
func Encode(s State) ([]byte, error) {
	s.Version = SaveVersion
	blob, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("game: encode: %w", err)
	}

	return blob, nil
}

// Decode parses a save. ErrInvalidSaveVersion is returned for a version
// mismatch and ErrCorruptSave for anything unparsable.
func Decode(blob []byte) (State, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(blob, &probe); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	if probe.Version != SaveVersion {
		return State{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaveVersion, probe.Version, SaveVersion)
	}

	var s State
	if err := json.Unmarshal(blob, &s); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}

	return s, nil
}
