// SPDX-License-Identifier: MIT
package store_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ticketrail/store"
)

func TestFile_RoundTrip(t *testing.T) {
	s := store.NewMemory()

	_, err := s.Load()
	assert.ErrorIs(t, err, store.ErrNoSave)
	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save([]byte(`{"version":3}`)))
	require.NoError(t, s.Save([]byte(`{"version":4}`)))
	blob, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"version":4}`, string(blob))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing twice is fine")
	_, err = s.Load()
	assert.ErrorIs(t, err, store.ErrNoSave)
}

func TestFile_NestedPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := store.New(fs, "saves/eu/game.json")
	require.NoError(t, s.Save([]byte("x")))

	data, err := afero.ReadFile(fs, "saves/eu/game.json")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	tmp, err := afero.Exists(fs, "saves/eu/game.json.tmp")
	require.NoError(t, err)
	assert.False(t, tmp)
	assert.Equal(t, "saves/eu/game.json", s.Path())
}

func TestFile_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "save.json", []byte("old"), 0o644))
	s := store.New(afero.NewReadOnlyFs(base), "save.json")

	assert.Error(t, s.Save([]byte("new")))
	blob, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "old", string(blob))
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { store.New(nil, "x") })
	assert.Panics(t, func() { store.New(afero.NewMemMapFs(), "") })
}
