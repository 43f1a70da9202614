package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravityduel/constant"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 200.0, s.ArenaWidth)
	assert.Equal(t, 2, s.Players)
	assert.Equal(t, constant.Default(), s.Physics)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `
[arena]
width = 500.0
players = 4
seed = 77

[physics]
missileTimeToLive = 10.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gravityduel.toml"), []byte(cfg), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 500.0, s.ArenaWidth)
	assert.Equal(t, 4, s.Players)
	assert.EqualValues(t, 77, s.Seed)
	assert.Equal(t, 10.0, s.Physics.MissileTimeToLive)
	// Untouched keys keep their defaults
	assert.Equal(t, constant.Default().GravitationalConstant, s.Physics.GravitationalConstant)
}

func TestLoadRejectsSinglePlayer(t *testing.T) {
	dir := t.TempDir()
	cfg := "[arena]\nplayers = 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gravityduel.toml"), []byte(cfg), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
