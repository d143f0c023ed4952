package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "klondike.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Server.LogLevel)

	rules := cfg.GameRules()
	assert.Equal(t, 10, rules.FoundationPoints)
	assert.Equal(t, 5, rules.TableauPoints)
	assert.Equal(t, 5, rules.UndoDepth)
	assert.False(t, rules.RecycleCountsMove)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
server {
  addr      = ":9000"
  log_level = "debug"
}

rules {
  foundation_points   = 15
  tableau_points      = 3
  undo_depth          = 10
  recycle_counts_move = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)

	rules := cfg.GameRules()
	assert.Equal(t, 15, rules.FoundationPoints)
	assert.Equal(t, 3, rules.TableauPoints)
	assert.Equal(t, 10, rules.UndoDepth)
	assert.True(t, rules.RecycleCountsMove)
}

func TestLoadPartialRules(t *testing.T) {
	path := writeConfig(t, `
server {}

rules {
  undo_depth = 3
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.GameRules()
	assert.Equal(t, 3, rules.UndoDepth)
	assert.Equal(t, 10, rules.FoundationPoints, "unset values keep engine defaults")
	assert.Equal(t, 5, rules.TableauPoints)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `server { addr = `)

	_, err := Load(path)
	assert.Error(t, err)
}
