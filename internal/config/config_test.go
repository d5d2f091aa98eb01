package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigUsesEnvHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOYLANG_HOME", home)

	c := DefaultConfig()
	assert.Equal(t, home, c.Home)
	assert.Equal(t, filepath.Join(home, "history"), c.HistoryFile)
	assert.Equal(t, ">> ", c.Prompt)
	assert.Equal(t, ".. ", c.ContinuationPrompt)
	assert.False(t, c.PrintAll)
	assert.Equal(t, filepath.Join(home, FileName), c.Path())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("TOYLANG_HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOYLANG_HOME", home)
	path := filepath.Join(home, FileName)
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"toy> \"\nprint_all: true\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toy> ", c.Prompt)
	assert.True(t, c.PrintAll)
	assert.Equal(t, ".. ", c.ContinuationPrompt)
	assert.Equal(t, home, c.Home)
}

func TestLoadEmptyFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOYLANG_HOME", home)
	path := filepath.Join(home, FileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOYLANG_HOME", home)
	path := filepath.Join(home, FileName)
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TOYLANG_HOME", home)

	c := DefaultConfig()
	c.Prompt = "$ "
	c.PrintAll = true
	path := filepath.Join(home, "nested", FileName)
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestEnsureDirs(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TOYLANG_HOME", filepath.Join(root, "home"))

	c := DefaultConfig()
	c.HistoryFile = filepath.Join(root, "state", "hist")
	require.NoError(t, c.EnsureDirs())

	for _, dir := range []string{c.Home, filepath.Join(root, "state")} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
