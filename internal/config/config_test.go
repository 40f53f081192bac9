package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_CorruptFileIsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"root_directory": `), 0644))

	assert.Equal(t, Config{}, Load(path, nil))
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Config{RootDirectory: "/games/rpg", DarkMode: true}

	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"root_directory"`)
	assert.Contains(t, string(raw), `"dark_mode"`)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.json")
	assert.Equal(t, "/tmp/custom.json", DefaultPath())
}

func TestProjectRoot(t *testing.T) {
	t.Setenv(EnvRoot, "")
	assert.Equal(t, ".", ProjectRoot(Config{}))
	assert.False(t, RootConfigured(Config{}))
	assert.Equal(t, "/data", ProjectRoot(Config{RootDirectory: "/data"}))
	assert.True(t, RootConfigured(Config{RootDirectory: "/data"}))

	t.Setenv(EnvRoot, "/override")
	assert.Equal(t, "/override", ProjectRoot(Config{RootDirectory: "/data"}))
	assert.True(t, RootConfigured(Config{}))
}

func TestCheckRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	got, err := CheckRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	for name, root := range map[string]string{
		"empty":     "  ",
		"missing":   filepath.Join(dir, "nope"),
		"not a dir": file,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := CheckRoot(root)
			assert.ErrorIs(t, err, ErrInvalidRoot)
		})
	}
}

func TestCheckRoot_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "game"), 0755))

	got, err := CheckRoot("~/game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "game"), got)
}
