package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewtrack/viewport"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows
	return home
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	home := setHome(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, viewport.DefaultViewports(), cfg.Viewports)
	assert.False(t, cfg.FireOnChangeOnInit)

	// The default file is written on first load.
	_, err := os.Stat(filepath.Join(home, ".viewtrack", ConfigFileName))
	assert.NoError(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setHome(t)

	want := &Config{
		Viewports: []viewport.Viewport{
			{Name: "narrow", MinWidth: 0},
			{Name: "wide", MinWidth: 120},
		},
		FireOnChangeOnInit: true,
	}
	require.NoError(t, SaveConfig(want))

	got := LoadConfig()
	assert.Equal(t, want.Viewports, got.Viewports)
	assert.True(t, got.FireOnChangeOnInit)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".viewtrack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644))

	cfg := LoadConfig()
	assert.Equal(t, viewport.DefaultViewports(), cfg.Viewports, "corrupt file falls back to defaults")

	matches, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1, "corrupt file should be backed up")
}

func TestEmptyLadderFallsBackToDefaults(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, ".viewtrack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"viewports":[]}`), 0o644))

	cfg := LoadConfig()
	assert.Equal(t, viewport.DefaultViewports(), cfg.Viewports)
}

func TestTrackerConfig(t *testing.T) {
	cfg := &Config{
		Viewports:          []viewport.Viewport{{Name: "only", MinWidth: 0}},
		FireOnChangeOnInit: true,
	}

	called := false
	tc := cfg.TrackerConfig(func(viewport.Viewport, *viewport.Viewport, int, int, bool) {
		called = true
	})

	assert.Equal(t, cfg.Viewports, tc.Viewports)
	assert.True(t, tc.FireOnChangeOnInit)
	require.NotNil(t, tc.OnChange)
	tc.OnChange(viewport.Viewport{}, nil, 0, 0, false)
	assert.True(t, called)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	setHome(t)

	// Seed the file and directory.
	require.NoError(t, SaveConfig(DefaultConfig()))

	reloaded := make(chan *Config, 1)
	stop, err := Watch(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, SaveConfig(&Config{
		Viewports:          []viewport.Viewport{{Name: "custom", MinWidth: 0}},
		FireOnChangeOnInit: false,
	}))

	select {
	case cfg := <-reloaded:
		require.Len(t, cfg.Viewports, 1)
		assert.Equal(t, "custom", cfg.Viewports[0].Name)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload not observed")
	}
}
