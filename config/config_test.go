// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdraw/config"
	"github.com/katalvlaran/lvdraw/surface"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 800, cfg.Width)
	require.Equal(t, 600, cfg.Height)

	l, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, l)
	require.Len(t, cfg.SessionOptions(nil), 5)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvdraw.toml")
	src := "width = 320\nbackground = \"#102030\"\nzoom_factor = 1.5\nlog_level = \"debug\"\nunknown = true\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 320, cfg.Width)
	require.Equal(t, 600, cfg.Height)
	require.Equal(t, 1.5, cfg.ZoomFactor)

	opts, err := cfg.CanvasOptions()
	require.NoError(t, err)
	cv, err := surface.New(2, 2, opts...)
	require.NoError(t, err)
	require.Equal(t, surface.RGB(0x10, 0x20, 0x30), cv.At(0, 0))
	require.Equal(t, surface.White, cv.Color())

	l, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("width = \"wide\"\n"), 0o644))
	_, err := config.Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("upscale = 0\n"), 0o644))
	_, err = config.Load(invalid)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{"width", func(c *config.Config) { c.Width = 0 }},
		{"height", func(c *config.Config) { c.Height = -1 }},
		{"translate", func(c *config.Config) { c.TranslateStep = 0 }},
		{"zoom one", func(c *config.Config) { c.ZoomFactor = 1 }},
		{"zoom negative", func(c *config.Config) { c.ZoomFactor = -2 }},
		{"rotate", func(c *config.Config) { c.RotateStep = 0 }},
		{"scene", func(c *config.Config) { c.SceneFile = " " }},
		{"output", func(c *config.Config) { c.Output = "" }},
		{"upscale", func(c *config.Config) { c.Upscale = 0 }},
		{"background", func(c *config.Config) { c.Background = "mauve" }},
		{"foreground", func(c *config.Config) { c.Foreground = "#12" }},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	cfg := config.Default()
	cfg.Background = "nope"
	_, err := cfg.CanvasOptions()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lvdraw.toml")
	cfg := config.Default()
	cfg.Output = "frame.jpg"
	cfg.Upscale = 2
	cfg.RotateStep = -15
	require.NoError(t, config.Write(path, cfg))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)

	cfg.Width = 0
	require.ErrorIs(t, config.Write(path, cfg), config.ErrInvalidConfig)
}
