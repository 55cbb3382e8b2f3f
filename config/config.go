// SPDX-License-Identifier: MIT

// Package config loads and writes the lvdraw TOML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/session"
	"github.com/katalvlaran/lvdraw/surface"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// DefaultFile is the settings file looked up by the CLI.
const DefaultFile = "lvdraw.toml"

// Config holds the application settings. Colors accept palette names,
// #rgb / #rrggbb, 0x hex or decimal (see surface.ParseColor).
type Config struct {
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	Background    string  `toml:"background"`
	Foreground    string  `toml:"foreground"`
	TranslateStep float64 `toml:"translate_step"`
	ZoomFactor    float64 `toml:"zoom_factor"`
	RotateStep    float64 `toml:"rotate_step"`
	SceneFile     string  `toml:"scene_file"`
	Output        string  `toml:"output"`
	Upscale       int     `toml:"upscale"`
	LogLevel      string  `toml:"log_level"`
}

// Default returns the settings of the classic 800×600 drawing window.
func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		Background:    "black",
		Foreground:    "white",
		TranslateStep: session.DefaultTranslateStep,
		ZoomFactor:    session.DefaultZoomFactor,
		RotateStep:    session.DefaultRotateStep,
		SceneFile:     session.DefaultSceneFile,
		Output:        "lvdraw.png",
		Upscale:       1,
		LogLevel:      "info",
	}
}

// Load reads path on top of Default. A missing file yields the defaults.
// Unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		lvdraw.Logger().Info("config: file not found, using defaults", "path", path)

		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %q: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		lvdraw.Logger().Warn("config: unknown key", "path", path, "key", key.String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: load %q: %w", path, err)
	}
	lvdraw.Logger().Info("config: loaded", "path", path)

	return cfg, nil
}

// Write validates cfg and stores it at path, creating parent directories.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("config: write %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}

	return nil
}

// Validate reports the first setting outside its range.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return invalid("size", "%dx%d", c.Width, c.Height)
	case !finite(c.TranslateStep) || c.TranslateStep <= 0:
		return invalid("translate_step", "%g", c.TranslateStep)
	case !finite(c.ZoomFactor) || c.ZoomFactor <= 0 || c.ZoomFactor == 1:
		return invalid("zoom_factor", "%g", c.ZoomFactor)
	case !finite(c.RotateStep) || c.RotateStep == 0:
		return invalid("rotate_step", "%g", c.RotateStep)
	case strings.TrimSpace(c.SceneFile) == "":
		return invalid("scene_file", "empty")
	case strings.TrimSpace(c.Output) == "":
		return invalid("output", "empty")
	case c.Upscale < 1:
		return invalid("upscale", "%d", c.Upscale)
	}
	if _, err := surface.ParseColor(c.Background); err != nil {
		return invalid("background", "%q", c.Background)
	}
	if _, err := surface.ParseColor(c.Foreground); err != nil {
		return invalid("foreground", "%q", c.Foreground)
	}
	if _, err := c.Level(); err != nil {
		return invalid("log_level", "%q", c.LogLevel)
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))

	return l, err
}

// CanvasOptions maps the color settings to surface options.
func (c Config) CanvasOptions() ([]surface.Option, error) {
	bg, err := surface.ParseColor(c.Background)
	if err != nil {
		return nil, invalid("background", "%q", c.Background)
	}
	fg, err := surface.ParseColor(c.Foreground)
	if err != nil {
		return nil, invalid("foreground", "%q", c.Foreground)
	}

	return []surface.Option{surface.WithBackground(bg), surface.WithColor(fg)}, nil
}

// SessionOptions maps the view steps and scene file to session options.
// Call Validate first; invalid values make the option constructors panic.
func (c Config) SessionOptions(help io.Writer) []session.Option {
	return []session.Option{
		session.WithTranslateStep(c.TranslateStep),
		session.WithZoomFactor(c.ZoomFactor),
		session.WithRotateStep(c.RotateStep),
		session.WithSceneFile(c.SceneFile),
		session.WithHelpWriter(help),
	}
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%s = %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
