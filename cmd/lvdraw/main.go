// SPDX-License-Identifier: MIT

// Command lvdraw renders a scene file through a view transform into an
// image, optionally replaying recorded editing events first.
//
// Usage:
//
//	lvdraw [-config lvdraw.toml] [-scene image.txt] [-out frame.png]
//	       [-ops "t:20,0;s:2,2;r:10;e"] [-demo] [-replay events.txt] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/config"
	"github.com/katalvlaran/lvdraw/scene"
	"github.com/katalvlaran/lvdraw/session"
	"github.com/katalvlaran/lvdraw/shape"
	"github.com/katalvlaran/lvdraw/surface"
	"github.com/katalvlaran/lvdraw/view"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lvdraw:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fset := flag.NewFlagSet("lvdraw", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		cfgPath = fset.String("config", config.DefaultFile, "TOML settings file")
		scnPath = fset.String("scene", "", "scene file (overrides scene_file)")
		outPath = fset.String("out", "", "output image (overrides output)")
		upscale = fset.Int("upscale", 0, "pixel upscale factor (overrides upscale)")
		opsList = fset.String("ops", "", `view operations, e.g. "t:20,0;s:2,2;r:10;e"`)
		demo    = fset.Bool("demo", false, "write the demo scene to the scene file first")
		replay  = fset.String("replay", "", "event script fed to an editing session")
		verbose = fset.Bool("v", false, "debug logging")
	)
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *scnPath != "" {
		cfg.SceneFile = *scnPath
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}
	if *upscale != 0 {
		cfg.Upscale = *upscale
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	lvdraw.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer lvdraw.SetLogger(nil)
	log := lvdraw.Logger()

	ops, err := parseOps(*opsList)
	if err != nil {
		return err
	}

	canvasOpts, err := cfg.CanvasOptions()
	if err != nil {
		return err
	}
	cv, err := surface.New(cfg.Width, cfg.Height, canvasOpts...)
	if err != nil {
		return err
	}
	vc := view.New(float64(cfg.Width)/2, float64(cfg.Height)/2)

	img, err := openScene(cfg.SceneFile, *demo)
	if err != nil {
		return err
	}
	if err = applyOps(vc, ops); err != nil {
		return err
	}

	s := session.New(cv, vc, img, cfg.SessionOptions(stdout)...)
	if err = s.Paint(); err != nil {
		return err
	}
	if *replay != "" {
		if err = replayFile(s, *replay); err != nil {
			return err
		}
	}

	if err = cv.Save(cfg.Output, cfg.Upscale); err != nil {
		return err
	}
	log.Info("lvdraw: done", "shapes", img.Len(), "output", cfg.Output)

	return nil
}

// demoScene is the two-shape scene the drawing program starts with.
func demoScene() *scene.Image {
	return scene.New(
		shape.NewLine(0, 0, 700, 500, surface.RGB(150, 30, 150)),
		shape.NewTriangle(100, 100, 600, 200, 350, 350, surface.RGB(200, 200, 40)),
	)
}

// openScene loads path, or writes the demo scene there when demo is set.
// A missing scene file gives an empty scene.
func openScene(path string, demo bool) (*scene.Image, error) {
	if demo {
		img := demoScene()

		return img, img.SaveFile(path)
	}
	img, err := scene.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		lvdraw.Logger().Warn("lvdraw: scene file not found, starting empty", "path", path)

		return scene.New(), nil
	}

	return img, err
}
