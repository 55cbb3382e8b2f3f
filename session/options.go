// SPDX-License-Identifier: MIT

package session

import (
	"io"
	"math"
)

// Defaults match the classic drawing program bindings.
const (
	DefaultTranslateStep = 20.0
	DefaultZoomFactor    = 2.0
	DefaultRotateStep    = 10.0
	DefaultSceneFile     = "image.txt"
)

const (
	panicStepInvalid  = "session: WithTranslateStep: step must be finite and > 0"
	panicZoomInvalid  = "session: WithZoomFactor: factor must be finite, > 0 and != 1"
	panicAngleInvalid = "session: WithRotateStep: step must be finite and != 0"
	panicFileInvalid  = "session: WithSceneFile: path must not be empty"
)

// Option configures a Session. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	step  float64
	zoom  float64
	angle float64
	file  string
	help  io.Writer
}

// WithTranslateStep sets the arrow-key pan distance in device pixels.
func WithTranslateStep(step float64) Option {
	if !finite(step) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *options) { o.step = step }
}

// WithZoomFactor sets the '+' scale factor; '-' applies its reciprocal.
func WithZoomFactor(f float64) Option {
	if !finite(f) || f <= 0 || f == 1 {
		panic(panicZoomInvalid)
	}

	return func(o *options) { o.zoom = f }
}

// WithRotateStep sets the '.' rotation in degrees; ',' rotates back.
func WithRotateStep(deg float64) Option {
	if !finite(deg) || deg == 0 {
		panic(panicAngleInvalid)
	}

	return func(o *options) { o.angle = deg }
}

// WithSceneFile sets the file used by the save and load keys.
func WithSceneFile(path string) Option {
	if path == "" {
		panic(panicFileInvalid)
	}

	return func(o *options) { o.file = path }
}

// WithHelpWriter sets where the key help is printed; nil discards it.
func WithHelpWriter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.help = w
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		step:  DefaultTranslateStep,
		zoom:  DefaultZoomFactor,
		angle: DefaultRotateStep,
		file:  DefaultSceneFile,
		help:  io.Discard,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
