// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvdraw"
	"github.com/katalvlaran/lvdraw/matrix"
	"github.com/katalvlaran/lvdraw/raster"
	"github.com/katalvlaran/lvdraw/scene"
	"github.com/katalvlaran/lvdraw/shape"
	"github.com/katalvlaran/lvdraw/surface"
	"github.com/katalvlaran/lvdraw/view"
)

// Canvas is the drawing surface a Session paints on.
// *surface.Canvas satisfies it.
type Canvas interface {
	scene.Canvas
	SetMode(m surface.Mode)
}

type mouseState int

const (
	released mouseState = iota
	clicked
	dragging
)

// Session turns mouse and key events into shapes and view changes.
// Event coordinates are device pixels. Safe for concurrent use; events are
// applied one at a time.
type Session struct {
	mu sync.Mutex

	cv  Canvas
	vc  *view.Context
	img *scene.Image
	opt options

	mode   shape.Kind
	color  surface.Color
	rubber bool
	xor    bool
	mouse  mouseState

	clicks *matrix.Dense // 4×mode.Vertices(), device space
	n      int           // clicks gathered

	x0, y0  int  // rubber band anchor
	x1, y1  int  // last cursor position
	preview bool // a rubber band preview is on the canvas
}

// New starts a session in point mode with white as the draw color.
// img may be nil for an empty scene.
func New(cv Canvas, vc *view.Context, img *scene.Image, opts ...Option) *Session {
	if img == nil {
		img = scene.New()
	}
	s := &Session{
		cv:    cv,
		vc:    vc,
		img:   img,
		opt:   gatherOptions(opts...),
		mode:  shape.KindPoint,
		color: surface.White,
	}
	s.resetClicks()
	cv.SetColor(s.color)

	return s
}

// Mode returns the shape kind being drawn.
func (s *Session) Mode() shape.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// Color returns the color new shapes get.
func (s *Session) Color() surface.Color {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.color
}

// Rubber reports whether rubber band mode is on.
func (s *Session) Rubber() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rubber
}

// Pending returns how many clicks of the current shape were gathered.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.n
}

// Image returns the scene being edited.
func (s *Session) Image() *scene.Image { return s.img }

// View returns the view context.
func (s *Session) View() *view.Context { return s.vc }

// Paint clears the canvas and redraws the scene.
func (s *Session) Paint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.redraw()
}

// MouseDown records a vertex at device (x, y).
func (s *Session) MouseDown(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.n >= s.clicks.Cols() {
		return
	}
	if s.n == 0 {
		s.x0, s.y0, s.x1, s.y1 = x, y, x, y
	}
	s.addClick(x, y)
	if !s.rubber {
		s.cv.SetColor(s.color)
		s.cv.SetPixel(x, y)
	} else {
		s.setXOR(true)
	}
	s.mouse = clicked
}

// MouseMove updates the rubber band preview; it does nothing outside
// rubber band mode.
func (s *Session) MouseMove(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rubber {
		return
	}
	switch {
	case s.mouse != released && s.n == 1 && s.mode != shape.KindPoint:
		s.mouse = dragging
		s.erasePreview()
		s.x1, s.y1 = x, y
		s.drawPreview()
	case s.mouse == released && s.mode == shape.KindTriangle && s.n == 2:
		s.erasePreview()
		s.x1, s.y1 = x, y
		s.drawPreview()
	}
}

// MouseUp ends a press. In rubber band mode the release point of a drag is
// the next vertex. A completed shape is converted to model space, added to
// the scene and drawn.
func (s *Session) MouseUp(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rubber {
		switch {
		case s.n == 1 && s.mode != shape.KindPoint:
			s.erasePreview()
			s.addClick(x, y)
			s.x1, s.y1 = x, y
		case s.n == 3:
			s.erasePreview()
		}
		if !(s.mode == shape.KindTriangle && s.n == 2) {
			s.setXOR(false)
		}
	}
	s.mouse = released

	if s.n < s.clicks.Cols() {
		return nil
	}

	return s.complete()
}

// KeyDown handles one key press. Unknown keys print the help text.
func (s *Session) KeyDown(k Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kind, ok := modeKeys[k]; ok {
		if kind != s.mode {
			s.cancel()
			s.mode = kind
			s.resetClicks()
		}

		return nil
	}
	if k >= '0' && k <= '9' {
		s.color = palette[k-'0']
		s.cv.SetColor(s.color)

		return nil
	}

	var err error
	switch k {
	case 'r', 'R':
		s.cancel()
		s.rubber = !s.rubber
		lvdraw.Logger().Debug("session: rubber band", "on", s.rubber)

		return nil
	case 's', 'S':
		return s.img.SaveFile(s.opt.file)
	case 'f', 'F':
		loaded, lerr := scene.LoadFile(s.opt.file)
		if lerr != nil {
			return lerr
		}
		s.cancel()
		s.img.Replace(loaded)
	case KeyLeft:
		err = s.vc.Translate(-s.opt.step, 0)
	case KeyUp:
		err = s.vc.Translate(0, s.opt.step)
	case KeyRight:
		err = s.vc.Translate(s.opt.step, 0)
	case KeyDown:
		err = s.vc.Translate(0, -s.opt.step)
	case '+':
		err = s.vc.Scale(s.opt.zoom, s.opt.zoom)
	case '-':
		err = s.vc.Scale(1/s.opt.zoom, 1/s.opt.zoom)
	case '.':
		err = s.vc.Rotate(s.opt.angle)
	case ',':
		err = s.vc.Rotate(-s.opt.angle)
	case 'e', 'E':
		s.vc.Reset()
	default:
		lvdraw.Logger().Warn("session: unknown key", "key", k.String())
		writeHelp(s.opt.help, s.opt)

		return nil
	}
	if err != nil {
		return fmt.Errorf("KeyDown(%s): %w", k, err)
	}

	return s.redraw()
}

// redraw repaints the scene in normal mode; the XOR state is restored.
func (s *Session) redraw() error {
	s.cv.SetMode(surface.ModeNormal)
	err := s.img.Draw(s.cv, s.vc)
	s.preview = false
	if s.xor {
		s.cv.SetMode(surface.ModeXOR)
	}
	s.cv.SetColor(s.color)

	return err
}

// complete turns the gathered clicks into a shape.
func (s *Session) complete() error {
	defer s.resetClicks()

	model, err := s.vc.DeviceToModel(s.clicks)
	if err != nil {
		return fmt.Errorf("MouseUp: %w", err)
	}
	sh, err := shape.FromVertices(s.mode, model, s.color)
	if err != nil {
		return fmt.Errorf("MouseUp: %w", err)
	}
	if err = s.img.Add(sh); err != nil {
		return fmt.Errorf("MouseUp: %w", err)
	}
	if err = sh.Draw(s.cv, s.vc); err != nil {
		return fmt.Errorf("MouseUp: %w", err)
	}
	s.cv.SetColor(s.color)
	lvdraw.Logger().Info("session: shape added", "kind", s.mode.String(), "color", s.color.Hex(), "shapes", s.img.Len())

	return nil
}

func (s *Session) addClick(x, y int) {
	// Column n always exists: callers check n < Cols.
	_ = matrix.SetPointXY(s.clicks, s.n, float64(x), float64(y))
	s.n++
}

func (s *Session) resetClicks() {
	s.clicks, _ = matrix.NewPoints(s.mode.Vertices())
	s.n = 0
	s.preview = false
}

// cancel drops a shape in progress and its preview.
func (s *Session) cancel() {
	s.erasePreview()
	s.setXOR(false)
	s.mouse = released
	s.resetClicks()
}

func (s *Session) setXOR(on bool) {
	s.xor = on
	if on {
		s.cv.SetMode(surface.ModeXOR)
	} else {
		s.cv.SetMode(surface.ModeNormal)
	}
}

// drawPreview XORs the rubber band for the current cursor position.
func (s *Session) drawPreview() {
	s.cv.SetColor(s.color)
	switch s.mode {
	case shape.KindLine:
		raster.DrawLine(s.cv, s.x0, s.y0, s.x1, s.y1)
	case shape.KindCircle:
		r := int(math.Round(math.Hypot(float64(s.x1-s.x0), float64(s.y1-s.y0))))
		raster.DrawCircle(s.cv, s.x0, s.y0, r)
	case shape.KindTriangle:
		if s.n == 1 {
			raster.DrawLine(s.cv, s.x0, s.y0, s.x1, s.y1)
			break
		}
		x, y := s.vertex(1)
		raster.DrawLine(s.cv, s.x0, s.y0, s.x1, s.y1)
		raster.DrawLine(s.cv, x, y, s.x1, s.y1)
	}
	s.preview = true
}

// erasePreview removes the preview by drawing it again in XOR mode.
func (s *Session) erasePreview() {
	if !s.preview {
		return
	}
	s.drawPreview()
	s.preview = false
}

// vertex returns gathered click j as integer device coordinates.
func (s *Session) vertex(j int) (int, int) {
	x, y, _ := matrix.PointXY(s.clicks, j)

	return int(x), int(y)
}
