package main

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/canvas2d/engine/canvas"
	"github.com/hubastard/canvas2d/engine/colors"
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/profiler"
	"github.com/hubastard/canvas2d/engine/vector"
	"golang.org/x/image/colornames"
)

// demo draws a few persistent shapes, a line that follows the mouse while
// a button is held and a trail of draw-once dots.
type demo struct {
	line    *canvas.Line
	spinner *canvas.Rectangle
	t       float32

	profilePath string
}

func (d *demo) load(e *core.Engine, s *canvas.Scene) error {
	d.line = s.NewLine(vector.V2(750, 750), vector.V2(500, 500), 10, colors.SkyBlue)
	d.spinner = s.NewRectangleWithPivot(vector.V2(200, 200), vector.V2(120, 60), vector.Splat(0.5), colors.FromStd(colornames.Orange), 0)
	s.NewCircle(vector.V2(800, 200), 40, colors.Green)
	if _, err := s.NewPolygon([]vector.Vector2{
		{X: 150, Y: 850}, {X: 300, Y: 650}, {X: 450, Y: 850},
	}, colors.Yellow.WithAlpha(200)); err != nil {
		return err
	}

	e.Objects.Add(&statsReporter{})
	return nil
}

func (d *demo) update(e *core.Engine, s *canvas.Scene, dt float64) {
	d.t += float32(dt)
	d.spinner.Rotation = d.t

	if e.Input.MouseDown() {
		if p, err := e.Input.MousePosition(); err == nil {
			d.line.End = p
		}
	}

	// orbiting dots, recreated every frame
	for i := 0; i < 6; i++ {
		arc := d.t + float32(i)*math32.Pi/3
		p := vector.V2(math32.Cos(arc), math32.Sin(arc)).Scale(90).Add(vector.V2(800, 200))
		s.DrawCircle(p, 8, colors.White)
	}
}

func (d *demo) event(e *core.Engine, s *canvas.Scene, ev core.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return
		}
		switch v.Key {
		case core.KeyEscape:
			e.Window.RequestClose()
		case core.KeyP:
			if v.Mods&core.ModCtrl != 0 && d.profilePath != "" {
				if err := profiler.Dump(d.profilePath, e.Config.Title); err != nil {
					core.Logger().Warn("write profile", "error", err)
				}
			}
		case core.KeySpace:
			// drop a marker under the cursor
			if p, err := e.Input.MousePosition(); err == nil {
				s.NewCircle(p, 12, colors.Red)
			}
		}
	case core.EventMouseButton:
		if v.Down && v.Button == core.MouseRight {
			d.line.End = d.line.Start
		}
	}
}
