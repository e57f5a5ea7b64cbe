package canvas

import (
	"errors"
	"fmt"

	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/gfx/renderer2d"
)

// App runs a Scene under core.Run: the scene is rendered once per frame
// after the update hooks and flushed after the render pass.
type App struct {
	// Load is called once after the pipeline and scene exist.
	Load func(e *core.Engine, s *Scene) error
	// Update is called once per frame before the render pass.
	Update func(e *core.Engine, s *Scene, dt float64)
	// Event receives window and input events.
	Event func(e *core.Engine, s *Scene, ev core.Event)

	scene *Scene
	r2d   *renderer2d.Renderer2D
	stats renderer2d.Statistics
	err   error
}

// Scene returns the app's scene; nil before OnStart.
func (a *App) Scene() *Scene { return a.scene }

// Stats returns the renderer statistics of the last completed frame.
func (a *App) Stats() renderer2d.Statistics { return a.stats }

// Err returns the configuration error that stopped the frame loop, if any.
func (a *App) Err() error { return a.err }

func (a *App) OnStart(e *core.Engine) error {
	r2d, err := renderer2d.New(e.Device)
	if err != nil {
		return err
	}
	scene, err := NewScene(e.Window, r2d, WithCirclePrecision(e.Config.CirclePrecision))
	if err != nil {
		r2d.Shutdown()
		return err
	}
	a.r2d, a.scene = r2d, scene

	if a.Load != nil {
		if err := a.Load(e, scene); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if a.Update != nil {
		a.Update(e, a.scene, dt)
	}
}

func (a *App) OnRender(e *core.Engine) {
	a.r2d.BeginFrame()
	err := a.scene.Render()
	a.stats = a.r2d.Stats()
	if err == nil {
		return
	}
	var cfgErr *core.ConfigurationError
	if errors.As(err, &cfgErr) {
		// Rendering cannot succeed on later frames either.
		core.Logger().Error("render pass failed", "error", err)
		a.err = err
		e.Window.RequestClose()
	}
}

func (a *App) OnFrameEnd(*core.Engine) {
	a.scene.Flush()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if a.Event != nil && a.scene != nil {
		a.Event(e, a.scene, ev)
	}
}

func (a *App) OnShutdown(*core.Engine) {
	if a.scene != nil {
		a.scene.Clear()
		a.scene.Flush()
	}
	if a.r2d != nil {
		a.r2d.Shutdown()
	}
}
