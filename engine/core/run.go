package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/canvas2d/engine/profiler"
)

// Run wires the platform window + device and executes the frame loop.
//
// Each frame runs, strictly in order and on the calling thread: event
// polling, the update phase (Objects, then App.OnUpdate), clear, the render
// pass (App.OnRender) and reconciliation (App.OnFrameEnd).
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}
	bg, doClear, _ := cfg.ClearColor()
	log := Logger()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	dev, err := newDevice(win, cfg)
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	defer dev.Shutdown()

	w, h := win.FramebufferSize()
	dev.Resize(w, h)

	eng := &Engine{
		Window:  win,
		Device:  dev,
		Input:   NewInput(),
		Objects: &Objects{},
		Config:  cfg,
		start:   time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			dev.Resize(fw, fh)
		}
	})

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	log.Info("engine start", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	var budget time.Duration
	if !cfg.VSync && cfg.FrameRate > 0 {
		budget = time.Second / time.Duration(cfg.FrameRate)
	}
	clearRGBA := bg.Floats()
	prev := time.Now()

	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(prev).Seconds()
		prev = now

		endFrame := profiler.Start("frame")

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Update
		endPhase := profiler.Start("update")
		eng.Objects.Update(eng, dt)
		app.OnUpdate(eng, dt)
		endPhase()

		// Render
		endPhase = profiler.Start("render")
		if doClear {
			dev.Clear(clearRGBA[0], clearRGBA[1], clearRGBA[2], clearRGBA[3])
		}
		app.OnRender(eng)
		endPhase()

		// Reconcile
		endPhase = profiler.Start("frame end")
		app.OnFrameEnd(eng)
		endPhase()

		// Present
		win.SwapBuffers()
		endFrame()
		eng.Frame++

		if budget > 0 {
			if spent := time.Since(now); spent < budget {
				time.Sleep(budget - spent)
			}
		}
	}

	app.OnShutdown(eng)
	log.Info("engine exit", "frames", eng.Frame, "uptime", eng.Uptime())
	return nil
}
