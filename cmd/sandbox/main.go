package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/canvas2d/engine/canvas"
	"github.com/hubastard/canvas2d/engine/core"
	glbackend "github.com/hubastard/canvas2d/engine/gfx/gl"
	"github.com/hubastard/canvas2d/engine/platform"
	"github.com/hubastard/canvas2d/engine/profiler"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	verbose := flag.Bool("v", false, "log debug output")
	profilePath := flag.String("profile", "", "record frame scopes and write a speedscope profile here on exit")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := core.Logger()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			log.Error("load settings", "error", err)
			os.Exit(1)
		}
	}

	if *profilePath != "" {
		profiler.Enable(1 << 20)
	}

	d := &demo{profilePath: *profilePath}
	app := &canvas.App{Load: d.load, Update: d.update, Event: d.event}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		win = w
		return w, err
	}
	newDevice := func(w core.Window, cfg core.Config) (core.Device, error) {
		dev, err := glbackend.NewDeviceGL(w, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("gpu", "vendor", dev.GPUVendor(), "renderer", dev.GPURenderer(), "version", dev.GPUVersion())
		return dev, nil
	}

	err := core.Run(app, cfg, newWindow, newDevice)
	if win != nil {
		win.Destroy()
	}
	if *profilePath != "" {
		if perr := profiler.Dump(*profilePath, cfg.Title); perr != nil {
			log.Warn("write profile", "error", perr)
		} else {
			log.Info("profile written", "path", *profilePath)
		}
	}
	if err == nil {
		err = app.Err()
	}
	if err != nil {
		log.Error("sandbox stopped", "error", err)
		os.Exit(1)
	}
}
