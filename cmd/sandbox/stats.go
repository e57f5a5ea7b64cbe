package main

import (
	"fmt"

	"github.com/hubastard/canvas2d/engine/core"
)

// statsReporter puts the frame rate in the window title once a second.
type statsReporter struct {
	elapsed float64
	frames  int
}

func (r *statsReporter) Update(e *core.Engine, dt float64) {
	r.elapsed += dt
	r.frames++
	if r.elapsed < 1 {
		return
	}
	fps := float64(r.frames) / r.elapsed
	e.Window.SetTitle(fmt.Sprintf("%s | %.0f fps", e.Config.Title, fps))
	core.Logger().Debug("frame stats", "fps", fps, "frame", e.Frame, "uptime", e.Uptime())
	r.elapsed, r.frames = 0, 0
}
