package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	frames  int // ShouldClose turns true after this many frames
	polls   int
	swaps   int
	onEvent func(Event)
	pending []Event
	closed  bool
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	for _, ev := range w.pending {
		w.onEvent(ev)
	}
	w.pending = nil
}
func (w *fakeWindow) SwapBuffers()                    { w.swaps++ }
func (w *fakeWindow) ShouldClose() bool               { return w.closed || w.swaps >= w.frames }
func (w *fakeWindow) RequestClose()                   { w.closed = true }
func (w *fakeWindow) Size() (int, int)                { return 1000, 1000 }
func (w *fakeWindow) FramebufferSize() (int, int)     { return 1000, 1000 }
func (w *fakeWindow) SetTitle(string)                 {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.onEvent = cb }

type nopDevice struct {
	clears   int
	resizes  int
	shutdown bool
	log      *[]string
}

func (d *nopDevice) CompileProgram(string, string) (Program, error) { return 1, nil }
func (d *nopDevice) UploadVertices([]float32) (Buffer, error)       { return 1, nil }
func (d *nopDevice) UploadIndices([]uint32) (Buffer, error)         { return 2, nil }
func (d *nopDevice) DrawIndexed(Program, Buffer, Buffer, [4]float32, int) error {
	return nil
}
func (d *nopDevice) DeleteBuffer(Buffer)   {}
func (d *nopDevice) DeleteProgram(Program) {}
func (d *nopDevice) Resize(int, int)       { d.resizes++ }
func (d *nopDevice) Clear(float32, float32, float32, float32) {
	d.clears++
	*d.log = append(*d.log, "clear")
}
func (d *nopDevice) Shutdown() { d.shutdown = true }

type recordingApp struct {
	log      *[]string
	startErr error
	events   []Event
}

func (a *recordingApp) OnStart(*Engine) error       { *a.log = append(*a.log, "start"); return a.startErr }
func (a *recordingApp) OnUpdate(*Engine, float64)   { *a.log = append(*a.log, "update") }
func (a *recordingApp) OnRender(*Engine)            { *a.log = append(*a.log, "render") }
func (a *recordingApp) OnFrameEnd(*Engine)          { *a.log = append(*a.log, "end") }
func (a *recordingApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *recordingApp) OnShutdown(*Engine)          { *a.log = append(*a.log, "shutdown") }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.VSync = false
	cfg.FrameRate = 0
	return cfg
}

func TestRunPhaseOrder(t *testing.T) {
	var log []string
	win := &fakeWindow{frames: 2}
	dev := &nopDevice{log: &log}
	app := &recordingApp{log: &log}

	err := Run(app, testConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Device, error) { return dev, nil },
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start",
		"update", "clear", "render", "end",
		"update", "clear", "render", "end",
		"shutdown",
	}, log)
	assert.Equal(t, 2, win.polls)
	assert.True(t, dev.shutdown)
	assert.Equal(t, 1, dev.resizes)
}

func TestRunObjectsBeforeAppUpdate(t *testing.T) {
	var log []string
	win := &fakeWindow{frames: 1}
	app := &recordingApp{log: &log}
	dev := &nopDevice{log: &log}

	var remove func()
	wrapped := &startHook{recordingApp: app, hook: func(e *Engine) {
		remove = e.Objects.Add(UpdateFunc(func(*Engine, float64) {
			log = append(log, "object")
			remove()
		}))
	}}

	err := Run(wrapped, testConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Device, error) { return dev, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "object", "update", "clear", "render", "end", "shutdown"}, log)
}

type startHook struct {
	*recordingApp
	hook func(*Engine)
}

func (s *startHook) OnStart(e *Engine) error {
	err := s.recordingApp.OnStart(e)
	s.hook(e)
	return err
}

func TestRunNoBackgroundSkipsClear(t *testing.T) {
	var log []string
	cfg := testConfig()
	cfg.Background = ""
	dev := &nopDevice{log: &log}

	err := Run(&recordingApp{log: &log}, cfg,
		func(Config) (Window, error) { return &fakeWindow{frames: 3}, nil },
		func(Window, Config) (Device, error) { return dev, nil },
	)
	require.NoError(t, err)
	assert.Zero(t, dev.clears)
}

func TestRunEventsReachInputAndApp(t *testing.T) {
	var log []string
	win := &fakeWindow{frames: 1, pending: []Event{
		EventMouseMove{X: 12, Y: 34},
		EventMouseButton{Button: MouseLeft, Down: true},
		EventResize{W: 800, H: 600},
	}}
	dev := &nopDevice{log: &log}
	app := &recordingApp{log: &log}
	var input *Input
	hooked := &startHook{recordingApp: app, hook: func(e *Engine) { input = e.Input }}

	err := Run(hooked, testConfig(),
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Device, error) { return dev, nil },
	)
	require.NoError(t, err)
	assert.Len(t, app.events, 3)
	assert.True(t, input.MouseDown())
	assert.Equal(t, 2, dev.resizes)
}

func TestRunErrors(t *testing.T) {
	var log []string
	boom := errors.New("boom")

	err := Run(&recordingApp{log: &log}, testConfig(),
		func(Config) (Window, error) { return nil, boom },
		func(Window, Config) (Device, error) { return nil, nil },
	)
	assert.ErrorIs(t, err, boom)

	dev := &nopDevice{log: &log}
	err = Run(&recordingApp{log: &log, startErr: boom}, testConfig(),
		func(Config) (Window, error) { return &fakeWindow{frames: 1}, nil },
		func(Window, Config) (Device, error) { return dev, nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.True(t, dev.shutdown)

	bad := testConfig()
	bad.Width = 0
	err = Run(&recordingApp{log: &log}, bad, nil, nil)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
