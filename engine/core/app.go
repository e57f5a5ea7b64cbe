package core

import "time"

// App defines the canvas application hooks. Run calls them from the
// frame-driver thread, never concurrently.
type App interface {
	OnStart(e *Engine) error        // called once after window/device init
	OnUpdate(e *Engine, dt float64) // update phase: shapes may be mutated
	OnRender(e *Engine)             // render pass over the live shapes
	OnFrameEnd(e *Engine)           // reconciliation after the render pass
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window  Window
	Device  Device
	Input   *Input
	Objects *Objects
	Config  Config
	Frame   uint64
	start   time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	// Size is the logical canvas size in pixels used for normalization.
	Size() (int, int)
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Program and Buffer are opaque device handles.
type (
	Program uint32
	Buffer  uint32
)

// Device is the graphics API binding: it accepts vertex/index buffers and
// draws indexed triangle lists with one flat colour.
type Device interface {
	// CompileProgram compiles and links the shader pair. Compiler or linker
	// output is returned as a *ShaderCompileError.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	// UploadVertices stores tightly packed xyz float triples.
	UploadVertices(data []float32) (Buffer, error)
	UploadIndices(data []uint32) (Buffer, error)
	// DrawIndexed draws triangles*3 indices with the uniform current_color.
	DrawIndexed(p Program, vertices, indices Buffer, color [4]float32, triangles int) error
	DeleteBuffer(b Buffer)
	DeleteProgram(p Program)
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
