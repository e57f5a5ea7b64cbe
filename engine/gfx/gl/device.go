package glbackend

import (
	"context"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canvas2d/engine/core"
)

// DeviceGL implements core.Device on an OpenGL 3.3 core context. The
// context must be current on the calling thread.
type DeviceGL struct {
	vao uint32
	// uniform locations per program
	colorLoc map[core.Program]int32
}

func NewDeviceGL(_ core.Window, _ core.Config) (*DeviceGL, error) {
	d := &DeviceGL{colorLoc: map[core.Program]int32{}}
	d.Init()
	return d, nil
}

// Init creates the vertex array object every upload and draw is recorded
// into. Core profiles reject element buffer bindings without one.
func (d *DeviceGL) Init() {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	if hasExtension("GL_KHR_debug") {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(logDebugMessage, nil)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func hasExtension(name string) bool {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := uint32(0); i < uint32(n); i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)) == name {
			return true
		}
	}
	return false
}

func logDebugMessage(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
	core.Logger().Log(context.Background(), debugLevel(gltype, severity), "gl debug",
		"source", source, "type", gltype, "id", id, "severity", severity, "message", message)
}

// debugLevel maps driver errors and high-severity messages to Warn and
// everything else to Debug.
func debugLevel(gltype, severity uint32) slog.Level {
	if gltype == gl.DEBUG_TYPE_ERROR || severity == gl.DEBUG_SEVERITY_HIGH {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

func (d *DeviceGL) Shutdown() {
	for p := range d.colorLoc {
		gl.DeleteProgram(uint32(p))
	}
	clear(d.colorLoc)
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *DeviceGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *DeviceGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *DeviceGL) CompileProgram(vertexSrc, fragmentSrc string) (core.Program, error) {
	prog, err := makeProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	p := core.Program(prog)
	d.colorLoc[p] = gl.GetUniformLocation(prog, gl.Str("current_color\x00"))
	core.Logger().Debug("gl program linked", "program", prog)
	return p, nil
}

func (d *DeviceGL) DeleteProgram(p core.Program) {
	if _, ok := d.colorLoc[p]; !ok {
		return
	}
	delete(d.colorLoc, p)
	gl.DeleteProgram(uint32(p))
}

func (d *DeviceGL) UploadVertices(data []float32) (core.Buffer, error) {
	var vbo uint32
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	return core.Buffer(vbo), nil
}

func (d *DeviceGL) UploadIndices(data []uint32) (core.Buffer, error) {
	var ebo uint32
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	return core.Buffer(ebo), nil
}

func (d *DeviceGL) DrawIndexed(p core.Program, vertices, indices core.Buffer, color [4]float32, triangles int) error {
	loc, ok := d.colorLoc[p]
	if !ok {
		return &core.ConfigurationError{What: "unknown shader program"}
	}
	gl.UseProgram(uint32(p))
	gl.BindVertexArray(d.vao)

	// layout(location = 0) in vec3 vPos;
	const stride = 3 * 4 // bytes
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vertices))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(indices))

	gl.Uniform4f(loc, color[0], color[1], color[2], color[3])
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(triangles*3), gl.UNSIGNED_INT, 0)
	return nil
}

func (d *DeviceGL) DeleteBuffer(b core.Buffer) {
	buf := uint32(b)
	gl.DeleteBuffers(1, &buf)
}

// GPU info strings for logging.
func (d *DeviceGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (d *DeviceGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (d *DeviceGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// --- Shader utilities ---

func cstr(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func makeShader(src string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(cstr(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, &core.ShaderCompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &core.ShaderCompileError{Stage: "link", Log: strings.TrimRight(log, "\x00")}
	}
	return prog, nil
}
