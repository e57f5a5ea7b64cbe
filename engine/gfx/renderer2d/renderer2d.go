package renderer2d

import (
	"fmt"

	"github.com/hubastard/canvas2d/engine/assets"
	"github.com/hubastard/canvas2d/engine/colors"
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/vector"
)

// Vertex: pos3 (z is always 0)
const vStride = 3

// Shader names of the fixed shape pipeline.
const (
	VertexShader   = "shape.vert"
	FragmentShader = "shape.frag"
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	Triangles int
	Vertices  int
}

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.Triangles * 3 }

// Renderer2D draws convex point sets as triangle fans, one draw call and
// one flat colour per shape. Buffers are created and released per call;
// there is no batching.
type Renderer2D struct {
	dev   core.Device
	prog  core.Program
	stats Statistics

	verts []float32
	inds  []uint32
}

// New compiles the fixed shader pipeline on dev.
func New(dev core.Device) (*Renderer2D, error) {
	if dev == nil {
		return nil, &core.ConfigurationError{What: "graphics device"}
	}
	vs, err := assets.LoadShader(VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader(FragmentShader)
	if err != nil {
		return nil, err
	}
	prog, err := dev.CompileProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("compile shape pipeline: %w", err)
	}
	core.Logger().Debug("shape pipeline compiled", "program", prog)
	return &Renderer2D{dev: dev, prog: prog}, nil
}

// BeginFrame resets the per-frame statistics.
func (rd *Renderer2D) BeginFrame() { rd.stats = Statistics{} }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawPolygon triangulates points as a fan around points[0] and draws it
// in color. Non-convex or inconsistently wound input draws overlapping or
// missing triangles; it is not rejected.
func (rd *Renderer2D) DrawPolygon(points []vector.Vector2, color colors.Color) error {
	if rd.dev == nil {
		return &core.ConfigurationError{What: "shape pipeline"}
	}
	if len(points) < 3 {
		return &core.DegenerateGeometryError{Shape: "polygon", Points: len(points)}
	}

	rd.verts = AppendVertexData(rd.verts[:0], points)
	rd.inds = AppendFanIndices(rd.inds[:0], len(points))

	vb, err := rd.dev.UploadVertices(rd.verts)
	if err != nil {
		return fmt.Errorf("upload vertices: %w", err)
	}
	defer rd.dev.DeleteBuffer(vb)

	ib, err := rd.dev.UploadIndices(rd.inds)
	if err != nil {
		return fmt.Errorf("upload indices: %w", err)
	}
	defer rd.dev.DeleteBuffer(ib)

	triangles := len(points) - 2
	if err := rd.dev.DrawIndexed(rd.prog, vb, ib, color.Floats(), triangles); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	rd.stats.DrawCalls++
	rd.stats.Triangles += triangles
	rd.stats.Vertices += len(points)
	return nil
}

// Shutdown releases the shader program.
func (rd *Renderer2D) Shutdown() {
	if rd.dev == nil {
		return
	}
	rd.dev.DeleteProgram(rd.prog)
	rd.dev = nil
}

// FanIndices returns the 3*(n-2) indices of a triangle fan over n points:
// (0,1,2), (0,2,3), ... (0,n-2,n-1).
func FanIndices(n int) []uint32 {
	if n < 3 {
		return nil
	}
	return AppendFanIndices(make([]uint32, 0, (n-2)*3), n)
}

func AppendFanIndices(dst []uint32, n int) []uint32 {
	for i := uint32(1); int(i) < n-1; i++ {
		dst = append(dst, 0, i, i+1)
	}
	return dst
}

// VertexData flattens points to [x0,y0,0, x1,y1,0, ...].
func VertexData(points []vector.Vector2) []float32 {
	return AppendVertexData(make([]float32, 0, len(points)*vStride), points)
}

func AppendVertexData(dst []float32, points []vector.Vector2) []float32 {
	for _, p := range points {
		dst = append(dst, p.X, p.Y, 0)
	}
	return dst
}
