package canvas

import (
	"errors"
	"slices"
	"testing"

	"github.com/hubastard/canvas2d/engine/colors"
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var whiteish = colors.Color{R: 250, G: 250, B: 250, A: 255}

type fixedSize struct{ w, h int }

func (f fixedSize) Size() (int, int) { return f.w, f.h }

type draw struct {
	points []vector.Vector2
	color  colors.Color
}

type recordingDrawer struct {
	draws []draw
	hook  func(n int)
	err   error
}

func (d *recordingDrawer) DrawPolygon(points []vector.Vector2, color colors.Color) error {
	if d.err != nil {
		return d.err
	}
	d.draws = append(d.draws, draw{points: slices.Clone(points), color: color})
	if d.hook != nil {
		d.hook(len(d.draws))
	}
	return nil
}

func (d *recordingDrawer) colors() []colors.Color {
	out := make([]colors.Color, len(d.draws))
	for i, dr := range d.draws {
		out[i] = dr.color
	}
	return out
}

func (d *recordingDrawer) reset() { d.draws = nil }

func newTestScene(t *testing.T) (*Scene, *recordingDrawer) {
	t.Helper()
	d := &recordingDrawer{}
	s, err := NewScene(fixedSize{1000, 1000}, d)
	require.NoError(t, err)
	return s, d
}

func frame(t *testing.T, s *Scene) {
	t.Helper()
	require.NoError(t, s.Render())
	s.Flush()
}

func TestRenderInsertionOrder(t *testing.T) {
	s, d := newTestScene(t)
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	s.NewCircle(vector.V2(10, 10), 5, colors.Green)
	s.NewLine(vector.V2(0, 0), vector.V2(10, 10), 2, colors.Blue)
	_, err := s.NewPolygon([]vector.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, colors.Yellow)
	require.NoError(t, err)

	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow}, d.colors())
	assert.Len(t, d.draws[1].points, DefaultCirclePrecision)
	assert.Len(t, d.draws[0].points, 4)
}

func TestDestroyBeforeRenderDrawsOnce(t *testing.T) {
	s, d := newTestScene(t)
	r := s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	r.Destroy()
	assert.Equal(t, 1, s.Pending())

	frame(t, s)
	assert.Len(t, d.draws, 1)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Pending())

	d.reset()
	frame(t, s)
	assert.Empty(t, d.draws)
}

func TestDestroyDuringRender(t *testing.T) {
	s, d := newTestScene(t)
	a := s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	b := s.NewRectangle(vector.V2(20, 20), vector.V2(5, 5), colors.Green, 0)
	s.NewRectangle(vector.V2(30, 30), vector.V2(5, 5), colors.Blue, 0)

	// the first draw destroys its sibling; it is still drawn this pass
	d.hook = func(n int) {
		if n == 1 {
			b.Destroy()
			a.Destroy()
		}
	}
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red, colors.Green, colors.Blue}, d.colors())
	assert.Equal(t, 1, s.Len())

	d.hook = nil
	d.reset()
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Blue}, d.colors())
}

func TestAddDuringRenderDrawsNextFrame(t *testing.T) {
	s, d := newTestScene(t)
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	d.hook = func(n int) {
		if n == 1 {
			s.NewCircle(vector.V2(1, 1), 1, colors.Green)
		}
	}
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red}, d.colors())
	assert.Equal(t, 2, s.Len())

	d.hook = nil
	d.reset()
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red, colors.Green}, d.colors())
}

func TestDrawOnce(t *testing.T) {
	s, d := newTestScene(t)
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	s.DrawCircle(vector.V2(10, 10), 5, colors.Green)
	s.DrawLine(vector.V2(0, 0), vector.V2(10, 10), 2, colors.Blue)
	s.DrawRectangle(vector.V2(0, 0), vector.V2(10, 10), colors.Yellow, 0)
	require.NoError(t, s.DrawPolygon([]vector.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, colors.White))

	require.NoError(t, s.Render())
	assert.Equal(t, []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.White}, d.colors())
	assert.Equal(t, 4, s.Pending())
	assert.Equal(t, 4, s.Flush())

	d.reset()
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red}, d.colors())

	var degenerate *core.DegenerateGeometryError
	assert.ErrorAs(t, s.DrawPolygon([]vector.Vector2{{X: 0, Y: 0}}, colors.White), &degenerate)
}

func TestRenderIsolatesShapeErrors(t *testing.T) {
	s, d := newTestScene(t)
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	bad, err := s.NewPolygon([]vector.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, colors.Green)
	require.NoError(t, err)
	bad.Points = bad.Points[:2]
	s.NewCircle(vector.V2(10, 10), 5, colors.Blue)

	err = s.Render()
	require.Error(t, err)
	var degenerate *core.DegenerateGeometryError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 2, degenerate.Points)
	assert.Contains(t, err.Error(), "polygon 2")
	assert.Equal(t, []colors.Color{colors.Red, colors.Blue}, d.colors())
}

func TestRenderJoinsDrawerErrors(t *testing.T) {
	s, d := newTestScene(t)
	boom := errors.New("boom")
	d.err = boom
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)

	err := s.Render()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "rectangle 1")
	assert.Contains(t, err.Error(), "rectangle 2")
}

func TestRenderConfigurationErrors(t *testing.T) {
	s, err := NewScene(nil, &recordingDrawer{})
	require.NoError(t, err)
	var cfgErr *core.ConfigurationError
	require.ErrorAs(t, s.Render(), &cfgErr)
	assert.Equal(t, "canvas size provider", cfgErr.What)

	s.SetSizeProvider(fixedSize{100, 100})
	require.NoError(t, s.Render())

	s.SetDrawer(nil)
	require.ErrorAs(t, s.Render(), &cfgErr)
	assert.Equal(t, "shape renderer", cfgErr.What)
}

func TestRenderSkipsEmptyCanvas(t *testing.T) {
	d := &recordingDrawer{}
	size := &fixedSize{1000, 1000}
	s, err := NewScene(size, d)
	require.NoError(t, err)
	r := s.NewRectangle(vector.V2(10, 10), vector.V2(5, 5), colors.Red, 0)
	s.DrawCircle(vector.V2(10, 10), 5, colors.Green)

	for _, empty := range []fixedSize{{0, 0}, {0, 600}, {800, -1}} {
		*size = empty
		s.DrawLine(vector.Zero, vector.One, 1, colors.Blue)
		require.NoError(t, s.Render(), "size %v", empty)
		s.Flush()
	}
	assert.Empty(t, d.draws)
	assert.Equal(t, []Shape{r}, s.Shapes(), "draw-once shapes are dropped on skipped frames")
	assert.False(t, r.Destroyed())

	// the canvas comes back
	*size = fixedSize{1000, 1000}
	frame(t, s)
	assert.Equal(t, []colors.Color{colors.Red}, d.colors())

	_, err = s.Space()
	require.NoError(t, err)
	*size = fixedSize{0, 0}
	var cfgErr *core.ConfigurationError
	_, err = s.Space()
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFlushKeepsOrder(t *testing.T) {
	s, _ := newTestScene(t)
	var shapes []*Rectangle
	for i := 0; i < 5; i++ {
		shapes = append(shapes, s.NewRectangle(vector.V2(float32(i), 0), vector.One, colors.White, 0))
	}
	shapes[1].Destroy()
	shapes[3].Destroy()

	assert.Equal(t, 2, s.Flush())
	var ids []uint64
	for _, sh := range s.Shapes() {
		ids = append(ids, sh.base().ID())
	}
	assert.Equal(t, []uint64{1, 3, 5}, ids)
	assert.Zero(t, s.Flush())
}

func TestDestroyIsIdempotent(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.NewCircle(vector.Zero, 1, colors.White)
	c.Destroy()
	c.Destroy()
	require.NoError(t, c.Close())
	assert.True(t, c.Destroyed())
	assert.Equal(t, 1, s.Pending())

	s.Flush()
	c.Destroy()
	assert.Zero(t, s.Pending())
	assert.True(t, c.Destroyed())

	// a shape that never joined a scene can still be destroyed
	loose := &Line{}
	loose.Destroy()
	assert.True(t, loose.Destroyed())
}

func TestNewPolygon(t *testing.T) {
	s, _ := newTestScene(t)
	pts := []vector.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	p, err := s.NewPolygon(pts, colors.White)
	require.NoError(t, err)
	pts[0] = vector.V2(9, 9)
	assert.Equal(t, vector.Zero, p.Points[0])

	_, err = s.NewPolygon(pts[:2], colors.White)
	var degenerate *core.DegenerateGeometryError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, "polygon", degenerate.Shape)
	assert.Equal(t, 1, s.Len())
}

func TestClear(t *testing.T) {
	s, d := newTestScene(t)
	s.NewCircle(vector.Zero, 1, colors.White)
	s.NewLine(vector.Zero, vector.One, 1, colors.White)
	s.Clear()
	assert.Equal(t, 2, s.Pending())

	frame(t, s)
	assert.Len(t, d.draws, 2)
	assert.Zero(t, s.Len())
}

func TestNewSceneRejectsLowPrecision(t *testing.T) {
	_, err := NewScene(fixedSize{10, 10}, &recordingDrawer{}, WithCirclePrecision(2))
	var degenerate *core.DegenerateGeometryError
	assert.ErrorAs(t, err, &degenerate)

	s, err := NewScene(fixedSize{10, 10}, &recordingDrawer{}, WithCirclePrecision(6))
	require.NoError(t, err)
	sp, err := s.Space()
	require.NoError(t, err)
	assert.Equal(t, 6, sp.CirclePrecision)
}

func TestShapeIDsAreUnique(t *testing.T) {
	s, _ := newTestScene(t)
	seen := map[uint64]bool{}
	for i := 0; i < 10; i++ {
		c := s.NewCircle(vector.Zero, 1, colors.White)
		assert.False(t, seen[c.ID()])
		seen[c.ID()] = true
	}
}
