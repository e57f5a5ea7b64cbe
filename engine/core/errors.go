package core

import "fmt"

// ConfigurationError reports use of the canvas before the piece it needs
// (canvas size, device, pipeline) has been set up.
type ConfigurationError struct {
	What string
}

func (e *ConfigurationError) Error() string {
	return "canvas not configured: " + e.What
}

// DegenerateGeometryError reports a shape that cannot be triangulated.
type DegenerateGeometryError struct {
	Shape  string
	Points int
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate %s: %d points, need at least 3", e.Shape, e.Points)
}

// ShaderCompileError carries the driver's compiler or linker log verbatim.
type ShaderCompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader error: %s", e.Stage, e.Log)
}
