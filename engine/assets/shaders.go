package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed shaders
var shaderFS embed.FS

// ShaderDir, when set, is searched before the embedded shaders so GLSL can
// be edited without rebuilding.
var ShaderDir string

// LoadShader returns the GLSL source of the named shader.
func LoadShader(name string) (string, error) {
	if ShaderDir != "" {
		b, err := os.ReadFile(filepath.Join(ShaderDir, name))
		if err == nil {
			return string(b), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("load shader %q: %w", name, err)
		}
	}
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}
