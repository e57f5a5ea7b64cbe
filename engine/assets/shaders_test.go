package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedShaders(t *testing.T) {
	vs, err := LoadShader("shape.vert")
	require.NoError(t, err)
	assert.Contains(t, vs, "uniform vec4 current_color;")
	assert.Contains(t, vs, "in vec3 vPos;")

	fs, err := LoadShader("shape.frag")
	require.NoError(t, err)
	assert.Contains(t, fs, "FragColor = out_color;")

	_, err = LoadShader("missing.vert")
	assert.Error(t, err)
}

func TestShaderDirOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.frag"), []byte("override"), 0o644))
	ShaderDir = dir
	t.Cleanup(func() { ShaderDir = "" })

	fs, err := LoadShader("shape.frag")
	require.NoError(t, err)
	assert.Equal(t, "override", fs)

	// files missing from the directory fall back to the embedded copy
	vs, err := LoadShader("shape.vert")
	require.NoError(t, err)
	assert.Contains(t, vs, "#version 330 core")
}
