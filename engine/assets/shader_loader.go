// Package assets resolves files shipped alongside the binary.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

const shadersDir = "assets/shaders"

// LoadShader reads the GLSL source for name from the shaders directory
// and returns it NUL-terminated, the form gl.Str expects.
func LoadShader(name string) (string, error) {
	src, err := os.ReadFile(filepath.Join(shadersDir, name))
	if err != nil {
		return "", fmt.Errorf("shader %s: %w", name, err)
	}
	if n := len(src); n == 0 || src[n-1] != 0 {
		src = append(src, 0)
	}
	return string(src), nil
}
