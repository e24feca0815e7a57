package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShader(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(filepath.Join("assets", "shaders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("assets", "shaders", "quad.vert"), []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := LoadShader("quad.vert")
	if err != nil {
		t.Fatal(err)
	}
	if src != "void main() {}\x00" {
		t.Fatalf("src = %q, want the source NUL-terminated", src)
	}

	if _, err := LoadShader("missing.frag"); err == nil {
		t.Fatal("a missing shader file must error")
	}
}
