package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "slab.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window.Title != def.Window.Title || cfg.Backend != def.Backend {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if !cfg.Window.VSyncOn() {
		t.Fatal("vsync must default on")
	}
}

func TestLoadOverlaysOnDefaults(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, `
window:
  title: editor
  width: 1920
  height: 1080
  vsync: false
backend: raylib
ui:
  max_panels: 256
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "editor" || cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Window.VSyncOn() {
		t.Fatal("explicit vsync: false must win over the default")
	}
	if cfg.Backend != "raylib" {
		t.Fatalf("backend = %q", cfg.Backend)
	}
	if cfg.UI.MaxPanels != 256 {
		t.Fatalf("max_panels = %d", cfg.UI.MaxPanels)
	}
	// Untouched sections keep their defaults.
	if cfg.Font.Size != 14 || cfg.Scratch.Capacity != 4096 {
		t.Fatalf("defaults lost: font=%+v scratch=%+v", cfg.Font, cfg.Scratch)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "backend: vulkan\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("unknown backend must be rejected")
	}
}

func TestLoadRejectsNonPositiveWindow(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "window:\n  width: 0\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("zero window width must be rejected")
	}
}

func TestClearColorRGBA(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [4]float32
		wantErr bool
	}{
		{"rgb is opaque", "#FF0000", [4]float32{1, 0, 0, 1}, false},
		{"argb keeps alpha", "#80FFFFFF", [4]float32{1, 1, 1, float32(0x80) / 255}, false},
		{"black", "#000000", [4]float32{0, 0, 0, 1}, false},
		{"bad length", "#FFF", [4]float32{}, true},
		{"not hex", "#GGGGGG", [4]float32{}, true},
		{"empty", "", [4]float32{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowConfig{ClearColor: tt.in}.ClearColorRGBA()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ClearColorRGBA(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ClearColorRGBA(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
