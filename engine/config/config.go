// Package config reads the optional slab.yaml next to the binary.
// Every field has a sensible default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional slab.yaml configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Backend  string         `yaml:"backend"` // "gl" or "raylib"
	Font     FontConfig     `yaml:"font"`
	UI       UIConfig       `yaml:"ui"`
	Scratch  ScratchConfig  `yaml:"scratch"`
	Profiler ProfilerConfig `yaml:"profiler"`
}

type WindowConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	VSync      *bool  `yaml:"vsync,omitempty"`
	ClearColor string `yaml:"clear_color,omitempty"` // "#RRGGBB" or "#AARRGGBB"
}

type FontConfig struct {
	Path     string `yaml:"path,omitempty"`
	MonoPath string `yaml:"mono_path,omitempty"`
	Size     int    `yaml:"size,omitempty"`
}

// UIConfig bounds the fixed-capacity UI buffers.
type UIConfig struct {
	MaxPanels    int `yaml:"max_panels,omitempty"`
	MaxStack     int `yaml:"max_stack,omitempty"`
	MaxIDs       int `yaml:"max_ids,omitempty"`
	MaxOverrides int `yaml:"max_overrides,omitempty"`
	MaxRects     int `yaml:"max_rects,omitempty"`
	MaxTexts     int `yaml:"max_texts,omitempty"`
}

type ScratchConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

type ProfilerConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

// Default returns the configuration used when slab.yaml is absent.
func Default() Config {
	vsync := true
	return Config{
		Window: WindowConfig{
			Title:      "slab",
			Width:      1280,
			Height:     720,
			VSync:      &vsync,
			ClearColor: "#141A1F",
		},
		Backend: "gl",
		Font: FontConfig{
			Path:     filepath.Join("assets", "fonts", "Roboto.ttf"),
			MonoPath: filepath.Join("assets", "fonts", "RobotoMono.ttf"),
			Size:     14,
		},
		Scratch:  ScratchConfig{Capacity: 4096},
		Profiler: ProfilerConfig{Capacity: 1 << 10},
	}
}

// Load reads slab.yaml from dir if present and overlays it on the
// defaults. A missing file yields the defaults without error.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, "slab.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read slab.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse slab.yaml: %w", err)
	}

	if cfg.Backend != "gl" && cfg.Backend != "raylib" {
		return cfg, fmt.Errorf("unknown backend %q (want gl or raylib)", cfg.Backend)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// VSync resolves the optional vsync flag (default on).
func (w WindowConfig) VSyncOn() bool {
	return w.VSync == nil || *w.VSync
}

// ClearColorRGBA parses the clear color into normalized RGBA. Accepts
// "#RRGGBB" and "#AARRGGBB"; a bare RGB value is fully opaque.
func (w WindowConfig) ClearColorRGBA() ([4]float32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(w.ClearColor), "#")
	var argb uint64
	switch len(s) {
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return [4]float32{}, fmt.Errorf("bad clear_color %q: %w", w.ClearColor, err)
		}
		argb = 0xFF000000 | v
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return [4]float32{}, fmt.Errorf("bad clear_color %q: %w", w.ClearColor, err)
		}
		argb = v
	default:
		return [4]float32{}, fmt.Errorf("bad clear_color %q: want #RRGGBB or #AARRGGBB", w.ClearColor)
	}
	return [4]float32{
		float32(argb>>16&0xFF) / 255,
		float32(argb>>8&0xFF) / 255,
		float32(argb&0xFF) / 255,
		float32(argb>>24&0xFF) / 255,
	}, nil
}
