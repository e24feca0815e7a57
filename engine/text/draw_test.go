package text

import (
	"testing"

	"github.com/arvhen/slab/engine/colors"
	"github.com/arvhen/slab/engine/core"
	"github.com/arvhen/slab/engine/gfx/renderer2d"
)

// fakeDevice satisfies core.Renderer and captures mesh uploads so glyph
// quad geometry can be inspected without a GPU.
type fakeDevice struct {
	verts []float32
	texID int
}

type fakeHandle struct{ id int }

func (d *fakeDevice) Init() error              { return nil }
func (d *fakeDevice) Resize(w, h int)          {}
func (d *fakeDevice) Clear(r, g, b, a float32) {}
func (d *fakeDevice) Shutdown()                {}
func (d *fakeDevice) GPUVendor() string        { return "fake" }
func (d *fakeDevice) GPURenderer() string      { return "fake" }
func (d *fakeDevice) GPUVersion() string       { return "fake" }

func (d *fakeDevice) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return &fakeHandle{}, nil
}

func (d *fakeDevice) CreateTexture(core.TextureDesc) (core.Texture, error) {
	d.texID++
	return &fakeHandle{id: d.texID}, nil
}

func (d *fakeDevice) CreateMesh(core.MeshDesc) (core.Mesh, error) {
	return &fakeHandle{}, nil
}

func (d *fakeDevice) UpdateMesh(m core.Mesh, vertices []float32, indices []uint32) error {
	d.verts = append(d.verts[:0], vertices...)
	return nil
}

func (d *fakeDevice) Draw(core.DrawCmd) {}

// testFont is rasterized at 20px: one glyph, 10px advance, 8x8 ink box
// sitting 8px above the baseline with 1px left bearing.
func testFont() *Font {
	return &Font{
		SizePx: 20,
		Ascent: 16, Descent: -4, LineGap: 0,
		Glyphs: map[rune]Glyph{
			'a': {Rune: 'a', Advance: 10, BearingX: 1, BearingY: 8, W: 8, H: 8, U1: 0.5, V1: 0.5},
		},
		Texture: &fakeHandle{id: 99},
		AtlasW:  32, AtlasH: 32,
	}
}

func TestMeasureScalesFromRasterizedSize(t *testing.T) {
	f := testFont()

	w, h := Measure(f, "aa", 10) // half the rasterized 20px
	if w != 10 {
		t.Fatalf("width = %v, want 10 (two 10px advances at scale 0.5)", w)
	}
	if h != 10 {
		t.Fatalf("height = %v, want 10 (20px line height at scale 0.5)", h)
	}

	w, h = Measure(f, "aa", 20) // native size: no scaling
	if w != 20 || h != 20 {
		t.Fatalf("native measure = (%v,%v), want (20,20)", w, h)
	}
}

func TestDrawTextScalesGlyphQuads(t *testing.T) {
	dev := &fakeDevice{}
	r2d, err := renderer2d.New(dev, "vs", "fs", 16)
	if err != nil {
		t.Fatal(err)
	}
	f := testFont()

	r2d.BeginScene(renderer2d.ScreenVP(100, 100))
	DrawText(r2d, f, 0, 0, "aa", 10, colors.White)
	r2d.EndScene()

	// Two glyph quads, 4 vertices each, 9 floats per vertex.
	if len(dev.verts) != 2*4*9 {
		t.Fatalf("got %d floats, want %d", len(dev.verts), 2*4*9)
	}

	// First glyph at scale 0.5: left = bearingX*0.5, top = (ascent-bearingY)*0.5.
	if dev.verts[0] != 0.5 || dev.verts[1] != 4 {
		t.Fatalf("first glyph corner = (%v,%v), want (0.5,4)", dev.verts[0], dev.verts[1])
	}
	// Quad width halves with the scale (top-right x minus top-left x).
	if got := dev.verts[9] - dev.verts[0]; got != 4 {
		t.Fatalf("glyph quad width = %v, want 4", got)
	}
	// Second glyph advances by half the native 10px advance.
	second := dev.verts[4*9:]
	if second[0] != 5.5 {
		t.Fatalf("second glyph x = %v, want 5.5", second[0])
	}
}

func TestDrawTextNativeSizeUnscaled(t *testing.T) {
	dev := &fakeDevice{}
	r2d, err := renderer2d.New(dev, "vs", "fs", 16)
	if err != nil {
		t.Fatal(err)
	}
	f := testFont()

	r2d.BeginScene(renderer2d.ScreenVP(100, 100))
	DrawText(r2d, f, 0, 0, "a", 20, colors.White)
	r2d.EndScene()

	if len(dev.verts) != 4*9 {
		t.Fatalf("got %d floats, want %d", len(dev.verts), 4*9)
	}
	if dev.verts[0] != 1 || dev.verts[1] != 8 {
		t.Fatalf("glyph corner = (%v,%v), want (1,8)", dev.verts[0], dev.verts[1])
	}
	if got := dev.verts[9] - dev.verts[0]; got != 8 {
		t.Fatalf("glyph quad width = %v, want 8", got)
	}
}
