package text

import (
	"github.com/arvhen/slab/engine/colors"
	"github.com/arvhen/slab/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left corner at (x,y) at the requested
// pixel size, scaling metrics and quads from the font's rasterized
// size. Positive Y goes downward, matching the pixel-space projection.
// The scale matches Measure, so a box measured at some size holds the
// glyphs drawn at that size.
func DrawText(r2d *renderer2d.Renderer2D, f *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := float32(1)
	if size > 0 && f.SizePx > 0 {
		scale = size / f.SizePx
	}

	penX := x
	baseY := y + f.Ascent*scale // move origin from top-left to the baseline
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(f) * scale
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		if prev >= 0 && f.Face != nil {
			penX += float32(f.Face.Kern(prev, r)) / 64.0 * scale
		}

		if g.W > 0 && g.H > 0 {
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			r2d.DrawTexturedQuadUV(
				left, top,
				float32(g.W)*scale, float32(g.H)*scale,
				f.Texture, color,
				g.U0, g.V0, g.U1, g.V1,
			)
		}

		penX += g.Advance * scale
		prev = r
	}
}

// Measure reports the pixel box of s at the requested size, scaling
// from the font's native rasterized size.
func Measure(f *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := LineHeight(f)
	height = lineH

	scale := size / f.SizePx

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && f.Face != nil {
			lineW += float32(f.Face.Kern(prev, r)) / 64.0
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width * scale, height * scale
}

// Baseline helpers for callers positioning text by its top-left.
func BaselineToTop(f *Font) float32    { return f.Ascent }
func BaselineToBottom(f *Font) float32 { return -f.Descent }
func LineHeight(f *Font) float32       { return f.Ascent - f.Descent + f.LineGap }
