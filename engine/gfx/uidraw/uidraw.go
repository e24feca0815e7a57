// Package uidraw paints a ui.RenderList through the 2D batch renderer.
// It is the only place where UI primitives meet fonts and colors, so
// both GL hosts share it.
package uidraw

import (
	"github.com/arvhen/slab/engine/colors"
	"github.com/arvhen/slab/engine/gfx/renderer2d"
	"github.com/arvhen/slab/engine/text"
	"github.com/arvhen/slab/engine/ui"
)

// Fonts selects the face per text primitive. Glyphs scale from the
// rasterized size when a primitive's font size differs.
type Fonts struct {
	Default *text.Font
	Mono    *text.Font
}

func (f Fonts) pick(style ui.FontStyle) *text.Font {
	if style == ui.FontMonospace && f.Mono != nil {
		return f.Mono
	}
	return f.Default
}

// MeasureFunc adapts the default font for ui.Context.Measure.
func (f Fonts) MeasureFunc() ui.MeasureFunc {
	return func(s string, size int) (int, int) {
		w, h := text.Measure(f.Default, s, float32(size))
		return int(w + 0.5), int(h + 0.5)
	}
}

// DrawList batches the list's primitives: rectangles first, text runs
// after, matching the list's paint-order contract.
func DrawList(r2d *renderer2d.Renderer2D, fonts Fonts, list *ui.RenderList) {
	for _, rc := range list.Rects() {
		r2d.DrawQuad(
			float32(rc.Left), float32(rc.Top),
			float32(rc.Right-rc.Left), float32(rc.Bottom-rc.Top),
			colors.FromARGB(rc.Color),
		)
	}

	for _, tp := range list.Texts() {
		fnt := fonts.pick(tp.Style)
		if fnt == nil {
			continue
		}
		w, h := text.Measure(fnt, tp.Text, float32(tp.FontSize))

		x := float32(tp.X)
		switch tp.AlignH {
		case ui.AlignCenter:
			x += (float32(tp.W) - w) / 2
		case ui.AlignEnd:
			x += float32(tp.W) - w
		}
		y := float32(tp.Y)
		switch tp.AlignV {
		case ui.AlignCenter:
			y += (float32(tp.H) - h) / 2
		case ui.AlignEnd:
			y += float32(tp.H) - h
		}

		text.DrawText(r2d, fnt, x, y, tp.Text, float32(tp.FontSize), colors.FromARGB(tp.Color))
	}
}
