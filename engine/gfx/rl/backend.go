// Package rlbackend hosts the UI engine in a raylib window. Unlike the
// GL path, raylib owns the window, the frame loop and the default
// font, so this backend is a self-contained runner rather than a
// core.Renderer implementation.
package rlbackend

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"github.com/arvhen/slab/engine/core"
	"github.com/arvhen/slab/engine/profiler"
	"github.com/arvhen/slab/engine/scratch"
	"github.com/arvhen/slab/engine/ui"
)

// Frame builds one frame of UI between BeginFrame and Layout.
type Frame func(ctx *ui.Context)

// Caps bounds the fixed-capacity UI buffers for this backend's
// context. Zero fields fall back to the ui package defaults.
type Caps struct {
	MaxPanels, MaxStack, MaxIDs int
	MaxRects, MaxTexts          int
}

// newContext builds the per-frame UI state at the configured caps.
func newContext(sess *ui.Session, caps Caps, measure ui.MeasureFunc) (*ui.Context, *ui.RenderList) {
	ctx := ui.New(sess, measure, caps.MaxPanels, caps.MaxStack, caps.MaxIDs)
	return ctx, ui.NewRenderList(caps.MaxRects, caps.MaxTexts)
}

// Run opens a raylib window and drives the UI loop until the window is
// closed. The session survives the call, so overrides and interaction
// state persist across Run invocations.
func Run(cfg core.Config, caps Caps, sess *ui.Session, build Frame) error {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib window init failed")
	}
	defer rl.CloseWindow()

	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)
	scratch.Init(cfg.ScratchCapacity)
	log.Info().Str("title", cfg.Title).Msg("raylib backend ready")

	// raylib's built-in font; height tracks the requested size.
	measure := func(s string, size int) (int, int) {
		return int(rl.MeasureText(s, int32(size))), size
	}

	ctx, list := newContext(sess, caps, measure)

	for !rl.WindowShouldClose() {
		scratch.Reset()
		feedInput(ctx)

		w := int(rl.GetScreenWidth())
		h := int(rl.GetScreenHeight())
		ctx.BeginFrame(list, w, h, rl.GetFrameTime()*1000)
		ctx.SetFPS(int(rl.GetFPS()))
		ctx.SetRuntimeStats(profiler.MemoryUsage(), profiler.MemoryAllocs(), profiler.NumGoroutine())

		build(ctx)

		ctx.Layout()
		ctx.UpdateInteraction()
		ctx.Emit()

		applyCursor(ctx.CursorHint())

		rl.BeginDrawing()
		rl.ClearBackground(toRL(cfg.ClearColor))
		drawList(list)
		rl.EndDrawing()

		ctx.EndFrame()
	}
	return nil
}

func feedInput(ctx *ui.Context) {
	mp := rl.GetMousePosition()
	ctx.ProcessMouseMove(int(mp.X), int(mp.Y))
	ctx.ProcessMouseButton(ui.MouseLeft, rl.IsMouseButtonDown(rl.MouseButtonLeft))
	ctx.ProcessMouseButton(ui.MouseRight, rl.IsMouseButtonDown(rl.MouseButtonRight))
	ctx.ProcessMouseButton(ui.MouseMiddle, rl.IsMouseButtonDown(rl.MouseButtonMiddle))
	ctx.ProcessWheel(rl.GetMouseWheelMove())

	ctx.ProcessKey(ui.KeyCtrl, rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl))
	ctx.ProcessKey(ui.KeyShift, rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift))
	ctx.ProcessKey(ui.KeyAlt, rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt))
	ctx.ProcessKey(ui.KeyEscape, rl.IsKeyDown(rl.KeyEscape))

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		ctx.ProcessChar(ch)
	}
}

func applyCursor(hint ui.Cursor) {
	switch hint {
	case ui.CursorResizeH:
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	case ui.CursorResizeV:
		rl.SetMouseCursor(rl.MouseCursorResizeNS)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// drawList paints rectangles then text, matching the list's paint
// order. Every text style maps to raylib's built-in font here.
func drawList(list *ui.RenderList) {
	for _, rc := range list.Rects() {
		rl.DrawRectangle(
			int32(rc.Left), int32(rc.Top),
			int32(rc.Right-rc.Left), int32(rc.Bottom-rc.Top),
			argbToRL(rc.Color),
		)
	}
	for _, tp := range list.Texts() {
		w := int(rl.MeasureText(tp.Text, int32(tp.FontSize)))
		h := tp.FontSize

		x := tp.X
		switch tp.AlignH {
		case ui.AlignCenter:
			x += (tp.W - w) / 2
		case ui.AlignEnd:
			x += tp.W - w
		}
		y := tp.Y
		switch tp.AlignV {
		case ui.AlignCenter:
			y += (tp.H - h) / 2
		case ui.AlignEnd:
			y += tp.H - h
		}

		rl.DrawText(tp.Text, int32(x), int32(y), int32(tp.FontSize), argbToRL(tp.Color))
	}
}

func argbToRL(c uint32) rl.Color {
	return rl.NewColor(
		uint8(c>>16), uint8(c>>8), uint8(c), uint8(c>>24),
	)
}

func toRL(c [4]float32) rl.Color {
	to8 := func(f float32) uint8 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return rl.NewColor(to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3]))
}
