package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arvhen/slab/engine/assets"
	"github.com/arvhen/slab/engine/config"
	"github.com/arvhen/slab/engine/core"
	"github.com/arvhen/slab/engine/gfx/renderer2d"
	"github.com/arvhen/slab/engine/gfx/uidraw"
	"github.com/arvhen/slab/engine/profiler"
	"github.com/arvhen/slab/engine/text"
	"github.com/arvhen/slab/engine/ui"
)

// App wires the GL path: shaders, fonts and the UI layer.
type App struct {
	cfg  config.Config
	sess *ui.Session

	r2d   *renderer2d.Renderer2D
	fonts uidraw.Fonts
	layer *LayerUI
}

func (a *App) OnStart(e *core.Engine) {
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		panic(err)
	}

	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		panic(err)
	}

	size := float32(a.cfg.Font.Size)
	def, err := text.LoadTTF(e.Renderer, a.cfg.Font.Path, size)
	if err != nil {
		panic(err)
	}
	mono, err := text.LoadTTF(e.Renderer, a.cfg.Font.MonoPath, size)
	if err != nil {
		panic(err)
	}
	a.fonts = uidraw.Fonts{Default: def, Mono: mono}

	ctx := ui.New(a.sess, a.fonts.MeasureFunc(),
		a.cfg.UI.MaxPanels, a.cfg.UI.MaxStack, a.cfg.UI.MaxIDs)
	list := ui.NewRenderList(a.cfg.UI.MaxRects, a.cfg.UI.MaxTexts)

	a.layer = &LayerUI{r2d: a.r2d, fonts: a.fonts, ctx: ctx, list: list}
	e.Layers.Push(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	a.fonts.Default.Close()
	a.fonts.Mono.Close()
}

// LayerUI runs the immediate-mode engine every render: rebuild, layout,
// interact, emit, then paint the resulting list.
type LayerUI struct {
	r2d   *renderer2d.Renderer2D
	fonts uidraw.Fonts
	ctx   *ui.Context
	list  *ui.RenderList

	lastFrame time.Time
}

func (l *LayerUI) OnAttach(e *core.Engine) { l.lastFrame = time.Now() }
func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	frameEnd := profiler.Start("LayerUI.OnRender")
	defer frameEnd()

	now := time.Now()
	dtMS := float32(now.Sub(l.lastFrame).Seconds() * 1000)
	l.lastFrame = now

	w, h := e.Window.FramebufferSize()
	l.ctx.BeginFrame(l.list, w, h, dtMS)
	if dtMS > 0 {
		l.ctx.SetFPS(int(1000/dtMS + 0.5))
	}
	l.ctx.SetRuntimeStats(profiler.MemoryUsage(), profiler.MemoryAllocs(), profiler.NumGoroutine())

	buildEnd := profiler.Start("ui.Build")
	buildUI(l.ctx)
	buildEnd()

	layoutEnd := profiler.Start("ui.Layout")
	l.ctx.Layout()
	layoutEnd()

	interactEnd := profiler.Start("ui.Interact")
	l.ctx.UpdateInteraction()
	interactEnd()

	emitEnd := profiler.Start("ui.Emit")
	l.ctx.Emit()
	emitEnd()

	switch l.ctx.CursorHint() {
	case ui.CursorResizeH:
		e.Window.SetCursor(core.CursorShapeResizeEW)
	case ui.CursorResizeV:
		e.Window.SetCursor(core.CursorShapeResizeNS)
	default:
		e.Window.SetCursor(core.CursorShapeArrow)
	}

	paintEnd := profiler.Start("ui.Paint")
	l.r2d.BeginScene(renderer2d.ScreenVP(w, h))
	uidraw.DrawList(l.r2d, l.fonts, l.list)
	l.r2d.EndScene()
	paintEnd()

	l.ctx.EndFrame()
}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventMouseMove:
		l.ctx.ProcessMouseMove(int(v.X), int(v.Y))
	case core.EventMouseButton:
		l.ctx.ProcessMouseButton(ui.MouseButton(v.Button), v.Down)
	case core.EventScroll:
		l.ctx.ProcessWheel(float32(v.Yoff))
	case core.EventKey:
		l.ctx.ProcessKey(int(v.Key), v.Down)
		if v.Down && v.Key == core.KeyP && v.Mods&core.ModCtrl != 0 {
			if path, err := profiler.OpenProfilerGraph(); err != nil {
				log.Warn().Err(err).Msg("profiler dump")
			} else if path != "" {
				fmt.Println("speedscope dump:", path)
			}
			return true
		}
		if v.Down && v.Key == core.KeyEscape {
			e.Window.RequestClose()
			return true
		}
	case core.EventChar:
		l.ctx.ProcessChar(v.Char)
	}
	// The UI snapshots input; events stay visible to lower layers.
	return false
}
