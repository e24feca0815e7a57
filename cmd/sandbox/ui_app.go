package main

import (
	"github.com/rs/zerolog/log"

	"github.com/arvhen/slab/engine/ui"
)

// Pane colors.
const (
	paneSideColor = 0xFF1E1E22
	paneMainColor = 0xFF151518
	headingColor  = 0xFFE0E0E0
	bodyColor     = 0xFF9A9A9A
)

// buildUI declares the sandbox workspace: a resizable three-pane row
// with a debug readout docked underneath. Shared by both backends.
func buildUI(ctx *ui.Context) {
	ctx.BeginPanel("root")
	ctx.SetDirection(ui.Column)

	ctx.BeginPanel("workspace")
	ctx.SetGrow(1)
	ctx.SetDirection(ui.Row)
	{
		ctx.BeginResizable("left_pane", 240, ui.SizeAuto)
		ctx.SetColor(paneSideColor)
		ctx.SetMinSize(200, 0)
		ctx.SetDirection(ui.Column)
		ctx.SetPadding(8, 8, 8, 8)
		ctx.SetGap(6)
		{
			ctx.Label("Explorer", headingColor)
			if ctx.Button("Save") {
				log.Info().Msg("save clicked")
			}
			if ctx.Button("Load") {
				log.Info().Msg("load clicked")
			}
			if ctx.Button("Reset") {
				ctx.Session().Overrides.Reset()
				log.Info().Msg("pane sizes reset")
			}
		}
		ctx.EndPanel()

		ctx.Divider("left_div")

		ctx.BeginPanel("main_pane")
		ctx.SetSize(ui.SizeFlex, ui.SizeAuto)
		ctx.SetColor(paneMainColor)
		ctx.SetMinSize(160, 0)
		ctx.SetDirection(ui.Column)
		ctx.SetPadding(12, 12, 12, 12)
		ctx.SetGap(8)
		{
			ctx.Label("Workspace", headingColor)
			ctx.Label("Drag the dividers to resize the panes.", bodyColor)
			if ctx.Button("Click Me!") {
				log.Info().Msg("clicked")
			}
		}
		ctx.EndPanel()

		ctx.Divider("right_div")

		ctx.BeginResizable("right_pane", 320, ui.SizeAuto)
		ctx.SetColor(paneSideColor)
		ctx.SetMinSize(200, 0)
		ctx.SetDirection(ui.Column)
		ctx.SetPadding(8, 8, 8, 8)
		ctx.SetGap(6)
		{
			ctx.Label("Inspector", headingColor)
			if ctx.LastClicked() != "" {
				ctx.Label("Last button: "+ctx.LastClicked(), bodyColor)
			} else {
				ctx.Label("Last button: none", bodyColor)
			}
		}
		ctx.EndPanel()
	}
	ctx.EndPanel() // workspace

	ctx.DebugOverlay()

	ctx.EndPanel() // root
}
