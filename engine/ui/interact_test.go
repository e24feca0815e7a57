package ui

import "testing"

const (
	testW = 800
	testH = 600
)

// runFrame feeds absolute input state, rebuilds via build, and runs the
// full frame pipeline minus emission.
func runFrame(ctx *Context, build func(*Context), mouseX, mouseY int, leftDown bool) {
	ctx.ProcessMouseMove(mouseX, mouseY)
	ctx.ProcessMouseButton(MouseLeft, leftDown)
	ctx.BeginFrame(nil, testW, testH, 16)
	build(ctx)
	ctx.Layout()
	ctx.UpdateInteraction()
	ctx.EndFrame()
}

// threePane builds left(240, min 200) | divider | right(flex).
func threePane(ctx *Context) {
	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	{
		ctx.BeginResizable("left", 240, SizeAuto)
		ctx.SetMinSize(200, 0)
		ctx.EndPanel()

		ctx.Divider("div")

		ctx.BeginPanel("right")
		ctx.SetSize(SizeFlex, SizeAuto)
		ctx.EndPanel()
	}
	ctx.EndPanel()
}

func TestHotDeepestPanelWins(t *testing.T) {
	build := func(ctx *Context) {
		ctx.BeginPanel("outer")
		{
			ctx.BeginPanel("inner")
			ctx.SetSize(100, 100)
			ctx.EndPanel()
		}
		ctx.EndPanel()
	}

	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, build, 50, 50, false)

	if !ctx.IsHot(Hash("inner")) {
		t.Fatal("pointer over both panels should make the deeper one hot")
	}

	runFrame(ctx, build, 500, 50, false)
	if !ctx.IsHot(Hash("outer")) {
		t.Fatal("pointer outside the child should fall back to the parent")
	}
}

func TestDividerHitboxBeatsNeighbors(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	// x=238 is inside the left pane but within the divider's 4px pad
	// around [240,241).
	runFrame(ctx, threePane, 238, 300, false)

	if !ctx.IsHot(Hash("div")) {
		t.Fatal("expanded divider hitbox should win over the pane beneath it")
	}
}

func TestPressActivatesHotPanel(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, threePane, 100, 300, false)
	runFrame(ctx, threePane, 100, 300, true) // press edge

	if !ctx.IsActive(Hash("left")) {
		t.Fatal("press on a hot plain panel should activate it")
	}

	runFrame(ctx, threePane, 100, 300, false) // release edge
	if ctx.Session().Interaction.Active != 0 {
		t.Fatal("release should clear the active panel")
	}
}

func TestDividerDragResizesAdjacentPanes(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)

	runFrame(ctx, threePane, 240, 300, false) // hover divider
	runFrame(ctx, threePane, 240, 300, true)  // press: drag begins

	it := &ctx.Session().Interaction
	if it.DraggingDivider != Hash("div") {
		t.Fatal("press on a divider should begin a drag, not activate it")
	}

	// Drag left past the minimum: raw delta -100 clamps at MinW=200.
	runFrame(ctx, threePane, 140, 300, true)

	left, _ := ctx.PanelByID(Hash("left"))
	right, _ := ctx.PanelByID(Hash("right"))
	div, _ := ctx.PanelByID(Hash("div"))

	if left.Rect.W != 200 {
		t.Fatalf("left width = %d, want clamped 200", left.Rect.W)
	}
	// The divider only gives the right pane what the left pane lost.
	if right.Rect.W != 599 {
		t.Fatalf("right width = %d, want 599", right.Rect.W)
	}
	if div.Rect.X != 200 {
		t.Fatalf("divider x = %d, want 200 after same-frame re-layout", div.Rect.X)
	}

	ov, ok := ctx.Session().Overrides.Get(Hash("left"))
	if !ok || ov.W != 200 {
		t.Fatalf("override for left = %+v (ok=%v), want W=200", ov, ok)
	}
}

func TestOverridePersistsAfterDragEnds(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, threePane, 240, 300, false)
	runFrame(ctx, threePane, 240, 300, true)
	runFrame(ctx, threePane, 300, 300, true)  // drag right by 60
	runFrame(ctx, threePane, 300, 300, false) // release

	if ctx.Session().Interaction.DraggingDivider != 0 {
		t.Fatal("release should end the drag")
	}

	// A plain frame later, BeginResizable must consume the override.
	runFrame(ctx, threePane, 0, 0, false)
	left, _ := ctx.PanelByID(Hash("left"))
	if left.Rect.W != 300 {
		t.Fatalf("left width = %d, want persisted 300", left.Rect.W)
	}
}

func TestDragSkipsFrameWhenPaneMissing(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, threePane, 240, 300, false)
	runFrame(ctx, threePane, 240, 300, true)

	// The left pane vanishes from the tree mid-drag.
	withoutLeft := func(ctx *Context) {
		ctx.BeginPanel("root")
		ctx.SetDirection(Row)
		{
			ctx.Divider("div")
			ctx.BeginPanel("right")
			ctx.SetSize(SizeFlex, SizeAuto)
			ctx.EndPanel()
		}
		ctx.EndPanel()
	}
	runFrame(ctx, withoutLeft, 140, 300, true)

	if ctx.Session().Interaction.DraggingDivider != Hash("div") {
		t.Fatal("an unresolvable pane skips the frame but keeps the drag alive")
	}
	if ctx.Session().Overrides.Len() != 0 {
		t.Fatal("no override may be written on a skipped frame")
	}
}

func TestDividerWithoutBothNeighborsActivates(t *testing.T) {
	build := func(ctx *Context) {
		ctx.BeginPanel("root")
		ctx.SetDirection(Row)
		{
			ctx.Divider("lonely")
			ctx.BeginPanel("right")
			ctx.SetGrow(1)
			ctx.EndPanel()
		}
		ctx.EndPanel()
	}

	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, build, 0, 300, false)
	runFrame(ctx, build, 0, 300, true)

	it := ctx.Session().Interaction
	if it.DraggingDivider != 0 {
		t.Fatal("a divider with no previous sibling cannot start a drag")
	}
	if it.Active != Hash("lonely") {
		t.Fatal("the press should fall back to plain activation")
	}
}

func TestCursorHint(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)

	runFrame(ctx, threePane, 100, 300, false)
	if got := ctx.CursorHint(); got != CursorArrow {
		t.Fatalf("over a plain pane CursorHint = %v, want arrow", got)
	}

	runFrame(ctx, threePane, 240, 300, false)
	if got := ctx.CursorHint(); got != CursorResizeH {
		t.Fatalf("over a row divider CursorHint = %v, want horizontal resize", got)
	}
}

func TestColumnDividerDragsVertically(t *testing.T) {
	build := func(ctx *Context) {
		ctx.BeginPanel("root")
		ctx.SetDirection(Column)
		{
			ctx.BeginResizable("top", SizeAuto, 200)
			ctx.SetMinSize(0, 100)
			ctx.EndPanel()
			ctx.Divider("hdiv")
			ctx.BeginPanel("bottom")
			ctx.SetSize(SizeAuto, SizeFlex)
			ctx.EndPanel()
		}
		ctx.EndPanel()
	}

	ctx := New(nil, nil, 0, 0, 0)
	runFrame(ctx, build, 400, 200, false)

	if got := ctx.CursorHint(); got != CursorResizeV {
		t.Fatalf("over a column divider CursorHint = %v, want vertical resize", got)
	}

	runFrame(ctx, build, 400, 200, true)
	runFrame(ctx, build, 400, 250, true) // drag down by 50

	top, _ := ctx.PanelByID(Hash("top"))
	if top.Rect.H != 250 {
		t.Fatalf("top height = %d, want 250", top.Rect.H)
	}
	ov, ok := ctx.Session().Overrides.Get(Hash("top"))
	if !ok || ov.H != 250 {
		t.Fatalf("override for top = %+v (ok=%v), want H=250", ov, ok)
	}
}
