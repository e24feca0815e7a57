package ui

import "testing"

// stubMeasure sizes text at 7px per byte, 14px tall.
func stubMeasure(s string, fontSize int) (int, int) {
	return 7 * len(s), 14
}

func TestLayoutRowFixedPlusFlex(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 300, 100, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	{
		ctx.BeginPanel("fixed")
		ctx.SetSize(100, SizeAuto)
		ctx.EndPanel()

		ctx.BeginPanel("flex")
		ctx.SetSize(SizeAuto, SizeAuto)
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()

	fixed, _ := ctx.PanelByID(Hash("fixed"))
	flex, _ := ctx.PanelByID(Hash("flex"))

	if fixed.Rect != (Rect{X: 0, Y: 0, W: 100, H: 100}) {
		t.Fatalf("fixed rect = %+v", fixed.Rect)
	}
	if flex.Rect != (Rect{X: 100, Y: 0, W: 200, H: 100}) {
		t.Fatalf("flex rect = %+v", flex.Rect)
	}
}

func TestLayoutColumnEqualGrowWithGap(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 100, 220, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Column)
	ctx.SetGap(20)
	names := []string{"a", "b", "c"}
	for _, n := range names {
		ctx.BeginPanel(n)
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()

	wantY := []int{0, 80, 160}
	for i, n := range names {
		p, ok := ctx.PanelByID(Hash(n))
		if !ok {
			t.Fatalf("panel %q missing", n)
		}
		if p.Rect.H != 60 || p.Rect.Y != wantY[i] || p.Rect.W != 100 {
			t.Fatalf("panel %q rect = %+v, want y=%d h=60 w=100", n, p.Rect, wantY[i])
		}
	}
}

func TestLayoutIdempotent(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 640, 480, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	ctx.SetPadding(10, 10, 10, 10)
	ctx.SetGap(4)
	{
		ctx.BeginPanel("side")
		ctx.SetSize(200, SizeAuto)
		ctx.EndPanel()
		ctx.BeginPanel("main")
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()

	ctx.Layout()
	first := make([]Rect, ctx.PanelCount())
	for i, n := range []string{"root", "side", "main"} {
		p, _ := ctx.PanelByID(Hash(n))
		first[i] = p.Rect
	}

	ctx.Layout()
	for i, n := range []string{"root", "side", "main"} {
		p, _ := ctx.PanelByID(Hash(n))
		if p.Rect != first[i] {
			t.Fatalf("panel %q moved on re-layout: %+v -> %+v", n, first[i], p.Rect)
		}
	}
}

func TestLayoutOverflowKeepsFixedSizes(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 100, 50, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	{
		ctx.BeginPanel("a")
		ctx.SetSize(80, SizeAuto)
		ctx.EndPanel()
		ctx.BeginPanel("b")
		ctx.SetSize(80, SizeAuto)
		ctx.EndPanel()
		ctx.BeginPanel("grow")
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()

	a, _ := ctx.PanelByID(Hash("a"))
	b, _ := ctx.PanelByID(Hash("b"))
	grow, _ := ctx.PanelByID(Hash("grow"))

	// Fixed children keep their size and overflow; flex children get
	// nothing because remaining space is clamped to zero.
	if a.Rect.W != 80 || b.Rect.W != 80 || b.Rect.X != 80 {
		t.Fatalf("fixed rects: a=%+v b=%+v", a.Rect, b.Rect)
	}
	if grow.Rect.W != 0 {
		t.Fatalf("flex child got %d px from an overflowing row", grow.Rect.W)
	}
}

func TestLayoutPaddingShrinksContentBox(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 200, 100, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	ctx.SetPadding(5, 10, 15, 20)
	{
		ctx.BeginPanel("child")
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()

	child, _ := ctx.PanelByID(Hash("child"))
	want := Rect{X: 5, Y: 10, W: 200 - 5 - 15, H: 100 - 10 - 20}
	if child.Rect != want {
		t.Fatalf("child rect = %+v, want %+v", child.Rect, want)
	}
}

func TestLayoutFlexShareTruncates(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 100, 10, 16)

	ctx.BeginPanel("root")
	ctx.SetDirection(Row)
	for _, n := range []string{"x", "y", "z"} {
		ctx.BeginPanel(n)
		ctx.SetGrow(1)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()

	// 100/3 truncates to 33 per child; the remainder is not handed out.
	for _, n := range []string{"x", "y", "z"} {
		p, _ := ctx.PanelByID(Hash(n))
		if p.Rect.W != 33 {
			t.Fatalf("panel %q width = %d, want 33", n, p.Rect.W)
		}
	}
}
