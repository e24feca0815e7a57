package ui

import "testing"

func TestEmitPreOrderSkipsTransparent(t *testing.T) {
	ctx := New(nil, stubMeasure, 0, 0, 0)
	list := NewRenderList(0, 0)
	ctx.BeginFrame(list, 400, 300, 16)

	ctx.BeginPanel("root")
	ctx.SetColor(0xFF101010)
	ctx.SetDirection(Row)
	{
		ctx.BeginPanel("ghost")
		ctx.SetColor(0x00FF00FF) // zero alpha: no rect
		ctx.SetSize(50, SizeAuto)
		ctx.EndPanel()

		ctx.BeginPanel("solid")
		ctx.SetColor(0xFF3584E4)
		ctx.SetSize(60, SizeAuto)
		ctx.EndPanel()
	}
	ctx.EndPanel()
	ctx.Layout()
	ctx.Emit()

	rects := list.Rects()
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2 (root + solid)", len(rects))
	}
	if rects[0].Color != 0xFF101010 {
		t.Fatalf("first rect color = %#x, want the root (parents paint first)", rects[0].Color)
	}
	if rects[1].Color != 0xFF3584E4 {
		t.Fatalf("second rect color = %#x, want the solid child", rects[1].Color)
	}
	if rects[1].Left != 50 || rects[1].Right != 110 {
		t.Fatalf("solid rect spans [%d,%d), want [50,110)", rects[1].Left, rects[1].Right)
	}
}

func TestEmitLabelText(t *testing.T) {
	ctx := New(nil, stubMeasure, 0, 0, 0)
	list := NewRenderList(0, 0)
	ctx.BeginFrame(list, 400, 300, 16)

	ctx.BeginPanel("root")
	ctx.SetColor(0x00000000)
	{
		ctx.Label("hello", 0xFFAABBCC)
	}
	ctx.EndPanel()
	ctx.Layout()
	ctx.Emit()

	texts := list.Texts()
	if len(texts) != 1 {
		t.Fatalf("got %d text prims, want 1", len(texts))
	}
	tp := texts[0]
	if tp.Text != "hello" || tp.Color != 0xFFAABBCC {
		t.Fatalf("text prim = %+v", tp)
	}
	if tp.FontSize != 14 || tp.AlignH != AlignStart || tp.AlignV != AlignCenter {
		t.Fatalf("text prim alignment/size = %+v", tp)
	}
	if tp.Style != FontDefault {
		t.Fatalf("text style = %v, want default", tp.Style)
	}
	// Labels draw no background rect.
	if len(list.Rects()) != 0 {
		t.Fatalf("got %d rects, want 0", len(list.Rects()))
	}
}

func TestRenderListCapacity(t *testing.T) {
	list := NewRenderList(1, 1)

	list.PushRect(0, 0, 10, 10, 0xFF000000)
	list.PushRect(0, 0, 20, 20, 0xFF000000) // dropped
	list.PushText(0, 0, 10, 10, 0xFFFFFFFF, "a", 14, AlignStart, AlignStart, FontDefault)
	list.PushText(0, 0, 10, 10, 0xFFFFFFFF, "b", 14, AlignStart, AlignStart, FontDefault) // dropped
	list.PushText(0, 0, 10, 10, 0xFFFFFFFF, "", 14, AlignStart, AlignStart, FontDefault)  // empty: ignored

	st := list.Stats()
	if st.Rects != 1 || st.RectsDropped != 1 {
		t.Fatalf("rect stats = %+v", st)
	}
	if st.Texts != 1 || st.TextsDropped != 1 {
		t.Fatalf("text stats = %+v", st)
	}
	if len(list.Rects()) != 1 || len(list.Texts()) != 1 {
		t.Fatal("capacity overflow must not grow the lists")
	}
}

func TestEmitWithoutList(t *testing.T) {
	ctx := New(nil, nil, 0, 0, 0)
	ctx.BeginFrame(nil, 400, 300, 16)
	ctx.BeginPanel("root")
	ctx.EndPanel()
	ctx.Layout()
	ctx.Emit() // nil list: no-op, no panic
}
