package ui

import "github.com/arvhen/slab/engine/scratch"

// ===== Built-in widgets =====
//
// Everything here is sugar over BeginPanel/EndPanel and the style
// setters; labels and buttons are ordinary panels with metadata.

// Label adds a text panel sized to its measured text. A label never
// hit-tests and draws no background. Requires a measure function;
// without one the call is a no-op.
func (c *Context) Label(text string, color uint32) {
	c.labelStyled(text, color, FontDefault)
}

func (c *Context) labelStyled(text string, color uint32, style FontStyle) {
	if c.Measure == nil {
		return
	}
	w, h := c.Measure(text, defaultFontSize)

	c.BeginPanel(text)
	c.SetSize(w+2, h)
	if p, ok := c.current(); ok {
		p.Style.Color = 0x00000000
		p.IsLabel = true
		p.Text = text
		p.TextColor = color
		p.TextStyle = style
	}
	c.EndPanel()
}

// Button visual states.
const (
	buttonColorNormal  = 0xFF2A2A2E
	buttonColorHot     = 0xFF3584E4
	buttonColorActive  = 0xFF1A5FB4
	buttonTextNormal   = 0xFFAAAAAA
	buttonTextHiglight = 0xFFFFFFFF
)

// Button adds a clickable panel labelled text and reports whether it
// was clicked this frame. A click needs the release edge to land while
// the widget is still hot AND the widget was the active one of the
// previous frame. Hover and activation are one frame behind the tree
// being built, so both sides are checked against the session state.
func (c *Context) Button(text string) bool {
	id := c.generateID(text)
	it := &c.sess.Interaction

	hot := it.Hot == id
	active := it.ActivePrev == id

	clicked := false
	if active && hot && c.MouseReleased(MouseLeft) {
		clicked = true
		c.lastClicked = text
	}

	bg, fg := uint32(buttonColorNormal), uint32(buttonTextNormal)
	switch {
	case active:
		bg, fg = buttonColorActive, buttonTextHiglight
	case hot:
		bg, fg = buttonColorHot, buttonTextHiglight
	}

	c.beginPanelID(id)
	c.SetSize(SizeAuto, 30)
	c.SetColor(bg)
	c.SetPadding(8, 4, 8, 4)
	c.SetDirection(Row)
	c.Label(text, fg)
	c.EndPanel()

	return clicked
}

// Divider adds a thin resizable panel between two siblings. Dragging
// it resizes those siblings zero-sum along the parent's main axis.
// Orientation comes from the parent's direction, which is already in
// the arena when the divider is begun.
func (c *Context) Divider(name string) {
	c.BeginPanel(name)
	if p, ok := c.current(); ok {
		if p.Parent >= 0 && c.panels[p.Parent].Style.Direction == Column {
			p.Style.PrefW, p.Style.PrefH = SizeAuto, 1
		} else {
			p.Style.PrefW, p.Style.PrefH = 1, SizeAuto
		}
		p.Style.Color = 0x33FFFFFF
		p.Style.Resizable = true
		p.Style.ResizeHitboxPad = 4
	}
	c.EndPanel()
}

// BeginResizable begins a panel whose preferred size the user may have
// changed with a divider drag: a stored override supplants the
// caller's defaults, which is what makes a manual resize stick across
// the per-frame rebuild. Pair with EndPanel like BeginPanel.
func (c *Context) BeginResizable(name string, prefW, prefH int) {
	id := c.generateID(name)
	if ov, ok := c.sess.Overrides.Get(id); ok {
		prefW, prefH = ov.W, ov.H
	}
	c.beginPanelID(id)
	c.SetSize(prefW, prefH)
}

// DebugOverlay adds a three-line monospace readout of frame timing,
// input, interaction state and host runtime figures. Strings are built
// in the shared scratch buffer to keep the overlay allocation-free.
func (c *Context) DebugOverlay() {
	if c.Measure == nil {
		return
	}

	m := scratch.Mark()
	scratch.F().
		S("Frame:").I(c.frame).
		S(" dt:").F64(float64(c.deltaMS), 1).S("ms").
		S(" fps:").I(c.fps).
		S(" | Mouse:(").I(c.input.MouseX).C(',').I(c.input.MouseY).C(')').
		S(" | Down L:").Bool(c.MouseDown(MouseLeft)).
		S(" R:").Bool(c.MouseDown(MouseRight)).
		S(" M:").Bool(c.MouseDown(MouseMiddle)).
		S(" | Wheel:").F64(float64(c.input.WheelDelta), 1)
	line1 := scratch.StringFrom(m)

	m = scratch.Mark()
	b := scratch.F().
		S("Hot:").U(uint(c.sess.Interaction.Hot)).
		S(" Active:").U(uint(c.sess.Interaction.Active)).
		S(" ActivePrev:").U(uint(c.sess.Interaction.ActivePrev)).
		S(" Drag:").U(uint(c.sess.Interaction.DraggingDivider)).
		S(" | LastButton:\"")
	if c.lastClicked != "" {
		b.S(c.lastClicked)
	} else {
		b.S("None")
	}
	b.C('"')
	line2 := scratch.StringFrom(m)

	m = scratch.Mark()
	scratch.F().
		S("Mem:").U(uint(c.memAlloc / 1024)).S("KB").
		S(" Allocs:").U(uint(c.memAllocs)).
		S(" Goroutines:").I(c.goroutines)
	line3 := scratch.StringFrom(m)

	w1, h1 := c.Measure(line1, defaultFontSize)
	w2, h2 := c.Measure(line2, defaultFontSize)
	w3, h3 := c.Measure(line3, defaultFontSize)
	maxW := w1
	if w2 > maxW {
		maxW = w2
	}
	if w3 > maxW {
		maxW = w3
	}

	c.BeginPanel("##debug_overlay")
	c.SetSize(maxW+16, h1+h2+h3+4+8)
	c.SetColor(0xEE000000)
	c.SetPadding(8, 4, 8, 4)
	c.SetDirection(Column)
	c.SetGap(2)
	c.labelStyled(line1, 0xFF00FF00, FontMonospace)
	c.labelStyled(line2, 0xFF00FF00, FontMonospace)
	c.labelStyled(line3, 0xFF00FF00, FontMonospace)
	c.EndPanel()
}
