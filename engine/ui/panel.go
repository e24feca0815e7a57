package ui

// Rect is a pixel box. W and H are never negative after layout.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rect. The right
// and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// expand grows the rect by n pixels on every side.
func (r Rect) expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Panel is a node in the per-frame tree. Tree links are arena indices
// (-1 for absence) rather than pointers: the whole arena is reset each
// frame, so a rebuild costs one slice truncation.
type Panel struct {
	ID    ID
	Style Style

	Parent      int
	FirstChild  int
	LastChild   int
	NextSibling int

	// Rect is assigned by Layout; undefined before it runs (except on
	// the root, which is pinned to the viewport at build time).
	Rect Rect

	// Label metadata, set only by label-producing widgets.
	IsLabel   bool
	Text      string
	TextColor uint32
	TextStyle FontStyle
}

// newPanel allocates a default-initialized panel from the arena.
// Returns -1 when the arena is full.
func (c *Context) newPanel(id ID) int {
	if len(c.panels) == cap(c.panels) {
		c.stats.PanelsDropped++
		return -1
	}
	c.panels = append(c.panels, Panel{
		ID:          id,
		Style:       DefaultStyle(),
		Parent:      -1,
		FirstChild:  -1,
		LastChild:   -1,
		NextSibling: -1,
		TextColor:   0xFFFFFFFF,
	})
	return len(c.panels) - 1
}

// addChild links child as the last child of parent. Children form a
// singly linked list in creation order.
func (c *Context) addChild(parent, child int) {
	p := &c.panels[parent]
	ch := &c.panels[child]

	ch.Parent = parent
	ch.NextSibling = -1

	if p.FirstChild == -1 {
		p.FirstChild = child
		p.LastChild = child
	} else {
		c.panels[p.LastChild].NextSibling = child
		p.LastChild = child
	}
}

// BeginPanel allocates a panel named name, parents it under the panel
// currently being built (or makes it the frame's root, pinned to the
// viewport), and makes it current. Every BeginPanel is paired with an
// EndPanel; style setters in between apply to this panel.
func (c *Context) BeginPanel(name string) {
	c.beginPanelID(c.generateID(name))
}

// beginPanelID is BeginPanel with a pre-generated ID; used by widgets
// that need the ID before the panel exists (buttons, resizables).
func (c *Context) beginPanelID(id ID) {
	idx := c.newPanel(id)
	if idx < 0 {
		return
	}

	if len(c.stack) > 0 {
		c.addChild(c.stack[len(c.stack)-1], idx)
	} else {
		c.panels[idx].Rect = Rect{W: c.screenW, H: c.screenH}
	}

	if len(c.stack) < cap(c.stack) {
		c.stack = append(c.stack, idx)
	} else {
		c.stats.StackDropped++
	}
}

// EndPanel closes the current panel. Unbalanced calls are tolerated.
func (c *Context) EndPanel() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// current returns the panel under construction, or false between
// trees / after an unbalanced EndPanel.
func (c *Context) current() (*Panel, bool) {
	if len(c.stack) == 0 {
		return nil, false
	}
	return &c.panels[c.stack[len(c.stack)-1]], true
}

// ===== Style setters (no-ops with no current panel) =====

// SetColor sets the fill color (packed ARGB; zero alpha draws nothing).
func (c *Context) SetColor(argb uint32) {
	if p, ok := c.current(); ok {
		p.Style.Color = argb
	}
}

// SetSize sets the preferred pixel size. SizeAuto collapses the axis
// unless the panel grows; SizeFlex requests grow=1 on the container's
// main axis.
func (c *Context) SetSize(w, h int) {
	p, ok := c.current()
	if !ok {
		return
	}
	if w == SizeFlex {
		w = SizeAuto
		p.Style.FlexGrow = 1
	}
	if h == SizeFlex {
		h = SizeAuto
		p.Style.FlexGrow = 1
	}
	p.Style.PrefW = w
	p.Style.PrefH = h
}

// SetMinSize constrains how small a divider drag may make the panel.
func (c *Context) SetMinSize(w, h int) {
	if p, ok := c.current(); ok {
		p.Style.MinW = w
		p.Style.MinH = h
	}
}

// SetMaxSize constrains how large a divider drag may make the panel.
func (c *Context) SetMaxSize(w, h int) {
	if p, ok := c.current(); ok {
		p.Style.MaxW = w
		p.Style.MaxH = h
	}
}

func (c *Context) SetPadding(l, t, r, b int) {
	if p, ok := c.current(); ok {
		p.Style.PadL, p.Style.PadT, p.Style.PadR, p.Style.PadB = l, t, r, b
	}
}

func (c *Context) SetDirection(d Direction) {
	if p, ok := c.current(); ok {
		p.Style.Direction = d
	}
}

func (c *Context) SetGap(gap int) {
	if p, ok := c.current(); ok {
		p.Style.Gap = gap
	}
}

func (c *Context) SetGrow(grow float32) {
	if p, ok := c.current(); ok {
		p.Style.FlexGrow = grow
	}
}

// SetResizable marks the current panel as a draggable divider.
func (c *Context) SetResizable(hitboxPad int) {
	if p, ok := c.current(); ok {
		p.Style.Resizable = true
		p.Style.ResizeHitboxPad = hitboxPad
	}
}

// PanelCount reports how many panels this frame's tree holds.
func (c *Context) PanelCount() int { return len(c.panels) }

// PanelByID returns a copy of the named panel's record, if it exists
// this frame. Useful for tests and host-side cursor logic.
func (c *Context) PanelByID(id ID) (Panel, bool) {
	idx := c.findPanel(id)
	if idx < 0 {
		return Panel{}, false
	}
	return c.panels[idx], true
}
