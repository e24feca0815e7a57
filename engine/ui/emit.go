package ui

// defaultFontSize is the label point size used throughout the engine.
const defaultFontSize = 14

// Emit walks the laid-out tree in pre-order and appends primitives to
// the frame's render list: a rectangle per visible panel, a text run
// per label. List order is paint order, so children draw over their
// parents.
func (c *Context) Emit() {
	if c.list == nil || len(c.panels) == 0 {
		return
	}
	c.emitPanel(0)
}

func (c *Context) emitPanel(idx int) {
	p := &c.panels[idx]

	if p.Style.Color>>24 != 0 {
		c.list.PushRect(p.Rect.X, p.Rect.Y, p.Rect.X+p.Rect.W, p.Rect.Y+p.Rect.H, p.Style.Color)
	}
	if p.IsLabel && p.Text != "" {
		c.list.PushText(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H,
			p.TextColor, p.Text, defaultFontSize, AlignStart, AlignCenter, p.TextStyle)
	}

	for ch := p.FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		c.emitPanel(ch)
	}
}
