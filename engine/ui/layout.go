package ui

// Layout computes every panel's pixel rect from the root down. Pure
// tree transform: running it twice on an unchanged tree yields the
// same rects. Call once per frame after the tree is fully built.
func (c *Context) Layout() {
	if len(c.panels) == 0 {
		return
	}
	c.layoutTree(0)
}

// layoutTree places idx's children from its already-final rect, then
// recurses. Pre-order is required: a child's content box depends on
// its own assigned rect.
func (c *Context) layoutTree(idx int) {
	if c.panels[idx].FirstChild == -1 {
		return
	}
	c.layoutChildren(idx)
	for ch := c.panels[idx].FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		c.layoutTree(ch)
	}
}

// layoutChildren distributes idx's content box along its main axis in
// two passes: measure fixed contributions and grow weights, then place
// with a running cursor. Children with a non-negative preferred size
// contribute it exactly; SizeAuto contributes zero and only gains
// space through flex grow. The cross axis is always filled.
func (c *Context) layoutChildren(idx int) {
	p := &c.panels[idx]

	x0 := p.Rect.X + p.Style.PadL
	y0 := p.Rect.Y + p.Style.PadT
	cw := p.Rect.W - p.Style.PadL - p.Style.PadR
	chh := p.Rect.H - p.Style.PadT - p.Style.PadB
	if cw < 0 {
		cw = 0
	}
	if chh < 0 {
		chh = 0
	}

	row := p.Style.Direction == Row
	contentMain := chh
	if row {
		contentMain = cw
	}

	// Pass 1: fixed contributions and grow weights.
	var (
		count    int
		fixedSum int
		growSum  float32
	)
	for ch := p.FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		count++
		child := &c.panels[ch]
		pref := child.Style.PrefH
		if row {
			pref = child.Style.PrefW
		}
		if pref >= 0 {
			fixedSum += pref
		}
		if child.Style.FlexGrow > 0 {
			growSum += child.Style.FlexGrow
		}
	}

	gapsTotal := 0
	if count > 1 {
		gapsTotal = p.Style.Gap * (count - 1)
	}
	remaining := contentMain - fixedSum - gapsTotal
	if remaining < 0 {
		// Overflow truncates; children are never negative-sized.
		remaining = 0
	}

	// Pass 2: place children in order. The proportional share is
	// truncated per child; no remainder redistribution.
	cursor := y0
	if row {
		cursor = x0
	}
	for ch := p.FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		child := &c.panels[ch]

		pref := child.Style.PrefH
		if row {
			pref = child.Style.PrefW
		}
		size := 0
		if pref >= 0 {
			size = pref
		}
		if child.Style.FlexGrow > 0 && growSum > 0 {
			size += int(child.Style.FlexGrow / growSum * float32(remaining))
		}

		if row {
			child.Rect = Rect{X: cursor, Y: y0, W: size, H: chh}
		} else {
			child.Rect = Rect{X: x0, Y: cursor, W: cw, H: size}
		}
		cursor += size + p.Style.Gap
	}
}
