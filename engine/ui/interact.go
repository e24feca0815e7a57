package ui

// Interaction is the cross-frame widget state machine: which panel is
// under the pointer, which one the last press landed on, and the
// in-flight divider drag. It lives in the Session because hover and
// drag are evaluated against the previous frame's identities before
// the current frame's tree exists.
type Interaction struct {
	Hot        ID
	HotPrev    ID
	Active     ID
	ActivePrev ID

	// Divider drag. The two adjacent panels are looked up structurally
	// once at drag start, then referred to only by stable ID: arena
	// indices do not survive the per-frame rebuild.
	DraggingDivider ID
	dragStartPos    int
	dragStartLeft   int
	dragStartRight  int
	dragLeftID      ID
	dragRightID     ID
}

// Cursor is a hint for the host's pointer shape.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResizeH
	CursorResizeV
)

// IsHot reports whether id is under the pointer per the most recent
// interaction update.
func (c *Context) IsHot(id ID) bool { return c.sess.Interaction.Hot == id }

// IsActive reports whether id took the most recent press.
func (c *Context) IsActive(id ID) bool { return c.sess.Interaction.Active == id }

// UpdateInteraction runs once per frame, after Layout and before Emit:
// applies any in-flight divider drag, re-resolves the hot widget, and
// advances the press/release state machine.
func (c *Context) UpdateInteraction() {
	it := &c.sess.Interaction

	if it.DraggingDivider != 0 {
		c.stepDividerDrag()
	}

	it.Hot = 0
	if len(c.panels) > 0 {
		// Two passes: ordinary panels first (later declarations win),
		// then resizable dividers with their enlarged hitboxes, so a
		// divider beats any panel its padding overlaps.
		c.hitTestPlain(0)
		c.hitTestResizable(0)
	}

	if c.MousePressed(MouseLeft) && it.Hot != 0 {
		if idx := c.findPanel(it.Hot); idx >= 0 && c.panels[idx].Style.Resizable {
			c.beginDividerDrag(idx)
		} else {
			it.Active = it.Hot
		}
	}

	if c.MouseReleased(MouseLeft) {
		if it.DraggingDivider != 0 {
			it.DraggingDivider = 0
			it.dragStartPos = 0
			it.dragStartLeft = 0
			it.dragStartRight = 0
			it.dragLeftID = 0
			it.dragRightID = 0
		} else {
			it.Active = 0
		}
	}
}

// hitTestPlain marks the deepest non-resizable, non-label panel under
// the pointer as hot. Children are visited after their parent and
// overwrite it.
func (c *Context) hitTestPlain(idx int) {
	p := &c.panels[idx]
	if !p.IsLabel && !p.Style.Resizable && p.Rect.Contains(c.input.MouseX, c.input.MouseY) {
		c.sess.Interaction.Hot = p.ID
	}
	for ch := p.FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		c.hitTestPlain(ch)
	}
}

// hitTestResizable gives dividers a second, higher-priority pass with
// their rects expanded by the hitbox padding.
func (c *Context) hitTestResizable(idx int) {
	p := &c.panels[idx]
	if p.Style.Resizable && p.Rect.expand(p.Style.ResizeHitboxPad).Contains(c.input.MouseX, c.input.MouseY) {
		c.sess.Interaction.Hot = p.ID
	}
	for ch := p.FirstChild; ch != -1; ch = c.panels[ch].NextSibling {
		c.hitTestResizable(ch)
	}
}

// beginDividerDrag captures the drag baseline: the pointer coordinate
// along the resize axis (the divider resizes along its parent's main
// axis) and the current sizes and stable IDs of the siblings on either
// side. A divider without both neighbors falls back to ordinary
// activation.
func (c *Context) beginDividerDrag(dividerIdx int) {
	it := &c.sess.Interaction
	div := &c.panels[dividerIdx]

	if div.Parent < 0 {
		it.Active = div.ID
		return
	}
	parent := &c.panels[div.Parent]

	prev := -1
	for ch := parent.FirstChild; ch != -1 && ch != dividerIdx; ch = c.panels[ch].NextSibling {
		prev = ch
	}
	next := div.NextSibling
	if prev < 0 || next < 0 {
		it.Active = div.ID
		return
	}

	it.DraggingDivider = div.ID
	it.dragLeftID = c.panels[prev].ID
	it.dragRightID = c.panels[next].ID

	if parent.Style.Direction == Row {
		it.dragStartPos = c.input.MouseX
		it.dragStartLeft = c.panels[prev].Rect.W
		it.dragStartRight = c.panels[next].Rect.W
	} else {
		it.dragStartPos = c.input.MouseY
		it.dragStartLeft = c.panels[prev].Rect.H
		it.dragStartRight = c.panels[next].Rect.H
	}
}

// stepDividerDrag applies this frame's pointer delta to the two panels
// adjacent to the dragged divider, zero-sum. Both panels are
// re-resolved by stable ID in the current tree; if the tree changed
// shape and they are gone, the frame's resize is skipped while the
// drag itself stays alive. The left panel is clamped to its min/max
// first, then the right panel, so when both would be violated the
// right panel's constraints win.
func (c *Context) stepDividerDrag() {
	it := &c.sess.Interaction

	leftIdx := c.findPanel(it.dragLeftID)
	rightIdx := c.findPanel(it.dragRightID)
	if leftIdx < 0 || rightIdx < 0 {
		return
	}
	parentIdx := c.panels[leftIdx].Parent
	if parentIdx < 0 {
		return
	}
	row := c.panels[parentIdx].Style.Direction == Row

	pos := c.input.MouseY
	if row {
		pos = c.input.MouseX
	}
	delta := pos - it.dragStartPos
	left := it.dragStartLeft + delta
	right := it.dragStartRight - delta

	lp := &c.panels[leftIdx]
	rp := &c.panels[rightIdx]

	lmin, lmax := lp.Style.MinH, lp.Style.MaxH
	rmin, rmax := rp.Style.MinH, rp.Style.MaxH
	if row {
		lmin, lmax = lp.Style.MinW, lp.Style.MaxW
		rmin, rmax = rp.Style.MinW, rp.Style.MaxW
	}

	if left < lmin {
		left = lmin
	}
	if left > lmax {
		left = lmax
	}
	delta = left - it.dragStartLeft
	right = it.dragStartRight - delta

	if right < rmin {
		right = rmin
	}
	if right > rmax {
		right = rmax
	}
	delta = it.dragStartRight - right
	left = it.dragStartLeft + delta

	if row {
		lp.Style.PrefW = left
		rp.Style.PrefW = right
	} else {
		lp.Style.PrefH = left
		rp.Style.PrefH = right
	}
	// An explicitly sized panel is no longer a flex participant.
	lp.Style.FlexGrow = 0
	rp.Style.FlexGrow = 0

	if !c.sess.Overrides.Set(lp.ID, lp.Style.PrefW, lp.Style.PrefH) {
		c.stats.OverridesDropped++
	}
	if !c.sess.Overrides.Set(rp.ID, rp.Style.PrefW, rp.Style.PrefH) {
		c.stats.OverridesDropped++
	}

	// Re-run layout under the shared parent so the resize is visible
	// this frame, not next. Layout is idempotent, so this is safe.
	c.layoutTree(parentIdx)
}

// CursorHint tells the host which pointer shape fits the interaction
// state: a resize cursor over or while dragging a divider, the arrow
// otherwise. Orientation follows the divider's parent direction.
func (c *Context) CursorHint() Cursor {
	it := &c.sess.Interaction

	id := it.DraggingDivider
	if id == 0 {
		id = it.Hot
	}
	idx := c.findPanel(id)
	if idx < 0 {
		return CursorArrow
	}
	p := &c.panels[idx]
	if it.DraggingDivider == 0 && !p.Style.Resizable {
		return CursorArrow
	}
	if p.Parent < 0 {
		return CursorArrow
	}
	if c.panels[p.Parent].Style.Direction == Row {
		return CursorResizeH
	}
	return CursorResizeV
}
