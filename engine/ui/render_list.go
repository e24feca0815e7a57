package ui

// RectPrim is a filled rectangle in screen pixels.
type RectPrim struct {
	Left, Top, Right, Bottom int
	Color                    uint32 // packed ARGB
}

// TextPrim is a single run of text aligned within a pixel box.
type TextPrim struct {
	X, Y, W, H int
	Color      uint32
	Text       string
	FontSize   int
	AlignH     Align
	AlignV     Align
	Style      FontStyle
}

// RenderListStats counts emitted and silently dropped primitives.
type RenderListStats struct {
	Rects        int
	Texts        int
	RectsDropped int
	TextsDropped int
}

// RenderList is the engine's output: primitives appended in tree
// pre-order, to be painted in list order (later entries on top).
// Capacity-bounded; overflowing primitives are dropped, not errors.
type RenderList struct {
	rects []RectPrim
	texts []TextPrim
	stats RenderListStats
}

// Default primitive capacities.
const (
	DefaultMaxRects = 256
	DefaultMaxTexts = 256
)

// NewRenderList allocates a list with fixed capacities (zero for the
// defaults).
func NewRenderList(maxRects, maxTexts int) *RenderList {
	if maxRects <= 0 {
		maxRects = DefaultMaxRects
	}
	if maxTexts <= 0 {
		maxTexts = DefaultMaxTexts
	}
	return &RenderList{
		rects: make([]RectPrim, 0, maxRects),
		texts: make([]TextPrim, 0, maxTexts),
	}
}

func (l *RenderList) reset() {
	l.rects = l.rects[:0]
	l.texts = l.texts[:0]
	l.stats = RenderListStats{}
}

// PushRect appends a rectangle, silently dropping past capacity.
func (l *RenderList) PushRect(left, top, right, bottom int, color uint32) {
	if len(l.rects) == cap(l.rects) {
		l.stats.RectsDropped++
		return
	}
	l.rects = append(l.rects, RectPrim{Left: left, Top: top, Right: right, Bottom: bottom, Color: color})
	l.stats.Rects++
}

// PushText appends a text run, silently dropping past capacity or for
// empty text.
func (l *RenderList) PushText(x, y, w, h int, color uint32, text string, fontSize int, alignH, alignV Align, style FontStyle) {
	if text == "" {
		return
	}
	if len(l.texts) == cap(l.texts) {
		l.stats.TextsDropped++
		return
	}
	l.texts = append(l.texts, TextPrim{
		X: x, Y: y, W: w, H: h,
		Color: color, Text: text, FontSize: fontSize,
		AlignH: alignH, AlignV: alignV, Style: style,
	})
	l.stats.Texts++
}

// Rects returns this frame's rectangles in paint order.
func (l *RenderList) Rects() []RectPrim { return l.rects }

// Texts returns this frame's text runs in paint order.
func (l *RenderList) Texts() []TextPrim { return l.texts }

// Stats returns the emission counters for this frame.
func (l *RenderList) Stats() RenderListStats { return l.stats }
