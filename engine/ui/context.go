// Package ui is an immediate-mode panel UI engine. Callers rebuild the
// panel tree every frame through Begin/End calls, the engine lays the
// tree out, resolves pointer interaction against it, and emits a flat
// list of rectangle/text primitives for an external renderer.
//
// The engine itself never draws and never blocks: it consumes an
// injected text-measure function and per-frame input, and produces a
// RenderList. One Context drives one window; all calls are expected
// from a single goroutine.
package ui

// MeasureFunc reports the pixel size of text at a given font size.
// Injected by the host (font atlas, raylib, a stub in tests); assumed
// pure for the duration of a frame.
type MeasureFunc func(text string, fontSize int) (w, h int)

// Default capacities. Exceeding any of them turns the triggering
// operation into a silent no-op (see Stats).
const (
	DefaultMaxPanels    = 1024
	DefaultMaxStack     = 32
	DefaultMaxIDs       = 1024
	DefaultMaxOverrides = 64
)

// Session holds the state that must survive frame rebuilds: the
// hot/active/drag interaction state and the user-driven size
// overrides. Everything else in the engine is torn down and rebuilt
// every frame, so the session is kept in its own struct to make it
// impossible to reset by accident.
type Session struct {
	Interaction Interaction
	Overrides   OverrideStore
}

// NewSession creates a session with a fixed override capacity.
func NewSession(maxOverrides int) *Session {
	if maxOverrides <= 0 {
		maxOverrides = DefaultMaxOverrides
	}
	return &Session{Overrides: OverrideStore{entries: make([]SizeOverride, 0, maxOverrides)}}
}

// Stats counts the silent-decline points of the engine. The original
// failure policy is "nothing happens this frame"; these counters make
// that observable without changing it.
type Stats struct {
	PanelsDropped    int
	StackDropped     int
	IDsDropped       int
	OverridesDropped int
}

type usedID struct {
	id    ID
	count int
}

// Context is the per-frame side of the engine: the panel arena, the
// builder stack, the ID dedup table and the current render list. The
// buffers are allocated once at fixed capacity and reset (not freed)
// every frame.
type Context struct {
	Measure MeasureFunc

	sess *Session

	screenW, screenH int

	panels  []Panel
	stack   []int
	usedIDs []usedID

	input     InputState
	inputPrev InputState

	list *RenderList

	frame       int
	deltaMS     float32
	fps         int
	lastClicked string

	memAlloc   uint64
	memAllocs  uint64
	goroutines int

	stats Stats
}

// New creates a context bound to a session. Capacities are fixed for
// the lifetime of the context; pass zero to use the defaults.
func New(sess *Session, measure MeasureFunc, maxPanels, maxStack, maxIDs int) *Context {
	if maxPanels <= 0 {
		maxPanels = DefaultMaxPanels
	}
	if maxStack <= 0 {
		maxStack = DefaultMaxStack
	}
	if maxIDs <= 0 {
		maxIDs = DefaultMaxIDs
	}
	if sess == nil {
		sess = NewSession(0)
	}
	return &Context{
		sess:    sess,
		Measure: measure,
		panels:  make([]Panel, 0, maxPanels),
		stack:   make([]int, 0, maxStack),
		usedIDs: make([]usedID, 0, maxIDs),
	}
}

// Session returns the cross-frame state the context is bound to.
func (c *Context) Session() *Session { return c.sess }

// BeginFrame resets the per-frame state and points the engine at this
// frame's output list. Input edges (pressed/released) are derived here
// from the down-state snapshots of this frame versus the previous one,
// so the host must deliver raw input events before calling BeginFrame.
func (c *Context) BeginFrame(list *RenderList, w, h int, deltaMS float32) {
	it := &c.sess.Interaction
	it.HotPrev = it.Hot
	it.ActivePrev = it.Active

	c.frame++
	c.deltaMS = deltaMS
	c.screenW, c.screenH = w, h

	c.panels = c.panels[:0]
	c.stack = c.stack[:0]
	c.usedIDs = c.usedIDs[:0]

	if list != nil {
		list.reset()
	}
	c.list = list

	c.input.newFrame(&c.inputPrev)
}

// EndFrame snapshots the input state for next frame's edge detection.
// Call after Emit, once per frame.
func (c *Context) EndFrame() {
	c.inputPrev = c.input
}

// Frame reports the number of frames begun so far.
func (c *Context) Frame() int { return c.frame }

// DeltaMS reports the frame time passed to BeginFrame.
func (c *Context) DeltaMS() float32 { return c.deltaMS }

// SetFPS stores the host-measured frame rate for the debug overlay.
func (c *Context) SetFPS(fps int) { c.fps = fps }

// SetRuntimeStats stores host-sampled memory and goroutine figures for
// the debug overlay.
func (c *Context) SetRuntimeStats(allocBytes, allocs uint64, goroutines int) {
	c.memAlloc = allocBytes
	c.memAllocs = allocs
	c.goroutines = goroutines
}

// LastClicked reports the label of the most recently clicked button.
func (c *Context) LastClicked() string { return c.lastClicked }

// Stats returns the silent-drop counters accumulated since creation.
func (c *Context) Stats() Stats { return c.stats }

// findPanel resolves a stable ID in the current frame's arena.
// Returns -1 if the ID is zero or not present this frame.
func (c *Context) findPanel(id ID) int {
	if id == 0 {
		return -1
	}
	for i := range c.panels {
		if c.panels[i].ID == id {
			return i
		}
	}
	return -1
}
