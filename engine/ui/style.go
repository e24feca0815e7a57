package ui

import "math"

// Direction selects the main axis a container distributes children on.
type Direction int

const (
	Row Direction = iota
	Column
)

// Align positions text within its box.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// FontStyle selects the face family for a text primitive.
type FontStyle int

const (
	FontDefault FontStyle = iota
	FontMonospace
)

// Preferred-size sentinels. Any non-negative value is an exact pixel
// size.
const (
	// SizeAuto contributes nothing on the main axis; the panel only
	// gets space through its flex grow factor.
	SizeAuto = -1
	// SizeFlex is a builder-level convenience: translated by SetSize
	// into SizeAuto plus a grow factor of 1.
	SizeFlex = -2
)

// Style is the per-panel layout and visual configuration.
type Style struct {
	Color uint32 // packed ARGB

	MinW, MaxW int
	MinH, MaxH int

	PrefW, PrefH int

	PadL, PadT, PadR, PadB int

	FlexGrow  float32
	Direction Direction
	Gap       int

	// Resizable marks divider panels: hit-tested with an enlarged box
	// and draggable to resize their two adjacent siblings.
	Resizable       bool
	ResizeHitboxPad int
}

// DefaultStyle matches a freshly allocated panel: dark fill, auto
// size, unconstrained, row direction, no flex.
func DefaultStyle() Style {
	return Style{
		Color: 0xFF222222,
		MaxW:  math.MaxInt32,
		MaxH:  math.MaxInt32,
		PrefW: SizeAuto,
		PrefH: SizeAuto,
	}
}
