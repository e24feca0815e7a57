package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// FromARGB unpacks a 0xAARRGGBB value into a normalized Color.
func FromARGB(v uint32) Color {
	return Color{
		float32(v>>16&0xFF) / 255,
		float32(v>>8&0xFF) / 255,
		float32(v&0xFF) / 255,
		float32(v>>24&0xFF) / 255,
	}
}

// ToARGB packs a normalized Color into 0xAARRGGBB.
func (c Color) ToARGB() uint32 {
	clamp := func(f float32) uint32 {
		if f < 0 {
			return 0
		}
		if f > 1 {
			return 255
		}
		return uint32(f*255 + 0.5)
	}
	return clamp(c[3])<<24 | clamp(c[0])<<16 | clamp(c[1])<<8 | clamp(c[2])
}
