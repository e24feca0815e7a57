package colors

import "testing"

func TestFromARGB(t *testing.T) {
	tests := []struct {
		name string
		argb uint32
		want Color
	}{
		{"opaque white", 0xFFFFFFFF, Color{1, 1, 1, 1}},
		{"transparent black", 0x00000000, Color{0, 0, 0, 0}},
		{"opaque red", 0xFFFF0000, Color{1, 0, 0, 1}},
		{"half alpha green", 0x7F00FF00, Color{0, 1, 0, float32(0x7F) / 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromARGB(tt.argb); got != tt.want {
				t.Fatalf("FromARGB(%#x) = %v, want %v", tt.argb, got, tt.want)
			}
		})
	}
}

func TestToARGBRoundTrip(t *testing.T) {
	for _, argb := range []uint32{0xFFFFFFFF, 0x00000000, 0xFF151518, 0x33FFFFFF, 0xEE000000} {
		if got := FromARGB(argb).ToARGB(); got != argb {
			t.Fatalf("round trip %#x -> %#x", argb, got)
		}
	}
}

func TestToARGBClamps(t *testing.T) {
	c := Color{2, -1, 0.5, 1}
	got := c.ToARGB()
	if got>>24 != 0xFF {
		t.Fatalf("alpha = %#x, want 0xFF", got>>24)
	}
	if (got>>16)&0xFF != 0xFF {
		t.Fatalf("red = %#x, want clamped 0xFF", (got>>16)&0xFF)
	}
	if (got>>8)&0xFF != 0 {
		t.Fatalf("green = %#x, want clamped 0", (got>>8)&0xFF)
	}
}

func TestWithAlpha(t *testing.T) {
	c := White.WithAlpha(0.25)
	if c[3] != 0.25 || c[0] != 1 || c[1] != 1 || c[2] != 1 {
		t.Fatalf("WithAlpha = %v", c)
	}
}
