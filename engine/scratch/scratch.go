// Package scratch is a package-level byte buffer for building
// per-frame strings (debug overlays, window titles) without going
// through fmt. Single-threaded by design: Init once at startup, Reset
// once per frame, append through the chainable builder.
package scratch

import "strconv"

var buf []byte

// Init sets up the buffer. Call once at startup; a zero or negative
// capacity falls back to 1 KiB.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer without freeing memory. Call once per frame
// before building any UI strings.
func Reset() { buf = buf[:0] }

// Cap returns the current capacity, useful for tuning Init.
func Cap() int { return cap(buf) }

// Len returns the bytes written since Reset.
func Len() int { return len(buf) }

// Mark bookmarks the current position so a produced string can be
// sliced back out with StringFrom.
func Mark() int { return len(buf) }

// StringFrom copies the bytes written since mark into a new string.
func StringFrom(mark int) string { return string(buf[mark:]) }

// Builder is a chainable appender over the package buffer.
type Builder struct{}

// F returns a builder bound to the package buffer.
func F() Builder { return Builder{} }

func (Builder) S(s string) Builder {
	buf = append(buf, s...)
	return Builder{}
}

func (Builder) C(c byte) Builder {
	buf = append(buf, c)
	return Builder{}
}

// I appends a base-10 integer.
func (Builder) I(v int) Builder {
	buf = strconv.AppendInt(buf, int64(v), 10)
	return Builder{}
}

// U appends an unsigned base-10 integer.
func (Builder) U(v uint) Builder {
	buf = strconv.AppendUint(buf, uint64(v), 10)
	return Builder{}
}

// Hex appends an unsigned integer in hexadecimal, no "0x" prefix.
func (Builder) Hex(v uint64) Builder {
	buf = strconv.AppendUint(buf, v, 16)
	return Builder{}
}

// F64 appends a float with prec digits after the decimal point.
func (Builder) F64(v float64, prec int) Builder {
	buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
	return Builder{}
}

// Bool appends "1" or "0", compact enough for state readouts.
func (Builder) Bool(v bool) Builder {
	if v {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '0')
	}
	return Builder{}
}
