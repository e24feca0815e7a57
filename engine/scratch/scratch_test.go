package scratch

import "testing"

func TestMarkAndStringFrom(t *testing.T) {
	Init(64)

	F().S("first")
	m := Mark()
	F().S("second:").I(42)

	if got := StringFrom(m); got != "second:42" {
		t.Fatalf("StringFrom = %q", got)
	}
	if got := StringFrom(0); got != "firstsecond:42" {
		t.Fatalf("StringFrom(0) = %q", got)
	}
}

func TestBuilderChain(t *testing.T) {
	tests := []struct {
		name  string
		build func()
		want  string
	}{
		{"string and byte", func() { F().S("ab").C('c') }, "abc"},
		{"signed", func() { F().I(-7) }, "-7"},
		{"unsigned", func() { F().U(4294967295) }, "4294967295"},
		{"hex", func() { F().Hex(0xDEAD) }, "dead"},
		{"float precision", func() { F().F64(16.6666, 1) }, "16.7"},
		{"bool", func() { F().Bool(true).Bool(false) }, "10"},
		{"mixed", func() { F().S("fps:").I(60).S(" dt:").F64(16.6, 1).S("ms") }, "fps:60 dt:16.6ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(64)
			tt.build()
			if got := StringFrom(0); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	Init(128)
	F().S("some frame text")
	before := Cap()

	Reset()
	if Len() != 0 {
		t.Fatalf("Len after Reset = %d", Len())
	}
	if Cap() != before {
		t.Fatalf("Cap changed across Reset: %d -> %d", before, Cap())
	}
}

func TestInitFallbackCapacity(t *testing.T) {
	Init(0)
	if Cap() != 1024 {
		t.Fatalf("Cap = %d, want the 1 KiB fallback", Cap())
	}
}
