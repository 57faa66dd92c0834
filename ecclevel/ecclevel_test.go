package ecclevel

import (
	"testing"

	"github.com/j4ncp/qr-gen/sizecfg"
)

func TestOrdinalIsUniqueZeroToThree(t *testing.T) {
	seen := map[uint]bool{}
	for _, l := range []Level{L, M, Q, H} {
		o := l.Ordinal()
		if o > 3 {
			t.Fatalf("%v.Ordinal() = %d, want 0-3", l, o)
		}
		if seen[o] {
			t.Fatalf("%v.Ordinal() = %d collides with another level", l, o)
		}
		seen[o] = true
	}
}

func TestFormatBitsMatchesStandardTable(t *testing.T) {
	want := map[Level]uint8{L: 1, M: 0, Q: 3, H: 2}
	for l, w := range want {
		if got := l.FormatBits(); got != w {
			t.Errorf("%v.FormatBits() = %d, want %d", l, got, w)
		}
	}
}

func TestStringRoundTripsWithParse(t *testing.T) {
	for _, l := range []Level{L, M, Q, H} {
		got, ok := Parse(l.String())
		if !ok || got != l {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, true)", l.String(), got, ok, l)
		}
	}
}

func TestLegalStandardAcceptsEveryLevel(t *testing.T) {
	for _, l := range []Level{L, M, Q, H} {
		if !Legal(sizecfg.NewStandard(10), l) {
			t.Errorf("Legal(Standard(10), %v) = false, want true", l)
		}
	}
}

func TestLegalMicroRestrictions(t *testing.T) {
	cases := []struct {
		size  sizecfg.Size
		level Level
		want  bool
	}{
		{sizecfg.NewMicro(1), L, true},
		{sizecfg.NewMicro(1), M, false},
		{sizecfg.NewMicro(2), M, true},
		{sizecfg.NewMicro(2), Q, false},
		{sizecfg.NewMicro(4), Q, true},
		{sizecfg.NewMicro(4), H, false},
	}
	for _, c := range cases {
		if got := Legal(c.size, c.level); got != c.want {
			t.Errorf("Legal(%v, %v) = %v, want %v", c.size, c.level, got, c.want)
		}
	}
}
