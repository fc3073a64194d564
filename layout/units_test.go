package layout

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"48", Length{48, UnitPX}},
		{"48px", Length{48, UnitPX}},
		{" 36pt ", Length{36, UnitPT}},
		{"8%", Length{8, UnitPercent}},
		{"1.5PX", Length{1.5, UnitPX}},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLength(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "px", "abc", "12em"} {
		if _, err := ParseLength(bad); err == nil {
			t.Fatalf("ParseLength(%q) should fail", bad)
		}
	}
}

func TestLengthPX(t *testing.T) {
	if got := (Length{72, UnitPT}).PX(0); math.Abs(got-96) > 1e-9 {
		t.Fatalf("72pt = %gpx, want 96", got)
	}
	if got := (Length{10, UnitPercent}).PX(1080); math.Abs(got-108) > 1e-9 {
		t.Fatalf("10%% of 1080 = %g", got)
	}
	if got := (Length{40, UnitPX}).PX(1080); got != 40 {
		t.Fatalf("40px = %g", got)
	}
}
