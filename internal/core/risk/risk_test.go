package risk

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ in, want int }{
		{-40, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{120, 100},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBlend(t *testing.T) {
	// the canonical weighting example
	if got := Blend(80, 50); got != 68 {
		t.Fatalf("Blend(80, 50) = %d, want 68", got)
	}
	// a missing score counts as zero
	if got := Blend(100, 0); got != 60 {
		t.Fatalf("Blend(100, 0) = %d, want 60", got)
	}
	if got := Blend(0, 0); got != 0 {
		t.Fatalf("Blend(0, 0) = %d, want 0", got)
	}
	// result stays clamped even at the extremes
	if got := Blend(100, 100); got != 100 {
		t.Fatalf("Blend(100, 100) = %d, want 100", got)
	}
}
