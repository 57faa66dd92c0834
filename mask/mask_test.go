package mask

import (
	"testing"

	"github.com/j4ncp/qr-gen/canvas"
	"github.com/j4ncp/qr-gen/sizecfg"
)

func TestApplyStandardMask0Checkerboard(t *testing.T) {
	cases := []struct{ r, c int; want bool }{
		{0, 0, true}, {0, 1, false}, {1, 0, false}, {1, 1, true},
	}
	for _, c := range cases {
		if got := Apply(0, false, c.r, c.c); got != c.want {
			t.Errorf("Apply(0, false, %d, %d) = %v, want %v", c.r, c.c, got, c.want)
		}
	}
}

func TestApplyStandardMaskIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Apply with mask index 8 should panic")
		}
	}()
	Apply(8, false, 0, 0)
}

func TestApplyMicroMask0RowParity(t *testing.T) {
	if !Apply(0, true, 0, 5) {
		t.Error("micro mask 0 at even row should be true")
	}
	if Apply(0, true, 1, 5) {
		t.Error("micro mask 0 at odd row should be false")
	}
}

// TestApplyToCanvasIsSelfInverse exercises the property selectMask relies
// on: applying the same mask twice restores the canvas to its
// pre-masking state, since XOR toggling twice is a no-op.
func TestApplyToCanvasIsSelfInverse(t *testing.T) {
	size := sizecfg.NewStandard(2)
	c := canvas.New(size)
	// Seed every DataRegion cell with a non-trivial pattern so the mask
	// has something to toggle.
	n := c.Size()
	idx := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c.Get(x, y) == canvas.DataRegion {
				c.SetModule(x, y, idx%3 == 0)
				idx++
			}
		}
	}
	before := snapshot(c)
	ApplyToCanvas(c, 3, false)
	ApplyToCanvas(c, 3, false)
	after := snapshot(c)
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				t.Fatalf("cell (%d,%d) changed after double-applying the same mask", x, y)
			}
		}
	}
}

func TestApplyToCanvasNeverTouchesFunctionModules(t *testing.T) {
	size := sizecfg.NewStandard(1)
	c := canvas.New(size)
	n := c.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c.Get(x, y) == canvas.DataRegion {
				c.SetModule(x, y, false)
			}
		}
	}
	before := snapshot(c)
	ApplyToCanvas(c, 0, false)
	after := snapshot(c)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c.IsFunctionModule(x, y) && before[y][x] != after[y][x] {
				t.Fatalf("function module (%d,%d) was toggled by ApplyToCanvas", x, y)
			}
		}
	}
}

func snapshot(c *canvas.Canvas) [][]bool {
	n := c.Size()
	out := make([][]bool, n)
	for y := 0; y < n; y++ {
		out[y] = make([]bool, n)
		for x := 0; x < n; x++ {
			out[y][x] = c.IsDark(x, y)
		}
	}
	return out
}

func TestStandardPenaltyAllLightIsHighPenalty(t *testing.T) {
	size := 21
	get := func(x, y int) bool { return false }
	// An entirely light symbol has maximal same-color runs in every row
	// and column (N1/N3) plus every 2x2 block matching (N2): a strictly
	// positive, large penalty.
	if got := StandardPenalty(size, get); got <= 0 {
		t.Fatalf("StandardPenalty(all-light) = %d, want > 0", got)
	}
}

func TestMicroScoreOrdersSmallerSumFirst(t *testing.T) {
	size := 11
	// sum1 (rightmost column, row 4 only) = 1; sum2 (bottom row, columns
	// 5,6,7) = 3. sum1 is the smaller value, so it is weighted by 16.
	get := func(x, y int) bool {
		return (x == size-1 && y == 4) || (y == size-1 && (x == 5 || x == 6 || x == 7))
	}
	got := MicroScore(size, get)
	want := 16*1 + 3
	if got != want {
		t.Fatalf("MicroScore = %d, want %d", got, want)
	}
}

func TestMicroScorePicksSmallerSumRegardlessOfAxis(t *testing.T) {
	size := 11
	// Same two sums (1 and 3) as above but swapped across axes: sum1
	// (rightmost column) is now the larger value. The smaller sum must
	// still end up weighted by 16, giving the same total either way.
	get := func(x, y int) bool {
		return (y == size-1 && x == 4) || (x == size-1 && (y == 5 || y == 6 || y == 7))
	}
	got := MicroScore(size, get)
	want := 16*1 + 3
	if got != want {
		t.Fatalf("MicroScore = %d, want %d", got, want)
	}
}
