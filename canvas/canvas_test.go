package canvas

import (
	"testing"

	"github.com/j4ncp/qr-gen/capacity"
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/sizecfg"
)

func TestNewStandard1InteriorSideAndFinders(t *testing.T) {
	c := New(sizecfg.NewStandard(1))
	if c.Size() != 21 {
		t.Fatalf("Size() = %d, want 21 (4*1+17)", c.Size())
	}
	// All three finder centers should be dark and function-tagged.
	for _, p := range [][2]int{{3, 3}, {c.Size() - 4, 3}, {3, c.Size() - 4}} {
		if !c.IsDark(p[0], p[1]) {
			t.Errorf("finder center (%d,%d) not dark", p[0], p[1])
		}
		if !c.IsFunctionModule(p[0], p[1]) {
			t.Errorf("finder center (%d,%d) not tagged as function module", p[0], p[1])
		}
	}
	// The canonical always-dark module sits at (8, size-8) for Standard.
	if !c.IsDark(8, c.Size()-8) {
		t.Error("always-dark module at (8,size-8) is not dark")
	}
}

func TestNewMicroHasOnlyOneFinder(t *testing.T) {
	c := New(sizecfg.NewMicro(3))
	if c.Size() != 15 {
		t.Fatalf("Size() = %d, want 15 (2*3+9)", c.Size())
	}
	if !c.IsDark(3, 3) {
		t.Error("Micro finder center (3,3) not dark")
	}
	// Micro symbols have no bottom-left/top-right finder; those corners
	// should remain plain data region, not function-tagged.
	if c.IsFunctionModule(c.Size()-4, 3) {
		t.Error("Micro canvas unexpectedly paints a top-right finder")
	}
	if c.IsFunctionModule(3, c.Size()-4) {
		t.Error("Micro canvas unexpectedly paints a bottom-left finder")
	}
}

func TestTimingLineAlternatesAndIsFunction(t *testing.T) {
	c := New(sizecfg.NewStandard(2))
	for i := 0; i < c.Size(); i++ {
		if !c.IsFunctionModule(6, i) {
			t.Fatalf("timing column cell (6,%d) not tagged as function", i)
		}
		// Rows 0-7 and the last 8 rows of column 6 belong to the top-left and
		// bottom-left finders and their separators; the timing line runs
		// between them.
		if i < 8 || i >= c.Size()-8 {
			continue
		}
		want := i%2 == 0
		if c.IsDark(6, i) != want {
			t.Fatalf("timing column cell (6,%d) dark=%v, want %v", i, c.IsDark(6, i), want)
		}
	}
}

func TestAlignmentPatternPositionsVersion1HasNone(t *testing.T) {
	if got := AlignmentPatternPositions(1); got != nil {
		t.Fatalf("AlignmentPatternPositions(1) = %v, want nil", got)
	}
}

func TestAlignmentPatternPositionsVersion2(t *testing.T) {
	// ISO/IEC 18004:2015 Annex E, Table E.1: version 2 has exactly two
	// alignment centers, at modules 6 and 18.
	got := AlignmentPatternPositions(2)
	want := []int{6, 18}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("AlignmentPatternPositions(2) = %v, want %v", got, want)
	}
}

func TestAlignmentPatternPositionsVersion7HasThree(t *testing.T) {
	// Table E.1: version 7 has centers 6, 22, 38.
	got := AlignmentPatternPositions(7)
	want := []int{6, 22, 38}
	if len(got) != len(want) {
		t.Fatalf("AlignmentPatternPositions(7) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AlignmentPatternPositions(7)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFormatReservedCellsAreFunctionNotDataRegion(t *testing.T) {
	c := New(sizecfg.NewStandard(1))
	for i := 0; i < 6; i++ {
		if !c.IsFunctionModule(8, i) {
			t.Errorf("format reservation at (8,%d) not tagged function", i)
		}
		if c.Get(8, i) != FormatReserved {
			t.Errorf("format reservation at (8,%d) role = %v, want FormatReserved", i, c.Get(8, i))
		}
	}
}

func TestMicroFormatReservedRunsAlongColumnRow8(t *testing.T) {
	c := New(sizecfg.NewMicro(2))
	for i := 1; i <= 8; i++ {
		if c.Get(8, i) != FormatReserved {
			t.Errorf("Micro format reservation at (8,%d) role = %v, want FormatReserved", i, c.Get(8, i))
		}
		if c.Get(i, 8) != FormatReserved {
			t.Errorf("Micro format reservation at (%d,8) role = %v, want FormatReserved", i, c.Get(i, 8))
		}
	}
}

func TestVersionReservedOnlyFromVersion7(t *testing.T) {
	small := New(sizecfg.NewStandard(6))
	if small.Get(small.Size()-11, 0) == VersionReserved {
		t.Error("Standard(6) should not reserve version info")
	}
	big := New(sizecfg.NewStandard(7))
	if big.Get(big.Size()-11, 0) != VersionReserved {
		t.Error("Standard(7) should reserve version info near (size-11,0)")
	}
}

// totalCodewordBytes returns a (size, L) schedule's total codeword count,
// which fills the canvas's data region exactly — the standard's own
// invariant that data-region capacity is independent of ECC level within
// a given size (spec §3 invariant).
func totalCodewordBytes(t *testing.T, size sizecfg.Size) []byte {
	t.Helper()
	rec, ok := capacity.Lookup(size, ecclevel.L)
	if !ok {
		t.Fatalf("no capacity record for %v/L", size)
	}
	codewords := make([]byte, rec.TotalCodewords())
	for i := range codewords {
		codewords[i] = 0xFF
	}
	return codewords
}

func TestPlaceCodewordsFillsEveryDataRegionCell(t *testing.T) {
	size := sizecfg.NewStandard(1)
	c := New(size)
	if c.RemainingDataCells() == 0 {
		t.Fatal("expected Standard(1) to have DataRegion cells before placement")
	}
	codewords := totalCodewordBytes(t, size)
	if err := c.PlaceCodewords(codewords, len(codewords), false); err != nil {
		t.Fatalf("PlaceCodewords: %v", err)
	}
	if err := c.AssertNoDataRegion(); err != nil {
		t.Fatalf("AssertNoDataRegion: %v", err)
	}
}

func TestPlaceCodewordsSkipsTimingColumn(t *testing.T) {
	size := sizecfg.NewStandard(1)
	c := New(size)
	codewords := totalCodewordBytes(t, size)
	if err := c.PlaceCodewords(codewords, len(codewords), false); err != nil {
		t.Fatalf("PlaceCodewords: %v", err)
	}
	for y := 0; y < c.Size(); y++ {
		if c.Get(6, y) != Light && c.Get(6, y) != Dark {
			t.Fatalf("timing column (6,%d) left unfilled role %v", y, c.Get(6, y))
		}
		if !c.IsFunctionModule(6, y) {
			t.Fatalf("timing column (6,%d) lost its function tag during placement", y)
		}
	}
}

// TestPlaceCodewordsHalfTailDropsOnlyFinalDataNibble pins down the
// Micro(1)/(3) half-codeword tail per
// original_source/src/serialization.rs::insert_data_payload: data and ECC
// codewords are placed as two separate runs, so only the final DATA
// codeword's low nibble is ever dropped — ECC codewords are always placed
// in full, never truncated. Micro(1)/L has 3 data codewords + 2 ECC
// codewords (capacity/capacity.go); this test builds a distinctive,
// fully-known 5-byte stream and asserts the exact bit sequence the walker
// reads off the canvas matches: data codewords 1-2 placed whole, data
// codeword 3's high nibble only, then both ECC codewords placed whole.
func TestPlaceCodewordsHalfTailDropsOnlyFinalDataNibble(t *testing.T) {
	size := sizecfg.NewMicro(1)
	c := New(size)

	// data = {0xA5, 0x3C, 0xF0}; the low nibble of the final data
	// codeword (0x0) must never be placed. ecc = {0x12, 0x34}, placed in
	// full.
	codewords := []byte{0xA5, 0x3C, 0xF0, 0x12, 0x34}
	dataLen := 3
	if err := c.PlaceCodewords(codewords, dataLen, true); err != nil {
		t.Fatalf("PlaceCodewords: %v", err)
	}
	if err := c.AssertNoDataRegion(); err != nil {
		t.Fatalf("AssertNoDataRegion: %v", err)
	}

	want := []bool{
		// data codeword 1: 0xA5 = 1010 0101
		true, false, true, false, false, true, false, true,
		// data codeword 2: 0x3C = 0011 1100
		false, false, true, true, true, true, false, false,
		// data codeword 3, high nibble only: 0xF = 1111 (low nibble dropped)
		true, true, true, true,
		// ecc codeword 1: 0x12 = 0001 0010, placed in full
		false, false, false, true, false, false, true, false,
		// ecc codeword 2: 0x34 = 0011 0100, placed in full
		false, false, true, true, false, true, false, false,
	}

	got := readPlacedBits(c, size, len(want))
	if len(got) != len(want) {
		t.Fatalf("read %d placed bits, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d = %v, want %v (got sequence %v)", i, got[i], want[i], got)
		}
	}
}

// readPlacedBits re-walks the same zig-zag order PlaceCodewords uses,
// reading back the first n bits placed into DataRegion-turned cells (now
// Dark/Light after placement).
func readPlacedBits(c *Canvas, size sizecfg.Size, n int) []bool {
	timingCol := 6
	if c.micro {
		timingCol = 0
	}
	var bits []bool
	right := c.size - 1
	for right >= 1 && len(bits) < n {
		if right == timingCol {
			right--
		}
		for vert := 0; vert < c.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = c.size - 1 - vert
				} else {
					y = vert
				}
				if !c.isFunction[y][x] && len(bits) < n {
					bits = append(bits, c.role[y][x] == Dark)
				}
			}
		}
		right -= 2
	}
	return bits
}

func TestMatrixAddsQuietZoneBorder(t *testing.T) {
	size := sizecfg.NewStandard(1)
	c := New(size)
	codewords := totalCodewordBytes(t, size)
	if err := c.PlaceCodewords(codewords, len(codewords), false); err != nil {
		t.Fatalf("PlaceCodewords: %v", err)
	}
	m := c.Matrix(size.QuietZoneWidth())
	wantSide := size.TotalSide()
	if len(m) != wantSide || len(m[0]) != wantSide {
		t.Fatalf("Matrix size = %dx%d, want %dx%d", len(m), len(m[0]), wantSide, wantSide)
	}
	for x := 0; x < wantSide; x++ {
		if m[0][x] {
			t.Fatalf("quiet zone cell (0,%d) is dark", x)
		}
	}
}
