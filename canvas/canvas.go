// Package canvas implements C4 (matrix canvas: functional-pattern
// painting, module-role marking) and C5 (codeword placement walker).
//
// Role-tagged cells (spec §3) replace the teacher's boolean-plus-
// isfunction-array pair and original_source/src/serialization.rs's
// sentinel-grayscale-value image buffer (MARKER_ENCODING_REGION etc.) —
// spec §9 explicitly calls for "a separate role-array alongside a bit
// matrix" instead. Functional-pattern painting is grounded in the
// teacher's drawFunctionPatterns/drawFinderPattern/drawAlignmentPattern/
// getAlignmentPatternPositions (qrcodegen.go), extended to Micro sizes
// (single top-left finder, no alignment patterns, timing line at index 0
// instead of 6) per original_source's create_micro_qr_canvas.
package canvas

import (
	"github.com/j4ncp/qr-gen/internal/mathx"
	"github.com/j4ncp/qr-gen/qrerr"
	"github.com/j4ncp/qr-gen/sizecfg"
)

// Role is the tag carried by every cell before final rendering (spec §3).
type Role uint8

const (
	Light Role = iota
	Dark
	DataRegion
	FormatReserved
	VersionReserved
)

// Canvas is the interior module grid (quiet zone excluded — it is added
// only when producing the final Matrix), addressed [y][x] with (0,0) at
// the interior's top-left corner.
type Canvas struct {
	size       int // interior side length
	role       [][]Role
	isFunction [][]bool // true for any cell painted by drawFunctionPatterns, incl. reservations
	micro      bool
}

// New builds a blank canvas for the given size with every
// non-functional cell tagged DataRegion, then paints the functional
// patterns and reservations (spec §4.3).
func New(size sizecfg.Size) *Canvas {
	n := size.InteriorSide()
	c := &Canvas{size: n, micro: size.IsMicro()}
	c.role = make([][]Role, n)
	c.isFunction = make([][]bool, n)
	for y := range c.role {
		c.role[y] = make([]Role, n)
		c.isFunction[y] = make([]bool, n)
		for x := range c.role[y] {
			c.role[y][x] = DataRegion
		}
	}

	c.drawFunctionPatterns(size)
	return c
}

// Size returns the interior side length.
func (c *Canvas) Size() int { return c.size }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.size && y >= 0 && y < c.size
}

func (c *Canvas) set(x, y int, r Role) {
	if c.inBounds(x, y) {
		c.role[y][x] = r
	}
}

// setFunction marks (x, y) as a functional (non-data) cell in addition to
// tagging its role — used by every pattern/reservation painter so that the
// mask step (which must only ever touch data cells, spec §4.5) can tell a
// painted Dark/Light finder or timing module apart from a placed data bit.
func (c *Canvas) setFunction(x, y int, r Role) {
	if c.inBounds(x, y) {
		c.role[y][x] = r
		c.isFunction[y][x] = true
	}
}

// Get returns the role currently tagging (x, y).
func (c *Canvas) Get(x, y int) Role {
	return c.role[y][x]
}

// IsFunctionModule reports whether (x, y) was painted by a functional
// pattern or reserved for format/version info, as opposed to holding a
// placed data/ECC bit.
func (c *Canvas) IsFunctionModule(x, y int) bool {
	return c.isFunction[y][x]
}

// SetModule sets (x, y) directly to Dark or Light, used by the mask and
// format/version writers once placement has finished.
func (c *Canvas) SetModule(x, y int, dark bool) {
	c.set(x, y, roleFromDark(dark))
}

// IsDark reports whether (x, y) currently renders dark. Valid once the
// cell holds Dark or Light (i.e. after placement for DataRegion cells, or
// always for function-pattern cells).
func (c *Canvas) IsDark(x, y int) bool {
	return c.role[y][x] == Dark
}

func roleFromDark(dark bool) Role {
	if dark {
		return Dark
	}
	return Light
}

func (c *Canvas) drawFunctionPatterns(size sizecfg.Size) {
	timingIndex := 6
	if c.micro {
		timingIndex = 0
	}
	for i := 0; i < c.size; i++ {
		c.setFunction(timingIndex, i, roleFromDark(i%2 == 0))
		c.setFunction(i, timingIndex, roleFromDark(i%2 == 0))
	}

	c.drawFinderPattern(3, 3)
	if !c.micro {
		c.drawFinderPattern(c.size-4, 3)
		c.drawFinderPattern(3, c.size-4)
	}

	if !c.micro && size.Value() >= 2 {
		positions := AlignmentPatternPositions(size.Value())
		n := len(positions)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
					continue
				}
				c.drawAlignmentPattern(positions[i], positions[j])
			}
		}
	}

	c.reserveFormatInfo(size)
	if !c.micro && size.Value() >= 7 {
		c.reserveVersionInfo()
	}
	if !c.micro {
		// the canonical always-dark module, below the bottom-left finder
		c.setFunction(8, c.size-8, Dark)
	}
}

// drawFinderPattern paints a 9x9 finder (7x7 concentric squares plus a
// 1-module separator) centered at (x, y); cells outside the canvas are
// skipped, matching the teacher's bounds-checked drawFinderPattern.
func (c *Canvas) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if !c.inBounds(xx, yy) {
				continue
			}
			dist := mathx.MaxInt32(abs32(int32(dx)), abs32(int32(dy)))
			c.setFunction(xx, yy, roleFromDark(dist != 2 && dist != 4))
		}
	}
}

// drawAlignmentPattern paints a 5x5 alignment pattern centered at (x, y).
func (c *Canvas) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := mathx.MaxInt32(abs32(int32(dx)), abs32(int32(dy)))
			c.setFunction(x+dx, y+dy, roleFromDark(dist != 1))
		}
	}
}

func abs32(x int32) int32 {
	return mathx.AbsInt32(x)
}

// reserveFormatInfo marks the 15-bit format-info perimeter around the
// finder(s) (spec §4.6): two copies for Standard split around the top-left,
// top-right and bottom-left finders; one contiguous run for Micro along
// the top-left finder's outer edge.
func (c *Canvas) reserveFormatInfo(size sizecfg.Size) {
	if c.micro {
		// Column/row 8, immediately outside the single finder's separator
		// (interior 0..7), per original_source/src/serialization.rs's
		// create_micro_qr_canvas (mask[(10,i)]/mask[(i,10)] in its
		// quiet-zone-inclusive coordinates, i.e. interior column/row 8).
		for i := 1; i <= 8 && i < c.size; i++ {
			c.setFunction(8, i, FormatReserved)
			c.setFunction(i, 8, FormatReserved)
		}
		return
	}

	for i := 0; i < 6; i++ {
		c.setFunction(8, i, FormatReserved)
		c.setFunction(i, 8, FormatReserved)
	}
	c.setFunction(8, 7, FormatReserved)
	c.setFunction(8, 8, FormatReserved)
	c.setFunction(7, 8, FormatReserved)
	for i := 9; i < 15; i++ {
		c.setFunction(14-i, 8, FormatReserved)
	}
	s := c.size
	for i := 0; i < 8; i++ {
		c.setFunction(s-1-i, 8, FormatReserved)
	}
	for i := 8; i < 15; i++ {
		c.setFunction(8, s-15+i, FormatReserved)
	}
}

// reserveVersionInfo marks the two 6x3 version-info blocks for Standard v>=7.
func (c *Canvas) reserveVersionInfo() {
	s := c.size
	for i := 0; i < 18; i++ {
		a := s - 11 + i%3
		b := i / 3
		c.setFunction(a, b, VersionReserved)
		c.setFunction(b, a, VersionReserved)
	}
}

// AlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates for Standard version v (spec §4.3's
// "Alignment center list", ISO/IEC 18004:2015 Annex E), grounded in the
// teacher's getAlignmentPatternPositions closed-form formula (cross-checked
// against original_source's explicit Table E.1 spot values).
func AlignmentPatternPositions(v uint8) []int {
	if v == 1 {
		return nil
	}
	size := 4*int(v) + 17
	numAlign := int(v)/7 + 2
	var step int
	if v == 32 {
		step = 26
	} else {
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}
	result := make([]int, numAlign)
	for i := 0; i < numAlign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numAlign-1] = 6

	out := make([]int, numAlign)
	for i, val := range result {
		out[numAlign-1-i] = val
	}
	return out
}

// RemainingDataCells returns the number of cells still tagged DataRegion.
// It only counts them; PlaceCodewords sets any that are left after its last
// bit to Light.
func (c *Canvas) RemainingDataCells() int {
	n := 0
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			if c.role[y][x] == DataRegion {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) fillRemainingDataCellsLight() {
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			if c.role[y][x] == DataRegion {
				c.role[y][x] = Light
			}
		}
	}
}

// AssertNoDataRegion verifies C5's invariant that no DataRegion marker
// remains after placement (spec §4.4/§8).
func (c *Canvas) AssertNoDataRegion() error {
	if n := c.RemainingDataCells(); n != 0 {
		return qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "%d DataRegion cells remain after placement", n)
	}
	return nil
}

// Matrix renders the canvas to the final 2D bit grid, cell (0,0) being
// the top-left of the quiet zone (spec §6). FormatReserved/VersionReserved
// roles must already have been overwritten with Light/Dark by the format/
// version writers; DataRegion cells (if any remain) render as Light.
func (c *Canvas) Matrix(quietZoneWidth int) [][]bool {
	c.fillRemainingDataCellsLight()
	total := c.size + 2*quietZoneWidth
	m := make([][]bool, total)
	for y := range m {
		m[y] = make([]bool, total)
	}
	for y := 0; y < c.size; y++ {
		for x := 0; x < c.size; x++ {
			m[y+quietZoneWidth][x+quietZoneWidth] = c.role[y][x] == Dark
		}
	}
	return m
}
