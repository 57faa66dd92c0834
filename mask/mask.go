// Package mask implements C6: the mask pattern predicates, penalty/score
// evaluation, and best-mask selection.
//
// Per spec §9's design note ("tagged enumeration... eliminating heap
// allocation"), masks are dispatched through a plain switch keyed by a
// Mask value rather than the boxed-closure selector of
// original_source/src/masking.rs's get_masking_function. Standard penalty
// scoring (N1-N4) is grounded in the teacher's getPenaltyScore/
// finderPenalty run-history state machine (qrcodegen.go) — more robust
// than the original source's "subtract a fixed 9*40 correction" N3 hack.
// Micro scoring is grounded in
// original_source/src/serialization/masking.rs::compute_mask_score_micro,
// which the teacher has no equivalent of.
package mask

import (
	"github.com/j4ncp/qr-gen/canvas"
	"github.com/j4ncp/qr-gen/internal/mathx"
)

// Mask identifies one of the 8 Standard (0-7) or 4 Micro (0-3) predicates.
type Mask uint8

// Apply reports whether predicate m flips the module at interior
// coordinates (r, c) (spec §4.5). micro selects the 4-predicate Micro set.
func Apply(m Mask, micro bool, r, c int) bool {
	if micro {
		switch m {
		case 0:
			return r%2 == 0
		case 1:
			return (r/2+c/3)%2 == 0
		case 2:
			return (r*c%2+r*c%3)%2 == 0
		case 3:
			return ((r+c)%2+r*c%3)%2 == 0
		default:
			panic("mask: micro mask index out of range")
		}
	}
	switch m {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return r*c%2+r*c%3 == 0
	case 6:
		return (r*c%2+r*c%3)%2 == 0
	case 7:
		return ((r+c)%2+r*c%3)%2 == 0
	default:
		panic("mask: standard mask index out of range")
	}
}

// ApplyToCanvas XORs predicate m over every already-placed Dark/Light
// data cell of c, leaving all other roles untouched (spec §4.5: "never
// touching functional or reserved cells"). Calling this twice with the
// same mask undoes it.
func ApplyToCanvas(c *canvas.Canvas, m Mask, micro bool) {
	n := c.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			role := c.Get(x, y)
			if role != canvas.Dark && role != canvas.Light {
				continue
			}
			if c.IsFunctionModule(x, y) {
				continue
			}
			if Apply(m, micro, y, x) {
				if role == canvas.Dark {
					c.SetModule(x, y, false)
				} else {
					c.SetModule(x, y, true)
				}
			}
		}
	}
}

// finderPenalty implements the N3 running-state-machine scanner, grounded
// in the teacher's finderPenalty helper (qrcodegen.go) — correctly treats
// out-of-bounds runs as an implicit light run rather than the naive
// "compute everywhere then subtract known false positives" approach of
// original_source/src/masking.rs.
type finderPenalty struct {
	size       int
	runHistory [7]int
}

func newFinderPenalty(size int) *finderPenalty {
	fp := &finderPenalty{size: size}
	return fp
}

func (fp *finderPenalty) addHistory(runLength int) {
	if fp.runHistory[0] == 0 {
		runLength += fp.size // add light border to initial run
	}
	copy(fp.runHistory[1:], fp.runHistory[:len(fp.runHistory)-1])
	fp.runHistory[0] = runLength
}

// countPatterns may only be called immediately after a light run has been
// pushed via addHistory; returns 0, 1, or 2.
func (fp *finderPenalty) countPatterns() int {
	rh := fp.runHistory
	n := rh[1]
	core := n > 0 && rh[2] == n && rh[3] == 3*n && rh[4] == n && rh[5] == n
	count := 0
	if core && rh[0] >= 4*n && rh[6] >= n {
		count++
	}
	if core && rh[6] >= 4*n && rh[0] >= n {
		count++
	}
	return count
}

// terminateAndCount must be called once at the end of each row/column.
func (fp *finderPenalty) terminateAndCount(currentRunColor bool, currentRunLength int) int {
	if currentRunColor { // terminate a dark run
		fp.addHistory(currentRunLength)
		currentRunLength = 0
	}
	currentRunLength += fp.size // add the implicit light border
	fp.addHistory(currentRunLength)
	return fp.countPatterns()
}

// StandardPenalty computes the N1-N4 penalty score for an already-masked
// canvas (lower is better). get reads the masked module color at interior
// (x, y).
func StandardPenalty(size int, get func(x, y int) bool) int {
	var result int

	// N1 + N3: adjacent same-color runs and finder-like patterns, rows.
	for y := 0; y < size; y++ {
		var runColor bool
		var runX int
		fp := newFinderPenalty(size)
		for x := 0; x < size; x++ {
			if get(x, y) == runColor {
				runX++
				if runX == 5 {
					result += 3
				} else if runX > 5 {
					result++
				}
			} else {
				fp.addHistory(runX)
				if !runColor {
					result += fp.countPatterns() * 40
				}
				runColor = get(x, y)
				runX = 1
			}
		}
		result += fp.terminateAndCount(runColor, runX) * 40
	}
	// columns
	for x := 0; x < size; x++ {
		var runColor bool
		var runY int
		fp := newFinderPenalty(size)
		for y := 0; y < size; y++ {
			if get(x, y) == runColor {
				runY++
				if runY == 5 {
					result += 3
				} else if runY > 5 {
					result++
				}
			} else {
				fp.addHistory(runY)
				if !runColor {
					result += fp.countPatterns() * 40
				}
				runColor = get(x, y)
				runY = 1
			}
		}
		result += fp.terminateAndCount(runColor, runY) * 40
	}

	// N2: 2x2 blocks of same color.
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			c := get(x, y)
			if c == get(x+1, y) && c == get(x, y+1) && c == get(x+1, y+1) {
				result += 3
			}
		}
	}

	// N4: dark module percentage deviation from 50%.
	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if get(x, y) {
				dark++
			}
		}
	}
	total := size * size
	percentDark := dark * 100 / total
	step := mathx.AbsInt32(int32(percentDark)-50) / 5
	result += int(step) * 10

	return result
}

// MicroScore computes the Micro sum1/sum2 score (spec §4.5, higher is
// better): sum1 is the dark-module count in the rightmost interior column
// excluding the top two cells; sum2 is the dark-module count in the
// bottom interior row excluding the leftmost two cells.
func MicroScore(size int, get func(x, y int) bool) int {
	sum1, sum2 := 0, 0
	for y := 2; y < size; y++ {
		if get(size-1, y) {
			sum1++
		}
	}
	for x := 2; x < size; x++ {
		if get(x, size-1) {
			sum2++
		}
	}
	if sum1 <= sum2 {
		return 16*sum1 + sum2
	}
	return 16*sum2 + sum1
}
