package canvas

import "github.com/j4ncp/qr-gen/qrerr"

// PlaceCodewords implements C5: the zig-zag codeword placement walker.
// Grounded in the teacher's drawCodewords (two-column strips, upward/
// downward flip, skip the x=6 timing column), generalized with the
// Micro(1)/Micro(3) half-codeword tail (spec §4.4) per
// original_source/src/serialization.rs::insert_data_payload, which places
// data codewords and ECC codewords as two separate runs rather than one
// combined truncated stream: only the final DATA codeword's low nibble is
// ever dropped, and ECC codewords are always placed in full.
//
// codewords is data ++ ecc, MSB-first across codewords; dataLen is the
// number of data codeword bytes (the rest are ECC); halfCodewordTail
// reports that only the high 4 bits of the final data codeword carry data
// (the other 4 are not placed — ECC codewords are unaffected). Any
// DataRegion cells left after the last bit (the remainder bits of some
// Standard versions) are set Light.
func (c *Canvas) PlaceCodewords(codewords []byte, dataLen int, halfCodewordTail bool) error {
	dataBits := dataLen * 8
	if halfCodewordTail {
		dataBits -= 4
	}
	totalBits := dataBits + (len(codewords)-dataLen)*8

	// bitAt maps a logical bit index i (0..totalBits) to its absolute bit
	// position in codewords: the data run's dropped trailing nibble, if
	// any, leaves a 4-bit gap between the data run and the ECC run that
	// follows it at the untruncated offset dataLen*8.
	bitAt := func(i int) byte {
		abs := i
		if i >= dataBits {
			abs = dataLen*8 + (i - dataBits)
		}
		return (codewords[abs>>3] >> uint(7-abs&7)) & 1
	}

	timingCol := 6
	if c.micro {
		timingCol = 0
	}

	bitIndex := 0
	right := c.size - 1
	for right >= 1 {
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
				if c.role[y][x] == DataRegion && bitIndex < totalBits {
					c.role[y][x] = roleFromDark(bitAt(bitIndex) != 0)
					bitIndex++
				}
			}
		}
		right -= 2
	}

	if bitIndex != totalBits {
		return qrerr.Wrapf(qrerr.ErrInternalInvariantViolated,
			"placed %d bits, want exactly %d", bitIndex, totalBits)
	}
	c.fillRemainingDataCellsLight()
	return nil
}
