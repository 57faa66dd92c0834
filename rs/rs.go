// Package rs implements C3: GF(256) arithmetic via precomputed log/antilog
// tables and the Reed-Solomon block encoder + interleaver.
//
// The field arithmetic is grounded in AshokShau-qrcode/reedsolomon.go's
// expTable/logTable approach (spec §4.2 explicitly calls for precomputed
// log and antilog tables, not the teacher's on-the-fly Russian-peasant
// multiplication). The block-split and column interleaving schedule
// generalizes the teacher's addEccAndInterleave (qrcodegen.go) — which
// only ever sees the teacher's Standard-only, single-schedule-type
// capacity records — to the capacity package's two-group BlockGroup
// schedule covering both Standard and Micro sizes.
package rs

import (
	"github.com/j4ncp/qr-gen/capacity"
	"github.com/j4ncp/qr-gen/qrerr"
)

// primitivePoly is x^8+x^4+x^3+x^2+1 (0x11D), the GF(256) field polynomial
// used throughout QR Code Reed-Solomon coding.
const primitivePoly = 0x11D

var expTable [512]byte // doubled to avoid a modulo in multiply
var logTable [256]int

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = i
		x <<= 1
		if x >= 256 {
			x ^= primitivePoly
		}
	}
	for i := 255; i < 512; i++ {
		expTable[i] = expTable[i-255]
	}
}

// gfMul multiplies two GF(256) elements via the log/antilog tables.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[logTable[a]+logTable[b]]
}

// generatorPoly returns the degree-e generator polynomial
// prod_{i=0}^{e-1} (x - alpha^i), as its e coefficients from x^(e-1) down
// to x^0 — the always-1 leading x^e coefficient is implicit and omitted,
// matching the teacher's reedSolomonComputeDivisor representation.
func generatorPoly(e int) []byte {
	poly := make([]byte, e)
	poly[e-1] = 1
	root := byte(1)
	for i := 0; i < e; i++ {
		for j := 0; j < e; j++ {
			poly[j] = gfMul(poly[j], root)
			if j+1 < e {
				poly[j] ^= poly[j+1]
			}
		}
		root = gfMul(root, 2)
	}
	return poly
}

// computeRemainder performs polynomial division of data (high-order
// first) by the monic polynomial x^e + generatorPoly(e) in GF(256),
// returning the length-e remainder (the ECC codewords).
func computeRemainder(data []byte, e int) []byte {
	gen := generatorPoly(e)
	remainder := make([]byte, e)
	for _, b := range data {
		factor := b ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[e-1] = 0
		for i, c := range gen {
			remainder[i] ^= gfMul(c, factor)
		}
	}
	return remainder
}

// block holds one Reed-Solomon block's data and computed ECC codewords.
type block struct {
	data []byte
	ecc  []byte
}

// Construct implements C3's construct_codewords: splits dataBytes across
// the schedule's block groups, computes each block's ECC codewords, and
// returns the final interleaved codeword stream (data columns, then ECC
// columns, per spec §4.2).
func Construct(dataBytes []byte, rec capacity.Record) ([]byte, error) {
	groups := []capacity.BlockGroup{rec.Group1, rec.Group2}
	e := rec.EccCodewordsPerBlock()

	wantLen := rec.TotalDataCodewords()
	if len(dataBytes) != wantLen {
		return nil, qrerr.Wrapf(qrerr.ErrInternalInvariantViolated,
			"data length %d does not match schedule's %d data codewords", len(dataBytes), wantLen)
	}

	var blocks []block
	offset := 0
	maxData := 0
	for _, g := range groups {
		if g.Blocks == 0 {
			continue
		}
		if g.Data > maxData {
			maxData = g.Data
		}
		for i := 0; i < g.Blocks; i++ {
			d := dataBytes[offset : offset+g.Data]
			offset += g.Data
			blocks = append(blocks, block{data: d, ecc: computeRemainder(d, e)})
		}
	}

	out := make([]byte, 0, rec.TotalCodewords())
	for c := 0; c < maxData; c++ {
		for _, b := range blocks {
			if c < len(b.data) {
				out = append(out, b.data[c])
			}
		}
	}
	for c := 0; c < e; c++ {
		for _, b := range blocks {
			out = append(out, b.ecc[c])
		}
	}
	return out, nil
}
