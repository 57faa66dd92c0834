// Package format implements C7: the BCH(15,5) format-information and
// BCH(18,6) version-information encoders, and the writers that place their
// bits into a canvas's FormatReserved/VersionReserved cells.
//
// Grounded in the teacher's drawFormatBits (generator 0x537, XOR mask
// 0x5412) and drawVersion (generator 0x1F25) bit-twiddling (qrcodegen.go),
// factored out into a standalone package per spec §4.6/§9 rather than kept
// as Canvas methods, since the BCH math has nothing to do with grid
// geometry. Extended with the Micro symbol-number table and XOR mask
// 0x4445 (spec §4.6), which the teacher has no equivalent of.
package format

import (
	"github.com/j4ncp/qr-gen/canvas"
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/internal/bitx"
	"github.com/j4ncp/qr-gen/qrerr"
	"github.com/j4ncp/qr-gen/sizecfg"
)

const (
	formatGenerator = 0x537
	formatMaskStd   = 0x5412
	formatMaskMicro = 0x4445

	versionGenerator = 0x1F25
)

// encodeFormat computes the final 15-bit masked format-info codeword for a
// 5-bit data value, BCH(15,5)-encoded with generator 0x537 (spec §4.6).
func encodeFormat(data uint32, xorMask uint32) uint32 {
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * formatGenerator)
	}
	bits := (data<<10 | rem) ^ xorMask
	return bits & 0x7FFF
}

// microSymbolNumber maps a legal Micro (size, level) pair to its 3-bit
// symbol-number code (ISO/IEC 18004:2015 Annex C, Table C.1), grounded in
// the standard's table since neither the teacher nor original_source
// implements Micro format info at all.
func microSymbolNumber(size sizecfg.Size, level ecclevel.Level) (uint32, error) {
	if !size.IsMicro() {
		return 0, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "not a micro size: %v", size)
	}
	switch size.Value() {
	case 1:
		if level == ecclevel.L {
			return 0, nil
		}
	case 2:
		switch level {
		case ecclevel.L:
			return 1, nil
		case ecclevel.M:
			return 2, nil
		}
	case 3:
		switch level {
		case ecclevel.L:
			return 3, nil
		case ecclevel.M:
			return 4, nil
		}
	case 4:
		switch level {
		case ecclevel.L:
			return 5, nil
		case ecclevel.M:
			return 6, nil
		case ecclevel.Q:
			return 7, nil
		}
	}
	return 0, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "no format table entry for %v/%v", size, level)
}

// WriteFormatInfo computes and writes the 15-bit format-info codeword for
// the given symbol configuration and chosen mask index into c's reserved
// cells (spec §4.6). For Standard, data is (ecc-format-bits<<3 | mask); for
// Micro it is (symbolNumber<<2 | mask), since Micro defines only 4 masks
// and so needs 2 mask bits rather than Standard's 3 — the split that keeps
// the BCH(15,5) input at 5 bits for both families.
func WriteFormatInfo(c *canvas.Canvas, size sizecfg.Size, level ecclevel.Level, maskIndex uint32) error {
	if size.IsMicro() {
		if maskIndex > 3 {
			return qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "micro mask index %d out of range", maskIndex)
		}
		symNum, err := microSymbolNumber(size, level)
		if err != nil {
			return err
		}
		data := symNum<<2 | maskIndex
		bits := encodeFormat(data, formatMaskMicro)
		writeMicroFormatBits(c, bits)
		return nil
	}

	if maskIndex > 7 {
		return qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "standard mask index %d out of range", maskIndex)
	}
	data := uint32(level.FormatBits())<<3 | maskIndex
	bits := encodeFormat(data, formatMaskStd)
	writeStandardFormatBits(c, bits, size.InteriorSide())
	return nil
}

// writeStandardFormatBits places the two redundant copies of a Standard
// symbol's 15-bit format-info codeword, in the exact cell order of the
// teacher's drawFormatBits.
func writeStandardFormatBits(c *canvas.Canvas, bits uint32, interiorSide int) {
	for i := int32(0); i < 6; i++ {
		c.SetModule(8, int(i), bitx.GetBit(bits, i))
	}
	c.SetModule(8, 7, bitx.GetBit(bits, 6))
	c.SetModule(8, 8, bitx.GetBit(bits, 7))
	c.SetModule(7, 8, bitx.GetBit(bits, 8))
	for i := int32(9); i < 15; i++ {
		c.SetModule(int(14-i), 8, bitx.GetBit(bits, i))
	}

	s := interiorSide
	for i := int32(0); i < 8; i++ {
		c.SetModule(s-1-int(i), 8, bitx.GetBit(bits, i))
	}
	for i := int32(8); i < 15; i++ {
		c.SetModule(8, s-15+int(i), bitx.GetBit(bits, i))
	}
	c.SetModule(8, s-8, true) // the canonical always-dark module
}

// writeMicroFormatBits places the single copy of a Micro symbol's 15-bit
// format-info codeword along the reserved L-shaped run at column/row 8
// (spec §4.6): bit 0 nearest the finder at (8,1), descending the column to
// (8,8), then continuing along the row from (7,8) back to (1,8).
func writeMicroFormatBits(c *canvas.Canvas, bits uint32) {
	for i := int32(0); i < 8; i++ {
		c.SetModule(8, int(i+1), bitx.GetBit(bits, i))
	}
	for i := int32(8); i < 15; i++ {
		c.SetModule(int(15-i), 8, bitx.GetBit(bits, i))
	}
}

// WriteVersionInfo computes and writes the 18-bit version-info codeword
// for Standard v>=7 (spec §4.6); a no-op for Micro and for v<7.
func WriteVersionInfo(c *canvas.Canvas, size sizecfg.Size) {
	if size.IsMicro() || size.Value() < 7 {
		return
	}
	data := uint32(size.Value())
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * versionGenerator)
	}
	bits := data<<12 | rem

	s := size.InteriorSide()
	for i := int32(0); i < 18; i++ {
		a := int32(s) - 11 + i%3
		b := i / 3
		bit := bitx.GetBit(bits, i)
		c.SetModule(int(a), int(b), bit)
		c.SetModule(int(b), int(a), bit)
	}
}
