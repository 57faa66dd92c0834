// Package mode describes how a segment's data bits are interpreted,
// generalizing the teacher's qrsegment.QrSegmentMode to Micro sizes.
package mode

import (
	"strings"

	"github.com/j4ncp/qr-gen/sizecfg"
)

// Mode is one of the five encoding modes (spec §3's partial order:
// Numeric ≺ Alphanumeric ≺ Bytes, Kanji ≺ Bytes; ECI is a header, not a
// data mode).
type Mode uint32

const (
	Numeric Mode = iota
	Alphanumeric
	Bytes
	Kanji
	Eci
)

// standardBits gives the 4-bit Standard mode indicator values (spec §4.1).
var standardBits = map[Mode]uint32{
	Numeric:      0x1,
	Alphanumeric: 0x2,
	Bytes:        0x4,
	Kanji:        0x8,
	Eci:          0x7,
}

// microBits gives the low-order bits of {Numeric=0, Alphanumeric=1,
// Bytes=2, Kanji=3} that Micro(k) truncates to its k-1 bit mode indicator.
var microBits = map[Mode]uint32{
	Numeric:      0,
	Alphanumeric: 1,
	Bytes:        2,
	Kanji:        3,
}

// IndicatorWidth returns the bit width of the mode indicator field for
// this mode at the given size: 4 for Standard, k-1 for Micro(k) (0 for
// Micro(1), which writes no mode indicator at all).
func IndicatorWidth(size sizecfg.Size) uint8 {
	if size.IsMicro() {
		k := size.Value()
		if k == 0 {
			return 0
		}
		return k - 1
	}
	return 4
}

// IndicatorBits returns the mode indicator value to write, already
// truncated to IndicatorWidth(size) bits.
func (m Mode) IndicatorBits(size sizecfg.Size) uint32 {
	if size.IsMicro() {
		v, ok := microBits[m]
		if !ok {
			panic("mode: ECI has no micro indicator")
		}
		width := IndicatorWidth(size)
		return v & ((1 << width) - 1)
	}
	v, ok := standardBits[m]
	if !ok {
		panic("mode: unknown mode")
	}
	return v
}

// standardCharCountBits[mode][tier] and microCharCountBits[mode][k] hold the
// character-count bit widths per spec §4.1's table. Standard is tiered by
// (ver+7)/17 into {1-9, 10-26, 27-40}; Micro is looked up directly by k.
var standardCharCountBits = map[Mode][3]uint8{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Bytes:        {8, 16, 16},
	Kanji:        {8, 10, 12},
	Eci:          {0, 0, 0},
}

var microCharCountBits = map[Mode][5]uint8{
	// index 0 unused; index k holds the width for Micro(k).
	Numeric:      {0, 3, 4, 5, 6},
	Alphanumeric: {0, 0, 3, 4, 5},
	Bytes:        {0, 0, 0, 4, 5},
	Kanji:        {0, 0, 0, 3, 4},
}

// NumCharCountBits returns the bit width of the character count field for
// a segment in this mode at the given size.
func (m Mode) NumCharCountBits(size sizecfg.Size) uint8 {
	if size.IsMicro() {
		tbl, ok := microCharCountBits[m]
		if !ok {
			panic("mode: ECI is not valid for micro sizes")
		}
		return tbl[size.Value()]
	}
	tbl, ok := standardCharCountBits[m]
	if !ok {
		panic("mode: unknown mode")
	}
	idx := (size.Value() + 7) / 17
	return tbl[idx]
}

// String renders the mode's lowercase name, as used on the CLI.
func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Bytes:
		return "bytes"
	case Kanji:
		return "kanji"
	case Eci:
		return "eci"
	default:
		return "unknown"
	}
}

// Parse parses a mode name ("numeric", "alphanumeric", "bytes", "kanji"),
// case-insensitively. ECI is a header, not a selectable data mode, and is
// not accepted here.
func Parse(token string) (Mode, bool) {
	switch strings.ToLower(token) {
	case "numeric":
		return Numeric, true
	case "alphanumeric":
		return Alphanumeric, true
	case "bytes":
		return Bytes, true
	case "kanji":
		return Kanji, true
	default:
		return 0, false
	}
}

// LegalForSize reports whether this mode may be used at the given size,
// per the standard's restriction that Micro(1) supports only Numeric and
// Micro(2) supports only Numeric/Alphanumeric.
func (m Mode) LegalForSize(size sizecfg.Size) bool {
	if !size.IsMicro() {
		return true
	}
	switch size.Value() {
	case 1:
		return m == Numeric
	case 2:
		return m == Numeric || m == Alphanumeric
	default:
		return m == Numeric || m == Alphanumeric || m == Bytes || m == Kanji
	}
}
