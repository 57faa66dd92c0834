// Package capacity implements C1: the per-(size, ECC) symbol capacity and
// block-schedule lookup. Standard entries are grounded in the teacher's
// ECC_CODEWORDS_PER_BLOCK / NUM_ERROR_CORRECTION_BLOCKS tables (correct for
// all 40 versions) combined with its raw-data-module and block-split
// arithmetic; Micro entries are copied verbatim from
// original_source/src/tables.rs's define_capacity_table! (ISO/IEC
// 18004:2015 table 7 / 9 combination), which the teacher has no equivalent
// of at all.
//
// Standard records live in a 2-D static array indexed by (version-1, ecc
// ordinal); every Standard pair is legal, so it holds no sentinel. The seven
// legal Micro pairs are held in a nested map keyed by size then level, and
// a pair missing from that map is illegal.
package capacity

import (
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/mode"
	"github.com/j4ncp/qr-gen/sizecfg"
)

// BlockGroup describes one group of identically-shaped Reed-Solomon
// blocks within a schedule.
type BlockGroup struct {
	Blocks    int // number of blocks in this group
	Codewords int // total codewords per block (data + ecc)
	Data      int // data codewords per block
}

// Record is a symbol capacity entry: total data bits, per-mode character
// capacity, and a one- or two-group block schedule.
type Record struct {
	DataBits int

	Numeric      int
	Alphanumeric int
	Bytes        int
	Kanji        int

	Group1 BlockGroup
	Group2 BlockGroup // Blocks == 0 when absent
}

// TotalCodewords returns the sum over groups of count*codewords.
func (r Record) TotalCodewords() int {
	return r.Group1.Blocks*r.Group1.Codewords + r.Group2.Blocks*r.Group2.Codewords
}

// TotalDataCodewords returns the sum over groups of count*data.
func (r Record) TotalDataCodewords() int {
	return r.Group1.Blocks*r.Group1.Data + r.Group2.Blocks*r.Group2.Data
}

// EccCodewordsPerBlock returns e, the ECC codewords per block — constant
// across both groups of a schedule (spec §3 invariant iii).
func (r Record) EccCodewordsPerBlock() int {
	return r.Group1.Codewords - r.Group1.Data
}

// CharCapacity returns the per-character capacity for the given mode.
func (r Record) CharCapacity(m mode.Mode) int {
	switch m {
	case mode.Numeric:
		return r.Numeric
	case mode.Alphanumeric:
		return r.Alphanumeric
	case mode.Bytes:
		return r.Bytes
	case mode.Kanji:
		return r.Kanji
	default:
		panic("capacity: mode has no direct character capacity")
	}
}

// MisdecodeProtection returns the number of misdecode protection
// codewords defined by the standard for this (size, ECC) pair — a
// supplemented feature (SPEC_FULL.md) not exercised by the core pipeline
// but useful to downstream decoders. Grounded in
// original_source/src/tables.rs::get_p_for_symbol.
func MisdecodeProtection(size sizecfg.Size, level ecclevel.Level) int {
	if !size.IsMicro() {
		return 0
	}
	switch size.Value() {
	case 1:
		return 2
	case 2:
		if level == ecclevel.L {
			return 3
		}
		return 2
	case 3:
		return 2
	case 4:
		if level == ecclevel.L {
			return 2
		}
		return 0
	default:
		return 0
	}
}

// microTable holds the 7 legal Micro (size,ecc) capacity records, copied
// verbatim from original_source/src/tables.rs.
var microTable = map[sizecfg.Size]map[ecclevel.Level]Record{
	sizecfg.NewMicro(1): {
		ecclevel.L: {DataBits: 20, Numeric: 5, Alphanumeric: 0, Bytes: 0, Kanji: 0,
			Group1: BlockGroup{Blocks: 1, Codewords: 5, Data: 3}},
	},
	sizecfg.NewMicro(2): {
		ecclevel.L: {DataBits: 40, Numeric: 10, Alphanumeric: 6, Bytes: 0, Kanji: 0,
			Group1: BlockGroup{Blocks: 1, Codewords: 10, Data: 5}},
		ecclevel.M: {DataBits: 32, Numeric: 8, Alphanumeric: 5, Bytes: 0, Kanji: 0,
			Group1: BlockGroup{Blocks: 1, Codewords: 10, Data: 4}},
	},
	sizecfg.NewMicro(3): {
		ecclevel.L: {DataBits: 84, Numeric: 23, Alphanumeric: 14, Bytes: 9, Kanji: 6,
			Group1: BlockGroup{Blocks: 1, Codewords: 17, Data: 11}},
		ecclevel.M: {DataBits: 68, Numeric: 18, Alphanumeric: 11, Bytes: 7, Kanji: 4,
			Group1: BlockGroup{Blocks: 1, Codewords: 17, Data: 9}},
	},
	sizecfg.NewMicro(4): {
		ecclevel.L: {DataBits: 128, Numeric: 35, Alphanumeric: 21, Bytes: 15, Kanji: 9,
			Group1: BlockGroup{Blocks: 1, Codewords: 24, Data: 16}},
		ecclevel.M: {DataBits: 112, Numeric: 30, Alphanumeric: 18, Bytes: 13, Kanji: 8,
			Group1: BlockGroup{Blocks: 1, Codewords: 24, Data: 14}},
		ecclevel.Q: {DataBits: 80, Numeric: 21, Alphanumeric: 13, Bytes: 9, Kanji: 4,
			Group1: BlockGroup{Blocks: 1, Codewords: 24, Data: 10}},
	},
}

// standardEntry is a flat row used only to populate standardTable at init
// time; kept separate from Record so the generated table literal stays
// readable as (size, ecc) rows rather than nested maps.
type standardEntry struct {
	size                     uint8
	ecc                      ecclevel.Level
	dataBits                 int
	numeric, alphanumeric    int
	bytesCap, kanji          int
	g1Blocks, g1Codewords    int
	g1Data                   int
	g2Blocks, g2Codewords    int
	g2Data                   int
}

// standardTable is populated from standardRows (see table_standard.go) at
// package init, keyed by [version-1][ecc.Ordinal()].
var standardTable [40][4]Record

func init() {
	for _, row := range standardRows {
		standardTable[row.size-1][row.ecc.Ordinal()] = Record{
			DataBits:     row.dataBits,
			Numeric:      row.numeric,
			Alphanumeric: row.alphanumeric,
			Bytes:        row.bytesCap,
			Kanji:        row.kanji,
			Group1: BlockGroup{Blocks: row.g1Blocks, Codewords: row.g1Codewords, Data: row.g1Data},
			Group2: BlockGroup{Blocks: row.g2Blocks, Codewords: row.g2Codewords, Data: row.g2Data},
		}
	}
}

// Lookup returns the capacity record for (size, level) and whether the
// combination is legal (spec §3: "legal combinations per size are
// constrained").
func Lookup(size sizecfg.Size, level ecclevel.Level) (Record, bool) {
	if size.IsMicro() {
		byLevel, ok := microTable[size]
		if !ok {
			return Record{}, false
		}
		rec, ok := byLevel[level]
		return rec, ok
	}
	v := size.Value()
	if v < 1 || v > 40 {
		return Record{}, false
	}
	return standardTable[v-1][level.Ordinal()], true
}
