// Package bitstream implements C2: the bit recorder and the mode/count/
// data/ECI/terminator/pad writers. Grounded in the teacher's
// qrsegment.BitBuffer (bit-at-a-time append) generalized to Micro sizes
// and Kanji mode, and in original_source/src/bitcoding.rs for the
// finalize/padding algorithm (half-codeword handling for Micro(1)/(3)).
package bitstream

import (
	"github.com/j4ncp/qr-gen/capacity"
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/internal/bitx"
	"github.com/j4ncp/qr-gen/mode"
	"github.com/j4ncp/qr-gen/qrerr"
	"github.com/j4ncp/qr-gen/sizecfg"
)

// alphanumericCharset is the 45-character alphanumeric alphabet in index order.
var alphanumericCharset = [45]rune{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	' ', '$', '%', '*', '+', '-', '.', '/', ':',
}

var alphanumericIndex = func() map[rune]uint32 {
	m := make(map[rune]uint32, 45)
	for i, c := range alphanumericCharset {
		m[c] = uint32(i)
	}
	return m
}()

// Recorder is an append-only, byte-unaligned bit buffer supporting
// fractional-final-byte writes and byte-aligned playback (spec §3's
// "Bitstream recorder" data model, spec §9's "any implementation that
// preserves byte-identical output is acceptable").
type Recorder struct {
	bits []bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Len returns the number of bits written so far.
func (r *Recorder) Len() int {
	return len(r.bits)
}

// WriteBits appends the low-order n bits of val, most-significant bit
// first. Requires n <= 32 and val < 2^n.
func (r *Recorder) WriteBits(val uint32, n uint8) {
	if n > 32 {
		panic("bitstream: bit width out of range")
	}
	if n < 32 && (val>>n) != 0 {
		panic("bitstream: value does not fit in n bits")
	}
	for i := int32(n) - 1; i >= 0; i-- {
		r.bits = append(r.bits, bitx.GetBit(val, i))
	}
}

// Bytes plays the recorded bits back as a byte-aligned stream. If Len() is
// not a multiple of 8, the final byte's low-order bits are zero-padded and
// residue reports how many low-order bits of the last byte are padding
// rather than recorded data.
func (r *Recorder) Bytes() (out []byte, residue int) {
	n := len(r.bits)
	nbytes := (n + 7) / 8
	out = make([]byte, nbytes)
	for i, bit := range r.bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	if n%8 != 0 {
		residue = 8 - n%8
	}
	return out, residue
}

// WriteSegment encodes payload under mode at size, appending the mode
// indicator, character-count indicator, and packed data bits (spec §4.1).
func (r *Recorder) WriteSegment(payload []byte, m mode.Mode, size sizecfg.Size) error {
	if !m.LegalForSize(size) {
		return qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "mode %v illegal for size %v", m, size)
	}

	width := mode.IndicatorWidth(size)
	if width > 0 {
		r.WriteBits(m.IndicatorBits(size), width)
	}

	switch m {
	case mode.Numeric:
		return r.writeNumeric(payload, size)
	case mode.Alphanumeric:
		return r.writeAlphanumeric(payload, size)
	case mode.Bytes:
		return r.writeBytes(payload, size)
	case mode.Kanji:
		return r.writeKanji(payload, size)
	default:
		return qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "mode %v is not a data segment mode", m)
	}
}

func (r *Recorder) writeNumeric(payload []byte, size sizecfg.Size) error {
	ccbits := mode.Numeric.NumCharCountBits(size)
	r.WriteBits(uint32(len(payload)), ccbits)

	var accum uint32
	var count uint8
	for _, c := range payload {
		if c < '0' || c > '9' {
			return qrerr.Wrapf(qrerr.ErrIllegalCharacter, "byte %q is not a decimal digit", c)
		}
		accum = accum*10 + uint32(c-'0')
		count++
		if count == 3 {
			r.WriteBits(accum, 10)
			accum, count = 0, 0
		}
	}
	if count > 0 { // 1 or 2 trailing digits: 4 or 7 bits
		r.WriteBits(accum, count*3+1)
	}
	return nil
}

func (r *Recorder) writeAlphanumeric(payload []byte, size sizecfg.Size) error {
	ccbits := mode.Alphanumeric.NumCharCountBits(size)
	r.WriteBits(uint32(len(payload)), ccbits)

	var accum uint32
	var count uint32
	for _, b := range payload {
		idx, ok := alphanumericIndex[rune(b)]
		if !ok {
			return qrerr.Wrapf(qrerr.ErrIllegalCharacter, "byte %q is not in the alphanumeric alphabet", b)
		}
		accum = accum*45 + idx
		count++
		if count == 2 {
			r.WriteBits(accum, 11)
			accum, count = 0, 0
		}
	}
	if count > 0 { // 1 trailing character: 6 bits
		r.WriteBits(accum, 6)
	}
	return nil
}

func (r *Recorder) writeBytes(payload []byte, size sizecfg.Size) error {
	ccbits := mode.Bytes.NumCharCountBits(size)
	r.WriteBits(uint32(len(payload)), ccbits)
	for _, b := range payload {
		r.WriteBits(uint32(b), 8)
	}
	return nil
}

// writeKanji packs pairs of Shift JIS X 0208 bytes, 13 bits per character
// (spec §4.1). Grounded in original_source/src/bitcoding.rs::encode_kanji_data:
// n in [0x8140,0x9FFC] subtracts 0x8140; n in [0xE040,0xEBBF] subtracts
// 0xC140 — this second offset collapses two distinct JIS ranges into one
// codespace and is easy to miswrite as 0xE040 (spec §9 Open Questions);
// preserve it exactly.
func (r *Recorder) writeKanji(payload []byte, size sizecfg.Size) error {
	if len(payload)%2 != 0 {
		return qrerr.Wrapf(qrerr.ErrOddKanjiLength, "%d payload bytes", len(payload))
	}
	numChars := len(payload) / 2
	ccbits := mode.Kanji.NumCharCountBits(size)
	r.WriteBits(uint32(numChars), ccbits)

	for i := 0; i < len(payload); i += 2 {
		n := uint32(payload[i])<<8 | uint32(payload[i+1])
		var m uint32
		switch {
		case n >= 0x8140 && n <= 0x9FFC:
			m = n - 0x8140
		case n >= 0xE040 && n <= 0xEBBF:
			m = n - 0xC140
		default:
			return qrerr.Wrapf(qrerr.ErrIllegalCharacter, "shift-jis word %#04x outside either kanji range", n)
		}
		packed := (m>>8)*0xC0 + (m & 0xFF)
		r.WriteBits(packed, 13)
	}
	return nil
}

// WriteECIHeader prefixes the ECI mode indicator then encodes assignval
// in the smallest of the standard's three tiers (spec §4.1).
func (r *Recorder) WriteECIHeader(assignval uint32) error {
	r.WriteBits(mode.Eci.IndicatorBits(sizecfg.NewStandard(1)), 4)
	switch {
	case assignval < (1 << 7):
		r.WriteBits(0, 1)
		r.WriteBits(assignval, 7)
	case assignval < (1 << 14):
		r.WriteBits(2, 2)
		r.WriteBits(assignval, 14)
	case assignval < 1_000_000:
		r.WriteBits(6, 3)
		r.WriteBits(assignval, 21)
	default:
		return qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "ECI assignment %d out of range", assignval)
	}
	return nil
}

const (
	padCodeword1 byte = 0b11101100 // 0xEC
	padCodeword2 byte = 0b00010001 // 0x11
)

// Finalize implements spec §4.1's finalization algorithm: terminator,
// byte alignment (with Micro(1)/(3) half-codeword special case), pad
// codewords, and the trailing 4-bit zero half-codeword for Micro(1)/(3).
// Returns the byte-aligned data codeword sequence.
func (r *Recorder) Finalize(size sizecfg.Size, level ecclevel.Level) ([]byte, error) {
	rec, ok := capacity.Lookup(size, level)
	if !ok {
		return nil, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "no capacity record for %v/%v", size, level)
	}
	capBits := rec.DataBits
	w := r.Len()
	if w > capBits {
		return nil, qrerr.Wrapf(qrerr.ErrPayloadTooLarge, "%d bits recorded exceeds %d-bit capacity", w, capBits)
	}

	isHalfCodewordSize := size.IsMicro() && (size.Value() == 1 || size.Value() == 3)

	termLen := 4
	if size.IsMicro() {
		termLen = 2*int(size.Value()) + 1
	}
	termBits := min(capBits-w, termLen)
	for i := 0; i < termBits; i++ {
		r.WriteBits(0, 1)
	}

	// Byte alignment. Standard sizes and non-half-codeword Micro sizes pad
	// up to the next multiple of 8; the half-codeword sizes pad only up to
	// the next multiple of 8 *within* the final 4-bit codeword, i.e. their
	// capacity itself is 8n+4 bits so "byte aligned" here means reaching
	// that 4-bit boundary.
	for r.Len()%8 != 0 && r.Len() < capBits {
		r.WriteBits(0, 1)
	}

	// Pad codewords, alternating 0xEC/0x11, starting with 0xEC, while
	// whole codewords of capacity remain.
	useFirst := true
	for capBits-r.Len() >= 8 {
		if useFirst {
			r.WriteBits(uint32(padCodeword1), 8)
		} else {
			r.WriteBits(uint32(padCodeword2), 8)
		}
		useFirst = !useFirst
	}

	if isHalfCodewordSize && capBits-r.Len() == 4 {
		r.WriteBits(0, 4)
	}

	if r.Len() != capBits {
		return nil, qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "recorded %d bits, want exactly %d", r.Len(), capBits)
	}

	out, residue := r.Bytes()
	if isHalfCodewordSize && residue != 4 {
		return nil, qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "half-codeword size expected 4 bits of residue, got %d", residue)
	}
	if !isHalfCodewordSize && residue != 0 {
		return nil, qrerr.Wrapf(qrerr.ErrInternalInvariantViolated, "expected byte-aligned capacity, got %d residual bits", residue)
	}
	return out, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
