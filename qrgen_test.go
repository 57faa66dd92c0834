package qrgen

import (
	"testing"

	"github.com/j4ncp/qr-gen/canvas"
	"github.com/j4ncp/qr-gen/capacity"
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/mask"
	"github.com/j4ncp/qr-gen/mode"
	"github.com/j4ncp/qr-gen/sizecfg"
)

// The tests below implement a minimal, independent decoder — used only
// here, never by non-test code — that walks the same zig-zag placement
// order as canvas.PlaceCodewords, undoes the mask Build() chose, and
// deinterleaves the Reed-Solomon block schedule, to confirm spec §8's
// round-trip property: decode(Build(payload)) == payload. It trusts the
// mask index and ECC level Build() already reports rather than
// re-deriving them from the format-info field, and it does not perform
// syndrome-based error correction since a freshly built symbol carries no
// errors to correct.

// decodedAlphanumericCharset mirrors bitstream's unexported alphabet
// table; duplicated here since the decoder is independent test code, not
// a caller of the encoder's internals.
var decodedAlphanumericCharset = [45]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	' ', '$', '%', '*', '+', '-', '.', '/', ':',
}

type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) readBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		bitIdx := 7 - r.pos%8
		bit := (r.data[byteIdx] >> uint(bitIdx)) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v
}

// extractInterleavedCodewords re-walks the zig-zag placement order used
// by canvas.PlaceCodewords, reading each data cell's mask-undone bit
// value out of the rendered matrix, and reconstructs the full dataLen+ecc
// byte stream PlaceCodewords was given — including the 4-bit gap
// PlaceCodewords leaves unplaced for the Micro(1)/(3) half-codeword tail
// (per original_source/src/serialization.rs::insert_data_payload: only
// the final DATA codeword's low nibble is dropped; that nibble is by
// convention zero padding, so re-inserting zero bits there recovers the
// original byte boundaries).
func extractInterleavedCodewords(t *testing.T, matrix Matrix, size sizecfg.Size, maskIdx uint8, dataLen, totalLen int, halfCodewordTail bool) []byte {
	t.Helper()
	qz := size.QuietZoneWidth()
	dark := func(x, y int) bool { return matrix[y+qz][x+qz] }

	ref := canvas.New(size) // used only to look up which (x,y) are data cells
	n := ref.Size()
	micro := size.IsMicro()

	timingCol := 6
	if micro {
		timingCol = 0
	}

	dataBits := dataLen * 8
	if halfCodewordTail {
		dataBits -= 4
	}
	totalBits := dataBits + (totalLen-dataLen)*8

	var bits []bool
	right := n - 1
	for right >= 1 && len(bits) < totalBits {
		if right == timingCol {
			right--
		}
		for vert := 0; vert < n; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = n - 1 - vert
				} else {
					y = vert
				}
				if ref.Get(x, y) == canvas.DataRegion && len(bits) < totalBits {
					raw := dark(x, y)
					flipped := mask.Apply(mask.Mask(maskIdx), micro, y, x)
					bits = append(bits, raw != flipped)
				}
			}
		}
		right -= 2
	}

	full := make([]bool, totalLen*8)
	for i := 0; i < totalBits; i++ {
		abs := i
		if i >= dataBits {
			abs = dataLen*8 + (i - dataBits)
		}
		full[abs] = bits[i]
	}

	out := make([]byte, totalLen)
	for i, b := range full {
		if b {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// deinterleaveDataCodewords reverses rs.Construct's column-major
// interleave, discarding the ECC columns (no correction is attempted),
// returning the per-block data payload in block order — exactly
// bitstream.Recorder.Finalize's output.
func deinterleaveDataCodewords(codewords []byte, rec capacity.Record) []byte {
	groups := []capacity.BlockGroup{rec.Group1, rec.Group2}
	maxData := rec.Group1.Data
	if rec.Group2.Data > maxData {
		maxData = rec.Group2.Data
	}
	totalBlocks := rec.Group1.Blocks + rec.Group2.Blocks
	blockData := make([][]byte, totalBlocks)

	pos := 0
	for c := 0; c < maxData; c++ {
		b := 0
		for _, g := range groups {
			for i := 0; i < g.Blocks; i++ {
				if c < g.Data {
					blockData[b] = append(blockData[b], codewords[pos])
					pos++
				}
				b++
			}
		}
	}
	var out []byte
	for _, bd := range blockData {
		out = append(out, bd...)
	}
	return out
}

func decodeModeIndicator(bits uint32, size sizecfg.Size) mode.Mode {
	for _, m := range []mode.Mode{mode.Numeric, mode.Alphanumeric, mode.Bytes, mode.Kanji} {
		if m.LegalForSize(size) && m.IndicatorBits(size) == bits {
			return m
		}
	}
	panic("decodeModeIndicator: no legal mode matches the read indicator bits")
}

func decodeNumeric(r *bitReader, count int) []byte {
	out := make([]byte, 0, count)
	for count >= 3 {
		v := r.readBits(10)
		out = append(out, byte('0'+v/100), byte('0'+(v/10)%10), byte('0'+v%10))
		count -= 3
	}
	if count == 2 {
		v := r.readBits(7)
		out = append(out, byte('0'+v/10), byte('0'+v%10))
	} else if count == 1 {
		v := r.readBits(4)
		out = append(out, byte('0'+v))
	}
	return out
}

func decodeAlphanumeric(r *bitReader, count int) []byte {
	out := make([]byte, 0, count)
	for count >= 2 {
		v := r.readBits(11)
		out = append(out, decodedAlphanumericCharset[v/45], decodedAlphanumericCharset[v%45])
		count -= 2
	}
	if count == 1 {
		v := r.readBits(6)
		out = append(out, decodedAlphanumericCharset[v])
	}
	return out
}

// decodeBuild decodes a Build() result back to its original payload
// bytes, trusting the (size, level) the caller used to build it.
func decodeBuild(t *testing.T, result *Result, size sizecfg.Size, level ecclevel.Level) []byte {
	t.Helper()
	rec, ok := capacity.Lookup(size, level)
	if !ok {
		t.Fatalf("no capacity record for %v/%v", size, level)
	}

	halfCodewordTail := size.IsMicro() && (size.Value() == 1 || size.Value() == 3)
	interleaved := extractInterleavedCodewords(t, result.Matrix, size, result.MaskIndex, rec.TotalDataCodewords(), rec.TotalCodewords(), halfCodewordTail)
	dataBytes := deinterleaveDataCodewords(interleaved, rec)

	br := &bitReader{data: dataBytes}
	width := int(mode.IndicatorWidth(size))
	var indicator uint32
	var m mode.Mode
	if width == 0 {
		m = mode.Numeric // Micro(1) writes no mode indicator; only Numeric is legal
	} else {
		indicator = br.readBits(width)
		m = decodeModeIndicator(indicator, size)
	}

	count := int(br.readBits(int(m.NumCharCountBits(size))))
	switch m {
	case mode.Numeric:
		return decodeNumeric(br, count)
	case mode.Alphanumeric:
		return decodeAlphanumeric(br, count)
	default:
		t.Fatalf("decodeBuild: mode %v not exercised by this decoder", m)
		return nil
	}
}

// TestBuildRoundTripMicro3Numeric is spec §8 scenario 5: a Micro(3)/M
// numeric symbol must decode back to its own payload.
func TestBuildRoundTripMicro3Numeric(t *testing.T) {
	payload := []byte("1234567")
	size := sizecfg.NewMicro(3)
	level := ecclevel.M

	result, err := Build(payload, size, level, mode.Numeric, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantSide := size.TotalSide()
	if len(result.Matrix) != wantSide {
		t.Fatalf("matrix side = %d, want %d", len(result.Matrix), wantSide)
	}

	got := decodeBuild(t, result, size, level)
	if string(got) != string(payload) {
		t.Fatalf("round trip = %q, want %q", got, payload)
	}
}

// TestBuildRoundTripStandard6AlphanumericH is spec §8 scenario 6: a
// Standard(6)/H alphanumeric symbol must decode back to its own payload.
func TestBuildRoundTripStandard6AlphanumericH(t *testing.T) {
	payload := []byte("AC-47")
	size := sizecfg.NewStandard(6)
	level := ecclevel.H

	result, err := Build(payload, size, level, mode.Alphanumeric, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantSide := size.TotalSide()
	if len(result.Matrix) != wantSide {
		t.Fatalf("matrix side = %d, want %d", len(result.Matrix), wantSide)
	}

	got := decodeBuild(t, result, size, level)
	if string(got) != string(payload) {
		t.Fatalf("round trip = %q, want %q", got, payload)
	}
}

func TestBuildRejectsIllegalModeForMicroSize(t *testing.T) {
	if _, err := Build([]byte("hello"), sizecfg.NewMicro(1), ecclevel.L, mode.Bytes, nil); err == nil {
		t.Fatal("expected an error: Bytes mode is illegal on Micro(1)")
	}
}

func TestBuildRejectsEciOnMicroSize(t *testing.T) {
	eci := uint32(3)
	if _, err := Build([]byte("123"), sizecfg.NewMicro(2), ecclevel.L, mode.Numeric, &eci); err == nil {
		t.Fatal("expected an error: ECI header is illegal on micro sizes")
	}
}

func TestBuildRejectsIllegalEccForSize(t *testing.T) {
	if _, err := Build([]byte("123"), sizecfg.NewMicro(1), ecclevel.M, mode.Numeric, nil); err == nil {
		t.Fatal("expected an error: Micro(1) only supports ECC level L")
	}
}

func TestParseConfigRoundTrip(t *testing.T) {
	cases := []string{"1-M", "40-H", "M1-L", "M4-Q"}
	for _, s := range cases {
		cfg, err := ParseConfig(s)
		if err != nil {
			t.Fatalf("ParseConfig(%q): %v", s, err)
		}
		if cfg.String() != s {
			t.Errorf("ParseConfig(%q).String() = %q, want %q", s, cfg.String(), s)
		}
	}
}

func TestParseConfigRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "nodash", "-M", "7-"} {
		if _, err := ParseConfig(s); err == nil {
			t.Errorf("ParseConfig(%q) should fail", s)
		}
	}
}
