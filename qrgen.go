// Package qrgen builds QR Code and Micro QR Code symbols (ISO/IEC
// 18004:2015): it orchestrates segment encoding, Reed-Solomon error
// correction, matrix assembly, mask selection, and format/version info into
// the final module matrix (spec §2's data-flow, spec §6's Build entry
// point). Grounded in the teacher's top-level EncodeSegmentsAdvanced, which
// drives the same stages against a single QrCode object; generalized here
// across the capacity/bitstream/rs/canvas/mask/format packages so each
// stage is independently testable.
package qrgen

import (
	"github.com/j4ncp/qr-gen/bitstream"
	"github.com/j4ncp/qr-gen/canvas"
	"github.com/j4ncp/qr-gen/capacity"
	"github.com/j4ncp/qr-gen/ecclevel"
	"github.com/j4ncp/qr-gen/format"
	"github.com/j4ncp/qr-gen/mask"
	"github.com/j4ncp/qr-gen/mode"
	"github.com/j4ncp/qr-gen/qrerr"
	"github.com/j4ncp/qr-gen/rs"
	"github.com/j4ncp/qr-gen/sizecfg"
)

// Matrix is the final rendered symbol: Matrix[y][x], true meaning a dark
// module, including the mandatory quiet zone border (spec §6).
type Matrix = [][]bool

// Result carries the rendered matrix plus the choices Build made along the
// way, useful to a caller (e.g. the CLI) that wants to report them without
// re-deriving them.
type Result struct {
	Matrix    Matrix
	MaskIndex uint8
}

// Build implements spec §6's entry point: encode payload as a single
// segment of mode m at the given size/ECC level, optionally prefixed by an
// ECI designator, and return the finished module matrix.
//
// eciAssignment is nil for no ECI header (the common case); when non-nil it
// is written before the data segment (spec §4.1) and is only legal for
// Standard symbols.
func Build(payload []byte, size sizecfg.Size, level ecclevel.Level, m mode.Mode, eciAssignment *uint32) (*Result, error) {
	if !ecclevel.Legal(size, level) {
		return nil, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "ECC level %v illegal for size %v", level, size)
	}
	if !m.LegalForSize(size) {
		return nil, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "mode %v illegal for size %v", m, size)
	}
	if eciAssignment != nil && size.IsMicro() {
		return nil, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "ECI header illegal for micro size %v", size)
	}

	rec, ok := capacity.Lookup(size, level)
	if !ok {
		return nil, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "no capacity record for %v/%v", size, level)
	}

	recorder := bitstream.NewRecorder()
	if eciAssignment != nil {
		if err := recorder.WriteECIHeader(*eciAssignment); err != nil {
			return nil, err
		}
	}
	if err := recorder.WriteSegment(payload, m, size); err != nil {
		return nil, err
	}
	dataCodewords, err := recorder.Finalize(size, level)
	if err != nil {
		return nil, err
	}

	codewords, err := rs.Construct(dataCodewords, rec)
	if err != nil {
		return nil, err
	}

	cv := canvas.New(size)
	halfCodewordTail := size.IsMicro() && (size.Value() == 1 || size.Value() == 3)
	if err := cv.PlaceCodewords(codewords, len(dataCodewords), halfCodewordTail); err != nil {
		return nil, err
	}
	if err := cv.AssertNoDataRegion(); err != nil {
		return nil, err
	}

	bestMask, err := selectMask(cv, size)
	if err != nil {
		return nil, err
	}
	mask.ApplyToCanvas(cv, mask.Mask(bestMask), size.IsMicro())

	if err := format.WriteFormatInfo(cv, size, level, uint32(bestMask)); err != nil {
		return nil, err
	}
	format.WriteVersionInfo(cv, size)

	return &Result{
		Matrix:    cv.Matrix(size.QuietZoneWidth()),
		MaskIndex: bestMask,
	}, nil
}

// selectMask tries every legal mask candidate (spec §4.5), scoring each by
// applying it, measuring the penalty/score, then undoing it (a second
// mask.ApplyToCanvas with the same mask restores the canvas), and returns the index that wins (lowest Standard
// penalty, highest Micro score).
func selectMask(cv *canvas.Canvas, size sizecfg.Size) (uint8, error) {
	micro := size.IsMicro()
	n := 8
	if micro {
		n = 4
	}

	get := func(x, y int) bool { return cv.IsDark(x, y) }

	var best uint8
	bestScore := 0
	haveBest := false
	for i := 0; i < n; i++ {
		m := mask.Mask(i)
		mask.ApplyToCanvas(cv, m, micro)

		var score int
		if micro {
			score = mask.MicroScore(cv.Size(), get)
		} else {
			score = mask.StandardPenalty(cv.Size(), get)
		}

		mask.ApplyToCanvas(cv, m, micro) // undo

		better := !haveBest
		if micro {
			better = better || score > bestScore
		} else {
			better = better || score < bestScore
		}
		if better {
			best, bestScore, haveBest = uint8(i), score, true
		}
	}
	if !haveBest {
		return 0, qrerr.Wrap(qrerr.ErrInternalInvariantViolated, "no mask candidates evaluated")
	}
	return best, nil
}

// Config is a parsed "{size}-{ecc}" symbol configuration string (spec §6).
type Config struct {
	Size  sizecfg.Size
	Level ecclevel.Level
}

// ParseConfig parses a symbol configuration string such as "7-Q" or
// "M3-L" (spec §6), grounded in the field naming of
// original_source/tests/integration_tests.rs.
func ParseConfig(s string) (Config, error) {
	sizeTok, eccTok, ok := splitConfig(s)
	if !ok {
		return Config{}, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "malformed symbol configuration %q", s)
	}
	size, err := sizecfg.Parse(sizeTok)
	if err != nil {
		return Config{}, err
	}
	level, ok := ecclevel.Parse(eccTok)
	if !ok {
		return Config{}, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "invalid ECC token %q", eccTok)
	}
	return Config{Size: size, Level: level}, nil
}

func splitConfig(s string) (sizeTok, eccTok string, ok bool) {
	idx := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			idx = i
			break
		}
	}
	if idx < 0 || idx == len(s)-1 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

// String renders the symbol configuration string "{size}-{ecc}".
func (c Config) String() string {
	return c.Size.String() + "-" + c.Level.String()
}
