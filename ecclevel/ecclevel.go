// Package ecclevel holds the four error correction levels, generalizing
// the teacher's qrcodeecc.QrCodeEcc to also cover Micro QR Code's
// restricted legal combinations.
package ecclevel

import "github.com/j4ncp/qr-gen/sizecfg"

// Level is the error correction level in a QR Code or Micro QR Code symbol.
type Level uint8

const (
	// L tolerates about 7% erroneous codewords.
	L Level = iota
	// M tolerates about 15% erroneous codewords.
	M
	// Q tolerates about 25% erroneous codewords.
	Q
	// H tolerates about 30% erroneous codewords.
	H
)

// Ordinal returns an unsigned 2-bit integer (range 0-3), used to index
// capacity and block-schedule tables.
func (l Level) Ordinal() uint {
	switch l {
	case L:
		return 0
	case M:
		return 1
	case Q:
		return 2
	case H:
		return 3
	default:
		panic("ecclevel: unknown level")
	}
}

// FormatBits returns the 2-bit ECC code used in the Standard format-info
// field: L=01, M=00, Q=11, H=10.
func (l Level) FormatBits() uint8 {
	switch l {
	case L:
		return 1
	case M:
		return 0
	case Q:
		return 3
	case H:
		return 2
	default:
		panic("ecclevel: unknown level")
	}
}

// String renders the single-letter ECC token used in symbol configuration
// strings ("{size}-{ecc}").
func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "?"
	}
}

// Parse parses a single-letter ECC token: "L", "M", "Q", or "H".
func Parse(token string) (Level, bool) {
	switch token {
	case "L", "l":
		return L, true
	case "M", "m":
		return M, true
	case "Q", "q":
		return Q, true
	case "H", "h":
		return H, true
	default:
		return 0, false
	}
}

// legalMicro reports the legal ECC levels per Micro version, per spec §3
// ("Micro(1) supports only L; Micro(4) supports L/M/Q"), grounded in
// original_source/src/tables.rs's capacity table (which enumerates exactly
// these combinations by omission).
var legalMicro = map[uint8]map[Level]bool{
	1: {L: true},
	2: {L: true, M: true},
	3: {L: true, M: true},
	4: {L: true, M: true, Q: true},
}

// Legal reports whether (size, level) is a combination the standard defines.
func Legal(size sizecfg.Size, level Level) bool {
	if !size.IsMicro() {
		return true
	}
	allowed, ok := legalMicro[size.Value()]
	if !ok {
		return false
	}
	return allowed[level]
}
