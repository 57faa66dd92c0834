// Package sizecfg holds the symbol size tagged union (spec §3): either a
// Micro QR Code of version 1-4, or a Standard QR Code of version 1-40.
// It replaces the teacher's Standard-only version.Version.
package sizecfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/j4ncp/qr-gen/qrerr"
)

// Class distinguishes the two symbol families.
type Class uint8

const (
	Micro Class = iota
	Standard
)

// Size is an immutable tagged (Class, version) pair.
//
//	Micro(k)    with k in [1,4]
//	Standard(v) with v in [1,40]
type Size struct {
	class Class
	value uint8
}

// NewMicro builds a Micro(k) size. Panics if k is outside [1,4]: this is a
// programming error, not user input (callers parse user input via Parse).
func NewMicro(k uint8) Size {
	if k < 1 || k > 4 {
		panic("sizecfg: micro version out of range")
	}
	return Size{class: Micro, value: k}
}

// NewStandard builds a Standard(v) size. Panics if v is outside [1,40].
func NewStandard(v uint8) Size {
	if v < 1 || v > 40 {
		panic("sizecfg: standard version out of range")
	}
	return Size{class: Standard, value: v}
}

// Class reports whether this is a Micro or Standard size.
func (s Size) Class() Class { return s.class }

// Value returns the version number: k in [1,4] for Micro, v in [1,40] for Standard.
func (s Size) Value() uint8 { return s.value }

// IsMicro reports whether this is a Micro QR Code size.
func (s Size) IsMicro() bool { return s.class == Micro }

// InteriorSide returns the module side length excluding the quiet zone:
// 2k+9 for Micro(k), 4v+17 for Standard(v).
func (s Size) InteriorSide() int {
	if s.IsMicro() {
		return 2*int(s.value) + 9
	}
	return 4*int(s.value) + 17
}

// QuietZoneWidth returns the mandatory light-module border width: 2 for
// Micro, 4 for Standard.
func (s Size) QuietZoneWidth() int {
	if s.IsMicro() {
		return 2
	}
	return 4
}

// TotalSide returns InteriorSide() + 2*QuietZoneWidth(), the full matrix side.
func (s Size) TotalSide() int {
	return s.InteriorSide() + 2*s.QuietZoneWidth()
}

// String renders the symbol configuration's size token: "M1".."M4" or "1".."40".
func (s Size) String() string {
	if s.IsMicro() {
		return fmt.Sprintf("M%d", s.value)
	}
	return strconv.Itoa(int(s.value))
}

// Parse parses a size token as used in the "{size}-{ecc}" symbol
// configuration string (spec §6): "M1".."M4" or "1".."40".
func Parse(token string) (Size, error) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "M") || strings.HasPrefix(token, "m") {
		n, err := strconv.Atoi(token[1:])
		if err != nil || n < 1 || n > 4 {
			return Size{}, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "invalid micro size token %q", token)
		}
		return NewMicro(uint8(n)), nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > 40 {
		return Size{}, qrerr.Wrapf(qrerr.ErrUnsupportedConfiguration, "invalid standard size token %q", token)
	}
	return NewStandard(uint8(n)), nil
}

// Equal reports whether two sizes denote the same (class, version) pair.
func (s Size) Equal(o Size) bool {
	return s.class == o.class && s.value == o.value
}
