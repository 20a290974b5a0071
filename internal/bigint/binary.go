package bigint

import (
	"math/bits"

	"github.com/pkg/errors"

	"cryptokit/internal/util/memzero"
)

// Decode converts a big-endian two's-complement encoding to an Int. The
// input is not modified. Redundant sign-extension bytes are accepted.
func Decode(b []byte) (*Int, error) {
	if len(b) == 0 {
		return nil, errors.WithStack(ErrEmptyEncoding)
	}
	if len(b) == 1 && b[0] == 0 {
		return Zero, nil
	}

	buf := make([]byte, len(b))
	copy(buf, b)
	defer memzero.Zero(buf)

	sign := 1
	if buf[0]&0x80 != 0 {
		sign = -1
		negate(buf)
	}
	mag := trimBytes(buf)
	if len(mag) == 0 {
		return Zero, nil
	}
	return newInt(sign, bytesToWords(mag)), nil
}

// Encode returns the minimal big-endian two's-complement encoding of x, which
// is the content of a DER INTEGER. Zero encodes as a single 0x00 byte.
func (x *Int) Encode() []byte {
	if x.sign == 0 {
		return []byte{0x00}
	}
	b := x.MagnitudeBytes()
	neg := x.sign < 0
	if neg {
		negate(b)
	}
	if (b[0]&0x80 != 0) == neg {
		return b
	}
	out := make([]byte, len(b)+1)
	if neg {
		out[0] = 0xFF
	}
	copy(out[1:], b)
	return out
}

// MagnitudeBytes returns |x| as a minimal unsigned big-endian byte slice.
// Zero yields a single 0x00 byte.
func (x *Int) MagnitudeBytes() []byte {
	if x.sign == 0 {
		return []byte{0x00}
	}
	skip := bits.LeadingZeros32(x.mag[0]) / 8
	b := make([]byte, len(x.mag)*4)
	for i, w := range x.mag {
		b[i*4] = byte(w >> 24)
		b[i*4+1] = byte(w >> 16)
		b[i*4+2] = byte(w >> 8)
		b[i*4+3] = byte(w)
	}
	return b[skip:]
}

// negate replaces b with its two's-complement negation in place.
func negate(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			break
		}
	}
}
