package bigint

import "math/bits"

// Int is an immutable arbitrary-precision signed integer.
//
// The zero value is 0. Operations never modify their receiver or arguments;
// each one returns a new or shared immutable *Int.
type Int struct {
	sign int8
	mag  []uint32
}

// Zero is the shared value 0.
var Zero = &Int{sign: 0, mag: []uint32{0}}

// newInt pairs sign with an already canonical magnitude and checks the
// representation invariants.
func newInt(sign int, mag []uint32) *Int {
	if sign < -1 || sign > 1 {
		panic("bigint: sign out of {-1, 0, 1}")
	}
	if len(mag) == 0 {
		panic("bigint: empty magnitude")
	}
	if len(mag) > 1 && mag[0] == 0 {
		panic("bigint: magnitude has a leading zero word")
	}
	if (sign == 0) != (mag[0] == 0) {
		panic("bigint: sign does not match magnitude")
	}
	if sign == 0 {
		return Zero
	}
	return &Int{sign: int8(sign), mag: mag}
}

// build strips leading zero words from mag and returns Zero when nothing is
// left. mag is owned by the result afterwards.
func build(sign int, mag []uint32) *Int {
	mag = trimWords(mag)
	if len(mag) == 0 {
		return Zero
	}
	return newInt(sign, mag)
}

// FromMagnitude interprets b as an unsigned big-endian magnitude and gives it
// the sign of sign. The sign is ignored when the magnitude is zero; a zero
// sign with a non-zero magnitude panics.
func FromMagnitude(sign int, b []byte) *Int {
	b = trimBytes(b)
	if len(b) == 0 {
		return Zero
	}
	switch {
	case sign > 0:
		sign = 1
	case sign < 0:
		sign = -1
	}
	return newInt(sign, bytesToWords(b))
}

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int { return int(x.sign) }

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return x.sign == 0 }

// Neg returns -x. Zero is returned unchanged.
func (x *Int) Neg() *Int {
	if x.sign == 0 {
		return x
	}
	return &Int{sign: -x.sign, mag: x.mag}
}

// Plus returns x.
func (x *Int) Plus() *Int { return x }

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.sign >= 0 {
		return x
	}
	return &Int{sign: 1, mag: x.mag}
}

// BitLen returns the length of |x| in bits. BitLen of 0 is 0.
func (x *Int) BitLen() int {
	if x.sign == 0 {
		return 0
	}
	return (len(x.mag)-1)*32 + bits.Len32(x.mag[0])
}

func trimWords(w []uint32) []uint32 {
	for len(w) > 0 && w[0] == 0 {
		w = w[1:]
	}
	return w
}

func trimBytes(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

// bytesToWords regroups a big-endian byte string into big-endian words.
func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, (len(b)+3)/4)
	for k := 0; k < len(b); k++ {
		words[len(words)-1-k/4] |= uint32(b[len(b)-1-k]) << (8 * (k % 4))
	}
	return words
}
