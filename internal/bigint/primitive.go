package bigint

import (
	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Integer is the set of native fixed-width integer types.
type Integer = safecast.Integer

// From converts any native integer to an Int.
func From[T Integer](v T) *Int {
	if v < 0 {
		return FromInt64(int64(v))
	}
	return FromUint64(uint64(v))
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) *Int {
	switch {
	case v == 0:
		return Zero
	case v < 0:
		return fromUint64(-1, ^uint64(v)+1)
	default:
		return fromUint64(1, uint64(v))
	}
}

// FromInt32 returns v as an Int.
func FromInt32(v int32) *Int { return FromInt64(int64(v)) }

// FromInt16 returns v as an Int.
func FromInt16(v int16) *Int { return FromInt64(int64(v)) }

// FromInt8 returns v as an Int.
func FromInt8(v int8) *Int { return FromInt64(int64(v)) }

// FromUint64 returns v as an Int.
func FromUint64(v uint64) *Int {
	if v == 0 {
		return Zero
	}
	return fromUint64(1, v)
}

// FromUint32 returns v as an Int.
func FromUint32(v uint32) *Int { return FromUint64(uint64(v)) }

// FromUint16 returns v as an Int.
func FromUint16(v uint16) *Int { return FromUint64(uint64(v)) }

// FromUint8 returns v as an Int.
func FromUint8(v uint8) *Int { return FromUint64(uint64(v)) }

func fromUint64(sign int, u uint64) *Int {
	hi, lo := uint32(u>>32), uint32(u&0xFFFFFFFF)
	if hi == 0 {
		return newInt(sign, []uint32{lo})
	}
	return newInt(sign, []uint32{hi, lo})
}

// low64 returns the two least significant magnitude words.
func (x *Int) low64() uint64 {
	var u uint64
	n := len(x.mag)
	if n > 0 {
		u = uint64(x.mag[n-1])
	}
	if n > 1 {
		u |= uint64(x.mag[n-2]) << 32
	}
	return u
}

// twos64 returns the low 64 bits of x in two's complement.
func (x *Int) twos64() uint64 {
	u := x.low64()
	if x.sign < 0 {
		u = ^u + 1
	}
	return u
}

// The narrowing conversions below keep the low-order bits of the two's
// complement form of x and discard the rest, like a Go integer conversion.
// Use Narrow to detect loss of magnitude.

// Int64 returns the low 64 bits of x as an int64.
func (x *Int) Int64() int64 { return int64(x.twos64()) }

// Int32 returns the low 32 bits of x as an int32.
func (x *Int) Int32() int32 { return int32(x.twos64()) }

// Int16 returns the low 16 bits of x as an int16.
func (x *Int) Int16() int16 { return int16(x.twos64()) }

// Int8 returns the low 8 bits of x as an int8.
func (x *Int) Int8() int8 { return int8(x.twos64()) }

// Uint64 returns the low 64 bits of x as a uint64.
func (x *Int) Uint64() uint64 { return x.twos64() }

// Uint32 returns the low 32 bits of x as a uint32.
func (x *Int) Uint32() uint32 { return uint32(x.twos64()) }

// Uint16 returns the low 16 bits of x as a uint16.
func (x *Int) Uint16() uint16 { return uint16(x.twos64()) }

// Uint8 returns the low 8 bits of x as a uint8.
func (x *Int) Uint8() uint8 { return uint8(x.twos64()) }

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if len(x.mag) > 2 {
		return false
	}
	u := x.low64()
	if x.sign < 0 {
		return u <= 1<<63
	}
	return u <= 1<<63-1
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return x.sign >= 0 && len(x.mag) <= 2
}

// Narrow converts x to T, failing with ErrRange instead of truncating.
func Narrow[T Integer](x *Int) (T, error) {
	var (
		v   T
		err error
	)
	switch {
	case x.sign < 0 && x.IsInt64():
		v, err = safecast.Conv[T](x.Int64())
	case x.sign >= 0 && x.IsUint64():
		v, err = safecast.Conv[T](x.Uint64())
	default:
		return v, errors.Wrapf(ErrRange, "%s does not fit in %T", x, v)
	}
	if err != nil {
		var zero T
		return zero, errors.Wrapf(ErrRange, "%s does not fit in %T", x, zero)
	}
	return v, nil
}
