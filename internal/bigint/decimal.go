package bigint

import (
	"strconv"
	"strings"
)

const (
	// digits per base-10^9 chunk
	chunkDigits = 9
	chunkBase   = 1_000_000_000
)

// String returns the decimal representation of x, with a leading '-' for
// negative values.
func (x *Int) String() string {
	if x.sign == 0 {
		return "0"
	}

	words := make([]uint32, len(x.mag))
	copy(words, x.mag)

	// chunks are collected least significant first
	var chunks []uint32
	for {
		var rem uint64
		for i, w := range words {
			v := rem<<32 | uint64(w)
			words[i] = uint32(v / chunkBase)
			rem = v % chunkBase
		}
		words = trimWords(words)
		chunks = append(chunks, uint32(rem))
		if len(words) == 0 {
			break
		}
	}

	var sb strings.Builder
	sb.Grow(len(chunks)*chunkDigits + 1)
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	last := len(chunks) - 1
	sb.WriteString(strconv.FormatUint(uint64(chunks[last]), 10))
	for i := last - 1; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		for pad := len(s); pad < chunkDigits; pad++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Parse converts a decimal string with an optional leading '+' or '-' to an
// Int. Leading zeros are accepted; "-0" and "+0" yield Zero.
func Parse(s string) (*Int, error) {
	if s == "" {
		return nil, syntaxError(s, "empty input")
	}

	sign := 1
	digits := s
	switch s[0] {
	case '-':
		sign = -1
		digits = s[1:]
	case '+':
		digits = s[1:]
	}
	if digits == "" {
		return nil, syntaxError(s, "sign without digits")
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '+' || c == '-' {
			return nil, syntaxError(s, "embedded sign")
		}
		if c < '0' || c > '9' {
			return nil, syntaxError(s, "invalid digit "+strconv.QuoteRune(rune(c)))
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Zero, nil
	}

	first := len(digits) % chunkDigits
	if first == 0 {
		first = chunkDigits
	}

	words := make([]uint32, wordsForDigits(len(digits)))
	words[len(words)-1] = parseChunk(digits[:first])
	for pos := first; pos < len(digits); pos += chunkDigits {
		mulAddChunk(words, parseChunk(digits[pos:pos+chunkDigits]))
	}
	return build(sign, words), nil
}

// ParseOrNil is like Parse but returns nil instead of an error.
func ParseOrNil(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		return nil
	}
	return x
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants and tests.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// mulAddChunk sets words = words*10^9 + chunk in place. words is sized so
// the product always fits; a carry out of the top word is a logic error.
func mulAddChunk(words []uint32, chunk uint32) {
	carry := uint64(chunk)
	for i := len(words) - 1; i >= 0; i-- {
		v := uint64(words[i])*chunkBase + carry
		words[i] = uint32(v & 0xFFFFFFFF)
		carry = v >> 32
	}
	if carry != 0 {
		panic("bigint: carry left after multiply-accumulate")
	}
}

// parseChunk converts at most nine validated ASCII digits.
func parseChunk(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v = v*10 + uint32(s[i]-'0')
	}
	return v
}

// wordsForDigits bounds the number of 32-bit words needed for a decimal
// number with n digits. 3402/1024 is slightly above log2(10).
func wordsForDigits(n int) int {
	return (n*3402>>10+1)/32 + 1
}
