package der

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"cryptokit/internal/bigint"
)

var (
	// ErrMalformed is returned for input that is not the expected DER structure.
	ErrMalformed = errors.New("der: malformed structure")
	// ErrNonMinimal is returned for INTEGER content with a redundant leading byte.
	ErrNonMinimal = errors.New("der: INTEGER not minimally encoded")
	// ErrTrailingData is returned when bytes follow a complete structure.
	ErrTrailingData = errors.New("der: trailing data")
)

// AddInteger appends x to b as a DER INTEGER.
func AddInteger(b *cryptobyte.Builder, x *bigint.Int) {
	b.AddASN1(asn1.INTEGER, func(c *cryptobyte.Builder) {
		c.AddBytes(x.Encode())
	})
}

// MarshalInteger returns the DER INTEGER encoding of x.
func MarshalInteger(x *bigint.Int) ([]byte, error) {
	var b cryptobyte.Builder
	AddInteger(&b, x)
	return b.Bytes()
}

// ReadInteger reads one DER INTEGER from s and advances s past it.
func ReadInteger(s *cryptobyte.String) (*bigint.Int, error) {
	var content cryptobyte.String
	if !s.ReadASN1(&content, asn1.INTEGER) {
		return nil, errors.Wrap(ErrMalformed, "reading INTEGER")
	}
	if err := checkMinimal(content); err != nil {
		return nil, err
	}
	x, err := bigint.Decode(content)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return x, nil
}

// ParseInteger decodes a complete DER INTEGER.
func ParseInteger(der []byte) (*bigint.Int, error) {
	s := cryptobyte.String(der)
	x, err := ReadInteger(&s)
	if err != nil {
		return nil, err
	}
	if !s.Empty() {
		return nil, errors.WithStack(ErrTrailingData)
	}
	return x, nil
}

func checkMinimal(content []byte) error {
	if len(content) < 2 {
		return nil
	}
	if content[0] == 0x00 && content[1]&0x80 == 0 ||
		content[0] == 0xFF && content[1]&0x80 != 0 {
		return errors.Wrapf(ErrNonMinimal, "content %x", content)
	}
	return nil
}
