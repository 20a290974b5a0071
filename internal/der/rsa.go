package der

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"cryptokit/internal/bigint"
	"cryptokit/internal/util/memzero"
)

var (
	_ cryptobyte.MarshalingValue = (*RSAPublicKey)(nil)
	_ cryptobyte.MarshalingValue = (*RSAPrivateKey)(nil)
)

// RSAPublicKey is the PKCS#1 RSAPublicKey structure.
type RSAPublicKey struct {
	Modulus        *bigint.Int
	PublicExponent *bigint.Int
}

// Marshal implements cryptobyte.MarshalingValue.
func (k *RSAPublicKey) Marshal(b *cryptobyte.Builder) error {
	if k.Modulus == nil || k.PublicExponent == nil {
		return errors.New("der: incomplete RSA public key")
	}
	b.AddASN1(asn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		AddInteger(seq, k.Modulus)
		AddInteger(seq, k.PublicExponent)
	})
	return nil
}

// MarshalRSAPublicKey returns the DER encoding of k.
func MarshalRSAPublicKey(k *RSAPublicKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddValue(k)
	return b.Bytes()
}

// ParseRSAPublicKey decodes a DER PKCS#1 RSAPublicKey.
func ParseRSAPublicKey(der []byte) (*RSAPublicKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return nil, errors.Wrap(ErrMalformed, "reading RSAPublicKey SEQUENCE")
	}
	if !input.Empty() {
		return nil, errors.WithStack(ErrTrailingData)
	}

	k := &RSAPublicKey{}
	var err error
	if k.Modulus, err = ReadInteger(&seq); err != nil {
		return nil, errors.WithMessage(err, "modulus")
	}
	if k.PublicExponent, err = ReadInteger(&seq); err != nil {
		return nil, errors.WithMessage(err, "publicExponent")
	}
	if !seq.Empty() {
		return nil, errors.Wrap(ErrTrailingData, "RSAPublicKey")
	}
	return k, nil
}

// RSAPrivateKey is the PKCS#1 RSAPrivateKey structure for two-prime keys.
type RSAPrivateKey struct {
	Version         int
	Modulus         *bigint.Int
	PublicExponent  *bigint.Int
	PrivateExponent *bigint.Int
	Prime1          *bigint.Int
	Prime2          *bigint.Int
	Exponent1       *bigint.Int
	Exponent2       *bigint.Int
	Coefficient     *bigint.Int
}

func (k *RSAPrivateKey) fields() []*bigint.Int {
	return []*bigint.Int{
		k.Modulus,
		k.PublicExponent,
		k.PrivateExponent,
		k.Prime1,
		k.Prime2,
		k.Exponent1,
		k.Exponent2,
		k.Coefficient,
	}
}

// Public returns the public half of k.
func (k *RSAPrivateKey) Public() *RSAPublicKey {
	return &RSAPublicKey{Modulus: k.Modulus, PublicExponent: k.PublicExponent}
}

// Marshal implements cryptobyte.MarshalingValue. Intermediate encodings of
// the private integers are wiped once copied into b.
func (k *RSAPrivateKey) Marshal(b *cryptobyte.Builder) error {
	if k.Version != 0 {
		return errors.Errorf("der: unsupported RSAPrivateKey version %d", k.Version)
	}
	for _, f := range k.fields() {
		if f == nil {
			return errors.New("der: incomplete RSA private key")
		}
	}
	b.AddASN1(asn1.SEQUENCE, func(seq *cryptobyte.Builder) {
		AddInteger(seq, bigint.From(k.Version))
		for _, f := range k.fields() {
			enc := f.Encode()
			seq.AddASN1(asn1.INTEGER, func(c *cryptobyte.Builder) {
				c.AddBytes(enc)
			})
			memzero.Zero(enc)
		}
	})
	return nil
}

// MarshalRSAPrivateKey returns the DER encoding of k.
func MarshalRSAPrivateKey(k *RSAPrivateKey) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddValue(k)
	return b.Bytes()
}

// ParseRSAPrivateKey decodes a DER PKCS#1 RSAPrivateKey. Multi-prime keys
// (version 1) are rejected.
func ParseRSAPrivateKey(der []byte) (*RSAPrivateKey, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) {
		return nil, errors.Wrap(ErrMalformed, "reading RSAPrivateKey SEQUENCE")
	}
	if !input.Empty() {
		return nil, errors.WithStack(ErrTrailingData)
	}

	version, err := ReadInteger(&seq)
	if err != nil {
		return nil, errors.WithMessage(err, "version")
	}
	if !version.IsZero() {
		return nil, errors.Wrapf(ErrMalformed, "unsupported RSAPrivateKey version %s", version)
	}

	k := &RSAPrivateKey{}
	targets := []**bigint.Int{
		&k.Modulus,
		&k.PublicExponent,
		&k.PrivateExponent,
		&k.Prime1,
		&k.Prime2,
		&k.Exponent1,
		&k.Exponent2,
		&k.Coefficient,
	}
	for i, dst := range targets {
		if *dst, err = ReadInteger(&seq); err != nil {
			return nil, errors.WithMessagef(err, "RSAPrivateKey field %d", i+1)
		}
	}
	if !seq.Empty() {
		return nil, errors.Wrap(ErrTrailingData, "RSAPrivateKey")
	}
	return k, nil
}
