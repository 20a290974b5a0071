package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"

	"github.com/pkg/errors"

	"cryptokit/internal/bigint"
	"cryptokit/internal/der"
)

// GenerateRSA returns a new two-prime RSA key of the given size.
func GenerateRSA(bits int) (*der.RSAPrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.Wrapf(err, "generating %d-bit RSA key", bits)
	}
	return PrivateKeyFromRSA(key)
}

// PublicKeyFromRSA converts pub to its PKCS#1 form.
func PublicKeyFromRSA(pub *rsa.PublicKey) *der.RSAPublicKey {
	return &der.RSAPublicKey{
		Modulus:        fromBig(pub.N),
		PublicExponent: bigint.From(pub.E),
	}
}

// PublicKeyToRSA converts k to an rsa.PublicKey.
func PublicKeyToRSA(k *der.RSAPublicKey) (*rsa.PublicKey, error) {
	if k.Modulus.Sign() <= 0 {
		return nil, errors.New("RSA modulus must be positive")
	}
	if k.PublicExponent.Sign() <= 0 {
		return nil, errors.New("RSA public exponent must be positive")
	}
	e, err := bigint.Narrow[int](k.PublicExponent)
	if err != nil {
		return nil, errors.WithMessage(err, "RSA public exponent")
	}
	return &rsa.PublicKey{N: toBig(k.Modulus), E: e}, nil
}

// PrivateKeyFromRSA converts a two-prime key to its PKCS#1 form.
func PrivateKeyFromRSA(key *rsa.PrivateKey) (*der.RSAPrivateKey, error) {
	if len(key.Primes) != 2 {
		return nil, errors.Errorf("expected 2 primes, got %d", len(key.Primes))
	}
	if key.Precomputed.Dp == nil {
		key.Precompute()
	}
	return &der.RSAPrivateKey{
		Modulus:         fromBig(key.N),
		PublicExponent:  bigint.From(key.E),
		PrivateExponent: fromBig(key.D),
		Prime1:          fromBig(key.Primes[0]),
		Prime2:          fromBig(key.Primes[1]),
		Exponent1:       fromBig(key.Precomputed.Dp),
		Exponent2:       fromBig(key.Precomputed.Dq),
		Coefficient:     fromBig(key.Precomputed.Qinv),
	}, nil
}

// PrivateKeyToRSA converts k to a validated rsa.PrivateKey.
func PrivateKeyToRSA(k *der.RSAPrivateKey) (*rsa.PrivateKey, error) {
	pub, err := PublicKeyToRSA(k.Public())
	if err != nil {
		return nil, err
	}
	key := &rsa.PrivateKey{
		PublicKey: *pub,
		D:         toBig(k.PrivateExponent),
		Primes:    []*big.Int{toBig(k.Prime1), toBig(k.Prime2)},
	}
	key.Precomputed.Dp = toBig(k.Exponent1)
	key.Precomputed.Dq = toBig(k.Exponent2)
	key.Precomputed.Qinv = toBig(k.Coefficient)
	key.Precompute()
	if err := key.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid RSA private key")
	}
	return key, nil
}

func fromBig(n *big.Int) *bigint.Int {
	return bigint.FromMagnitude(n.Sign(), n.Bytes())
}

func toBig(x *bigint.Int) *big.Int {
	n := new(big.Int).SetBytes(x.MagnitudeBytes())
	if x.Sign() < 0 {
		n.Neg(n)
	}
	return n
}
