package der_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptokit/internal/bigint"
	"cryptokit/internal/der"
)

func fromBig(n *big.Int) *bigint.Int {
	return bigint.FromMagnitude(n.Sign(), n.Bytes())
}

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	return key
}

func TestRSAPublicKey_MatchesX509(t *testing.T) {
	key := generateKey(t)

	pub := &der.RSAPublicKey{
		Modulus:        fromBig(key.N),
		PublicExponent: bigint.From(key.E),
	}
	got, err := der.MarshalRSAPublicKey(pub)
	require.NoError(t, err)
	assert.Equal(t, x509.MarshalPKCS1PublicKey(&key.PublicKey), got)

	parsed, err := der.ParseRSAPublicKey(got)
	require.NoError(t, err)
	assert.True(t, parsed.Modulus.Equal(pub.Modulus))
	assert.Equal(t, int64(65537), parsed.PublicExponent.Int64())
}

func TestRSAPrivateKey_MatchesX509(t *testing.T) {
	key := generateKey(t)

	priv := &der.RSAPrivateKey{
		Modulus:         fromBig(key.N),
		PublicExponent:  bigint.From(key.E),
		PrivateExponent: fromBig(key.D),
		Prime1:          fromBig(key.Primes[0]),
		Prime2:          fromBig(key.Primes[1]),
		Exponent1:       fromBig(key.Precomputed.Dp),
		Exponent2:       fromBig(key.Precomputed.Dq),
		Coefficient:     fromBig(key.Precomputed.Qinv),
	}
	got, err := der.MarshalRSAPrivateKey(priv)
	require.NoError(t, err)
	assert.Equal(t, x509.MarshalPKCS1PrivateKey(key), got)

	parsed, err := der.ParseRSAPrivateKey(got)
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Version)
	assert.True(t, parsed.PrivateExponent.Equal(priv.PrivateExponent))
	assert.True(t, parsed.Coefficient.Equal(priv.Coefficient))
	assert.True(t, parsed.Public().Modulus.Equal(priv.Modulus))
}

func TestRSAPublicKey_Incomplete(t *testing.T) {
	_, err := der.MarshalRSAPublicKey(&der.RSAPublicKey{Modulus: bigint.FromInt64(3)})
	assert.Error(t, err)

	_, err = der.MarshalRSAPrivateKey(&der.RSAPrivateKey{Modulus: bigint.FromInt64(3)})
	assert.Error(t, err)

	_, err = der.MarshalRSAPrivateKey(&der.RSAPrivateKey{Version: 1})
	assert.Error(t, err)
}

func TestParseRSAPublicKey_Errors(t *testing.T) {
	_, err := der.ParseRSAPublicKey([]byte{0x02, 0x01, 0x01})
	assert.True(t, errors.Is(err, der.ErrMalformed))

	// SEQUENCE { INTEGER 3 } is missing the exponent
	_, err = der.ParseRSAPublicKey([]byte{0x30, 0x03, 0x02, 0x01, 0x03})
	assert.True(t, errors.Is(err, der.ErrMalformed))

	// SEQUENCE { INTEGER 3, INTEGER 3, INTEGER 3 }
	_, err = der.ParseRSAPublicKey([]byte{0x30, 0x09, 0x02, 0x01, 0x03, 0x02, 0x01, 0x03, 0x02, 0x01, 0x03})
	assert.True(t, errors.Is(err, der.ErrTrailingData))

	// modulus with a redundant leading zero
	_, err = der.ParseRSAPublicKey([]byte{0x30, 0x07, 0x02, 0x02, 0x00, 0x03, 0x02, 0x01, 0x03})
	assert.True(t, errors.Is(err, der.ErrNonMinimal))
}

func TestParseRSAPrivateKey_RejectsMultiPrime(t *testing.T) {
	// SEQUENCE { INTEGER 1 }
	_, err := der.ParseRSAPrivateKey([]byte{0x30, 0x03, 0x02, 0x01, 0x01})
	require.Error(t, err)
	assert.True(t, errors.Is(err, der.ErrMalformed))
	assert.Contains(t, err.Error(), "version 1")
}
