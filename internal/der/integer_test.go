package der_test

import (
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"

	"cryptokit/internal/bigint"
	"cryptokit/internal/der"
)

func TestMarshalInteger_MatchesEncodingASN1(t *testing.T) {
	for _, s := range []string{
		"0",
		"1",
		"-1",
		"127",
		"128",
		"-128",
		"-129",
		"255",
		"-2147483648",
		"65537",
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
	} {
		ref, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		want, err := asn1.Marshal(ref)
		require.NoError(t, err)

		got, err := der.MarshalInteger(bigint.MustParse(s))
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)

		back, err := der.ParseInteger(got)
		require.NoError(t, err, s)
		assert.Equal(t, s, back.String())
	}
}

func TestParseInteger_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty input", nil, der.ErrMalformed},
		{"wrong tag", []byte{0x04, 0x01, 0x01}, der.ErrMalformed},
		{"empty content", []byte{0x02, 0x00}, der.ErrMalformed},
		{"truncated", []byte{0x02, 0x02, 0x01}, der.ErrMalformed},
		{"redundant zero", []byte{0x02, 0x02, 0x00, 0x7F}, der.ErrNonMinimal},
		{"redundant ff", []byte{0x02, 0x02, 0xFF, 0x80}, der.ErrNonMinimal},
		{"trailing", []byte{0x02, 0x01, 0x01, 0x00}, der.ErrTrailingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := der.ParseInteger(tt.in)
			assert.Nil(t, x)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestEmptyContentWrapsBigintError(t *testing.T) {
	_, err := der.ParseInteger([]byte{0x02, 0x00})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty two's-complement encoding")
}

func TestReadInteger_Sequence(t *testing.T) {
	var b cryptobyte.Builder
	b.AddASN1(0x30, func(seq *cryptobyte.Builder) {
		der.AddInteger(seq, bigint.FromInt64(-5))
		der.AddInteger(seq, bigint.Zero)
		der.AddInteger(seq, bigint.FromUint64(1<<63))
	})
	raw, err := b.Bytes()
	require.NoError(t, err)

	var values []int
	_, err = asn1.Unmarshal(raw, &values)
	require.Error(t, err, "2^63 must not fit an int")

	var refs []*big.Int
	_, err = asn1.Unmarshal(raw, &refs)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "-5", refs[0].String())
	assert.Equal(t, "0", refs[1].String())
	assert.Equal(t, "9223372036854775808", refs[2].String())

	s := cryptobyte.String(raw)
	var seq cryptobyte.String
	require.True(t, s.ReadASN1(&seq, 0x30))
	for _, want := range []string{"-5", "0", "9223372036854775808"} {
		x, err := der.ReadInteger(&seq)
		require.NoError(t, err)
		assert.Equal(t, want, x.String())
	}
	assert.True(t, seq.Empty())
}
