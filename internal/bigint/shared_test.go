package bigint_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"cryptokit/internal/bigint"
)

type holder struct {
	N *bigint.Int `json:"n" toml:"n" msgpack:"n"`
}

func TestUnmarshalText_RefusesZero(t *testing.T) {
	h := holder{N: bigint.FromInt64(0)}
	err := json.Unmarshal([]byte(`{"n":"12345"}`), &h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bigint.ErrDecodeIntoZero))

	assert.Equal(t, 0, bigint.Zero.Sign())
	assert.Equal(t, "0", bigint.Zero.String())
	assert.Equal(t, "0", bigint.FromInt64(0).String())

	h = holder{N: bigint.MustParse("-0")}
	_, err = toml.Decode("n = \"7\"\n", &h)
	require.Error(t, err)
	assert.True(t, bigint.Zero.IsZero())

	assert.True(t, errors.Is(bigint.Zero.UnmarshalText([]byte("1")), bigint.ErrDecodeIntoZero))
	assert.True(t, bigint.Zero.IsZero())
}

func TestDecodeMsgpack_RefusesZero(t *testing.T) {
	b, err := msgpack.Marshal(&holder{N: bigint.FromInt64(99)})
	require.NoError(t, err)

	h := holder{N: bigint.Zero}
	err = msgpack.Unmarshal(b, &h)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bigint.ErrDecodeIntoZero))
	assert.Equal(t, []byte{0x00}, bigint.Zero.Encode())

	// a fresh target still decodes
	var fresh holder
	require.NoError(t, msgpack.Unmarshal(b, &fresh))
	assert.Equal(t, int64(99), fresh.N.Int64())
}

// TestSharedAcrossGoroutines reads shared values from many goroutines; run
// with -race to check that no operation writes to them.
func TestSharedAcrossGoroutines(t *testing.T) {
	values := []*bigint.Int{
		bigint.Zero,
		bigint.FromInt64(-1),
		bigint.FromInt64(255),
		bigint.MustParse("-123456789012345678901234567890"),
		bigint.MustParse("340282366920938463463374607431768211457"),
	}
	wantStr := make([]string, len(values))
	wantEnc := make([][]byte, len(values))
	for i, v := range values {
		wantStr[i] = v.String()
		wantEnc[i] = v.Encode()
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers*len(values))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for i, v := range values {
					if v.String() != wantStr[i] {
						errs <- "String changed for " + wantStr[i]
						return
					}
					if string(v.Encode()) != string(wantEnc[i]) {
						errs <- "Encode changed for " + wantStr[i]
						return
					}
					if v.Cmp(values[(i+1)%len(values)]) == 0 || v.Neg().Neg().Cmp(v) != 0 {
						errs <- "Cmp inconsistent for " + wantStr[i]
						return
					}
					_ = v.MagnitudeBytes()
					_ = v.Abs()
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}

	for i, v := range values {
		assert.Equal(t, wantStr[i], v.String())
	}
	assert.Same(t, bigint.Zero, bigint.FromInt64(0))
	assert.True(t, bigint.Zero.IsZero())
}
