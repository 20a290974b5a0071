package memzero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cryptokit/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	memzero.Zero(b[1:3])
	assert.Equal(t, []byte{1, 0, 0, 4}, b)

	assert.NotPanics(t, func() { memzero.Zero(nil) })
}
