package crypto

import (
	"encoding/pem"

	"github.com/pkg/errors"
)

// PEM block types for PKCS#1 keys.
const (
	PEMPublicKey  = "RSA PUBLIC KEY"
	PEMPrivateKey = "RSA PRIVATE KEY"
)

// ErrNoPEM is returned when the input holds no PEM block.
var ErrNoPEM = errors.New("no PEM block found")

// EncodePEM armors der in a PEM block of the given type.
func EncodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// DecodePEM returns the type and contents of the first PEM block in data.
func DecodePEM(data []byte) (string, []byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", nil, errors.WithStack(ErrNoPEM)
	}
	switch block.Type {
	case PEMPublicKey, PEMPrivateKey:
		return block.Type, block.Bytes, nil
	default:
		return "", nil, errors.Errorf("unsupported PEM block type %q", block.Type)
	}
}
