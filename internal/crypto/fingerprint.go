package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"cryptokit/internal/der"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the PKCS#1 DER encoding with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(pub *der.RSAPublicKey) (string, error) {
	raw, err := der.MarshalRSAPublicKey(pub)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:10]), nil
}
