// Package crypto bridges RSA key material between crypto/rsa and the PKCS#1
// structures of package der.
//
// Contents
//
//   - Conversion of public and private RSA keys (PublicKeyFromRSA,
//     PublicKeyToRSA, PrivateKeyFromRSA, PrivateKeyToRSA). Big integers cross
//     the boundary as unsigned magnitude bytes, never as math/big internals.
//   - RSA key generation (GenerateRSA)
//   - PEM armor for PKCS#1 keys (EncodePEM, DecodePEM)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Imported keys are validated with rsa.PrivateKey.Validate before use.
// Callers should not log private key fields.
package crypto
