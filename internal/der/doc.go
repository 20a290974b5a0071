// Package der encodes and decodes the DER structures built from bigint.Int
// values.
//
// # Contents
//
//   - INTEGER: AddInteger, MarshalInteger, ReadInteger, ParseInteger. Content
//     octets are exactly bigint's minimal two's-complement encoding; parsing
//     rejects empty and non-minimal content.
//   - PKCS#1 RSAPublicKey and two-prime RSAPrivateKey (RFC 8017, appendix A.1).
//
// Encoding and parsing go through golang.org/x/crypto/cryptobyte. Both RSA
// structures implement cryptobyte.MarshalingValue so they can be nested into
// larger structures with Builder.AddValue.
package der
