// Package bigint implements the arbitrary-precision signed integer used for
// RSA key parameters and DER INTEGER content.
//
// # Representation
//
// An Int is a sign in {-1, 0, +1} plus a magnitude of 32-bit words, most
// significant word first. The magnitude is always canonical: it is never
// empty, it has no leading zero word, and zero is exactly the single word 0
// with sign 0. Values are immutable once built and may be shared between
// goroutines without locking.
//
// # Codecs
//
//   - Decimal text (String, Parse, ParseOrNil) converts in chunks of nine
//     digits, i.e. base 10^9.
//   - Two's-complement bytes (Encode, Decode) produce and accept the minimal
//     big-endian encoding used as DER INTEGER content.
//   - MagnitudeBytes returns the unsigned big-endian absolute value.
//
// # Errors
//
// Malformed input yields a *ParseError wrapping ErrSyntax, ErrEmptyEncoding
// for an empty byte slice, or ErrRange from Narrow. A broken representation
// invariant is a programming error and panics.
package bigint
