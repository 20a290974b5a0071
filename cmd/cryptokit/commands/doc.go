// Package commands defines the cryptokit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - convert        Convert an integer between decimal, hex, base64, DER and msgpack
//   - rsa keygen     Generate an RSA key and write PKCS#1 PEM files
//   - rsa inspect    Print the parameters and fingerprint of a PKCS#1 PEM key
//   - version        Print the build version
//
// # Implementation
//
// The root command loads the config file from the home directory and builds
// the logger before any subcommand runs, so handlers share one app context.
// Flags given on the command line take precedence over config values.
package commands
