// Package memzero wipes scratch buffers that held key material.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best-effort: copies made elsewhere by
// the runtime are not reached.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
