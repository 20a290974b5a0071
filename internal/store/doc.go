// Package store writes CLI outputs to disk.
//
// Files are replaced atomically: data goes to a temporary file in the target
// directory, which is then renamed over the destination. Reads treat a
// missing file as empty rather than as an error, so optional inputs such as
// the config file need no existence check.
package store
