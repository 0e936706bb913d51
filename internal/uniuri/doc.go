// Package uniuri generates cryptographically secure random strings suitable for use as unique identifiers.
// It provides functions to create random strings with configurable length and character sets.
//
// The implementation is a vendored utility carried unchanged; only the
// import path is local to this module.
package uniuri
