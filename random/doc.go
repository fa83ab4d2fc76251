// Package random provides the cryptographic byte stream and the
// higher-level uniform/geometric samplers every noise primitive in
// package noise is built from.
//
// Source is an explicit interface rather than an ambient global so tests
// can substitute a deterministic stub; Default returns the single
// process-wide cryptographic instance every mechanism shares unless a
// test overrides it.
package random
