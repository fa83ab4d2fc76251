// Package abi exposes the mechanism package behind the same flat,
// error-free call signatures as the original FFI boundary
// (ffi-rust/src/direct_api.rs): one function per mechanism, each taking
// only primitive float64/int64/bool arguments and returning a bare noised
// value. There is no error return in this boundary, matching the C ABI it
// mirrors; a caller that passes an invalid epsilon or inverted bounds gets
// a panic instead of an (value, error) pair, the same tradeoff the Rust
// side makes with .unwrap(). Embedders that want the Go-idiomatic
// (value, error) contract should call the engine or validator packages
// directly instead.
package abi
