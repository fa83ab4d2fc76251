// Package dataset declares the contract a loaded data source must satisfy
// to feed a graph: column access by name, row counts, and per-column
// type. Materialization (CSV parsing, protobuf wire decoding, database
// loading) is out of scope; these are interface-only contracts for
// callers to implement against their own storage.
package dataset
