// Package compat completes partial version facts using a compiled-in
// table of known-good Solana, Anchor and Rust release alignments. The
// engine is pure: it consumes facts, returns facts plus notices, and
// performs no I/O.
package compat
