// Package matrix provides the "anchorver matrix" command which prints the
// built-in Solana, Anchor and Rust compatibility table.
package matrix
