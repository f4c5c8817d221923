// Package detect provides the "anchorver detect" command which scans a
// project tree for Rust, Solana and Anchor version evidence, completes
// what is missing from the compatibility table, and prints the result
// with the commands that set the environment up.
package detect
