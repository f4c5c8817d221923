// Package manifest parses the project files an Anchor workspace declares
// its toolchain versions in: rust-toolchain pins, Anchor.toml, Cargo.toml
// and package.json. Readers are pure functions from file bytes to partial
// VersionFacts; deciding which files exist and bounding their size is the
// caller's job.
package manifest
