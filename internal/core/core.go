package core

import "os"

// File size caps applied before any manifest is parsed. A file over its cap
// aborts the run instead of being fed to a decoder.
const (
	// MaxPinFileSize bounds rust-toolchain pin files (plain text or TOML).
	MaxPinFileSize int64 = 10_000

	// MaxManifestSize bounds Anchor.toml, Cargo.toml and package.json.
	MaxManifestSize int64 = 100_000
)

// MaxScanDepth bounds directory recursion during a scan. The walker stops
// descending past this depth even when version facts are still incomplete.
const MaxScanDepth = 32

// PermOwnerRW defines secure file permissions for files the tool writes
// itself (owner read/write only).
const PermOwnerRW os.FileMode = 0o600

// PermDir defines permissions for directories the tool creates.
const PermDir os.FileMode = 0o755

// Marshaler abstracts serialization so save paths can be tested with
// injected failures.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
