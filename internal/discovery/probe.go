package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"

	"anchorver/internal/core"
	"anchorver/internal/manifest"
)

// candidate is one manifest file a directory probe looks for.
type candidate struct {
	name    string
	maxSize int64
	read    func(data []byte, path string) (manifest.VersionFacts, manifest.Strategy, error)
}

// candidates lists the probed files in priority order. Toolchain pins are
// read before Anchor.toml and Cargo.toml so an explicit Rust pin wins over
// a manifest-declared requirement, and package.json comes last because it
// only ever narrows the Anchor answer.
var candidates = []candidate{
	{name: manifest.FileRustToolchain, maxSize: core.MaxPinFileSize, read: manifest.ReadToolchainPin},
	{name: manifest.FileRustToolchainTOML, maxSize: core.MaxPinFileSize, read: manifest.ReadToolchainPin},
	{name: manifest.FileAnchorConfig, maxSize: core.MaxManifestSize, read: adaptReader(manifest.ReadAnchorConfig)},
	{name: manifest.FileCargoManifest, maxSize: core.MaxManifestSize, read: adaptReader(manifest.ReadCargoManifest)},
	{name: manifest.FilePackageManifest, maxSize: core.MaxManifestSize, read: adaptReader(manifest.ReadPackageManifest)},
}

// adaptReader lifts a path-less manifest reader into the candidate shape.
func adaptReader(read func(data []byte) (manifest.VersionFacts, manifest.Strategy, error)) func([]byte, string) (manifest.VersionFacts, manifest.Strategy, error) {
	return func(data []byte, _ string) (manifest.VersionFacts, manifest.Strategy, error) {
		return read(data)
	}
}

// probeDirectory reads every candidate manifest present in dir and folds
// their facts together, first writer wins. Malformed files contribute
// nothing; I/O faults and oversized files abort the probe.
func (s *Service) probeDirectory(ctx context.Context, dir string) (manifest.VersionFacts, error) {
	var facts manifest.VersionFacts

	for _, c := range candidates {
		path := filepath.Join(dir, c.name)

		info, err := s.fs.Stat(ctx, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return facts, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.Size() > c.maxSize {
			return facts, &TooLargeError{Path: path, Size: info.Size(), Limit: c.maxSize}
		}

		data, err := s.fs.ReadFile(ctx, path)
		if err != nil {
			return facts, fmt.Errorf("failed to read %q: %w", path, err)
		}

		read, strategy, err := c.read(data, path)
		if err != nil {
			log.Debug("ignoring malformed manifest", "path", path, "error", err)
			continue
		}
		log.Debug("probed manifest", "path", path, "strategy", strategy)
		facts = facts.Fill(read)
	}
	return facts, nil
}
