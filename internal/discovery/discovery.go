package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"anchorver/internal/config"
	"anchorver/internal/core"
	"anchorver/internal/manifest"
)

// skipDirs are dependency, build-output, version-control and editor-cache
// directories never worth probing. They are skipped at every level; the
// scan root itself is exempt.
var skipDirs = []string{
	"node_modules",
	"target",
	".git",
	"dist",
	"build",
	".idea",
	".vscode",
	"coverage",
}

// Service scans directory trees for toolchain version facts.
type Service struct {
	fs       core.FileSystem
	maxDepth int
	exclude  []string
}

// NewService creates a new detection Service.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	s := &Service{fs: fs, maxDepth: core.MaxScanDepth}
	if cfg != nil && cfg.Scan != nil {
		if cfg.Scan.MaxDepth > 0 {
			s.maxDepth = cfg.Scan.MaxDepth
		}
		s.exclude = cfg.Scan.Exclude
	}
	return s
}

// Detect probes root and, while facts are missing, its subtree. The root
// is probed directly rather than merged, so even a wildcard requirement
// found there reaches inference; deeper results fold in through Merge.
func (s *Service) Detect(ctx context.Context, root string) (manifest.VersionFacts, error) {
	facts, err := s.probeDirectory(ctx, root)
	if err != nil {
		return manifest.VersionFacts{}, err
	}
	if facts.NeedsMoreInfo() {
		return s.walk(ctx, root, 1, facts)
	}
	return facts, nil
}

// walk probes the subdirectories of dir, recursing while facts remain
// incomplete. Listing errors abort the scan; they are never treated as
// "no information".
func (s *Service) walk(ctx context.Context, dir string, depth int, facts manifest.VersionFacts) (manifest.VersionFacts, error) {
	if depth > s.maxDepth {
		log.Debug("max scan depth reached", "dir", dir, "depth", depth)
		return facts, nil
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return facts, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if s.shouldSkip(entry.Name()) {
			log.Debug("skipping directory", "dir", filepath.Join(dir, entry.Name()))
			continue
		}

		subdir := filepath.Join(dir, entry.Name())
		probed, err := s.probeDirectory(ctx, subdir)
		if err != nil {
			return facts, err
		}
		facts = facts.Merge(probed)

		if facts.NeedsMoreInfo() {
			if facts, err = s.walk(ctx, subdir, depth+1, facts); err != nil {
				return facts, err
			}
		}
		if facts.Complete() {
			log.Debug("all versions found, stopping scan", "dir", subdir)
			break
		}
	}
	return facts, nil
}

// shouldSkip reports whether a directory entry name is excluded from the
// scan, by the fixed skip list or by a configured pattern.
func (s *Service) shouldSkip(name string) bool {
	if slices.Contains(skipDirs, name) {
		return true
	}
	for _, pattern := range s.exclude {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
