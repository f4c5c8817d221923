package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// FileAnchorConfig is the Anchor workspace configuration file name.
const FileAnchorConfig = "Anchor.toml"

// anchorConfig models the [toolchain] table of Anchor.toml. Everything
// else in the file is irrelevant here.
type anchorConfig struct {
	Toolchain *anchorToolchain `toml:"toolchain"`
}

type anchorToolchain struct {
	AnchorVersion string `toml:"anchor_version"`
	SolanaVersion string `toml:"solana_version"`
}

// ReadAnchorConfig extracts pinned versions from Anchor.toml. Real files
// carry provider, program and script sections in shapes the typed model
// may trip on; when the typed decode faults, a generic document walk
// recovers whichever toolchain fields are plain strings.
func ReadAnchorConfig(data []byte) (VersionFacts, Strategy, error) {
	var cfg anchorConfig
	if err := toml.Unmarshal(data, &cfg); err == nil {
		var facts VersionFacts
		if cfg.Toolchain != nil {
			facts.Anchor = cfg.Toolchain.AnchorVersion
			facts.Solana = cfg.Toolchain.SolanaVersion
		}
		return facts, StrategyStrict, nil
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return VersionFacts{}, StrategyGeneric, fmt.Errorf("failed to parse Anchor.toml: %w", err)
	}

	var facts VersionFacts
	if tc, ok := doc["toolchain"].(map[string]any); ok {
		if v, ok := tc["anchor_version"].(string); ok {
			facts.Anchor = v
		}
		if v, ok := tc["solana_version"].(string); ok {
			facts.Solana = v
		}
	}
	return facts, StrategyGeneric, nil
}
