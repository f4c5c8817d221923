package manifest

import (
	"errors"

	"github.com/tidwall/gjson"
)

// FilePackageManifest is the JS package manifest file name.
const FilePackageManifest = "package.json"

// JS dependency names consulted when an Anchor workspace keeps its
// versions only on the TypeScript side.
const (
	depSolanaWeb3  = "@solana/web3.js"
	depCoralAnchor = "@coral-xyz/anchor"
)

// ReadPackageManifest extracts version requirements from package.json.
// Only the two well-known dependencies are consulted; the dependencies
// object is walked entry by entry because both keys contain characters a
// gjson path would otherwise interpret.
func ReadPackageManifest(data []byte) (VersionFacts, Strategy, error) {
	if !gjson.ValidBytes(data) {
		return VersionFacts{}, StrategyGeneric, errors.New("failed to parse package.json: invalid JSON")
	}

	var facts VersionFacts
	deps := gjson.GetBytes(data, "dependencies")
	if !deps.IsObject() {
		return facts, StrategyGeneric, nil
	}
	deps.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String || value.Str == "" {
			return true
		}
		switch key.Str {
		case depSolanaWeb3:
			if facts.Solana == "" {
				facts.Solana = value.Str
			}
		case depCoralAnchor:
			if facts.Anchor == "" {
				facts.Anchor = value.Str
			}
		}
		return true
	})
	return facts, StrategyGeneric, nil
}
