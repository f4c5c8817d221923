package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// FileCargoManifest is the Cargo package manifest file name.
const FileCargoManifest = "Cargo.toml"

// Dependency names consulted for version evidence. anchor-spl stands in
// for anchor-lang only when the latter is absent.
const (
	depSolanaProgram = "solana-program"
	depAnchorLang    = "anchor-lang"
	depAnchorSpl     = "anchor-spl"
)

// cargoManifest models the two dependency tables of Cargo.toml. Entries
// are either a bare requirement string or a detailed table with a version
// key, so they decode as any and get unpacked by specVersion.
type cargoManifest struct {
	Dependencies map[string]any  `toml:"dependencies"`
	Workspace    *cargoWorkspace `toml:"workspace"`
}

type cargoWorkspace struct {
	Dependencies map[string]any `toml:"dependencies"`
}

// ReadCargoManifest extracts version requirements for the Solana and
// Anchor crates from Cargo.toml. [dependencies] outranks
// [workspace.dependencies]; requirement strings are taken verbatim,
// wildcards and constraint operators included.
func ReadCargoManifest(data []byte) (VersionFacts, Strategy, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err == nil {
		facts := factsFromDeps(m.Dependencies)
		if m.Workspace != nil {
			facts = facts.Fill(factsFromDeps(m.Workspace.Dependencies))
		}
		return facts, StrategyStrict, nil
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return VersionFacts{}, StrategyGeneric, fmt.Errorf("failed to parse Cargo.toml: %w", err)
	}

	facts := factsFromDeps(depsTable(doc, "dependencies"))
	if ws, ok := doc["workspace"].(map[string]any); ok {
		facts = facts.Fill(factsFromDeps(depsTable(ws, "dependencies")))
	}
	return facts, StrategyGeneric, nil
}

func depsTable(doc map[string]any, key string) map[string]any {
	t, _ := doc[key].(map[string]any)
	return t
}

// factsFromDeps reads the consulted dependency names out of one
// dependency table.
func factsFromDeps(deps map[string]any) VersionFacts {
	var facts VersionFacts
	if v, ok := specVersion(deps[depSolanaProgram]); ok {
		facts.Solana = v
	}
	if v, ok := specVersion(deps[depAnchorLang]); ok {
		facts.Anchor = v
	} else if v, ok := specVersion(deps[depAnchorSpl]); ok {
		facts.Anchor = v
	}
	return facts
}

// specVersion unpacks a dependency requirement: either a bare string or a
// detailed table carrying a version key. Git and path dependencies without
// a version contribute nothing.
func specVersion(spec any) (string, bool) {
	switch s := spec.(type) {
	case string:
		if s != "" {
			return s, true
		}
	case map[string]any:
		if v, ok := s["version"].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
