package manifest

// Wildcard is the dependency requirement that matches any version. It can
// seed a scan from the root manifest but never merges in from a
// subdirectory.
const Wildcard = "*"

// VersionFacts accumulates the tool versions a project declares across its
// manifest files. The empty string means a field has not been determined;
// a set field always holds a non-empty string.
type VersionFacts struct {
	Rust   string
	Solana string
	Anchor string

	// Source is the file that provided Rust, kept for display provenance.
	Source string
}

// Complete reports whether all three versions are known.
func (f VersionFacts) Complete() bool {
	return f.Rust != "" && f.Solana != "" && f.Anchor != ""
}

// NeedsMoreInfo reports whether scanning should keep looking.
func (f VersionFacts) NeedsMoreInfo() bool {
	return !f.Complete()
}

// Merge folds facts found deeper in the tree into f and returns the
// result. Fields already set on f win. A wildcard Solana requirement never
// fills an unset field.
func (f VersionFacts) Merge(other VersionFacts) VersionFacts {
	if f.Rust == "" && other.Rust != "" {
		f.Rust = other.Rust
		f.Source = other.Source
	}
	if f.Solana == "" && other.Solana != "" && other.Solana != Wildcard {
		f.Solana = other.Solana
	}
	if f.Anchor == "" && other.Anchor != "" {
		f.Anchor = other.Anchor
	}
	return f
}

// Fill folds the output of a later reader for the same directory into f.
// First writer wins, and unlike Merge the wildcard exception does not
// apply; within one directory a wildcard is still that directory's answer.
func (f VersionFacts) Fill(other VersionFacts) VersionFacts {
	if f.Rust == "" && other.Rust != "" {
		f.Rust = other.Rust
		f.Source = other.Source
	}
	if f.Solana == "" && other.Solana != "" {
		f.Solana = other.Solana
	}
	if f.Anchor == "" && other.Anchor != "" {
		f.Anchor = other.Anchor
	}
	return f
}

// Strategy identifies which decode tier produced a reader's result.
type Strategy string

const (
	// StrategyStrict means the typed document model decoded cleanly.
	StrategyStrict Strategy = "strict"
	// StrategyGeneric means a generic document walk recovered the fields.
	StrategyGeneric Strategy = "generic"
	// StrategyRaw means the file content was taken as a bare value.
	StrategyRaw Strategy = "raw"
)
