package compat

import (
	"strings"

	"anchorver/internal/manifest"
)

// Notice is an informational message produced while completing a fact
// set. The caller decides how to surface notices; the engine never
// prints.
type Notice string

const (
	noticeSolanaDefaulted Notice = "Solana version could not be determined. Suggesting latest."
	noticeRustDefaulted   Notice = "Rust version could not be determined. Suggesting latest."
)

// NotSolanaProjectError reports a scan that found no Solana or Anchor
// version evidence at all. A lone rust-toolchain pin does not count.
type NotSolanaProjectError struct{}

func (e *NotSolanaProjectError) Error() string {
	return "this directory does not appear to be a Solana project: no Solana or Anchor version information found"
}

// Suggestion returns guidance naming the files the scan consults.
func (e *NotSolanaProjectError) Suggestion() string {
	return "Expected to find one of:\n" +
		"  - Anchor.toml with toolchain configuration\n" +
		"  - Cargo.toml with solana-program, anchor-lang, or anchor-spl dependencies\n" +
		"  - package.json with @solana/web3.js or @coral-xyz/anchor dependencies"
}

// CleanVersion strips a single leading constraint operator from a
// version requirement, trying ^, then ~, then =, each against what the
// previous step left, then one leading literal v. The cleaned form is
// used for matching only; facts keep the form they were read in.
func CleanVersion(version string) string {
	version = strings.TrimPrefix(version, "^")
	version = strings.TrimPrefix(version, "~")
	version = strings.TrimPrefix(version, "=")
	return strings.TrimPrefix(version, "v")
}

// Infer completes facts against the compiled-in table.
func Infer(facts manifest.VersionFacts) (manifest.VersionFacts, []Notice, error) {
	return InferWith(Rules, facts)
}

// InferWith completes facts against a caller-supplied table. Exactly one
// match branch runs: a set Solana version is prefix-matched against the
// table's Solana column; otherwise a set Anchor version is matched
// against the Anchor column. The first matching row fills only unset
// fields. Afterwards Solana and Rust fall back to the newest row when
// still undetermined; Anchor is never defaulted.
func InferWith(rules []Rule, facts manifest.VersionFacts) (manifest.VersionFacts, []Notice, error) {
	if facts.Solana == "" && facts.Anchor == "" {
		return facts, nil, &NotSolanaProjectError{}
	}

	if facts.Solana != "" {
		cleaned := CleanVersion(facts.Solana)
		for _, rule := range rules {
			if strings.HasPrefix(cleaned, rule.Solana) {
				if facts.Anchor == "" {
					facts.Anchor = rule.Anchor
				}
				if facts.Rust == "" {
					facts.Rust = rule.Rust
				}
				break
			}
		}
	} else if facts.Anchor != "" {
		cleaned := CleanVersion(facts.Anchor)
		for _, rule := range rules {
			if strings.HasPrefix(cleaned, rule.Anchor) {
				if facts.Solana == "" {
					facts.Solana = rule.Solana
				}
				if facts.Rust == "" {
					facts.Rust = rule.Rust
				}
				break
			}
		}
	}

	var notices []Notice
	if facts.Solana == "" || facts.Solana == manifest.Wildcard {
		notices = append(notices, noticeSolanaDefaulted)
		facts.Solana = Latest(rules).Solana
	}
	if facts.Rust == "" {
		notices = append(notices, noticeRustDefaulted)
		facts.Rust = Latest(rules).Rust
	}

	return facts, notices, nil
}
