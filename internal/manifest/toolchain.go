package manifest

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Toolchain pin file names recognized during a probe. Both spellings carry
// the same content model.
const (
	FileRustToolchain     = "rust-toolchain"
	FileRustToolchainTOML = "rust-toolchain.toml"
)

// rustToolchain models the TOML form of a toolchain pin.
type rustToolchain struct {
	Toolchain rustToolchainSpec `toml:"toolchain"`
}

type rustToolchainSpec struct {
	Channel string `toml:"channel"`
}

// PinFormatError reports a toolchain pin whose content is neither valid
// TOML nor a plausible plain-text channel.
type PinFormatError struct {
	Path string
}

func (e *PinFormatError) Error() string {
	return fmt.Sprintf("no usable toolchain channel in %s", e.Path)
}

// ReadToolchainPin extracts the pinned Rust channel from a rust-toolchain
// or rust-toolchain.toml file. The TOML form wins when it carries a
// non-empty toolchain.channel; otherwise the whole trimmed content counts
// as the channel, provided it contains at least one digit (release numbers
// and dated nightly channels do, bare words like "stable" do not).
func ReadToolchainPin(data []byte, path string) (VersionFacts, Strategy, error) {
	var pin rustToolchain
	if err := toml.Unmarshal(data, &pin); err == nil && pin.Toolchain.Channel != "" {
		return VersionFacts{Rust: pin.Toolchain.Channel, Source: path}, StrategyStrict, nil
	}

	channel := strings.TrimSpace(string(data))
	if containsDigit(channel) {
		return VersionFacts{Rust: channel, Source: path}, StrategyRaw, nil
	}
	return VersionFacts{}, StrategyRaw, &PinFormatError{Path: path}
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
