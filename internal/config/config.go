package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"anchorver/internal/core"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".anchorver.yaml"

// Environment variables honored during config loading.
const (
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "ANCHORVER_CONFIG"
	// EnvTheme overrides the configured TUI theme.
	EnvTheme = "ANCHORVER_THEME"
)

// Output format names accepted in configuration and flags.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main configuration structure for anchorver.
type Config struct {
	Theme  string        `yaml:"theme,omitempty"`
	Output *OutputConfig `yaml:"output,omitempty"`
	Scan   *ScanConfig   `yaml:"scan,omitempty"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format  string `yaml:"format,omitempty"`
	NoColor bool   `yaml:"no-color,omitempty"`
}

// ScanConfig tunes directory traversal.
type ScanConfig struct {
	MaxDepth int      `yaml:"max-depth,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme:  "anchorver",
		Output: &OutputConfig{Format: FormatText},
		Scan:   &ScanConfig{MaxDepth: core.MaxScanDepth},
	}
}

// applyDefaults fills unset fields after a file load.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "anchorver"
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Scan == nil {
		c.Scan = &ScanConfig{}
	}
	if c.Scan.MaxDepth == 0 {
		c.Scan.MaxDepth = core.MaxScanDepth
	}
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, DefaultConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// defaultConfigSaver is the default ConfigSaver instance.
var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn and SaveConfigFn are the package entry points; tests swap
// them out.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

// ConfigFilePath returns the configuration file path the loader reads,
// honoring the ANCHORVER_CONFIG override.
func ConfigFilePath() string {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return filepath.Clean(envPath)
	}
	return DefaultConfigFile
}

func loadConfig() (*Config, error) {
	path := ConfigFilePath()

	// Reject relative override paths with traversal (use absolute paths
	// instead).
	if path != DefaultConfigFile && strings.Contains(path, "..") {
		return nil, fmt.Errorf("invalid %s: path traversal not allowed, use an absolute path instead", EnvConfigPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	cfg.applyDefaults()

	if envTheme := os.Getenv(EnvTheme); envTheme != "" {
		cfg.Theme = envTheme
	}

	return &cfg, nil
}

// ConfigFilePerm defines secure file permissions for config files (owner
// read/write only).
const ConfigFilePerm = core.PermOwnerRW
