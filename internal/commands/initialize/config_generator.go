package initialize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"anchorver/internal/config"
)

// GenerateConfigWithComments renders cfg as YAML behind a header that
// names the file and summarizes the selected defaults.
func GenerateConfigWithComments(cfg *config.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# anchorver configuration file\n")
	sb.WriteString("# Documentation: run 'anchorver --help' or see the README\n")
	sb.WriteString("\n")

	sb.WriteString("# Selected defaults:\n")
	sb.WriteString(fmt.Sprintf("#   theme: %s\n", cfg.Theme))
	if cfg.Output != nil {
		sb.WriteString(fmt.Sprintf("#   output format: %s\n", cfg.Output.Format))
	}
	sb.WriteString("\n")

	sb.Write(data)
	return []byte(sb.String()), nil
}

// commentedMarshaler adapts GenerateConfigWithComments to the Marshaler
// contract the config saver expects.
type commentedMarshaler struct{}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	cfg, ok := v.(*config.Config)
	if !ok {
		return nil, fmt.Errorf("cannot render %T as a configuration file", v)
	}
	return GenerateConfigWithComments(cfg)
}
