package matrix

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"anchorver/internal/compat"
	"anchorver/internal/config"
)

// Run returns the "matrix" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:    "matrix",
		Aliases: []string{"table"},
		Usage:   "Show the built-in Solana, Anchor and Rust compatibility table",
		UsageText: `anchorver matrix [options]

Prints the table the detect command completes missing versions from,
newest release row first.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   config.FormatText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runMatrixCmd(cmd)
		},
	}
}

// runMatrixCmd executes the matrix command.
func runMatrixCmd(cmd *cli.Command) error {
	if cmd.String("format") == config.FormatJSON {
		return printRulesJSON(compat.Rules)
	}
	fmt.Print(renderRulesTable(compat.Rules))
	return nil
}

// renderRulesTable renders the rules as a table. The model is built and
// rendered once; there is no event loop behind it.
func renderRulesTable(rules []compat.Rule) string {
	columns := []table.Column{
		{Title: "Solana", Width: 12},
		{Title: "Anchor", Width: 12},
		{Title: "Rust", Width: 12},
	}

	rows := make([]table.Row, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, table.Row{rule.Solana, rule.Anchor, rule.Rust})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	// No cursor highlight in a static view.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View() + "\n"
}

// printRulesJSON emits the rule list as JSON, newest row first.
func printRulesJSON(rules []compat.Rule) error {
	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal compatibility table: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
