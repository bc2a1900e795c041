package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// printValue prints v in the format selected by --output. Values without a tabular form are
// printed as JSON for the table format.
func printValue(cmd *cobra.Command, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	switch output {
	case "json", "table":
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.JSONToYAML(jsonOutput)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		cmd.Print(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}

func newTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	tw.AppendHeader(header)
	return tw
}
