package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/catalog"
	"github.com/llm-central/llmctl/internal/output"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List model deployments open for access requests",
	Long: `List the LLM deployments that can be named in an access request.

Examples:
  llmctl models                # List requestable deployments
  llmctl models --json         # Output as JSON`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().Bool("json", false, "output as JSON")
}

func runModels(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	registry := catalog.NewRegistry()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(registry.All())
	}

	printer.Header("Requestable Models")

	table := output.NewQuietTable([]string{"DEPLOYMENT", "DESCRIPTION", "DEFAULT"}, printer.IsQuiet())
	for _, m := range registry.All() {
		def := ""
		if m.Default {
			def = "yes"
		}
		table.AddRow([]string{printer.Bold(m.ID), m.Description, def})
	}
	table.Render()

	printer.PrintHints("models")
	return nil
}
