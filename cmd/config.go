package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llm-central/llmctl/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Display the current llmctl configuration.

Examples:
  llmctl config                # Show all config
  llmctl config --path         # Show config file path
  llmctl config --json         # Output as JSON`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("path", false, "show config file path")
	configCmd.Flags().Bool("json", false, "output as JSON")
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	showPath, _ := cmd.Flags().GetBool("path")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if showPath {
		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			printer.Info("No config file found (using defaults)")
		} else {
			printer.Info("Config file: %s", configFile)
		}
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	// Print configuration as table
	printer.Header("Current Configuration")

	table := output.NewTable([]string{"KEY", "VALUE"})
	table.AddRow([]string{"api.base_url", cfg.API.BaseURL})
	table.AddRow([]string{"api.timeout", cfg.API.Timeout.String()})
	table.AddRow([]string{"session.token_file", cfg.Session.TokenFile})
	table.AddRow([]string{"logging.level", cfg.Logging.Level})
	table.AddRow([]string{"logging.format", cfg.Logging.Format})
	table.AddRow([]string{"output.colors", fmt.Sprintf("%v", cfg.Output.Colors)})
	table.Render()

	return nil
}
