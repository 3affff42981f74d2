package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/output"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show your own LLM usage and cost",
	Long: `Fetch your personal usage summary: token totals, estimated cost and a
sample of recent calls. Requires login.

Examples:
  llmctl usage                 # Show personal usage
  llmctl usage --json          # Output as JSON`,
	RunE: runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)

	usageCmd.Flags().Bool("json", false, "output as JSON")
}

func runUsage(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	ctx, cancel := requestContext()
	defer cancel()

	summary, err := client.MyUsage(ctx)
	if err != nil {
		return describeAPIError(err, "fetching personal usage")
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	renderUsageSummary(printer, summary)
	printer.PrintHints("usage")
	return nil
}

func renderUsageSummary(printer *output.Printer, summary *api.UsageSummary) {
	printer.Header("Your LLM Usage Summary")
	printer.Print("Input tokens:   %d", summary.TotalInputTokens)
	printer.Print("Output tokens:  %d", summary.TotalOutputTokens)
	printer.Print("Total tokens:   %d", summary.TotalTokens)
	printer.Print("Estimated cost: %s", formatUSD(summary.TotalCostUSD))

	if len(summary.RecentLogs) == 0 {
		printer.Info("No recent usage logs")
		return
	}

	printer.Header("Recent Calls")
	table := output.NewQuietTable(
		[]string{"TIMESTAMP", "MODEL", "INPUT", "OUTPUT", "COST", "LATENCY"},
		printer.IsQuiet(),
	)
	for _, log := range summary.RecentLogs {
		table.AddRow([]string{
			log.Timestamp.Local().Format("2006-01-02 15:04:05"),
			log.ModelID,
			fmt.Sprintf("%d", log.PromptTokens),
			fmt.Sprintf("%d", log.CompletionTokens),
			formatUSD(log.CostUSD),
			fmt.Sprintf("%d ms", log.LatencyMs),
		})
	}
	table.Render()
}

// formatUSD renders a cost with the portal's fixed six-decimal precision
func formatUSD(amount float64) string {
	return fmt.Sprintf("$%.6f", amount)
}
