package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/output"
)

var adminReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "System-wide usage and backcharge reports",
	Long: `Fetch the overall usage aggregate and the per-principal backcharge
report. The two reads are independent and run concurrently; if one fails its
section shows the error while the other still renders.

Examples:
  llmctl admin reports            # Both reports
  llmctl admin reports --json     # Output as JSON`,
	RunE: runAdminReports,
}

func init() {
	adminCmd.AddCommand(adminReportsCmd)

	adminReportsCmd.Flags().Bool("json", false, "output as JSON")
}

// reportData carries the two report halves and their independent outcomes
type reportData struct {
	Overall       *api.OverallUsage     `json:"overall,omitempty"`
	OverallErr    error                 `json:"-"`
	Backcharge    []api.BackchargeEntry `json:"backcharge,omitempty"`
	BackchargeErr error                 `json:"-"`
}

func runAdminReports(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	data := fetchReports(client)

	if jsonOutput {
		if data.OverallErr != nil && data.BackchargeErr != nil {
			return describeAPIError(data.OverallErr, "fetching reports")
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	renderReports(printer, data)
	printer.PrintHints("admin reports")

	if data.OverallErr != nil && data.BackchargeErr != nil {
		return &output.CLIError{
			Summary:  "both reports failed",
			Detail:   data.OverallErr.Error(),
			ExitCode: output.ExitAPIError,
		}
	}
	return nil
}

// fetchReports runs the two report reads concurrently. Each read keeps its
// own error so a failing or slow report never hides the other.
func fetchReports(client *api.Client) *reportData {
	data := &reportData{}

	var g errgroup.Group
	g.Go(func() error {
		ctx, cancel := requestContext()
		defer cancel()
		data.Overall, data.OverallErr = client.OverallUsageReport(ctx)
		return nil
	})
	g.Go(func() error {
		ctx, cancel := requestContext()
		defer cancel()
		data.Backcharge, data.BackchargeErr = client.BackchargeReport(ctx)
		return nil
	})
	_ = g.Wait()

	return data
}

func renderReports(printer *output.Printer, data *reportData) {
	printer.Header("System-Wide LLM Usage")
	if data.OverallErr != nil {
		printer.Error("overall usage unavailable: %v", data.OverallErr)
	} else {
		overall := data.Overall
		printer.Print("Total calls:    %d", overall.TotalCalls)
		printer.Print("Input tokens:   %d", overall.TotalInputTokens)
		printer.Print("Output tokens:  %d", overall.TotalOutputTokens)
		printer.Print("Total tokens:   %d", overall.TotalInputTokens+overall.TotalOutputTokens)
		printer.Print("Estimated cost: %s", formatUSD(overall.TotalEstimatedCostUSD))
	}

	printer.Header("Backcharge Report (per principal)")
	if data.BackchargeErr != nil {
		printer.Error("backcharge report unavailable: %v", data.BackchargeErr)
		return
	}
	if len(data.Backcharge) == 0 {
		printer.Info("No backcharge entries")
		return
	}

	table := output.NewQuietTable(
		[]string{"PRINCIPAL", "USER", "TOKENS", "COST", "CALLS"},
		printer.IsQuiet(),
	)
	for _, entry := range data.Backcharge {
		table.AddRow([]string{
			entry.PrincipalID,
			backchargeUser(entry),
			fmt.Sprintf("%d", entry.TotalTokens),
			formatUSD(entry.TotalEstimatedCostUSD),
			fmt.Sprintf("%d", entry.TotalCalls),
		})
	}
	table.Render()
}

// backchargeUser picks the most human-readable label for a principal
func backchargeUser(entry api.BackchargeEntry) string {
	label := entry.Username
	if label == "" {
		label = entry.Email
	}
	if label == "" {
		label = "N/A"
	}
	// The gateway emits a single space for principals with no name on file
	if name := strings.TrimSpace(entry.Name); name != "" {
		label = fmt.Sprintf("%s (%s)", label, name)
	}
	return label
}
