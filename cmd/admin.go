package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/output"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin operations (pending queue, reports)",
}

var adminRequestsCmd = &cobra.Command{
	Use:     "requests",
	Aliases: []string{"pending"},
	Short:   "List access requests awaiting a decision",
	Long: `Show the pending access request queue. The gateway pushes nothing; the
queue is refreshed by re-fetching it.

Examples:
  llmctl admin requests           # Show the pending queue
  llmctl admin requests --watch   # Re-fetch on an interval
  llmctl admin requests --json    # Output as JSON`,
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve an access request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecision(cmd, args[0], "approve")
	},
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject an access request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecision(cmd, args[0], "reject")
	},
}

func init() {
	adminRequestsCmd.RunE = runAdminRequests
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminRequestsCmd)
	adminCmd.AddCommand(adminApproveCmd)
	adminCmd.AddCommand(adminRejectCmd)

	adminRequestsCmd.Flags().Bool("json", false, "output as JSON")
	adminRequestsCmd.Flags().BoolP("watch", "w", false, "watch for changes")
	adminRequestsCmd.Flags().Duration("interval", 5*time.Second, "watch interval")

	for _, c := range []*cobra.Command{adminApproveCmd, adminRejectCmd} {
		c.Flags().String("requester", "", "the requester's contact email or employee ID (required)")
		_ = c.MarkFlagRequired("requester")
	}
}

func runAdminRequests(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")

	if watch {
		return watchRequests(interval, jsonOutput)
	}

	return showRequests(cmd, jsonOutput)
}

func showRequests(cmd *cobra.Command, jsonOutput bool) error {
	printer := newPrinter()

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	ctx, cancel := requestContext()
	defer cancel()

	requests, err := client.PendingRequests(ctx)
	if err != nil {
		return describeAPIError(err, "listing pending requests")
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(requests)
	}

	renderPendingRequests(printer, requests)
	printer.PrintHints("admin requests")
	return nil
}

func watchRequests(interval time.Duration, jsonOutput bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Initial display
	if err := showRequests(adminRequestsCmd, jsonOutput); err != nil {
		return err
	}

	for range ticker.C {
		// Clear screen (ANSI escape)
		fmt.Print("\033[H\033[2J")
		if err := showRequests(adminRequestsCmd, jsonOutput); err != nil {
			return err
		}
	}

	return nil
}

func runDecision(cmd *cobra.Command, requestID, verb string) error {
	printer := newPrinter()
	requester, _ := cmd.Flags().GetString("requester")

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	ctx, cancel := requestContext()
	defer cancel()

	var resp *api.MessageResponse
	if verb == "approve" {
		resp, err = client.ApproveRequest(ctx, requestID, requester)
	} else {
		resp, err = client.RejectRequest(ctx, requestID, requester)
	}
	if err != nil {
		return describeAPIError(err, verb+" request "+requestID)
	}

	if resp.Message != "" {
		printer.Success("Request %s %sd: %s", requestID, verb, resp.Message)
	} else {
		printer.Success("Request %s %sd", requestID, verb)
	}

	// Re-fetch the queue so the admin sees what is still pending
	listCtx, listCancel := requestContext()
	defer listCancel()
	requests, err := client.PendingRequests(listCtx)
	if err != nil {
		printer.Warning("could not refresh the pending queue: %v", err)
		return nil
	}
	renderPendingRequests(printer, requests)
	printer.PrintHints("admin " + verb)
	return nil
}

func renderPendingRequests(printer *output.Printer, requests []api.AccessRequest) {
	printer.Header("Pending LLM Access Requests")

	if len(requests) == 0 {
		printer.Info("No pending requests")
		return
	}

	table := output.NewQuietTable(
		[]string{"ID", "REQUESTER", "MODEL", "PURPOSE", "TEAMMATES", "SUBMITTED"},
		printer.IsQuiet(),
	)
	for _, req := range requests {
		requester := req.RequesterContact
		if req.RequesterName != "" {
			requester = fmt.Sprintf("%s (%s)", req.RequesterName, req.RequesterContact)
		}

		teammates := "-"
		if len(req.Teammates) > 0 {
			teammates = strings.Join(req.Teammates, ", ")
		}

		table.AddRow([]string{
			req.ID,
			requester,
			req.ModelID,
			req.Purpose,
			teammates,
			req.SubmittedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()

	printer.Info("Total: %d pending request(s)", len(requests))
}
