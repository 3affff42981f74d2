package cmd

import (
	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/output"
	"github.com/llm-central/llmctl/internal/session"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the portal screen matching your role",
	Long: `Render the screen for the current session:

  anonymous  -> how to file a request or log in
  llm_admin  -> pending request queue plus usage/backcharge reports
  developer  -> personal usage summary

A credential carrying any other role is treated as an error.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	store, err := newSession()
	if err != nil {
		return err
	}

	identity := store.Identity()
	if identity == nil {
		printer.Header("LLM Central Portal")
		printer.Info("You are not logged in.")
		printer.Print("  • File an access request:  llmctl request submit")
		printer.Print("  • Log in as admin or developer:  llmctl login")
		return nil
	}

	printer.Header("LLM Central Portal")
	printer.Info("Welcome, %s (role: %s)", printer.Bold(identity.Username), identity.Role)

	client := newClient(store)

	switch identity.Role {
	case session.RoleAdmin:
		ctx, cancel := requestContext()
		requests, err := client.PendingRequests(ctx)
		cancel()
		if err != nil {
			printer.Error("pending queue unavailable: %v", err)
		} else {
			renderPendingRequests(printer, requests)
		}

		renderReports(printer, fetchReports(client))
		printer.PrintHints("dashboard")
		return nil

	case session.RoleDeveloper:
		ctx, cancel := requestContext()
		defer cancel()
		summary, err := client.MyUsage(ctx)
		if err != nil {
			return describeAPIError(err, "fetching personal usage")
		}
		renderUsageSummary(printer, summary)
		printer.PrintHints("dashboard")
		return nil

	default:
		// A role the portal does not know is an error state, not a blank
		// screen: the credential works but grants no screen here.
		return &output.CLIError{
			Summary:    "no dashboard for role " + identity.Role,
			Detail:     "this portal serves the llm_admin and developer roles",
			Suggestion: "contact the portal admins if your account should have access",
			ExitCode:   output.ExitAuthError,
		}
	}
}
