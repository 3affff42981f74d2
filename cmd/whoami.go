package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity derived from the stored credential",
	Long: `Print the user id, username and role decoded from the stored credential.

The decode is informational only; the gateway independently verifies the
credential on every authenticated call.

Examples:
  llmctl whoami                # Show identity
  llmctl whoami --json         # Output as JSON`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := newSession()
	if err != nil {
		return err
	}

	identity := store.Identity()
	if identity == nil {
		printer.Info("Not logged in")
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"id":       identity.ID,
			"username": identity.Username,
			"role":     identity.Role,
		})
	}

	printer.Print("%s", printer.Bold(identity.Username))
	printer.Print("  id:   %s", identity.ID)
	printer.Print("  role: %s", identity.Role)
	printer.PrintHints("whoami")
	return nil
}
