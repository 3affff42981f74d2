package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the LLM Central portal",
	Long: `Discard the stored credential. No gateway call is made; the credential
simply stops being attached to future commands.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	store, err := newSession()
	if err != nil {
		return err
	}

	if err := store.Logout(); err != nil {
		return err
	}

	printer.Success("Logged out")
	return nil
}
