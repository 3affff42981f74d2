package cmd

import (
	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/output"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new portal user account",
	Long: `Create a portal user on the LLM Central gateway.

Registration never logs the new user in; run 'llmctl login' afterwards.

Examples:
  llmctl register --username alice --email alice@example.com`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringP("username", "u", "", "new username (required)")
	registerCmd.Flags().String("password", "", "new password (prompted when omitted)")
	registerCmd.Flags().String("email", "", "email address (required)")
	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	email, _ := cmd.Flags().GetString("email")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	var err error
	if password == "" {
		if password, err = promptPassword(cmd, "Password: "); err != nil {
			return err
		}
	}

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	ctx, cancel := requestContext()
	defer cancel()

	result := store.Register(ctx, client, api.RegisterProfile{
		Username:  username,
		Password:  password,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})
	if !result.OK {
		return &output.CLIError{
			Summary:  "Registration failed: " + result.Message,
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Registration successful: %s", result.Message)
	printer.PrintHints("register")
	return nil
}
