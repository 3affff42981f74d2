package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llm-central/llmctl/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the LLM Central portal",
	Long: `Authenticate against the LLM Central gateway and store the returned
credential for subsequent commands.

Examples:
  llmctl login                         # Prompt for username and password
  llmctl login --username alice        # Prompt for password only`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("username", "u", "", "portal username")
	loginCmd.Flags().String("password", "", "portal password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	var err error
	if username == "" {
		if username, err = promptLine(cmd, "Username: "); err != nil {
			return err
		}
	}
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

	result := store.Login(ctx, client, username, password)
	if !result.OK {
		return &output.CLIError{
			Summary:  "Login failed: " + result.Message,
			ExitCode: output.ExitAuthError,
		}
	}

	identity := store.Identity()
	printer.Success("Logged in as %s (role: %s)", identity.Username, identity.Role)
	printer.PrintHints("login")
	return nil
}

// promptLine reads one line of input from the command's stdin
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}
	return promptLine(cmd, prompt)
}
