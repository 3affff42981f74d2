package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/catalog"
	"github.com/llm-central/llmctl/internal/output"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "LLM access requests",
}

var requestSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "File an LLM access request",
	Long: `Submit a request for model access. No login is required.

Up to 10 teammate contacts can be included; blank entries are dropped
before the request is sent.

Examples:
  llmctl request submit --requester dev@example.com --purpose "Prototype a support bot"
  llmctl request submit --requester E12345 --model gpt-4o \
      --teammate a@example.com --teammate b@example.com`,
	RunE: runRequestSubmit,
}

func init() {
	rootCmd.AddCommand(requestCmd)
	requestCmd.AddCommand(requestSubmitCmd)

	registry := catalog.NewRegistry()
	defaultModel := ""
	if m := registry.Default(); m != nil {
		defaultModel = m.ID
	}

	requestSubmitCmd.Flags().String("requester", "", "your email or employee ID (required)")
	requestSubmitCmd.Flags().String("name", "", "your display name")
	requestSubmitCmd.Flags().String("model", defaultModel, "requested model deployment ID")
	requestSubmitCmd.Flags().String("purpose", "", "what the access is for (required)")
	requestSubmitCmd.Flags().StringArray("teammate", nil, "teammate email or employee ID (repeatable, max 10)")
	_ = requestSubmitCmd.MarkFlagRequired("requester")
	_ = requestSubmitCmd.MarkFlagRequired("purpose")
}

func runRequestSubmit(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	requester, _ := cmd.Flags().GetString("requester")
	name, _ := cmd.Flags().GetString("name")
	model, _ := cmd.Flags().GetString("model")
	purpose, _ := cmd.Flags().GetString("purpose")
	teammates, _ := cmd.Flags().GetStringArray("teammate")

	registry := catalog.NewRegistry()
	if !registry.Has(model) {
		return &output.CLIError{
			Summary:    "unknown model deployment: " + model,
			Suggestion: "choose one of: " + strings.Join(registry.IDs(), ", "),
			ExitCode:   output.ExitUsageError,
		}
	}

	store, err := newSession()
	if err != nil {
		return err
	}
	client := newClient(store)

	ctx, cancel := requestContext()
	defer cancel()

	requestID, err := client.SubmitAccessRequest(ctx, api.AccessRequestDraft{
		RequesterContact: requester,
		RequesterName:    name,
		ModelID:          model,
		Purpose:          purpose,
		Teammates:        teammates,
	})
	if err != nil {
		return describeAPIError(err, "submitting access request")
	}

	printer.Success("Request submitted, ID: %s", requestID)
	printer.Info("An admin will review your request; you will be contacted at %s", requester)
	printer.PrintHints("request submit")
	return nil
}
