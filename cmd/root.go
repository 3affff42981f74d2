// Package cmd contains all CLI commands for llmctl
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llm-central/llmctl/internal/api"
	"github.com/llm-central/llmctl/internal/config"
	"github.com/llm-central/llmctl/internal/output"
	"github.com/llm-central/llmctl/internal/session"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool
	baseURL string
	timeout time.Duration
	cfg     *config.Config
	logger  *slog.Logger
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "llmctl",
	Short: "LLM Central portal CLI",
	Long: `llmctl is the terminal client for the LLM Central portal.

Anyone can file an LLM access request; admins review the pending queue and
usage reports after logging in, and developers inspect their own usage.

Example usage:
  llmctl request submit        # File an LLM access request
  llmctl login                 # Log in as an admin or developer
  llmctl dashboard             # Show the screen matching your role
  llmctl admin requests        # Review the pending request queue
  llmctl admin reports         # System-wide usage and backcharge reports
  llmctl usage                 # Your own usage summary`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .llmctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "LLM Central gateway base URL (default from config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "API request timeout (default from config)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err = config.Load(cfgFile, baseURL)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout
	}

	// Update logger based on config
	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout,
		"token_file", cfg.Session.TokenFile,
	)

	return nil
}

// newPrinter builds a printer honoring config and the global output flags
func newPrinter() *output.Printer {
	mode := output.ColorAuto
	if noColor {
		mode = output.ColorNever
	}
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	})
}

// newSession creates the session store and rehydrates it from the
// persisted credential.
func newSession() (*session.Store, error) {
	store := session.NewStore(cfg.Session.TokenFile, logger)
	if err := store.Load(); err != nil {
		return nil, &output.CLIError{
			Summary:  "could not load session",
			Detail:   err.Error(),
			ExitCode: output.ExitConfigError,
		}
	}
	return store, nil
}

// newClient builds the gateway client bound to the session store
func newClient(store *session.Store) *api.Client {
	return api.New(cfg.API.BaseURL, cfg.API.Timeout, logger, store)
}

// requestContext returns a context bounded by the configured API timeout,
// so an unresponsive gateway can never hang a command indefinitely.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.API.Timeout)
}

// describeAPIError turns a gateway failure into a structured CLI error
func describeAPIError(err error, action string) error {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return &output.CLIError{
			Summary:    fmt.Sprintf("%s requires authentication", action),
			Detail:     err.Error(),
			Suggestion: "run 'llmctl login' first",
			ExitCode:   output.ExitAuthError,
		}
	case errors.As(err, &apiErr):
		return &output.CLIError{
			Summary:  fmt.Sprintf("%s failed: %s", action, apiErr.Message),
			Detail:   fmt.Sprintf("gateway returned HTTP %d", apiErr.StatusCode),
			ExitCode: output.ExitAPIError,
		}
	default:
		return &output.CLIError{
			Summary:    fmt.Sprintf("%s failed", action),
			Detail:     err.Error(),
			Suggestion: "check api.base_url and network connectivity",
			ExitCode:   output.ExitGeneral,
		}
	}
}
