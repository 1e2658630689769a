// Package commands provides the CLI commands for sidekick.
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sidekick-cli/sidekick/internal/config"
	"github.com/sidekick-cli/sidekick/internal/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

var logLevel string

// Configuration override flags. Only flags the user actually set enter the
// invocation layer; see invocationLayer.
var (
	flagBackend          string
	flagModel            string
	flagSystemPrompt     string
	flagTimeoutSeconds   int
	flagMaxIterations    int
	flagMaxReadLines     int
	flagAllowedPrefixes  []string
	flagIgnoredPaths     []string
	flagAccessiblePaths  []string
	flagTerminalBell     bool
	flagShowSystemPrompt bool
	flagDebugToolCalls   bool
	flagAutoExecute      bool
	flagPrintMessages    bool
	flagBaseURL          string
)

var rootCmd = &cobra.Command{
	Use:   "sidekick",
	Short: "Sidekick - AI pair-programming assistant",
	Long: `Sidekick is an AI coding assistant that edits files and runs shell
commands on your behalf, inside a configurable allow-list sandbox.

Settings resolve from built-in defaults, the per-user config.toml, a
project sidekick.jsonc, SIDEKICK_* environment variables, and the flags
of the current invocation, in that order.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		cfg := logging.DefaultConfig()
		if cmd.Flags().Changed("log-level") {
			cfg.Level = logging.ParseLevel(logLevel)
		}
		logging.Init(cfg)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	f := rootCmd.PersistentFlags()
	f.StringVar(&flagBackend, "backend", "", "Backend to use (openrouter|openai|ollama)")
	f.StringVar(&flagModel, "model", "", "Model to use for the agent")
	f.StringVar(&flagSystemPrompt, "system-prompt", "", "System prompt (blank clears the built-in prompt)")
	f.IntVar(&flagTimeoutSeconds, "timeout-seconds", 0, "Timeout for API requests in seconds")
	f.IntVar(&flagMaxIterations, "max-iterations", 0, "Maximum number of tool-use iterations")
	f.IntVar(&flagMaxReadLines, "max-read-lines", 0, "Maximum number of lines to read from a file")
	f.StringSliceVar(&flagAllowedPrefixes, "allowed-command-prefixes", nil, "Command prefixes the agent may execute")
	f.StringSliceVar(&flagIgnoredPaths, "ignored-paths", nil, "Paths to ignore when listing or reading files")
	f.StringSliceVar(&flagAccessiblePaths, "accessible-paths", nil, "Paths the agent is allowed to access")
	f.BoolVar(&flagTerminalBell, "terminal-bell", false, "Ring the terminal bell when input is needed")
	f.BoolVar(&flagShowSystemPrompt, "show-system-prompt", false, "Show the system prompt before the conversation")
	f.BoolVar(&flagDebugToolCalls, "debug-tool-calls", false, "Show detailed arguments and output for tool calls")
	f.BoolVar(&flagAutoExecute, "auto-execute", false, "Execute tool calls without asking for confirmation")
	f.BoolVar(&flagPrintMessages, "print-messages", false, "Print API messages before sending them")
	f.StringVar(&flagBaseURL, "base-url", "", "Base URL for the API client")

	rootCmd.SetVersionTemplate(fmt.Sprintf("sidekick %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// invocationLayer converts the flags the user explicitly set into a sparse
// configuration layer. Unset flags stay out of the layer so values from the
// config file and environment survive.
func invocationLayer(cmd *cobra.Command) (*config.Layer, error) {
	layer := &config.Layer{}
	f := cmd.Flags()

	if f.Changed("backend") {
		var backend config.Backend
		if err := backend.UnmarshalText([]byte(flagBackend)); err != nil {
			return nil, err
		}
		layer.Backend = &backend
	}
	if f.Changed("model") {
		layer.Model = &flagModel
	}
	if f.Changed("system-prompt") {
		layer.SystemPrompt = &flagSystemPrompt
	}
	if f.Changed("timeout-seconds") {
		layer.TimeoutSeconds = &flagTimeoutSeconds
	}
	if f.Changed("max-iterations") {
		layer.MaxIterations = &flagMaxIterations
	}
	if f.Changed("max-read-lines") {
		layer.MaxReadLines = &flagMaxReadLines
	}
	if f.Changed("allowed-command-prefixes") {
		layer.AllowedCommandPrefixes = flagAllowedPrefixes
	}
	if f.Changed("ignored-paths") {
		layer.IgnoredPaths = flagIgnoredPaths
	}
	if f.Changed("accessible-paths") {
		layer.AccessiblePaths = flagAccessiblePaths
	}
	if f.Changed("terminal-bell") {
		layer.TerminalBell = &flagTerminalBell
	}
	if f.Changed("show-system-prompt") {
		layer.ShowSystemPrompt = &flagShowSystemPrompt
	}
	if f.Changed("debug-tool-calls") {
		layer.DebugToolCalls = &flagDebugToolCalls
	}
	if f.Changed("auto-execute") {
		layer.AutoExecute = &flagAutoExecute
	}
	if f.Changed("print-messages") {
		layer.PrintMessages = &flagPrintMessages
	}
	if f.Changed("base-url") {
		layer.BaseURL = &flagBaseURL
	}
	return layer, nil
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	layer, err := invocationLayer(cmd)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(layer)
}
