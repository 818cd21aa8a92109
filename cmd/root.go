// Package cmd wires the logfire-setup command tree: the interactive wizard
// at the root plus detect, instructions, and version subcommands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pydantic/logfire-setup/cmd/detect"
	"github.com/pydantic/logfire-setup/cmd/instructions"
	"github.com/pydantic/logfire-setup/cmd/version"
	"github.com/pydantic/logfire-setup/internal/config"
	"github.com/pydantic/logfire-setup/internal/logging"
	"github.com/pydantic/logfire-setup/internal/tui/prompt"
	"github.com/pydantic/logfire-setup/internal/wizard"
)

// logManager is the process-wide logging manager, created in init() in
// bootstrap mode and upgraded once settings are loaded.
var logManager *logging.Manager

var rootCmd = &cobra.Command{
	Use:   "logfire-setup",
	Short: "Interactive setup for Pydantic Logfire",
	Long: "Interactive CLI to set up Pydantic Logfire with optional dependencies.\n\n" +
		"Detects the project's existing dependencies, lets you pick matching " +
		"instrumentation extras, installs logfire with uv, checks for a Logfire " +
		"MCP server configuration, and can append usage instructions for AI " +
		"agents to AGENTS.md or CLAUDE.md.",
	Example: `  # Run the setup wizard in the current directory
  logfire-setup

  # Set up a different project
  logfire-setup --project-dir ../my-service`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: runInitialize,
	RunE:              runWizard,
}

func init() {
	logManager = logging.NewManager()

	rootCmd.PersistentFlags().String("project-dir", ".",
		"Project directory to set up")
	rootCmd.PersistentFlags().Bool("debug", false,
		"Enable debug logging and verbose errors")
	rootCmd.PersistentFlags().String("log-level", "warn",
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "",
		"JSON log file (defaults to the user cache directory)")
	rootCmd.PersistentFlags().Duration("api-timeout", 0,
		"Timeout for Logfire API requests")

	rootCmd.AddCommand(detect.DetectCmd)
	rootCmd.AddCommand(instructions.InstructionsCmd)
	rootCmd.AddCommand(version.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration; %w", err)
	}
	config.Set(settings)

	level, ok := logging.ParseLevel(settings.LogLevel)
	if !ok {
		level = logging.DefaultLevel
		if settings.LogLevel != "" {
			logger.Warn("invalid log level configured, using default",
				"configured", settings.LogLevel, "default", level.String())
		}
	}
	if settings.Debug {
		level = slog.LevelDebug
	}

	logManager.Upgrade(settings.LogFile, level)

	logger.Debug("session started",
		"run_id", uuid.NewString(),
		"command", cmd.Name(),
		"project_dir", settings.ProjectDir,
	)

	return nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	w := wizard.New(config.Get(), logManager.Logger())
	return w.Run(cmd.Context())
}

// Execute runs the command tree and maps the outcome to a process exit
// code: 0 on success, 130 when the user cancelled a prompt, 1 otherwise.
func Execute() int {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "\nSetup cancelled by user.")
		return 130
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
