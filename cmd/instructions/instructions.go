// Package instructions implements the instructions subcommand for printing
// the agent documentation block without running the wizard.
package instructions

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydantic/logfire-setup/internal/catalog"
	"github.com/pydantic/logfire-setup/internal/instructions"
)

// Flag variables for the instructions command.
var (
	instructionsExtras []string
	instructionsMCP    bool
)

// selectedIntegrations is resolved from the --extras flag during PreRunE.
var selectedIntegrations []catalog.Integration

// InstructionsCmd prints the Logfire usage instructions for AI agents.
var InstructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print Logfire usage instructions for AI agents",
	Long: "Print the Logfire usage instructions the wizard appends to AGENTS.md " +
		"or CLAUDE.md.\n\n" +
		"Use --extras to include instrumentation snippets for specific " +
		"integrations, and --mcp to include the MCP tooling section.",
	Example: `  # Core instructions only
  logfire-setup instructions

  # Include instrumentation snippets and the MCP section
  logfire-setup instructions --extras fastapi,httpx --mcp`,
	Args:    cobra.NoArgs,
	PreRunE: validateInstructions,
	RunE:    runInstructions,
}

func init() {
	InstructionsCmd.Flags().StringSliceVar(&instructionsExtras, "extras", nil,
		"Integration extras to include (e.g. fastapi,httpx)")
	InstructionsCmd.Flags().BoolVar(&instructionsMCP, "mcp", false,
		"Include the MCP tooling section")
}

func validateInstructions(cmd *cobra.Command, args []string) error {
	selectedIntegrations = selectedIntegrations[:0]

	for _, extra := range instructionsExtras {
		integration, ok := catalog.ByExtra(extra)
		if !ok {
			return fmt.Errorf("unknown integration extra %q", extra)
		}
		selectedIntegrations = append(selectedIntegrations, integration)
	}

	cmd.SilenceUsage = true
	return nil
}

func runInstructions(cmd *cobra.Command, args []string) error {
	text := instructions.Generate(selectedIntegrations, instructionsMCP)
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
