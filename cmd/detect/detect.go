// Package detect implements the detect subcommand for inspecting which
// Logfire integrations match a project's declared dependencies.
package detect

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydantic/logfire-setup/internal/config"
	"github.com/pydantic/logfire-setup/internal/detect"
)

// Flag variables for the detect command.
var (
	detectJSON bool
)

// DetectCmd lists the integrations matching the project's dependencies.
var DetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect dependencies matching Logfire integrations",
	Long: "Detect which Logfire integrations match the project's declared dependencies.\n\n" +
		"Reads pyproject.toml and requirements.txt from the project directory " +
		"and matches the declared packages against the integration catalog. " +
		"This is the same detection the setup wizard uses to pre-select " +
		"integrations.",
	Example: `  # Detect integrations for the current directory
  logfire-setup detect

  # Machine-readable output
  logfire-setup detect --json`,
	Args:    cobra.NoArgs,
	PreRunE: validateDetect,
	RunE:    runDetect,
}

func init() {
	DetectCmd.Flags().BoolVar(&detectJSON, "json", false,
		"Output the matches as JSON")
}

func validateDetect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	projectDir := config.Get().ProjectDir

	matched := detect.Integrations(projectDir)

	if detectJSON {
		type match struct {
			Extra       string `json:"extra"`
			DisplayName string `json:"display_name"`
			Description string `json:"description"`
		}

		matches := make([]match, 0, len(matched))
		for _, integration := range matched {
			matches = append(matches, match{
				Extra:       integration.Extra,
				DisplayName: integration.DisplayName,
				Description: integration.Description,
			})
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(matches)
	}

	if len(matched) == 0 {
		fmt.Fprintln(out, "No matching integrations detected.")
		return nil
	}

	fmt.Fprintf(out, "Detected %d matching integration(s):\n", len(matched))
	for _, integration := range matched {
		fmt.Fprintf(out, "  %s (%s)\n", integration.DisplayName, integration.Extra)
	}

	return nil
}
