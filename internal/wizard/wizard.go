// Package wizard drives the interactive setup flow: uv check,
// authentication, project selection, dependency detection, integration
// selection, installation, MCP inspection, and agent file instructions.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydantic/logfire-setup/internal/agentfile"
	"github.com/pydantic/logfire-setup/internal/api"
	"github.com/pydantic/logfire-setup/internal/auth"
	"github.com/pydantic/logfire-setup/internal/catalog"
	"github.com/pydantic/logfire-setup/internal/config"
	"github.com/pydantic/logfire-setup/internal/credentials"
	"github.com/pydantic/logfire-setup/internal/detect"
	"github.com/pydantic/logfire-setup/internal/installer"
	"github.com/pydantic/logfire-setup/internal/instructions"
	"github.com/pydantic/logfire-setup/internal/mcp"
	"github.com/pydantic/logfire-setup/internal/pathutil"
	"github.com/pydantic/logfire-setup/internal/tui/prompt"
	"github.com/pydantic/logfire-setup/internal/tui/styles"
)

// ErrInstallFailed reports that the uv installation step exited non-zero.
var ErrInstallFailed = errors.New("installation failed")

const (
	uvInstallURL = "https://docs.astral.sh/uv/"
	docsURL      = "https://logfire.pydantic.dev/docs/"

	usProjectsURL = "https://logfire-us.pydantic.dev/?to=:account/-/projects"
	euProjectsURL = "https://logfire-eu.pydantic.dev/?to=:account/-/projects"

	previewLines = 30
)

// Prompter abstracts the interactive prompts so the flow can be tested
// without a terminal.
type Prompter interface {
	Checkbox(title string, options []prompt.CheckboxOption) ([]int, error)
	Select(title string, options []string) (int, error)
	Confirm(question string, defaultYes bool) (bool, error)
	Pause(message string) error
	Spin(message string, fn func() error) error
}

// teaPrompter is the Bubble Tea-backed default.
type teaPrompter struct{}

func (teaPrompter) Checkbox(title string, options []prompt.CheckboxOption) ([]int, error) {
	return prompt.Checkbox(title, options)
}

func (teaPrompter) Select(title string, options []string) (int, error) {
	return prompt.Select(title, options)
}

func (teaPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	return prompt.Confirm(question, defaultYes)
}

func (teaPrompter) Pause(message string) error {
	return prompt.Pause(message)
}

func (teaPrompter) Spin(message string, fn func() error) error {
	return prompt.Spin(message, fn)
}

// Wizard runs one interactive setup session.
type Wizard struct {
	settings  *config.Settings
	installer *installer.Installer
	prompter  Prompter
	logger    *slog.Logger
	out       io.Writer
}

// Options overrides collaborators, primarily for tests.
type Options struct {
	Installer *installer.Installer
	Prompter  Prompter
	Out       io.Writer
}

// New creates a wizard with the default installer and prompts.
func New(settings *config.Settings, logger *slog.Logger) *Wizard {
	return NewWithOptions(settings, logger, Options{})
}

// NewWithOptions creates a wizard with selective overrides.
func NewWithOptions(settings *config.Settings, logger *slog.Logger, opts Options) *Wizard {
	w := &Wizard{
		settings:  settings,
		installer: opts.Installer,
		prompter:  opts.Prompter,
		logger:    logger,
		out:       opts.Out,
	}

	if w.installer == nil {
		w.installer = installer.New()
	}
	if w.prompter == nil {
		w.prompter = teaPrompter{}
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.out == nil {
		w.out = os.Stdout
	}

	return w
}

// Run executes the full setup flow. A nil return means the session ended
// cleanly, including the user declining to proceed at a decision point.
func (w *Wizard) Run(ctx context.Context) error {
	w.printWelcome()

	if err := w.installer.CheckUV(ctx); err != nil {
		w.printf("%s uv is not installed or not available in PATH\n", styles.ErrorText.Render("Error:"))
		w.printf("\nPlease install uv from: %s\n", uvInstallURL)
		return err
	}

	projectDir := w.settings.ProjectDir
	w.printf("%s\n\n", styles.MutedText.Render("Project directory: "+projectDir))

	authenticated, err := w.checkAuth(projectDir)
	if err != nil {
		return err
	}
	if !authenticated {
		w.printf("%s uv add logfire && logfire auth\n\n", styles.Bold.Render("To authenticate, run:"))

		proceed, err := w.prompter.Confirm("Continue without authentication?", true)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	var projectPath, projectURL string
	if authenticated {
		projectPath, projectURL, err = w.selectProject(ctx, projectDir)
		if err != nil {
			return err
		}
	}

	detected := w.detectAndDisplay(projectDir)

	selected, err := w.selectIntegrations(detected)
	if err != nil {
		return err
	}

	w.displaySelected(selected)

	if len(selected) == 0 {
		installBase, err := w.prompter.Confirm("No integrations selected. Install base logfire package anyway?", true)
		if err != nil {
			return err
		}
		if !installBase {
			w.printf("\n%s\n", styles.WarningText.Render("Setup cancelled."))
			return nil
		}
	}

	extras := make([]string, 0, len(selected))
	for _, integration := range selected {
		extras = append(extras, integration.Extra)
	}

	w.printf("\n%s %s\n", styles.Bold.Render("Ready to install:"), installer.PackageSpec(extras))

	proceed, err := w.prompter.Confirm("Proceed with installation?", true)
	if err != nil {
		return err
	}
	if !proceed {
		w.printf("\n%s\n", styles.WarningText.Render("Installation cancelled."))
		return nil
	}

	if err := w.install(ctx, projectDir, extras); err != nil {
		return err
	}

	mcpConfigured := w.checkMCP(projectDir, projectURL)

	if err := w.prompter.Pause("Press any key to continue..."); err != nil {
		return err
	}

	if err := w.offerInstructions(projectDir, selected, mcpConfigured); err != nil {
		return err
	}

	w.printNextSteps(authenticated, projectPath)

	return nil
}

func (w *Wizard) printWelcome() {
	banner := styles.Title.Render("Logfire Setup") +
		"\n\nInteractive CLI to set up Pydantic Logfire with optional dependencies"
	w.printf("\n%s\n\n", styles.Banner.Render(banner))
}

// checkAuth reports whether a usable credential was found, checking the
// session store first and the LOGFIRE_TOKEN fallback second.
func (w *Wizard) checkAuth(projectDir string) (bool, error) {
	w.printf("%s\n", styles.Bold.Render("Checking authentication..."))

	status := auth.CheckSession()
	if status.Authenticated {
		w.printf("%s %s\n\n", styles.SuccessText.Render(styles.CheckMark), status.Message)
		return true, nil
	}

	w.printf("%s %s. Checking for token...\n\n", styles.WarningText.Render(styles.WarnMark), status.Message)

	tokenStatus := auth.CheckEnvToken(projectDir)
	if tokenStatus.Authenticated {
		w.printf("%s %s\n\n", styles.SuccessText.Render(styles.CheckMark), tokenStatus.Message)
		return true, nil
	}

	w.printf("%s %s\n\n", styles.WarningText.Render(styles.WarnMark), tokenStatus.Message)
	return false, nil
}

// selectProject resolves the Logfire project for this directory: existing
// credentials win, otherwise the user picks from their writable projects.
// Fetch failures degrade to skipping selection.
func (w *Wizard) selectProject(ctx context.Context, projectDir string) (projectPath, projectURL string, err error) {
	if existing := credentials.ProjectURL(projectDir); existing != "" {
		w.printf("%s Found existing project configuration\n\n", styles.SuccessText.Render(styles.CheckMark))
		w.printf("%s\n\n", styles.MutedText.Render("Project URL: "+existing))
		return existing, existing, nil
	}

	token, baseURL, ok := auth.SessionToken()
	if !ok {
		w.printf("%s Could not fetch projects. Skipping project selection.\n\n", styles.WarningText.Render(styles.WarnMark))
		return "", "", nil
	}

	client := api.NewClient(baseURL, token, w.settings.APITimeout)

	var projects []api.Project
	fetchErr := w.prompter.Spin("Fetching your Logfire projects...", func() error {
		var err error
		projects, err = client.WritableProjects(ctx)
		return err
	})
	if errors.Is(fetchErr, prompt.ErrCancelled) {
		return "", "", fetchErr
	}
	if fetchErr != nil {
		w.logger.Warn("project listing failed", "error", fetchErr)
		w.printf("%s Could not fetch projects. Skipping project selection.\n\n", styles.WarningText.Render(styles.WarnMark))
		return "", "", nil
	}

	if len(projects) == 0 {
		w.printf("%s\nYou can create a new project at:\n", styles.MutedText.Render("No projects found."))
		w.printf("%s\n", styles.MutedText.Render("  "+styles.Bullet+" US: "+usProjectsURL))
		w.printf("%s\n\n", styles.MutedText.Render("  "+styles.Bullet+" EU: "+euProjectsURL))
		return "", "", nil
	}

	w.printf("\n%s Found %d project(s)\n\n", styles.SuccessText.Render(styles.CheckMark), len(projects))

	options := make([]string, 0, len(projects)+1)
	for _, project := range projects {
		options = append(options, project.Path())
	}
	options = append(options, "Skip project selection")

	choice, err := w.prompter.Select("Select a project:", options)
	if err != nil {
		return "", "", err
	}
	if choice == len(projects) {
		w.printf("\n%s\n\n", styles.MutedText.Render("Skipped project selection"))
		return "", "", nil
	}

	chosen := projects[choice]
	w.printf("\n%s Selected: %s\n\n", styles.SuccessText.Render(styles.CheckMark), chosen.Path())

	w.printf("%s\n", styles.MutedText.Render("Setting project to "+chosen.ProjectName+"..."))

	result, err := w.installer.UseProject(ctx, projectDir, chosen.ProjectName)
	if err != nil || !result.Success() {
		detail := result.Stderr
		if err != nil {
			detail = err.Error()
		}
		w.printf("%s Failed to set project: %s\n\n", styles.WarningText.Render(styles.WarnMark), strings.TrimSpace(detail))
		return chosen.Path(), "", nil
	}

	projectURL = credentials.ProjectURL(projectDir)
	if projectURL != "" {
		w.printf("%s Project configured\n\n", styles.SuccessText.Render(styles.CheckMark))
	} else {
		w.printf("%s Could not find credentials file\n\n", styles.WarningText.Render(styles.WarnMark))
	}

	return chosen.Path(), projectURL, nil
}

// detectAndDisplay scans the project's dependency manifests and lists the
// matching integrations.
func (w *Wizard) detectAndDisplay(projectDir string) []catalog.Integration {
	w.printf("%s\n", styles.Bold.Render("Detecting existing dependencies..."))

	detected := detect.Integrations(projectDir)

	if len(detected) == 0 {
		w.printf("\n%s\n\n", styles.MutedText.Render("No matching integrations detected."))
		return detected
	}

	w.printf("\n%s Detected %d matching integration(s):\n", styles.SuccessText.Render(styles.CheckMark), len(detected))
	for _, integration := range detected {
		w.printf("  %s %s\n", styles.Bullet, integration.DisplayName)
	}
	w.printf("\n")

	return detected
}

// selectIntegrations prompts in two stages: the Recommended category first,
// then every other integration in one flat alphabetical list. Detected
// integrations come pre-checked.
func (w *Wizard) selectIntegrations(detected []catalog.Integration) ([]catalog.Integration, error) {
	detectedExtras := make(map[string]struct{}, len(detected))
	for _, integration := range detected {
		detectedExtras[integration.Extra] = struct{}{}
	}

	w.printf("%s\n\n", styles.Bold.Render("Select Logfire integrations to install:"))
	w.printf("%s\n\n", styles.MutedText.Render("Use arrow keys to navigate, space to select, enter to confirm"))

	var selected []catalog.Integration

	recommended := catalog.Recommended()
	w.printf("%s - %s\n\n", styles.Title.Render(recommended.Name), recommended.Description)

	chosen, err := w.promptCheckbox(recommended.Integrations, detectedExtras)
	if err != nil {
		return nil, err
	}
	if len(chosen) > 0 {
		selected = append(selected, chosen...)
		w.printf("\n%s Selected %d from %s\n\n", styles.SuccessText.Render(styles.CheckMark), len(chosen), recommended.Name)
	} else {
		w.printf("\n%s\n\n", styles.MutedText.Render("Skipped "+recommended.Name))
	}

	w.printf("%s - Additional framework and library instrumentation\n\n", styles.Title.Render("Other Integrations"))

	chosen, err = w.promptCheckbox(catalog.Others(), detectedExtras)
	if err != nil {
		return nil, err
	}
	if len(chosen) > 0 {
		selected = append(selected, chosen...)
		w.printf("\n%s Selected %d additional integration(s)\n\n", styles.SuccessText.Render(styles.CheckMark), len(chosen))
	} else {
		w.printf("\n%s\n\n", styles.MutedText.Render("Skipped other integrations"))
	}

	return selected, nil
}

func (w *Wizard) promptCheckbox(integrations []catalog.Integration, detectedExtras map[string]struct{}) ([]catalog.Integration, error) {
	options := make([]prompt.CheckboxOption, 0, len(integrations))
	for _, integration := range integrations {
		_, isDetected := detectedExtras[integration.Extra]

		label := integration.DisplayName + " - " + integration.Description
		if isDetected {
			label += " [DETECTED " + styles.CheckMark + "]"
		}

		options = append(options, prompt.CheckboxOption{
			Label:   label,
			Checked: isDetected,
		})
	}

	indices, err := w.prompter.Checkbox("Select integrations:", options)
	if err != nil {
		return nil, err
	}

	chosen := make([]catalog.Integration, 0, len(indices))
	for _, i := range indices {
		chosen = append(chosen, integrations[i])
	}

	return chosen, nil
}

func (w *Wizard) displaySelected(selected []catalog.Integration) {
	if len(selected) == 0 {
		w.printf("%s\n", styles.WarningText.Render("No integrations selected."))
		return
	}

	w.printf("\n%s\n", styles.Bold.Render(fmt.Sprintf("Selected %d integration(s):", len(selected))))
	for _, integration := range selected {
		w.printf("  %s %s (%s)\n", styles.Bullet, integration.DisplayName, integration.Extra)
	}
	w.printf("\n")
}

// install runs uv add and surfaces subprocess output on failure.
func (w *Wizard) install(ctx context.Context, projectDir string, extras []string) error {
	spec := installer.PackageSpec(extras)
	w.printf("\n%s\n", styles.MutedText.Render("Installing "+spec+"..."))

	result, err := w.installer.Install(ctx, projectDir, extras)
	if err != nil {
		w.printf("\n%s %v\n", styles.ErrorText.Render("Error:"), err)
		return fmt.Errorf("%w; %v", ErrInstallFailed, err)
	}
	if !result.Success() {
		if output := strings.TrimSpace(result.Stderr); output != "" {
			w.printf("\n%s\n", styles.MutedText.Render(output))
		}
		w.printf("\n%s\n", styles.ErrorText.Render("Installation failed."))
		return ErrInstallFailed
	}

	w.printf("%s Successfully installed %s\n", styles.SuccessText.Render(styles.CheckMark), spec)

	return nil
}

// checkMCP reports whether a Logfire MCP server with a read token is
// configured, printing setup guidance when it is not.
func (w *Wizard) checkMCP(projectDir, projectURL string) bool {
	w.printf("\n%s\n", styles.Bold.Render("Checking MCP configuration..."))

	result := mcp.Check(projectDir)

	switch {
	case result.Configured && result.HasReadToken:
		w.printf("%s MCP configured in %s\n", styles.SuccessText.Render(styles.CheckMark), result.ConfigPath)
		return true

	case result.Configured:
		w.printf("%s MCP configured in %s but missing %s\n",
			styles.WarningText.Render(styles.WarnMark), result.ConfigPath, mcp.ReadTokenEnvVar)
		w.printf("%s\n", styles.MutedText.Render("Create a read token at: "+mcp.ReadTokenURL(projectURL)))
		return false

	default:
		w.printf("%s MCP not configured\n", styles.WarningText.Render(styles.WarnMark))
		w.printf("%s\n\n", styles.MutedText.Render(
			"To set up Logfire MCP server, add this to your .mcp.json (or wherever you keep your MCPs):"))

		title := "Example config"
		if pathutil.Exists(filepath.Join(projectDir, ".cursor")) {
			title = ".cursor/mcp.json"
		}
		w.printf("%s\n%s\n", styles.MutedText.Render(title), styles.Panel.Render(mcp.ConfigExample("cursor")))

		w.printf("\n%s\n", styles.MutedText.Render("Create a read token at: "+mcp.ReadTokenURL(projectURL)))
		return false
	}
}

// offerInstructions previews the generated agent instructions and writes
// them on confirmation. With no integrations selected the user is asked
// whether they want instructions at all.
func (w *Wizard) offerInstructions(projectDir string, selected []catalog.Integration, mcpConfigured bool) error {
	if len(selected) == 0 {
		wanted, err := w.prompter.Confirm("Would you like to add Logfire usage instructions for AI assistants?", true)
		if err != nil {
			return err
		}
		if !wanted {
			return nil
		}
	}

	w.printf("\n%s\n", styles.Bold.Render("Logfire Usage Instructions"))

	existing, found := agentfile.Find(projectDir)
	if found {
		if strings.HasPrefix(existing, projectDir) {
			w.printf("\n%s\n", styles.MutedText.Render("Found: "+filepath.Base(existing)))
		} else {
			w.printf("\n%s\n", styles.MutedText.Render("Found: "+existing+" (outside project)"))
		}
	} else {
		w.printf("\n%s\n", styles.MutedText.Render("No AGENTS.md or CLAUDE.md found. A new AGENTS.md will be created."))
	}

	text := instructions.Generate(selected, mcpConfigured)

	w.printf("\n%s\n\n", styles.Bold.Render("Preview of instructions to be added:"))
	w.printf("%s\n", styles.Panel.Render(preview(text, previewLines)))

	question := "Create AGENTS.md with these instructions?"
	if found {
		question = "Add these instructions to " + existing + "?"
	}

	w.printf("\n")
	add, err := w.prompter.Confirm(question, false)
	if err != nil {
		return err
	}
	if !add {
		return nil
	}

	result, err := agentfile.Write(projectDir, text)
	if err != nil {
		w.logger.Warn("failed to write agent instructions", "path", result.Path, "error", err)
		w.printf("\n%s Failed to add instructions to file %s\n", styles.WarningText.Render("Warning:"), result.Path)
		return nil
	}

	switch {
	case result.Skipped:
		w.printf("\n%s Instructions already present in %s\n", styles.MutedText.Render(styles.Bullet), result.Path)
	case result.Created:
		w.printf("\n%s Created %s\n", styles.SuccessText.Render(styles.CheckMark), result.Path)
	default:
		w.printf("\n%s Updated %s\n", styles.SuccessText.Render(styles.CheckMark), result.Path)
	}

	return nil
}

func (w *Wizard) printNextSteps(authenticated bool, projectPath string) {
	w.printf("\n\n")
	w.printf("\n%s\n", styles.SuccessText.Render(styles.CheckMark+" Setup complete!"))
	w.printf("\n%s\n", styles.Bold.Render("Next steps:"))

	step := 1
	if !authenticated {
		w.printf("%d. Run `logfire auth` to authenticate\n", step)
		step++
	}
	if authenticated && projectPath == "" {
		w.printf("%d. Run `logfire projects use <org>/<project>` to select a project\n", step)
		step++
	}

	w.printf("%d. Add `logfire.configure()` to your application startup\n", step)
	w.printf("%d. Visit %s for detailed documentation\n\n", step+1, docsURL)
}

// preview returns the first n lines of text, with an elision note when
// content was cut.
func preview(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[:n], "\n") + fmt.Sprintf("\n\n... (%d more lines)", len(lines)-n)
}

func (w *Wizard) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}
