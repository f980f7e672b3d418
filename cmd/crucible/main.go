package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/cmd"
	"github.com/cruciblehq/crucible/cli/internal/config"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui"
)

func main() {
	root := &cobra.Command{
		Use:   "crucible",
		Short: "Crucible - evaluation test data console",
		Long:  "Crucible CLI: curate test cases, prompts, responses, targets, and test plans for model evaluation.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.WhoamiCmd())
	root.AddCommand(cmd.ExportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
				fmt.Println("not logged in. run 'crucible login' first.")
				return err
			}
			cfg = nil
		} else {
			return err
		}
	}

	server := api.DefaultBaseURL
	token := ""
	if cfg != nil {
		if cfg.Server() != "" {
			server = cfg.Server()
		}
		token = cfg.Token
	}
	client := api.NewClient(server, token)

	sess := session.Anonymous()
	if user, err := client.GetCurrentUser(); err == nil {
		sess = session.FromCurrentUser(user)
	}

	app := ui.NewApp(client, cfg, sess)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
