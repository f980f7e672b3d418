package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/config"
)

// RunInteractiveLogin prompts for server and token, verifies the token
// against /current-user, and persists the config.
func RunInteractiveLogin(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "server [%s]: ", api.DefaultBaseURL)
	server, _ := reader.ReadString('\n')
	server = strings.TrimSpace(server)
	if server == "" {
		server = api.DefaultBaseURL
	}

	fmt.Fprint(out, "token: ")
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is required")
	}

	client := api.NewClient(server, token)
	user, err := client.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		ServerURL: server,
		Token:     token,
		Username:  user.UserName,
		Theme:     "dark",
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s (%s)\n", color.GreenString(user.UserName), user.Role)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `crucible login` command.
func LoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Crucible server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunInteractiveLogin(os.Stdin, os.Stdout)
		},
	}
}
