package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/config"
	"github.com/cruciblehq/crucible/cli/internal/permissions"
)

// RunWhoami prints the signed-in identity and its capability set.
func RunWhoami(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	client := api.NewClient(cfg.Server(), cfg.Token)

	user, err := client.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}

	fmt.Fprintf(out, "user:   %s\n", color.GreenString(user.UserName))
	fmt.Fprintf(out, "role:   %s\n", user.Role)
	fmt.Fprintf(out, "server: %s\n", cfg.Server())

	perms := permissions.ForRole(user.Role)
	fmt.Fprintln(out, "capabilities:")
	fmt.Fprintf(out, "  add tables:     %s\n", yesNoPlain(perms.CanAddTable))
	fmt.Fprintf(out, "  update tables:  %s\n", yesNoPlain(perms.CanUpdateTable))
	fmt.Fprintf(out, "  delete:         %s\n", yesNoPlain(perms.CanDeleteTable))
	fmt.Fprintf(out, "  add records:    %s\n", yesNoPlain(perms.CanAddRecord))
	fmt.Fprintf(out, "  update records: %s\n", yesNoPlain(perms.CanUpdateRecord))
	fmt.Fprintf(out, "  export data:    %s\n", yesNoPlain(perms.CanExportData))
	return nil
}

func yesNoPlain(v bool) string {
	if v {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// WhoamiCmd returns the `crucible whoami` command.
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and capabilities",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunWhoami(os.Stdout)
		},
	}
}
