package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/config"
	"github.com/cruciblehq/crucible/cli/internal/permissions"
)

// exportCollections maps collection names to their header and row
// extractor.
var exportCollections = map[string]func(c *api.Client) (table.Row, []table.Row, error){
	"test-cases": func(c *api.Client) (table.Row, []table.Row, error) {
		items, err := c.ListTestCases()
		if err != nil {
			return nil, nil, err
		}
		header := table.Row{"ID", "Name", "Strategy", "Domain", "Language", "Source", "Benchmark"}
		rows := make([]table.Row, 0, len(items))
		for _, t := range items {
			rows = append(rows, table.Row{t.ID, t.Name, t.StrategyName, t.DomainName, t.LanguageName, t.Source, t.Benchmark})
		}
		return header, rows, nil
	},
	"prompts": func(c *api.Client) (table.Row, []table.Row, error) {
		items, err := c.ListPrompts()
		if err != nil {
			return nil, nil, err
		}
		header := table.Row{"ID", "Name", "Language", "Description"}
		rows := make([]table.Row, 0, len(items))
		for _, p := range items {
			rows = append(rows, table.Row{p.ID, p.Name, p.LanguageName, p.Description})
		}
		return header, rows, nil
	},
	"responses": func(c *api.Client) (table.Row, []table.Row, error) {
		items, err := c.ListResponses()
		if err != nil {
			return nil, nil, err
		}
		header := table.Row{"ID", "Name", "Type", "Language", "Source"}
		rows := make([]table.Row, 0, len(items))
		for _, r := range items {
			rows = append(rows, table.Row{r.ID, r.Name, r.ResponseType, r.LanguageName, r.Source})
		}
		return header, rows, nil
	},
	"targets": func(c *api.Client) (table.Row, []table.Row, error) {
		items, err := c.ListTargets()
		if err != nil {
			return nil, nil, err
		}
		header := table.Row{"ID", "Name", "URL", "Languages", "Description"}
		rows := make([]table.Row, 0, len(items))
		for _, t := range items {
			rows = append(rows, table.Row{t.ID, t.Name, t.URL, strings.Join(t.LanguageNames, ", "), t.Description})
		}
		return header, rows, nil
	},
	"test-plans": func(c *api.Client) (table.Row, []table.Row, error) {
		items, err := c.ListTestPlans()
		if err != nil {
			return nil, nil, err
		}
		header := table.Row{"ID", "Name", "Status", "Target", "Metrics"}
		rows := make([]table.Row, 0, len(items))
		for _, p := range items {
			rows = append(rows, table.Row{p.ID, p.Name, p.Status, p.TargetName, strings.Join(p.MetricNames, ", ")})
		}
		return header, rows, nil
	},
}

func exportCollectionNames() []string {
	names := make([]string, 0, len(exportCollections))
	for name := range exportCollections {
		names = append(names, name)
	}
	return names
}

// RunExport writes one collection as a rendered table or CSV. The
// server also enforces the export capability; checking here just gives
// a friendlier error.
func RunExport(out io.Writer, collection, format string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	client := api.NewClient(cfg.Server(), cfg.Token)

	user, err := client.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("current user: %w", err)
	}
	if !permissions.ForRole(user.Role).CanExportData {
		return fmt.Errorf("role %q may not export data", user.Role)
	}

	fetch, ok := exportCollections[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q (one of: %s)", collection, strings.Join(exportCollectionNames(), ", "))
	}

	header, rows, err := fetch(client)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", collection, err)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	if format == "csv" {
		tw.RenderCSV()
	} else {
		tw.Render()
	}
	return nil
}

// ExportCmd returns the `crucible export` command.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "Export a collection as a table or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return RunExport(os.Stdout, args[0], viper.GetString("export-format"))
		},
	}
	cmd.Flags().String("format", "table", "output format: table or csv")
	_ = viper.BindPFlag("export-format", cmd.Flags().Lookup("format"))
	viper.SetEnvPrefix("CRUCIBLE")
	viper.AutomaticEnv()
	return cmd
}
