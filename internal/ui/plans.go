package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

var planStatusOptions = []string{"draft", "active", "completed", "archived"}

func newPlansCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:   "test-plans",
		title:    "Test Plans",
		itemNoun: "test plan",
		pageSize: 15,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
			{Key: "target_name", Label: "Target", Kind: fieldSelect, LoadOptions: targetOptions},
			{Key: "metric_names", Label: "Metrics", Kind: fieldMulti, LoadOptions: metricOptions},
			{Key: "status", Label: "Status", Kind: fieldSelect, Required: true, Options: planStatusOptions},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListTestPlans()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, p := range items {
				out[i] = record{
					id:   p.ID,
					name: p.Name,
					values: map[string]string{
						"name":         p.Name,
						"description":  p.Description,
						"target_name":  p.TargetName,
						"metric_names": joinNames(p.MetricNames),
						"status":       p.Status,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateTestPlan(api.CreateTestPlanInput{
				Name:        strings.TrimSpace(v["name"]),
				Description: v["description"],
				TargetName:  v["target_name"],
				MetricNames: splitNames(v["metric_names"]),
				Status:      v["status"],
				Notes:       notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateTestPlanInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			if v, ok := changed["target_name"]; ok {
				in.TargetName = &v
			}
			if v, ok := changed["metric_names"]; ok {
				names := splitNames(v)
				in.MetricNames = &names
			}
			if v, ok := changed["status"]; ok {
				in.Status = &v
			}
			return c.UpdateTestPlan(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteTestPlan(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func targetOptions(c *api.Client) ([]string, error) {
	targets, err := c.ListTargets()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(targets)+1)
	names = append(names, "")
	for _, t := range targets {
		names = append(names, t.Name)
	}
	return names, nil
}

func metricOptions(c *api.Client) ([]string, error) {
	metrics, err := c.ListMetrics()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
	}
	return names, nil
}
