package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

// The reference tables (domains, strategies, metrics, languages) share
// one small shape: a name, a couple of descriptive columns, and the
// table-level permission gates.

func newDomainsCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:     "domains",
		title:      "Domains",
		itemNoun:   "domain",
		pageSize:   15,
		tableLevel: true,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListDomains()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, d := range items {
				out[i] = record{
					id:   d.ID,
					name: d.Name,
					values: map[string]string{
						"name":        d.Name,
						"description": d.Description,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateDomain(api.CreateDomainInput{
				Name:        strings.TrimSpace(v["name"]),
				Description: v["description"],
				Notes:       notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateDomainInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			return c.UpdateDomain(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteDomain(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func newStrategiesCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:     "strategies",
		title:      "Strategies",
		itemNoun:   "strategy",
		pageSize:   15,
		tableLevel: true,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
			{Key: "requires_llm_prompt", Label: "Requires Judge Prompt", Kind: fieldBool},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListStrategies()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, s := range items {
				requires := "false"
				if s.RequiresLLMPrompt {
					requires = "true"
				}
				out[i] = record{
					id:   s.ID,
					name: s.Name,
					values: map[string]string{
						"name":                s.Name,
						"description":         s.Description,
						"requires_llm_prompt": requires,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateStrategy(api.CreateStrategyInput{
				Name:              strings.TrimSpace(v["name"]),
				Description:       v["description"],
				RequiresLLMPrompt: v["requires_llm_prompt"] == "true",
				Notes:             notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateStrategyInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			if v, ok := changed["requires_llm_prompt"]; ok {
				requires := v == "true"
				in.RequiresLLMPrompt = &requires
			}
			return c.UpdateStrategy(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteStrategy(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func newMetricsCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:     "metrics",
		title:      "Metrics",
		itemNoun:   "metric",
		pageSize:   15,
		tableLevel: true,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
			{Key: "domain_name", Label: "Domain", Kind: fieldSelect, LoadOptions: optionalDomainOptions},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListMetrics()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, mt := range items {
				out[i] = record{
					id:   mt.ID,
					name: mt.Name,
					values: map[string]string{
						"name":        mt.Name,
						"description": mt.Description,
						"domain_name": mt.DomainName,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateMetric(api.CreateMetricInput{
				Name:        strings.TrimSpace(v["name"]),
				Description: v["description"],
				DomainName:  v["domain_name"],
				Notes:       notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateMetricInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			if v, ok := changed["domain_name"]; ok {
				in.DomainName = &v
			}
			return c.UpdateMetric(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteMetric(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func newLanguagesCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:     "languages",
		title:      "Languages",
		itemNoun:   "language",
		pageSize:   100,
		tableLevel: true,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "code", Label: "Code", Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListLanguages()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, l := range items {
				out[i] = record{
					id:   l.ID,
					name: l.Name,
					values: map[string]string{
						"name": l.Name,
						"code": l.Code,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateLanguage(api.CreateLanguageInput{
				Name:  strings.TrimSpace(v["name"]),
				Code:  v["code"],
				Notes: notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateLanguageInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["code"]; ok {
				in.Code = &v
			}
			return c.UpdateLanguage(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteLanguage(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}
