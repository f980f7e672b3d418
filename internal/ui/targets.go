package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

func newTargetsCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:   "targets",
		title:    "Targets",
		itemNoun: "target",
		pageSize: 15,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "url", Label: "URL", Required: true, Searchable: true},
			{Key: "domain_name", Label: "Domain", Kind: fieldSelect, LoadOptions: optionalDomainOptions},
			{Key: "language_names", Label: "Languages", Kind: fieldMulti, LoadOptions: languageOptions},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListTargets()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, t := range items {
				out[i] = record{
					id:   t.ID,
					name: t.Name,
					values: map[string]string{
						"name":           t.Name,
						"url":            t.URL,
						"domain_name":    t.DomainName,
						"language_names": joinNames(t.LanguageNames),
						"description":    t.Description,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateTarget(api.CreateTargetInput{
				Name:          strings.TrimSpace(v["name"]),
				URL:           v["url"],
				DomainName:    v["domain_name"],
				LanguageNames: splitNames(v["language_names"]),
				Description:   v["description"],
				Notes:         notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateTargetInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["url"]; ok {
				in.URL = &v
			}
			if v, ok := changed["domain_name"]; ok {
				in.DomainName = &v
			}
			if v, ok := changed["language_names"]; ok {
				names := splitNames(v)
				in.LanguageNames = &names
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			return c.UpdateTarget(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteTarget(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func optionalDomainOptions(c *api.Client) ([]string, error) {
	opts, err := domainOptions(c)
	if err != nil {
		return nil, err
	}
	return withBlank(opts), nil
}
