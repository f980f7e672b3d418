package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

func newPromptsCatalog(client *api.Client, sess *session.Session) CatalogModel {
	cfg := catalogConfig{
		entity:   "prompts",
		title:    "Prompts",
		itemNoun: "prompt",
		pageSize: 20,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "text", Label: "Text", Kind: fieldMultiline, Required: true, Searchable: true},
			{Key: "system_text", Label: "System Text", Kind: fieldMultiline},
			{Key: "language_name", Label: "Language", Kind: fieldSelect, LoadOptions: optionalLanguageOptions},
			{Key: "description", Label: "Description", Kind: fieldMultiline, Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListPrompts()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, p := range items {
				out[i] = record{
					id:   p.ID,
					name: p.Name,
					values: map[string]string{
						"name":          p.Name,
						"text":          p.Text,
						"system_text":   p.SystemText,
						"language_name": p.LanguageName,
						"description":   p.Description,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreatePrompt(api.CreatePromptInput{
				Name:         strings.TrimSpace(v["name"]),
				Text:         v["text"],
				SystemText:   v["system_text"],
				LanguageName: v["language_name"],
				Description:  v["description"],
				Notes:        notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdatePromptInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["text"]; ok {
				in.Text = &v
			}
			if v, ok := changed["system_text"]; ok {
				in.SystemText = &v
			}
			if v, ok := changed["language_name"]; ok {
				in.LanguageName = &v
			}
			if v, ok := changed["description"]; ok {
				in.Description = &v
			}
			return c.UpdatePrompt(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeletePrompt(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func optionalLanguageOptions(c *api.Client) ([]string, error) {
	opts, err := languageOptions(c)
	if err != nil {
		return nil, err
	}
	return withBlank(opts), nil
}
