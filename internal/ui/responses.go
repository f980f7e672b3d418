package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

var responseTypeOptions = []string{"", "ideal", "acceptable", "refusal", "unsafe"}

// newResponsesCatalog wires the response collection. Type and language
// only become mandatory once the response carries text.
func newResponsesCatalog(client *api.Client, sess *session.Session) CatalogModel {
	hasText := func(values map[string]string) bool {
		return strings.TrimSpace(values["text"]) != ""
	}

	cfg := catalogConfig{
		entity:   "responses",
		title:    "Responses",
		itemNoun: "response",
		pageSize: 20,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{Key: "text", Label: "Text", Kind: fieldMultiline, Searchable: true},
			{Key: "response_type", Label: "Type", Kind: fieldSelect, Options: responseTypeOptions, RequiredWhen: hasText},
			{Key: "language_name", Label: "Language", Kind: fieldSelect, LoadOptions: optionalLanguageOptions, RequiredWhen: hasText},
			{Key: "source", Label: "Source", Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListResponses()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, r := range items {
				out[i] = record{
					id:   r.ID,
					name: r.Name,
					values: map[string]string{
						"name":          r.Name,
						"text":          r.Text,
						"response_type": r.ResponseType,
						"language_name": r.LanguageName,
						"source":        r.Source,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateResponse(api.CreateResponseInput{
				Name:         strings.TrimSpace(v["name"]),
				Text:         v["text"],
				ResponseType: v["response_type"],
				LanguageName: v["language_name"],
				Source:       v["source"],
				Notes:        notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateResponseInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["text"]; ok {
				in.Text = &v
			}
			if v, ok := changed["response_type"]; ok {
				in.ResponseType = &v
			}
			if v, ok := changed["language_name"]; ok {
				in.LanguageName = &v
			}
			if v, ok := changed["source"]; ok {
				in.Source = &v
			}
			return c.UpdateResponse(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteResponse(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}
