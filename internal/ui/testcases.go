package ui

import (
	"encoding/json"
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

// newTestCasesCatalog wires the test case collection. The judge prompt
// field only exists while the chosen strategy calls for one; flipping
// the strategy back clears it from the payload.
func newTestCasesCatalog(client *api.Client, sess *session.Session) CatalogModel {
	// Filled when the strategy options load; reads happen after the
	// options message is delivered.
	requiresJudge := map[string]bool{}

	strategyOptions := func(c *api.Client) ([]string, error) {
		strategies, err := c.ListStrategies()
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(strategies))
		for _, s := range strategies {
			requiresJudge[s.Name] = s.RequiresLLMPrompt
			names = append(names, s.Name)
		}
		return names, nil
	}

	judgeOmitted := func(values map[string]string) bool {
		return !requiresJudge[values["strategy_name"]]
	}

	cfg := catalogConfig{
		entity:   "test-cases",
		title:    "Test Cases",
		itemNoun: "test case",
		pageSize: 15,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Required: true, Searchable: true},
			{
				Key: "user_prompts", Label: "User Prompts", Kind: fieldMultiline,
				Required: true, Searchable: true, Picker: pickerUserPrompt,
				PickerApply: func(values map[string]string, choice pickerChoice) {
					values["user_prompts"] = choice.Text
					if choice.PairedText != "" {
						values["system_prompts"] = choice.PairedText
					}
				},
			},
			{Key: "system_prompts", Label: "System Prompts", Kind: fieldMultiline, Picker: pickerSystemPrompt},
			{Key: "expected_response", Label: "Expected Response", Kind: fieldMultiline, Picker: pickerResponse},
			{Key: "strategy_name", Label: "Strategy", Kind: fieldSelect, Required: true, LoadOptions: strategyOptions},
			{Key: "domain_name", Label: "Domain", Kind: fieldSelect, Required: true, LoadOptions: domainOptions},
			{Key: "language_name", Label: "Language", Kind: fieldSelect, Required: true, LoadOptions: languageOptions},
			{
				Key: "llm_judge_prompt", Label: "Judge Prompt", Kind: fieldMultiline,
				OmitWhen: judgeOmitted, Picker: pickerLLM,
				RequiredWhen: func(values map[string]string) bool { return !judgeOmitted(values) },
			},
			{Key: "source", Label: "Source", Searchable: true},
			{Key: "benchmark", Label: "Benchmark", Searchable: true},
			{Key: "url", Label: "URL"},
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListTestCases()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, t := range items {
				out[i] = testCaseRecord(t)
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			in := api.CreateTestCaseInput{
				Name:             strings.TrimSpace(v["name"]),
				UserPrompts:      v["user_prompts"],
				SystemPrompts:    v["system_prompts"],
				ExpectedResponse: v["expected_response"],
				StrategyName:     v["strategy_name"],
				DomainName:       v["domain_name"],
				LanguageName:     v["language_name"],
				Source:           v["source"],
				Benchmark:        v["benchmark"],
				URL:              v["url"],
				Notes:            notes,
			}
			if judge := v["llm_judge_prompt"]; strings.TrimSpace(judge) != "" {
				in.LLMJudgePrompt = &judge
			}
			_, err := c.CreateTestCase(in)
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateTestCaseInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.Name = &v
			}
			if v, ok := changed["user_prompts"]; ok {
				in.UserPrompts = &v
			}
			if v, ok := changed["system_prompts"]; ok {
				in.SystemPrompts = &v
			}
			if v, ok := changed["expected_response"]; ok {
				in.ExpectedResponse = &v
			}
			if v, ok := changed["strategy_name"]; ok {
				in.StrategyName = &v
			}
			if v, ok := changed["domain_name"]; ok {
				in.DomainName = &v
			}
			if v, ok := changed["language_name"]; ok {
				in.LanguageName = &v
			}
			if v, ok := changed["llm_judge_prompt"]; ok {
				if strings.TrimSpace(v) == "" {
					// Cleared by a strategy flip: an explicit null, not "".
					in.LLMJudgePrompt = json.RawMessage("null")
				} else {
					raw, _ := json.Marshal(v)
					in.LLMJudgePrompt = raw
				}
			}
			if v, ok := changed["source"]; ok {
				in.Source = &v
			}
			if v, ok := changed["benchmark"]; ok {
				in.Benchmark = &v
			}
			if v, ok := changed["url"]; ok {
				in.URL = &v
			}
			return c.UpdateTestCase(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteTestCase(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}

func testCaseRecord(t api.TestCase) record {
	return record{
		id:   t.ID,
		name: t.Name,
		values: map[string]string{
			"name":              t.Name,
			"user_prompts":      t.UserPrompts,
			"system_prompts":    t.SystemPrompts,
			"expected_response": t.ExpectedResponse,
			"strategy_name":     t.StrategyName,
			"domain_name":       t.DomainName,
			"language_name":     t.LanguageName,
			"llm_judge_prompt":  t.LLMJudgePrompt,
			"source":            t.Source,
			"benchmark":         t.Benchmark,
			"url":               t.URL,
		},
	}
}

// domainOptions and languageOptions are shared by several catalogs.

func domainOptions(c *api.Client) ([]string, error) {
	domains, err := c.ListDomains()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Name
	}
	return names, nil
}

func languageOptions(c *api.Client) ([]string, error) {
	languages, err := c.ListLanguages()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = l.Name
	}
	return names, nil
}

// withBlank prepends an empty choice for optional selects.
func withBlank(opts []string) []string {
	return append([]string{""}, opts...)
}
