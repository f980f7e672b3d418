package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFormFlagsRequiredFields(t *testing.T) {
	fields := []fieldSpec{
		{Key: "name", Label: "Name", Required: true},
		{Key: "description", Label: "Description"},
	}
	errs := validateForm(fields, map[string]string{"name": "   "})
	assert.Equal(t, "Name is required", errs["name"])
	assert.NotContains(t, errs, "description")

	errs = validateForm(fields, map[string]string{"name": "alpha"})
	assert.Empty(t, errs)
}

func TestValidateFormConditionalRequirement(t *testing.T) {
	fields := []fieldSpec{
		{Key: "text", Label: "Text"},
		{
			Key: "language_name", Label: "Language",
			RequiredWhen: func(values map[string]string) bool {
				return values["text"] != ""
			},
		},
	}

	errs := validateForm(fields, map[string]string{"text": "", "language_name": ""})
	assert.Empty(t, errs)

	errs = validateForm(fields, map[string]string{"text": "bonjour", "language_name": ""})
	assert.Equal(t, "Language is required", errs["language_name"])
}

func TestOmittedFieldIsNeverRequired(t *testing.T) {
	f := fieldSpec{
		Key: "llm_judge_prompt", Label: "Judge Prompt", Required: true,
		OmitWhen: func(values map[string]string) bool {
			return values["strategy_name"] != "llm-judged"
		},
	}
	assert.False(t, f.required(map[string]string{"strategy_name": "exact-match"}))
	assert.True(t, f.required(map[string]string{"strategy_name": "llm-judged"}))
}

func TestDiffFormReportsOnlyChangedFields(t *testing.T) {
	fields := []fieldSpec{
		{Key: "name", Label: "Name"},
		{Key: "url", Label: "URL"},
		{Key: "description", Label: "Description"},
	}
	orig := map[string]string{"name": "gpt-x", "url": "https://a", "description": "old"}
	cur := map[string]string{"name": "gpt-x", "url": "https://b", "description": "old"}

	changes := diffForm(fields, orig, cur)
	assert.Len(t, changes, 1)
	assert.Equal(t, "url", changes[0].Key)
	assert.Equal(t, "https://a", changes[0].Old)
	assert.Equal(t, "https://b", changes[0].New)
}

func TestDiffFormTreatsOmittedAsEmpty(t *testing.T) {
	fields := []fieldSpec{
		{Key: "strategy_name", Label: "Strategy"},
		{
			Key: "llm_judge_prompt", Label: "Judge Prompt",
			OmitWhen: func(values map[string]string) bool {
				return values["strategy_name"] != "llm-judged"
			},
		},
	}
	orig := map[string]string{"strategy_name": "llm-judged", "llm_judge_prompt": "grade it"}
	cur := map[string]string{"strategy_name": "exact-match", "llm_judge_prompt": "grade it"}

	changes := diffForm(fields, orig, cur)
	assert.Len(t, changes, 2)
	changed := changedValues(changes)
	assert.Equal(t, "exact-match", changed["strategy_name"])
	assert.Equal(t, "", changed["llm_judge_prompt"])
}

func TestMatchesFilterIsCaseInsensitiveSubstring(t *testing.T) {
	fields := []fieldSpec{
		{Key: "text", Label: "Text", Searchable: true},
		{Key: "url", Label: "URL"},
	}
	r := record{name: "French Safety", values: map[string]string{
		"text": "Je ne peux pas",
		"url":  "https://example.com/hidden",
	}}

	assert.True(t, matchesFilter(fields, r, "SAFETY"))
	assert.True(t, matchesFilter(fields, r, "peux"))
	assert.True(t, matchesFilter(fields, r, "  french "))
	assert.False(t, matchesFilter(fields, r, "hidden"))
	assert.False(t, matchesFilter(fields, r, "german"))
	assert.True(t, matchesFilter(fields, r, ""))
}

func TestSplitJoinNames(t *testing.T) {
	assert.Nil(t, splitNames("  "))
	assert.Equal(t, []string{"en", "fr"}, splitNames("en, fr"))
	assert.Equal(t, []string{"en", "fr"}, splitNames("en,,fr, "))
	assert.Equal(t, "en, fr", joinNames([]string{"en", "fr"}))
}

func TestToggleName(t *testing.T) {
	list := toggleName(nil, "en")
	assert.Equal(t, []string{"en"}, list)
	list = toggleName(list, "fr")
	assert.Equal(t, []string{"en", "fr"}, list)
	list = toggleName(list, "en")
	assert.Equal(t, []string{"fr"}, list)
}
