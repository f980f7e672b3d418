package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruciblehq/crucible/cli/internal/api"
)

// testCaseBackend fakes the endpoints the test case tab touches and
// captures the create and update payloads verbatim.
func testCaseBackend(t *testing.T) (*api.Client, *[]byte, *[]byte) {
	t.Helper()
	var createBody, updateBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/strategies":
			_ = json.NewEncoder(w).Encode([]api.Strategy{
				{ID: 1, Name: "exact-match", RequiresLLMPrompt: false},
				{ID: 2, Name: "llm-judged", RequiresLLMPrompt: true},
			})
		case r.URL.Path == "/domains":
			_ = json.NewEncoder(w).Encode([]api.Domain{{ID: 1, Name: "safety"}})
		case r.URL.Path == "/languages":
			_ = json.NewEncoder(w).Encode([]api.Language{{ID: 1, Name: "en"}})
		case r.URL.Path == "/test-cases" && r.Method == http.MethodPost:
			createBody, _ = io.ReadAll(r.Body)
			_ = json.NewEncoder(w).Encode(api.TestCase{ID: 42, Name: "T1"})
		case strings.HasPrefix(r.URL.Path, "/test-cases/") && r.Method == http.MethodPut:
			updateBody, _ = io.ReadAll(r.Body)
			_ = json.NewEncoder(w).Encode(api.TestCase{ID: 42, Name: "T1"})
		case r.URL.Path == "/test-cases":
			_ = json.NewEncoder(w).Encode([]api.TestCase{})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, "tok"), &createBody, &updateBody
}

// loadStrategyOptions runs the strategy option source the way the app
// does, so the requires-judge table is populated before form use.
func loadStrategyOptions(t *testing.T, m CatalogModel, client *api.Client) CatalogModel {
	t.Helper()
	for _, f := range m.cfg.fields {
		if f.Key != "strategy_name" {
			continue
		}
		opts, err := f.LoadOptions(client)
		require.NoError(t, err)
		m, _ = m.Update(catalogOptionsMsg{entity: "test-cases", key: "strategy_name", options: opts})
		return m
	}
	t.Fatal("no strategy field")
	return m
}

func TestTestCasesJudgePromptHiddenUnlessStrategyRequiresIt(t *testing.T) {
	client, _, _ := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))
	m = loadStrategyOptions(t, m, client)
	m, _ = m.Update(catalogLoadedMsg{entity: "test-cases", items: nil})

	m.startAdd()
	require.Equal(t, "exact-match", m.formVals["strategy_name"])

	for _, f := range m.visibleFields() {
		assert.NotEqual(t, "llm_judge_prompt", f.Key)
	}

	m.formVals["strategy_name"] = "llm-judged"
	keys := make(map[string]bool)
	for _, f := range m.visibleFields() {
		keys[f.Key] = true
	}
	assert.True(t, keys["llm_judge_prompt"])
}

func TestTestCasesJudgePromptRequiredWhenStrategyNeedsIt(t *testing.T) {
	client, _, _ := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))
	m = loadStrategyOptions(t, m, client)

	m.startAdd()
	m.formVals["strategy_name"] = "llm-judged"

	errs := validateForm(m.visibleFields(), m.formVals)
	assert.Equal(t, "Judge Prompt is required", errs["llm_judge_prompt"])
}

func TestTestCasesCreateSendsNullJudgeWhenNotRequired(t *testing.T) {
	client, captured, _ := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))
	m = loadStrategyOptions(t, m, client)

	values := map[string]string{
		"name":          "T1",
		"user_prompts":  "hello",
		"strategy_name": "exact-match",
		"domain_name":   "safety",
		"language_name": "en",
	}
	require.NoError(t, m.cfg.create(client, values, "init"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(*captured, &payload))
	judge, present := payload["llm_judge_prompt"]
	assert.True(t, present)
	assert.Nil(t, judge)
	assert.Equal(t, "T1", payload["name"])
	assert.Equal(t, "init", payload["notes"])
}

func TestTestCasesCreateSendsJudgeTextWhenFilled(t *testing.T) {
	client, captured, _ := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))
	m = loadStrategyOptions(t, m, client)

	values := map[string]string{
		"name":             "T2",
		"user_prompts":     "hello",
		"strategy_name":    "llm-judged",
		"domain_name":      "safety",
		"language_name":    "en",
		"llm_judge_prompt": "grade 1-5",
	}
	require.NoError(t, m.cfg.create(client, values, "init"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(*captured, &payload))
	assert.Equal(t, "grade 1-5", payload["llm_judge_prompt"])
}

func TestTestCasesUserPromptPickerFillsPairedSystemPrompt(t *testing.T) {
	client, _, _ := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))

	var userPromptField fieldSpec
	for _, f := range m.cfg.fields {
		if f.Key == "user_prompts" {
			userPromptField = f
		}
	}
	require.NotNil(t, userPromptField.PickerApply)

	values := map[string]string{}
	userPromptField.PickerApply(values, pickerChoice{
		Text:       "growing rice during monsoon",
		PairedText: "answer as an agronomist",
	})
	assert.Equal(t, "growing rice during monsoon", values["user_prompts"])
	assert.Equal(t, "answer as an agronomist", values["system_prompts"])

	// a prompt without a system half leaves the field alone
	values = map[string]string{"system_prompts": "keep"}
	userPromptField.PickerApply(values, pickerChoice{Text: "plain"})
	assert.Equal(t, "keep", values["system_prompts"])
}

func TestTestCasesEditClearsJudgeWithExplicitNull(t *testing.T) {
	client, _, updated := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))

	changed := map[string]string{
		"strategy_name":    "exact-match",
		"llm_judge_prompt": "",
	}
	require.NoError(t, m.cfg.update(client, 42, changed, "strategy change"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(*updated, &payload))
	judge, present := payload["llm_judge_prompt"]
	assert.True(t, present)
	assert.Nil(t, judge)
	assert.Equal(t, "exact-match", payload["strategy_name"])
}

func TestTestCasesEditSendsJudgeTextWhenChanged(t *testing.T) {
	client, _, updated := testCaseBackend(t)
	m := newTestCasesCatalog(client, sessionFor("curator"))

	changed := map[string]string{"llm_judge_prompt": "grade 1-5"}
	require.NoError(t, m.cfg.update(client, 42, changed, "tighten rubric"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(*updated, &payload))
	assert.Equal(t, "grade 1-5", payload["llm_judge_prompt"])
	assert.NotContains(t, payload, "name")
}
