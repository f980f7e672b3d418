package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruciblehq/crucible/cli/internal/api"
)

func promptServer(t *testing.T, prompts []api.Prompt) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/prompts", r.URL.Path)
		_ = json.NewEncoder(w).Encode(prompts)
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, "")
}

func TestFetchPickerItemsSkipsBlankPrimary(t *testing.T) {
	client := promptServer(t, []api.Prompt{
		{ID: 1, Name: "greeting", Text: "hello", SystemText: "be brief"},
		{ID: 2, Name: "system only", Text: "", SystemText: "be strict"},
	})

	items, err := fetchPickerItems(client, pickerUserPrompt)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hello", items[0].Text)
	assert.Equal(t, "be brief", items[0].PairedText)
}

func TestFetchPickerItemsSystemKindSwapsColumns(t *testing.T) {
	client := promptServer(t, []api.Prompt{
		{ID: 1, Name: "greeting", Text: "hello", SystemText: "be brief"},
		{ID: 2, Name: "user only", Text: "hi", SystemText: ""},
	})

	items, err := fetchPickerItems(client, pickerSystemPrompt)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "be brief", items[0].Text)
	assert.Equal(t, "hello", items[0].PairedText)
}

func TestPickerSearchesCompositeIndex(t *testing.T) {
	p := NewPickerModel(nil)
	p.open = true
	p.SetLoaded([]pickerItem{
		{ID: 1, Text: "hello there", index: "greeting hello there be brief"},
		{ID: 2, Text: "what is the capital", index: "geography what is the capital answer factually"},
	})
	require.Len(t, p.matches, 2)

	// The query matches the paired system text, not the visible primary.
	for _, r := range "factually" {
		p.HandleKey(keyMsg(string(r)))
	}
	require.Len(t, p.matches, 1)
	assert.Equal(t, 2, p.matches[0].ID)

	p.HandleKey(keyMsg("ctrl+u"))
	assert.Len(t, p.matches, 2)
}

func TestPickerEnterDeliversChoiceAndCloses(t *testing.T) {
	p := NewPickerModel(nil)
	p.open = true
	p.SetLoaded([]pickerItem{
		{ID: 7, Text: "hello", PairedText: "be brief", index: "hello be brief"},
	})

	choice, closed := p.HandleKey(keyMsg("enter"))
	require.NotNil(t, choice)
	assert.True(t, closed)
	assert.Equal(t, 7, choice.ID)
	assert.Equal(t, "hello", choice.Text)
	assert.Equal(t, "be brief", choice.PairedText)
	assert.False(t, p.open)
	assert.Nil(t, p.items)
}

func TestPickerEscCloses(t *testing.T) {
	p := NewPickerModel(nil)
	p.open = true
	p.SetLoaded([]pickerItem{{ID: 1, Text: "hello", index: "hello"}})

	choice, closed := p.HandleKey(keyMsg("esc"))
	assert.Nil(t, choice)
	assert.True(t, closed)
	assert.False(t, p.open)
}

func TestPickerApplyDualPopulatesHostForm(t *testing.T) {
	probe := &catalogProbe{}
	m := newTestCatalog("admin", probe)
	m.cfg.fields[0].Picker = pickerUserPrompt
	m.cfg.fields[0].PickerApply = func(values map[string]string, choice pickerChoice) {
		values["name"] = choice.Text
		if choice.PairedText != "" {
			values["description"] = choice.PairedText
		}
	}
	m, _ = m.Update(catalogLoadedMsg{entity: "targets", items: nil})
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))

	m.picker.open = true
	m.picker.SetLoaded([]pickerItem{
		{ID: 3, Text: "primary text", PairedText: "paired text", index: "primary text paired text"},
	})
	m, _ = m.Update(keyMsg("enter"))

	assert.Equal(t, "primary text", m.formVals["name"])
	assert.Equal(t, "paired text", m.formVals["description"])
	assert.False(t, m.picker.open)
}
