package ui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/permissions"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

func stripView(s string) string {
	return components.SanitizeText(s)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m CatalogModel, text string) (CatalogModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range text {
		m, cmd = m.Update(keyMsg(string(r)))
	}
	return m, cmd
}

func sessionFor(role string) *session.Session {
	return &session.Session{
		Username: "cora",
		Role:     role,
		Perms:    permissions.ForRole(role),
	}
}

// catalogProbe records the api calls a test catalog makes.
type catalogProbe struct {
	items   []record
	loadErr error

	createdValues map[string]string
	createdNotes  string
	createErr     error

	updatedID      int
	updatedChanged map[string]string
	updatedNotes   string

	removedID int
	removeErr error
}

func newTestCatalog(role string, probe *catalogProbe) CatalogModel {
	cfg := catalogConfig{
		entity:   "targets",
		title:    "Targets",
		itemNoun: "target",
		pageSize: 10,
		fields: []fieldSpec{
			{Key: "name", Label: "Name", Kind: fieldText, Required: true, Searchable: true},
			{Key: "url", Label: "URL", Kind: fieldText, Required: true},
			{Key: "description", Label: "Description", Kind: fieldText, Searchable: true},
		},
		load: func(c *api.Client) ([]record, error) {
			return probe.items, probe.loadErr
		},
		create: func(c *api.Client, values map[string]string, notes string) error {
			if probe.createErr != nil {
				return probe.createErr
			}
			probe.createdValues = values
			probe.createdNotes = notes
			return nil
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			probe.updatedID = id
			probe.updatedChanged = changed
			probe.updatedNotes = notes
			return nil
		},
		remove: func(c *api.Client, id int) error {
			if probe.removeErr != nil {
				return probe.removeErr
			}
			probe.removedID = id
			return nil
		},
	}
	return NewCatalogModel(nil, sessionFor(role), cfg)
}

func loadedModel(role string, probe *catalogProbe) CatalogModel {
	m := newTestCatalog(role, probe)
	m, _ = m.Update(catalogLoadedMsg{entity: "targets", items: probe.items})
	return m
}

func targetRecord(id int, name, url, desc string) record {
	return record{id: id, name: name, values: map[string]string{
		"name": name, "url": url, "description": desc,
	}}
}

func TestCatalogFilterNarrowsAndClears(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
		targetRecord(2, "claude-beta", "https://b", "general"),
		targetRecord(3, "Alpha Legacy", "https://c", "retired"),
	}}
	m := loadedModel("admin", probe)
	require.Len(t, m.items, 3)

	m, _ = typeText(m, "alpha")
	assert.Len(t, m.items, 2)
	assert.Equal(t, "gpt-alpha", m.items[0].name)
	assert.Equal(t, "Alpha Legacy", m.items[1].name)

	m, _ = m.Update(keyMsg("esc"))
	assert.Empty(t, m.filterBuf)
	assert.Len(t, m.items, 3)
}

func TestCatalogFilterMatchesSearchableFieldOnly(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "one", "https://secret", "plain"),
		targetRecord(2, "two", "https://b", "secret handshake"),
	}}
	m := loadedModel("admin", probe)

	// url is not searchable, description is
	m, _ = typeText(m, "secret")
	require.Len(t, m.items, 1)
	assert.Equal(t, "two", m.items[0].name)
}

func TestCatalogPaginationBounds(t *testing.T) {
	var items []record
	for i := 1; i <= 25; i++ {
		items = append(items, targetRecord(i, fmt.Sprintf("target-%02d", i), "https://x", ""))
	}
	probe := &catalogProbe{items: items}
	m := loadedModel("admin", probe)

	assert.Equal(t, 1, m.list.Page)
	assert.Equal(t, 3, m.list.TotalPages())

	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("right"))
	assert.Equal(t, 3, m.list.Page)
	assert.Len(t, m.list.Visible(), 5)

	// Clamped at the last page.
	m, _ = m.Update(keyMsg("right"))
	assert.Equal(t, 3, m.list.Page)

	m, _ = m.Update(keyMsg("left"))
	assert.Equal(t, 2, m.list.Page)
}

func TestCatalogFilterChangeResetsToPageOne(t *testing.T) {
	var items []record
	for i := 1; i <= 25; i++ {
		items = append(items, targetRecord(i, fmt.Sprintf("target-%02d", i), "https://x", ""))
	}
	probe := &catalogProbe{items: items}
	m := loadedModel("admin", probe)

	m, _ = m.Update(keyMsg("right"))
	require.Equal(t, 2, m.list.Page)

	m, _ = typeText(m, "1")
	assert.Equal(t, 1, m.list.Page)
}

func TestCatalogEmptyCollectionHasOnePage(t *testing.T) {
	probe := &catalogProbe{}
	m := loadedModel("admin", probe)
	assert.Equal(t, 1, m.list.TotalPages())
	assert.Equal(t, 1, m.list.Page)
}

func TestCatalogEnterOpensDetail(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)

	m, _ = m.Update(keyMsg("enter"))
	require.NotNil(t, m.detail)
	assert.Equal(t, catalogViewDetail, m.view)
	assert.Equal(t, "gpt-alpha", m.detail.name)

	m, _ = m.Update(keyMsg("esc"))
	assert.Equal(t, catalogViewList, m.view)
	assert.Nil(t, m.detail)
}

func TestCatalogAddCreateBlanksOmittedAndResetsForm(t *testing.T) {
	probe := &catalogProbe{}
	m := loadedModel("admin", probe)

	// up from the top row focuses the mode line, enter switches to Add
	m, _ = m.Update(keyMsg("up"))
	require.True(t, m.modeFocus)
	m, _ = m.Update(keyMsg("enter"))
	require.Equal(t, catalogViewAdd, m.view)

	m, _ = typeText(m, "new-target")
	m, _ = m.Update(keyMsg("down"))
	m, _ = typeText(m, "https://api")
	m, _ = m.Update(keyMsg("down")) // description, left empty
	m, _ = m.Update(keyMsg("down")) // notes
	m, _ = typeText(m, "initial seed")

	m, cmd := m.Update(keyMsg("ctrl+s"))
	require.True(t, m.saving)
	require.NotNil(t, cmd)

	msg := cmd()
	created, ok := msg.(catalogCreatedMsg)
	require.True(t, ok)
	assert.Equal(t, "new-target", created.name)
	assert.Equal(t, "new-target", probe.createdValues["name"])
	assert.Equal(t, "https://api", probe.createdValues["url"])
	assert.Equal(t, "", probe.createdValues["description"])
	assert.Equal(t, "initial seed", probe.createdNotes)

	m, _ = m.Update(created)
	assert.True(t, m.addSaved)
	assert.Empty(t, m.formVals)

	m, _ = m.Update(keyMsg("esc"))
	assert.False(t, m.addSaved)
	assert.Equal(t, catalogViewAdd, m.view)
}

func TestCatalogSaveRejectsMissingRequiredFields(t *testing.T) {
	probe := &catalogProbe{}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))

	m, cmd := m.Update(keyMsg("ctrl+s"))
	assert.Nil(t, cmd)
	assert.False(t, m.saving)
	assert.Equal(t, "Name is required", m.fieldErrs["name"])
	assert.Equal(t, "URL is required", m.fieldErrs["url"])
	assert.Equal(t, "Notes is required", m.fieldErrs["notes"])

	// Typing into a flagged field clears its error.
	m, _ = typeText(m, "x")
	assert.NotContains(t, m.fieldErrs, "name")
	assert.Contains(t, m.fieldErrs, "url")
}

func TestCatalogEditRefusesSaveWithoutChanges(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("e"))
	require.Equal(t, catalogViewEdit, m.view)

	// notes are mandatory even for a no-op save attempt
	m.formVals["notes"] = "checked nothing changed"

	m, cmd := m.Update(keyMsg("ctrl+s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No changes to save", m.errText)
	assert.Equal(t, catalogViewEdit, m.view)
}

func TestCatalogEditSendsOnlyChangedFields(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(4, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("e"))

	// move to url and replace its value
	m, _ = m.Update(keyMsg("down"))
	for range "https://a" {
		m, _ = m.Update(keyMsg("backspace"))
	}
	m, _ = typeText(m, "https://b")
	m.formVals["notes"] = "rotated endpoint"

	m, _ = m.Update(keyMsg("ctrl+s"))
	require.Equal(t, catalogViewConfirmSave, m.view)
	require.Len(t, m.confirmDiff, 1)
	assert.Equal(t, "url", m.confirmDiff[0].Key)

	m, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	updated, ok := msg.(catalogUpdatedMsg)
	require.True(t, ok)

	assert.Equal(t, 4, probe.updatedID)
	assert.Equal(t, map[string]string{"url": "https://b"}, probe.updatedChanged)
	assert.NotContains(t, probe.updatedChanged, "name")
	assert.Equal(t, "rotated endpoint", probe.updatedNotes)

	m, _ = m.Update(updated)
	assert.Equal(t, catalogViewDetail, m.view)
	assert.Equal(t, "https://b", m.detail.value("url"))
}

func TestCatalogEditDiscardGuard(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("e"))

	m, _ = typeText(m, "x")
	m, _ = m.Update(keyMsg("esc"))
	require.Equal(t, catalogViewConfirmDiscard, m.view)

	// n returns to the form with input intact
	m, _ = m.Update(keyMsg("n"))
	assert.Equal(t, catalogViewEdit, m.view)
	assert.Equal(t, "gpt-alphax", m.formVals["name"])

	m, _ = m.Update(keyMsg("esc"))
	m, _ = m.Update(keyMsg("y"))
	assert.Equal(t, catalogViewDetail, m.view)
	assert.Empty(t, m.formVals)
}

func TestCatalogDeleteRefusalShowsServerMessage(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(9, "gpt-alpha", "https://a", "general"),
	}}
	probe.removeErr = errors.New("3 test plans reference this target")
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("d"))
	require.Equal(t, catalogViewConfirmDelete, m.view)

	m, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	errMsg, ok := msg.(catalogErrMsg)
	require.True(t, ok)

	m, _ = m.Update(errMsg)
	assert.Equal(t, catalogViewDetail, m.view)
	assert.Equal(t, "3 test plans reference this target", m.errText)
	require.NotNil(t, m.detail)
	assert.Equal(t, "gpt-alpha", m.detail.name)
}

func TestCatalogDeleteConfirmed(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(9, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("d"))

	m, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	deleted, ok := msg.(catalogDeletedMsg)
	require.True(t, ok)
	assert.Equal(t, 9, probe.removedID)

	m, _ = m.Update(deleted)
	assert.Equal(t, catalogViewList, m.view)
	assert.Nil(t, m.detail)
}

func TestCatalogNameCheckDebounceAndSupersession(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))

	m, cmd := m.Update(keyMsg("a"))
	require.NotNil(t, cmd)
	firstSeq := m.check.seq
	assert.Equal(t, nameCheckPending, m.check.state)

	// second keystroke supersedes the first probe
	m, _ = m.Update(keyMsg("l"))
	m, staleCmd := m.Update(nameCheckTickMsg{entity: "targets", seq: firstSeq})
	assert.Nil(t, staleCmd)
	assert.Equal(t, nameCheckPending, m.check.state)

	m, liveCmd := m.Update(nameCheckTickMsg{entity: "targets", seq: m.check.seq})
	require.NotNil(t, liveCmd)
	msg := liveCmd()
	done, ok := msg.(nameCheckDoneMsg)
	require.True(t, ok)
	assert.Equal(t, nameCheckAvailable, done.state)

	m, _ = m.Update(done)
	assert.Equal(t, nameCheckAvailable, m.check.state)
}

func TestCatalogNameCheckReportsTakenAndFailsOpen(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))
	m, _ = typeText(m, "Alpha")

	m, cmd := m.Update(nameCheckTickMsg{entity: "targets", seq: m.check.seq})
	require.NotNil(t, cmd)
	done := cmd().(nameCheckDoneMsg)
	assert.Equal(t, nameCheckTaken, done.state)

	probe.loadErr = errors.New("connection refused")
	m, _ = typeText(m, "x")
	m, cmd = m.Update(nameCheckTickMsg{entity: "targets", seq: m.check.seq})
	require.NotNil(t, cmd)
	done = cmd().(nameCheckDoneMsg)
	assert.Equal(t, nameCheckUnknown, done.state)
}

func TestCatalogIgnoresMessagesForOtherCollections(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("admin", probe)

	m, _ = m.Update(catalogLoadedMsg{entity: "prompts", items: nil})
	assert.Len(t, m.all, 1)

	m, _ = m.Update(catalogErrMsg{entity: "prompts", err: errors.New("boom")})
	assert.Empty(t, m.errText)
}

func TestCatalogViewerHasNoAddOrEdit(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("viewer", probe)

	assert.False(t, m.canAdd())
	assert.Empty(t, m.renderModeLine())

	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("e"))
	assert.Equal(t, catalogViewDetail, m.view)
	m, _ = m.Update(keyMsg("d"))
	assert.Equal(t, catalogViewDetail, m.view)
}

func TestCatalogCuratorCannotTouchTableLevelCollections(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "safety", "", ""),
	}}
	m := newTestCatalog("curator", probe)
	m.cfg.tableLevel = true
	m, _ = m.Update(catalogLoadedMsg{entity: "targets", items: probe.items})

	assert.False(t, m.canAdd())
	assert.False(t, m.canEdit(probe.items[0]))
	assert.False(t, m.canDelete(probe.items[0]))

	// record-level collections remain editable for curators
	m.cfg.tableLevel = false
	assert.True(t, m.canAdd())
	assert.True(t, m.canEdit(probe.items[0]))
	assert.False(t, m.canDelete(probe.items[0]))
}

func TestCatalogListRenderShowsCountAndFilter(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
		targetRecord(2, "claude-beta", "https://b", "general"),
	}}
	m := loadedModel("admin", probe)
	m.width = 100

	m, _ = typeText(m, "gpt")
	out := stripView(m.View())
	assert.Contains(t, out, "gpt-alpha")
	assert.NotContains(t, out, "claude-beta")
	assert.Contains(t, out, "1 total")
	assert.Contains(t, out, "filter: gpt")
}

func TestCatalogHasUnsavedOnlyWithDirtyForm(t *testing.T) {
	probe := &catalogProbe{}
	m := loadedModel("admin", probe)
	assert.False(t, m.hasUnsaved())

	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))
	assert.False(t, m.hasUnsaved())

	m, _ = typeText(m, "draft")
	assert.True(t, m.hasUnsaved())
}

func TestCatalogSaveRefusedWhileNameTaken(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))

	m, _ = typeText(m, "Alpha")
	m, cmd := m.Update(nameCheckTickMsg{entity: "targets", seq: m.check.seq})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd().(nameCheckDoneMsg))
	require.Equal(t, nameCheckTaken, m.check.state)

	m, _ = m.Update(keyMsg("down"))
	m, _ = typeText(m, "https://b")
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	m, _ = typeText(m, "seed")

	m, saveCmd := m.Update(keyMsg("ctrl+s"))
	assert.Nil(t, saveCmd)
	assert.False(t, m.saving)
	assert.Equal(t, "Name is already in use", m.fieldErrs["name"])
	assert.Nil(t, probe.createdValues)

	// correcting the name lifts the block
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("up"))
	m, _ = typeText(m, "-2")
	assert.NotContains(t, m.fieldErrs, "name")
}

func TestCatalogSaveCatchesDuplicateBeforeProbeResolves(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("enter"))

	// fill the form and submit before the debounce window elapses
	m, _ = typeText(m, "ALPHA")
	require.Equal(t, nameCheckPending, m.check.state)
	m, _ = m.Update(keyMsg("down"))
	m, _ = typeText(m, "https://b")
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	m, _ = typeText(m, "seed")

	m, saveCmd := m.Update(keyMsg("ctrl+s"))
	assert.Nil(t, saveCmd)
	assert.Equal(t, "Name is already in use", m.fieldErrs["name"])
	assert.Nil(t, probe.createdValues)
}

func TestCatalogEditRefusesRenameToExistingName(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "alpha", "https://a", ""),
		targetRecord(2, "beta", "https://b", ""),
	}}
	m := loadedModel("admin", probe)
	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("enter"))
	require.Equal(t, "beta", m.detail.name)
	m, _ = m.Update(keyMsg("e"))

	for range "beta" {
		m, _ = m.Update(keyMsg("backspace"))
	}
	m, _ = typeText(m, "Alpha")
	m.formVals["notes"] = "rename"

	m, saveCmd := m.Update(keyMsg("ctrl+s"))
	assert.Nil(t, saveCmd)
	assert.Equal(t, catalogViewEdit, m.view)
	assert.Equal(t, "Name is already in use", m.fieldErrs["name"])
	assert.Empty(t, probe.updatedChanged)
}

func TestCatalogFailedRefreshClearsStaleRows(t *testing.T) {
	probe := &catalogProbe{items: []record{
		targetRecord(1, "gpt-alpha", "https://a", "general"),
	}}
	m := loadedModel("admin", probe)
	m.width = 100
	m, _ = m.Update(keyMsg("enter"))
	require.Equal(t, catalogViewDetail, m.view)

	// the post-mutation refresh can fail while detail is open
	m, _ = m.Update(catalogErrMsg{entity: "targets", err: errors.New("bad gateway"), load: true})
	assert.Empty(t, m.all)
	assert.Empty(t, m.items)
	assert.Equal(t, "bad gateway", m.errText)

	m, _ = m.Update(keyMsg("esc"))
	out := stripView(m.View())
	assert.NotContains(t, out, "gpt-alpha")
	assert.Contains(t, out, "No Targets found.")

	// mutation failures keep the rows
	m2 := loadedModel("admin", probe)
	m2, _ = m2.Update(catalogErrMsg{entity: "targets", err: errors.New("boom")})
	assert.Len(t, m2.all, 1)
}

func TestCatalogPageSizesPerScreen(t *testing.T) {
	sess := sessionFor("admin")
	got := map[string]int{}
	for _, m := range []CatalogModel{
		newTestCasesCatalog(nil, sess),
		newPromptsCatalog(nil, sess),
		newResponsesCatalog(nil, sess),
		newTargetsCatalog(nil, sess),
		newPlansCatalog(nil, sess),
		newStrategiesCatalog(nil, sess),
		newMetricsCatalog(nil, sess),
		newDomainsCatalog(nil, sess),
		newLanguagesCatalog(nil, sess),
		newUsersCatalog(nil, sess),
	} {
		got[m.cfg.entity] = m.cfg.pageSize
	}
	assert.Equal(t, map[string]int{
		"test-cases": 15,
		"prompts":    20,
		"responses":  20,
		"targets":    15,
		"test-plans": 15,
		"strategies": 15,
		"metrics":    15,
		"domains":    15,
		"languages":  100,
		"users":      15,
	}, got)
}
