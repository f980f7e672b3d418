package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

// nounTitler turns item nouns like "test case" into view titles.
var nounTitler = cases.Title(language.English)

// --- Messages ---

type catalogLoadedMsg struct {
	entity string
	items  []record
}
type catalogOptionsMsg struct {
	entity  string
	key     string
	options []string
}
type catalogCreatedMsg struct {
	entity string
	name   string
}
type catalogUpdatedMsg struct {
	entity string
	name   string
}
type catalogDeletedMsg struct {
	entity string
	name   string
}
type catalogErrMsg struct {
	entity string
	err    error
	// load marks a failed list fetch, which must drop the rows it could
	// not refresh. Mutation failures keep the table.
	load bool
}
type nameCheckTickMsg struct {
	entity string
	seq    int
}
type nameCheckDoneMsg struct {
	entity string
	seq    int
	state  nameCheckState
}
type pickerLoadedMsg struct {
	entity string
	items  []pickerItem
}
type pickerErrMsg struct {
	entity string
	err    error
}

// --- View States ---

type catalogView int

const (
	catalogViewAdd catalogView = iota
	catalogViewList
	catalogViewDetail
	catalogViewEdit
	catalogViewConfirmSave
	catalogViewConfirmDelete
	catalogViewConfirmDiscard
)

// notesField is the audit justification appended to every form. It is
// sent with each mutation and never echoed back by the server.
var notesField = fieldSpec{
	Key:      "notes",
	Label:    "Notes",
	Kind:     fieldMultiline,
	Required: true,
}

// --- Catalog Config ---

// catalogConfig declares one collection: its columns, how rows load,
// and how form values become typed api calls.
type catalogConfig struct {
	entity   string
	title    string
	itemNoun string
	pageSize int
	fields   []fieldSpec

	// tableLevel collections gate add/update on the table capabilities
	// instead of the record ones. Delete always needs the table delete
	// capability.
	tableLevel bool

	load   func(c *api.Client) ([]record, error)
	create func(c *api.Client, values map[string]string, notes string) error
	update func(c *api.Client, id int, changed map[string]string, notes string) error
	remove func(c *api.Client, id int) error

	canEditRow   func(r record) bool
	canDeleteRow func(r record) bool
}

// --- Catalog Model ---

// CatalogModel is the shared list/detail/add/edit state machine every
// collection tab runs. Behavior differences live entirely in the
// config.
type CatalogModel struct {
	client *api.Client
	sess   *session.Session
	cfg    catalogConfig

	width  int
	height int

	all       []record
	items     []record
	list      *components.Pager
	loading   bool
	errText   string
	filterBuf string
	view      catalogView
	modeFocus bool

	detail *record

	// form state, shared by add and edit
	editing   *record
	formVals  map[string]string
	origVals  map[string]string
	formFocus int
	fieldErrs map[string]string
	selecting bool
	selectIdx int
	saving    bool
	addSaved  bool

	check       nameCheck
	confirmDiff []fieldChange
	deleteName  string

	options map[string][]string

	picker PickerModel
}

func NewCatalogModel(client *api.Client, sess *session.Session, cfg catalogConfig) CatalogModel {
	if cfg.pageSize <= 0 {
		cfg.pageSize = 15
	}
	return CatalogModel{
		client:  client,
		sess:    sess,
		cfg:     cfg,
		list:    components.NewPager(cfg.pageSize),
		view:    catalogViewList,
		options: map[string][]string{},
		picker:  NewPickerModel(client),
	}
}

func (m CatalogModel) Init() tea.Cmd {
	m.loading = true
	cmds := []tea.Cmd{m.loadItems()}
	for _, f := range m.cfg.fields {
		if f.LoadOptions != nil {
			cmds = append(cmds, m.loadFieldOptions(f))
		}
	}
	return tea.Batch(cmds...)
}

func (m CatalogModel) loadItems() tea.Cmd {
	client := m.client
	cfg := m.cfg
	return func() tea.Msg {
		items, err := cfg.load(client)
		if err != nil {
			return catalogErrMsg{entity: cfg.entity, err: err, load: true}
		}
		return catalogLoadedMsg{entity: cfg.entity, items: items}
	}
}

func (m CatalogModel) loadFieldOptions(f fieldSpec) tea.Cmd {
	client := m.client
	entity := m.cfg.entity
	key := f.Key
	loadFn := f.LoadOptions
	return func() tea.Msg {
		opts, err := loadFn(client)
		if err != nil {
			// Option sources degrade to free text entry.
			return catalogOptionsMsg{entity: entity, key: key, options: nil}
		}
		return catalogOptionsMsg{entity: entity, key: key, options: opts}
	}
}

// --- Update ---

func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.loading = false
		m.errText = ""
		m.all = msg.items
		m.applyFilter()
		return m, nil

	case catalogOptionsMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.options[msg.key] = msg.options
		m.seedDefaultSelections()
		return m, nil

	case catalogCreatedMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.saving = false
		m.addSaved = true
		m.resetForm()
		m.loading = true
		return m, m.loadItems()

	case catalogUpdatedMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.saving = false
		if m.detail != nil {
			merged := *m.detail
			merged.values = copyValues(m.detail.values)
			for _, ch := range m.confirmDiff {
				merged.values[ch.Key] = ch.New
			}
			if name, ok := merged.values["name"]; ok && name != "" {
				merged.name = name
			}
			m.detail = &merged
		}
		m.confirmDiff = nil
		m.view = catalogViewDetail
		m.loading = true
		return m, m.loadItems()

	case catalogDeletedMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.detail = nil
		m.view = catalogViewList
		m.loading = true
		return m, m.loadItems()

	case catalogErrMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.loading = false
		m.saving = false
		m.errText = msg.err.Error()
		if msg.load {
			// A failed fetch never leaves stale rows on screen.
			m.all = nil
			m.applyFilter()
		}
		if m.view == catalogViewConfirmDelete {
			// Refused deletes surface the server message; the record stays.
			m.view = catalogViewDetail
		}
		if m.view == catalogViewConfirmSave {
			m.view = catalogViewEdit
		}
		return m, nil

	case nameCheckTickMsg:
		if msg.entity != m.cfg.entity || !m.check.Current(msg.seq) {
			return m, nil
		}
		return m, m.runNameCheck(msg.seq)

	case nameCheckDoneMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.check.Resolve(msg.seq, msg.state)
		return m, nil

	case pickerLoadedMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.picker.SetLoaded(msg.items)
		return m, nil

	case pickerErrMsg:
		if msg.entity != m.cfg.entity {
			return m, nil
		}
		m.picker.SetError(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.picker.open {
			return m.handlePickerKeys(msg)
		}
		switch m.view {
		case catalogViewAdd, catalogViewEdit:
			return m.handleFormKeys(msg)
		case catalogViewDetail:
			return m.handleDetailKeys(msg)
		case catalogViewConfirmSave:
			return m.handleConfirmSaveKeys(msg)
		case catalogViewConfirmDelete:
			return m.handleConfirmDeleteKeys(msg)
		case catalogViewConfirmDiscard:
			return m.handleConfirmDiscardKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

// --- Filter + Pagination ---

// applyFilter recomputes the visible rows from the full collection and
// resets paging, so a query change always lands on page one.
func (m *CatalogModel) applyFilter() {
	query := strings.TrimSpace(m.filterBuf)
	if query == "" {
		m.items = m.all
	} else {
		var matched []record
		for _, r := range m.all {
			if matchesFilter(m.cfg.fields, r, query) {
				matched = append(matched, r)
			}
		}
		m.items = matched
	}
	labels := make([]string, len(m.items))
	for i, r := range m.items {
		labels[i] = m.formatLine(r)
	}
	m.list.SetItems(labels)
}

func (m CatalogModel) formatLine(r record) string {
	name := components.SanitizeOneLine(r.name)
	summary := ""
	for _, f := range m.cfg.fields {
		if f.Key == "name" || !f.Searchable {
			continue
		}
		if v := r.value(f.Key); v != "" {
			summary = components.SanitizeOneLine(v)
			break
		}
	}
	line := components.ClampTextWidth(name, 32)
	if summary != "" {
		line = fmt.Sprintf("%-32s  %s", line, MutedStyle.Render(components.ClampTextWidth(summary, 40)))
	}
	return line
}

// --- Permission Gates ---

func (m CatalogModel) canAdd() bool {
	if m.cfg.tableLevel {
		return m.sess.Perms.CanAddTable
	}
	return m.sess.Perms.CanAddRecord
}

func (m CatalogModel) canEdit(r record) bool {
	allowed := m.sess.Perms.CanUpdateRecord
	if m.cfg.tableLevel {
		allowed = m.sess.Perms.CanUpdateTable
	}
	if !allowed {
		return false
	}
	return m.cfg.canEditRow == nil || m.cfg.canEditRow(r)
}

func (m CatalogModel) canDelete(r record) bool {
	if !m.sess.Perms.CanDeleteTable {
		return false
	}
	return m.cfg.canDeleteRow == nil || m.cfg.canDeleteRow(r)
}

// --- List View ---

func (m CatalogModel) handleListKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	if m.modeFocus {
		return m.handleModeKeys(msg)
	}
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		if m.list.Selected() <= m.list.PageStart() {
			m.modeFocus = true
		} else {
			m.list.Up()
		}
	case isKey(msg, "left"):
		m.list.PrevPage()
	case isKey(msg, "right"):
		m.list.NextPage()
	case isEnter(msg):
		if idx := m.list.Selected(); idx >= 0 && idx < len(m.items) {
			item := m.items[idx]
			m.detail = &item
			m.errText = ""
			m.view = catalogViewDetail
		}
	case isKey(msg, "backspace", "delete"):
		if len(m.filterBuf) > 0 {
			m.filterBuf = m.filterBuf[:len(m.filterBuf)-1]
			m.applyFilter()
		}
	case isKey(msg, "ctrl+u"):
		if m.filterBuf != "" {
			m.filterBuf = ""
			m.applyFilter()
		}
	case isBack(msg):
		if m.filterBuf != "" {
			m.filterBuf = ""
			m.applyFilter()
		}
	default:
		ch := msg.String()
		if len(ch) == 1 || ch == " " {
			if ch == " " && m.filterBuf == "" {
				return m, nil
			}
			m.filterBuf += ch
			m.applyFilter()
		}
	}
	return m, nil
}

func (m CatalogModel) renderList() string {
	if m.loading {
		return "  " + MutedStyle.Render("Loading "+m.cfg.title+"...")
	}

	if m.errText != "" && len(m.items) == 0 {
		return components.ErrorBox("Error", m.errText, m.width)
	}

	if len(m.items) == 0 {
		content := MutedStyle.Render("No " + m.cfg.title + " found.")
		if strings.TrimSpace(m.filterBuf) != "" {
			content = MutedStyle.Render(fmt.Sprintf("No matches for %q. Esc clears the filter.", strings.TrimSpace(m.filterBuf)))
		}
		return components.Box(content, m.width)
	}

	var rows strings.Builder
	visible := m.list.Visible()
	start := m.list.PageStart()
	for i, label := range visible {
		abs := start + i
		if m.list.IsSelected(abs) {
			rows.WriteString(SelectedStyle.Render("  > ") + label)
		} else {
			rows.WriteString("    " + label)
		}
		if i < len(visible)-1 {
			rows.WriteString("\n")
		}
	}

	countLine := fmt.Sprintf("%d total · page %d/%d", len(m.items), m.list.Page, m.list.TotalPages())
	if q := strings.TrimSpace(m.filterBuf); q != "" {
		countLine = fmt.Sprintf("%s · filter: %s", countLine, q)
	}
	if m.list.AtFirstPage() && m.list.AtLastPage() {
		// single page, no nav hint
	} else {
		nav := "←/→ pages"
		if m.list.AtFirstPage() {
			nav = "→ next page"
		} else if m.list.AtLastPage() {
			nav = "← prev page"
		}
		countLine = fmt.Sprintf("%s · %s", countLine, nav)
	}
	content := MutedStyle.Render(countLine) + "\n\n" + rows.String()
	return components.TitledBox(m.cfg.title, content, m.width)
}

// --- Mode Line ---

func (m CatalogModel) renderModeLine() string {
	if !m.canAdd() {
		return ""
	}
	add := TabInactiveStyle.Render("Add")
	browse := TabInactiveStyle.Render("Browse")
	if m.view == catalogViewAdd {
		add = TabActiveStyle.Render("Add")
	} else {
		browse = TabActiveStyle.Render("Browse")
	}
	line := add + " " + browse
	if m.modeFocus {
		return SelectedStyle.Render("› " + line)
	}
	return line
}

func (m CatalogModel) handleModeKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.modeFocus = false
		if m.view == catalogViewAdd {
			m.formFocus = 0
		}
	case isUp(msg):
		m.modeFocus = false
	case isKey(msg, "left"), isKey(msg, "right"), isSpace(msg), isEnter(msg):
		return m.toggleMode()
	case isBack(msg):
		m.modeFocus = false
	}
	return m, nil
}

func (m CatalogModel) toggleMode() (CatalogModel, tea.Cmd) {
	m.modeFocus = false
	if m.view == catalogViewAdd {
		m.view = catalogViewList
		return m, nil
	}
	if !m.canAdd() {
		return m, nil
	}
	m.startAdd()
	return m, nil
}

// --- Detail View ---

func (m CatalogModel) handleDetailKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.errText = ""
		m.view = catalogViewList
	case isKey(msg, "e"):
		if m.detail != nil && m.canEdit(*m.detail) {
			m.startEdit(*m.detail)
		}
	case isKey(msg, "d"):
		if m.detail != nil && m.canDelete(*m.detail) {
			m.deleteName = m.detail.name
			m.view = catalogViewConfirmDelete
		}
	}
	return m, nil
}

func (m CatalogModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	r := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: fmt.Sprintf("%d", r.id)},
	}
	for _, f := range m.cfg.fields {
		v := r.value(f.Key)
		if v == "" && f.Key != "name" {
			continue
		}
		rows = append(rows, components.TableRow{Label: f.Label, Value: v})
	}
	out := components.Table(m.cfg.title+" Detail", rows, m.width)
	if m.errText != "" {
		out += "\n\n" + components.ErrorBox("Error", m.errText, m.width)
	}
	return out
}

// --- Add / Edit Form ---

// formFields is the active form schema: the collection's columns plus
// the audit notes field.
func (m CatalogModel) formFields() []fieldSpec {
	return append(append([]fieldSpec{}, m.cfg.fields...), notesField)
}

// visibleFields drops omitted fields and, while editing, frozen ones.
func (m CatalogModel) visibleFields() []fieldSpec {
	var out []fieldSpec
	for _, f := range m.formFields() {
		if f.omitted(m.formVals) {
			continue
		}
		if m.editing != nil && f.Frozen != nil && f.Frozen(*m.editing) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (m *CatalogModel) startAdd() {
	m.view = catalogViewAdd
	m.editing = nil
	m.formVals = map[string]string{}
	m.origVals = nil
	m.formFocus = 0
	m.fieldErrs = map[string]string{}
	m.selecting = false
	m.saving = false
	m.addSaved = false
	m.errText = ""
	m.check.Reset()
	m.seedDefaultSelections()
}

func (m *CatalogModel) startEdit(r record) {
	m.view = catalogViewEdit
	snapshot := r
	snapshot.values = copyValues(r.values)
	m.editing = &snapshot
	m.formVals = copyValues(r.values)
	m.formVals["notes"] = ""
	m.origVals = copyValues(r.values)
	m.formFocus = 0
	m.fieldErrs = map[string]string{}
	m.selecting = false
	m.saving = false
	m.addSaved = false
	m.errText = ""
	m.check.Reset()
}

func (m *CatalogModel) resetForm() {
	m.editing = nil
	m.formVals = map[string]string{}
	m.origVals = nil
	m.formFocus = 0
	m.fieldErrs = map[string]string{}
	m.selecting = false
	m.saving = false
	m.errText = ""
	m.confirmDiff = nil
	m.check.Reset()
	m.seedDefaultSelections()
}

// seedDefaultSelections fills required select fields with their first
// option when the form has no value yet.
func (m *CatalogModel) seedDefaultSelections() {
	if m.formVals == nil {
		return
	}
	if m.editing != nil {
		return
	}
	for _, f := range m.cfg.fields {
		if f.Kind != fieldSelect || !f.Required {
			continue
		}
		if m.formVals[f.Key] != "" {
			continue
		}
		opts := m.fieldOptions(f)
		if len(opts) > 0 {
			m.formVals[f.Key] = opts[0]
		}
	}
	for _, f := range m.cfg.fields {
		if f.Kind == fieldBool && m.formVals[f.Key] == "" {
			m.formVals[f.Key] = "false"
		}
	}
}

func (m CatalogModel) fieldOptions(f fieldSpec) []string {
	if len(f.Options) > 0 {
		return f.Options
	}
	return m.options[f.Key]
}

// dirty reports whether the edit form differs from its snapshot.
func (m CatalogModel) dirty() bool {
	if m.editing == nil {
		for _, f := range m.cfg.fields {
			if strings.TrimSpace(m.formVals[f.Key]) != "" {
				return true
			}
		}
		return strings.TrimSpace(m.formVals["notes"]) != ""
	}
	return len(diffForm(m.cfg.fields, m.origVals, m.formVals)) > 0
}

func (m CatalogModel) handleFormKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if m.view == catalogViewAdd && m.addSaved {
		if isBack(msg) || isEnter(msg) {
			m.addSaved = false
			m.resetForm()
		}
		return m, nil
	}
	if m.modeFocus {
		return m.handleModeKeys(msg)
	}

	fields := m.visibleFields()
	if len(fields) == 0 {
		return m, nil
	}
	if m.formFocus >= len(fields) {
		m.formFocus = len(fields) - 1
	}
	f := fields[m.formFocus]

	if m.selecting && f.Kind == fieldMulti {
		return m.handleMultiSelectKeys(msg, f)
	}

	switch {
	case isDown(msg):
		m.selecting = false
		m.formFocus = (m.formFocus + 1) % len(fields)
	case isUp(msg):
		m.selecting = false
		if m.formFocus == 0 {
			if m.view == catalogViewAdd {
				m.modeFocus = true
			}
			return m, nil
		}
		m.formFocus--
	case isKey(msg, "ctrl+s"):
		return m.saveForm()
	case isKey(msg, "ctrl+p"):
		if f.Picker != "" {
			return m, m.picker.Open(f.Picker, m.cfg.entity)
		}
	case isBack(msg):
		return m.leaveForm()
	case isKey(msg, "backspace", "delete"):
		switch f.Kind {
		case fieldSelect, fieldBool:
			// no-op
		case fieldMulti:
			names := splitNames(m.formVals[f.Key])
			if len(names) > 0 {
				m.setFormValue(f, joinNames(names[:len(names)-1]))
			}
		default:
			v := m.formVals[f.Key]
			if len(v) > 0 {
				m.setFormValue(f, v[:len(v)-1])
				if f.Key == "name" {
					return m, nameCheckTick(m.cfg.entity, m.check.Bump())
				}
			}
		}
	default:
		switch f.Kind {
		case fieldSelect:
			opts := m.fieldOptions(f)
			if len(opts) == 0 {
				break
			}
			idx := indexOf(opts, m.formVals[f.Key])
			switch {
			case isKey(msg, "left"):
				m.setFormValue(f, opts[(idx-1+len(opts))%len(opts)])
			case isKey(msg, "right"), isSpace(msg):
				m.setFormValue(f, opts[(idx+1)%len(opts)])
			}
		case fieldBool:
			if isKey(msg, "left") || isKey(msg, "right") || isSpace(msg) {
				if m.formVals[f.Key] == "true" {
					m.setFormValue(f, "false")
				} else {
					m.setFormValue(f, "true")
				}
			}
		case fieldMulti:
			if isSpace(msg) {
				m.selecting = true
				m.selectIdx = 0
			}
		case fieldMultiline:
			if isEnter(msg) {
				m.setFormValue(f, m.formVals[f.Key]+"\n")
				break
			}
			ch := msg.String()
			if len(ch) == 1 || ch == " " {
				m.setFormValue(f, m.formVals[f.Key]+ch)
			}
		default:
			ch := msg.String()
			if len(ch) == 1 || ch == " " {
				m.setFormValue(f, m.formVals[f.Key]+ch)
				if f.Key == "name" {
					return m, nameCheckTick(m.cfg.entity, m.check.Bump())
				}
			}
		}
	}
	return m, nil
}

// setFormValue records input and clears the field's validation flag, so
// errors vanish as soon as the user starts correcting them.
func (m *CatalogModel) setFormValue(f fieldSpec, v string) {
	m.formVals[f.Key] = v
	delete(m.fieldErrs, f.Key)
}

func (m CatalogModel) handleMultiSelectKeys(msg tea.KeyMsg, f fieldSpec) (CatalogModel, tea.Cmd) {
	opts := m.fieldOptions(f)
	switch {
	case isKey(msg, "left"):
		if len(opts) > 0 {
			m.selectIdx = (m.selectIdx - 1 + len(opts)) % len(opts)
		}
	case isKey(msg, "right"):
		if len(opts) > 0 {
			m.selectIdx = (m.selectIdx + 1) % len(opts)
		}
	case isSpace(msg):
		if len(opts) > 0 {
			names := toggleName(splitNames(m.formVals[f.Key]), opts[m.selectIdx])
			m.setFormValue(f, joinNames(names))
		}
	case isEnter(msg), isBack(msg):
		m.selecting = false
	}
	return m, nil
}

func (m CatalogModel) handlePickerKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	choice, _ := m.picker.HandleKey(msg)
	if choice == nil {
		return m, nil
	}
	fields := m.visibleFields()
	if m.formFocus < len(fields) {
		f := fields[m.formFocus]
		if f.PickerApply != nil {
			f.PickerApply(m.formVals, *choice)
		} else {
			m.formVals[f.Key] = choice.Text
		}
		delete(m.fieldErrs, f.Key)
	}
	return m, nil
}

// leaveForm guards unsaved input behind a discard confirmation.
func (m CatalogModel) leaveForm() (CatalogModel, tea.Cmd) {
	if m.selecting {
		m.selecting = false
		return m, nil
	}
	if m.dirty() {
		m.view = catalogViewConfirmDiscard
		return m, nil
	}
	return m.abandonForm()
}

func (m CatalogModel) abandonForm() (CatalogModel, tea.Cmd) {
	if m.editing != nil {
		m.view = catalogViewDetail
	} else {
		m.view = catalogViewList
	}
	m.resetForm()
	return m, nil
}

func (m CatalogModel) handleConfirmDiscardKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		return m.abandonForm()
	case isKey(msg, "n"), isBack(msg):
		if m.editing != nil {
			m.view = catalogViewEdit
		} else {
			m.view = catalogViewAdd
		}
	}
	return m, nil
}

// --- Save ---

func (m CatalogModel) saveForm() (CatalogModel, tea.Cmd) {
	fields := m.visibleFields()
	m.fieldErrs = validateForm(fields, m.formVals)
	excludeID := 0
	if m.editing != nil {
		excludeID = m.editing.id
	}
	// A taken name blocks the save. The loaded rows cover a duplicate
	// submitted faster than the debounce window resolves.
	if _, flagged := m.fieldErrs["name"]; !flagged {
		if m.check.state == nameCheckTaken || nameTaken(m.all, m.formVals["name"], excludeID) {
			m.fieldErrs["name"] = "Name is already in use"
		}
	}
	if len(m.fieldErrs) > 0 {
		return m, nil
	}

	notes := strings.TrimSpace(m.formVals["notes"])

	if m.editing == nil {
		m.saving = true
		client := m.client
		cfg := m.cfg
		values := copyValues(m.formVals)
		for _, f := range cfg.fields {
			if f.omitted(values) {
				values[f.Key] = ""
			}
		}
		name := strings.TrimSpace(values["name"])
		return m, func() tea.Msg {
			if err := cfg.create(client, values, notes); err != nil {
				return catalogErrMsg{entity: cfg.entity, err: err}
			}
			return catalogCreatedMsg{entity: cfg.entity, name: name}
		}
	}

	changes := diffForm(m.cfg.fields, m.origVals, m.formVals)
	if len(changes) == 0 {
		m.errText = "No changes to save"
		return m, nil
	}
	m.errText = ""
	m.confirmDiff = changes
	m.view = catalogViewConfirmSave
	return m, nil
}

func (m CatalogModel) handleConfirmSaveKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		if m.editing == nil {
			m.view = catalogViewList
			return m, nil
		}
		m.saving = true
		client := m.client
		cfg := m.cfg
		id := m.editing.id
		name := m.editing.name
		changed := changedValues(m.confirmDiff)
		notes := strings.TrimSpace(m.formVals["notes"])
		return m, func() tea.Msg {
			if err := cfg.update(client, id, changed, notes); err != nil {
				return catalogErrMsg{entity: cfg.entity, err: err}
			}
			return catalogUpdatedMsg{entity: cfg.entity, name: name}
		}
	case isKey(msg, "n"), isBack(msg):
		m.confirmDiff = nil
		m.view = catalogViewEdit
	}
	return m, nil
}

// --- Delete ---

func (m CatalogModel) handleConfirmDeleteKeys(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		if m.detail == nil {
			m.view = catalogViewList
			return m, nil
		}
		client := m.client
		cfg := m.cfg
		id := m.detail.id
		name := m.detail.name
		return m, func() tea.Msg {
			if err := cfg.remove(client, id); err != nil {
				return catalogErrMsg{entity: cfg.entity, err: err}
			}
			return catalogDeletedMsg{entity: cfg.entity, name: name}
		}
	case isKey(msg, "n"), isBack(msg):
		m.view = catalogViewDetail
	}
	return m, nil
}

// --- Name Check ---

func (m CatalogModel) runNameCheck(seq int) tea.Cmd {
	client := m.client
	cfg := m.cfg
	candidate := m.formVals["name"]
	excludeID := 0
	if m.editing != nil {
		excludeID = m.editing.id
	}
	return func() tea.Msg {
		items, err := cfg.load(client)
		if err != nil {
			// Fail open: an unreachable server must not block typing.
			return nameCheckDoneMsg{entity: cfg.entity, seq: seq, state: nameCheckUnknown}
		}
		state := nameCheckAvailable
		if nameTaken(items, candidate, excludeID) {
			state = nameCheckTaken
		}
		return nameCheckDoneMsg{entity: cfg.entity, seq: seq, state: state}
	}
}

// --- View ---

func (m CatalogModel) View() string {
	if m.picker.open {
		return m.picker.Render(m.width)
	}
	switch m.view {
	case catalogViewAdd, catalogViewEdit:
		body := m.renderForm()
		if m.view == catalogViewAdd {
			if modeLine := m.renderModeLine(); modeLine != "" {
				body = components.CenterLine(modeLine, m.width) + "\n\n" + body
			}
		}
		return components.Indent(body, 1)
	case catalogViewDetail:
		return components.Indent(m.renderDetail(), 1)
	case catalogViewConfirmSave:
		return m.renderConfirmSave()
	case catalogViewConfirmDelete:
		return m.renderConfirmDelete()
	case catalogViewConfirmDiscard:
		return components.Indent(components.ConfirmDialog("Discard Changes", "Discard unsaved changes?"), 1)
	default:
		body := m.renderList()
		if modeLine := m.renderModeLine(); modeLine != "" {
			body = components.CenterLine(modeLine, m.width) + "\n\n" + body
		}
		return components.Indent(body, 1)
	}
}

func (m CatalogModel) renderForm() string {
	if m.saving {
		return "  " + MutedStyle.Render("Saving...")
	}
	if m.view == catalogViewAdd && m.addSaved {
		msg := fmt.Sprintf("%s saved! Press Esc to add another.", nounTitler.String(m.cfg.itemNoun))
		return components.Box(SuccessStyle.Render(msg), m.width)
	}

	fields := m.visibleFields()
	var b strings.Builder
	if m.editing != nil {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("%s: %s", nounTitler.String(m.cfg.itemNoun), m.editing.name)))
		b.WriteString("\n\n")
	}
	for i, f := range fields {
		focused := i == m.formFocus && !m.modeFocus
		b.WriteString(m.renderFormField(f, focused))
		if i < len(fields)-1 {
			b.WriteString("\n\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.errText, m.width))
	}

	title := "Add " + nounTitler.String(m.cfg.itemNoun)
	if m.editing != nil {
		title = "Edit " + nounTitler.String(m.cfg.itemNoun)
	}
	return components.TitledBox(title, b.String(), m.width)
}

func (m CatalogModel) renderFormField(f fieldSpec, focused bool) string {
	var b strings.Builder

	label := f.Label
	if f.required(m.formVals) {
		label += " *"
	}
	if focused {
		b.WriteString(SelectedStyle.Render("> " + label + ":"))
	} else {
		b.WriteString(MutedStyle.Render("  " + label + ":"))
	}
	if f.Key == "name" {
		if suffix := m.nameCheckSuffix(); suffix != "" {
			b.WriteString("  " + suffix)
		}
	}
	if f.Picker != "" && focused {
		b.WriteString("  " + MutedStyle.Render("ctrl+p: pick"))
	}
	b.WriteString("\n")

	switch f.Kind {
	case fieldSelect:
		opts := m.fieldOptions(f)
		val := m.formVals[f.Key]
		if val == "" {
			val = "-"
		}
		if focused && len(opts) > 1 {
			b.WriteString(NormalStyle.Render("  ‹ " + val + " ›"))
		} else {
			b.WriteString(NormalStyle.Render("  " + val))
		}
	case fieldBool:
		val := "no"
		if m.formVals[f.Key] == "true" {
			val = "yes"
		}
		if focused {
			b.WriteString(NormalStyle.Render("  ‹ " + val + " ›"))
		} else {
			b.WriteString(NormalStyle.Render("  " + val))
		}
	case fieldMulti:
		if focused && m.selecting {
			b.WriteString(NormalStyle.Render("  " + m.renderMultiOptions(f)))
		} else {
			val := m.formVals[f.Key]
			if val == "" {
				val = "-"
			}
			line := "  " + val
			if focused {
				line += "  " + MutedStyle.Render("space: choose")
			}
			b.WriteString(NormalStyle.Render(line))
		}
	default:
		val := m.formVals[f.Key]
		if focused {
			b.WriteString(NormalStyle.Render("  " + val))
			b.WriteString(AccentStyle.Render("█"))
		} else {
			if val == "" {
				val = "-"
			}
			b.WriteString(NormalStyle.Render("  " + val))
		}
	}

	if errText, ok := m.fieldErrs[f.Key]; ok {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("  ! " + errText))
	}
	return b.String()
}

func (m CatalogModel) renderMultiOptions(f fieldSpec) string {
	opts := m.fieldOptions(f)
	if len(opts) == 0 {
		return MutedStyle.Render("no options available")
	}
	chosen := splitNames(m.formVals[f.Key])
	var b strings.Builder
	for i, opt := range opts {
		mark := "○"
		if containsName(chosen, opt) {
			mark = "●"
		}
		cell := mark + " " + opt
		if i == m.selectIdx {
			b.WriteString(SelectedStyle.Render("[" + cell + "]"))
		} else {
			b.WriteString(" " + cell + " ")
		}
		if i < len(opts)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m CatalogModel) nameCheckSuffix() string {
	switch m.check.state {
	case nameCheckPending:
		return MutedStyle.Render("checking...")
	case nameCheckTaken:
		return ErrorStyle.Render("name already in use")
	case nameCheckAvailable:
		return SuccessStyle.Render("✓ available")
	}
	return ""
}

func (m CatalogModel) renderConfirmSave() string {
	diffs := make([]components.DiffRow, len(m.confirmDiff))
	for i, ch := range m.confirmDiff {
		diffs[i] = components.DiffRow{Label: ch.Label, From: ch.Old, To: ch.New}
	}
	name := ""
	if m.editing != nil {
		name = m.editing.name
	}
	summary := []components.TableRow{
		{Label: nounTitler.String(m.cfg.itemNoun), Value: name},
		{Label: "Fields", Value: fmt.Sprintf("%d change(s)", len(m.confirmDiff))},
	}
	return components.Indent(components.ConfirmPreviewDialog("Save Changes", summary, diffs, m.width), 1)
}

func (m CatalogModel) renderConfirmDelete() string {
	msg := fmt.Sprintf("Delete %s %q?", m.cfg.itemNoun, m.deleteName)
	return components.Indent(components.ConfirmDialog("Confirm Delete", msg), 1)
}

// --- Status Hints ---

func (m CatalogModel) statusHints() []string {
	switch m.view {
	case catalogViewAdd, catalogViewEdit:
		hints := []string{
			components.Hint("↑/↓", "field"),
			components.Hint("ctrl+s", "save"),
			components.Hint("esc", "cancel"),
		}
		return hints
	case catalogViewDetail:
		hints := []string{components.Hint("esc", "back")}
		if m.detail != nil && m.canEdit(*m.detail) {
			hints = append(hints, components.Hint("e", "edit"))
		}
		if m.detail != nil && m.canDelete(*m.detail) {
			hints = append(hints, components.Hint("d", "delete"))
		}
		return hints
	case catalogViewConfirmSave, catalogViewConfirmDelete, catalogViewConfirmDiscard:
		return []string{components.Hint("y", "confirm"), components.Hint("n", "cancel")}
	default:
		hints := []string{
			components.Hint("type", "filter"),
			components.Hint("↑/↓", "move"),
			components.Hint("←/→", "page"),
			components.Hint("enter", "open"),
		}
		return hints
	}
}

// hasUnsaved reports whether quitting now would lose form input.
func (m CatalogModel) hasUnsaved() bool {
	switch m.view {
	case catalogViewAdd, catalogViewEdit, catalogViewConfirmSave, catalogViewConfirmDiscard:
		return m.dirty()
	}
	return false
}

// --- Helpers ---

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

func indexOf(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}
