package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

type activityUsersMsg struct{ users []api.User }
type activityLoadedMsg struct {
	username string
	entries  []api.ActivityEntry
}
type activityErrMsg struct{ err error }

type activityView int

const (
	activityViewList activityView = iota
	activityViewDetail
	activityViewActors
)

// ActivityModel is the read-only audit trail tab. The actor chooser
// only lists users whose role the session is allowed to look at.
type ActivityModel struct {
	client *api.Client
	sess   *session.Session

	entries   []api.ActivityEntry
	matches   []api.ActivityEntry
	list      *components.Pager
	loading   bool
	errText   string
	filterBuf string
	view      activityView
	width     int
	height    int

	actor     string
	actors    []api.User
	actorList *components.Pager

	detail *api.ActivityEntry
}

func NewActivityModel(client *api.Client, sess *session.Session) ActivityModel {
	return ActivityModel{
		client:    client,
		sess:      sess,
		list:      components.NewPager(12),
		actorList: components.NewPager(12),
		actor:     sess.Username,
		view:      activityViewList,
	}
}

func (m ActivityModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadEntries(m.actor), m.loadActors())
}

func (m ActivityModel) loadEntries(username string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		entries, err := client.GetUserActivity(username)
		if err != nil {
			return activityErrMsg{err}
		}
		return activityLoadedMsg{username: username, entries: entries}
	}
}

func (m ActivityModel) loadActors() tea.Cmd {
	client := m.client
	sess := m.sess
	return func() tea.Msg {
		users, err := client.ListUsers()
		if err != nil {
			return activityErrMsg{err}
		}
		return activityUsersMsg{users: sess.ViewableUsers(users)}
	}
}

func (m ActivityModel) Update(msg tea.Msg) (ActivityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		m.loading = false
		m.errText = ""
		m.actor = msg.username
		m.entries = msg.entries
		m.applyFilter()
		return m, nil

	case activityUsersMsg:
		m.actors = msg.users
		names := make([]string, len(m.actors))
		for i, u := range m.actors {
			names[i] = u.UserName
		}
		m.actorList.SetItems(names)
		return m, nil

	case activityErrMsg:
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case activityViewDetail:
			if isBack(msg) {
				m.detail = nil
				m.view = activityViewList
			}
			return m, nil
		case activityViewActors:
			return m.handleActorKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

func (m ActivityModel) handleListKeys(msg tea.KeyMsg) (ActivityModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isKey(msg, "left"):
		m.list.PrevPage()
	case isKey(msg, "right"):
		m.list.NextPage()
	case isEnter(msg):
		if idx := m.list.Selected(); idx >= 0 && idx < len(m.matches) {
			entry := m.matches[idx]
			m.detail = &entry
			m.view = activityViewDetail
		}
	case isKey(msg, "a"):
		if len(m.actors) > 0 {
			m.view = activityViewActors
		}
	case isKey(msg, "backspace", "delete"):
		if len(m.filterBuf) > 0 {
			m.filterBuf = m.filterBuf[:len(m.filterBuf)-1]
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

func (m ActivityModel) handleActorKeys(msg tea.KeyMsg) (ActivityModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.view = activityViewList
	case isDown(msg):
		m.actorList.Down()
	case isUp(msg):
		m.actorList.Up()
	case isKey(msg, "left"):
		m.actorList.PrevPage()
	case isKey(msg, "right"):
		m.actorList.NextPage()
	case isEnter(msg):
		if idx := m.actorList.Selected(); idx >= 0 && idx < len(m.actors) {
			m.view = activityViewList
			m.loading = true
			m.filterBuf = ""
			return m, m.loadEntries(m.actors[idx].UserName)
		}
	}
	return m, nil
}

// applyFilter matches the query against description and type.
func (m *ActivityModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filterBuf))
	if q == "" {
		m.matches = m.entries
	} else {
		var matched []api.ActivityEntry
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Description), q) || strings.Contains(strings.ToLower(e.Type), q) {
				matched = append(matched, e)
			}
		}
		m.matches = matched
	}
	labels := make([]string, len(m.matches))
	for i, e := range m.matches {
		labels[i] = formatActivityLine(e)
	}
	m.list.SetItems(labels)
}

func (m ActivityModel) View() string {
	if m.loading {
		return "  " + MutedStyle.Render("Loading activity...")
	}
	if m.errText != "" {
		return components.Indent(components.ErrorBox("Error", m.errText, m.width), 1)
	}
	switch m.view {
	case activityViewDetail:
		if m.detail != nil {
			return m.renderDetail(*m.detail)
		}
	case activityViewActors:
		return m.renderActors()
	}
	return components.Indent(m.renderList(), 1)
}

func (m ActivityModel) renderList() string {
	if len(m.matches) == 0 {
		text := fmt.Sprintf("No activity recorded for %s.", m.actor)
		if strings.TrimSpace(m.filterBuf) != "" {
			text = "No matching entries. Esc clears the filter."
		}
		return components.Box(MutedStyle.Render(text), m.width)
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

	countLine := fmt.Sprintf("%s · %d entries · page %d/%d", m.actor, len(m.matches), m.list.Page, m.list.TotalPages())
	if q := strings.TrimSpace(m.filterBuf); q != "" {
		countLine = fmt.Sprintf("%s · filter: %s", countLine, q)
	}
	content := MutedStyle.Render(countLine) + "\n\n" + rows.String()
	return components.TitledBox("Activity", content, m.width)
}

func (m ActivityModel) renderActors() string {
	if len(m.actors) == 0 {
		return components.Indent(components.Box(MutedStyle.Render("No viewable users for your role."), m.width), 1)
	}
	start := m.actorList.PageStart()
	end := start + len(m.actorList.Visible())
	if end > len(m.actors) {
		end = len(m.actors)
	}
	rows := make([][]string, 0, end-start)
	for _, u := range m.actors[start:end] {
		rows = append(rows, []string{u.UserName, u.Role})
	}
	cols := []components.TableColumn{
		{Header: "Username", Width: 28},
		{Header: "Role", Width: 12},
	}
	grid := components.TableGrid(cols, rows, components.BoxContentWidth(m.width), m.actorList.Selected()-start)
	content := grid + "\n\n" + MutedStyle.Render(fmt.Sprintf("page %d/%d · Enter selects · Esc cancels", m.actorList.Page, m.actorList.TotalPages()))
	return components.Indent(components.TitledBox("Choose User", content, m.width), 1)
}

func (m ActivityModel) renderDetail(e api.ActivityEntry) string {
	rows := []components.TableRow{
		{Label: "Description", Value: e.Description},
		{Label: "Type", Value: e.Type},
		{Label: "Status", Value: e.Status},
		{Label: "Timestamp", Value: e.Timestamp},
	}
	if e.TestCaseID != 0 {
		rows = append(rows, components.TableRow{Label: "Test Case", Value: fmt.Sprintf("#%d", e.TestCaseID)})
	}
	return components.Indent(components.Table("Activity Entry", rows, m.width), 1)
}

func formatActivityLine(e api.ActivityEntry) string {
	badge := MutedStyle.Render(e.Status)
	switch e.Status {
	case "Created":
		badge = SuccessStyle.Render(e.Status)
	case "Updated":
		badge = WarningStyle.Render(e.Status)
	case "Deleted":
		badge = ErrorStyle.Render(e.Status)
	}
	desc := components.ClampTextWidth(components.SanitizeOneLine(e.Description), 48)
	return fmt.Sprintf("%-9s %-48s  %s", badge, desc, MutedStyle.Render(e.Timestamp))
}
