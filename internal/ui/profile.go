package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/config"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

type profileHealthMsg struct{ status string }
type profileHealthErrMsg struct{ err error }

// ProfileModel is the settings tab: who is signed in, what the role may
// do, and whether the server answers.
type ProfileModel struct {
	client *api.Client
	sess   *session.Session
	cfg    *config.Config

	health    string
	healthErr string
	probing   bool
	width     int
	height    int
}

func NewProfileModel(client *api.Client, sess *session.Session, cfg *config.Config) ProfileModel {
	return ProfileModel{client: client, sess: sess, cfg: cfg}
}

func (m ProfileModel) Init() tea.Cmd {
	m.probing = true
	return m.probe()
}

func (m ProfileModel) probe() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		status, err := client.Health()
		if err != nil {
			return profileHealthErrMsg{err}
		}
		return profileHealthMsg{status: status.Status}
	}
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileHealthMsg:
		m.probing = false
		m.health = msg.status
		m.healthErr = ""
		return m, nil
	case profileHealthErrMsg:
		m.probing = false
		m.health = ""
		m.healthErr = msg.err.Error()
		return m, nil
	case tea.KeyMsg:
		if isKey(msg, "r") {
			m.probing = true
			return m, m.probe()
		}
	}
	return m, nil
}

func (m ProfileModel) View() string {
	server := api.DefaultBaseURL
	if m.cfg != nil && m.cfg.Server() != "" {
		server = m.cfg.Server()
	}

	status := MutedStyle.Render("probing...")
	if !m.probing {
		if m.healthErr != "" {
			status = ErrorStyle.Render("unreachable: " + m.healthErr)
		} else if m.health != "" {
			status = SuccessStyle.Render(m.health)
		}
	}

	role := m.sess.Role
	if role == "" {
		role = "anonymous"
	}
	username := m.sess.Username
	if username == "" {
		username = "-"
	}

	sessionRows := []components.TableRow{
		{Label: "User", Value: username},
		{Label: "Role", Value: role},
		{Label: "Server", Value: server},
		{Label: "Health", Value: status},
	}

	perms := m.sess.Perms
	permRows := []components.TableRow{
		{Label: "Add tables", Value: yesNo(perms.CanAddTable)},
		{Label: "Update tables", Value: yesNo(perms.CanUpdateTable)},
		{Label: "Delete", Value: yesNo(perms.CanDeleteTable)},
		{Label: "Add records", Value: yesNo(perms.CanAddRecord)},
		{Label: "Update records", Value: yesNo(perms.CanUpdateRecord)},
		{Label: "Export data", Value: yesNo(perms.CanExportData)},
	}

	out := components.Table("Session", sessionRows, m.width)
	out += "\n\n" + components.Table("Capabilities", permRows, m.width)
	out += "\n\n" + MutedStyle.Render(fmt.Sprintf("  config: %s  ·  r: re-probe", config.Path()))
	return components.Indent(out, 1)
}

func yesNo(v bool) string {
	if v {
		return SuccessStyle.Render("yes")
	}
	return MutedStyle.Render("no")
}
