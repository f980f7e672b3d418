package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/config"
	"github.com/cruciblehq/crucible/cli/internal/session"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabTestCases  = 0
	tabPrompts    = 1
	tabResponses  = 2
	tabTargets    = 3
	tabPlans      = 4
	tabStrategies = 5
	tabMetrics    = 6
	tabDomains    = 7
	tabLanguages  = 8
	tabUsers      = 9
	tabActivity   = 10
	tabProfile    = 11
	tabCount      = 12
)

var tabNames = []string{
	"Test Cases", "Prompts", "Responses", "Targets", "Plans",
	"Strategies", "Metrics", "Domains", "Languages", "Users",
	"Activity", "Settings",
}

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}
type startupCheckedMsg struct {
	apiErr  string
	authErr string
}

type startupSummary struct {
	API  string
	Auth string
	Done bool
}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	client *api.Client
	config *config.Config
	sess   *session.Session

	tab         int
	tabNav      bool
	width       int
	height      int
	err         string
	helpOpen    bool
	quitConfirm bool

	startupChecking bool
	startup         startupSummary
	toast           *appToast

	testCases  CatalogModel
	prompts    CatalogModel
	responses  CatalogModel
	targets    CatalogModel
	plans      CatalogModel
	strategies CatalogModel
	metrics    CatalogModel
	domains    CatalogModel
	languages  CatalogModel
	users      CatalogModel
	activity   ActivityModel
	profile    ProfileModel
}

// NewApp creates the root application model.
func NewApp(client *api.Client, cfg *config.Config, sess *session.Session) App {
	return App{
		client:          client,
		config:          cfg,
		sess:            sess,
		tab:             tabTestCases,
		tabNav:          true,
		startupChecking: client != nil,
		startup: startupSummary{
			API:  "checking",
			Auth: "checking",
		},
		testCases:  newTestCasesCatalog(client, sess),
		prompts:    newPromptsCatalog(client, sess),
		responses:  newResponsesCatalog(client, sess),
		targets:    newTargetsCatalog(client, sess),
		plans:      newPlansCatalog(client, sess),
		strategies: newStrategiesCatalog(client, sess),
		metrics:    newMetricsCatalog(client, sess),
		domains:    newDomainsCatalog(client, sess),
		languages:  newLanguagesCatalog(client, sess),
		users:      newUsersCatalog(client, sess),
		activity:   NewActivityModel(client, sess),
		profile:    NewProfileModel(client, sess, cfg),
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.testCases.Init()}
	if a.startupChecking {
		cmds = append(cmds, a.runStartupCheckCmd())
	}
	return tea.Batch(cmds...)
}

// catalogByEntity routes tagged catalog messages to their owning tab,
// active or not.
func (a *App) catalogByEntity(entity string) *CatalogModel {
	switch entity {
	case "test-cases":
		return &a.testCases
	case "prompts":
		return &a.prompts
	case "responses":
		return &a.responses
	case "targets":
		return &a.targets
	case "test-plans":
		return &a.plans
	case "strategies":
		return &a.strategies
	case "metrics":
		return &a.metrics
	case "domains":
		return &a.domains
	case "languages":
		return &a.languages
	case "users":
		return &a.users
	}
	return nil
}

func (a *App) activeCatalog() *CatalogModel {
	switch a.tab {
	case tabTestCases:
		return &a.testCases
	case tabPrompts:
		return &a.prompts
	case tabResponses:
		return &a.responses
	case tabTargets:
		return &a.targets
	case tabPlans:
		return &a.plans
	case tabStrategies:
		return &a.strategies
	case tabMetrics:
		return &a.metrics
	case tabDomains:
		return &a.domains
	case tabLanguages:
		return &a.languages
	case tabUsers:
		return &a.users
	}
	return nil
}

// catalogEntityOf extracts the routing tag from catalog messages.
func catalogEntityOf(msg tea.Msg) (string, bool) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		return msg.entity, true
	case catalogOptionsMsg:
		return msg.entity, true
	case catalogCreatedMsg:
		return msg.entity, true
	case catalogUpdatedMsg:
		return msg.entity, true
	case catalogDeletedMsg:
		return msg.entity, true
	case catalogErrMsg:
		return msg.entity, true
	case nameCheckTickMsg:
		return msg.entity, true
	case nameCheckDoneMsg:
		return msg.entity, true
	case pickerLoadedMsg:
		return msg.entity, true
	case pickerErrMsg:
		return msg.entity, true
	}
	return "", false
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.testCases.width = msg.Width
		a.testCases.height = msg.Height
		a.prompts.width = msg.Width
		a.prompts.height = msg.Height
		a.responses.width = msg.Width
		a.responses.height = msg.Height
		a.targets.width = msg.Width
		a.targets.height = msg.Height
		a.plans.width = msg.Width
		a.plans.height = msg.Height
		a.strategies.width = msg.Width
		a.strategies.height = msg.Height
		a.metrics.width = msg.Width
		a.metrics.height = msg.Height
		a.domains.width = msg.Width
		a.domains.height = msg.Height
		a.languages.width = msg.Width
		a.languages.height = msg.Height
		a.users.width = msg.Width
		a.users.height = msg.Height
		a.activity.width = msg.Width
		a.activity.height = msg.Height
		a.profile.width = msg.Width
		a.profile.height = msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case startupCheckedMsg:
		a.startupChecking = false
		a.startup.Done = true
		a.startup.API = "ok"
		a.startup.Auth = "ok"
		if msg.apiErr != "" {
			a.startup.API = "unreachable"
			a.startup.Auth = "unknown"
			return a, a.setToast("error", "Server unreachable: "+msg.apiErr)
		}
		if msg.authErr != "" {
			a.startup.Auth = "invalid"
			return a, a.setToast("warning", "Session check failed: "+msg.authErr)
		}
		return a, a.setToast("success", fmt.Sprintf("Connected as %s (%s).", a.sess.Username, a.sess.Role))

	case activityLoadedMsg, activityUsersMsg, activityErrMsg:
		var cmd tea.Cmd
		a.activity, cmd = a.activity.Update(msg)
		return a, cmd
	case profileHealthMsg, profileHealthErrMsg:
		var cmd tea.Cmd
		a.profile, cmd = a.profile.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		// Global keys
		if isKey(msg, "?") {
			a.helpOpen = true
			return a, nil
		}
		if isQuit(msg) && !a.activeTabCapturesInput() {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}

		if !a.activeTabCapturesInput() {
			if idx, ok := tabIndexForKey(msg.String()); ok {
				app, cmd := a.switchTab(idx)
				return app, cmd
			}
		}

		// Arrow tab navigation until user enters content with Down
		if a.tabNav {
			if isKey(msg, "left") {
				newTab := (a.tab - 1 + tabCount) % tabCount
				app, cmd := a.switchTab(newTab)
				return app, cmd
			}
			if isKey(msg, "right") {
				newTab := (a.tab + 1) % tabCount
				app, cmd := a.switchTab(newTab)
				return app, cmd
			}
			if isDown(msg) {
				a.tabNav = false
				return a, nil
			}

			// Any other key exits tab nav so the active tab can handle it.
			a.tabNav = false
		} else {
			if isUp(msg) && a.canExitToTabNav() {
				a.tabNav = true
				return a, nil
			}
		}
	}

	// Tagged catalog messages route to their owning tab.
	if entity, ok := catalogEntityOf(msg); ok {
		if cm := a.catalogByEntity(entity); cm != nil {
			var cmd tea.Cmd
			*cm, cmd = cm.Update(msg)
			toastCmd := a.toastCmdForMsg(msg)
			if toastCmd != nil && cmd != nil {
				return a, tea.Batch(cmd, toastCmd)
			}
			if toastCmd != nil {
				return a, toastCmd
			}
			return a, cmd
		}
	}

	// Delegate to active tab
	var cmd tea.Cmd
	switch a.tab {
	case tabActivity:
		a.activity, cmd = a.activity.Update(msg)
	case tabProfile:
		a.profile, cmd = a.profile.Update(msg)
	default:
		if cm := a.activeCatalog(); cm != nil {
			*cm, cmd = cm.Update(msg)
		}
	}
	return a, cmd
}

// activeTabCapturesInput reports whether the active tab is in a state
// where printable keys are content, not shortcuts.
func (a App) activeTabCapturesInput() bool {
	cm := a.activeCatalog()
	if cm == nil {
		return false
	}
	if cm.picker.open {
		return true
	}
	switch cm.view {
	case catalogViewAdd, catalogViewEdit:
		return !cm.modeFocus
	case catalogViewList:
		return cm.filterBuf != "" && !cm.modeFocus
	}
	return false
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)
	startupPanel := ""
	if a.startupChecking {
		startupPanel = "\n\n" + centerBlockUniform(a.renderStartupPanel(), a.width)
	}

	var content string
	switch a.tab {
	case tabActivity:
		content = a.activity.View()
	case tabProfile:
		content = a.profile.View()
	default:
		if cm := a.activeCatalog(); cm != nil {
			content = cm.View()
		}
	}
	content = centerBlockUniform(content, a.width)

	if a.quitConfirm {
		content = centerBlockUniform(a.renderQuitConfirm(), a.width)
	} else if a.helpOpen {
		content = centerBlockUniform(a.renderHelp(), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s%s\n\n%s\n\n\n%s%s", banner, tabs, startupPanel, content, hints, feedback)
}

func (a *App) switchTab(newTab int) (App, tea.Cmd) {
	oldTab := a.tab
	a.tab = newTab
	if oldTab != newTab {
		return *a, a.initTab(newTab)
	}
	return *a, nil
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) initTab(tab int) tea.Cmd {
	switch tab {
	case tabActivity:
		return a.activity.Init()
	case tabProfile:
		return a.profile.Init()
	default:
		if cm := a.activeCatalog(); cm != nil {
			return cm.Init()
		}
	}
	return nil
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{
			components.Hint("esc", "Back"),
		}
	}
	return a.statusHintsForTab()
}

func (a App) statusHintsForTab() []string {
	base := []string{
		components.Hint("1-9/0/-/=", "Tabs"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}

	switch a.tab {
	case tabActivity:
		return append(base,
			components.Hint("↑/↓", "Scroll"),
			components.Hint("←/→", "Page"),
			components.Hint("a", "User"),
			components.Hint("enter", "Details"),
		)
	case tabProfile:
		return append(base,
			components.Hint("r", "Re-probe"),
		)
	default:
		if cm := a.activeCatalog(); cm != nil {
			return append(base, cm.statusHints()...)
		}
	}
	return base
}

func (a App) renderHelp() string {
	hints := a.statusHintsForTab()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) renderQuitConfirm() string {
	body := "You have unsaved changes. Quit anyway?"
	return components.Indent(components.ConfirmDialog("Quit", body), 1)
}

func (a App) runStartupCheckCmd() tea.Cmd {
	client := a.client
	cfg := a.config
	return func() tea.Msg {
		var checkClient *api.Client
		if client != nil {
			checkClient = client.WithTimeout(700 * time.Millisecond)
		} else {
			token := ""
			if cfg != nil {
				token = cfg.Token
			}
			checkClient = api.NewDefaultClient(token, 700*time.Millisecond)
		}

		msg := startupCheckedMsg{}
		if _, err := checkClient.Health(); err != nil {
			msg.apiErr = err.Error()
			return msg
		}
		if _, err := checkClient.GetCurrentUser(); err != nil {
			msg.authErr = err.Error()
		}
		return msg
	}
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}

func (a App) renderStartupPanel() string {
	rows := []components.TableRow{
		{Label: "API", Value: a.startup.API},
		{Label: "Auth", Value: a.startup.Auth},
	}
	return components.Table("Startup Checks", rows, a.width)
}

func (a *App) toastCmdForMsg(msg tea.Msg) tea.Cmd {
	var level, text string
	switch msg := msg.(type) {
	case catalogCreatedMsg:
		level, text = "success", fmt.Sprintf("%q created.", msg.name)
	case catalogUpdatedMsg:
		level, text = "success", fmt.Sprintf("%q updated.", msg.name)
	case catalogDeletedMsg:
		level, text = "success", fmt.Sprintf("%q deleted.", msg.name)
	}
	if text == "" {
		return nil
	}
	return a.setToast(level, text)
}

// hasUnsaved reports whether any tab holds unsaved form input.
func (a App) hasUnsaved() bool {
	catalogs := []*CatalogModel{
		&a.testCases, &a.prompts, &a.responses, &a.targets, &a.plans,
		&a.strategies, &a.metrics, &a.domains, &a.languages, &a.users,
	}
	for _, cm := range catalogs {
		if cm.hasUnsaved() {
			return true
		}
	}
	return false
}

func (a App) canExitToTabNav() bool {
	switch a.tab {
	case tabActivity:
		if a.activity.view != activityViewList {
			return false
		}
		return a.activity.list.Selected() <= a.activity.list.PageStart()
	case tabProfile:
		return true
	default:
		cm := a.activeCatalog()
		if cm == nil {
			return true
		}
		return cm.view == catalogViewList && cm.modeFocus
	}
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func tabIndexForKey(key string) (int, bool) {
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx >= 0 && idx < tabCount {
			return idx, true
		}
	case "0":
		if tabCount > 9 {
			return 9, true
		}
	case "-":
		if tabCount > 10 {
			return 10, true
		}
	case "=":
		if tabCount > 11 {
			return 11, true
		}
	}
	return 0, false
}
