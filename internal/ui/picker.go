package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/ui/components"
)

// --- Cross-Collection Picker ---

// pickerKind scopes the picker to one source collection and primary
// text column.
type pickerKind string

const (
	pickerUserPrompt   pickerKind = "user-prompt"
	pickerSystemPrompt pickerKind = "system-prompt"
	pickerResponse     pickerKind = "response"
	pickerLLM          pickerKind = "llm"
)

// pickerItem is one selectable row. index is the lower-cased composite
// search text covering both the primary and the paired column.
type pickerItem struct {
	ID         int
	Text       string
	PairedText string
	index      string
}

// pickerChoice is what a selection delivers to the host form. The host
// decides which fields the primary and paired texts land in.
type pickerChoice struct {
	Text       string
	PairedText string
	ID         int
}

// PickerModel is a modal list the editor opens to pull text out of
// another collection. Items are fetched on open and discarded on close.
type PickerModel struct {
	client  *api.Client
	kind    pickerKind
	open    bool
	loading bool
	errText string
	items   []pickerItem
	matches []pickerItem
	query   string
	list    *components.Pager
	width   int
}

func NewPickerModel(client *api.Client) PickerModel {
	return PickerModel{
		client: client,
		list:   components.NewPager(8),
	}
}

// Open activates the picker for one source and starts the fetch.
func (p *PickerModel) Open(kind pickerKind, entity string) tea.Cmd {
	p.kind = kind
	p.open = true
	p.loading = true
	p.errText = ""
	p.items = nil
	p.matches = nil
	p.query = ""
	p.list.SetItems(nil)
	client := p.client
	return func() tea.Msg {
		items, err := fetchPickerItems(client, kind)
		if err != nil {
			return pickerErrMsg{entity: entity, err: err}
		}
		return pickerLoadedMsg{entity: entity, items: items}
	}
}

// Close discards all picker state.
func (p *PickerModel) Close() {
	p.open = false
	p.loading = false
	p.errText = ""
	p.items = nil
	p.matches = nil
	p.query = ""
	p.list.SetItems(nil)
}

func (p *PickerModel) SetLoaded(items []pickerItem) {
	p.loading = false
	p.items = items
	p.applyQuery()
}

func (p *PickerModel) SetError(err error) {
	p.loading = false
	p.errText = err.Error()
}

// HandleKey consumes one key while the picker is open. A non-nil choice
// means a row was picked; closed means the overlay should go away.
func (p *PickerModel) HandleKey(msg tea.KeyMsg) (choice *pickerChoice, closed bool) {
	switch {
	case isBack(msg):
		p.Close()
		return nil, true
	case isDown(msg):
		p.list.Down()
	case isUp(msg):
		p.list.Up()
	case isKey(msg, "left"):
		p.list.PrevPage()
	case isKey(msg, "right"):
		p.list.NextPage()
	case isEnter(msg):
		idx := p.list.Selected()
		if idx < 0 || idx >= len(p.matches) {
			return nil, false
		}
		item := p.matches[idx]
		p.Close()
		return &pickerChoice{Text: item.Text, PairedText: item.PairedText, ID: item.ID}, true
	case isKey(msg, "backspace", "delete"):
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.applyQuery()
		}
	case isKey(msg, "ctrl+u"):
		if p.query != "" {
			p.query = ""
			p.applyQuery()
		}
	default:
		ch := msg.String()
		if len(ch) == 1 || ch == " " {
			p.query += ch
			p.applyQuery()
		}
	}
	return nil, false
}

// applyQuery refilters against the composite index and resets paging.
func (p *PickerModel) applyQuery() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.matches = p.items
	} else {
		var matched []pickerItem
		for _, it := range p.items {
			if strings.Contains(it.index, q) {
				matched = append(matched, it)
			}
		}
		p.matches = matched
	}
	labels := make([]string, len(p.matches))
	for i, it := range p.matches {
		labels[i] = formatPickerLine(it)
	}
	p.list.SetItems(labels)
}

func (p PickerModel) Render(width int) string {
	title := pickerTitle(p.kind)
	if p.loading {
		return components.Indent(components.TitledBox(title, MutedStyle.Render("Loading..."), width), 1)
	}

	var b strings.Builder
	b.WriteString(MutedStyle.Render("Search: "))
	b.WriteString(NormalStyle.Render(p.query))
	b.WriteString(AccentStyle.Render("█"))
	b.WriteString("\n\n")

	if p.errText != "" {
		b.WriteString(ErrorStyle.Render("! " + p.errText))
		return components.Indent(components.TitledBox(title, b.String(), width), 1)
	}
	if len(p.matches) == 0 {
		b.WriteString(MutedStyle.Render("No matches."))
		return components.Indent(components.TitledBox(title, b.String(), width), 1)
	}

	visible := p.list.Visible()
	start := p.list.PageStart()
	for i, label := range visible {
		abs := start + i
		if p.list.IsSelected(abs) {
			b.WriteString(SelectedStyle.Render("> " + label))
		} else {
			b.WriteString(NormalStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("page %d/%d · %d match(es)", p.list.Page, p.list.TotalPages(), len(p.matches))))

	return components.Indent(components.TitledBox(title, b.String(), width), 1)
}

func pickerTitle(kind pickerKind) string {
	switch kind {
	case pickerUserPrompt:
		return "Pick User Prompt"
	case pickerSystemPrompt:
		return "Pick System Prompt"
	case pickerResponse:
		return "Pick Response"
	case pickerLLM:
		return "Pick Judge Prompt"
	}
	return "Pick"
}

func formatPickerLine(it pickerItem) string {
	line := components.SanitizeOneLine(it.Text)
	return components.ClampTextWidth(line, 64)
}

// fetchPickerItems loads the source collection for one picker kind.
// Rows with a blank primary text are never listed.
func fetchPickerItems(client *api.Client, kind pickerKind) ([]pickerItem, error) {
	switch kind {
	case pickerResponse:
		responses, err := client.ListResponses()
		if err != nil {
			return nil, err
		}
		var items []pickerItem
		for _, r := range responses {
			if strings.TrimSpace(r.Text) == "" {
				continue
			}
			items = append(items, pickerItem{
				ID:    r.ID,
				Text:  r.Text,
				index: strings.ToLower(r.Name + " " + r.Text),
			})
		}
		return items, nil
	default:
		prompts, err := client.ListPrompts()
		if err != nil {
			return nil, err
		}
		var items []pickerItem
		for _, p := range prompts {
			primary, paired := p.Text, p.SystemText
			if kind == pickerSystemPrompt {
				primary, paired = p.SystemText, p.Text
			}
			if strings.TrimSpace(primary) == "" {
				continue
			}
			items = append(items, pickerItem{
				ID:         p.ID,
				Text:       primary,
				PairedText: paired,
				index:      strings.ToLower(p.Name + " " + p.Text + " " + p.SystemText),
			})
		}
		return items, nil
	}
}
