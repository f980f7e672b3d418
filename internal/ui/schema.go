package ui

import (
	"fmt"
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
)

// --- Field Schema ---

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldMultiline
	fieldSelect
	fieldBool
	fieldMulti
)

// fieldSpec describes one editable column of a collection. The same
// specs drive the list filter, the detail table, and the add/edit form.
type fieldSpec struct {
	Key   string
	Label string
	Kind  fieldKind

	Required     bool
	RequiredWhen func(values map[string]string) bool
	OmitWhen     func(values map[string]string) bool

	Options     []string
	LoadOptions func(c *api.Client) ([]string, error)

	Searchable bool

	Picker      pickerKind
	PickerApply func(values map[string]string, choice pickerChoice)

	Frozen func(r record) bool
}

// record is the normalized row shape every collection is reduced to
// before it reaches a view.
type record struct {
	id     int
	name   string
	values map[string]string
}

func (r record) value(key string) string {
	if r.values == nil {
		return ""
	}
	return r.values[key]
}

// omitted reports whether the field is inactive for the given form
// values. Omitted fields are skipped in focus order, validation, and
// payloads.
func (f fieldSpec) omitted(values map[string]string) bool {
	return f.OmitWhen != nil && f.OmitWhen(values)
}

// required reports whether the field must be non-empty for the given
// form values.
func (f fieldSpec) required(values map[string]string) bool {
	if f.omitted(values) {
		return false
	}
	if f.Required {
		return true
	}
	return f.RequiredWhen != nil && f.RequiredWhen(values)
}

// validateForm checks every active field and returns one error message
// per offending key.
func validateForm(fields []fieldSpec, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range fields {
		if !f.required(values) {
			continue
		}
		if strings.TrimSpace(values[f.Key]) == "" {
			errs[f.Key] = fmt.Sprintf("%s is required", f.Label)
		}
	}
	return errs
}

// --- Dirty Tracking ---

type fieldChange struct {
	Key   string
	Label string
	Old   string
	New   string
}

// diffForm returns the fields whose effective value differs from the
// original snapshot. A field omitted by the current values counts as
// empty, so flipping a condition off clears its dependents.
func diffForm(fields []fieldSpec, orig, values map[string]string) []fieldChange {
	var changes []fieldChange
	for _, f := range fields {
		cur := values[f.Key]
		if f.omitted(values) {
			cur = ""
		}
		old := orig[f.Key]
		if cur == old {
			continue
		}
		changes = append(changes, fieldChange{Key: f.Key, Label: f.Label, Old: old, New: cur})
	}
	return changes
}

// changedValues flattens a diff back into a key→value map for the
// partial update payload.
func changedValues(changes []fieldChange) map[string]string {
	out := make(map[string]string, len(changes))
	for _, ch := range changes {
		out[ch.Key] = ch.New
	}
	return out
}

// --- Value Helpers ---

// joinNames renders a multi-value field for form state and display.
func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

// splitNames parses a multi-value field back into its parts.
func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func toggleName(list []string, name string) []string {
	for i, v := range list {
		if v == name {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, name)
}

func containsName(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// matchesFilter reports whether any searchable field of the record
// contains the query, case-insensitively.
func matchesFilter(fields []fieldSpec, r record, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.name), q) {
		return true
	}
	for _, f := range fields {
		if !f.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(r.value(f.Key)), q) {
			return true
		}
	}
	return false
}
