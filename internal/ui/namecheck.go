package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// nameCheckDelay is how long input must be idle before the availability
// lookup fires.
const nameCheckDelay = 500 * time.Millisecond

type nameCheckState int

const (
	nameCheckUnknown nameCheckState = iota
	nameCheckPending
	nameCheckAvailable
	nameCheckTaken
)

// nameCheck tracks the debounced name-availability probe. Every
// keystroke bumps the sequence so in-flight results for stale input are
// discarded instead of flashing the wrong verdict.
type nameCheck struct {
	state nameCheckState
	seq   int
}

// Bump invalidates any in-flight probe and returns the sequence the
// next one must carry.
func (n *nameCheck) Bump() int {
	n.seq++
	n.state = nameCheckPending
	return n.seq
}

// Reset clears the probe state, e.g. when the form is torn down.
func (n *nameCheck) Reset() {
	n.seq++
	n.state = nameCheckUnknown
}

// Current reports whether a result for the given sequence is still
// wanted.
func (n *nameCheck) Current(seq int) bool {
	return seq == n.seq
}

// Resolve applies a probe result unless it is stale.
func (n *nameCheck) Resolve(seq int, state nameCheckState) bool {
	if !n.Current(seq) {
		return false
	}
	n.state = state
	return true
}

// nameCheckTick schedules the debounce window for one probe sequence.
func nameCheckTick(entity string, seq int) tea.Cmd {
	return tea.Tick(nameCheckDelay, func(time.Time) tea.Msg {
		return nameCheckTickMsg{entity: entity, seq: seq}
	})
}

// nameTaken compares candidate against existing names, trimmed and
// case-insensitive, skipping the record being edited.
func nameTaken(items []record, candidate string, excludeID int) bool {
	want := strings.ToLower(strings.TrimSpace(candidate))
	if want == "" {
		return false
	}
	for _, r := range items {
		if excludeID != 0 && r.id == excludeID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(r.name)) == want {
			return true
		}
	}
	return false
}
