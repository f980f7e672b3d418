package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

func TestProfileShowsSessionAndCapabilities(t *testing.T) {
	m := NewProfileModel(nil, sessionFor("curator"), nil)
	m, _ = m.Update(profileHealthMsg{status: "healthy"})

	out := stripView(m.View())
	assert.Contains(t, out, "cora")
	assert.Contains(t, out, "curator")
	assert.Contains(t, out, "healthy")
	assert.Contains(t, out, api.DefaultBaseURL)
	assert.Contains(t, out, "Add records")
	assert.Contains(t, out, "Export data")
}

func TestProfileShowsHealthError(t *testing.T) {
	m := NewProfileModel(nil, sessionFor("admin"), nil)
	m, _ = m.Update(profileHealthErrMsg{err: errors.New("connection refused")})

	out := stripView(m.View())
	assert.Contains(t, out, "unreachable: connection refused")
}

func TestProfileReprobeKey(t *testing.T) {
	m := NewProfileModel(nil, sessionFor("admin"), nil)
	m, _ = m.Update(profileHealthMsg{status: "healthy"})

	m, cmd := m.Update(keyMsg("r"))
	assert.True(t, m.probing)
	assert.NotNil(t, cmd)
}

func TestProfileAnonymousSession(t *testing.T) {
	m := NewProfileModel(nil, session.Anonymous(), nil)
	m, _ = m.Update(profileHealthErrMsg{err: errors.New("down")})

	out := stripView(m.View())
	assert.Contains(t, out, "anonymous")
}
