package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/config"
	"github.com/s-stratton/simplyjobs/internal/core/filter"
	"github.com/s-stratton/simplyjobs/internal/core/session"
	"github.com/s-stratton/simplyjobs/internal/notify"
)

func newTestModel(t *testing.T, role session.Role) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	m := New(Options{
		Config:  &cfg,
		Client:  api.New("http://localhost:0", "token", cfg.Server.Timeout, zerolog.Nop()),
		Bridge:  notify.NewBridge(nil),
		Session: session.Session{Username: "sam", Account: role, Token: "token"},
		Logger:  zerolog.Nop(),
	})
	m.width = 80
	m.height = 24
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func pressKey(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func someJobs() []api.Job {
	return []api.Job{
		{ID: 1, Title: "Backend Engineer", Company: "Acme"},
		{ID: 2, Title: "SRE", Company: "Globex"},
		{ID: 3, Title: "Data Engineer", Company: "Initech"},
	}
}

func TestModel_browse_fetch_populates_stack(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	gen := m.browse.BeginFetch()

	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs(), appliedIDs: []int{2}})

	assert.False(t, m.browseLoading)
	visible := m.browse.Unapplied()
	require.Len(t, visible, 2)
	top, ok := m.browse.Top()
	require.True(t, ok)
	assert.Equal(t, 3, top.ID)
}

func TestModel_stale_browse_fetch_is_discarded(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	stale := m.browse.BeginFetch()
	fresh := m.browse.BeginFetch()

	m, _ = update(t, m, browseLoadedMsg{gen: fresh, jobs: someJobs()})
	m, _ = update(t, m, browseLoadedMsg{gen: stale, jobs: []api.Job{{ID: 99}}})

	assert.Len(t, m.browse.Unapplied(), 3)
}

func TestModel_right_swipe_applies_optimistically(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = true
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Card leaves the stack and the request is dispatched before any
	// network response.
	assert.True(t, m.browse.Applied(top.ID))
	assert.NotNil(t, cmd)

	// The notification bridge broadcast lands as a message.
	m, _ = update(t, m, <-m.bridgeCh)
	assert.True(t, m.hasUnseen)
}

func TestModel_incomplete_profile_gates_stack(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = false
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	// The stack is replaced by the gate notice and swipes are inert.
	assert.Contains(t, m.View(), "Finish your profile")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, m.browse.Applied(top.ID))
}

func TestModel_unresolved_gate_hides_stack(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	// No profile response yet: gated content must not render, applying
	// must not work, and a press must not start a drag.
	assert.Contains(t, m.View(), "checking your profile")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, m.browse.Applied(top.ID))
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40})
	assert.False(t, m.drag.Active())
}

func TestModel_profile_fetch_failure_surfaces_and_retries(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)

	m, cmd := update(t, m, profileLoadedMsg{err: assert.AnError})

	assert.False(t, m.gateResolved)
	assert.True(t, m.toasts.HasToasts())
	require.NotNil(t, cmd)

	// The retry tick re-issues the fetch while the gate is unresolved.
	m, cmd = update(t, m, profileRetryMsg{})
	assert.NotNil(t, cmd)

	m.gateResolved = true
	_, cmd = update(t, m, profileRetryMsg{})
	assert.Nil(t, cmd)
}

func TestModel_left_swipe_sinks_card(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = true
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	before, _ := m.browse.Top()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	// Passing never talks to the server and never shrinks the queue.
	assert.Nil(t, cmd)
	assert.Len(t, m.browse.Unapplied(), 3)
	after, _ := m.browse.Top()
	assert.NotEqual(t, before.ID, after.ID)
}

func TestModel_failed_apply_triggers_refetch(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)

	m, cmd := update(t, m, applySettledMsg{jobID: 1, err: assert.AnError})

	assert.NotNil(t, cmd)
	assert.True(t, m.toasts.HasToasts())
	assert.True(t, m.browseLoading)
}

func TestModel_drag_release_classifies_swipe(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = true
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40})
	assert.True(t, m.scroll.Locked())

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 48})
	m, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 55})

	// 15 columns right clears the default sensitivity.
	assert.True(t, m.browse.Applied(top.ID))
	assert.NotNil(t, cmd)
	assert.False(t, m.scroll.Locked())
}

func TestModel_short_drag_is_a_cancel(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = true
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40})
	m, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 44})

	assert.Nil(t, cmd)
	assert.False(t, m.browse.Applied(top.ID))
	after, _ := m.browse.Top()
	assert.Equal(t, top.ID, after.ID)
}

func someApplicants() []api.Applicant {
	return []api.Applicant{
		{ID: 10, JobSeeker: api.Profile{FirstName: "Ana", LastName: "B"}, Status: filter.StatusPending},
		{ID: 11, JobSeeker: api.Profile{FirstName: "Carl", LastName: "D"}, Status: filter.StatusPending},
		{ID: 12, JobSeeker: api.Profile{FirstName: "Eve", LastName: "F"}, Status: filter.StatusShortlisted},
	}
}

func triageModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, session.RoleEmployer)
	_ = (&m).openTriage(7)
	gen := m.triage.BeginFetch()
	m, _ = update(t, m, applicantsLoadedMsg{gen: gen, jobID: 7, applicants: someApplicants()})
	return m
}

func TestModel_triage_swipe_updates_status_optimistically(t *testing.T) {
	m := triageModel(t)
	top, ok := m.triage.Top()
	require.True(t, ok)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.NotNil(t, cmd)
	a, _ := m.triage.Applicant(top.ID)
	assert.Equal(t, filter.StatusShortlisted, a.Status)
	for _, v := range m.triage.Filtered() {
		assert.NotEqual(t, top.ID, v.ID)
	}
}

func TestModel_failed_status_update_refetches(t *testing.T) {
	m := triageModel(t)

	m, cmd := update(t, m, statusUpdateSettledMsg{jobID: 7, ids: []int{10}, err: assert.AnError})

	assert.NotNil(t, cmd)
	assert.True(t, m.toasts.HasToasts())
}

func TestModel_bulk_selection_confirm_flow(t *testing.T) {
	m := triageModel(t)
	m, _ = pressKey(t, m, "v") // list mode
	m, _ = pressKey(t, m, "x") // select row 0
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = pressKey(t, m, "x") // select row 1
	require.Equal(t, 2, m.workflow.Count())

	m, _ = pressKey(t, m, "R")
	require.NotNil(t, m.confirm)

	m, cmd := pressKey(t, m, "y")

	assert.Nil(t, m.confirm)
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, m.workflow.Count())
	assert.Equal(t, 2, m.triage.Counts()[filter.StatusRejected])
}

func TestModel_bulk_cancel_preserves_selection(t *testing.T) {
	m := triageModel(t)
	m, _ = pressKey(t, m, "v")
	m, _ = pressKey(t, m, "x")
	m, _ = pressKey(t, m, "S")
	require.NotNil(t, m.confirm)

	m, _ = pressKey(t, m, "n")

	assert.Nil(t, m.confirm)
	assert.Equal(t, 1, m.workflow.Count())
	// Nothing was committed: only the pre-existing shortlist remains.
	assert.Equal(t, 1, m.triage.Counts()[filter.StatusShortlisted])
}

func TestModel_deselect_requires_confirm(t *testing.T) {
	m := triageModel(t)
	m, _ = pressKey(t, m, "v")
	m, _ = pressKey(t, m, "x")

	m, _ = pressKey(t, m, "D")

	// Deselection goes through the same confirm ritual as the status
	// actions; the set is intact until the dialog is answered.
	require.NotNil(t, m.confirm)
	assert.Equal(t, 1, m.workflow.Count())

	m, cmd := pressKey(t, m, "y")

	// Confirmed deselection clears locally and dispatches nothing.
	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.workflow.Count())
	assert.Equal(t, 2, m.triage.Counts()[filter.StatusPending])
}

func TestModel_deselect_cancel_keeps_selection(t *testing.T) {
	m := triageModel(t)
	m, _ = pressKey(t, m, "v")
	m, _ = pressKey(t, m, "x")
	m, _ = pressKey(t, m, "D")
	require.NotNil(t, m.confirm)

	m, _ = pressKey(t, m, "n")

	assert.Nil(t, m.confirm)
	assert.Equal(t, 1, m.workflow.Count())
}

func TestModel_category_switch_is_replace_fetch(t *testing.T) {
	m := triageModel(t)
	m.triage.Skip(10) // perturb the scan order

	m, cmd := pressKey(t, m, "]")

	require.NotNil(t, cmd)
	assert.Equal(t, filter.StatusShortlisted, m.triage.Category())

	// The landing replace-fetch resets the deck to server order.
	gen := m.triage.BeginFetch()
	m, _ = update(t, m, applicantsLoadedMsg{gen: gen, jobID: 7, applicants: someApplicants(), replace: true})
	visible := m.triage.Filtered()
	require.Len(t, visible, 1)
	assert.Equal(t, 12, visible[0].ID)
}

func TestModel_tutorial_dismissed_on_first_key(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m, _ = update(t, m, tutorialFlagMsg{seen: false})
	require.True(t, m.showTutorial)

	m, cmd := pressKey(t, m, "x")

	assert.False(t, m.showTutorial)
	assert.NotNil(t, cmd)
}

func TestModel_expanded_overlay_suppresses_gestures(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.gateResolved = true
	m.profileOK = true
	gen := m.browse.BeginFetch()
	m, _ = update(t, m, browseLoadedMsg{gen: gen, jobs: someJobs()})
	top, _ := m.browse.Top()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.expanded)
	assert.True(t, m.scroll.Locked())

	// A press while the overlay is open must not start a drag.
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40})
	assert.False(t, m.drag.Active())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.expanded)
	assert.False(t, m.scroll.Locked())

	after, _ := m.browse.Top()
	assert.Equal(t, top.ID, after.ID)
}

func TestModel_bridge_change_updates_dock_indicator(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)

	m, cmd := update(t, m, bridgeChangedMsg{flag: notify.FlagUnseenApplications, value: true})

	assert.True(t, m.hasUnseen)
	assert.NotNil(t, cmd) // re-arms the listener
}

func TestModel_visiting_applied_clears_flag(t *testing.T) {
	m := newTestModel(t, session.RoleJobseeker)
	m.hasUnseen = true

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, ViewApplied, m.activeView)
	assert.NotNil(t, cmd)
	// The clear broadcasts through the bridge channel.
	m, _ = update(t, m, <-m.bridgeCh)
	assert.False(t, m.hasUnseen)
}
