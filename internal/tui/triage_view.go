package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/filter"
	"github.com/s-stratton/simplyjobs/internal/core/gesture"
	"github.com/s-stratton/simplyjobs/internal/core/selection"
	"github.com/s-stratton/simplyjobs/internal/queue"
	"github.com/s-stratton/simplyjobs/internal/tui/components"
)

// openTriage enters the respondent queue for a job.
func (m *Model) openTriage(jobID int) tea.Cmd {
	m.triage = queue.NewTriage(jobID)
	m.workflow = selection.New()
	m.triageList = false
	m.triageCursor = 0
	m.triageLoading = true
	m.activeView = ViewTriage
	return m.loadApplicants(jobID, m.triage.BeginFetch(), false)
}

// closeTriage tears the queue down and returns to the postings list.
func (m *Model) closeTriage() {
	m.drag.Abort()
	m.triage = nil
	m.workflow = nil
	m.activeView = ViewEmployer
}

// startTriageRefetch reloads the current category without resetting the
// scan order.
func (m *Model) startTriageRefetch() tea.Cmd {
	return m.loadApplicants(m.triage.JobID(), m.triage.BeginFetch(), false)
}

// switchCategory changes the active tab. Category switches are
// replace-fetches: the deck takes the server's order when the response
// lands.
func (m *Model) switchCategory(category filter.Status) tea.Cmd {
	m.workflow.Clear()
	m.triageCursor = 0
	gen := m.triage.SetCategory(category)
	return m.loadApplicants(m.triage.JobID(), gen, true)
}

// handleApplicantsLoaded lands a triage fetch. The queue discards it if
// a newer fetch has started or the user already left for another job.
func (m *Model) handleApplicantsLoaded(msg applicantsLoadedMsg) tea.Cmd {
	if m.triage == nil || m.triage.JobID() != msg.jobID {
		return nil
	}
	m.triageLoading = false
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Int("job_id", msg.jobID).Msg("failed to load applicants")
		m.toasts.Error("Failed to load applicants")
		return m.ensureToastTick()
	}
	if !m.triage.ApplyFetch(msg.gen, msg.applicants, msg.replace) {
		return nil
	}
	m.workflow.Retain(filter.IDs(m.triage.Filtered()))
	m.clampTriageCursor()
	return nil
}

// resolveTriageSwipe commits a classified gesture on an applicant card.
// Status changes go through the optimistic path: mark, reorder, then
// request.
func (m *Model) resolveTriageSwipe(id int, outcome gesture.Outcome) tea.Cmd {
	switch outcome {
	case gesture.Primary:
		return m.commitStatuses([]int{id}, filter.StatusShortlisted)
	case gesture.Secondary:
		return m.commitStatuses([]int{id}, filter.StatusRejected)
	}
	return nil
}

// commitStatuses runs the optimistic half of a status mutation and
// dispatches the request for the ids whose status actually changed.
// Ids already carrying the status need no request at all.
func (m *Model) commitStatuses(ids []int, status filter.Status) tea.Cmd {
	changed := m.triage.ApplyStatus(ids, status)
	m.workflow.Retain(filter.IDs(m.triage.Filtered()))
	m.clampTriageCursor()
	if len(changed) == 0 {
		return nil
	}
	return m.updateStatuses(m.triage.JobID(), changed, status)
}

// handleStatusSettled reconciles a bulk mutation. Success and failure
// both refetch: the refetch is the rollback for a failed optimistic
// update and the confirmation for a successful one.
func (m *Model) handleStatusSettled(msg statusUpdateSettledMsg) tea.Cmd {
	if m.triage == nil || m.triage.JobID() != msg.jobID {
		return nil
	}
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Ints("ids", msg.ids).Msg("status update failed")
		m.toasts.Error("Failed to update status, restoring")
	}
	cmd := m.startTriageRefetch()
	if msg.err != nil {
		return tea.Batch(m.ensureToastTick(), cmd)
	}
	return cmd
}

// requestBulk asks for confirmation of a bulk action. Every action
// goes through the confirm ritual, deselection included; the only
// difference is what the commit does.
func (m *Model) requestBulk(action selection.Action) tea.Cmd {
	if err := m.workflow.RequestConfirm(action); err != nil {
		if errors.Is(err, selection.ErrNothingSelected) {
			m.toasts.Info("Nothing selected")
			return m.ensureToastTick()
		}
		return nil
	}

	var title, message string
	switch action {
	case selection.ActionReject:
		title = fmt.Sprintf("Reject %d applicant(s)?", m.workflow.Count())
		message = "They will move to the rejected tab."
	case selection.ActionDeselect:
		title = fmt.Sprintf("Deselect %d applicant(s)?", m.workflow.Count())
		message = "The selection is cleared; no statuses change."
	default:
		title = fmt.Sprintf("Shortlist %d applicant(s)?", m.workflow.Count())
		message = "They will move to the shortlisted tab."
	}
	m.confirm = &confirmState{kind: confirmBulkStatus, modal: components.NewConfirmModal(title, message)}
	return nil
}

// confirmBulkCommit commits the workflow's pending action after the
// modal confirms. A confirmed deselection is local only: Confirm
// already cleared the set and nothing is dispatched.
func (m *Model) confirmBulkCommit() tea.Cmd {
	action, ids, ok := m.workflow.Confirm()
	if !ok || action == selection.ActionDeselect {
		return nil
	}
	return m.commitStatuses(ids, filter.Status(action))
}

func (m *Model) clampTriageCursor() {
	n := len(m.triage.Filtered())
	if m.triageCursor >= n {
		m.triageCursor = n - 1
	}
	if m.triageCursor < 0 {
		m.triageCursor = 0
	}
}

func (m *Model) handleTriageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keyMatches(msg, m.keys.Back):
		m.closeTriage()
		return nil
	case keyMatches(msg, m.keys.NextTab):
		return m.switchCategory(nextCategory(m.triage.Category(), 1))
	case keyMatches(msg, m.keys.PrevTab):
		return m.switchCategory(nextCategory(m.triage.Category(), -1))
	case keyMatches(msg, m.keys.ViewMode):
		m.drag.Abort()
		m.triageList = !m.triageList
		m.clampTriageCursor()
		return nil
	case keyMatches(msg, m.keys.Refresh):
		return m.startTriageRefetch()
	case keyMatches(msg, m.keys.Shortlist):
		return m.requestBulk(selection.ActionShortlist)
	case keyMatches(msg, m.keys.Reject):
		return m.requestBulk(selection.ActionReject)
	case keyMatches(msg, m.keys.Deselect):
		return m.requestBulk(selection.ActionDeselect)
	}

	if m.triageList {
		return m.handleTriageListKey(msg)
	}
	return m.handleTriageStackKey(msg)
}

func (m *Model) handleTriageStackKey(msg tea.KeyMsg) tea.Cmd {
	top, ok := m.triage.Top()
	if !ok {
		return nil
	}
	switch {
	case keyMatches(msg, m.keys.Right):
		return m.resolveTriageSwipe(top.ID, gesture.Primary)
	case keyMatches(msg, m.keys.Left):
		return m.resolveTriageSwipe(top.ID, gesture.Secondary)
	case keyMatches(msg, m.keys.Skip):
		m.triage.Skip(top.ID)
	case keyMatches(msg, m.keys.Expand):
		m.drag.Abort()
		m.expanded = newExpandedView(
			top.JobSeeker.DisplayName(),
			"applied "+top.AppliedAt,
			applicantMarkdown(top),
			m.width, m.height, m.scroll,
		)
	}
	return nil
}

// triageRows returns the filtered queue in display order, top of stack
// first. The list cursor indexes into this slice.
func (m Model) triageRows() []api.Applicant {
	visible := m.triage.Filtered()
	rows := make([]api.Applicant, len(visible))
	for i, a := range visible {
		rows[len(visible)-1-i] = a
	}
	return rows
}

func (m *Model) handleTriageListKey(msg tea.KeyMsg) tea.Cmd {
	visible := m.triageRows()
	switch {
	case keyMatches(msg, m.keys.Up):
		if m.triageCursor > 0 {
			m.triageCursor--
		}
	case keyMatches(msg, m.keys.Down):
		if m.triageCursor < len(visible)-1 {
			m.triageCursor++
		}
	case keyMatches(msg, m.keys.ToggleSel):
		if m.triageCursor < len(visible) {
			m.workflow.Toggle(visible[m.triageCursor].ID)
		}
	case keyMatches(msg, m.keys.Enter):
		if m.triageCursor < len(visible) {
			a := visible[m.triageCursor]
			m.expanded = newExpandedView(
				a.JobSeeker.DisplayName(),
				"applied "+a.AppliedAt,
				applicantMarkdown(a),
				m.width, m.height, m.scroll,
			)
		}
	}
	return nil
}

func nextCategory(current filter.Status, step int) filter.Status {
	for i, c := range filter.Categories {
		if c == current.Normalize() {
			n := len(filter.Categories)
			return filter.Categories[(i+step+n)%n]
		}
	}
	return filter.StatusPending
}

// renderTriage draws the respondent queue: tabs with authoritative
// counts, then either the card stack or the selectable list.
func (m Model) renderTriage() string {
	if m.triage == nil {
		return ""
	}

	tabs := m.renderCategoryTabs()
	var body string
	switch {
	case m.triageLoading:
		body = m.spinner.View() + " loading applicants..."
	case m.triageList:
		body = m.renderTriageList()
	default:
		body = m.renderTriageStack()
	}

	return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center, tabs, "", body))
}

// renderCategoryTabs draws the status tabs. Counts come from the
// authoritative collection, so they stay correct mid-reorder.
func (m Model) renderCategoryTabs() string {
	counts := m.triage.Counts()
	active := m.triage.Category()
	parts := make([]string, 0, len(filter.Categories))
	for _, c := range filter.Categories {
		label := fmt.Sprintf("%s (%d)", strings.ToLower(string(c)), counts[c])
		if c == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderTriageStack() string {
	visible := m.triage.Filtered()
	if len(visible) == 0 {
		return mutedStyle.Render("No applicants in this category.")
	}

	top := visible[len(visible)-1]
	card := m.renderApplicantCard(top)
	if m.drag.Active() {
		card = m.shiftCard(card, m.drag.OffsetCells())
	}

	counter := mutedStyle.Render(fmt.Sprintf("%d in queue", len(visible)))
	return lipgloss.JoinVertical(lipgloss.Center, card, "", counter)
}

func (m Model) renderApplicantCard(a api.Applicant) string {
	p := a.JobSeeker
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.DisplayName()) + "\n")
	if p.City != "" || p.Country != "" {
		b.WriteString(mutedStyle.Render(p.City+", "+p.Country) + "\n")
	}
	b.WriteString(renderStatus(a.Status) + "\n")
	if p.Bio != "" {
		b.WriteString("\n" + mutedStyle.Render(truncate(p.Bio, 160)))
	}
	return cardTopStyle.Width(m.cardWidth()).Render(b.String())
}

// renderTriageList draws the bulk-selection list. Rows are rendered
// top of stack first, matching the order cards would surface in.
func (m Model) renderTriageList() string {
	rows := m.triageRows()
	if len(rows) == 0 {
		return mutedStyle.Render("No applicants in this category.")
	}

	var b strings.Builder
	for row, a := range rows {
		check := "[ ]"
		if m.workflow.IsSelected(a.ID) {
			check = selectedStyle.Render("[x]")
		}
		cursor := "  "
		if row == m.triageCursor {
			cursor = selectedStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s  %s", cursor, check, a.JobSeeker.DisplayName(), mutedStyle.Render(a.AppliedAt))
		b.WriteString(line + "\n")
	}

	footer := mutedStyle.Render(fmt.Sprintf("%d selected · x select · S shortlist · R reject · D deselect", m.workflow.Count()))
	return lipgloss.JoinVertical(lipgloss.Left, b.String(), footer)
}

func renderStatus(s filter.Status) string {
	switch s.Normalize() {
	case filter.StatusShortlisted:
		return statusShortlistedStyle.Render("shortlisted")
	case filter.StatusRejected:
		return statusRejectedStyle.Render("rejected")
	default:
		return statusPendingStyle.Render("pending")
	}
}
