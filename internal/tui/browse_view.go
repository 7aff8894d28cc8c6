package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/gesture"
	"github.com/s-stratton/simplyjobs/internal/notify"
)

// startBrowseFetch kicks off a browse reload under a fresh generation.
func (m *Model) startBrowseFetch() tea.Cmd {
	m.browseLoading = true
	return m.loadBrowseData(m.browse.BeginFetch())
}

// handleBrowseLoaded lands a browse fetch. Stale generations are
// dropped by the queue itself.
func (m *Model) handleBrowseLoaded(msg browseLoadedMsg) tea.Cmd {
	m.browseLoading = false
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("failed to load jobs")
		m.toasts.Error("Failed to load jobs")
		return m.ensureToastTick()
	}
	if !m.browse.ApplyJobs(msg.gen, msg.jobs) {
		return nil
	}
	m.browse.SetApplied(msg.appliedIDs)
	return nil
}

// resolveBrowseSwipe commits a classified gesture on a job card.
// A right swipe applies optimistically: the card leaves the stack and
// the unseen flag is raised before the request settles. The profile
// gate must have resolved, and passed, before an apply is allowed.
func (m *Model) resolveBrowseSwipe(jobID int, outcome gesture.Outcome) tea.Cmd {
	switch outcome {
	case gesture.Primary:
		if !m.gateResolved {
			m.toasts.Info("Still checking your profile")
			return m.ensureToastTick()
		}
		if !m.profileOK {
			m.toasts.Error("Complete your profile to apply")
			return m.ensureToastTick()
		}
		m.browse.MarkApplied(jobID)
		m.browse.Resolve(jobID)
		m.bridge.Set(context.Background(), notify.FlagUnseenApplications, true)
		return m.applyToJob(jobID)
	case gesture.Secondary:
		m.browse.Resolve(jobID)
	}
	return nil
}

// handleApplySettled reconciles an application request. Success
// refetches to pick up the server's view; a duplicate means another
// instance got there first and only needs the same refetch. Any other
// failure also refetches, which rolls the optimistic mark back.
func (m *Model) handleApplySettled(msg applySettledMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Int("job_id", msg.jobID).Msg("apply failed")
		m.toasts.Error("Failed to apply, restoring job")
		return tea.Batch(m.ensureToastTick(), m.startBrowseFetch())
	}
	if msg.alreadyApplied {
		m.toasts.Info("Already applied to this job")
		return tea.Batch(m.ensureToastTick(), m.startBrowseFetch())
	}
	return m.startBrowseFetch()
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	// While the gate screen is up the stack is not rendered, so the
	// only live key is refresh, which also retries the profile fetch.
	if !m.gatePassed() {
		if keyMatches(msg, m.keys.Refresh) {
			return tea.Batch(m.loadProfile(), m.startBrowseFetch())
		}
		return nil
	}

	top, ok := m.browse.Top()
	switch {
	case keyMatches(msg, m.keys.Right):
		if ok {
			return m.resolveBrowseSwipe(top.ID, gesture.Primary)
		}
	case keyMatches(msg, m.keys.Left):
		if ok {
			return m.resolveBrowseSwipe(top.ID, gesture.Secondary)
		}
	case keyMatches(msg, m.keys.Skip):
		if ok {
			m.browse.Skip(top.ID)
		}
	case keyMatches(msg, m.keys.Expand):
		if ok {
			m.drag.Abort()
			m.expanded = newExpandedView(top.Title, top.Company, jobMarkdown(top), m.width, m.height, m.scroll)
		}
	case keyMatches(msg, m.keys.Refresh):
		return m.startBrowseFetch()
	}
	return nil
}

// renderBrowse draws the jobseeker card stack. Nothing gated renders
// until the profile gate has resolved.
func (m Model) renderBrowse() string {
	if !m.gateResolved {
		return m.renderCentered(m.spinner.View() + " checking your profile...")
	}
	if !m.profileOK {
		return m.renderCentered(renderProfileGate())
	}
	if m.browseLoading {
		return m.renderCentered(m.spinner.View() + " loading jobs...")
	}

	visible := m.browse.Unapplied()
	if len(visible) == 0 {
		return m.renderCentered(mutedStyle.Render("No more jobs right now.\nPress r to refresh."))
	}

	top := visible[len(visible)-1]
	card := m.renderJobCard(top)

	if m.drag.Active() {
		card = m.shiftCard(card, m.drag.OffsetCells())
	}

	counter := mutedStyle.Render(fmt.Sprintf("%d in queue", len(visible)))
	return m.renderCentered(lipgloss.JoinVertical(lipgloss.Center, card, "", counter))
}

func (m Model) renderJobCard(j api.Job) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(j.Title) + "\n")
	b.WriteString(j.Company + "\n")
	b.WriteString(mutedStyle.Render(j.Location+" · "+j.JobType) + "\n")
	if j.Salary > 0 {
		b.WriteString(statusShortlistedStyle.Render(fmt.Sprintf("$%d", j.Salary)) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render(truncate(j.Description, 200)))
	return cardTopStyle.Width(m.cardWidth()).Render(b.String())
}
