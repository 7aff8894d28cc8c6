package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/notify"
	"github.com/s-stratton/simplyjobs/internal/tui/components"
)

// appliedItem adapts an application for the bubbles list.
type appliedItem struct {
	app api.Application
}

func (i appliedItem) Title() string {
	return i.app.Job.Title
}

func (i appliedItem) Description() string {
	return fmt.Sprintf("%s · %s · applied %s", i.app.Job.Company, i.app.Job.Location, i.app.AppliedAt)
}

func (i appliedItem) FilterValue() string {
	return i.app.Job.Title + " " + i.app.Job.Company
}

// activateApplied enters the applications view. Visiting the view is
// what clears the unseen-applications indicator.
func (m *Model) activateApplied() tea.Cmd {
	m.activeView = ViewApplied
	m.appliedLoading = true
	m.bridge.Clear(context.Background(), notify.FlagUnseenApplications)
	return m.loadApplied()
}

func (m *Model) handleAppliedLoaded(msg appliedLoadedMsg) tea.Cmd {
	m.appliedLoading = false
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("failed to load applications")
		m.toasts.Error("Failed to load applications")
		return m.ensureToastTick()
	}
	m.applied = msg.apps

	items := make([]list.Item, len(msg.apps))
	for i, a := range msg.apps {
		items[i] = appliedItem{app: a}
	}
	m.appliedList.SetItems(items)
	return nil
}

// handleWithdrawSettled reconciles a withdrawal. The list was already
// trimmed optimistically; both outcomes refetch for the server's view.
func (m *Model) handleWithdrawSettled(msg withdrawSettledMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Int("application_id", msg.applicationID).Msg("withdraw failed")
		m.toasts.Error("Failed to withdraw, restoring")
		return tea.Batch(m.ensureToastTick(), m.loadApplied())
	}
	return m.loadApplied()
}

func (m *Model) handleAppliedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keyMatches(msg, m.keys.Refresh):
		m.appliedLoading = true
		return m.loadApplied()
	case keyMatches(msg, m.keys.Delete):
		item, ok := m.appliedList.SelectedItem().(appliedItem)
		if !ok {
			return nil
		}
		modal := components.NewConfirmModal(
			"Withdraw application?",
			fmt.Sprintf("%s at %s", item.app.Job.Title, item.app.Job.Company),
		)
		m.confirm = &confirmState{kind: confirmWithdraw, modal: modal, targetID: item.app.ID}
		return nil
	case keyMatches(msg, m.keys.Enter):
		item, ok := m.appliedList.SelectedItem().(appliedItem)
		if ok {
			m.expanded = newExpandedView(
				item.app.Job.Title,
				item.app.Job.Company,
				jobMarkdown(item.app.Job),
				m.width, m.height, m.scroll,
			)
		}
		return nil
	}

	var cmd tea.Cmd
	m.appliedList, cmd = m.appliedList.Update(msg)
	return cmd
}

// withdrawOptimistic drops the application locally before the request
// settles.
func (m *Model) withdrawOptimistic(id int) tea.Cmd {
	kept := m.applied[:0]
	for _, a := range m.applied {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	m.applied = kept

	items := make([]list.Item, len(m.applied))
	for i, a := range m.applied {
		items[i] = appliedItem{app: a}
	}
	m.appliedList.SetItems(items)
	return m.withdrawApplication(id)
}

func (m Model) renderApplied() string {
	if m.appliedLoading {
		return m.renderCentered(m.spinner.View() + " loading applications...")
	}
	if len(m.applied) == 0 {
		return m.renderCentered(mutedStyle.Render("No applications yet.\nSwipe right on a job to apply."))
	}
	return m.appliedList.View()
}
