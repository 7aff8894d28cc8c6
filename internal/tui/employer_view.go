package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/tui/components"
)

// jobItem adapts a posting for the bubbles list.
type jobItem struct {
	job api.Job
}

func (i jobItem) Title() string {
	return i.job.Title
}

func (i jobItem) Description() string {
	return fmt.Sprintf("%s · %s · posted %s", i.job.Location, i.job.JobType, i.job.CreatedAt)
}

func (i jobItem) FilterValue() string {
	return i.job.Title + " " + i.job.Location
}

func (m *Model) handleJobsLoaded(msg jobsLoadedMsg) tea.Cmd {
	m.jobsLoading = false
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Msg("failed to load postings")
		m.toasts.Error("Failed to load your jobs")
		return m.ensureToastTick()
	}
	m.jobs = msg.jobs

	items := make([]list.Item, len(msg.jobs))
	for i, j := range msg.jobs {
		items[i] = jobItem{job: j}
	}
	m.jobList.SetItems(items)
	return nil
}

// handleJobDeleteSettled reconciles a posting deletion. Both outcomes
// refetch; failure restores the optimistically removed row.
func (m *Model) handleJobDeleteSettled(msg jobDeleteSettledMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error().Err(msg.err).Int("job_id", msg.jobID).Msg("job delete failed")
		m.toasts.Error("Failed to delete job, restoring")
		m.jobsLoading = true
		return tea.Batch(m.ensureToastTick(), m.loadEmployerJobs())
	}
	m.jobsLoading = true
	return m.loadEmployerJobs()
}

func (m *Model) handleEmployerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keyMatches(msg, m.keys.Refresh):
		m.jobsLoading = true
		return m.loadEmployerJobs()
	case keyMatches(msg, m.keys.Enter):
		item, ok := m.jobList.SelectedItem().(jobItem)
		if ok {
			return m.openTriage(item.job.ID)
		}
		return nil
	case keyMatches(msg, m.keys.Delete):
		item, ok := m.jobList.SelectedItem().(jobItem)
		if !ok {
			return nil
		}
		modal := components.NewConfirmModal(
			"Delete job posting?",
			fmt.Sprintf("%q and all its applications will be removed.", item.job.Title),
		)
		m.confirm = &confirmState{kind: confirmDeleteJob, modal: modal, targetID: item.job.ID}
		return nil
	}

	var cmd tea.Cmd
	m.jobList, cmd = m.jobList.Update(msg)
	return cmd
}

// deleteJobOptimistic drops the posting locally before the request
// settles.
func (m *Model) deleteJobOptimistic(id int) tea.Cmd {
	kept := m.jobs[:0]
	for _, j := range m.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	m.jobs = kept

	items := make([]list.Item, len(m.jobs))
	for i, j := range m.jobs {
		items[i] = jobItem{job: j}
	}
	m.jobList.SetItems(items)
	return m.deleteJob(id)
}

func (m Model) renderEmployer() string {
	if m.jobsLoading {
		return m.renderCentered(m.spinner.View() + " loading your jobs...")
	}
	if len(m.jobs) == 0 {
		return m.renderCentered(mutedStyle.Render("No job postings yet.\nCreate one on the website."))
	}
	return m.jobList.View()
}
