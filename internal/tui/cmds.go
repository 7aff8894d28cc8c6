package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/filter"
	"github.com/s-stratton/simplyjobs/internal/notify"
	"github.com/s-stratton/simplyjobs/internal/queue"
)

// bridgePollInterval paces the cross-instance notification flag poll.
const bridgePollInterval = 2 * time.Second

// profileRetryInterval paces re-attempts of a failed profile fetch.
const profileRetryInterval = 3 * time.Second

// loadBrowseData fetches the job queue and the applied set in parallel.
// Both are needed before the stack can render: the applied set is the
// filter that hides already-applied cards.
func (m Model) loadBrowseData(gen queue.Generation) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			jobs []api.Job
			apps []api.Application
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			jobs, err = m.client.ListJobs(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			apps, err = m.client.ListApplied(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return browseLoadedMsg{gen: gen, err: err}
		}

		appliedIDs := make([]int, 0, len(apps))
		for _, a := range apps {
			appliedIDs = append(appliedIDs, a.Job.ID)
		}
		return browseLoadedMsg{gen: gen, jobs: jobs, appliedIDs: appliedIDs}
	}
}

// loadEmployerJobs fetches the employer's own postings.
func (m Model) loadEmployerJobs() tea.Cmd {
	return func() tea.Msg {
		jobs, err := m.client.ListJobs(context.Background())
		return jobsLoadedMsg{jobs: jobs, err: err}
	}
}

// loadApplied fetches the jobseeker's applications list.
func (m Model) loadApplied() tea.Cmd {
	return func() tea.Msg {
		apps, err := m.client.ListApplied(context.Background())
		return appliedLoadedMsg{apps: apps, err: err}
	}
}

// loadApplicants fetches the respondent queue for a job. The generation
// travels with the response so stale results are discarded on arrival.
func (m Model) loadApplicants(jobID int, gen queue.Generation, replace bool) tea.Cmd {
	return func() tea.Msg {
		applicants, err := m.client.ListApplicants(context.Background(), jobID)
		return applicantsLoadedMsg{
			gen:        gen,
			jobID:      jobID,
			applicants: applicants,
			replace:    replace,
			err:        err,
		}
	}
}

// applyToJob submits an application. The optimistic mark happened
// before this command ran; the settled handler reconciles.
func (m Model) applyToJob(jobID int) tea.Cmd {
	return func() tea.Msg {
		err := m.client.Apply(context.Background(), jobID)
		if err == api.ErrAlreadyApplied {
			return applySettledMsg{jobID: jobID, alreadyApplied: true}
		}
		return applySettledMsg{jobID: jobID, err: err}
	}
}

// updateStatuses submits a bulk status mutation.
func (m Model) updateStatuses(jobID int, ids []int, status filter.Status) tea.Cmd {
	return func() tea.Msg {
		err := m.client.UpdateApplications(context.Background(), ids, string(status))
		return statusUpdateSettledMsg{jobID: jobID, ids: ids, err: err}
	}
}

// withdrawApplication deletes one of the jobseeker's applications.
func (m Model) withdrawApplication(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.client.WithdrawApplication(context.Background(), id)
		return withdrawSettledMsg{applicationID: id, err: err}
	}
}

// deleteJob removes one of the employer's postings.
func (m Model) deleteJob(id int) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteJob(context.Background(), id)
		return jobDeleteSettledMsg{jobID: id, err: err}
	}
}

// loadTutorialFlag fetches the persisted tutorial-seen flag.
func (m Model) loadTutorialFlag() tea.Cmd {
	return func() tea.Msg {
		seen, err := m.client.TutorialSeen(context.Background())
		return tutorialFlagMsg{seen: seen, err: err}
	}
}

// markTutorialSeen records the dismissal. Fire and forget: the overlay
// is already gone locally and a failure only means it shows once more.
func (m Model) markTutorialSeen() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.MarkTutorialSeen(context.Background()); err != nil {
			m.logger.Warn().Err(err).Msg("failed to persist tutorial dismissal")
		}
		return nil
	}
}

// loadProfile fetches the caller's own profile for the completeness
// gate.
func (m Model) loadProfile() tea.Cmd {
	return func() tea.Msg {
		p, err := m.client.Profile(context.Background(), m.sess.Username)
		return profileLoadedMsg{profile: p, err: err}
	}
}

// scheduleProfileRetry re-attempts the profile fetch after a pause.
// The gate cannot fail open: content stays hidden until a fetch lands.
func scheduleProfileRetry() tea.Cmd {
	return tea.Tick(profileRetryInterval, func(time.Time) tea.Msg {
		return profileRetryMsg{}
	})
}

// listenForBridge waits for the next in-process flag broadcast.
// Re-issued by the handler after each delivery, the way a subscription
// channel is drained one message per command.
func listenForBridge(ch <-chan bridgeChangedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// scheduleBridgePoll drives the periodic store re-read that picks up
// flag writes from other client instances.
func scheduleBridgePoll() tea.Cmd {
	return tea.Tick(bridgePollInterval, func(time.Time) tea.Msg {
		return bridgePollTickMsg{}
	})
}

// refreshBridge re-reads the unseen-applications flag from the store.
// Changes surface through the subscription channel, not here.
func (m Model) refreshBridge() tea.Cmd {
	return func() tea.Msg {
		m.bridge.Refresh(context.Background(), notify.FlagUnseenApplications)
		return nil
	}
}
