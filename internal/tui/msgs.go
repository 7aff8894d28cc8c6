package tui

import (
	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/notify"
	"github.com/s-stratton/simplyjobs/internal/queue"
)

// browseLoadedMsg carries the parallel jobs + applied fetch for the
// browse queue. gen is checked against the queue before landing.
type browseLoadedMsg struct {
	gen        queue.Generation
	jobs       []api.Job
	appliedIDs []int
	err        error
}

// jobsLoadedMsg carries the employer's own postings.
type jobsLoadedMsg struct {
	jobs []api.Job
	err  error
}

// appliedLoadedMsg carries the jobseeker's applications list.
type appliedLoadedMsg struct {
	apps []api.Application
	err  error
}

// applicantsLoadedMsg carries a triage fetch result. replace is set for
// category-switch fetches, which reset the scan order.
type applicantsLoadedMsg struct {
	gen        queue.Generation
	jobID      int
	applicants []api.Applicant
	replace    bool
	err        error
}

// applySettledMsg reports the outcome of an application request.
type applySettledMsg struct {
	jobID          int
	alreadyApplied bool
	err            error
}

// statusUpdateSettledMsg reports the outcome of a bulk status mutation.
// The handler refetches on success and on failure alike; the refetch is
// what rolls back a failed optimistic update.
type statusUpdateSettledMsg struct {
	jobID int
	ids   []int
	err   error
}

// withdrawSettledMsg reports the outcome of an application withdrawal.
type withdrawSettledMsg struct {
	applicationID int
	err           error
}

// jobDeleteSettledMsg reports the outcome of a job posting deletion.
type jobDeleteSettledMsg struct {
	jobID int
	err   error
}

// tutorialFlagMsg carries the persisted tutorial-seen flag.
type tutorialFlagMsg struct {
	seen bool
	err  error
}

// profileLoadedMsg carries the caller's own profile for the
// completeness gate.
type profileLoadedMsg struct {
	profile api.Profile
	err     error
}

// profileRetryMsg re-attempts a failed profile fetch while the gate is
// unresolved.
type profileRetryMsg struct{}

// bridgeChangedMsg is delivered when a notification flag changes,
// whether by this instance or an external one.
type bridgeChangedMsg struct {
	flag  notify.Flag
	value bool
}

// bridgePollTickMsg drives the cross-instance flag poll.
type bridgePollTickMsg struct{}
