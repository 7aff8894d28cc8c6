package tui

// ViewType identifies a top-level screen.
type ViewType int

const (
	// ViewBrowse is the jobseeker card stack.
	ViewBrowse ViewType = iota
	// ViewApplied lists the jobseeker's own applications.
	ViewApplied
	// ViewEmployer lists the employer's job postings.
	ViewEmployer
	// ViewTriage is the per-job respondent queue.
	ViewTriage
)

func (v ViewType) String() string {
	switch v {
	case ViewBrowse:
		return "jobs"
	case ViewApplied:
		return "applied"
	case ViewEmployer:
		return "my jobs"
	case ViewTriage:
		return "applicants"
	default:
		return "unknown"
	}
}
