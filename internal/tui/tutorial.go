package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/s-stratton/simplyjobs/internal/core/session"
)

// renderTutorial draws the first-run overlay. The copy is role-scoped;
// dismissal is persisted server-side so the overlay shows once per
// account, not once per device.
func renderTutorial(role session.Role) string {
	var lines []string
	if role == session.RoleEmployer {
		lines = []string{
			titleStyle.Render("Welcome to SimplyJobs"),
			"",
			"Review applicants one card at a time:",
			"",
			"  " + statusShortlistedStyle.Render("→ swipe right") + "  shortlist",
			"  " + statusRejectedStyle.Render("← swipe left") + "   reject",
			"  " + mutedStyle.Render("s") + "              skip for now",
			"",
			"Press " + selectedStyle.Render("v") + " for list mode to select and act in bulk.",
			"",
			mutedStyle.Render("press any key to start"),
		}
	} else {
		lines = []string{
			titleStyle.Render("Welcome to SimplyJobs"),
			"",
			"Browse jobs one card at a time:",
			"",
			"  " + statusShortlistedStyle.Render("→ swipe right") + "  apply",
			"  " + statusRejectedStyle.Render("← swipe left") + "   pass",
			"  " + mutedStyle.Render("s") + "              skip for now",
			"",
			"Press " + selectedStyle.Render("enter") + " to read the full description.",
			"",
			mutedStyle.Render("press any key to start"),
		}
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderProfileGate draws the blocked-state notice shown to jobseekers
// whose profile is missing mandatory fields. Browsing is read-only
// until the profile is completed elsewhere.
func renderProfileGate() string {
	return modalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Finish your profile first"),
		"",
		"Employers need your name, email and resume",
		"before you can apply to jobs.",
		"",
		"Complete your profile on the website, then",
		"press "+selectedStyle.Render("r")+" here to refresh.",
	))
}
