package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/s-stratton/simplyjobs/internal/core/session"
)

// dockEntries returns the navigable views for the account role.
func dockEntries(role session.Role) []ViewType {
	if role == session.RoleEmployer {
		return []ViewType{ViewEmployer}
	}
	return []ViewType{ViewBrowse, ViewApplied}
}

// renderDock draws the bottom navigation bar. The applied entry carries
// a dot while the unseen-applications flag is set; the dot clears when
// the view is visited.
func (m Model) renderDock() string {
	var b strings.Builder
	for i, v := range dockEntries(m.sess.Account) {
		if i > 0 {
			b.WriteString(mutedStyle.Render("│"))
		}
		label := v.String()
		if v == ViewApplied && m.hasUnseen {
			label += dotStyle.Render(" ●")
		}
		if v == m.activeView || (v == ViewEmployer && m.activeView == ViewTriage) {
			b.WriteString(dockActiveStyle.Render(label))
		} else {
			b.WriteString(dockStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
