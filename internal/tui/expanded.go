package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/s-stratton/simplyjobs/internal/api"
)

// scrollLockOwnerOverlay names the expanded overlay's hold on the
// scroll lock.
const scrollLockOwnerOverlay = "overlay"

// expandedView is the full-detail overlay for the top card. While open
// it holds the scroll lock so wheel input scrolls the overlay body and
// nothing underneath, and the model suppresses card gestures entirely.
type expandedView struct {
	title    string
	subtitle string
	vp       viewport.Model
	lock     *ScrollLock
}

// newExpandedView opens an overlay over the given markdown body. Render
// failures fall back to the raw text.
func newExpandedView(title, subtitle, markdown string, width, height int, lock *ScrollLock) *expandedView {
	bodyWidth := width - 8
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	bodyHeight := height - 10
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	body := markdown
	if rendered, err := glamour.Render(markdown, "dark"); err == nil {
		body = rendered
	}

	vp := viewport.New(bodyWidth, bodyHeight)
	vp.SetContent(body)

	lock.Acquire(scrollLockOwnerOverlay)
	return &expandedView{
		title:    title,
		subtitle: subtitle,
		vp:       vp,
		lock:     lock,
	}
}

// Close releases the scroll lock. Must run on every dismissal path.
func (e *expandedView) Close() {
	e.lock.Release(scrollLockOwnerOverlay)
}

// Update scrolls the overlay body.
func (e *expandedView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.vp, cmd = e.vp.Update(msg)
	return cmd
}

// Resize adjusts the overlay to a new terminal size.
func (e *expandedView) Resize(width, height int) {
	bodyWidth := width - 8
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	bodyHeight := height - 10
	if bodyHeight < 5 {
		bodyHeight = 5
	}
	e.vp.Width = bodyWidth
	e.vp.Height = bodyHeight
}

// View renders the overlay panel.
func (e *expandedView) View() string {
	header := titleStyle.Render(e.title)
	if e.subtitle != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, mutedStyle.Render(e.subtitle))
	}
	footer := mutedStyle.Render(fmt.Sprintf("%3.0f%%  esc to close", e.vp.ScrollPercent()*100))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", e.vp.View(), "", footer))
}

// jobMarkdown builds the overlay body for a job card.
func jobMarkdown(j api.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", j.Title)
	fmt.Fprintf(&b, "**%s** · %s · %s\n\n", j.Company, j.Location, j.JobType)
	if j.Salary > 0 {
		fmt.Fprintf(&b, "Salary: **$%d**\n\n", j.Salary)
	}
	b.WriteString(j.Description)
	return b.String()
}

// applicantMarkdown builds the overlay body for an applicant card.
func applicantMarkdown(a api.Applicant) string {
	p := a.JobSeeker
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.DisplayName())
	if p.City != "" || p.Country != "" {
		fmt.Fprintf(&b, "%s, %s\n\n", p.City, p.Country)
	}
	if p.Bio != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Bio)
	}
	if len(p.Experiences) > 0 {
		b.WriteString("### Experience\n\n")
		for _, e := range p.Experiences {
			fmt.Fprintf(&b, "- **%s** at %s (%s – %s)\n", e.Title, e.Company, e.StartDate, e.EndDate)
		}
		b.WriteString("\n")
	}
	if len(p.Educations) > 0 {
		b.WriteString("### Education\n\n")
		for _, e := range p.Educations {
			fmt.Fprintf(&b, "- %s, %s in %s (%s – %s)\n", e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate)
		}
		b.WriteString("\n")
	}
	if p.Resume != "" {
		fmt.Fprintf(&b, "Resume: %s\n", p.Resume)
	}
	return b.String()
}
