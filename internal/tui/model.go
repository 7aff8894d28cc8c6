// Package tui is the terminal interface: a single Bubble Tea model
// routing between the jobseeker and employer screens. All state changes
// flow through Update; network work runs in commands and lands as typed
// messages.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/s-stratton/simplyjobs/internal/api"
	"github.com/s-stratton/simplyjobs/internal/core/config"
	"github.com/s-stratton/simplyjobs/internal/core/selection"
	"github.com/s-stratton/simplyjobs/internal/core/session"
	"github.com/s-stratton/simplyjobs/internal/notify"
	"github.com/s-stratton/simplyjobs/internal/queue"
	"github.com/s-stratton/simplyjobs/internal/tui/components"
)

// confirmKind names what a confirmation modal will commit.
type confirmKind int

const (
	confirmBulkStatus confirmKind = iota
	confirmWithdraw
	confirmDeleteJob
)

// confirmState is the open confirmation modal plus its target.
type confirmState struct {
	kind     confirmKind
	modal    components.ConfirmModal
	targetID int
}

// Options wires the model's collaborators.
type Options struct {
	Config  *config.Config
	Client  *api.Client
	Bridge  *notify.Bridge
	Session session.Session
	Logger  zerolog.Logger
}

// Model is the root TUI model.
type Model struct {
	cfg    *config.Config
	client *api.Client
	bridge *notify.Bridge
	sess   session.Session
	logger zerolog.Logger

	keys     keyMap
	help     help.Model
	showHelp bool
	spinner  spinner.Model

	width  int
	height int

	activeView ViewType

	scroll *ScrollLock
	drag   dragTracker
	toasts *ToastController

	gateResolved bool
	profileOK    bool
	showTutorial bool

	browse        *queue.Browse
	browseLoading bool

	applied        []api.Application
	appliedList    list.Model
	appliedLoading bool

	jobs        []api.Job
	jobList     list.Model
	jobsLoading bool

	triage        *queue.Triage
	triageLoading bool
	triageList    bool
	triageCursor  int
	workflow      *selection.Workflow

	expanded *expandedView
	confirm  *confirmState

	bridgeCh  chan bridgeChangedMsg
	hasUnseen bool
}

// New builds the root model for the given account.
func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	appliedList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	appliedList.Title = "Applications"
	appliedList.SetShowStatusBar(false)
	appliedList.DisableQuitKeybindings()

	jobList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	jobList.Title = "My Jobs"
	jobList.SetShowStatusBar(false)
	jobList.DisableQuitKeybindings()

	scroll := NewScrollLock()

	view := ViewBrowse
	if opts.Session.Account == session.RoleEmployer {
		view = ViewEmployer
	}

	m := Model{
		cfg:         opts.Config,
		client:      opts.Client,
		bridge:      opts.Bridge,
		sess:        opts.Session,
		logger:      opts.Logger,
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		activeView:  view,
		scroll:      scroll,
		drag:        dragTracker{lock: scroll},
		toasts:      NewToastController(),
		browse:      queue.NewBrowse(),
		appliedList: appliedList,
		jobList:     jobList,
		bridgeCh:    make(chan bridgeChangedMsg, 8),
		hasUnseen:   opts.Bridge.Get(context.Background(), notify.FlagUnseenApplications),
	}

	if view == ViewEmployer {
		m.jobsLoading = true
	} else {
		m.browseLoading = true
	}

	// Broadcasts from any writer, this instance or the poll tick, land
	// in the update loop through the channel.
	ch := m.bridgeCh
	opts.Bridge.Subscribe(func(flag notify.Flag, value bool) {
		select {
		case ch <- bridgeChangedMsg{flag: flag, value: value}:
		default:
		}
	})

	return m
}

// Init starts the role-appropriate initial loads plus the tutorial
// check and the cross-instance flag poll.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		m.loadTutorialFlag(),
		listenForBridge(m.bridgeCh),
		scheduleBridgePoll(),
	}
	if m.sess.Account == session.RoleEmployer {
		cmds = append(cmds, m.loadEmployerJobs())
	} else {
		cmds = append(cmds, m.loadProfile(), m.loadBrowseData(m.browse.BeginFetch()))
	}
	return tea.Batch(cmds...)
}

// Update is the single event loop. Message kinds the model does not
// handle fall through silently.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.appliedList.SetSize(msg.Width-4, msg.Height-4)
		m.jobList.SetSize(msg.Width-4, msg.Height-4)
		if m.expanded != nil {
			m.expanded.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case browseLoadedMsg:
		return m, m.handleBrowseLoaded(msg)
	case jobsLoadedMsg:
		return m, m.handleJobsLoaded(msg)
	case appliedLoadedMsg:
		return m, m.handleAppliedLoaded(msg)
	case applicantsLoadedMsg:
		return m, m.handleApplicantsLoaded(msg)
	case applySettledMsg:
		return m, m.handleApplySettled(msg)
	case statusUpdateSettledMsg:
		return m, m.handleStatusSettled(msg)
	case withdrawSettledMsg:
		return m, m.handleWithdrawSettled(msg)
	case jobDeleteSettledMsg:
		return m, m.handleJobDeleteSettled(msg)

	case tutorialFlagMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("failed to load tutorial flag")
			return m, nil
		}
		m.showTutorial = !msg.seen
		return m, nil

	case profileLoadedMsg:
		if msg.err != nil {
			// The gate stays unresolved, so gated content stays hidden;
			// surface the failure and keep retrying.
			m.logger.Warn().Err(msg.err).Msg("failed to load profile")
			m.toasts.Error("Failed to check your profile, retrying")
			return m, tea.Batch(m.ensureToastTick(), scheduleProfileRetry())
		}
		m.gateResolved = true
		m.profileOK = msg.profile.Complete()
		return m, nil

	case profileRetryMsg:
		if m.gateResolved {
			return m, nil
		}
		return m, m.loadProfile()

	case bridgeChangedMsg:
		if msg.flag == notify.FlagUnseenApplications {
			m.hasUnseen = msg.value
		}
		return m, listenForBridge(m.bridgeCh)

	case bridgePollTickMsg:
		return m, tea.Batch(m.refreshBridge(), scheduleBridgePoll())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The tutorial overlay swallows the first key press entirely.
	if m.showTutorial {
		m.showTutorial = false
		return m, m.markTutorialSeen()
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.expanded != nil {
		if keyMatches(msg, m.keys.Back) || keyMatches(msg, m.keys.Quit) {
			m.expanded.Close()
			m.expanded = nil
			return m, nil
		}
		return m, m.expanded.Update(msg)
	}

	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case keyMatches(msg, m.keys.NextView) && m.activeView != ViewTriage:
		return m.cycleView()
	}

	switch m.activeView {
	case ViewBrowse:
		return m, m.handleBrowseKey(msg)
	case ViewApplied:
		return m, m.handleAppliedKey(msg)
	case ViewEmployer:
		return m, m.handleEmployerKey(msg)
	case ViewTriage:
		return m, m.handleTriageKey(msg)
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	c.modal, _ = c.modal.Update(msg)

	switch {
	case c.modal.Confirmed():
		m.confirm = nil
		switch c.kind {
		case confirmBulkStatus:
			return m, m.confirmBulkCommit()
		case confirmWithdraw:
			return m, m.withdrawOptimistic(c.targetID)
		case confirmDeleteJob:
			return m, m.deleteJobOptimistic(c.targetID)
		}
	case c.modal.Cancelled():
		m.confirm = nil
		if c.kind == confirmBulkStatus && m.workflow != nil {
			m.workflow.Cancel()
		}
	}
	return m, nil
}

// handleMouse routes pointer input. Drags only exist in the stack
// views; while an overlay or modal is up, card gestures are suppressed
// and the wheel scrolls the overlay body.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil || m.showTutorial {
		return m, nil
	}
	if m.expanded != nil {
		return m, m.expanded.Update(msg)
	}

	stackView := m.activeView == ViewBrowse || (m.activeView == ViewTriage && !m.triageList)
	if !stackView {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.activeView == ViewBrowse && !m.gatePassed() {
			return m, nil
		}
		if id, ok := m.topCardID(); ok {
			m.drag.Start(id, msg.X)
		}
	case tea.MouseActionMotion:
		m.drag.Move(msg.X)
	case tea.MouseActionRelease:
		id, outcome, ok := m.drag.Release(msg.X, m.cfg.Swipe.Sensitivity)
		if !ok {
			return m, nil
		}
		if m.activeView == ViewBrowse {
			return m, m.resolveBrowseSwipe(id, outcome)
		}
		return m, m.resolveTriageSwipe(id, outcome)
	}
	return m, nil
}

func (m Model) topCardID() (int, bool) {
	if m.activeView == ViewBrowse {
		top, ok := m.browse.Top()
		return top.ID, ok
	}
	if m.triage != nil {
		top, ok := m.triage.Top()
		return top.ID, ok
	}
	return 0, false
}

func (m Model) cycleView() (tea.Model, tea.Cmd) {
	entries := dockEntries(m.sess.Account)
	if len(entries) < 2 {
		return m, nil
	}
	for i, v := range entries {
		if v == m.activeView {
			next := entries[(i+1)%len(entries)]
			if next == ViewApplied {
				return m, m.activateApplied()
			}
			m.activeView = next
			return m, nil
		}
	}
	m.activeView = entries[0]
	return m, nil
}

// View composes the active screen, the dock, and any overlay.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch {
	case m.showTutorial:
		body = m.renderCentered(renderTutorial(m.sess.Account))
	case m.confirm != nil:
		body = m.renderCentered(m.confirm.modal.View())
	case m.expanded != nil:
		body = m.renderCentered(m.expanded.View())
	default:
		switch m.activeView {
		case ViewBrowse:
			body = m.renderBrowse()
		case ViewApplied:
			body = m.renderApplied()
		case ViewEmployer:
			body = m.renderEmployer()
		case ViewTriage:
			body = m.renderTriage()
		}
	}

	footer := m.renderDock()
	if m.showHelp {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.help.FullHelpView(m.keys.FullHelp()), footer)
	}
	if toasts := renderToasts(m.toasts); toasts != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, toasts, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Run starts the program. Mouse cell motion is required for drag
// gestures.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// gatePassed reports whether the profile gate has resolved and the
// profile clears it. Employers have no gate.
func (m Model) gatePassed() bool {
	if m.sess.Account == session.RoleEmployer {
		return true
	}
	return m.gateResolved && m.profileOK
}

// ensureToastTick starts the TTL timer if it is not already running.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m Model) renderCentered(content string) string {
	height := m.height - 2
	if height < 1 {
		height = 1
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) cardWidth() int {
	w := m.width / 2
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}

// shiftCard nudges the rendered card horizontally to follow the drag.
func (m Model) shiftCard(card string, offsetCells int) string {
	if offsetCells > 0 {
		return lipgloss.NewStyle().MarginLeft(min(offsetCells, m.width/4)).Render(card)
	}
	if offsetCells < 0 {
		return lipgloss.NewStyle().MarginRight(min(-offsetCells, m.width/4)).Render(card)
	}
	return card
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
