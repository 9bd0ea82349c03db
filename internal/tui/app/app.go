// Package app provides the main TUI application that wires all views together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/config"
	"github.com/salesflow-dev/salesflow/internal/log"
	"github.com/salesflow-dev/salesflow/internal/practice"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
	"github.com/salesflow-dev/salesflow/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model  *tui.Model
	cfg    *config.Config
	cat    *catalog.Catalog
	ctrl   *session.Controller
	logger *log.Logger
	engine *practice.Engine

	// returnState is where Esc from the detail view goes back to,
	// since nodes open from both the flow and search screens.
	returnState tui.ViewState

	// View models
	flowView     views.FlowModel
	detailView   views.DetailModel
	sessionsView views.SessionsModel
	resultView   views.ResultModel
	searchView   views.SearchModel
	practiceView views.PracticeModel
}

// New creates a new App with the given configuration and services.
func New(cfg *config.Config, cat *catalog.Catalog, ctrl *session.Controller, logger *log.Logger) *App {
	model := tui.NewModel()

	return &App{
		model:       model,
		cfg:         cfg,
		cat:         cat,
		ctrl:        ctrl,
		logger:      logger,
		engine:      practice.New(cat, 0),
		returnState: tui.StateFlow,
		flowView:    views.NewFlowModel(cat, ctrl, model.Width, model.Height),
	}
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.flowView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		// Propagate only to the active view; inactive views pick up
		// the size when they are (re)built.
		var cmd tea.Cmd
		switch a.model.State {
		case tui.StateFlow:
			a.flowView, cmd = a.flowView.Update(msg)
		case tui.StateDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case tui.StateSessions:
			a.sessionsView, cmd = a.sessionsView.Update(msg)
		case tui.StateResult:
			a.resultView, cmd = a.resultView.Update(msg)
		case tui.StateSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case tui.StatePractice:
			a.practiceView, cmd = a.practiceView.Update(msg)
		}
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil
	}

	switch a.model.State {
	case tui.StateFlow:
		return a.updateFlow(msg)
	case tui.StateDetail:
		return a.updateDetail(msg)
	case tui.StateSessions:
		return a.updateSessions(msg)
	case tui.StateResult:
		return a.updateResult(msg)
	case tui.StateSearch:
		return a.updateSearch(msg)
	case tui.StatePractice:
		return a.updatePractice(msg)
	}

	return a, nil
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch a.model.State {
	case tui.StateFlow:
		content = a.flowView.View()
	case tui.StateDetail:
		content = a.detailView.View()
	case tui.StateSessions:
		content = a.sessionsView.View()
	case tui.StateResult:
		content = a.resultView.View()
	case tui.StateSearch:
		content = a.searchView.View()
	case tui.StatePractice:
		content = a.practiceView.View()
	default:
		content = "Unknown state"
	}

	if a.model.CtrlCPending {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	}

	return lipgloss.Place(a.model.Width, a.model.Height, lipgloss.Center, lipgloss.Center, content)
}

// ============================================================================
// State Update Handlers
// ============================================================================

func (a *App) updateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.flowView, cmd = a.flowView.Update(msg)

	switch msg := msg.(type) {
	case views.OpenNodeMsg:
		a.transitionToDetail(msg.NodeID, tui.StateFlow)
		return a, a.detailView.Init()

	case views.OpenSessionsMsg:
		a.ctrl.RefreshSummaries()
		a.model.State = tui.StateSessions
		a.sessionsView = views.NewSessionsModel(a.ctrl.Summaries(), a.model.Width, a.model.Height)
		return a, a.sessionsView.Init()

	case views.OpenSearchMsg:
		a.model.State = tui.StateSearch
		a.searchView = views.NewSearchModel(a.cat, a.model.Width, a.model.Height)
		return a, a.searchView.Init()

	case views.OpenPracticeMsg:
		a.model.State = tui.StatePractice
		a.practiceView = views.NewPracticeModel(a.engine, a.model.Width, a.model.Height)
		_ = a.logger.Append(log.Event{
			Event: log.EventPracticeStarted,
			Count: a.engine.TotalQuestions(),
		})
		return a, a.practiceView.Init()

	case views.OpenResultMsg:
		cur := a.ctrl.Current()
		if cur == nil {
			return a, cmd
		}
		a.model.State = tui.StateResult
		a.resultView = views.NewResultModel(cur.CompanyName, a.model.Width, a.model.Height)
		return a, a.resultView.Init()
	}

	return a, cmd
}

func (a *App) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.detailView, cmd = a.detailView.Update(msg)

	switch msg := msg.(type) {
	case views.ToggleCheckpointMsg:
		a.ctrl.UpdateCheckpoint(msg.NodeID, msg.Index, msg.Checked)
		return a, nil

	case views.OpenNodeMsg:
		a.transitionToDetail(msg.NodeID, a.returnState)
		return a, a.detailView.Init()

	case views.BackMsg:
		a.model.State = a.returnState
		if a.returnState == tui.StateFlow {
			return a, a.flowView.Init()
		}
		return a, a.searchView.Init()
	}

	return a, cmd
}

func (a *App) updateSessions(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.sessionsView, cmd = a.sessionsView.Update(msg)

	switch msg := msg.(type) {
	case views.CreateSessionMsg:
		a.ctrl.CreateSession(msg.CompanyName, msg.ContactPerson)
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()

	case views.SelectSessionMsg:
		a.ctrl.SelectSession(msg.SessionID)
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()

	case views.DeleteSessionMsg:
		a.ctrl.DeleteSession(msg.SessionID)
		a.ctrl.RefreshSummaries()
		a.sessionsView = views.NewSessionsModel(a.ctrl.Summaries(), a.model.Width, a.model.Height)
		return a, a.sessionsView.Init()

	case views.BackMsg:
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()
	}

	return a, cmd
}

func (a *App) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.resultView, cmd = a.resultView.Update(msg)

	switch msg := msg.(type) {
	case views.ResultSubmitMsg:
		a.ctrl.SetResult(msg.Result)
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()

	case views.BackMsg:
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()
	}

	return a, cmd
}

func (a *App) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)

	switch msg := msg.(type) {
	case views.OpenNodeMsg:
		a.transitionToDetail(msg.NodeID, tui.StateSearch)
		return a, a.detailView.Init()

	case views.BackMsg:
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()
	}

	return a, cmd
}

func (a *App) updatePractice(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.practiceView, cmd = a.practiceView.Update(msg)

	switch msg := msg.(type) {
	case views.PracticeEndedMsg:
		_ = a.logger.Append(log.Event{
			Event: log.EventPracticeEnded,
			Score: msg.Score,
			Total: msg.Answered,
		})
		a.model.State = tui.StateFlow
		return a, a.flowView.Init()
	}

	return a, cmd
}

// ============================================================================
// State Transitions
// ============================================================================

// transitionToDetail opens a node, remembering where to return on Esc.
func (a *App) transitionToDetail(nodeID string, returnTo tui.ViewState) {
	a.model.State = tui.StateDetail
	a.returnState = returnTo
	a.detailView = views.NewDetailModel(a.cat, a.ctrl, nodeID, a.model.Width, a.model.Height)
}
