// Package views provides TUI view components for the salesflow application.
package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
	"github.com/salesflow-dev/salesflow/internal/tui/diagram"
)

// ============================================================================
// Message Types
// ============================================================================

// OpenNodeMsg is sent when the user opens a node's detail view.
type OpenNodeMsg struct {
	NodeID string
}

// OpenSessionsMsg is sent when the user switches to the session list.
type OpenSessionsMsg struct{}

// OpenSearchMsg is sent when the user opens the search screen.
type OpenSearchMsg struct{}

// OpenPracticeMsg is sent when the user starts practice mode.
type OpenPracticeMsg struct{}

// OpenResultMsg is sent when the user opens the outcome entry dialog.
type OpenResultMsg struct{}

// ============================================================================
// FlowModel
// ============================================================================

// FlowModel is the view model for the script flow overview.
type FlowModel struct {
	cat    *catalog.Catalog
	ctrl   *session.Controller
	nodes  []catalog.Node // flattened in phase order
	cursor int
	width  int
	height int
}

// NewFlowModel creates the flow overview over the given catalog.
func NewFlowModel(cat *catalog.Catalog, ctrl *session.Controller, width, height int) FlowModel {
	var nodes []catalog.Node
	for _, phase := range catalog.Phases {
		nodes = append(nodes, cat.NodesInPhase(phase)...)
	}

	return FlowModel{
		cat:    cat,
		ctrl:   ctrl,
		nodes:  nodes,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the flow view.
func (m FlowModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flow view.
func (m FlowModel) Update(msg tea.Msg) (FlowModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case tui.KeyDown, "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}
		case tui.KeyEnter:
			if len(m.nodes) > 0 {
				id := m.nodes[m.cursor].ID
				return m, func() tea.Msg {
					return OpenNodeMsg{NodeID: id}
				}
			}
		case "s":
			return m, func() tea.Msg { return OpenSessionsMsg{} }
		case "/":
			return m, func() tea.Msg { return OpenSearchMsg{} }
		case "p":
			return m, func() tea.Msg { return OpenPracticeMsg{} }
		case "r":
			if m.ctrl.Current() != nil {
				return m, func() tea.Msg { return OpenResultMsg{} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the flow view.
func (m FlowModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Salesflow - Script Flow"))
	b.WriteString("\n\n")

	b.WriteString(m.sessionLine())
	b.WriteString("\n\n")

	var progress diagram.ProgressFunc
	if m.ctrl.Current() != nil {
		progress = m.ctrl.NodeProgress
	}

	selected := ""
	if len(m.nodes) > 0 {
		selected = m.nodes[m.cursor].ID
	}
	b.WriteString(diagram.Render(m.cat, progress, selected))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("↑/↓: Navigate  Enter: Open  s: Sessions  /: Search  p: Practice  r: Record outcome  Ctrl+C: Exit"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

// sessionLine summarizes the active session, or hints at creating one.
func (m FlowModel) sessionLine() string {
	cur := m.ctrl.Current()
	if cur == nil {
		return tui.DimStyle.Render("No active session. Press 's' to create or select one.")
	}

	line := fmt.Sprintf("Session: %s", cur.CompanyName)
	if cur.ContactPerson != "" {
		line += fmt.Sprintf(" (%s)", cur.ContactPerson)
	}
	if cur.Status == session.StatusCompleted && cur.Result != nil {
		line += "  " + tui.SuccessStyle.Render("["+cur.Result.Outcome.Label()+"]")
	}
	return line
}
