package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// BackMsg is sent when the user leaves the current view.
type BackMsg struct{}

// ToggleCheckpointMsg is sent when the user toggles a checkpoint. The
// app applies it through the controller so logging stays centralized.
type ToggleCheckpointMsg struct {
	NodeID  string
	Index   int
	Checked bool
}

// DetailModel is the view model for a single script node.
type DetailModel struct {
	cat    *catalog.Catalog
	ctrl   *session.Controller
	node   *catalog.Node
	cursor int
	showQA bool
	width  int
	height int
}

// NewDetailModel creates the detail view for the given node id.
func NewDetailModel(cat *catalog.Catalog, ctrl *session.Controller, nodeID string, width, height int) DetailModel {
	return DetailModel{
		cat:    cat,
		ctrl:   ctrl,
		node:   cat.ByID(nodeID),
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the detail view.
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	if m.node == nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return BackMsg{} }

		case tui.KeyUp, "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case tui.KeyDown, "j":
			if m.cursor < len(m.node.Checkpoints)-1 {
				m.cursor++
			}

		case tui.KeySpace:
			if m.ctrl.Current() == nil || len(m.node.Checkpoints) == 0 {
				break
			}
			states := m.ctrl.CheckpointStates(m.node.ID)
			checked := false
			if m.cursor < len(states) {
				checked = states[m.cursor]
			}
			nodeID, index := m.node.ID, m.cursor
			return m, func() tea.Msg {
				return ToggleCheckpointMsg{NodeID: nodeID, Index: index, Checked: !checked}
			}

		case "q":
			m.showQA = !m.showQA

		default:
			// Number keys follow the node's outgoing actions.
			if len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
				i := int(msg.String()[0] - '1')
				if i < len(m.node.Actions) {
					target := m.node.Actions[i].NextNodeID
					return m, func() tea.Msg {
						return OpenNodeMsg{NodeID: target}
					}
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the detail view.
func (m DetailModel) View() string {
	if m.node == nil {
		return tui.ErrorStyle.Render("Node not found. Press any key to go back.")
	}

	var b strings.Builder

	b.WriteString(tui.PhaseStyle(m.node.Phase).Render(m.node.Phase.Label()))
	b.WriteString("  ")
	b.WriteString(tui.TitleStyle.Render(m.node.Title))
	b.WriteString("  ")
	b.WriteString(tui.DimStyle.Render("(" + m.node.Duration + ")"))
	b.WriteString("\n\n")

	b.WriteString(m.node.Script.Main)
	b.WriteString("\n")

	if len(m.node.Script.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("Tips"))
		b.WriteString("\n")
		for _, tip := range m.node.Script.Tips {
			b.WriteString("  • " + tip + "\n")
		}
	}

	if len(m.node.Checkpoints) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("Checkpoints"))
		b.WriteString("\n")
		b.WriteString(m.renderCheckpoints())
	}

	if m.showQA && len(m.node.QA) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("Anticipated Q&A"))
		b.WriteString("\n")
		for _, qa := range m.node.QA {
			b.WriteString("  Q: " + qa.Question + "\n")
			b.WriteString(tui.DimStyle.Render("  A: "+qa.Answer) + "\n")
		}
	}

	if len(m.node.Actions) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.TitleStyle.Render("Next Steps"))
		b.WriteString("\n")
		for i, a := range m.node.Actions {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, a.Label))
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("↑/↓: Navigate  Space: Toggle  q: Q&A  1-9: Next step  Esc: Back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

func (m DetailModel) renderCheckpoints() string {
	var b strings.Builder

	states := m.ctrl.CheckpointStates(m.node.ID)
	hasSession := m.ctrl.Current() != nil

	for i, cp := range m.node.Checkpoints {
		icon := tui.CheckPending
		if states != nil && i < len(states) && states[i] {
			icon = tui.CheckDone
		}

		line := fmt.Sprintf("%s %s", icon, cp)
		if i == m.cursor && hasSession {
			line = tui.SelectedStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if !hasSession {
		b.WriteString(tui.DimStyle.Render("  (select a session to track checkpoints)") + "\n")
	}

	return b.String()
}
