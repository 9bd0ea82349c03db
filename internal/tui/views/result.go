package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// ResultSubmitMsg is sent when the user records a deal outcome.
type ResultSubmitMsg struct {
	Result session.Result
}

// Ordered outcome choices shown in the dialog.
var outcomeChoices = []session.Outcome{
	session.OutcomeWon,
	session.OutcomeLost,
	session.OutcomePending,
	session.OutcomeNextMeeting,
}

// Focusable fields in the outcome dialog.
const (
	fieldOutcome = iota
	fieldRevenue
	fieldNextAction
	fieldNotes
	fieldCount
)

// ResultModel is the view model for the deal outcome entry dialog.
type ResultModel struct {
	companyName string
	outcome     int
	focus       int

	revenueInput    textinput.Model
	nextActionInput textinput.Model
	notesInput      textinput.Model

	width  int
	height int
}

// NewResultModel creates the outcome dialog for the named company.
func NewResultModel(companyName string, width, height int) ResultModel {
	revenue := textinput.New()
	revenue.Placeholder = "0"
	revenue.CharLimit = 20
	revenue.Width = 20

	nextAction := textinput.New()
	nextAction.Placeholder = "e.g. send revised proposal"
	nextAction.CharLimit = 200
	nextAction.Width = 48

	notes := textinput.New()
	notes.Placeholder = "anything worth remembering"
	notes.CharLimit = 500
	notes.Width = 48

	return ResultModel{
		companyName:     companyName,
		revenueInput:    revenue,
		nextActionInput: nextAction,
		notesInput:      notes,
		width:           width,
		height:          height,
	}
}

// Init returns the initial command for the result view.
func (m ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result view.
func (m ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return BackMsg{} }

		case tui.KeyTab:
			m.focus = (m.focus + 1) % fieldCount
			return m.syncFocus(), textinput.Blink

		case tui.KeyEnter:
			return m, m.submit()

		case tui.KeyLeft:
			if m.focus == fieldOutcome && m.outcome > 0 {
				m.outcome--
				return m, nil
			}

		case tui.KeyRight:
			if m.focus == fieldOutcome && m.outcome < len(outcomeChoices)-1 {
				m.outcome++
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldRevenue:
		m.revenueInput, cmd = m.revenueInput.Update(msg)
	case fieldNextAction:
		m.nextActionInput, cmd = m.nextActionInput.Update(msg)
	case fieldNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	return m, cmd
}

func (m ResultModel) submit() tea.Cmd {
	revenue, _ := strconv.ParseFloat(strings.TrimSpace(m.revenueInput.Value()), 64)

	result := session.Result{
		Outcome:     outcomeChoices[m.outcome],
		Revenue:     revenue,
		NextAction:  strings.TrimSpace(m.nextActionInput.Value()),
		Notes:       strings.TrimSpace(m.notesInput.Value()),
		CompletedAt: time.Now(),
	}
	return func() tea.Msg {
		return ResultSubmitMsg{Result: result}
	}
}

func (m ResultModel) syncFocus() ResultModel {
	m.revenueInput.Blur()
	m.nextActionInput.Blur()
	m.notesInput.Blur()

	switch m.focus {
	case fieldRevenue:
		m.revenueInput.Focus()
	case fieldNextAction:
		m.nextActionInput.Focus()
	case fieldNotes:
		m.notesInput.Focus()
	}
	return m
}

// View renders the result view.
func (m ResultModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Record Outcome"))
	b.WriteString("  ")
	b.WriteString(tui.DimStyle.Render(m.companyName))
	b.WriteString("\n\n")

	b.WriteString("Outcome\n")
	var choices []string
	for i, o := range outcomeChoices {
		label := " " + o.Label() + " "
		if i == m.outcome {
			label = tui.SelectedStyle.Render("[" + o.Label() + "]")
		} else {
			label = tui.DimStyle.Render(label)
		}
		choices = append(choices, label)
	}
	b.WriteString(strings.Join(choices, " "))
	b.WriteString("\n\n")

	b.WriteString("Revenue\n")
	b.WriteString(m.revenueInput.View())
	b.WriteString("\n\n")

	b.WriteString("Next action\n")
	b.WriteString(m.nextActionInput.View())
	b.WriteString("\n\n")

	b.WriteString("Notes\n")
	b.WriteString(m.notesInput.View())
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Tab: Next field  ←/→: Outcome  Enter: Save  Esc: Cancel"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
