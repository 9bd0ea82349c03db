package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/practice"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// PracticeEndedMsg is sent when the user leaves practice mode. It
// carries the final tally so the app can log it.
type PracticeEndedMsg struct {
	Score    int
	Answered int
}

// PracticeModel is the view model for the Q&A practice quiz.
type PracticeModel struct {
	engine *practice.Engine
	width  int
	height int
}

// NewPracticeModel starts a practice run over the engine's question pool.
func NewPracticeModel(engine *practice.Engine, width, height int) PracticeModel {
	engine.Start()
	return PracticeModel{
		engine: engine,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the practice view.
func (m PracticeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the practice view.
func (m PracticeModel) Update(msg tea.Msg) (PracticeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			score, answered := m.engine.Score(), m.engine.Answered()
			m.engine.End()
			return m, func() tea.Msg {
				return PracticeEndedMsg{Score: score, Answered: answered}
			}

		case tui.KeySpace:
			m.engine.RevealAnswer()

		case "y":
			if m.engine.ShowAnswer() {
				m.engine.Next(true)
			}

		case "n":
			if m.engine.ShowAnswer() {
				m.engine.Next(false)
			}

		case "r":
			m.engine.ToggleRole()

		case "s":
			m.engine.ResetScore()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the practice view.
func (m PracticeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Practice Mode"))
	b.WriteString("  ")
	b.WriteString(tui.DimStyle.Render("role: " + string(m.engine.Role())))
	b.WriteString("\n\n")

	qa := m.engine.Current()
	if qa == nil {
		b.WriteString(tui.DimStyle.Render("No practice questions in the script."))
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render("Esc: Back"))
		return tui.BoxStyle.Width(m.width - 4).Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Question %d of %d\n\n", m.engine.Index()+1, m.engine.TotalQuestions()))

	if m.engine.Role() == practice.RoleSales {
		b.WriteString("Customer asks:\n")
	} else {
		b.WriteString("You ask, then check the model answer:\n")
	}
	b.WriteString("  " + qa.Question + "\n\n")

	if m.engine.ShowAnswer() {
		b.WriteString(tui.SuccessStyle.Render("Model answer:"))
		b.WriteString("\n")
		b.WriteString("  " + qa.Answer + "\n\n")
		b.WriteString(tui.DimStyle.Render("Did you get it right? y: Yes  n: No"))
	} else {
		b.WriteString(tui.DimStyle.Render("Space: Reveal answer"))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Score: %d/%d\n\n", m.engine.Score(), m.engine.Answered()))
	b.WriteString(tui.DimStyle.Render("r: Switch role  s: Reset score  Esc: End practice"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
