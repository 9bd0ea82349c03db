package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// CreateSessionMsg is sent when the user submits the new-session form.
type CreateSessionMsg struct {
	CompanyName   string
	ContactPerson string
}

// SelectSessionMsg is sent when the user picks a session from the list.
type SelectSessionMsg struct {
	SessionID string
}

// DeleteSessionMsg is sent when the user deletes a session.
type DeleteSessionMsg struct {
	SessionID string
}

// SessionsModel is the view model for the session list and creation form.
type SessionsModel struct {
	summaries []session.Summary
	cursor    int

	creating     bool
	companyInput textinput.Model
	contactInput textinput.Model
	focusContact bool

	width  int
	height int
}

// NewSessionsModel creates the session list view.
func NewSessionsModel(summaries []session.Summary, width, height int) SessionsModel {
	company := textinput.New()
	company.Placeholder = "Company name"
	company.CharLimit = 120
	company.Width = 40

	contact := textinput.New()
	contact.Placeholder = "Contact person (optional)"
	contact.CharLimit = 120
	contact.Width = 40

	return SessionsModel{
		summaries:    summaries,
		companyInput: company,
		contactInput: contact,
		width:        width,
		height:       height,
	}
}

// Init returns the initial command for the sessions view.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sessions view.
func (m SessionsModel) Update(msg tea.Msg) (SessionsModel, tea.Cmd) {
	if m.creating {
		return m.updateForm(msg)
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
			if m.cursor < len(m.summaries)-1 {
				m.cursor++
			}

		case tui.KeyEnter:
			if len(m.summaries) > 0 {
				id := m.summaries[m.cursor].ID
				return m, func() tea.Msg {
					return SelectSessionMsg{SessionID: id}
				}
			}

		case "n":
			m.creating = true
			m.focusContact = false
			m.companyInput.SetValue("")
			m.contactInput.SetValue("")
			m.companyInput.Focus()
			m.contactInput.Blur()
			return m, textinput.Blink

		case "d":
			if len(m.summaries) > 0 {
				id := m.summaries[m.cursor].ID
				return m, func() tea.Msg {
					return DeleteSessionMsg{SessionID: id}
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m SessionsModel) updateForm(msg tea.Msg) (SessionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			m.creating = false
			return m, nil

		case tui.KeyTab:
			m.focusContact = !m.focusContact
			if m.focusContact {
				m.companyInput.Blur()
				m.contactInput.Focus()
			} else {
				m.contactInput.Blur()
				m.companyInput.Focus()
			}
			return m, textinput.Blink

		case tui.KeyEnter:
			company := strings.TrimSpace(m.companyInput.Value())
			if company == "" {
				return m, nil
			}
			contact := strings.TrimSpace(m.contactInput.Value())
			m.creating = false
			return m, func() tea.Msg {
				return CreateSessionMsg{CompanyName: company, ContactPerson: contact}
			}
		}
	}

	var cmd tea.Cmd
	if m.focusContact {
		m.contactInput, cmd = m.contactInput.Update(msg)
	} else {
		m.companyInput, cmd = m.companyInput.Update(msg)
	}
	return m, cmd
}

// View renders the sessions view.
func (m SessionsModel) View() string {
	if m.creating {
		return m.viewForm()
	}

	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Sessions"))
	b.WriteString("\n\n")

	if len(m.summaries) == 0 {
		b.WriteString(tui.DimStyle.Render("No sessions yet. Press 'n' to start one."))
		b.WriteString("\n")
	}

	for i, s := range m.summaries {
		marker := "  "
		if i == m.cursor {
			marker = tui.SelectedStyle.Render("▸ ")
		}

		status := string(s.Status)
		if s.Status == session.StatusCompleted && s.Outcome != "" {
			status = s.Outcome.Label()
		}

		line := fmt.Sprintf("%s%-24s %3d%%  %-12s %s",
			marker,
			tui.Truncate(s.CompanyName, 24),
			s.CompletionRate,
			status,
			tui.DimStyle.Render(s.CreatedAt.Format("2006-01-02")),
		)
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("↑/↓: Navigate  Enter: Select  n: New  d: Delete  Esc: Back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}

func (m SessionsModel) viewForm() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("New Session"))
	b.WriteString("\n\n")
	b.WriteString("Company\n")
	b.WriteString(m.companyInput.View())
	b.WriteString("\n\n")
	b.WriteString("Contact\n")
	b.WriteString(m.contactInput.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Tab: Switch field  Enter: Create  Esc: Cancel"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
