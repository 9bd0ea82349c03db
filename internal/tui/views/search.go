package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/search"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// SearchModel is the view model for the script search screen.
type SearchModel struct {
	cat     *catalog.Catalog
	input   textinput.Model
	results []search.Result
	cursor  int
	width   int
	height  int
}

// NewSearchModel creates the search view over the given catalog.
func NewSearchModel(cat *catalog.Catalog, width, height int) SearchModel {
	input := textinput.New()
	input.Placeholder = "search titles, scripts, Q&A, checkpoints..."
	input.CharLimit = 120
	input.Width = 48
	input.Focus()

	return SearchModel{
		cat:    cat,
		input:  input,
		width:  width,
		height: height,
	}
}

// Init returns the initial command for the search view.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search view.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEsc:
			return m, func() tea.Msg { return BackMsg{} }

		case tui.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case tui.KeyDown:
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case tui.KeyEnter:
			if len(m.results) > 0 {
				id := m.results[m.cursor].Node.ID
				return m, func() tea.Msg {
					return OpenNodeMsg{NodeID: id}
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Any other input edits the query and re-runs the search.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results = search.Query(m.cat, m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
	return m, cmd
}

// View renders the search view.
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Search Script"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	query := strings.TrimSpace(m.input.Value())
	switch {
	case query == "":
		b.WriteString(tui.DimStyle.Render("Type to search."))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("No matches for %q", query)))
		b.WriteString("\n")
	default:
		for i, r := range m.results {
			marker := "  "
			if i == m.cursor {
				marker = tui.SelectedStyle.Render("▸ ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n",
				marker,
				r.Node.Title,
				tui.DimStyle.Render(fmt.Sprintf("(%s, %s)", r.Node.Phase.Label(), r.MatchType)),
			))
			b.WriteString("      " + tui.DimStyle.Render(r.MatchText) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("↑/↓: Navigate  Enter: Open node  Esc: Back"))

	return tui.BoxStyle.Width(m.width - 4).Render(b.String())
}
