package tui

// ViewState represents the current screen of the TUI.
type ViewState int

const (
	// StateFlow shows the script flow overview.
	StateFlow ViewState = iota
	// StateDetail shows a single node's script and checkpoints.
	StateDetail
	// StateSessions shows the session list and creation form.
	StateSessions
	// StateResult shows the deal outcome entry dialog.
	StateResult
	// StateSearch shows the script search screen.
	StateSearch
	// StatePractice shows the Q&A practice quiz.
	StatePractice
)

// Model holds shared TUI state that every view needs.
type Model struct {
	Width  int
	Height int

	State ViewState

	// CtrlCPending is true after the first Ctrl+C press, awaiting
	// confirmation within the reset window.
	CtrlCPending bool

	Err error
}

// NewModel creates the shared model with sensible terminal defaults.
func NewModel() *Model {
	return &Model{
		Width:  80,
		Height: 24,
		State:  StateFlow,
	}
}
