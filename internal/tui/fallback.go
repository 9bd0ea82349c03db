package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runFallback handles non-TTY execution. The interactive flow needs a
// terminal, so point the user at the scriptable subcommands instead.
func runFallback(_ tea.Model) error {
	fmt.Println("Non-TTY environment detected.")
	fmt.Println("Use 'salesflow sessions', 'salesflow search', or 'salesflow report' for non-interactive use.")
	return nil
}
