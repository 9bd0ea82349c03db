package tui

// CtrlCResetMsg clears the pending Ctrl+C confirmation after the
// timeout elapses.
type CtrlCResetMsg struct{}
