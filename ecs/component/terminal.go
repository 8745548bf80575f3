package component

type TerminalState string

const (
	TerminalNone TerminalState = "none"
	TerminalWon  TerminalState = "won"
	TerminalLost TerminalState = "lost"
)

// Terminal is the session's end-of-run latch.
type Terminal struct {
	State TerminalState
}

var TerminalComponent = NewComponent[Terminal]()
