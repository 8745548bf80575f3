package game

type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
)

type LossReason string

const (
	LossNone   LossReason = ""
	LossFell   LossReason = "fell"
	LossHazard LossReason = "hazard"
)

// InputSnapshot is the held state of the game keys for one frame.
type InputSnapshot struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Restart   bool
}

// Signals is what one Step reports to the HUD and audio.
type Signals struct {
	Score  int
	Scroll float64
	State  State
	// Won is true only on the frame the win line is crossed.
	Won        bool
	Lost       bool
	LossReason LossReason
	// Restarted is true when the world was rebuilt this frame, after a loss
	// or a restart request.
	Restarted bool
	Seed      int64
}
