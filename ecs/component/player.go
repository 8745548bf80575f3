package component

type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

type MoveState string

const (
	MoveIdle    MoveState = "idle"
	MoveRunning MoveState = "running"
)

// Player holds the actor's controller state. Grounded is written only by the
// landing stage.
type Player struct {
	Speed       float64
	JumpImpulse float64
	Facing      Facing
	Move        MoveState
	Grounded    bool
}

var PlayerComponent = NewComponent[Player]()
