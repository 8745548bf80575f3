package component

type PlatformKind string

const (
	PlatformGround   PlatformKind = "ground"
	PlatformFloating PlatformKind = "floating"
)

// Platform marks a static Body the actor can land on.
type Platform struct {
	Kind    PlatformKind
	TileKey string
}

var PlatformComponent = NewComponent[Platform]()
