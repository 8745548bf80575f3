package component

// Clip is a single-row sprite sheet. Frame width is SheetW/Frames and may be
// fractional.
type Clip struct {
	SheetKey string
	Frames   int
	SheetW   float64
	SheetH   float64
}

// FrameW returns the width of one frame on the sheet.
func (c Clip) FrameW() float64 {
	if c.Frames <= 0 {
		return 0
	}
	return c.SheetW / float64(c.Frames)
}

// Animation is the cursor over a set of clips. Rate is the number of ticks a
// frame is held.
type Animation struct {
	Clips      map[string]Clip
	Current    string
	Frame      int
	FrameTimer int
	Rate       int
}

// Select switches to id. Re-selecting the current clip keeps its cursor so
// a clip chosen every frame still advances.
func (a *Animation) Select(id string) bool {
	if a.Current == id {
		return false
	}
	a.Current = id
	a.Frame = 0
	a.FrameTimer = 0
	return true
}

// Tick advances the frame timer and wraps the frame index past the clip end.
func (a *Animation) Tick() {
	clip, ok := a.Clips[a.Current]
	if !ok || clip.Frames <= 0 {
		return
	}
	rate := a.Rate
	if rate < 1 {
		rate = 1
	}
	a.FrameTimer++
	if a.FrameTimer >= rate {
		a.FrameTimer = 0
		a.Frame = (a.Frame + 1) % clip.Frames
	}
}

// CropRect returns the source rectangle of the current frame.
func (a *Animation) CropRect() Rect {
	clip, ok := a.Clips[a.Current]
	if !ok || clip.Frames <= 0 {
		return Rect{}
	}
	fw := clip.FrameW()
	return Rect{X: float64(a.Frame) * fw, Y: 0, W: fw, H: clip.SheetH}
}

// SheetKey returns the image key of the current clip.
func (a *Animation) SheetKey() string {
	return a.Clips[a.Current].SheetKey
}

var AnimationComponent = NewComponent[Animation]()

// Clip ids used by the actor.
const (
	AnimIdleRight = "idle_right"
	AnimIdleLeft  = "idle_left"
	AnimRunRight  = "run_right"
	AnimRunLeft   = "run_left"
)
