package dropdown

// Direction is the vertical orientation of the panel relative to its
// trigger.
type Direction int

const (
	// Down opens the panel below the trigger.
	Down Direction = iota
	// Up opens the panel above the trigger.
	Up
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Rect describes a rectangular cell region in screen coordinates. Y grows
// downward, matching terminal rows.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Placement is the derived panel geometry, recomputed on every open from
// the trigger bounds and the viewport height.
type Placement struct {
	Direction Direction
	// X and Y anchor the panel: the trigger's top edge when opening up,
	// its bottom edge when opening down. The panel is left-aligned with
	// and width-matched to the trigger.
	X, Y      int
	Width     int
	MaxHeight int
}

// ComputePlacement decides the panel orientation and bounds. The panel
// opens upward when the trigger's top row sits at or below the vertical
// midpoint of the viewport, and its height is capped at half the viewport
// minus the trigger's own height.
func ComputePlacement(trigger Rect, viewportHeight int) Placement {
	dir := Down
	if trigger.Y >= viewportHeight/2 {
		dir = Up
	}

	maxHeight := viewportHeight/2 - trigger.Height
	if maxHeight < 1 {
		maxHeight = 1
	}

	p := Placement{
		Direction: dir,
		X:         trigger.X,
		Width:     trigger.Width,
		MaxHeight: maxHeight,
	}
	if dir == Up {
		p.Y = trigger.Y
	} else {
		p.Y = trigger.Y + trigger.Height
	}
	return p
}
