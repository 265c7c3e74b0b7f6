package choreographer

// DisplayID identifies a logical display.
type DisplayID int

// DisplayNone is the sentinel DisplayID meaning "unassigned". It never
// appears as a key in DisplayTopology and round-trips unchanged through the
// Listener chain on motion events that have no cursor to place.
const DisplayNone DisplayID = -1

// Viewport is a display's logical coordinate rectangle.
type Viewport struct {
	DisplayID     DisplayID
	LogicalWidth  int
	LogicalHeight int
}

// Clamp constrains x, y to [0, LogicalWidth-1] x [0, LogicalHeight-1].
func (v Viewport) Clamp(x, y float32) (float32, float32) {
	maxX := float32(v.LogicalWidth - 1)
	maxY := float32(v.LogicalHeight - 1)
	switch {
	case x < 0:
		x = 0
	case x > maxX:
		x = maxX
	}
	switch {
	case y < 0:
		y = 0
	case y > maxY:
		y = maxY
	}
	return x, y
}

// DisplayTopology holds the current set of display viewports, at most one
// per DisplayID. A call to Replace atomically swaps the whole set.
type DisplayTopology struct {
	viewports map[DisplayID]Viewport
}

// NewDisplayTopology returns an empty topology.
func NewDisplayTopology() *DisplayTopology {
	return &DisplayTopology{viewports: make(map[DisplayID]Viewport)}
}

// Replace installs viewports as the complete new set, discarding any
// previous viewport not present in the new list.
func (t *DisplayTopology) Replace(viewports []Viewport) {
	next := make(map[DisplayID]Viewport, len(viewports))
	for _, v := range viewports {
		next[v.DisplayID] = v
	}
	t.viewports = next
}

// Viewport returns the viewport for id, if any.
func (t *DisplayTopology) Viewport(id DisplayID) (Viewport, bool) {
	v, ok := t.viewports[id]
	return v, ok
}

// Len reports the number of known viewports.
func (t *DisplayTopology) Len() int {
	return len(t.viewports)
}
