package choreographer

// MouseEngine maintains per-display cursor position and accumulates the
// relative deltas carried on mouse motion events. Position persists across
// events for as long as a display's Mouse indicator exists, and is reset
// when that indicator is destroyed.
type MouseEngine struct {
	topology  *DisplayTopology
	positions map[DisplayID]Position
}

// NewMouseEngine returns an engine that clamps against topology.
func NewMouseEngine(topology *DisplayTopology) *MouseEngine {
	return &MouseEngine{topology: topology, positions: make(map[DisplayID]Position)}
}

// Position returns the current cursor position for display, if tracked.
func (m *MouseEngine) Position(display DisplayID) (Position, bool) {
	p, ok := m.positions[display]
	return p, ok
}

// SetPosition seeds display's cursor position directly, bypassing delta
// accumulation. Used when a caller places the cursor explicitly (e.g. to
// seed a fixture, or to recenter after a display reconfiguration).
func (m *MouseEngine) SetPosition(display DisplayID, p Position) {
	m.positions[display] = p
}

// Advance accumulates (dx, dy) onto display's current position, clamping
// to the display's viewport bounds if known, and persists the result.
func (m *MouseEngine) Advance(display DisplayID, dx, dy float32) Position {
	cur := m.positions[display]
	x, y := cur.X+dx, cur.Y+dy
	if vp, ok := m.topology.Viewport(display); ok {
		x, y = vp.Clamp(x, y)
	}
	p := Position{X: x, Y: y}
	m.positions[display] = p
	return p
}

// Reset discards display's tracked position. Called when its Mouse
// indicator is destroyed so a later recreation starts fresh.
func (m *MouseEngine) Reset(display DisplayID) {
	delete(m.positions, display)
}
