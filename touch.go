package choreographer

import "sort"

// touchState tracks, per touch (or touch-driving stylus) device, the set
// of active pointer ids on each display it has produced spots for. This is
// the Choreographer's own bookkeeping, kept alongside — not instead of —
// the Indicator's own GetSpots(), so that ACTION_DOWN/ACTION_POINTER_DOWN/
// ACTION_POINTER_UP/ACTION_UP can be applied as single-index mutations
// without first reading the Indicator back.
type touchState struct {
	displays map[DisplayID]map[int]struct{}
}

func newTouchState() *touchState {
	return &touchState{displays: make(map[DisplayID]map[int]struct{})}
}

// set returns (creating if necessary) the active pointer set for display.
func (t *touchState) set(display DisplayID) map[int]struct{} {
	s, ok := t.displays[display]
	if !ok {
		s = make(map[int]struct{})
		t.displays[display] = s
	}
	return s
}

// sortedPointerIDs returns the pointer ids in s in ascending order.
func sortedPointerIDs(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
