package choreographer

// Policy is the downward callback contract the Choreographer drives:
// indicator creation and notification of the active pointer display.
type Policy interface {
	IndicatorFactory

	// NotifyPointerDisplayIdChanged is emitted whenever the display hosting
	// the default mouse pointer changes, including transitions to
	// DisplayNone. Called synchronously from within whatever call
	// triggered the change, before that call returns. Exactly one call per
	// observable change; repeats are suppressed.
	NotifyPointerDisplayIdChanged(display DisplayID, position Position)
}

// NullPolicy implements Policy with NullIndicatorFactory's creation
// behavior and a no-op notification. Useful for tests and headless
// operation.
type NullPolicy struct {
	NullIndicatorFactory
}

func (NullPolicy) NotifyPointerDisplayIdChanged(DisplayID, Position) {}

// Ensure NullPolicy implements Policy.
var _ Policy = NullPolicy{}
