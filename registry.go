package choreographer

import "github.com/rs/zerolog"

// IndicatorKey identifies one active pointer instance. Exactly one
// IndicatorKey exists per Indicator the registry owns.
//
// DisplayID is meaningful only for IndicatorMouse keys; DeviceID is
// meaningful only for IndicatorTouch and IndicatorStylus keys. The unused
// field is left at its zero value and ignored.
type IndicatorKey struct {
	Kind      IndicatorKind
	DisplayID DisplayID
	DeviceID  DeviceID
}

// MouseKey builds the key for the mouse indicator hosted on display.
func MouseKey(display DisplayID) IndicatorKey {
	return IndicatorKey{Kind: IndicatorMouse, DisplayID: display}
}

// TouchKey builds the key for device's touch indicator.
func TouchKey(device DeviceID) IndicatorKey {
	return IndicatorKey{Kind: IndicatorTouch, DeviceID: device}
}

// StylusKey builds the key for device's stylus indicator.
func StylusKey(device DeviceID) IndicatorKey {
	return IndicatorKey{Kind: IndicatorStylus, DeviceID: device}
}

// indicatorEntry is the registry's private bookkeeping for one active
// pointer instance. Callers outside the registry never hold one across
// calls — they receive a borrow valid only for the method call that
// returned it.
type indicatorEntry struct {
	key         IndicatorKey
	indicator   Indicator
	viewport    *Viewport
	position    Position
	hasPosition bool
}

// setPosition updates both the registry's bookkeeping and the underlying
// Indicator in one step.
func (e *indicatorEntry) setPosition(p Position) {
	e.position = p
	e.hasPosition = true
	e.indicator.SetPosition(p.X, p.Y)
}

// IndicatorRegistry owns the lifetime of every active Indicator. Entries
// are created lazily through IndicatorFactory and destroyed by Drop, which
// releases the registry's strong reference before returning.
type IndicatorRegistry struct {
	factory       IndicatorFactory
	entries       map[IndicatorKey]*indicatorEntry
	pendingCreate bool
	log           zerolog.Logger
}

// NewIndicatorRegistry returns an empty registry backed by factory.
func NewIndicatorRegistry(factory IndicatorFactory, log zerolog.Logger) *IndicatorRegistry {
	return &IndicatorRegistry{
		factory: factory,
		entries: make(map[IndicatorKey]*indicatorEntry),
		log:     log,
	}
}

// Ensure returns the entry for key, creating it via the factory on first
// call. Idempotent: a second call with the same key returns the existing
// entry without creating anything.
//
// Only one factory create may be outstanding at a time; a reentrant call
// to Ensure from within CreateIndicator is a programmer error and panics,
// matching the "at most one pending create" contract.
func (r *IndicatorRegistry) Ensure(key IndicatorKey) *indicatorEntry {
	if e, ok := r.entries[key]; ok {
		return e
	}
	if r.pendingCreate {
		panic("choreographer: IndicatorRegistry.Ensure called while a create is already pending")
	}
	r.pendingCreate = true
	indicator := r.factory.CreateIndicator(key.Kind)
	r.pendingCreate = false

	e := &indicatorEntry{key: key, indicator: indicator}
	r.entries[key] = e
	r.log.Debug().Stringer("kind", key.Kind).Int("display", int(key.DisplayID)).Int("device", int(key.DeviceID)).Msg("indicator created")
	return e
}

// Get returns the entry for key without creating one.
func (r *IndicatorRegistry) Get(key IndicatorKey) (*indicatorEntry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Drop destroys the entry for key, if any. After Drop returns, the
// registry holds no reference to the Indicator — it was the sole owner.
func (r *IndicatorRegistry) Drop(key IndicatorKey) {
	if _, ok := r.entries[key]; !ok {
		return
	}
	delete(r.entries, key)
	r.log.Debug().Stringer("kind", key.Kind).Int("display", int(key.DisplayID)).Int("device", int(key.DeviceID)).Msg("indicator dropped")
}

// AttachViewport binds key's entry to v, if the entry exists.
func (r *IndicatorRegistry) AttachViewport(key IndicatorKey, v Viewport) {
	e, ok := r.entries[key]
	if !ok {
		return
	}
	if e.viewport != nil && *e.viewport == v {
		return
	}
	vCopy := v
	e.viewport = &vCopy
	e.indicator.SetDisplayViewport(v)
}

// DetachViewport unbinds key's entry from any viewport, if the entry
// exists and currently has one.
func (r *IndicatorRegistry) DetachViewport(key IndicatorKey) {
	e, ok := r.entries[key]
	if !ok || e.viewport == nil {
		return
	}
	e.viewport = nil
	e.indicator.ClearDisplayViewport()
}

// ForEach invokes fn for every entry of the given kind.
func (r *IndicatorRegistry) ForEach(kind IndicatorKind, fn func(key IndicatorKey, indicator Indicator)) {
	for k, e := range r.entries {
		if k.Kind == kind {
			fn(k, e.indicator)
		}
	}
}

// Keys returns a snapshot of the currently active keys, safe to range over
// while mutating the registry.
func (r *IndicatorRegistry) Keys() []IndicatorKey {
	keys := make([]IndicatorKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of active entries.
func (r *IndicatorRegistry) Len() int {
	return len(r.entries)
}
