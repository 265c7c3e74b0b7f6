package choreographer

import "github.com/rs/zerolog"

// Choreographer is the orchestrator: it receives upstream Event
// notifications and out-of-band policy calls, reconciles the set of active
// Indicators against DeviceRegistry, DisplayTopology, and the current
// policy settings, advances MouseEngine state, rewrites mouse motion
// events, and forwards every event — rewritten or not — to Listener in
// receipt order. Touch and stylus motion events are forwarded unchanged.
//
// All methods run on a single goroutine with no internal concurrency. The
// Listener and Policy supplied at construction must not call back into the
// Choreographer from within a callback; doing so is undefined behavior.
type Choreographer struct {
	topology   *DisplayTopology
	devices    *DeviceRegistry
	indicators *IndicatorRegistry
	mouse      *MouseEngine
	listener   Listener
	policy     Policy
	log        zerolog.Logger

	defaultMouseDisplayID DisplayID
	showTouchesEnabled    bool
	stylusIconEnabled     bool
	pointerCaptureEnabled bool

	lastNotifiedDisplay DisplayID
	touchStates         map[DeviceID]*touchState
}

// Option configures a Choreographer at construction time.
type Option func(*Choreographer)

// WithListener sets the downstream collaborator events are forwarded to.
// Defaults to NullListener.
func WithListener(l Listener) Option {
	return func(c *Choreographer) { c.listener = l }
}

// WithPolicy sets the collaborator used to create indicators and receive
// pointer-display notifications. Defaults to NullPolicy.
func WithPolicy(p Policy) Option {
	return func(c *Choreographer) { c.policy = p }
}

// WithLogger sets the structured logger used for indicator lifecycle
// (create/drop) debug logging. Policy notifications are not logged.
// Defaults to a disabled logger — the happy path is otherwise silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Choreographer) { c.log = log }
}

// New constructs a Choreographer with the given options. Policy settings
// start at their zero values: no default mouse display, touch spots and
// stylus icons disabled, capture disabled.
func New(opts ...Option) *Choreographer {
	c := &Choreographer{
		listener:              NullListener{},
		policy:                NullPolicy{},
		log:                   zerolog.Nop(),
		defaultMouseDisplayID: DisplayNone,
		lastNotifiedDisplay:   DisplayNone,
		touchStates:           make(map[DeviceID]*touchState),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.topology = NewDisplayTopology()
	c.devices = NewDeviceRegistry()
	c.indicators = NewIndicatorRegistry(c.policy, c.log)
	c.mouse = NewMouseEngine(c.topology)
	return c
}

// Notify dispatches event by kind, rewriting mouse motion events,
// reconciling indicator state, and forwarding the (possibly rewritten)
// event to Listener.
func (c *Choreographer) Notify(event Event) {
	switch ev := event.(type) {
	case DeviceListChangedEvent:
		c.handleDeviceListChanged(ev)
		c.reconcile()
		c.listener.Notify(ev)
	case MotionEvent:
		rewritten := c.handleMotion(ev)
		c.reconcile()
		c.listener.Notify(rewritten)
	case DeviceResetEvent:
		c.handleDeviceReset(ev)
		c.reconcile()
		c.listener.Notify(ev)
	case PointerCaptureChangedEvent:
		c.handlePointerCaptureChanged(ev)
		c.reconcile()
		c.listener.Notify(ev)
	default:
		// Key, Sensor, Switch, ConfigurationChanged, VibratorState: no
		// state this package owns is affected. Forward unchanged.
		c.listener.Notify(event)
	}
}

// SetDisplayViewports replaces the full set of display viewports and
// reconciles indicator viewport bindings against it.
func (c *Choreographer) SetDisplayViewports(viewports []Viewport) {
	c.topology.Replace(viewports)
	c.reconcile()
}

// SetDefaultMouseDisplayID changes the display that hosts cursors for
// unassociated mice. If the old default's Mouse indicator is no longer
// justified (no mouse device is associated with it either), it is
// destroyed before this call returns, and the policy is notified if the
// active pointer display changed as a result.
func (c *Choreographer) SetDefaultMouseDisplayID(id DisplayID) {
	c.defaultMouseDisplayID = id
	c.reconcile()
}

// SetShowTouchesEnabled toggles whether touch indicators may exist. Turning
// it off destroys every active Touch indicator immediately; turning it on
// does not create any — indicators are only ever created lazily, on the
// next qualifying motion event.
func (c *Choreographer) SetShowTouchesEnabled(flag bool) {
	c.showTouchesEnabled = flag
	c.reconcile()
}

// SetStylusPointerIconEnabled toggles whether stylus hover indicators may
// exist. Turning it off destroys every active Stylus indicator
// immediately; turning it on does not create any — see
// SetShowTouchesEnabled.
func (c *Choreographer) SetStylusPointerIconEnabled(flag bool) {
	c.stylusIconEnabled = flag
	c.reconcile()
}

// handleDeviceListChanged installs the new device set and drops any
// Touch/Stylus indicator (and touch bookkeeping) keyed on a device that is
// no longer present. Mouse indicator pruning happens generically in
// reconcile, since a mouse indicator is never keyed on a device.
func (c *Choreographer) handleDeviceListChanged(ev DeviceListChangedEvent) {
	removed := c.devices.Replace(ev.Devices)
	for _, d := range removed {
		c.indicators.Drop(TouchKey(d.DeviceID))
		c.indicators.Drop(StylusKey(d.DeviceID))
		delete(c.touchStates, d.DeviceID)
	}
}

// handleDeviceReset clears a touch device's spots (keeping its entry) and
// fades a stylus device's hover icon (keeping its entry), per §4.5/§4.1.
func (c *Choreographer) handleDeviceReset(ev DeviceResetEvent) {
	if ts, ok := c.touchStates[ev.DeviceID]; ok {
		if entry, exists := c.indicators.Get(TouchKey(ev.DeviceID)); exists {
			for display := range ts.displays {
				entry.indicator.ClearSpots(display)
			}
		}
		delete(c.touchStates, ev.DeviceID)
	}
	if entry, exists := c.indicators.Get(StylusKey(ev.DeviceID)); exists {
		entry.indicator.Fade()
	}
}

// handlePointerCaptureChanged updates the capture flag and, when capture
// turns on, hides every mouse indicator immediately (invariant 3).
func (c *Choreographer) handlePointerCaptureChanged(ev PointerCaptureChangedEvent) {
	c.pointerCaptureEnabled = ev.Request.Enable
	if c.pointerCaptureEnabled {
		c.indicators.ForEach(IndicatorMouse, func(_ IndicatorKey, indicator Indicator) {
			indicator.Hide()
		})
	}
}

// handleMotion dispatches a motion event to the mouse, touch, and/or
// stylus paths based on its source bits, returning the (possibly
// rewritten) event to forward downstream. A device with both touchscreen
// and stylus bits drives both paths; both forward the event unchanged.
func (c *Choreographer) handleMotion(ev MotionEvent) MotionEvent {
	if ev.Source.Has(SourceMouse) || ev.Source.Has(SourceMouseRelative) {
		return c.handleMouseMotion(ev)
	}
	if ev.Source.Has(SourceTouchscreen) {
		c.handleTouchMotion(ev)
	}
	if ev.Source.Has(SourceStylus) {
		c.handleStylusMotion(ev)
	}
	return ev
}

// reconcile re-establishes invariants 1-7 (§3) after any state mutation:
// it drops indicators disqualified by the current policy flags, prunes
// mouse indicators no longer justified by the default display or an
// associated device, attaches/detaches viewports to match topology, and
// notifies the policy if the active pointer display changed.
func (c *Choreographer) reconcile() {
	c.reconcilePolicyFlags()
	c.reconcileMouseEntries()
	c.reconcileViewports()
	c.reconcilePointerDisplayNotification()
}

func (c *Choreographer) reconcilePolicyFlags() {
	if !c.showTouchesEnabled {
		for _, key := range c.indicators.Keys() {
			if key.Kind == IndicatorTouch {
				c.indicators.Drop(key)
				delete(c.touchStates, key.DeviceID)
			}
		}
	}
	if !c.stylusIconEnabled {
		for _, key := range c.indicators.Keys() {
			if key.Kind == IndicatorStylus {
				c.indicators.Drop(key)
			}
		}
	}
}

func (c *Choreographer) reconcileMouseEntries() {
	for _, key := range c.indicators.Keys() {
		if key.Kind != IndicatorMouse {
			continue
		}
		if key.DisplayID == c.defaultMouseDisplayID || c.devices.HasAssociatedMouse(key.DisplayID) {
			continue
		}
		c.indicators.Drop(key)
		c.mouse.Reset(key.DisplayID)
	}
}

func (c *Choreographer) reconcileViewports() {
	for _, key := range c.indicators.Keys() {
		var displayID DisplayID
		switch key.Kind {
		case IndicatorMouse:
			displayID = key.DisplayID
		case IndicatorTouch, IndicatorStylus:
			d, ok := c.devices.Get(key.DeviceID)
			if !ok {
				continue
			}
			displayID = d.AssociatedDisplayID
		}
		if vp, ok := c.topology.Viewport(displayID); ok {
			c.indicators.AttachViewport(key, vp)
		} else {
			c.indicators.DetachViewport(key)
		}
	}
}

func (c *Choreographer) reconcilePointerDisplayNotification() {
	active := DisplayNone
	var pos Position
	if entry, ok := c.indicators.Get(MouseKey(c.defaultMouseDisplayID)); ok {
		active = c.defaultMouseDisplayID
		pos = entry.position
	}
	if active == c.lastNotifiedDisplay {
		return
	}
	c.lastNotifiedDisplay = active
	c.policy.NotifyPointerDisplayIdChanged(active, pos)
}
