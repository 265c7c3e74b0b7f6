// Package choreographer owns the visual state of on-screen pointer
// indicators — mouse cursors, touch spots, and stylus hover icons — across a
// multi-display system, and rewrites in-flight mouse motion events so their
// coordinates, display target, and cursor position stay consistent with that
// state. Touch and stylus motion events are forwarded unchanged.
//
// The Choreographer sits between an input classifier stage (which produces
// device-agnostic Event values) and a downstream dispatcher. It never draws
// anything itself: indicator rendering is delegated to an IndicatorFactory
// supplied by the host, and event routing to windows happens further
// downstream, via the Listener this package forwards to.
//
// # Consumers
//
//   - A window-manager input pipeline: feeds Event values in via
//     Choreographer.Notify and receives rewritten events through Listener.
//   - A settings/policy layer: drives SetDisplayViewports,
//     SetDefaultMouseDisplayID, SetShowTouchesEnabled, and
//     SetStylusPointerIconEnabled, and is notified of the active pointer
//     display through Policy.NotifyPointerDisplayIdChanged.
//
// # Design Principles
//
// All public methods run on a single thread with no internal goroutines,
// channels, or timers — this mirrors how a classifier stage hands events to
// the next pipeline stage synchronously. Indicators are created lazily, only
// in response to actual event activity that matches an enabled policy flag,
// never eagerly when a device merely appears.
//
// # Example Usage
//
//	c := choreographer.New(
//	    choreographer.WithPolicy(myPolicy),
//	    choreographer.WithListener(myDispatcher),
//	)
//	c.SetDisplayViewports([]choreographer.Viewport{{DisplayID: 5, LogicalWidth: 480, LogicalHeight: 800}})
//	c.SetDefaultMouseDisplayID(5)
//	c.Notify(choreographer.DeviceListChangedEvent{Devices: devices})
//	c.Notify(choreographer.MotionEvent{ /* ... */ })
package choreographer
