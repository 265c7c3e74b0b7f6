package choreographer

// resolveMouseTarget returns the display a mouse motion from deviceID
// should land on: the device's own association if it has one, else the
// current default mouse display (which may itself be DisplayNone).
func (c *Choreographer) resolveMouseTarget(deviceID DeviceID) DisplayID {
	if d, ok := c.devices.Get(deviceID); ok && d.AssociatedDisplayID != DisplayNone {
		return d.AssociatedDisplayID
	}
	return c.defaultMouseDisplayID
}

// handleMouseMotion implements the mouse/cursor rewrite pipeline. Per
// invariant 3 (§3), capture freezes positions as well as visibility: while
// pointerCaptureEnabled, MouseEngine is never advanced and the Indicator is
// never touched, for any source class, not only MouseRelative — the event
// is emitted with DisplayID = DisplayNone and CursorPosition = invalid.
// Otherwise it resolves the target display, advances MouseEngine, and
// rewrites the event's Pointers[0] and CursorPosition/DisplayID fields to
// reflect the resulting state. It never mutates the caller's event — a
// modified copy is returned.
func (c *Choreographer) handleMouseMotion(ev MotionEvent) MotionEvent {
	if c.pointerCaptureEnabled {
		ev.DisplayID = DisplayNone
		ev.CursorPosition = InvalidCursorPosition
		return ev
	}

	target := c.resolveMouseTarget(ev.DeviceID)
	if target == DisplayNone {
		ev.DisplayID = DisplayNone
		ev.CursorPosition = InvalidCursorPosition
		return ev
	}

	entry := c.indicators.Ensure(MouseKey(target))
	if vp, ok := c.topology.Viewport(target); ok {
		c.indicators.AttachViewport(MouseKey(target), vp)
	}

	var dx, dy float32
	if len(ev.Pointers) > 0 {
		dx, dy = ev.Pointers[0].RelX, ev.Pointers[0].RelY
	}
	pos := c.mouse.Advance(target, dx, dy)
	entry.setPosition(pos)
	entry.indicator.Show()

	ev.DisplayID = target
	ev.CursorPosition = pos
	if len(ev.Pointers) > 0 {
		rewritten := make([]Pointer, len(ev.Pointers))
		copy(rewritten, ev.Pointers)
		rewritten[0].X, rewritten[0].Y = pos.X, pos.Y
		ev.Pointers = rewritten
	}
	return ev
}

// touchStateFor returns (creating if necessary) the touch bookkeeping for
// deviceID.
func (c *Choreographer) touchStateFor(deviceID DeviceID) *touchState {
	ts, ok := c.touchStates[deviceID]
	if !ok {
		ts = newTouchState()
		c.touchStates[deviceID] = ts
	}
	return ts
}

// handleTouchMotion implements the touch contact-spot lifecycle (§4.5):
// Down/PointerDown insert a pointer id, PointerUp/Up/Cancel remove one,
// Move changes nothing. Every mutating action — including ones that leave
// an empty set — calls SetSpots so the indicator's key stays present;
// only DeviceReset (handled separately) removes a display key entirely.
func (c *Choreographer) handleTouchMotion(ev MotionEvent) {
	if !c.showTouchesEnabled {
		return
	}
	ts := c.touchStateFor(ev.DeviceID)
	spots := ts.set(ev.DisplayID)

	switch ev.Action {
	case ActionDown:
		spots[pointerIDAt(ev, 0)] = struct{}{}
	case ActionPointerDown:
		spots[pointerIDAt(ev, ev.ActionIndex)] = struct{}{}
	case ActionPointerUp:
		delete(spots, pointerIDAt(ev, ev.ActionIndex))
	case ActionUp, ActionCancel:
		delete(spots, pointerIDAt(ev, 0))
	case ActionMove:
		// No membership change.
	default:
		return
	}

	entry := c.indicators.Ensure(TouchKey(ev.DeviceID))
	entry.indicator.SetSpots(ev.DisplayID, sortedPointerIDs(spots))
}

// pointerIDAt returns the PointerID of ev.Pointers[index], or index itself
// if the event carries no pointer list (a degenerate input, tolerated so a
// malformed upstream event cannot panic this stage).
func pointerIDAt(ev MotionEvent, index int) int {
	if index >= 0 && index < len(ev.Pointers) {
		return ev.Pointers[index].PointerID
	}
	return index
}

// handleStylusMotion implements the stylus hover lifecycle (§4.5):
// Enter/Move ensure the indicator, attach its viewport only when the
// device has a matching association, and set its position; Exit fades the
// icon without destroying the entry.
func (c *Choreographer) handleStylusMotion(ev MotionEvent) {
	if !c.stylusIconEnabled {
		return
	}
	if ev.Action == ActionHoverExit {
		if entry, ok := c.indicators.Get(StylusKey(ev.DeviceID)); ok {
			entry.indicator.Fade()
		}
		return
	}
	if !ev.Action.isHover() {
		return
	}

	entry := c.indicators.Ensure(StylusKey(ev.DeviceID))
	if d, ok := c.devices.Get(ev.DeviceID); ok {
		if vp, ok := c.topology.Viewport(d.AssociatedDisplayID); ok {
			c.indicators.AttachViewport(StylusKey(ev.DeviceID), vp)
		}
	}
	if len(ev.Pointers) > 0 {
		entry.setPosition(Position{X: ev.Pointers[0].X, Y: ev.Pointers[0].Y})
	}
	entry.indicator.Show()
}
