package choreographer

// DeviceID identifies an input device for the lifetime it appears in
// successive device-list-changed notifications.
type DeviceID int

// SourceMask is a bitset of device capabilities.
type SourceMask uint32

const (
	// SourceMouse indicates an absolute-capable mouse: it moves the cursor
	// using relative axes reported alongside an absolute display target.
	SourceMouse SourceMask = 1 << iota

	// SourceMouseRelative indicates a pointer-captured mouse delivering raw
	// deltas with no display target.
	SourceMouseRelative

	// SourceTouchscreen indicates a touch-capable digitizer.
	SourceTouchscreen

	// SourceStylus indicates a stylus/pen-capable digitizer.
	SourceStylus

	// SourceKeyboard indicates a keyboard. Carried for completeness; this
	// package never rewrites keyboard events.
	SourceKeyboard
)

// Has reports whether any bit in flag is set.
func (s SourceMask) Has(flag SourceMask) bool {
	return s&flag != 0
}

// String returns a debug-friendly, "|"-joined list of set source bits.
func (s SourceMask) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		bit  SourceMask
		name string
	}{
		{SourceMouse, "mouse"},
		{SourceMouseRelative, "mouse-relative"},
		{SourceTouchscreen, "touchscreen"},
		{SourceStylus, "stylus"},
		{SourceKeyboard, "keyboard"},
	}
	out := ""
	for _, n := range names {
		if s.Has(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "unknown"
	}
	return out
}

// Device is a live input device: its capabilities and, if any, the display
// it was explicitly associated with at enumeration time.
type Device struct {
	DeviceID            DeviceID
	Sources             SourceMask
	AssociatedDisplayID DisplayID // DisplayNone if unassociated
}

// DeviceRegistry tracks the current set of live input devices. Its lifetime
// is replaced wholesale on each device-list-changed notification.
type DeviceRegistry struct {
	devices map[DeviceID]Device
}

// NewDeviceRegistry returns an empty registry.
func NewDeviceRegistry() *DeviceRegistry {
	return &DeviceRegistry{devices: make(map[DeviceID]Device)}
}

// Replace installs newList as the current device set and returns the
// devices that were present before but are absent from newList.
func (r *DeviceRegistry) Replace(newList []Device) []Device {
	next := make(map[DeviceID]Device, len(newList))
	for _, d := range newList {
		next[d.DeviceID] = d
	}
	var removed []Device
	for id, d := range r.devices {
		if _, ok := next[id]; !ok {
			removed = append(removed, d)
		}
	}
	r.devices = next
	return removed
}

// Get looks up a device by id.
func (r *DeviceRegistry) Get(id DeviceID) (Device, bool) {
	d, ok := r.devices[id]
	return d, ok
}

// HasAssociatedMouse reports whether any live mouse-class device is
// explicitly associated with display.
func (r *DeviceRegistry) HasAssociatedMouse(display DisplayID) bool {
	for _, d := range r.devices {
		if d.AssociatedDisplayID == display && d.Sources.Has(SourceMouse|SourceMouseRelative) {
			return true
		}
	}
	return false
}

// All returns a snapshot of the current device list.
func (r *DeviceRegistry) All() []Device {
	out := make([]Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d)
	}
	return out
}
