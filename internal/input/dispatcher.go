package input

// Listener is a registered host event callback.
type Listener interface {
	Remove()
}

type handler struct {
	id uint32
	fn func(Event)
}

// Dispatcher fans host events out to registered callbacks.
type Dispatcher struct {
	handlers [Resize + 1][]*handler
	nextID   uint32
}

// Handle allows removing a registered callback.
type Handle struct {
	id   uint32
	kind Kind
	d    *Dispatcher
}

// Remove unregisters this callback so it no longer fires, including later in
// a dispatch already in progress. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.handlers[h.kind]
	for i := range s {
		if s[i].id == h.id {
			s[i].fn = nil
			// copy on write: an in-flight Dispatch keeps ranging over s
			h.d.handlers[h.kind] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// Listen registers fn for events of the given kind.
func (d *Dispatcher) Listen(kind Kind, fn func(Event)) Listener {
	if fn == nil || int(kind) >= len(d.handlers) {
		return Handle{}
	}
	d.nextID++
	id := d.nextID
	d.handlers[kind] = append(d.handlers[kind], &handler{id: id, fn: fn})
	return Handle{id: id, kind: kind, d: d}
}

// Dispatch delivers ev to every callback registered for its kind.
func (d *Dispatcher) Dispatch(ev Event) {
	if int(ev.Kind) >= len(d.handlers) {
		return
	}
	for _, h := range d.handlers[ev.Kind] {
		if h.fn != nil {
			h.fn(ev)
		}
	}
}

// Count returns the number of callbacks registered for kind.
func (d *Dispatcher) Count(kind Kind) int {
	if int(kind) >= len(d.handlers) {
		return 0
	}
	return len(d.handlers[kind])
}
