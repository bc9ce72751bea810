package picolog

// A slot pairs a subscriber identity with its severity threshold.
// A slot with a nil subscriber is free.
type slot struct {
	name string
	sub  Subscriber
	min  Level
}

// registry is a fixed-capacity subscriber table. It never grows. Dispatch
// walks the slots in order, so every active subscriber is visited exactly
// once per message; beyond that, slot order is not contractual (a freed
// slot may be reoccupied by a later subscribe).
type registry struct {
	slots []slot
}

func newRegistry(capacity int) *registry {
	return &registry{slots: make([]slot, capacity)}
}

// subscribe installs sub under name, or updates the subscriber and
// threshold in place when name is already present. A single scan remembers
// the first free slot so a full table is detected without a second pass.
// On ErrSubscribersExceeded the table is left unchanged.
func (r *registry) subscribe(name string, sub Subscriber, min Level) error {
	if name == "" {
		return ErrEmptyName
	}
	if sub == nil {
		return ErrNilSubscriber
	}
	free := -1
	for i := range r.slots {
		s := &r.slots[i]
		switch {
		case s.sub != nil && s.name == name:
			s.sub = sub
			s.min = min
			return nil
		case s.sub == nil && free == -1:
			free = i
		}
	}
	if free == -1 {
		return ErrSubscribersExceeded
	}
	r.slots[free] = slot{name: name, sub: sub, min: min}
	return nil
}

// unsubscribe frees the slot registered under name.
func (r *registry) unsubscribe(name string) error {
	for i := range r.slots {
		if r.slots[i].sub != nil && r.slots[i].name == name {
			r.slots[i] = slot{}
			return nil
		}
	}
	return ErrNotSubscribed
}

// names returns the active subscriber names in slot order.
func (r *registry) names() []string {
	out := make([]string, 0, len(r.slots))
	for i := range r.slots {
		if r.slots[i].sub != nil {
			out = append(out, r.slots[i].name)
		}
	}
	return out
}
