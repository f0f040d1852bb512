package field

// EventKind identifies a field event.
type EventKind int

const (
	// FocusGained fires when the field becomes active.
	FocusGained EventKind = iota
	// FocusLost fires when the field is deactivated, after any numeric
	// commit has rewritten the buffer.
	FocusLost
	// TextChanged fires after every buffer mutation.
	TextChanged
	// ValueCommitted fires when a numeric field commits on blur. HasValue is
	// false when the empty-value policy committed an absent value.
	ValueCommitted
)

// Event is delivered synchronously to every subscriber, in registration
// order, from within the operation that caused it.
type Event struct {
	Kind     EventKind
	Text     string
	Value    float64
	HasValue bool
}

// Subscribe registers a listener for all field events. There is no
// unsubscribe; listeners live as long as the field.
func (f *Field) Subscribe(fn func(Event)) {
	f.listeners = append(f.listeners, fn)
}

func (f *Field) emit(ev Event) {
	for _, fn := range f.listeners {
		fn(ev)
	}
}
