package session

// EventKind identifies a controller broadcast
type EventKind int

const (
	// EventReady fires once when a surface is attached
	EventReady EventKind = iota
	// EventTabsChanged fires when tabs are added, removed or renamed
	EventTabsChanged
	// EventActiveChanged fires when a different tab becomes active
	EventActiveChanged
)

func (k EventKind) String() string {
	switch k {
	case EventReady:
		return "ready"
	case EventTabsChanged:
		return "tabs-changed"
	case EventActiveChanged:
		return "active-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the state change is complete
type Event struct {
	Kind     EventKind
	ActiveID string
}
