package types

// Event is one activity-log entry. The upstream attaches a free-form set of
// fields alongside the diff, all of which are passed through to the host, so
// the record is kept as a map.
type Event map[string]any

// DiffEntry is one field change inside an event's diff array.
type DiffEntry struct {
	Key      string `json:"key"`
	Basis    any    `json:"basis"`
	Modified any    `json:"modified"`
	Type     any    `json:"type"`
}

// Type returns the event's class, or -1 when absent or malformed.
func (e Event) Type() EventType {
	switch t := e["eventType"].(type) {
	case float64:
		return EventType(int(t))
	case int:
		return EventType(t)
	default:
		return EventType(-1)
	}
}

// Normalize folds the event's diff array into flat before/after maps, lifts
// the booking identifier out of the "Booking id" entry, and drops the diff.
// Events without a diff are returned unchanged.
func (e Event) Normalize() Event {
	raw, ok := e["diff"].([]any)
	if !ok {
		return e
	}
	before := map[string]any{}
	after := map[string]any{}
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key, _ := m["key"].(string)
		if key == "" {
			continue
		}
		before[key] = m["basis"]
		after[key] = m["modified"]
	}
	e["before"] = before
	e["after"] = after
	if basis, ok := before["Booking id"]; ok && basis != nil {
		e["bookingId"] = basis
	}
	delete(e, "diff")
	return e
}
