package chat

// DefaultLogCapacity is the number of conversation entries the console
// retains. Older entries are discarded, not archived.
const DefaultLogCapacity = 9

// Log is a bounded append-only conversation log. Appending beyond the
// capacity evicts the oldest entries.
type Log struct {
	capacity int
	entries  []Message
}

// NewLog creates a Log with the given capacity. A capacity of zero or
// less falls back to DefaultLogCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &Log{capacity: capacity}
}

// Append adds a message, evicting the oldest entries if the log is full.
func (l *Log) Append(m Message) {
	l.entries = append(l.entries, m)
	if overflow := len(l.entries) - l.capacity; overflow > 0 {
		l.entries = l.entries[overflow:]
	}
}

// Entries returns a copy of the retained messages, oldest first.
func (l *Log) Entries() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained messages.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent message and true, or a zero Message and
// false when the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.entries) == 0 {
		return Message{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Capacity returns the maximum number of retained messages.
func (l *Log) Capacity() int {
	return l.capacity
}
