package history

import (
	"sync"
	"time"

	"wordstats/internal/engine"
)

// DefaultCapacity bounds the ring like the interactive UI did: the last
// hundred analyses are retained, older ones are dropped.
const DefaultCapacity = 100

const previewLimit = 100

// Entry is one retained analysis result.
type Entry struct {
	At      time.Time      `json:"at"`
	Preview string         `json:"text_preview"`
	Report  *engine.Report `json:"report"`
}

// Ring is a bounded in-memory record of recent analyses. It is the only
// history the system keeps; nothing is persisted. Safe for concurrent use.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{cap: capacity}
}

// Push records a report with a preview of the text it came from, evicting
// the oldest entry once the ring is full.
func (r *Ring) Push(text string, report *engine.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		At:      time.Now(),
		Preview: preview(text),
		Report:  report,
	})
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Len returns the number of retained entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot returns the retained entries oldest first.
func (r *Ring) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Latest returns the most recent entry, or false when the ring is empty.
func (r *Ring) Latest() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
