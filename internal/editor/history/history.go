// Package history implements the editor's bounded linear undo/redo stack.
package history

import (
	"sync"
	"time"
)

const (
	// DefaultCapacity is the maximum number of snapshots kept.
	DefaultCapacity = 100
	// DefaultDebounce is the inactivity window that collapses text edits
	// into a single snapshot.
	DefaultDebounce = 500 * time.Millisecond
)

// Snapshot is one editor state.
type Snapshot struct {
	Content string
	Cursor  int
}

type timer interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) timer

func realAfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

// Option configures a History.
type Option func(*History)

// WithCapacity overrides DefaultCapacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// WithDebounce overrides DefaultDebounce. Values below zero are ignored.
func WithDebounce(d time.Duration) Option {
	return func(h *History) {
		if d >= 0 {
			h.debounce = d
		}
	}
}

// History is a linear undo/redo stack. Pushing after an undo discards the
// redo branch. It is safe for concurrent use.
type History struct {
	capacity  int
	debounce  time.Duration
	afterFunc afterFunc

	mu      sync.Mutex
	entries []Snapshot
	pos     int

	pending    *Snapshot
	timer      timer
	generation uint64
	closed     bool
}

// New creates a History whose first entry is initial.
func New(initial Snapshot, opts ...Option) *History {
	h := &History{
		capacity:  DefaultCapacity,
		debounce:  DefaultDebounce,
		afterFunc: realAfterFunc,
		entries:   []Snapshot{initial},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push records s immediately, committing any pending debounced snapshot
// first. It reports whether s was recorded; a snapshot whose content equals
// the current entry is skipped.
func (h *History) Push(s Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.flushLocked()
	return h.pushLocked(s)
}

// PushDebounced schedules s to be recorded once no other debounced push
// arrives within the debounce window. Later calls replace the pending
// snapshot and restart the window.
func (h *History) PushDebounced(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.pending = &s
	h.stopTimerLocked()
	h.generation++
	gen := h.generation
	h.timer = h.afterFunc(h.debounce, func() { h.fire(gen) })
}

// Flush records the pending debounced snapshot, if any.
func (h *History) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.flushLocked()
}

// Undo steps back one entry and returns it. It returns false at the oldest
// entry.
func (h *History) Undo() (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.flushLocked()
	if h.pos == 0 {
		return Snapshot{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Redo steps forward one entry and returns it. It returns false at the
// newest entry.
func (h *History) Redo() (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pos >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Current returns the entry at the pointer.
func (h *History) Current() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.entries[h.pos]
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pos > 0 || (h.pending != nil && h.pending.Content != h.entries[h.pos].Content)
}

func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pos < len(h.entries)-1
}

// Close stops the debounce timer and drops any pending snapshot.
func (h *History) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopTimerLocked()
	h.pending = nil
	h.closed = true
}

func (h *History) fire(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A newer debounced push or a flush superseded this timer.
	if gen != h.generation || h.closed {
		return
	}
	h.timer = nil
	h.flushLocked()
}

func (h *History) flushLocked() {
	if h.pending == nil {
		return
	}
	s := *h.pending
	h.pending = nil
	h.stopTimerLocked()
	h.generation++
	h.pushLocked(s)
}

func (h *History) pushLocked(s Snapshot) bool {
	if s.Content == h.entries[h.pos].Content {
		return false
	}

	h.entries = append(h.entries[:h.pos+1], s)
	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	h.pos = len(h.entries) - 1
	return true
}

func (h *History) stopTimerLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
