// Package input keeps the set of currently held keys for frontends whose
// events arrive on a different goroutine than the simulation.
package input

import (
	"sync"
	"time"
)

// DefaultTTL is how long a key stays held after its last press or repeat.
// It has to outlast the delay before auto-repeat starts, which is 660ms on
// a stock X server and shorter on most terminals.
const DefaultTTL = 700 * time.Millisecond

// HeldKeys is a key set written by an event goroutine and read once per frame.
// Terminals report presses and repeats but no releases, so a key counts as
// held until TTL passes without another press.
type HeldKeys struct {
	mu   sync.Mutex
	ttl  time.Duration
	last map[rune]time.Time
	now  func() time.Time
}

// NewHeldKeys creates an empty set. A ttl of zero uses DefaultTTL.
func NewHeldKeys(ttl time.Duration) *HeldKeys {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &HeldKeys{
		ttl:  ttl,
		last: make(map[rune]time.Time),
		now:  time.Now,
	}
}

// Press records a key-down or auto-repeat
func (h *HeldKeys) Press(key rune) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[key] = h.now()
}

// Held reports whether a key was pressed within the TTL
func (h *HeldKeys) Held(key rune) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.heldLocked(key, h.now())
}

func (h *HeldKeys) heldLocked(key rune, now time.Time) bool {
	t, ok := h.last[key]
	if !ok {
		return false
	}
	if now.Sub(t) > h.ttl {
		delete(h.last, key)
		return false
	}
	return true
}

// Snapshot returns the held state of several keys read under one lock, so a
// frame sees a single consistent view.
func (h *HeldKeys) Snapshot(keys ...rune) map[rune]bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	out := make(map[rune]bool, len(keys))
	for _, k := range keys {
		out[k] = h.heldLocked(k, now)
	}
	return out
}

// Clear forgets every key
func (h *HeldKeys) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = make(map[rune]time.Time)
}
