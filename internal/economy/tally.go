package economy

import (
	"fmt"
	"sort"
	"sync"

	"chosenoffset.com/stillirise/internal/world"
)

// Entry is one collectible type and how many were picked up
type Entry struct {
	Type  world.CollectibleType
	Count int
}

// Tally counts the pickups made by one avatar during a match.
// It is safe to read from a render goroutine while the match writes to it.
type Tally struct {
	mu sync.RWMutex

	slots map[world.CollectibleType]int // Type -> quantity
}

// NewTally creates an empty tally
func NewTally() *Tally {
	return &Tally{
		slots: make(map[world.CollectibleType]int),
	}
}

// Add records one pickup of the given type
func (t *Tally) Add(typ world.CollectibleType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots[typ]++
}

// Count returns how many of a type were picked up
func (t *Tally) Count(typ world.CollectibleType) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.slots[typ]
}

// Total returns the number of pickups of any type
func (t *Tally) Total() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := 0
	for _, count := range t.slots {
		total += count
	}
	return total
}

// Good returns the number of life-granting pickups
func (t *Tally) Good() int {
	return t.sum(true)
}

// Bad returns the number of life-costing pickups
func (t *Tally) Bad() int {
	return t.sum(false)
}

func (t *Tally) sum(good bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := 0
	for typ, count := range t.slots {
		if typ.IsGood() == good {
			total += count
		}
	}
	return total
}

// Entries returns every recorded type and its count, ordered by type
func (t *Tally) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]Entry, 0, len(t.slots))
	for typ, count := range t.slots {
		result = append(result, Entry{Type: typ, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})

	return result
}

// Clear forgets every pickup
func (t *Tally) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots = make(map[world.CollectibleType]int)
}

// Debug returns a string representation of the tally
func (t *Tally) Debug() string {
	return fmt.Sprintf("Tally{%d good, %d bad}", t.Good(), t.Bad())
}
