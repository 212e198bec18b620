// Package records keeps the best climbs of the current session. Nothing is
// written to disk; the book is gone when the process exits.
package records

import (
	"sync"

	"chosenoffset.com/stillirise/internal/ui/menu"
)

// Record summarizes every match finished this session
type Record struct {
	BestLeft  float64
	BestRight float64
	BestScore int
	Matches   int
}

// Best returns the higher of the two sides' best climbs
func (r Record) Best() float64 {
	return max(r.BestLeft, r.BestRight)
}

// Book accumulates finished matches. It is safe for concurrent use.
type Book struct {
	mu     sync.Mutex
	record Record
}

// NewBook creates an empty book
func NewBook() *Book {
	return &Book{}
}

// Add folds a finished match into the record and returns the result
func (b *Book) Add(s menu.Summary) Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := &b.record
	r.Matches++
	r.BestLeft = max(r.BestLeft, s.Left.Climbed)
	r.BestRight = max(r.BestRight, s.Right.Climbed)
	r.BestScore = max(r.BestScore, s.Left.Score, s.Right.Score)
	return b.record
}

// Current returns a copy of the record
func (b *Book) Current() Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.record
}
