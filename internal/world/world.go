// Package world holds the platforms and collectibles of one climb and the
// rules that move them. A World is generated once per match; nothing is
// ever removed from it, collected items are only flagged.
package world

import (
	"chosenoffset.com/stillirise/internal/core/geom"
)

// Side identifies which half of the arena something belongs to
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideShared // Only the ground uses this
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Motion is the oscillator state of a moving platform
type Motion struct {
	Offset    float64
	Direction int // -1 or +1
	OriginalX float64
}

// Platform is a one-sided ledge avatars can land on from above
type Platform struct {
	ID     int
	X, Y   float64
	Width  float64
	Height float64
	Side   Side
	Motion *Motion // nil for static platforms
}

// Rect returns the platform's bounding box
func (p *Platform) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// VisibleTo reports whether an avatar on the given side collides with this platform
func (p *Platform) VisibleTo(side Side) bool {
	return p.Side == side || p.Side == SideShared
}

// CollectibleType identifies a pickup
type CollectibleType int

const (
	Book CollectibleType = iota
	Money
	Food
	Gun
	Drug
	Police
	Baby
)

// GoodTypes and BadTypes are the candidate sets for random picks
var (
	GoodTypes = []CollectibleType{Book, Money, Food}
	BadTypes  = []CollectibleType{Gun, Drug, Police, Baby}
)

// IsGood reports whether picking this type up grants a life
func (t CollectibleType) IsGood() bool {
	return t == Book || t == Money || t == Food
}

// Glyph returns the single character drawn on an item's tile
func (t CollectibleType) Glyph() rune {
	switch t {
	case Book:
		return 'B'
	case Money:
		return '$'
	case Food:
		return 'F'
	case Gun:
		return 'X'
	case Drug:
		return '!'
	case Police:
		return 'P'
	case Baby:
		return 'b'
	default:
		return '?'
	}
}

func (t CollectibleType) String() string {
	switch t {
	case Book:
		return "book"
	case Money:
		return "money"
	case Food:
		return "food"
	case Gun:
		return "gun"
	case Drug:
		return "drug"
	case Police:
		return "police"
	case Baby:
		return "baby"
	default:
		return "unknown"
	}
}

// Anchor glues a collectible to a moving platform
type Anchor struct {
	PlatformID int
	OffsetX    float64 // Distance from the platform's current x
}

// Collectible is a pickup. Collected is set once and never cleared.
type Collectible struct {
	ID        int
	X, Y      float64
	Type      CollectibleType
	Side      Side
	Collected bool
	Anchor    *Anchor
}

// Rect returns the collectible's hit box of the given size
func (c *Collectible) Rect(size float64) geom.Rect {
	return geom.Rect{X: c.X, Y: c.Y, W: size, H: size}
}

// World is the full layout of one climb
type World struct {
	Platforms    []Platform
	Collectibles []Collectible

	nextPlatformID    int
	nextCollectibleID int
	platformIndex     map[int]int // Platform ID -> index in Platforms
}

// New creates an empty world with fresh id counters
func New() *World {
	return &World{
		platformIndex: make(map[int]int),
	}
}

// AddPlatform assigns the next platform id and stores the platform
func (w *World) AddPlatform(p Platform) int {
	p.ID = w.nextPlatformID
	w.nextPlatformID++
	w.platformIndex[p.ID] = len(w.Platforms)
	w.Platforms = append(w.Platforms, p)
	return p.ID
}

// AddCollectible assigns the next collectible id and stores the collectible
func (w *World) AddCollectible(c Collectible) int {
	c.ID = w.nextCollectibleID
	w.nextCollectibleID++
	w.Collectibles = append(w.Collectibles, c)
	return c.ID
}

// PlatformByID looks up a platform by id
func (w *World) PlatformByID(id int) (*Platform, bool) {
	idx, ok := w.platformIndex[id]
	if !ok || idx >= len(w.Platforms) {
		return nil, false
	}
	return &w.Platforms[idx], true
}

// Uncollected returns the collectibles still in play on a side
func (w *World) Uncollected(side Side) []Collectible {
	var result []Collectible
	for _, c := range w.Collectibles {
		if c.Side == side && !c.Collected {
			result = append(result, c)
		}
	}
	return result
}
