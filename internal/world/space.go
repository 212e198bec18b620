package world

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"chosenoffset.com/stillirise/internal/core/geom"
)

// Collision tags. Every object also carries its side's name.
const (
	TagPlatform = "platform"
	TagItem     = "item"
)

const (
	spaceCell   = 32
	spaceMargin = 256
	queryPad    = 2 // resolv rounds the far edge in, so queries reach a little further
)

// Space mirrors a world's platforms and collectibles in a resolv grid.
// Queries return nearby candidates only; callers apply the exact rules.
// The grid starts at a shifted origin because climbs run into negative y.
// Not safe for concurrent use.
type Space struct {
	world   *World
	grid    *resolv.Space
	hitBox  float64
	originX float64
	originY float64

	platforms []*resolv.Object // Parallel to world.Platforms
	items     []*resolv.Object // Parallel to world.Collectibles, nil once collected
	cursor    *resolv.Object   // Moved over each query box
}

// NewSpace indexes w. Collectibles are sized hitBox square.
func NewSpace(w *World, hitBox float64) *Space {
	minX, minY, maxX, maxY := extents(w, hitBox)

	s := &Space{
		world:   w,
		hitBox:  hitBox,
		originX: minX - spaceMargin,
		originY: minY - 4*spaceMargin,
	}
	width := int(math.Ceil(maxX-s.originX)) + spaceMargin
	height := int(math.Ceil(maxY-s.originY)) + spaceMargin
	s.grid = resolv.NewSpace(width, height, spaceCell, spaceCell)

	s.cursor = resolv.NewObject(0, 0, 1, 1, "query")
	s.grid.Add(s.cursor)

	s.Sync()
	return s
}

func extents(w *World, hitBox float64) (minX, minY, maxX, maxY float64) {
	for _, p := range w.Platforms {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X+p.Width)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y+p.Height)
	}
	for _, c := range w.Collectibles {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X+hitBox)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y+hitBox)
	}
	return minX, minY, maxX, maxY
}

// Sync moves every object to its owner's current position, indexes
// collectibles added since the last call and drops collected ones.
func (s *Space) Sync() {
	for i := range s.world.Platforms {
		p := &s.world.Platforms[i]
		if i == len(s.platforms) {
			s.platforms = append(s.platforms, s.add(i, p.Width, p.Height, TagPlatform, p.Side.String()))
		}
		s.place(s.platforms[i], p.X, p.Y)
	}

	for i := range s.world.Collectibles {
		c := &s.world.Collectibles[i]
		if i == len(s.items) {
			s.items = append(s.items, s.add(i, s.hitBox, s.hitBox, TagItem, c.Side.String()))
		}
		obj := s.items[i]
		if obj == nil {
			continue
		}
		if c.Collected {
			s.grid.Remove(obj)
			s.items[i] = nil
			continue
		}
		s.place(obj, c.X, c.Y)
	}
}

func (s *Space) add(index int, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, w, h, tags...)
	obj.Data = index
	s.grid.Add(obj)
	return obj
}

func (s *Space) place(obj *resolv.Object, x, y float64) {
	x, y = x-s.originX, y-s.originY
	if obj.X == x && obj.Y == y {
		return
	}
	obj.X, obj.Y = x, y
	obj.Update()
}

// Platforms returns the platforms visible to side that lie near box, in
// world order.
func (s *Space) Platforms(side Side, box geom.Rect) []*Platform {
	var result []*Platform
	for _, i := range s.near(box, TagPlatform, side.String(), SideShared.String()) {
		result = append(result, &s.world.Platforms[i])
	}
	return result
}

// Collectibles returns the uncollected items of side that lie near box, in
// id order.
func (s *Space) Collectibles(side Side, box geom.Rect) []*Collectible {
	var result []*Collectible
	for _, i := range s.near(box, TagItem, side.String()) {
		if c := &s.world.Collectibles[i]; !c.Collected {
			result = append(result, c)
		}
	}
	return result
}

func (s *Space) near(box geom.Rect, kind string, tags ...string) []int {
	s.cursor.X = box.X - s.originX - queryPad
	s.cursor.Y = box.Y - s.originY - queryPad
	s.cursor.W = math.Max(box.W, 1) + 2*queryPad
	s.cursor.H = math.Max(box.H, 1) + 2*queryPad
	s.cursor.Update()

	hit := s.cursor.Check(0, 0, tags...)
	if hit == nil {
		return nil
	}

	var indexes []int
	for _, obj := range hit.Objects {
		if obj.HasTags(kind) {
			indexes = append(indexes, obj.Data.(int))
		}
	}
	sort.Ints(indexes)
	return indexes
}
