package physics

import (
	"log"
	"math"
	"sort"

	"proximity/internal/components"
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - queries only test objects in cells they touch
const CellSize = 5.0

// maxObjectCells caps how many cells one collider is inserted into. Larger
// colliders (floors, trigger volumes) go on the oversized list instead.
const maxObjectCells = 64

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// PhysicsWorld answers overlap queries against registered colliders.
// It does not simulate motion.
type PhysicsWorld struct {
	Objects []*engine.GameObject // registration order
	grid    map[CellKey][]int    // indices into Objects
	dirty   bool

	// indices tested by every query instead of being gridded
	oversized []int

	// reusable per-query scratch
	seen map[int]struct{}
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects: make([]*engine.GameObject, 0),
		grid:    make(map[CellKey][]int),
		seen:    make(map[int]struct{}),
	}
}

// AddObject registers g if it carries a collider. Returns false otherwise.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if !hasCollider(g) {
		return false
	}
	for _, obj := range p.Objects {
		if obj == g {
			return true
		}
	}
	p.Objects = append(p.Objects, g)
	p.dirty = true
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			p.dirty = true
			return
		}
	}
}

func (p *PhysicsWorld) ObjectCount() int {
	return len(p.Objects)
}

// Update marks the grid stale; objects may have moved this frame.
func (p *PhysicsWorld) Update(deltaTime float32) {
	p.dirty = true
}

// rebuildGrid clears and repopulates the spatial hash grid. Each object is
// inserted into every cell its bounding sphere touches. Destroyed objects
// are pruned.
func (p *PhysicsWorld) rebuildGrid() {
	clear(p.grid)
	p.oversized = p.oversized[:0]

	live := p.Objects[:0]
	for _, obj := range p.Objects {
		if obj.Destroyed() {
			continue
		}
		live = append(live, obj)
	}
	if pruned := len(p.Objects) - len(live); pruned > 0 {
		log.Printf("Physics: pruned %d destroyed object(s)", pruned)
	}
	p.Objects = live

	for i, obj := range p.Objects {
		center, radius := boundingSphere(obj)
		if cellSpan(center, radius) > maxObjectCells {
			p.oversized = append(p.oversized, i)
			continue
		}
		forEachCell(center, radius, func(cell CellKey) {
			p.grid[cell] = append(p.grid[cell], i)
		})
	}
	p.dirty = false
}

// OverlapSphere returns every live, active object whose collider intersects
// the sphere, in registration order.
func (p *PhysicsWorld) OverlapSphere(center rl.Vector3, radius float32) []*engine.GameObject {
	if radius <= 0 {
		return nil
	}
	if p.dirty {
		p.rebuildGrid()
	}

	var hits []int
	// A query touching more cells than there are objects is cheaper as a
	// linear scan, and already in registration order.
	if cellSpan(center, radius) > float64(len(p.Objects)) {
		for idx, obj := range p.Objects {
			if overlaps(obj, center, radius) {
				hits = append(hits, idx)
			}
		}
	} else {
		clear(p.seen)
		test := func(idx int) {
			if _, ok := p.seen[idx]; ok {
				return
			}
			p.seen[idx] = struct{}{}
			if overlaps(p.Objects[idx], center, radius) {
				hits = append(hits, idx)
			}
		}
		for _, idx := range p.oversized {
			test(idx)
		}
		forEachCell(center, radius, func(cell CellKey) {
			for _, idx := range p.grid[cell] {
				test(idx)
			}
		})
		sort.Ints(hits)
	}

	result := make([]*engine.GameObject, 0, len(hits))
	for _, idx := range hits {
		result = append(result, p.Objects[idx])
	}
	return result
}

func forEachCell(center rl.Vector3, radius float32, fn func(CellKey)) {
	lo := posToCell(rl.Vector3SubtractValue(center, radius))
	hi := posToCell(rl.Vector3AddValue(center, radius))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				fn(CellKey{X: x, Y: y, Z: z})
			}
		}
	}
}

// cellSpan is how many cells forEachCell would visit for the sphere. It is
// computed in floating point so huge or infinite radii do not overflow.
func cellSpan(center rl.Vector3, radius float32) float64 {
	axis := func(c float32) float64 {
		lo := math.Floor(float64(c-radius) / CellSize)
		hi := math.Floor(float64(c+radius) / CellSize)
		return hi - lo + 1
	}
	span := axis(center.X) * axis(center.Y) * axis(center.Z)
	if math.IsNaN(span) {
		return math.Inf(1)
	}
	return span
}

func hasCollider(g *engine.GameObject) bool {
	if _, ok := engine.TryGetComponent[*components.SphereCollider](g); ok {
		return true
	}
	_, ok := engine.TryGetComponent[*components.BoxCollider](g)
	return ok
}

// boundingSphere encloses all of g's colliders.
func boundingSphere(g *engine.GameObject) (rl.Vector3, float32) {
	center := g.WorldPosition()
	var radius float32
	for _, c := range g.Components() {
		switch col := c.(type) {
		case *components.SphereCollider:
			r := rl.Vector3Distance(center, col.GetCenter()) + col.GetWorldRadius()
			radius = max(radius, r)
		case *components.BoxCollider:
			obb := NewOBBFromCollider(col)
			r := rl.Vector3Distance(center, obb.Center) + obb.BoundingRadius()
			radius = max(radius, r)
		}
	}
	return center, radius
}

func overlaps(g *engine.GameObject, center rl.Vector3, radius float32) bool {
	if g.Destroyed() || !g.Active {
		return false
	}
	for _, c := range g.Components() {
		switch col := c.(type) {
		case *components.SphereCollider:
			r := radius + col.GetWorldRadius()
			if rl.Vector3DistanceSqr(col.GetCenter(), center) <= r*r {
				return true
			}
		case *components.BoxCollider:
			if NewOBBFromCollider(col).IntersectsSphere(center, radius) {
				return true
			}
		}
	}
	return false
}
