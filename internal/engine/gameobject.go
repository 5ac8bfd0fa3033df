package engine

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return NewGameObjectWithUID(name, nextUID.Add(1))
}

// NewGameObjectWithUID creates a GameObject with a known UID, used when
// loading scenes so GameObjectRefs stay valid. Later NewGameObject calls
// never reuse it.
func NewGameObjectWithUID(name string, uid uint64) *GameObject {
	for {
		cur := nextUID.Load()
		if uid <= cur || nextUID.CompareAndSwap(cur, uid) {
			break
		}
	}
	return &GameObject{
		UID:    uid,
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T any](g *GameObject) T {
	c, _ := TryGetComponent[T](g)
	return c
}

// TryGetComponent resolves a capability on g. T may be a concrete component
// pointer or an interface. Destroyed objects expose no capabilities.
func TryGetComponent[T any](g *GameObject) (T, bool) {
	var zero T
	if g == nil || g.destroyed {
		return zero, false
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// Start validates and then starts every component once. Validation errors
// from all components are joined; no component is started if any fail.
func (g *GameObject) Start() error {
	if g.started {
		return nil
	}
	var errs []error
	for _, c := range g.components {
		if v, ok := c.(Validator); ok {
			if err := v.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("start %q: %w", g.Name, err)
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	return nil
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Destroyed reports whether the object has been torn down. References held
// across frames must check this before use.
func (g *GameObject) Destroyed() bool {
	return g == nil || g.destroyed
}

// destroy runs OnDestroy hooks and marks g and its children destroyed.
func (g *GameObject) destroy() {
	if g.destroyed {
		return
	}
	for _, child := range g.Children {
		child.destroy()
	}
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	g.destroyed = true
	g.Active = false
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same order the renderer uses
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateX(float32(rx)), rl.MatrixRotateY(float32(ry))), rl.MatrixRotateZ(float32(rz)))

	return rl.Vector3Add(parentPos, rl.Vector3Transform(scaled, rotMatrix))
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
