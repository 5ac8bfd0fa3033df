package components

import (
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns the size scaled by world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X * scale.X),
		Y: absf(b.Size.Y * scale.Y),
		Z: absf(b.Size.Z * scale.Z),
	}
}

func (b *BoxCollider) GetWorldRotation() rl.Vector3 {
	return b.GetGameObject().WorldRotation()
}
