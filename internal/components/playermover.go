package components

import (
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerMover translates its GameObject on the XZ plane from keyboard input.
type PlayerMover struct {
	engine.BaseComponent
	MoveSpeed float32
	Velocity  rl.Vector3

	// Input reads the desired direction; defaults to WASD.
	Input func() rl.Vector3
}

func NewPlayerMover() *PlayerMover {
	return &PlayerMover{
		MoveSpeed: 6.0,
		Input:     KeyboardDirection,
	}
}

func (p *PlayerMover) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Input == nil {
		return
	}

	dir := p.Input()
	if rl.Vector3LengthSqr(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	p.Velocity = rl.Vector3Scale(dir, p.MoveSpeed)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(p.Velocity, deltaTime))
}

// KeyboardDirection returns the unnormalized WASD direction.
func KeyboardDirection() rl.Vector3 {
	var dir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		dir.Z -= 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		dir.Z += 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		dir.X -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		dir.X += 1
	}
	return dir
}
