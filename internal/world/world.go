package world

import (
	"proximity/internal/components"
	"proximity/internal/engine"
	"proximity/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

// World owns the scene and its collision index.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
}

func New() *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
	}
	w.Scene.World = w
	return w
}

// SpawnObject adds g to the scene and, if it has a collider, the physics world.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
}

func (w *World) Destroy(g *engine.GameObject) {
	w.PhysicsWorld.RemoveObject(g)
	for _, child := range g.Children {
		w.PhysicsWorld.RemoveObject(child)
	}
	w.Scene.Destroy(g)
}

func (w *World) OverlapSphere(center rl.Vector3, radius float32) []*engine.GameObject {
	return w.PhysicsWorld.OverlapSphere(center, radius)
}

// Start starts the scene and returns every configuration error found.
func (w *World) Start() error {
	return w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.PhysicsWorld.Update(deltaTime)
	w.Scene.Update(deltaTime)
}

// Draw renders the floor and every MeshRenderer. Call inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: FloorSize, Y: FloorSize}, rl.LightGray)
	rl.DrawGrid(int32(FloorSize), 1.0)

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.MeshRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

// PromptTexts returns the UIText components in the scene, for the HUD pass.
func (w *World) PromptTexts() []*components.UIText {
	var result []*components.UIText
	for _, g := range w.Scene.GameObjects {
		if text := engine.GetComponent[*components.UIText](g); text != nil {
			result = append(result, text)
		}
	}
	return result
}
