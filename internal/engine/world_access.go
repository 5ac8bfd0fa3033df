package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// OverlapSphere returns every live collidable object overlapping the
	// sphere. Ordering is unspecified.
	OverlapSphere(center rl.Vector3, radius float32) []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
}
