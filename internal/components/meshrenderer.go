package components

import (
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	return meshTypeNames[m]
}

// ParseMeshType maps a scene-file mesh name to a MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	for t, n := range meshTypeNames {
		if n == name {
			return t, true
		}
	}
	return MeshCube, false
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()

	switch m.MeshType {
	case MeshCube:
		// Only yaw is shown; doors and crates never pitch or roll
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(g.WorldRotation().Y, 0, 1, 0)
		rl.DrawCubeV(rl.Vector3Zero(), m.Size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3Zero(), m.Size, rl.Fade(rl.Black, 0.4))
		rl.PopMatrix()
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
}
