//go:build !game

package interaction

import rl "github.com/gen2brain/raylib-go/raylib"

// GizmoColor is the translucent green used for the scan sphere.
var GizmoColor = rl.NewColor(0, 255, 0, 51)

// DrawGizmos draws the scan sphere at the anchor when ShowRadius is set.
// Must be called between BeginMode3D and EndMode3D. Editor builds only.
func (s *Scanner) DrawGizmos() {
	if !s.ShowRadius {
		return
	}
	center, ok := s.AnchorPosition()
	if !ok {
		return
	}
	rl.DrawSphere(center, s.Radius, GizmoColor)
	rl.DrawSphereWires(center, s.Radius, 8, 16, rl.NewColor(0, 255, 0, 128))
}
