//go:build !game

package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(18, 18, 24, 230)
	colorAccent = rl.NewColor(108, 99, 255, 255)
)

func initDebugUI() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawDebugPanel shows scanner state and lets the radius gizmo and radius be
// tuned live.
func (g *Game) drawDebugPanel() {
	const panelW, panelH = 260, 170
	x := float32(rl.GetScreenWidth()) - panelW - 10
	y := float32(10)

	rl.DrawRectangle(int32(x), int32(y), panelW, panelH, colorPanel)
	rl.DrawRectangleLines(int32(x), int32(y), panelW, panelH, colorAccent)
	rl.DrawText("Interaction Scanner", int32(x)+10, int32(y)+8, 16, rl.White)

	s := g.Scanner
	s.ShowRadius = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 32, Width: 16, Height: 16}, "Show radius", s.ShowRadius)
	s.Radius = gui.Slider(
		rl.Rectangle{X: x + 60, Y: y + 56, Width: panelW - 110, Height: 16},
		"Radius", fmt.Sprintf("%.1f", s.Radius), s.Radius, 0.5, g.radiusSliderMax(),
	)

	target := "none"
	if t := s.Target(); t != nil {
		target = t.GetGameObject().Name
	}
	pos := g.InteractPoint.WorldPosition()
	lines := []string{
		fmt.Sprintf("Target: %s", target),
		fmt.Sprintf("Scans: %d  Interval: %v", s.Scans(), s.Interval),
		fmt.Sprintf("Anchor: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
	}
	for i, line := range lines {
		rl.DrawText(line, int32(x)+10, int32(y)+82+int32(i)*20, 14, rl.LightGray)
	}
}
