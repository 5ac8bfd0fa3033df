//go:build game

package game

func initDebugUI()              {}
func (g *Game) drawDebugPanel() {}
