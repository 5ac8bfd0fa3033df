//go:build game

package interaction

// DrawGizmos is a no-op in game builds.
func (s *Scanner) DrawGizmos() {}
