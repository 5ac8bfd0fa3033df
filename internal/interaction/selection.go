package interaction

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SelectClosest returns the candidate closest to anchor by straight-line
// distance, or false if there are none. Candidates at exactly equal distance
// resolve to the lower GameObject UID, so the result does not depend on the
// order the range query returned them in.
func SelectClosest(anchor rl.Vector3, candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	minDist := float32(math.Inf(1))

	for _, c := range candidates {
		dist := rl.Vector3Distance(anchor, c.Object.WorldPosition())
		closer := dist < minDist || (dist == minDist && found && c.Object.UID < best.Object.UID)
		if !closer {
			continue
		}
		best = c
		minDist = dist
		found = true
	}
	return best, found
}
