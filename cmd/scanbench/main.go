// Benchmarks scanner ticks against scenes of increasing size, comparing the
// spatial grid with a brute-force overlap.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"proximity/internal/components"
	"proximity/internal/engine"
	"proximity/internal/interaction"
	"proximity/internal/physics"
	"proximity/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	iterations := flag.Int("n", 1000, "scans per scene size")
	radius := flag.Float64("radius", 2, "scan radius")
	flag.Parse()

	testCounts := []int{100, 500, 1000, 5000, 10000, 20000}
	for _, count := range testCounts {
		benchScan(count, *iterations, float32(*radius))
	}
}

func benchScan(count, iterations int, radius float32) {
	pw, objects, anchors := buildScene(rand.New(rand.NewSource(42)), count, iterations)

	gridTime, gridTargets := run(pw.OverlapSphere, anchors, radius)
	bruteTime, bruteTargets := run(bruteForce(objects), anchors, radius)

	mismatch := ""
	if n := countMismatches(gridTargets, bruteTargets); n > 0 {
		mismatch = fmt.Sprintf(" MISMATCH (%d scans)", n)
	}
	fmt.Printf("%6d objects: grid %9v | brute %9v | %.1fx | %d targets found%s\n",
		count, gridTime.Round(time.Nanosecond), bruteTime.Round(time.Nanosecond),
		float64(bruteTime)/float64(gridTime), countFound(gridTargets), mismatch)
}

// buildScene scatters count colliders, half of them interactable, and picks
// scans random anchor positions over the same area.
func buildScene(rng *rand.Rand, count, scans int) (*physics.PhysicsWorld, []*engine.GameObject, []rl.Vector3) {
	// Spawn area grows with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/50.0

	pw := physics.NewPhysicsWorld()
	objects := make([]*engine.GameObject, 0, count)
	for i := range count {
		g := engine.NewGameObject(fmt.Sprintf("Sign_%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		g.AddComponent(components.NewSphereCollider(0.3 + rng.Float32()*0.4))
		// Every other object is scenery the scanner must filter out
		if i%2 == 0 {
			g.AddComponent(&scripts.Sign{Title: g.Name})
		}
		pw.AddObject(g)
		objects = append(objects, g)
	}

	anchors := make([]rl.Vector3, scans)
	for i := range anchors {
		anchors[i] = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
	}

	return pw, objects, anchors
}

// run scans once from each anchor and returns the mean scan time and the UID
// of the target each scan picked, 0 for none.
func run(query interaction.OverlapFunc, anchors []rl.Vector3, radius float32) (time.Duration, []uint64) {
	anchor := engine.NewGameObject("Anchor")
	scanner := interaction.NewScanner(radius)
	scanner.SetAnchor(anchor)
	scanner.Query = query

	// Warm up the grid
	query(rl.Vector3{}, radius)

	targets := make([]uint64, len(anchors))
	start := time.Now()
	for i, pos := range anchors {
		anchor.Transform.Position = pos
		scanner.Tick()
		if target := scanner.Target(); target != nil {
			targets[i] = target.GetGameObject().UID
		}
	}
	return time.Since(start) / time.Duration(len(anchors)), targets
}

// countMismatches reports how many scans picked different targets.
func countMismatches(a, b []uint64) int {
	n := 0
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			n++
		}
	}
	return n + max(len(b)-len(a), 0)
}

func countFound(targets []uint64) int {
	n := 0
	for _, uid := range targets {
		if uid != 0 {
			n++
		}
	}
	return n
}

func bruteForce(objects []*engine.GameObject) interaction.OverlapFunc {
	return func(center rl.Vector3, radius float32) []*engine.GameObject {
		var result []*engine.GameObject
		for _, g := range objects {
			col := engine.GetComponent[*components.SphereCollider](g)
			reach := radius + col.GetWorldRadius()
			if rl.Vector3DistanceSqr(center, col.GetCenter()) <= reach*reach {
				result = append(result, g)
			}
		}
		return result
	}
}
