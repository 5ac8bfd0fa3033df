package interaction

import (
	"testing"

	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func candidateAt(name string, pos rl.Vector3) Candidate {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	in := &mockInteractable{prompt: name}
	g.AddComponent(in)
	return Candidate{Object: g, Interactable: in}
}

func TestSelectClosestEmpty(t *testing.T) {
	if _, ok := SelectClosest(rl.Vector3{}, nil); ok {
		t.Error("Expected no selection from empty candidates")
	}
}

func TestSelectClosestDistinct(t *testing.T) {
	candidates := []Candidate{
		candidateAt("a", rl.Vector3{X: 3}),
		candidateAt("b", rl.Vector3{X: 4.5}),
		candidateAt("c", rl.Vector3{X: 1.2}),
	}

	best, ok := SelectClosest(rl.Vector3{}, candidates)
	if !ok || best.Object.Name != "c" {
		t.Errorf("Expected 'c', got %+v", best.Object)
	}
}

func TestSelectClosestFarCandidateStillSelected(t *testing.T) {
	// Selection does not apply the radius; the query already did.
	best, ok := SelectClosest(rl.Vector3{}, []Candidate{candidateAt("far", rl.Vector3{Z: 1000})})
	if !ok || best.Object.Name != "far" {
		t.Error("A single candidate is selected regardless of distance")
	}
}

func TestSelectClosestTieBreak(t *testing.T) {
	low := candidateAt("low", rl.Vector3{X: 2})
	high := candidateAt("high", rl.Vector3{Z: 2})

	for _, order := range [][]Candidate{{low, high}, {high, low}} {
		best, _ := SelectClosest(rl.Vector3{}, order)
		if best.Object != low.Object {
			t.Errorf("Expected lower UID to win regardless of order, got %s", best.Object.Name)
		}
	}
}

func TestSelectClosestStrictlyLessKeepsNearer(t *testing.T) {
	near := candidateAt("near", rl.Vector3{X: 1})
	// Higher UID but farther: must not replace near
	far := candidateAt("far", rl.Vector3{X: 1.0001})

	best, _ := SelectClosest(rl.Vector3{}, []Candidate{far, near})
	if best.Object != near.Object {
		t.Error("Expected the strictly nearer candidate")
	}
}
