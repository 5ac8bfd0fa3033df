package interaction

import (
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactable is the capability a scene object exposes to be picked up by a
// Scanner. Implementations are ordinary components.
type Interactable interface {
	engine.Component
	// InteractPrompt is the short text shown while this is the current target.
	InteractPrompt() string
	// Interact runs the gameplay effect. invoker is the scanner that forwarded
	// the player's input.
	Interact(invoker *Scanner)
}

// PromptDisplay is the text sink the scanner writes into.
// components.UIText implements it.
type PromptDisplay interface {
	SetEnabled(enabled bool)
	SetText(text string)
}

// OverlapFunc is the spatial range query the scanner depends on.
type OverlapFunc func(center rl.Vector3, radius float32) []*engine.GameObject

// Candidate is a hit that resolved the Interactable capability.
type Candidate struct {
	Object       *engine.GameObject
	Interactable Interactable
}

// resolveCandidates keeps hits exposing the Interactable capability, in hit
// order. Misses are not errors.
func resolveCandidates(hits []*engine.GameObject) []Candidate {
	candidates := make([]Candidate, 0, len(hits))
	for _, hit := range hits {
		in, ok := engine.TryGetComponent[Interactable](hit)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Object: hit, Interactable: in})
	}
	return candidates
}
