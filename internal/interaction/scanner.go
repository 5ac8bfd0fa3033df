package interaction

import (
	"log"
	"time"

	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultInterval is the scan cadence.
const DefaultInterval = 100 * time.Millisecond

// Scanner polls for the closest Interactable around its anchor.
//
// State is owned by the scanner's GameObject and must only be touched from
// the frame loop: Update drives the scans, player input calls Interact.
type Scanner struct {
	engine.BaseComponent

	// Anchor is the object whose world position is the scan center.
	Anchor engine.GameObjectRef
	// Radius of the range query, in world units.
	Radius float32
	// Interval between scans. Zero means DefaultInterval.
	Interval time.Duration
	// ShowRadius draws the scan sphere in editor builds.
	ShowRadius bool
	// PromptRef points at an object carrying a PromptDisplay, resolved at
	// Start when PromptText is nil.
	PromptRef engine.GameObjectRef

	// PromptText receives the current target's prompt.
	PromptText PromptDisplay
	// Query is the spatial range query. Nil means the scene's world.
	Query OverlapFunc

	// OnTargetChanged fires when a scan replaces the target with a
	// different one, including nil.
	OnTargetChanged engine.EventWithArg[Interactable]

	anchor *engine.GameObject
	target Interactable
	ticker *Ticker
	scans  int
}

func NewScanner(radius float32) *Scanner {
	return &Scanner{
		Radius:   radius,
		Interval: DefaultInterval,
	}
}

// SetAnchor assigns the anchor object directly.
func (s *Scanner) SetAnchor(g *engine.GameObject) {
	s.anchor = g
	s.Anchor.Set(g)
}

// Validate rejects configurations that would make Tick fault.
func (s *Scanner) Validate() error {
	name := ""
	if g := s.GetGameObject(); g != nil {
		name = g.Name
	}
	if s.resolveAnchor() == nil {
		return &ConfigurationError{Object: name, Err: ErrAnchorUnset}
	}
	if s.Radius <= 0 {
		return &ConfigurationError{Object: name, Err: ErrInvalidRadius}
	}
	if s.Interval < 0 {
		return &ConfigurationError{Object: name, Err: ErrInvalidInterval}
	}
	return nil
}

func (s *Scanner) Start() {
	s.resolveAnchor()
	if s.PromptText == nil {
		s.resolvePrompt()
	}
	if s.Interval == 0 {
		s.Interval = DefaultInterval
	}
	s.ticker = NewTicker(s.Interval, s.Tick)
	s.ticker.Start()
	s.applyPrompt()
}

func (s *Scanner) Update(deltaTime float32) {
	if s.ticker == nil {
		return
	}
	s.ticker.Advance(FrameDuration(deltaTime))
}

// OnDestroy stops the recurring scan, drops the target and hides the
// prompt, which usually lives on another object.
func (s *Scanner) OnDestroy() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.target = nil
	s.applyPrompt()
}

// Stop halts scanning without destroying the owning object.
func (s *Scanner) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

// Running reports whether the recurring scan is active.
func (s *Scanner) Running() bool {
	return s.ticker != nil && s.ticker.Running()
}

// SetInterval changes the cadence, taking effect from the next frame.
func (s *Scanner) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.Interval = interval
	if s.ticker != nil {
		s.ticker.SetInterval(interval)
	}
}

// Tick runs one scan and refreshes the prompt.
func (s *Scanner) Tick() {
	s.scans++
	anchor := s.resolveAnchor()
	if anchor == nil || anchor.Destroyed() {
		s.setTarget(nil)
		s.applyPrompt()
		return
	}

	center := anchor.WorldPosition()
	candidates := resolveCandidates(s.query(center))

	var next Interactable
	if best, ok := SelectClosest(center, candidates); ok {
		next = best.Interactable
	}
	s.setTarget(next)
	s.applyPrompt()
}

// Interact forwards to the current target with s as invoker. It does nothing
// when there is no target or the target's object has been destroyed since
// the last scan.
func (s *Scanner) Interact() {
	target := s.Target()
	if target == nil {
		return
	}
	target.Interact(s)
}

// Target returns the current target, or nil. A target whose object was
// destroyed after the last scan reads as nil.
func (s *Scanner) Target() Interactable {
	if s.target == nil {
		return nil
	}
	if s.target.GetGameObject().Destroyed() {
		return nil
	}
	return s.target
}

func (s *Scanner) HasTarget() bool {
	return s.Target() != nil
}

// Scans returns how many scans have run.
func (s *Scanner) Scans() int {
	return s.scans
}

// AnchorPosition returns the scan center, or false if there is no anchor.
func (s *Scanner) AnchorPosition() (rl.Vector3, bool) {
	anchor := s.resolveAnchor()
	if anchor == nil || anchor.Destroyed() {
		return rl.Vector3{}, false
	}
	return anchor.WorldPosition(), true
}

func (s *Scanner) setTarget(next Interactable) {
	if next == s.target {
		return
	}
	s.target = next
	s.OnTargetChanged.Invoke(next)
}

func (s *Scanner) applyPrompt() {
	if s.PromptText == nil {
		return
	}
	if target := s.Target(); target != nil {
		s.PromptText.SetEnabled(true)
		s.PromptText.SetText(target.InteractPrompt())
		return
	}
	s.PromptText.SetEnabled(false)
	s.PromptText.SetText("")
}

func (s *Scanner) query(center rl.Vector3) []*engine.GameObject {
	if s.Query != nil {
		return s.Query(center, s.Radius)
	}
	g := s.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return nil
	}
	return g.Scene.World.OverlapSphere(center, s.Radius)
}

func (s *Scanner) resolveAnchor() *engine.GameObject {
	if s.anchor != nil {
		return s.anchor
	}
	if g := s.GetGameObject(); g != nil {
		s.anchor = s.Anchor.Get(g.Scene)
	}
	return s.anchor
}

func (s *Scanner) resolvePrompt() {
	g := s.GetGameObject()
	if g == nil || !s.PromptRef.IsValid() {
		return
	}
	obj := s.PromptRef.Get(g.Scene)
	if obj == nil {
		log.Printf("Scanner: prompt reference %d on %q is broken", s.PromptRef.UID, g.Name)
		return
	}
	if display, ok := engine.TryGetComponent[PromptDisplay](obj); ok {
		s.PromptText = display
		return
	}
	log.Printf("Scanner: %q has no prompt display component", obj.Name)
}
