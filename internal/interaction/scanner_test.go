package interaction

import (
	"errors"
	"testing"
	"time"

	"proximity/internal/components"
	"proximity/internal/engine"
	"proximity/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type mockInteractable struct {
	engine.BaseComponent
	prompt  string
	calls   int
	invoker *Scanner
}

func (m *mockInteractable) InteractPrompt() string { return m.prompt }

func (m *mockInteractable) Interact(invoker *Scanner) {
	m.calls++
	m.invoker = invoker
}

type promptRecorder struct {
	enabled bool
	text    string
	writes  int
}

func (p *promptRecorder) SetEnabled(enabled bool) { p.enabled = enabled }

func (p *promptRecorder) SetText(text string) {
	p.text = text
	p.writes++
}

type fixture struct {
	scene   *engine.Scene
	owner   *engine.GameObject
	anchor  *engine.GameObject
	scanner *Scanner
	prompt  *promptRecorder
	hits    []*engine.GameObject
}

// newFixture builds a started scanner at the origin whose query returns
// f.hits verbatim.
func newFixture(t *testing.T, radius float32) *fixture {
	t.Helper()
	f := &fixture{
		scene:  engine.NewScene("Test"),
		owner:  engine.NewGameObject("Player"),
		anchor: engine.NewGameObject("InteractPoint"),
		prompt: &promptRecorder{},
	}
	f.scene.AddGameObject(f.owner)
	f.scene.AddGameObject(f.anchor)

	f.scanner = NewScanner(radius)
	f.scanner.SetAnchor(f.anchor)
	f.scanner.PromptText = f.prompt
	f.scanner.Query = func(center rl.Vector3, r float32) []*engine.GameObject {
		return f.hits
	}
	f.owner.AddComponent(f.scanner)

	if err := f.owner.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return f
}

func (f *fixture) addInteractable(name, prompt string, pos rl.Vector3) (*engine.GameObject, *mockInteractable) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	in := &mockInteractable{prompt: prompt}
	g.AddComponent(in)
	f.scene.AddGameObject(g)
	f.hits = append(f.hits, g)
	return g, in
}

func TestTickNoCandidates(t *testing.T) {
	f := newFixture(t, 5)

	f.scanner.Tick()

	if f.scanner.HasTarget() {
		t.Error("Expected no target with an empty query result")
	}
	if f.prompt.enabled || f.prompt.text != "" {
		t.Errorf("Expected disabled empty prompt, got enabled=%v text=%q", f.prompt.enabled, f.prompt.text)
	}
}

func TestTickSingleCandidate(t *testing.T) {
	f := newFixture(t, 5)
	_, lever := f.addInteractable("Lever", "Pull lever", rl.Vector3{X: 4.9})

	f.scanner.Tick()

	if f.scanner.Target() != lever {
		t.Fatal("Expected the only candidate to become the target")
	}
	if !f.prompt.enabled || f.prompt.text != "Pull lever" {
		t.Errorf("Expected enabled prompt 'Pull lever', got enabled=%v text=%q", f.prompt.enabled, f.prompt.text)
	}
}

func TestTickSelectsClosest(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("At3", "three", rl.Vector3{X: 3})
	f.addInteractable("At4.5", "four and a half", rl.Vector3{Z: 4.5})
	_, closest := f.addInteractable("At1.2", "one point two", rl.Vector3{Y: -1.2})

	f.scanner.Tick()

	if f.scanner.Target() != closest {
		t.Errorf("Expected candidate at distance 1.2, got %v", f.scanner.Target())
	}
	if f.prompt.text != "one point two" {
		t.Errorf("Expected prompt 'one point two', got %q", f.prompt.text)
	}
}

func TestTickSkipsHitsWithoutCapability(t *testing.T) {
	f := newFixture(t, 5)
	rock := engine.NewGameObject("Rock")
	rock.Transform.Position = rl.Vector3{X: 1}
	rock.AddComponent(components.NewSphereCollider(0.5))
	f.hits = append(f.hits, rock)

	f.scanner.Tick()

	if f.scanner.HasTarget() {
		t.Error("Hit without the Interactable capability must not become the target")
	}
	if f.prompt.enabled {
		t.Error("Prompt should be disabled")
	}
}

func TestTickIdempotent(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("Far", "far", rl.Vector3{X: 4})
	_, near := f.addInteractable("Near", "near", rl.Vector3{X: 2})

	changes := 0
	f.scanner.OnTargetChanged.AddListener(func(Interactable) { changes++ })

	f.scanner.Tick()
	first := f.scanner.Target()
	f.scanner.Tick()

	if first != near || f.scanner.Target() != near {
		t.Error("Expected the same target on consecutive scans of an unchanged scene")
	}
	if changes != 1 {
		t.Errorf("Expected one target change, got %d", changes)
	}
}

func TestTickClearsTargetWhenOutOfRange(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("Sign", "Read sign", rl.Vector3{X: 1})

	var last Interactable = &mockInteractable{}
	f.scanner.OnTargetChanged.AddListener(func(in Interactable) { last = in })

	f.scanner.Tick()
	f.hits = nil
	f.scanner.Tick()

	if f.scanner.HasTarget() {
		t.Error("Target should clear when nothing is in range")
	}
	if last != nil {
		t.Error("OnTargetChanged should report nil when the target clears")
	}
	if f.prompt.enabled || f.prompt.text != "" {
		t.Error("Prompt should be disabled and empty")
	}
}

func TestTickEqualDistanceLowerUIDWins(t *testing.T) {
	f := newFixture(t, 5)
	first, firstIn := f.addInteractable("First", "first", rl.Vector3{X: 2})
	second, _ := f.addInteractable("Second", "second", rl.Vector3{X: -2})

	f.hits = []*engine.GameObject{second, first}
	f.scanner.Tick()
	if f.scanner.Target() != firstIn {
		t.Errorf("Expected lower UID %d to win the tie", first.UID)
	}

	f.hits = []*engine.GameObject{first, second}
	f.scanner.Tick()
	if f.scanner.Target() != firstIn {
		t.Error("Tie-break should not depend on query order")
	}
}

func TestTickWithPhysicsQueryOutsideRadius(t *testing.T) {
	f := newFixture(t, 5)
	world := physics.NewPhysicsWorld()
	f.scanner.Query = world.OverlapSphere

	for _, x := range []float32{10, 8} {
		g := engine.NewGameObject("Distant")
		g.Transform.Position = rl.Vector3{X: x}
		g.AddComponent(components.NewSphereCollider(0.1))
		g.AddComponent(&mockInteractable{prompt: "distant"})
		world.AddObject(g)
	}

	f.scanner.Tick()

	if f.scanner.HasTarget() {
		t.Error("Candidates outside the radius should not be returned by the query")
	}
	if f.prompt.enabled {
		t.Error("Prompt should be disabled")
	}
}

func TestTickUsesSceneWorldByDefault(t *testing.T) {
	f := newFixture(t, 5)
	f.scanner.Query = nil
	world := physics.NewPhysicsWorld()
	f.scene.World = &stubWorld{PhysicsWorld: world}

	g := engine.NewGameObject("Door")
	g.Transform.Position = rl.Vector3{X: 2}
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 0.2}))
	door := &mockInteractable{prompt: "Open door"}
	g.AddComponent(door)
	world.AddObject(g)

	f.scanner.Tick()

	if f.scanner.Target() != door {
		t.Error("Expected scan through the scene's world to find the door")
	}
}

type stubWorld struct {
	*physics.PhysicsWorld
}

func (w *stubWorld) SpawnObject(g *engine.GameObject) {}
func (w *stubWorld) Destroy(g *engine.GameObject)     {}

func TestTickMeasuresFromAnchor(t *testing.T) {
	f := newFixture(t, 5)
	f.anchor.Transform.Position = rl.Vector3{X: 4}
	f.addInteractable("NearOwner", "owner", rl.Vector3{X: -1})
	_, nearAnchor := f.addInteractable("NearAnchor", "anchor", rl.Vector3{X: 4.5})

	f.scanner.Tick()

	if f.scanner.Target() != nearAnchor {
		t.Error("Distance should be measured from the anchor")
	}
}

func TestInteractForwardsToTarget(t *testing.T) {
	f := newFixture(t, 5)
	_, chest := f.addInteractable("Chest", "Open chest", rl.Vector3{X: 1})

	f.scanner.Tick()
	f.scanner.Interact()

	if chest.calls != 1 {
		t.Errorf("Expected one interaction, got %d", chest.calls)
	}
	if chest.invoker != f.scanner {
		t.Error("Interaction should receive the scanner as invoker")
	}
}

func TestInteractWithoutTarget(t *testing.T) {
	f := newFixture(t, 5)
	_, idle := f.addInteractable("Idle", "idle", rl.Vector3{X: 1})

	// No scan yet, so no target
	f.scanner.Interact()

	if idle.calls != 0 {
		t.Error("Interact without a target should not invoke anything")
	}
}

func TestInteractStaleTarget(t *testing.T) {
	f := newFixture(t, 5)
	g, pickup := f.addInteractable("Coin", "Pick up coin", rl.Vector3{X: 1})

	f.scanner.Tick()
	f.scene.Destroy(g)
	f.scanner.Interact()

	if pickup.calls != 0 {
		t.Error("Interact on a destroyed target should be a no-op")
	}
	if f.scanner.HasTarget() {
		t.Error("Destroyed target should read as no target")
	}
}

func TestValidateAnchorUnset(t *testing.T) {
	owner := engine.NewGameObject("Player")
	owner.AddComponent(NewScanner(5))

	err := owner.Start()

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
	if !errors.Is(err, ErrAnchorUnset) {
		t.Errorf("Expected ErrAnchorUnset, got %v", err)
	}
	if cfgErr.Object != "Player" {
		t.Errorf("Expected object 'Player', got %q", cfgErr.Object)
	}
}

func TestValidateRadius(t *testing.T) {
	anchor := engine.NewGameObject("Anchor")
	s := NewScanner(0)
	s.SetAnchor(anchor)

	if err := s.Validate(); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Expected ErrInvalidRadius, got %v", err)
	}

	s.Radius = 2
	s.Interval = -time.Second
	if err := s.Validate(); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}
}

func TestAnchorResolvedFromRef(t *testing.T) {
	scene := engine.NewScene("Test")
	owner := engine.NewGameObject("Player")
	anchor := engine.NewGameObject("Hand")
	scene.AddGameObject(owner)
	scene.AddGameObject(anchor)

	s := NewScanner(3)
	s.Anchor = engine.GameObjectRef{UID: anchor.UID}
	owner.AddComponent(s)

	if err := owner.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, ok := s.AnchorPosition(); !ok {
		t.Error("Anchor should resolve from GameObjectRef")
	}
}

func TestPromptResolvedFromRef(t *testing.T) {
	scene := engine.NewScene("Test")
	owner := engine.NewGameObject("Player")
	anchor := engine.NewGameObject("Hand")
	hud := engine.NewGameObject("Prompt")
	text := components.NewUIText()
	text.SetText("stale")
	hud.AddComponent(text)
	for _, g := range []*engine.GameObject{owner, anchor, hud} {
		scene.AddGameObject(g)
	}

	s := NewScanner(3)
	s.SetAnchor(anchor)
	s.PromptRef = engine.GameObjectRef{UID: hud.UID}
	s.Query = func(rl.Vector3, float32) []*engine.GameObject { return nil }
	owner.AddComponent(s)

	if err := owner.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.PromptText != text {
		t.Fatal("PromptText should resolve to the referenced UIText")
	}
	if text.Enabled || text.Text != "" {
		t.Error("Prompt should start disabled and empty")
	}
}

func TestUpdateScansOnInterval(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("Sign", "Read sign", rl.Vector3{X: 1})

	f.owner.Update(0.06)
	if f.scanner.Scans() != 0 || f.scanner.HasTarget() {
		t.Fatal("No scan should run before the first interval elapses")
	}

	f.owner.Update(0.06)
	if f.scanner.Scans() != 1 {
		t.Fatalf("Expected 1 scan after 120ms, got %d", f.scanner.Scans())
	}
	if !f.scanner.HasTarget() {
		t.Error("Scan should have found the sign")
	}

	// A long frame fires once, not in a burst
	f.owner.Update(0.5)
	if f.scanner.Scans() != 2 {
		t.Errorf("Expected 2 scans after a long frame, got %d", f.scanner.Scans())
	}
}

func TestDestroyStopsScanning(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("Sign", "Read sign", rl.Vector3{X: 1})
	f.scanner.Tick()
	if !f.prompt.enabled {
		t.Fatal("Prompt should show while the sign is targeted")
	}

	f.scene.Destroy(f.owner)

	if f.scanner.Running() {
		t.Error("Scanner should stop when its object is destroyed")
	}
	if f.scanner.HasTarget() {
		t.Error("Destroyed scanner should drop its target")
	}
	if f.prompt.enabled || f.prompt.text != "" {
		t.Errorf("Prompt should be hidden after destroy, got enabled=%v text=%q", f.prompt.enabled, f.prompt.text)
	}

	scans := f.scanner.Scans()
	f.scanner.Update(1)
	if f.scanner.Scans() != scans {
		t.Error("No scans should run after destroy")
	}
}

func TestDestroyedAnchorClearsTarget(t *testing.T) {
	f := newFixture(t, 5)
	f.addInteractable("Sign", "Read sign", rl.Vector3{X: 1})
	f.scanner.Tick()

	f.scene.Destroy(f.anchor)
	f.scanner.Tick()

	if f.scanner.HasTarget() {
		t.Error("Scan with a destroyed anchor should clear the target")
	}
}

func TestScannerScriptRegistration(t *testing.T) {
	c := engine.CreateScript("InteractionScanner", map[string]any{
		"radius":      float64(2.5),
		"interval_ms": float64(250),
		"show_radius": true,
		"anchor":      float64(7),
		"prompt":      float64(9),
	})
	s, ok := c.(*Scanner)
	if !ok {
		t.Fatalf("Expected *Scanner, got %T", c)
	}
	if s.Radius != 2.5 || s.Interval != 250*time.Millisecond || !s.ShowRadius {
		t.Errorf("Props not applied: radius=%v interval=%v show=%v", s.Radius, s.Interval, s.ShowRadius)
	}
	if s.Anchor.UID != 7 || s.PromptRef.UID != 9 {
		t.Errorf("Refs not applied: anchor=%d prompt=%d", s.Anchor.UID, s.PromptRef.UID)
	}

	name, props, ok := engine.SerializeScript(s)
	if !ok || name != "InteractionScanner" {
		t.Fatalf("Expected InteractionScanner serializer, got %q (%v)", name, ok)
	}
	if props["interval_ms"] != float64(250) {
		t.Errorf("Expected interval_ms 250, got %v", props["interval_ms"])
	}
	if engine.GetScriptFieldType(s, "anchor") != "GameObjectRef" {
		t.Error("anchor should be registered as a GameObjectRef")
	}
}
