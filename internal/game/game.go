package game

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"proximity/internal/audio"
	"proximity/internal/camera"
	"proximity/internal/components"
	"proximity/internal/config"
	"proximity/internal/engine"
	"proximity/internal/interaction"
	"proximity/internal/scripts"
	"proximity/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config config.Config
	World  *world.World
	Camera *camera.FollowCamera
	Audio  *audio.Manager

	Player        *engine.GameObject
	InteractPoint *engine.GameObject
	Mover         *components.PlayerMover
	Scanner       *interaction.Scanner
	Inventory     *scripts.Inventory
	Prompt        *components.UIText

	DebugMode bool

	interactKey int32
	debugKey    int32

	watcher    *config.Watcher
	configPath string

	// Last notable event, shown under the help text
	status string
}

func New(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Validate has already checked both keys
	interactKey, _ := config.ParseKey(cfg.Keys.Interact)
	debugKey, _ := config.ParseKey(cfg.Keys.Debug)

	return &Game{
		Config:      cfg,
		World:       world.New(),
		Audio:       audio.NewManager(nil),
		interactKey: interactKey,
		debugKey:    debugKey,
	}, nil
}

// Setup loads the scene at scenePath (if any), adds the player and starts
// every object. Nothing here needs a window.
func (g *Game) Setup(scenePath string) error {
	if scenePath != "" {
		if err := g.World.LoadScene(scenePath); err != nil {
			return err
		}
	}

	g.createPrompt()
	g.createPlayer()

	if err := g.World.Start(); err != nil {
		return fmt.Errorf("start scene: %w", err)
	}

	g.Camera = camera.New(g.Player.Transform.Position)
	log.Printf("Game: %d objects, %d collidable", len(g.World.Scene.GameObjects), g.World.PhysicsWorld.ObjectCount())
	return nil
}

func (g *Game) createPrompt() {
	prompt := engine.NewGameObject("InteractPrompt")
	text := components.NewUIText()
	text.FontSize = 24
	text.Color = rl.Gold
	text.Alignment = components.TextAlignCenter
	text.Enabled = false
	prompt.AddComponent(text)

	g.Prompt = text
	g.World.SpawnObject(prompt)
}

func (g *Game) createPlayer() {
	g.Player = engine.NewGameObject("Player")
	g.Player.Tags = []string{"player"}
	g.Player.Transform.Position = rl.Vector3{X: 0, Y: 0.9, Z: 4}

	g.Player.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.SkyBlue, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}))

	g.Mover = components.NewPlayerMover()
	g.Player.AddComponent(g.Mover)

	g.Inventory = scripts.NewInventory()
	g.Inventory.OnChanged.AddListener(func(item string) {
		g.status = fmt.Sprintf("%s: %d", item, g.Inventory.Count(item))
	})
	g.Player.AddComponent(g.Inventory)

	// Scan center sits in front of the player's chest
	g.InteractPoint = engine.NewGameObject("InteractPoint")
	g.InteractPoint.Transform.Position = g.Config.Scanner.Offset()
	g.Player.AddChild(g.InteractPoint)

	g.Scanner = interaction.NewScanner(g.Config.Scanner.Radius)
	g.Scanner.SetInterval(g.Config.Scanner.Interval)
	g.Scanner.ShowRadius = g.Config.Scanner.ShowRadius
	g.Scanner.SetAnchor(g.InteractPoint)
	g.Scanner.PromptText = g.Prompt
	g.Scanner.OnTargetChanged.AddListener(func(target interaction.Interactable) {
		if target == nil {
			log.Println("Game: no interaction target")
			return
		}
		obj := target.GetGameObject()
		log.Printf("Game: target %q (%s)", obj.Name, target.InteractPrompt())
		g.Audio.PlayAt(audio.CueFocus, obj.WorldPosition())
	})
	g.Player.AddComponent(g.Scanner)

	g.World.SpawnObject(g.Player)
	g.World.SpawnObject(g.InteractPoint)
}

// Watch reloads scanner settings whenever the config file at path changes.
func (g *Game) Watch(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	g.watcher = w
	g.configPath = path
	log.Printf("Game: watching %s", path)
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// ReloadConfig re-reads path and applies its scanner settings. A bad file
// leaves the current settings in place.
func (g *Game) ReloadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	g.ApplyScannerConfig(cfg.Scanner)
	g.Config.Scanner = cfg.Scanner
	return nil
}

func (g *Game) ApplyScannerConfig(sc config.ScannerConfig) {
	g.Scanner.Radius = sc.Radius
	g.Scanner.ShowRadius = sc.ShowRadius
	g.Scanner.SetInterval(sc.Interval)
	g.InteractPoint.Transform.Position = sc.Offset()
	g.status = fmt.Sprintf("config: radius %.2f, interval %v", sc.Radius, sc.Interval)
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.ReloadConfig(g.configPath); err != nil {
			log.Printf("Game: config reload failed: %v", err)
			g.status = "config reload failed"
			return
		}
		log.Printf("Game: reloaded %s", g.configPath)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Game: config watch error: %v", err)
		}
	default:
	}
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.FPS)
	initDebugUI()

	if out, err := audio.OpenSpeaker(); err != nil {
		log.Printf("Game: audio disabled: %v", err)
	} else {
		g.Audio = audio.NewManager(out)
		defer out.Close()
	}

	for !rl.WindowShouldClose() {
		g.handleInput()
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) handleInput() {
	if rl.IsKeyPressed(g.debugKey) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(g.interactKey) {
		g.Interact()
	}
}

// Interact forwards to the current target, if any.
func (g *Game) Interact() {
	target := g.Scanner.Target()
	if target == nil {
		g.Audio.Play(audio.CueDenied)
		return
	}
	g.Audio.PlayAt(audio.CueInteract, target.GetGameObject().WorldPosition())
	g.Scanner.Interact()
	if sign, ok := target.(*scripts.Sign); ok {
		g.status = sign.Message
	}
}

func (g *Game) Update(deltaTime float32) {
	g.pollConfig()
	g.World.Update(deltaTime)
	g.Camera.Update(g.Player.Transform.Position, deltaTime)
	g.Audio.SetListener(g.Camera.Position, rl.Vector3Subtract(g.Camera.Target, g.Camera.Position), rl.Vector3{Y: 1})
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	g.World.Draw()
	g.drawTargetHighlight()
	g.Scanner.DrawGizmos()
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawTargetHighlight() {
	target := g.Scanner.Target()
	if target == nil {
		return
	}
	obj := target.GetGameObject()
	if obj == nil {
		return
	}
	pos := obj.WorldPosition()
	pos.Y += 1.5
	rl.DrawCube(pos, 0.2, 0.2, 0.2, rl.Gold)
}

func (g *Game) DrawUI() {
	keys := g.Config.Keys
	rl.DrawText("WASD to move", 10, 10, 20, rl.LightGray)
	rl.DrawText(fmt.Sprintf("%s to interact, %s to toggle debug view", keys.Interact, keys.Debug), 10, 35, 20, rl.LightGray)
	if g.status != "" {
		rl.DrawText(g.status, 10, 60, 20, rl.Lime)
	}
	if inv := g.InventoryLine(); inv != "" {
		rl.DrawText(inv, 10, 85, 20, rl.White)
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	promptRect := rl.Rectangle{X: 0, Y: screenH - 80, Width: screenW, Height: 40}
	for _, text := range g.World.PromptTexts() {
		text.Draw(promptRect)
	}

	if g.DebugMode {
		g.drawDebugPanel()
	}
}

// radiusSliderMax is the debug slider's upper bound. raygui clamps to it, so
// it must never sit below the configured or current radius.
func (g *Game) radiusSliderMax() float32 {
	return max(5, g.Config.Scanner.Radius, g.Scanner.Radius)
}

// InventoryLine lists collected items in name order.
func (g *Game) InventoryLine() string {
	if g.Inventory == nil || len(g.Inventory.Items) == 0 {
		return ""
	}
	names := make([]string, 0, len(g.Inventory.Items))
	for name := range g.Inventory.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s x%d", name, g.Inventory.Items[name])
	}
	return "Inventory: " + strings.Join(parts, ", ")
}
