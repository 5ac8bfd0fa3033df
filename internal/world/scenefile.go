package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"proximity/internal/components"
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64            `json:"uid,omitempty"`
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Parent     uint64            `json:"parent,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type uiTextDef struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	FontSize  int32  `json:"fontSize,omitempty"`
	Color     string `json:"color,omitempty"`
	Alignment int    `json:"alignment,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
		return rl.NewColor(r, g, b, a)
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene adds the objects in the scene file at path to the world. Objects
// keep their saved UIDs so GameObjectRef props stay valid.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	loaded := make(map[uint64]*engine.GameObject, len(sf.Objects))
	parents := make(map[*engine.GameObject]uint64)
	var objs []*engine.GameObject

	for _, objDef := range sf.Objects {
		var g *engine.GameObject
		if objDef.UID != 0 {
			if _, dup := loaded[objDef.UID]; dup {
				return fmt.Errorf("parse scene: duplicate uid %d (%q)", objDef.UID, objDef.Name)
			}
			g = engine.NewGameObjectWithUID(objDef.Name, objDef.UID)
		} else {
			g = engine.NewGameObject(objDef.Name)
		}
		g.Tags = objDef.Tags
		g.Transform.Position = vec(objDef.Position)
		g.Transform.Rotation = vec(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				return fmt.Errorf("parse scene: object %q: %w", objDef.Name, err)
			}
		}

		loaded[g.UID] = g
		if objDef.Parent != 0 {
			parents[g] = objDef.Parent
		}
		objs = append(objs, g)
	}

	for _, child := range objs {
		parentUID, ok := parents[child]
		if !ok {
			continue
		}
		parent, ok := loaded[parentUID]
		if !ok {
			return fmt.Errorf("parse scene: %q has unknown parent %d", child.Name, parentUID)
		}
		// WorldPosition recurses up the chain, so a cycle never terminates
		for p := parent; p != nil; p = p.Parent {
			if p == child {
				return fmt.Errorf("parse scene: %q has a parent cycle", child.Name)
			}
		}
		parent.AddChild(child)
	}

	for _, g := range objs {
		w.SpawnObject(g)
	}
	w.checkRefs(objs)
	return nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		mesh, ok := components.ParseMeshType(def.Mesh)
		if !ok {
			return fmt.Errorf("unknown mesh %q", def.Mesh)
		}
		g.AddComponent(components.NewMeshRenderer(mesh, lookupColor(def.Color), vec(def.Size)))
	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewBoxCollider(vec(def.Size))
		col.Offset = vec(def.Offset)
		g.AddComponent(col)
	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewSphereCollider(def.Radius)
		col.Offset = vec(def.Offset)
		g.AddComponent(col)
	case "UIText":
		var def uiTextDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		text := components.NewUIText()
		text.Text = def.Text
		if def.FontSize > 0 {
			text.FontSize = def.FontSize
		}
		if def.Color != "" {
			text.Color = lookupColor(def.Color)
		}
		text.Alignment = components.TextAlignment(def.Alignment)
		if def.Enabled != nil {
			text.Enabled = *def.Enabled
		}
		g.AddComponent(text)
	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		comp := engine.CreateScript(def.Name, def.Props)
		if comp == nil {
			return fmt.Errorf("unknown script %q", def.Name)
		}
		g.AddComponent(comp)
	default:
		log.Printf("Scene: skipping unknown component type %q on %q", header.Type, g.Name)
	}
	return nil
}

// checkRefs logs GameObjectRef props that point at nothing.
func (w *World) checkRefs(objs []*engine.GameObject) {
	for _, g := range objs {
		for _, c := range g.Components() {
			_, props, ok := engine.SerializeScript(c)
			if !ok {
				continue
			}
			for prop, value := range props {
				if engine.GetScriptFieldType(c, prop) != "GameObjectRef" {
					continue
				}
				uid, _ := value.(float64)
				if uid != 0 && w.Scene.FindByUID(uint64(uid)) == nil {
					log.Printf("Scene: %q prop %q references missing uid %d", g.Name, prop, uint64(uid))
				}
			}
		}
	}
}

// --- Saving ---

// SaveScene writes every object that carries at least one serializable
// component.
func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) MarshalScene() ([]byte, error) {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		objDef := ObjectDef{
			UID:      g.UID,
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr(g.Transform.Position),
			Rotation: arr(g.Transform.Rotation),
			Scale:    arr(g.Transform.Scale),
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.UID
		}

		for _, c := range g.Components() {
			raw, err := serializeComponent(c)
			if err != nil {
				return nil, fmt.Errorf("marshal scene: object %q: %w", g.Name, err)
			}
			if raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func serializeComponent(c engine.Component) (json.RawMessage, error) {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:  "MeshRenderer",
			Mesh:  comp.MeshType.String(),
			Size:  arr(comp.Size),
			Color: lookupColorName(comp.Color),
		}
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr(comp.Size),
			Offset: arr(comp.Offset),
		}
	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr(comp.Offset),
		}
	case *components.UIText:
		enabled := comp.Enabled
		def = uiTextDef{
			Type:      "UIText",
			Text:      comp.Text,
			FontSize:  comp.FontSize,
			Color:     lookupColorName(comp.Color),
			Alignment: int(comp.Alignment),
			Enabled:   &enabled,
		}
	default:
		name, props, ok := engine.SerializeScript(c)
		if !ok {
			return nil, nil
		}
		def = scriptDef{Type: "Script", Name: name, Props: props}
	}

	return json.Marshal(def)
}
