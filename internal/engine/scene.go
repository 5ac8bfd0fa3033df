package engine

import "errors"

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject detaches g and its children from the scene without
// running destroy hooks.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
}

// Destroy tears g down: OnDestroy hooks run, g and its children are marked
// destroyed and removed from the scene.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	g.destroy()
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Start starts every object and reports all validation failures together.
func (s *Scene) Start() error {
	var errs []error
	for _, g := range s.GameObjects {
		if err := g.Start(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scene) Update(deltaTime float32) {
	// Components may destroy objects mid-update
	objs := make([]*GameObject, len(s.GameObjects))
	copy(objs, s.GameObjects)
	for _, g := range objs {
		g.Update(deltaTime)
	}
}
