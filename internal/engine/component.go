package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Validator is implemented by components that must reject bad configuration
// before the scene starts. GameObject.Start runs every Validate before any
// component's Start.
type Validator interface {
	Validate() error
}

// Destroyer is implemented by components that own recurring work which must
// stop when their GameObject is torn down.
type Destroyer interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
