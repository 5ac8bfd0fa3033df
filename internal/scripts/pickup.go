package scripts

import (
	"fmt"
	"log"

	"proximity/internal/engine"
	"proximity/internal/interaction"
)

// Pickup is collected into the invoker's Inventory and then destroyed.
type Pickup struct {
	engine.BaseComponent
	Item  string
	Count int

	collected bool
}

func (p *Pickup) InteractPrompt() string {
	if p.Count > 1 {
		return fmt.Sprintf("Pick up %s (x%d)", p.Item, p.Count)
	}
	return fmt.Sprintf("Pick up %s", p.Item)
}

func (p *Pickup) Interact(invoker *interaction.Scanner) {
	if p.collected {
		return
	}
	p.collected = true

	count := max(p.Count, 1)
	if invoker != nil {
		if inv := engine.GetComponent[*Inventory](invoker.GetGameObject()); inv != nil {
			inv.Add(p.Item, count)
		}
	}
	log.Printf("Pickup: collected %d x %s", count, p.Item)

	g := p.GetGameObject()
	if g != nil && g.Scene != nil {
		if g.Scene.World != nil {
			g.Scene.World.Destroy(g)
		} else {
			g.Scene.Destroy(g)
		}
	}
}

// Inventory counts items by name.
type Inventory struct {
	engine.BaseComponent
	Items map[string]int

	OnChanged engine.EventWithArg[string]
}

func NewInventory() *Inventory {
	return &Inventory{Items: make(map[string]int)}
}

func (i *Inventory) Add(item string, count int) {
	if i.Items == nil {
		i.Items = make(map[string]int)
	}
	i.Items[item] += count
	i.OnChanged.Invoke(item)
}

func (i *Inventory) Count(item string) int {
	return i.Items[item]
}

func init() {
	engine.RegisterScriptWithApplier("Pickup", pickupFactory, pickupSerializer, pickupApplier)
}

func pickupFactory(props map[string]any) engine.Component {
	p := &Pickup{Count: 1}
	for name, value := range props {
		pickupApplier(p, name, value)
	}
	return p
}

func pickupSerializer(c engine.Component) map[string]any {
	p, ok := c.(*Pickup)
	if !ok {
		return nil
	}
	return map[string]any{
		"item":  p.Item,
		"count": p.Count,
	}
}

func pickupApplier(c engine.Component, propName string, value any) bool {
	p, ok := c.(*Pickup)
	if !ok {
		return false
	}
	switch propName {
	case "item":
		if v, ok := value.(string); ok {
			p.Item = v
			return true
		}
	case "count":
		if v, ok := value.(float64); ok {
			p.Count = int(v)
			return true
		}
	}
	return false
}
