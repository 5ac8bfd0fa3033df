package scripts

import (
	"log"

	"proximity/internal/engine"
	"proximity/internal/interaction"
)

// Door swings open and closed about its Y axis.
type Door struct {
	engine.BaseComponent
	Open bool
	// Locked doors only report their state
	Locked bool
	// SwingAngle in degrees
	SwingAngle float32

	closedYaw float32
}

func (d *Door) Start() {
	if d.SwingAngle == 0 {
		d.SwingAngle = 90
	}
	if g := d.GetGameObject(); g != nil {
		d.closedYaw = g.Transform.Rotation.Y
		if d.Open {
			d.closedYaw -= d.SwingAngle
		}
	}
}

func (d *Door) InteractPrompt() string {
	switch {
	case d.Locked:
		return "Locked"
	case d.Open:
		return "Close door"
	default:
		return "Open door"
	}
}

func (d *Door) Interact(invoker *interaction.Scanner) {
	g := d.GetGameObject()
	if d.Locked {
		log.Printf("Door: %q is locked", g.Name)
		return
	}
	d.Open = !d.Open
	g.Transform.Rotation.Y = d.closedYaw
	if d.Open {
		g.Transform.Rotation.Y += d.SwingAngle
	}
}

func init() {
	engine.RegisterScriptWithApplier("Door", doorFactory, doorSerializer, doorApplier)
}

func doorFactory(props map[string]any) engine.Component {
	d := &Door{}
	for name, value := range props {
		doorApplier(d, name, value)
	}
	return d
}

func doorSerializer(c engine.Component) map[string]any {
	d, ok := c.(*Door)
	if !ok {
		return nil
	}
	return map[string]any{
		"open":        d.Open,
		"locked":      d.Locked,
		"swing_angle": d.SwingAngle,
	}
}

func doorApplier(c engine.Component, propName string, value any) bool {
	d, ok := c.(*Door)
	if !ok {
		return false
	}
	switch propName {
	case "open":
		if v, ok := value.(bool); ok {
			d.Open = v
			return true
		}
	case "locked":
		if v, ok := value.(bool); ok {
			d.Locked = v
			return true
		}
	case "swing_angle":
		if v, ok := value.(float64); ok {
			d.SwingAngle = float32(v)
			return true
		}
	}
	return false
}
