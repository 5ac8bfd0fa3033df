package interaction

import (
	"time"

	"proximity/internal/engine"
)

var scannerFieldTypes = map[string]string{
	"anchor": "GameObjectRef",
	"prompt": "GameObjectRef",
}

func init() {
	engine.RegisterScriptWithMetadata("InteractionScanner", scannerFactory, scannerSerializer, scannerApplier, scannerFieldTypes)
}

func scannerFactory(props map[string]any) engine.Component {
	s := NewScanner(0)
	for name, value := range props {
		scannerApplier(s, name, value)
	}
	return s
}

func scannerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Scanner)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":      s.Radius,
		"interval_ms": float64(s.Interval.Milliseconds()),
		"show_radius": s.ShowRadius,
		"anchor":      float64(s.Anchor.UID),
		"prompt":      float64(s.PromptRef.UID),
	}
}

func scannerApplier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*Scanner)
	if !ok {
		return false
	}
	switch propName {
	case "radius":
		if v, ok := value.(float64); ok {
			s.Radius = float32(v)
			return true
		}
	case "interval_ms":
		if v, ok := value.(float64); ok && v > 0 {
			s.SetInterval(time.Duration(v * float64(time.Millisecond)))
			return true
		}
	case "show_radius":
		if v, ok := value.(bool); ok {
			s.ShowRadius = v
			return true
		}
	case "anchor":
		if v, ok := value.(float64); ok {
			s.Anchor = engine.GameObjectRef{UID: uint64(v)}
			s.anchor = nil
			return true
		}
	case "prompt":
		if v, ok := value.(float64); ok {
			s.PromptRef = engine.GameObjectRef{UID: uint64(v)}
			return true
		}
	}
	return false
}
