package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer converts a Component back to props for JSON saving.
// Returns nil if c is not the script's type.
type ScriptSerializer func(c Component) map[string]any

// ScriptApplier applies a single property value to a script component.
// Returns true if the property was applied.
type ScriptApplier func(c Component, propName string, value any) bool

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
	applier    ScriptApplier
	fieldTypes map[string]string
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional serializer.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	register(name, scriptEntry{factory: factory, serializer: serializer})
}

// RegisterScriptWithApplier also registers an applier for live property edits.
func RegisterScriptWithApplier(name string, factory ScriptFactory, serializer ScriptSerializer, applier ScriptApplier) {
	register(name, scriptEntry{factory: factory, serializer: serializer, applier: applier})
}

// RegisterScriptWithMetadata also records prop types, e.g. "GameObjectRef",
// so loaders can tell references apart from plain numbers.
func RegisterScriptWithMetadata(name string, factory ScriptFactory, serializer ScriptSerializer, applier ScriptApplier, fieldTypes map[string]string) {
	register(name, scriptEntry{factory: factory, serializer: serializer, applier: applier, fieldTypes: fieldTypes})
}

func register(name string, entry scriptEntry) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = entry
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(props)
}

// SerializeScript returns (name, props, true) for the first registered
// script that recognizes c.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for _, name := range GetRegisteredScripts() {
		entry := scriptRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// GetRegisteredScripts returns all registered script names, sorted.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyScriptProperty applies a property value to a script component.
func ApplyScriptProperty(c Component, propName string, value any) bool {
	for _, entry := range scriptRegistry {
		if entry.applier == nil {
			continue
		}
		if entry.applier(c, propName, value) {
			return true
		}
	}
	return false
}

// GetScriptFieldType returns the registered type of a script prop, or "".
func GetScriptFieldType(c Component, propName string) string {
	for _, entry := range scriptRegistry {
		if entry.serializer == nil || entry.fieldTypes == nil {
			continue
		}
		if entry.serializer(c) != nil {
			return entry.fieldTypes[propName]
		}
	}
	return ""
}
