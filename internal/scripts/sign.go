package scripts

import (
	"fmt"
	"log"

	"proximity/internal/engine"
	"proximity/internal/interaction"
)

// Sign shows a message when read.
type Sign struct {
	engine.BaseComponent
	Title   string
	Message string

	// Reads counts interactions
	Reads int
	// OnRead fires with the message each time the sign is read
	OnRead engine.EventWithArg[string]
}

func (s *Sign) InteractPrompt() string {
	if s.Title == "" {
		return "Read sign"
	}
	return fmt.Sprintf("Read %s", s.Title)
}

func (s *Sign) Interact(invoker *interaction.Scanner) {
	s.Reads++
	log.Printf("Sign: %q reads %q", s.Title, s.Message)
	s.OnRead.Invoke(s.Message)
}

func init() {
	engine.RegisterScriptWithApplier("Sign", signFactory, signSerializer, signApplier)
}

func signFactory(props map[string]any) engine.Component {
	s := &Sign{}
	for name, value := range props {
		signApplier(s, name, value)
	}
	return s
}

func signSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Sign)
	if !ok {
		return nil
	}
	return map[string]any{
		"title":   s.Title,
		"message": s.Message,
	}
}

func signApplier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*Sign)
	if !ok {
		return false
	}
	switch propName {
	case "title":
		if v, ok := value.(string); ok {
			s.Title = v
			return true
		}
	case "message":
		if v, ok := value.(string); ok {
			s.Message = v
			return true
		}
	}
	return false
}
