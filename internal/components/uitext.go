package components

import (
	"proximity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText displays text on screen while enabled.
type UIText struct {
	engine.BaseComponent

	Enabled   bool
	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{
		Enabled:   true,
		Text:      "",
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
	}
}

func (t *UIText) SetEnabled(enabled bool) {
	t.Enabled = enabled
}

func (t *UIText) SetText(text string) {
	t.Text = text
}

// Visible reports whether Draw would render anything.
func (t *UIText) Visible() bool {
	return t.Enabled && t.Text != ""
}

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	if !t.Visible() {
		return
	}

	textWidth := float32(rl.MeasureText(t.Text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	// Vertically center text in rect
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
