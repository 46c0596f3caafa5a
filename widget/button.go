// Package widget implements the keyboard producers: Button, RadioList,
// CheckboxList and Calendar.
//
// Every producer reports a stable Size and renders a keyboard that exactly
// matches it. State mutations are synchronous and panic on an out-of-range
// index; callers validate indices coming from callback tokens first.
package widget

import "github.com/lojasmm/inlinekb/keyboard"

// Button is a single callback button.
type Button struct {
	Label string `json:"label"`
}

func NewButton(label string) Button {
	return Button{Label: label}
}

func (b *Button) Size() keyboard.Size {
	return keyboard.NewSize(1, 1)
}

// Render returns a 1x1 keyboard sending token when clicked.
func (b *Button) Render(token string) keyboard.Keyboard {
	return keyboard.Keyboard{{{Label: b.Label, Token: token}}}
}
