package components

import (
	"github.com/abhisek/stemlab/internal/ui/theme"
)

// Button is a labelled action that can be disabled, like the tutorial's
// Back and Continue controls.
type Button struct {
	Label    string
	Key      string
	Disabled bool
}

// NewButton creates a new button bound to a key hint.
func NewButton(label, key string, disabled bool) Button {
	return Button{
		Label:    label,
		Key:      key,
		Disabled: disabled,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + label
	}
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render("▸ " + label)
}
