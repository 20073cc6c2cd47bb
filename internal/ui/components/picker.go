package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stemlab/internal/ui/theme"
)

// PickerOption is one choice in a Picker.
type PickerOption struct {
	Value string
	Label string
}

// Picker is a single-choice selector cycled with a key, used for the
// lesson filter and sort controls.
type Picker struct {
	Label   string
	Options []PickerOption
	Index   int
}

// NewPicker creates a picker positioned at the option whose value is
// initial, or at the first option.
func NewPicker(label string, options []PickerOption, initial string) Picker {
	p := Picker{Label: label, Options: options}
	for i, o := range options {
		if o.Value == initial {
			p.Index = i
			break
		}
	}
	return p
}

// Next selects the following option, wrapping around.
func (p *Picker) Next() {
	if len(p.Options) == 0 {
		return
	}
	p.Index = (p.Index + 1) % len(p.Options)
}

// Prev selects the preceding option, wrapping around.
func (p *Picker) Prev() {
	if len(p.Options) == 0 {
		return
	}
	p.Index = (p.Index - 1 + len(p.Options)) % len(p.Options)
}

// Value returns the selected option's value, or "" when empty.
func (p Picker) Value() string {
	if p.Index < 0 || p.Index >= len(p.Options) {
		return ""
	}
	return p.Options[p.Index].Value
}

// View renders "Label: ◂ Option ▸".
func (p Picker) View() string {
	label := ""
	if p.Index >= 0 && p.Index < len(p.Options) {
		label = p.Options[p.Index].Label
	}
	return fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label+":"),
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("◂ "+label+" ▸"),
	)
}
