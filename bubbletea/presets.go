package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// PresetPicker is the inference preset chooser.
type PresetPicker struct {
	presets  []glance.Preset
	keys     ListKeyMap
	selected int
	active   string
}

// NewPresetPicker creates a picker over the given presets. At least one
// preset is required.
func NewPresetPicker(presets []glance.Preset) (*PresetPicker, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("bubbletea: at least one preset is required")
	}
	return &PresetPicker{
		presets: presets,
		keys:    DefaultListKeyMap(),
	}, nil
}

// SetActive marks the preset with the given name as the one currently in
// use and moves the selection to it.
func (p *PresetPicker) SetActive(name string) {
	p.active = name
	for i, preset := range p.presets {
		if preset.Name == name {
			p.selected = i
			return
		}
	}
}

// Init implements tea.Model.
func (p *PresetPicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *PresetPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Up):
			p.MoveUp()
		case key.Matches(msg, p.keys.Down):
			p.MoveDown()
		case key.Matches(msg, p.keys.Confirm):
			return p, p.Choose()
		case key.Matches(msg, p.keys.Cancel):
			return p, p.Cancel()
		}
	}
	return p, nil
}

// Presets returns the listed presets.
func (p *PresetPicker) Presets() []glance.Preset {
	return p.presets
}

// SelectedIndex returns the index of the highlighted preset.
func (p *PresetPicker) SelectedIndex() int {
	return p.selected
}

// MoveDown advances the selection, wrapping at the end.
func (p *PresetPicker) MoveDown() {
	p.selected = (p.selected + 1) % len(p.presets)
}

// MoveUp retreats the selection, wrapping at the start.
func (p *PresetPicker) MoveUp() {
	p.selected = (p.selected - 1 + len(p.presets)) % len(p.presets)
}

// Choose emits the highlighted preset.
func (p *PresetPicker) Choose() tea.Cmd {
	preset := p.presets[p.selected]
	return func() tea.Msg {
		return PresetChosenMsg{Preset: preset}
	}
}

// Cancel closes the picker without choosing.
func (p *PresetPicker) Cancel() tea.Cmd {
	return func() tea.Msg {
		return PresetPickerClosedMsg{}
	}
}

// View implements tea.Model.
func (p *PresetPicker) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Faint(true)
	selectedStyle := lipgloss.NewStyle().Reverse(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("inference presets"))
	sb.WriteString("\n\n")

	for i, preset := range p.presets {
		marker := " "
		if preset.Name == p.active {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  %s", marker, preset.Name, dimStyle.Render(presetSummary(preset)))
		if i == p.selected {
			line = selectedStyle.Render(fmt.Sprintf("%s %s  %s", marker, preset.Name, presetSummary(preset)))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func presetSummary(preset glance.Preset) string {
	return fmt.Sprintf("%s t=%.1f", preset.Model, preset.Temperature)
}
