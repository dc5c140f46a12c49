package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
	"github.com/matzehuels/qrsvg/pkg/shape"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StylePickerModel - Interactive per-region style selection
// =============================================================================

// StylePickerModel is the bubbletea model for picking one style per region.
// Rows are regions; left and right cycle through the styles a region accepts.
type StylePickerModel struct {
	Cursor    int
	Choices   [len(qr.Regions)]int
	Confirmed bool

	options [len(qr.Regions)][]shape.Style
}

// NewStylePickerModel starts the picker at the styles selected in cfg.
func NewStylePickerModel(cfg render.Config) StylePickerModel {
	var m StylePickerModel
	for i, region := range qr.Regions {
		m.options[i] = shape.StylesFor(region)
		for j, s := range m.options[i] {
			if s == cfg.Style(region) {
				m.Choices[i] = j
			}
		}
	}
	return m
}

// Selected returns the style chosen for region.
func (m StylePickerModel) Selected(region qr.Region) shape.Style {
	for i, r := range qr.Regions {
		if r == region {
			return m.options[i][m.Choices[i]]
		}
	}
	return shape.StyleNone
}

func (m StylePickerModel) Init() tea.Cmd {
	return nil
}

func (m StylePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(qr.Regions)-1 {
			m.Cursor++
		}
	case "left", "h":
		n := len(m.options[m.Cursor])
		m.Choices[m.Cursor] = (m.Choices[m.Cursor] + n - 1) % n
	case "right", "l", "tab":
		n := len(m.options[m.Cursor])
		m.Choices[m.Cursor] = (m.Choices[m.Cursor] + 1) % n
	case "enter":
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m StylePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Styles"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ region  ←/→ style  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, region := range qr.Regions {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		current := m.options[i][m.Choices[i]]
		line := fmt.Sprintf("%s%-16s ‹ %-20s ›", cursor, region, current)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  ")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("[%d/%d]", m.Choices[i]+1, len(m.options[i]))))
		b.WriteString("\n")
	}
	return b.String()
}

// apply writes the chosen styles into opts.
func (m StylePickerModel) apply(opts render.Options) render.Options {
	opts.InteriorStyle = m.Selected(qr.RegionFinderInterior).String()
	opts.BorderStyle = m.Selected(qr.RegionFinderBorder).String()
	opts.DataStyle = m.Selected(qr.RegionData).String()
	return opts
}

// pickStyles runs the picker. It reports false when the user quit without
// confirming.
func pickStyles(opts render.Options) (render.Options, bool, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return opts, false, err
	}
	final, err := tea.NewProgram(NewStylePickerModel(cfg)).Run()
	if err != nil {
		return opts, false, err
	}
	m, ok := final.(StylePickerModel)
	if !ok || !m.Confirmed {
		return opts, false, nil
	}
	return m.apply(opts), true, nil
}
