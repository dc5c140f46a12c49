package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// previewMargin caps the quiet zone drawn in the terminal.
const previewMargin = 2

// terminalPreview draws m as terminal cells, two columns per module, using
// the configured colors. Transparent or unparsable colors fall back to
// black on white.
func terminalPreview(m qr.Matrix, cfg render.Config) string {
	on := lipgloss.NewStyle().Background(previewColor(cfg.Foreground, "#000000"))
	off := lipgloss.NewStyle().Background(previewColor(cfg.Background, "#ffffff"))

	size := m.Size()
	quiet := min(cfg.Margin, previewMargin)

	var b strings.Builder
	for y := -quiet; y < size+quiet; y++ {
		run, runOn := 0, false
		flush := func() {
			if run == 0 {
				return
			}
			style := off
			if runOn {
				style = on
			}
			b.WriteString(style.Render(strings.Repeat("  ", run)))
			run = 0
		}
		for x := -quiet; x < size+quiet; x++ {
			v := m.Module(x, y)
			if run > 0 && v != runOn {
				flush()
			}
			runOn = v
			run++
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func previewColor(s, fallback string) lipgloss.Color {
	if strings.EqualFold(strings.TrimSpace(s), render.Transparent) {
		return lipgloss.Color(fallback)
	}
	c, err := render.ParseColor(s)
	if err != nil {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(c.Hex())
}
