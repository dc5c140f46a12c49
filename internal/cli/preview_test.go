package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

func TestTerminalPreviewDimensions(t *testing.T) {
	g := qr.NewGrid(21)
	g.Set(0, 0, true).Set(20, 20, true)

	tests := []struct {
		name   string
		margin int
		want   int
	}{
		{"default margin capped", render.DefaultMargin, 21 + 2*previewMargin},
		{"no margin", 0, 21},
		{"small margin", 1, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := render.Options{Margin: render.Margin(tt.margin)}.Resolve()
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSuffix(terminalPreview(g, cfg), "\n"), "\n")
			if len(lines) != tt.want {
				t.Fatalf("lines = %d, want %d", len(lines), tt.want)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != 2*tt.want {
					t.Errorf("line %d width = %d, want %d", i, w, 2*tt.want)
				}
			}
		})
	}
}

func TestPreviewColor(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.Color
	}{
		{"#ff0000", "#ff0000"},
		{"#F00", "#ff0000"},
		{"white", "#ffffff"},
		{"transparent", "#123456"},
		{"nope", "#123456"},
	}
	for _, tt := range tests {
		if got := previewColor(tt.in, "#123456"); got != tt.want {
			t.Errorf("previewColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
