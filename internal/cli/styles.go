package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
	"github.com/matzehuels/qrsvg/pkg/shape"
)

// stylesCommand lists the styles each region accepts.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List module styles per region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, stylesTable())
			fmt.Fprintln(out)
			printKeyValue(out, "types", joinTypes(content.Types))
			return nil
		},
	}
}

// stylesTable renders one row per region with its accepted styles and scope.
func stylesTable() string {
	defaults := render.DefaultConfig()
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(qr.Regions))
	for _, region := range qr.Regions {
		var names []string
		for _, s := range shape.StylesFor(region) {
			name := s.String()
			if s != shape.StyleNone && shape.ScopeOf(s) == shape.ScopeFinder {
				name += "*"
			}
			names = append(names, name)
		}
		rows = append(rows, []string{region.String(), strings.Join(names, ", "), defaults.Style(region).String()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Region", "Styles", "Default").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 2:
				return StyleDim
			}
			return StyleValue
		})

	return t.Render() + "\n" + StyleDim.Render("* drawn once per finder pattern")
}

func joinTypes(types []content.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
