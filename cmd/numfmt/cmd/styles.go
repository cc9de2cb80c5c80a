package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to the writer they render for, so piped output and
// tests get plain text
type styles struct {
	renderer *lipgloss.Renderer
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	err      lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		renderer: r,
		header:   r.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		label:    r.NewStyle().Foreground(colorMuted).Width(10),
		value:    r.NewStyle().Bold(true),
		err:      r.NewStyle().Foreground(colorError),
	}
}

func (s styles) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(value))
}

func (s styles) table(headers ...string) *table.Table {
	cell := s.renderer.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.renderer.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return cell
		})
}
