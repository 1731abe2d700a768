package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/NovaQuest/internal/render"
	"github.com/Rorical/NovaQuest/internal/utils"
	"github.com/Rorical/NovaQuest/ui/styles"
)

// RenderNode draws a display tree within width columns.
func RenderNode(n *render.Node, width int) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case render.KindSection:
		parts := make([]string, 0, len(n.Children))
		for i, c := range n.Children {
			if i == 0 && c.Kind == render.KindHeading {
				parts = append(parts, styles.SectionTitleStyle().Render(c.Text))
				continue
			}
			parts = append(parts, RenderNode(c, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	case render.KindGrid:
		return renderGrid(n, width)
	case render.KindCard:
		parts := make([]string, 0, len(n.Children))
		inner := max(width-4, 4)
		for _, c := range n.Children {
			parts = append(parts, RenderNode(c, inner))
		}
		return styles.CardStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	case render.KindHeading:
		return styles.HeadingStyle().Width(width).Render(n.Text)
	case render.KindImage:
		return styles.MediaStyle().Render("[image] " + imageSource(n))
	case render.KindFrame:
		return styles.MediaStyle().Render("[video] " + n.Src)
	case render.KindText:
		return lipgloss.NewStyle().Width(width).Render(n.Text)
	case render.KindMeta:
		text := n.Text
		if n.Label != "" {
			text = n.Label + ": " + text
		}
		return styles.MetaStyle().Width(width).Render(text)
	case render.KindBadge:
		return styles.BadgeStyle().Render(n.Text)
	case render.KindMarkdown:
		return utils.RenderMarkdown(n.Text, width)
	case render.KindPlaceholder:
		return styles.PlaceholderPanelStyle().Render(n.Text)
	}
	return ""
}

// imageSource returns the link shown for an image node. Relative or empty
// sources cannot be opened from a terminal, so the fallback is shown.
func imageSource(n *render.Node) string {
	if strings.HasPrefix(n.Src, "http://") || strings.HasPrefix(n.Src, "https://") || n.Fallback == "" {
		return n.Src
	}
	return n.Fallback
}

// renderGrid lays cards out in rows of n.Columns, dropping to fewer
// columns when the terminal is too narrow for readable cards.
func renderGrid(n *render.Node, width int) string {
	cols := n.Columns
	if cols < 1 {
		cols = 1
	}
	for cols > 1 && width/cols < 28 {
		cols--
	}
	cellWidth := width / cols

	var rows []string
	for start := 0; start < len(n.Children); start += cols {
		end := min(start+cols, len(n.Children))
		cells := make([]string, 0, cols)
		for _, c := range n.Children[start:end] {
			cells = append(cells, RenderNode(c, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// Viewport returns at most height lines of content starting at offset,
// clamping the offset to the content. The clamped offset is returned so
// callers can keep scrolling state in range.
func Viewport(content string, offset, height int) (string, int) {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		return content, 0
	}
	maxOffset := len(lines) - height
	offset = max(0, min(offset, maxOffset))
	return strings.Join(lines[offset:offset+height], "\n"), offset
}
