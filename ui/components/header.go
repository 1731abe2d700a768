package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/NovaQuest/internal/models"
	"github.com/Rorical/NovaQuest/ui/styles"
)

func RenderNotices(notices []models.Notice, width int) string {
	var b strings.Builder
	for _, n := range notices {
		switch n.Type {
		case models.NoticeBanner:
			b.WriteString(styles.BannerStyle().Width(width).Render(n.Content))
		case models.NoticeWarning:
			b.WriteString(styles.WarningStyle().Render(n.Content))
		case models.NoticeHint:
			b.WriteString(styles.HintStyle().Render(n.Content))
		default:
			b.WriteString(styles.NoticeStyle().Render(n.Content))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderModeSelector lists the selectable modes with the current one
// highlighted. AI modes are marked when no model credential is configured.
func RenderModeSelector(selected models.Mode, aiReady bool) string {
	var tabs []string
	for _, m := range models.Modes() {
		label := m.Label()
		if m.IsAI() && !aiReady {
			label += " (no key)"
		}
		tabs = append(tabs, styles.TabStyle(m == selected).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Placeholder returns the input hint for a mode.
func Placeholder(mode models.Mode) string {
	switch mode {
	case models.ModeImageSearch:
		return "Search NASA images (e.g. Mars, Galaxy, Nebula)"
	case models.ModePictureOfDay:
		return "Enter a date (YYYY-MM-DD) or anything for today"
	case models.ModePlanetaryData:
		return "Ask about exoplanets (e.g. Kepler-22b radius)"
	case models.ModeAIDescription:
		return "Describe a celestial object to imagine"
	case models.ModeAIAstronomyPics:
		return "Ask about an Astronomy Picture of the Day"
	}
	return "Enter a query"
}
