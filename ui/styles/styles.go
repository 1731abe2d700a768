package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Slate   = lipgloss.Color("60")
	Sky     = lipgloss.Color("111")
	Violet  = lipgloss.Color("141")
	Muted   = lipgloss.Color("245")
	Dim     = lipgloss.Color("241")
	Danger  = lipgloss.Color("203")
	Warning = lipgloss.Color("214")
	Accent  = lipgloss.Color("62")
)

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func InputPromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Sky).Bold(true)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dim)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Dim).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func BannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true).
		Padding(0, 2).
		Align(lipgloss.Center)
}

func NoticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 2)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Warning).
		Padding(0, 2)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Dim).
		Italic(true).
		Padding(0, 2)
}

// TabStyle renders one entry of the mode selector.
func TabStyle(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return s.Foreground(lipgloss.Color("230")).Background(Accent).Bold(true)
	}
	return s.Foreground(Muted)
}

func CardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Slate).
		Padding(0, 1).
		Width(max(width-2, 8))
}

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Sky).Bold(true)
}

func SectionTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true).
		MarginBottom(1)
}

func MetaStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Dim)
}

func MediaStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true)
}

func BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(Violet).
		Bold(true).
		Padding(0, 1).
		MarginBottom(1)
}

func PlaceholderPanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Padding(1, 2)
}

func ErrorStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Danger).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Danger).
		Padding(0, 1).
		MarginLeft(2).
		Width(max(width-6, 10))
}

func LoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Sky).
		Padding(1, 2)
}
