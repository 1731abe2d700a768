package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/NovaQuest/internal/dispatcher"
	"github.com/Rorical/NovaQuest/internal/models"
	"github.com/Rorical/NovaQuest/internal/render"
	"github.com/Rorical/NovaQuest/internal/update"
	"github.com/Rorical/NovaQuest/ui/components"
)

const defaultWidth = 80

// AppModel adapts the UI state to the Bubble Tea model interface.
type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, m.dispatcher.GetEventBus())

	// Keep listening after every core event
	if _, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd = tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	m.clampScroll()
	return m, cmd
}

func (m *AppModel) View() string {
	width := m.width()
	header := m.header(width)
	footer := m.footer(width)

	body := m.body(width)
	if h := m.bodyHeight(header, footer); h > 0 {
		body, _ = components.Viewport(body, m.appModel.ResultsOffset, h)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (m *AppModel) header(width int) string {
	var b strings.Builder
	b.WriteString(components.RenderNotices(m.appModel.Notices, width))
	b.WriteString(components.RenderModeSelector(m.appModel.Mode, m.appModel.AIReady))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(m.appModel.Input, components.Placeholder(m.appModel.Mode), m.appModel.Session.Loading, width))
	return b.String()
}

func (m *AppModel) footer(width int) string {
	return components.RenderStatus(m.appModel.Status, m.appModel.Session.Loading, m.appModel.LoadingDots, width)
}

// body shows the loading line, the error of the latest request, or the
// latest result, in that order of precedence.
func (m *AppModel) body(width int) string {
	session := m.appModel.Session
	switch {
	case session.Loading:
		return components.RenderLoading(m.appModel.LoadingDots)
	case session.LastError != nil:
		return components.RenderError(session.LastError, width)
	case session.Result != nil:
		return components.RenderNode(render.Render(session.Result), width)
	}
	return ""
}

func (m *AppModel) bodyHeight(header, footer string) int {
	if m.appModel.Height == 0 {
		return 0
	}
	return max(1, m.appModel.Height-lipgloss.Height(header)-lipgloss.Height(footer))
}

func (m *AppModel) clampScroll() {
	if m.appModel.ResultsOffset == 0 || m.appModel.Height == 0 {
		return
	}
	width := m.width()
	h := m.bodyHeight(m.header(width), m.footer(width))
	_, m.appModel.ResultsOffset = components.Viewport(m.body(width), m.appModel.ResultsOffset, h)
}

func (m *AppModel) width() int {
	if m.appModel.Width == 0 {
		return defaultWidth
	}
	return m.appModel.Width
}
