package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/NovaQuest/internal/dispatcher"
	"github.com/Rorical/NovaQuest/internal/eventbus"
	"github.com/Rorical/NovaQuest/internal/models"
)

const scrollStep = 5

// HandleKeyMsgWithEventBus edits local UI state and forwards submissions to
// the core. Printable keys always go to the input, so quitting is esc or
// ctrl+c only.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		query := models.Query{Text: appModel.Input, Mode: appModel.Mode}
		if query.IsEmpty() {
			return nil
		}
		if !appModel.ServiceReady {
			appModel.Status = "Query service not available"
			return nil
		}
		if err := eb.SendToCore(eventbus.SubmitQueryEvent{Query: query}); err != nil {
			appModel.Status = "Error sending query: " + err.Error()
			return nil
		}
		appModel.ResultsOffset = 0
	case "ctrl+r":
		if !appModel.ServiceReady {
			appModel.Status = "Query service not available"
			return nil
		}
		if err := eb.SendToCore(eventbus.RandomRequestEvent{Mode: appModel.Mode}); err != nil {
			appModel.Status = "Error sending request: " + err.Error()
			return nil
		}
		appModel.ResultsOffset = 0
	case "tab":
		appModel.Mode = appModel.Mode.Next()
	case "shift+tab":
		appModel.Mode = appModel.Mode.Prev()
	case "ctrl+u":
		appModel.Input = ""
	case "backspace":
		if runes := []rune(appModel.Input); len(runes) > 0 {
			appModel.Input = string(runes[:len(runes)-1])
		}
	case "pgup", "up":
		appModel.ResultsOffset = max(0, appModel.ResultsOffset-scrollStep)
	case "pgdown", "down":
		appModel.ResultsOffset += scrollStep
	case "home":
		appModel.ResultsOffset = 0
	default:
		switch keyMsg.Type {
		case tea.KeyRunes:
			appModel.Input += string(keyMsg.Runes)
		case tea.KeySpace:
			appModel.Input += " "
		}
	}
	return nil
}

// HandleCoreEvent copies the pushed snapshot into the UI model.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Session = event.Session
		appModel.Notices = event.Notices
		appModel.Status = statusLine(event.Session)
	}
	return nil
}

func statusLine(s models.Session) string {
	switch s.Phase() {
	case models.PhaseLoading:
		return "Querying " + s.Query.Mode.Label()
	case models.PhaseError:
		return "Error"
	case models.PhaseSuccess:
		return "Ready | " + s.Result.Kind().Label()
	}
	return "Ready"
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	if appModel.Session.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
