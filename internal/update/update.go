package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/NovaQuest/internal/dispatcher"
	"github.com/Rorical/NovaQuest/internal/eventbus"
	"github.com/Rorical/NovaQuest/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	case dispatcher.BusClosedMsg:
		appModel.ServiceReady = false
		appModel.Status = "Query service stopped"
		return nil
	}
	return nil
}
