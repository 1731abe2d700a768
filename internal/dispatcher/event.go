package dispatcher

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/NovaQuest/internal/eventbus"
)

// CoreEventMsg wraps a core event for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// BusClosedMsg is delivered once the core-to-UI channel has been closed.
type BusClosedMsg struct{}

// EventDispatcher bridges the event bus into the Bubble Tea runtime
type EventDispatcher struct {
	eventBus *eventbus.EventBus
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{eventBus: eventBus}
}

// ListenForCoreEvents returns a command that blocks until the next core
// event. The model re-issues it after every CoreEventMsg.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	ch := ed.eventBus.CoreToUI()
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return BusClosedMsg{}
		}
		return CoreEventMsg{Event: event}
	}
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
