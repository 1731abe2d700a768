package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/NovaQuest/internal/dispatcher"
	"github.com/Rorical/NovaQuest/internal/eventbus"
	"github.com/Rorical/NovaQuest/internal/models"
)

func newModel() *models.AppModel {
	return &models.AppModel{Mode: models.ModeImageSearch, ServiceReady: true}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func receive(t *testing.T, eb *eventbus.EventBus) eventbus.UIEvent {
	t.Helper()
	select {
	case ev := <-eb.UIToCore():
		return ev
	default:
		t.Fatal("no event sent to core")
	}
	return nil
}

func TestTypingEditsInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	HandleKeyMsgWithEventBus(m, runes("qé"), eb)
	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeySpace}, eb)
	HandleKeyMsgWithEventBus(m, runes("x"), eb)
	assert.Equal(t, "qé x", m.Input)

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyBackspace}, eb)
	assert.Equal(t, "qé", m.Input)

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlU}, eb)
	assert.Empty(t, m.Input)
}

func TestQDoesNotQuit(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	assert.Nil(t, HandleKeyMsgWithEventBus(m, runes("q"), eb))
	assert.NotNil(t, HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyEsc}, eb))
}

func TestEnterSubmitsQuery(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.Input = "  Mars "
	m.ResultsOffset = 7

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	ev, ok := receive(t, eb).(eventbus.SubmitQueryEvent)
	require.True(t, ok)
	assert.Equal(t, models.Query{Text: "  Mars ", Mode: models.ModeImageSearch}, ev.Query)
	assert.Equal(t, "  Mars ", m.Input)
	assert.Zero(t, m.ResultsOffset)
}

func TestEnterIgnoresBlankInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.Input = "   "

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyEnter}, eb)

	select {
	case ev := <-eb.UIToCore():
		t.Fatalf("unexpected event %#v", ev)
	default:
	}
	assert.Empty(t, m.Status)
}

func TestRandomRequestUsesSelectedMode(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.Mode = models.ModePlanetaryData

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlR}, eb)

	ev, ok := receive(t, eb).(eventbus.RandomRequestEvent)
	require.True(t, ok)
	assert.Equal(t, models.ModePlanetaryData, ev.Mode)
}

func TestTabCyclesModes(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	start := m.Mode
	for range models.Modes() {
		HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyTab}, eb)
	}
	assert.Equal(t, start, m.Mode)

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyShiftTab}, eb)
	assert.Equal(t, start.Prev(), m.Mode)
}

func TestScrollNeverNegative(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyPgDown}, eb)
	assert.Equal(t, scrollStep, m.ResultsOffset)
	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyPgUp}, eb)
	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyPgUp}, eb)
	assert.Zero(t, m.ResultsOffset)
}

func TestServiceNotReady(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	m := newModel()
	m.ServiceReady = false
	m.Input = "mars"

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyEnter}, eb)
	assert.Equal(t, "Query service not available", m.Status)
}

func TestCoreEventUpdatesSession(t *testing.T) {
	m := newModel()
	result := models.NewImageCollection(nil)

	HandleCoreEvent(m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Session: models.Session{Result: result, Seq: 2},
		Notices: []models.Notice{{Content: "hi"}},
	}})
	assert.Equal(t, uint64(2), m.Session.Seq)
	assert.Len(t, m.Notices, 1)
	assert.Equal(t, "Ready | Image Collection", m.Status)

	HandleCoreEvent(m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Session: models.Session{Result: result, LastError: errors.New("boom")},
	}})
	assert.Equal(t, "Error", m.Status)
}

func TestTickAnimatesOnlyWhileLoading(t *testing.T) {
	m := newModel()
	HandleTickMsg(m)
	assert.Zero(t, m.LoadingDots)

	m.Session.Loading = true
	for i := 0; i < 5; i++ {
		HandleTickMsg(m)
	}
	assert.Equal(t, 1, m.LoadingDots)
}

func TestBusClosed(t *testing.T) {
	m := newModel()
	HandleUpdateWithEventBus(m, dispatcher.BusClosedMsg{}, nil)
	assert.False(t, m.ServiceReady)
}

func TestStatusLineWhileLoading(t *testing.T) {
	m := newModel()
	HandleCoreEvent(m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Session: models.Session{Loading: true, Query: models.Query{Text: "kepler", Mode: models.ModePlanetaryData}},
	}})
	assert.Equal(t, "Querying Planetary Data", m.Status)

	HandleCoreEvent(m, dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{}})
	assert.Equal(t, "Ready", m.Status)
}
