package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Rorical/NovaQuest/internal/eventbus"
	"github.com/Rorical/NovaQuest/internal/models"
)

// ServiceInfo describes the configuration shown in the start-up notices.
type ServiceInfo struct {
	Profile    string
	Model      string
	AIReady    bool
	KeyFromEnv bool
}

// QueryService runs submissions against the Dispatcher and pushes session
// snapshots to the UI. Submissions never cancel each other; the session
// keeps only the newest outcome.
type QueryService struct {
	dispatcher *Dispatcher
	state      *SessionState
	eventBus   *eventbus.EventBus
	info       ServiceInfo
	logger     zerolog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	inflight   sync.WaitGroup
	pushMu     sync.Mutex // serializes snapshot+send so the UI never sees an older state last
}

// NewQueryService creates the service. eb may be nil for headless use.
func NewQueryService(d *Dispatcher, eb *eventbus.EventBus, info ServiceInfo, logger zerolog.Logger) *QueryService {
	ctx, cancel := context.WithCancel(context.Background())
	service := &QueryService{
		dispatcher: d,
		state:      NewSessionState(),
		eventBus:   eb,
		info:       info,
		logger:     logger.With().Str("component", "service").Logger(),
		ctx:        ctx,
		cancel:     cancel,
	}
	service.addWelcomeNotices()
	return service
}

// Start pushes the initial state and starts consuming UI events.
func (qs *QueryService) Start() {
	qs.pushStateToUI()
	if qs.eventBus != nil {
		go qs.eventLoop()
	}
}

// Stop cancels in-flight requests and waits for their goroutines.
func (qs *QueryService) Stop() {
	qs.cancel()
	qs.inflight.Wait()
}

// Wait blocks until every submitted request has completed.
func (qs *QueryService) Wait() {
	qs.inflight.Wait()
}

func (qs *QueryService) eventLoop() {
	for {
		select {
		case <-qs.ctx.Done():
			return
		case event, ok := <-qs.eventBus.UIToCore():
			if !ok {
				return
			}
			qs.handleUIEvent(event)
		}
	}
}

func (qs *QueryService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitQueryEvent:
		qs.Submit(e.Query)
	case eventbus.RandomRequestEvent:
		qs.Random(e.Mode)
	}
}

// Submit starts q and returns immediately with loading already set. Empty or
// whitespace-only text is ignored: nothing changes and false is returned.
func (qs *QueryService) Submit(q models.Query) bool {
	if q.IsEmpty() {
		qs.logger.Debug().Str("mode", string(q.Mode)).Msg("empty query skipped")
		return false
	}
	seq := qs.state.Begin(q)
	qs.pushStateToUI()

	qs.run(seq, func(ctx context.Context) (*models.Result, error) {
		return qs.dispatcher.Dispatch(ctx, q)
	})
	return true
}

// Random starts the no-text request for mode's family.
func (qs *QueryService) Random(mode models.Mode) bool {
	seq := qs.state.Begin(models.Query{Mode: mode})
	qs.pushStateToUI()

	qs.run(seq, func(ctx context.Context) (*models.Result, error) {
		return qs.dispatcher.DispatchRandom(ctx, mode)
	})
	return true
}

func (qs *QueryService) run(seq uint64, call func(context.Context) (*models.Result, error)) {
	qs.inflight.Add(1)
	go func() {
		defer qs.inflight.Done()
		result, err := call(qs.ctx)
		if !qs.state.Complete(seq, result, err) {
			qs.logger.Debug().Uint64("seq", seq).Msg("stale response discarded")
			return
		}
		qs.pushStateToUI()
	}()
}

// Snapshot returns the current session state.
func (qs *QueryService) Snapshot() models.Session {
	return qs.state.Snapshot()
}

func (qs *QueryService) Notices() []models.Notice {
	return qs.state.Notices()
}

func (qs *QueryService) IsReady() bool {
	return qs.dispatcher != nil
}

func (qs *QueryService) AIReady() bool {
	return qs.info.AIReady
}

func (qs *QueryService) pushStateToUI() {
	if qs.eventBus == nil {
		return
	}
	qs.pushMu.Lock()
	defer qs.pushMu.Unlock()

	if err := qs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Session: qs.state.Snapshot(),
		Notices: qs.state.Notices(),
	}); err != nil {
		qs.logger.Error().Err(err).Msg("failed to send state to UI")
	}
}

func (qs *QueryService) addWelcomeNotices() {
	qs.state.AddNotice("-- NOVA QUEST --", models.NoticeBanner)
	qs.state.AddNotice("Discover the Cosmos", models.NoticeInfo)

	source := "profile " + qs.info.Profile
	if qs.info.KeyFromEnv {
		source = "environment"
	}
	if qs.info.AIReady {
		qs.state.AddNotice(fmt.Sprintf("AI model: %s via %s [OK]", qs.info.Model, source), models.NoticeInfo)
	} else {
		qs.state.AddNotice(fmt.Sprintf("AI model: %s [NOT CONFIGURED]", qs.info.Model), models.NoticeWarning)
		qs.state.AddNotice("Set GEMINI_API_KEY or run: novaquest profile add <name>", models.NoticeWarning)
	}

	qs.state.AddNotice(`Try searching for: "Mars", "Galaxy", "2024-01-15", or "Nebula"`, models.NoticeHint)
	qs.state.AddNotice("Enter search | Tab mode | Ctrl+R random | PgUp/PgDn scroll | Esc quit", models.NoticeHint)
}
