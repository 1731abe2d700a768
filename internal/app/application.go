package app

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Rorical/NovaQuest/internal/config"
	"github.com/Rorical/NovaQuest/internal/core"
	"github.com/Rorical/NovaQuest/internal/dispatcher"
	"github.com/Rorical/NovaQuest/internal/eventbus"
	"github.com/Rorical/NovaQuest/internal/logging"
	"github.com/Rorical/NovaQuest/internal/models"
)

// Options tweaks how the application is assembled.
type Options struct {
	LogLevel string // overrides the configured level when set
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     zerolog.Logger
	logCloser  io.Closer
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.QueryService
	model      *AppModel
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.GetLogLevel()
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, closer, err := logging.NewFile(cfg.GetLogFile(), "novaquest", level)
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.EventBusError) {
		logger.Warn().Err(busErr.Err).Str("operation", busErr.Operation).Msg("event bus error")
	})

	queryDispatcher, info := NewDispatcher(cfg, logger)
	service := core.NewQueryService(queryDispatcher, eb, info, logger)
	disp := dispatcher.NewEventDispatcher(eb)

	model := &AppModel{
		appModel:   createInitialAppModel(service),
		dispatcher: disp,
	}

	logger.Info().
		Str("profile", info.Profile).
		Str("model", info.Model).
		Bool("ai_ready", info.AIReady).
		Msg("application initialized")

	return &Application{
		config:     cfg,
		logger:     logger,
		logCloser:  closer,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Stop cancels in-flight requests, waits for them and releases the bus and
// the log file.
func (app *Application) Stop() {
	app.service.Stop()
	app.eventBus.Close()
	app.logger.Info().Msg("application stopped")
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
}

func createInitialAppModel(service *core.QueryService) models.AppModel {
	// Session and notices arrive from the core as the single source of truth
	return models.AppModel{
		Mode:         models.Modes()[0],
		Status:       "Ready",
		Notices:      service.Notices(),
		ServiceReady: service.IsReady(),
		AIReady:      service.AIReady(),
	}
}
