package app

import (
	"github.com/rs/zerolog"

	"github.com/Rorical/NovaQuest/internal/config"
	"github.com/Rorical/NovaQuest/internal/core"
	"github.com/Rorical/NovaQuest/internal/genai"
	"github.com/Rorical/NovaQuest/internal/nasa"
)

// NewDispatcher builds the NASA and model collaborators from cfg and the
// dispatcher that routes queries to them. Shared by the TUI and the
// one-shot query command.
func NewDispatcher(cfg *config.Config, logger zerolog.Logger) (*core.Dispatcher, core.ServiceInfo) {
	archive := nasa.NewClient(nasa.Options{
		APIKey:    cfg.GetNASAKey(),
		ImagesURL: cfg.GetImagesURL(),
		APIURL:    cfg.GetAPIURL(),
		Debug:     cfg.Debug(),
		Logger:    logger,
	})
	model := genai.NewClient(genai.Options{
		APIKey:  cfg.GetAPIKey(),
		BaseURL: cfg.GetBaseURL(),
		Model:   cfg.GetModel(),
		Logger:  logger,
	})

	info := core.ServiceInfo{
		Profile:    cfg.ActiveProfile,
		Model:      model.Model(),
		AIReady:    model.Ready(),
		KeyFromEnv: cfg.KeyFromEnv(),
	}
	return core.NewDispatcher(archive, archive, model, logger), info
}
