package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rorical/NovaQuest/internal/models"
	"github.com/Rorical/NovaQuest/internal/nasa"
	"github.com/Rorical/NovaQuest/internal/prompts"
)

const (
	MaxImageResults = 12
	RandomBatchSize = 5

	PlaceholderThumbnail   = "/placeholder-image.jpg"
	PlaceholderTitle       = "Untitled"
	PlaceholderDescription = "No description available."
)

// ImageArchive searches the NASA image library.
type ImageArchive interface {
	SearchImages(ctx context.Context, query string) ([]nasa.Image, error)
}

// PictureSource serves Astronomy Pictures of the Day.
type PictureSource interface {
	PictureOfDay(ctx context.Context, date string) (*nasa.Picture, error)
	RandomPictures(ctx context.Context, count int) ([]nasa.Picture, error)
}

// TextModel turns a prompt into free text.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Dispatcher turns a query into exactly one collaborator call and normalizes
// the answer. It holds no per-query state.
type Dispatcher struct {
	images   ImageArchive
	pictures PictureSource
	model    TextModel
	logger   zerolog.Logger
}

func NewDispatcher(images ImageArchive, pictures PictureSource, model TextModel, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		images:   images,
		pictures: pictures,
		model:    model,
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch routes q by mode. The caller must skip empty queries; every error
// returned is a *FetchFailure.
func (d *Dispatcher) Dispatch(ctx context.Context, q models.Query) (*models.Result, error) {
	text := q.Trimmed()
	start := time.Now()

	var (
		result *models.Result
		err    error
	)
	switch {
	case q.Mode == models.ModeImageSearch:
		result, err = d.searchImages(ctx, text)
	case q.Mode == models.ModePictureOfDay:
		result, err = d.pictureOfDay(ctx, text)
	case q.Mode.IsAI():
		result, err = d.generate(ctx, q.Mode, prompts.Build(q.Mode, text))
	default:
		err = fmt.Errorf("unsupported mode %q", q.Mode)
	}

	if err != nil {
		d.logger.Warn().Err(err).Str("mode", string(q.Mode)).Dur("took", time.Since(start)).Msg("query failed")
		return nil, failure(q.Mode.IsAI(), false, err)
	}
	d.logger.Info().Str("mode", string(q.Mode)).Str("kind", string(result.Kind())).Dur("took", time.Since(start)).Msg("query dispatched")
	return result, nil
}

// DispatchRandom serves the no-text request: a batch of pictures for the
// NASA family, a fixed exploratory prompt for the AI family.
func (d *Dispatcher) DispatchRandom(ctx context.Context, mode models.Mode) (*models.Result, error) {
	start := time.Now()

	var (
		result *models.Result
		err    error
	)
	if mode.IsAI() {
		result, err = d.generate(ctx, models.ModeAIFact, prompts.RandomFact)
	} else {
		result, err = d.randomFacts(ctx)
	}

	if err != nil {
		d.logger.Warn().Err(err).Str("mode", string(mode)).Bool("random", true).Dur("took", time.Since(start)).Msg("query failed")
		return nil, failure(mode.IsAI(), true, err)
	}
	d.logger.Info().Str("mode", string(mode)).Bool("random", true).Str("kind", string(result.Kind())).Dur("took", time.Since(start)).Msg("query dispatched")
	return result, nil
}

func (d *Dispatcher) searchImages(ctx context.Context, text string) (*models.Result, error) {
	found, err := d.images.SearchImages(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(found) > MaxImageResults {
		found = found[:MaxImageResults]
	}

	items := make([]models.ImageItem, 0, len(found))
	for _, img := range found {
		items = append(items, models.ImageItem{
			ThumbnailURL: orDefault(img.ThumbnailURL, PlaceholderThumbnail),
			Title:        orDefault(img.Title, PlaceholderTitle),
			Description:  orDefault(img.Description, PlaceholderDescription),
			CreatedDate:  datePart(img.DateCreated),
		})
	}
	return models.NewImageCollection(items), nil
}

func (d *Dispatcher) pictureOfDay(ctx context.Context, text string) (*models.Result, error) {
	date, _ := ParseISODate(text)
	p, err := d.pictures.PictureOfDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: apod: empty response", nasa.ErrMalformedPayload)
	}
	return models.NewSinglePicture(models.Picture{
		Title:       p.Title,
		MediaURL:    p.URL,
		MediaKind:   models.ParseMediaKind(p.MediaType),
		HDURL:       p.HDURL,
		Date:        p.Date,
		Explanation: p.Explanation,
		Copyright:   p.Copyright,
	}), nil
}

func (d *Dispatcher) randomFacts(ctx context.Context) (*models.Result, error) {
	ps, err := d.pictures.RandomPictures(ctx, RandomBatchSize)
	if err != nil {
		return nil, err
	}
	facts := make([]models.Fact, 0, len(ps))
	for _, p := range ps {
		facts = append(facts, models.Fact{
			Title:       p.Title,
			MediaURL:    p.URL,
			MediaKind:   models.ParseMediaKind(p.MediaType),
			Date:        p.Date,
			Explanation: p.Explanation,
		})
	}
	return models.NewFactList(facts), nil
}

func (d *Dispatcher) generate(ctx context.Context, mode models.Mode, prompt string) (*models.Result, error) {
	text, err := d.model.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return models.NewTextAnswer(text, mode), nil
}

// ParseISODate returns the YYYY-MM-DD form of s when s is an ISO-8601 date
// or an RFC 3339 timestamp.
func ParseISODate(s string) (string, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(time.DateOnly), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.DateOnly), true
	}
	return "", false
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func datePart(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
