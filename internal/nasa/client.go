// Package nasa talks to the NASA image archive and the Astronomy Picture of
// the Day endpoint.
package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

var (
	// ErrUpstream marks transport failures and non-success responses.
	ErrUpstream = errors.New("nasa upstream error")
	// ErrMalformedPayload marks responses that do not decode to the expected shape.
	ErrMalformedPayload = errors.New("nasa malformed payload")
)

// Client is safe for concurrent use.
type Client struct {
	images *resty.Client
	api    *resty.Client
	apiKey string
	strip  *bluemonday.Policy
	logger zerolog.Logger
}

// Options configures a Client. Empty URLs fall back to the public endpoints.
type Options struct {
	APIKey    string
	ImagesURL string
	APIURL    string
	Timeout   time.Duration
	Debug     bool
	Logger    zerolog.Logger
}

const (
	defaultImagesURL = "https://images-api.nasa.gov"
	defaultAPIURL    = "https://api.nasa.gov"
	defaultAPIKey    = "DEMO_KEY"
)

func NewClient(opts Options) *Client {
	if opts.ImagesURL == "" {
		opts.ImagesURL = defaultImagesURL
	}
	if opts.APIURL == "" {
		opts.APIURL = defaultAPIURL
	}
	if opts.APIKey == "" {
		opts.APIKey = defaultAPIKey
	}

	c := &Client{
		apiKey: opts.APIKey,
		strip:  bluemonday.StrictPolicy(),
		logger: opts.Logger.With().Str("component", "nasa").Logger(),
	}
	c.images = c.newResty(opts.ImagesURL, opts)
	c.api = c.newResty(opts.APIURL, opts)
	return c
}

func (c *Client) newResty(baseURL string, opts Options) *resty.Client {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json")
	// No timeout unless configured; a query runs until the network resolves.
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.Debug {
		rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status_code", resp.StatusCode()).
				Dur("took", resp.Time()).
				Msg("HTTP response")
			return nil
		})
	}
	return rc
}

// SearchImages runs a free-text image search and returns every item the
// archive sent back, in order.
func (c *Client) SearchImages(ctx context.Context, query string) ([]Image, error) {
	resp, err := c.images.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":          query,
			"media_type": "image",
		}).
		Get("/search")
	if err := checkResponse("image search", resp, err); err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("%w: image search: %v", ErrMalformedPayload, err)
	}
	if sr.Collection == nil {
		return nil, fmt.Errorf("%w: image search: missing collection", ErrMalformedPayload)
	}

	out := make([]Image, 0, len(sr.Collection.Items))
	for _, item := range sr.Collection.Items {
		out = append(out, c.toImage(item))
	}
	return out, nil
}

// PictureOfDay fetches the picture for date (YYYY-MM-DD), or today's picture
// when date is empty.
func (c *Client) PictureOfDay(ctx context.Context, date string) (*Picture, error) {
	params := map[string]string{"api_key": c.apiKey}
	if date != "" {
		params["date"] = date
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/planetary/apod")
	if err := checkResponse("apod", resp, err); err != nil {
		return nil, err
	}

	var p Picture
	if err := json.Unmarshal(resp.Body(), &p); err != nil {
		return nil, fmt.Errorf("%w: apod: %v", ErrMalformedPayload, err)
	}
	return &p, nil
}

// RandomPictures fetches count randomly chosen pictures.
func (c *Client) RandomPictures(ctx context.Context, count int) ([]Picture, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0")
	}
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": c.apiKey,
			"count":   strconv.Itoa(count),
		}).
		Get("/planetary/apod")
	if err := checkResponse("apod batch", resp, err); err != nil {
		return nil, err
	}

	var ps []Picture
	if err := json.Unmarshal(resp.Body(), &ps); err != nil {
		return nil, fmt.Errorf("%w: apod batch: %v", ErrMalformedPayload, err)
	}
	return ps, nil
}

func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
	}
	if !resp.IsSuccess() {
		return &StatusError{Op: op, StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}

func (c *Client) toImage(item searchItem) Image {
	var img Image
	if len(item.Data) > 0 {
		d := item.Data[0]
		img.Title = strings.TrimSpace(d.Title)
		img.Description = strings.TrimSpace(html.UnescapeString(c.strip.Sanitize(d.Description)))
		img.DateCreated = d.DateCreated
	}
	if len(item.Links) > 0 {
		img.ThumbnailURL = item.Links[0].Href
	}
	return img
}

// StatusError is returned for non-success HTTP responses.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}
