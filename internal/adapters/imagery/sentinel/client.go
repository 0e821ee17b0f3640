// Package sentinel fetches Sentinel-2 true color captures from the Sentinel
// Hub Process API behind a narrow Fetcher port
package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"geoguardian/internal/core/geo"
	"geoguardian/internal/platform/config"
	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
)

const (
	tokenURLDefault   = "https://services.sentinel-hub.com/oauth/token"
	processURLDefault = "https://services.sentinel-hub.com/api/v1/process"
	defaultTimeout    = 30 * time.Second

	// Sentinel-2 revisits every ~5 days, so a requested day searches ±3
	searchWindowDays = 3

	defaultMaxCloudPct = 30

	// anything smaller is an error payload or an empty mosaic, not imagery
	minUsableBytes = 1000
)

// Fetcher is the port the monitoring and timelapse services depend on
type Fetcher interface {
	Fetch(ctx context.Context, day string, bbox geo.BBox, width, height int) ([]byte, error)
}

// Options configures the Client
type Options struct {
	TokenURL   string
	ProcessURL string

	ClientID     string
	ClientSecret string

	Timeout     time.Duration
	MaxCloudPct int
}

// FromConfig reads SENTINEL_* keys
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("SENTINEL_")
	return Options{
		TokenURL:     v.MayString("TOKEN_URL", tokenURLDefault),
		ProcessURL:   v.MayString("PROCESS_URL", processURLDefault),
		ClientID:     v.MustString("CLIENT_ID"),
		ClientSecret: v.MustString("CLIENT_SECRET"),
		Timeout:      v.MayDuration("TIMEOUT", defaultTimeout),
		MaxCloudPct:  v.MayInt("MAX_CLOUD_PCT", defaultMaxCloudPct),
	}
}

// Client talks to Sentinel Hub and owns the OAuth token cache
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.TokenURL == "" {
		o.TokenURL = tokenURLDefault
	}
	if o.ProcessURL == "" {
		o.ProcessURL = processURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxCloudPct <= 0 {
		o.MaxCloudPct = defaultMaxCloudPct
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("sentinel"),
		now:  time.Now,
	}
}

// Fetch returns one JPEG capture for the given day and bbox
func (c *Client) Fetch(ctx context.Context, day string, bbox geo.BBox, width, height int) ([]byte, error) {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, perr.InvalidArgf("capture day %q: want YYYY-MM-DD", day)
	}
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, perr.InvalidArgf("capture dimensions must be positive, got %dx%d", width, height)
	}

	tok, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	from := d.AddDate(0, 0, -searchWindowDays).Format("2006-01-02")
	to := d.AddDate(0, 0, searchWindowDays).Format("2006-01-02")

	body := processRequest{
		Input: processInput{
			Bounds: processBounds{
				BBox:       bbox,
				Properties: boundsProperties{CRS: "http://www.opengis.net/def/crs/EPSG/0/4326"},
			},
			Data: []processData{{
				Type: "sentinel-2-l2a",
				DataFilter: dataFilter{
					TimeRange: timeRange{
						From: from + "T00:00:00Z",
						To:   to + "T23:59:59Z",
					},
					MaxCloudCoverage: c.opts.MaxCloudPct,
				},
			}},
		},
		Output: processOutput{
			Width:  width,
			Height: height,
			Responses: []outputResponse{{
				Identifier: "default",
				Format:     outputFormat{Type: "image/jpeg"},
			}},
		},
		Evalscript: evalscriptTrueColor,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "sentinel request marshal failed")
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.opts.ProcessURL, bytes.NewReader(payload),
	)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "sentinel request build failed")
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/jpeg")

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "sentinel process request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "sentinel response read failed")
	}

	c.log.Debug().
		Str("day", day).
		Str("bbox", bbox.String()).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("latency", c.now().Sub(start)).
		Msg("sentinel process response")

	if resp.StatusCode != http.StatusOK {
		tail := data
		if len(tail) > 2048 {
			tail = tail[:2048]
		}
		return nil, perr.Newf(
			perr.ErrorCodeUnavailable,
			"sentinel process status %d body %s", resp.StatusCode, string(tail),
		)
	}
	if len(data) < minUsableBytes {
		return nil, perr.NoDataf("no satellite data for %s at %s", day, bbox)
	}
	return data, nil
}
