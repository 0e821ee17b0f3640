package sentinel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "geoguardian/internal/platform/errors"
)

// earlyExpiry renews the cached token well before the hub would reject it
const earlyExpiry = 5 * time.Minute

// accessToken returns the cached token or fetches a fresh one. The mutex
// serializes refreshes so concurrent region checks share one token exchange
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.opts.ClientID},
		"client_secret": {c.opts.ClientSecret},
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.opts.TokenURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "sentinel token request build failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "sentinel token request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", perr.Newf(
			perr.ErrorCodeUnauthorized,
			"sentinel token exchange status %d body %s", resp.StatusCode, string(body),
		)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "sentinel token decode failed")
	}
	if tok.AccessToken == "" {
		return "", perr.Newf(perr.ErrorCodeUnauthorized, "sentinel token exchange returned no token")
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - earlyExpiry)
	c.log.Debug().Time("expires", c.tokenExpiry).Msg("sentinel access token refreshed")
	return c.token, nil
}
