// Package fetch implements the download capability over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.trai.ch/mcvm/internal/build"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client fetches remote resources over HTTP.
type Client struct {
	http *http.Client
}

// New creates a Client whose requests time out after timeout.
func New(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewWithClient creates a Client around an existing http.Client.
func NewWithClient(c *http.Client) *Client {
	return &Client{http: c}
}

// Fetch returns the body of url.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	req.Header.Set("User-Agent", "mcvm/"+build.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := zerr.With(domain.ErrDownloadFailed, "url", url)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	return body, nil
}
