// Package manifest fetches remote Kubernetes YAML manifests, such as
// the GPU driver installer DaemonSet published by cloud providers.
package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/gpukit/internal/retry"
)

// maxManifestSize caps how much of a remote manifest is read. Driver
// installer manifests are a few kilobytes; anything near this limit is
// not a manifest.
const maxManifestSize = 4 << 20

// Fetcher downloads YAML manifests over HTTP with retry on transient
// failures.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewFetcherWithClient creates a Fetcher using the given HTTP client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the manifest at url and verifies it parses as YAML.
// Server errors and network failures are retried with exponential
// backoff; client errors (4xx) are permanent and fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := retry.WithExponentialBackoff(ctx, func() error {
		data, err := f.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest from %s: %w", url, err)
	}

	// A sanity parse catches HTML error pages served with status 200.
	var doc any
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("manifest from %s is not valid YAML: %w", url, err)
	}

	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Fatal(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// ok
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.Fatal(fmt.Errorf("unexpected status %s", resp.Status))
	default:
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxManifestSize {
		return nil, retry.Fatal(fmt.Errorf("manifest exceeds %d bytes", maxManifestSize))
	}

	return body, nil
}
