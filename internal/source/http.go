package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// HTTPFetcher reads documents from a static host serving the stats directory,
// e.g. https://example.org/stats/<uuid>.json.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	name, err := documentName(identity)
	if err != nil {
		return nil, err
	}
	data, err := get(ctx, f.client, f.baseURL+"/"+url.PathEscape(name))
	if errors.Is(err, errNotFound) {
		return nil, fmt.Errorf("%w: %s", models.ErrDocumentNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}

// errNotFound is returned by get on a 404; callers map it to their own sentinel.
var errNotFound = errors.New("not found")

// get downloads a resource, mapping 404 to errNotFound.
func get(ctx context.Context, client *http.Client, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("get %s: %w", target, errNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("get %s: unexpected status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	return data, nil
}
