package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"floralblossom/internal/domain"
)

// ErrUnavailable wraps every fetch or parse failure of the catalog
// source. The presentation layer maps it to a user-visible fallback;
// nothing here retries.
var ErrUnavailable = errors.New("catalog unavailable")

// Loader fetches the product list from an external JSON resource.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(rawURL string) *Loader {
	return &Loader{
		url:    rawURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches and decodes the full product list. The request is
// cache-busted with a millisecond timestamp so a stale intermediary
// never serves yesterday's catalog. Either the whole list loads or the
// call fails; there are no partial results.
func (l *Loader) Load(ctx context.Context) ([]domain.Product, error) {
	u, err := url.Parse(l.url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrUnavailable, err)
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return products, nil
}
