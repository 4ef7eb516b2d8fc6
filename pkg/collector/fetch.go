package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrFetch = errors.New("failed to retrieve APIC faults page")

// FetchError reports a non-200 answer from the catalogue page.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s (%s), status code: %d", ErrFetch, e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return ErrFetch }

type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultOptions().Timeout}
	}
	return &Fetcher{client: client, logger: zap.NewNop()}
}

func (f *Fetcher) WithLogger(l *zap.Logger) *Fetcher {
	f.logger = l
	return f
}

// Fetch downloads the page body. There is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "%s: %v", url, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("fetched fault catalogue",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "read body of %s: %v", url, err)
	}
	return body, nil
}
