package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"flixhub/pkg/models"
)

// HTTPSource fetches a catalog document from a JSON endpoint.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPSource) Name() string { return "http:" + s.URL }

func (s *HTTPSource) FetchAll(ctx context.Context) ([]*models.Work, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	works, err := DecodeWorks(body)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return works, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
