// Package directory fetches and parses the dialing-code directory.
package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

var _ model.DirectorySource = (*HTTPSource)(nil)

const maxBodySize = 8 << 20

// HTTPSource fetches the directory from a restcountries-compatible endpoint.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates a source for url. A nil client uses http.DefaultClient.
func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

// Fetch downloads and parses the directory.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.DirectoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory source returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	return Parse(body)
}
