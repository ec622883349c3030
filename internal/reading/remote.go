package reading

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteSource fetches the reading list as a JSON array from an HTTP
// endpoint, typically the export service.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

func (s RemoteSource) Load() ([]Item, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.URL, err)
	}
	return items, nil
}
