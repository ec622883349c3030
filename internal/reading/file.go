package reading

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFilePath is where the export script drops the flat JSON list.
const DefaultFilePath = "static/data/reading_list.json"

// FileSource reads a JSON array of items from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Load() ([]Item, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return items, nil
}
