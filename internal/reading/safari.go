package reading

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"howett.net/plist"
)

// readingListTitle is the fixed title Safari gives the reading-list
// container inside Bookmarks.plist.
const readingListTitle = "com.apple.ReadingList"

// DefaultBookmarksPath returns the Safari bookmark store of the current
// user.
func DefaultBookmarksPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return filepath.Join(home, "Library", "Safari", "Bookmarks.plist")
}

// SafariSource extracts the reading list from a Safari Bookmarks.plist
// (binary or XML).
type SafariSource struct {
	Path string

	// now is overridable for tests; DateAdded falls back to it.
	now func() time.Time
}

type bookmarkNode struct {
	Title         string            `plist:"Title"`
	Children      []bookmarkNode    `plist:"Children"`
	URLString     string            `plist:"URLString"`
	URIDictionary map[string]string `plist:"URIDictionary"`
	DateAdded     time.Time         `plist:"DateAdded"`
}

func (s SafariSource) Load() ([]Item, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	var root bookmarkNode
	if _, err := plist.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("no children in bookmarks plist %s", s.Path)
	}

	now := s.now
	if now == nil {
		now = time.Now
	}

	var items []Item
	for _, child := range root.Children {
		if child.Title != readingListTitle {
			continue
		}
		for _, entry := range child.Children {
			url := entry.URLString
			if url == "" {
				url = "No URL"
			}
			title := entry.URIDictionary["title"]
			if title == "" {
				title = url
			}
			dateAdded := now().UTC().Format(time.RFC3339)
			if !entry.DateAdded.IsZero() {
				dateAdded = entry.DateAdded.UTC().Format(time.RFC3339)
			}
			items = append(items, Item{Title: title, URL: url, DateAdded: dateAdded})
		}
		break
	}
	return items, nil
}
