// Package reading loads the reading list from one of several backends at
// startup and projects it into the mind-map view served on /reading.
package reading

import (
	"github.com/jambonne/site/internal/logger"
)

// Item is one normalized reading-list entry. DateAdded is ISO-8601.
type Item struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	DateAdded string `json:"date_added"`
}

// Source yields the full reading list from one backend.
type Source interface {
	Load() ([]Item, error)
}

// List is the immutable, process-wide reading list. Built once before the
// server starts; request handlers only ever read it.
type List struct {
	items []Item
}

// NewList wraps items in an immutable List.
func NewList(items []Item) *List {
	return &List{items: items}
}

// Items returns the loaded entries in source order.
func (l *List) Items() []Item {
	return l.items
}

// Load runs the source exactly once. A failed source is logged and degrades
// to an empty list; it is never surfaced as a request-time error.
func Load(src Source) *List {
	if src == nil {
		return NewList(nil)
	}
	items, err := src.Load()
	if err != nil {
		logger.Error("failed to load reading list: %v", err)
		return NewList(nil)
	}
	logger.Info("loaded %d reading list items", len(items))
	return NewList(items)
}
