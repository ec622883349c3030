// Package posts resolves the on-disk Markdown post collection into listing
// metadata and rendered articles.
package posts

import (
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrInvalidSlug means the slug failed validation and was never used to
	// touch the filesystem.
	ErrInvalidSlug = errors.New("posts: invalid slug")
	// ErrNotFound means the slug is well-formed but no candidate directory
	// contains a matching post.
	ErrNotFound = errors.New("posts: post not found")
)

// Slugs come from URL path segments; anything outside this set is rejected
// before path construction so "../" can never reach the filesystem.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Meta identifies one post in the blog index.
type Meta struct {
	Slug  string
	Title string
}

// Post is a fully rendered article.
type Post struct {
	Title string
	HTML  template.HTML
}

// Catalog reads posts from the first existing directory in a fixed
// preference order. Directories are never merged. It holds no mutable
// state; every call re-reads the filesystem.
type Catalog struct {
	dirs []string
}

// New returns a catalog over the given candidate directories, checked in
// order.
func New(dirs ...string) *Catalog {
	return &Catalog{dirs: dirs}
}

// List returns metadata for every .md file in the first directory that can
// be read, sorted by slug descending so date-prefixed slugs surface newest
// first. A missing or unreadable directory yields an empty list.
func (c *Catalog) List() []Meta {
	var metas []Meta
	for _, dir := range c.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
				continue
			}
			slug := strings.TrimSuffix(e.Name(), ".md")
			title := "Untitled"
			if b, err := os.ReadFile(filepath.Join(dir, e.Name())); err == nil {
				first, _, _ := strings.Cut(string(b), "\n")
				if t := headingText(first); t != "" {
					title = t
				}
			}
			metas = append(metas, Meta{Slug: slug, Title: title})
		}
		break
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Slug > metas[j].Slug })
	return metas
}

// Get validates the slug, locates {slug}.md in the first directory that has
// it, and renders it. Returns ErrInvalidSlug or ErrNotFound accordingly.
func (c *Catalog) Get(slug string) (Post, error) {
	if !slugPattern.MatchString(slug) {
		return Post{}, ErrInvalidSlug
	}

	for _, dir := range c.dirs {
		b, err := os.ReadFile(filepath.Join(dir, slug+".md"))
		if err != nil {
			continue
		}
		first, body, _ := strings.Cut(string(b), "\n")
		title := headingText(first)
		if title == "" {
			title = "Untitled"
		}
		html, err := Render(body)
		if err != nil {
			return Post{}, err
		}
		return Post{Title: title, HTML: html}, nil
	}
	return Post{}, ErrNotFound
}

// headingText strips leading '#' markers and whitespace from a heading line.
func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}
