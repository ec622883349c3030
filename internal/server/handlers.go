package server

import (
	"errors"
	"net/http"

	"github.com/jambonne/site/internal/logger"
	"github.com/jambonne/site/internal/posts"
	"github.com/jambonne/site/internal/reading"
)

func (a *App) render(w http.ResponseWriter, page string, data ViewData) {
	data.Site = a.meta
	if data.Title == "" {
		data.Title = a.meta.Title
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.pages[page].Execute(w, data); err != nil {
		logger.Error("render %s: %v", page, err)
	}
}

func (a *App) handleLanding(w http.ResponseWriter, r *http.Request) {
	a.render(w, "index", ViewData{})
}

func (a *App) handleBlog(w http.ResponseWriter, r *http.Request) {
	a.render(w, "blog", ViewData{Title: "Blog", Posts: a.catalog.List()})
}

func (a *App) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := a.catalog.Get(slug)
	switch {
	case errors.Is(err, posts.ErrInvalidSlug):
		http.Error(w, "invalid post slug", http.StatusBadRequest)
		return
	case errors.Is(err, posts.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		logger.Error("get post %q: %v", slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	a.render(w, "article", ViewData{Title: post.Title, Post: post})
}

func (a *App) handleCV(w http.ResponseWriter, r *http.Request) {
	a.render(w, "cv", ViewData{Title: "CV"})
}

func (a *App) handleReading(w http.ResponseWriter, r *http.Request) {
	a.render(w, "reading", ViewData{Title: "Reading", Reading: reading.BuildView(a.list)})
}
