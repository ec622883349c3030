package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/jambonne/site/internal/posts"
	"github.com/jambonne/site/internal/reading"
	"github.com/jambonne/site/internal/site"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type App struct {
	pages   map[string]*template.Template
	catalog *posts.Catalog
	list    *reading.List
	meta    site.Meta
}

type ViewData struct {
	Site  site.Meta
	Title string

	// blog index
	Posts []posts.Meta

	// article page
	Post posts.Post

	// reading page
	Reading reading.View
}

func newApp(catalog *posts.Catalog, list *reading.List, meta site.Meta) (*App, error) {
	base := template.New("layout.html").Funcs(template.FuncMap{
		"tojson": func(v interface{}) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
	})

	pages := map[string]*template.Template{}
	for _, page := range []string{"index", "blog", "article", "cv", "reading"} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		// Each page file defines the same block names (title/content).
		// Parse layout, then page to override blocks.
		if _, err := t.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html"); err != nil {
			return nil, err
		}
		pages[page] = t
	}

	return &App{
		pages:   pages,
		catalog: catalog,
		list:    list,
		meta:    meta,
	}, nil
}

func (a *App) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.handleLanding)
	mux.HandleFunc("GET /blog", a.handleBlog)
	mux.HandleFunc("GET /blog/{slug}", a.handleBlogPost)
	mux.HandleFunc("GET /cv", a.handleCV)
	mux.HandleFunc("GET /reading", a.handleReading)

	mux.HandleFunc("GET /static/{path...}", a.handleStatic)

	mux.HandleFunc("GET /api/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{\"ok\":true}\n"))
	})

	return a.withRequestLog(mux)
}
