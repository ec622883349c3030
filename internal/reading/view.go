package reading

import (
	"strconv"
	"time"
)

// The view mirrors the mind-map JSON schema of the richer visualization
// service. Clusters, positions, keywords and edges are always emitted
// zeroed: the page only needs nodes, but the frontend consumes the full
// shape.

// Node is one article on the mind-map page.
type Node struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Cluster        int      `json:"cluster"`
	Position       Position `json:"position"`
	Keywords       []string `json:"keywords"`
	ContentPreview string   `json:"content_preview"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

type Cluster struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Articles []int    `json:"articles"`
}

// Data is the node graph handed to the reading template.
type Data struct {
	ID        string            `json:"id"`
	Nodes     []Node            `json:"nodes"`
	Edges     []Edge            `json:"edges"`
	Clusters  []Cluster         `json:"clusters"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt string            `json:"created_at"`
}

// View is what the /reading page renders: either a node graph or an
// explicit empty-state message.
type View struct {
	Reading *Data
	Error   string
}

// BuildView projects the list into a fresh View. The list itself is never
// mutated.
func BuildView(list *List) View {
	items := list.Items()
	if len(items) == 0 {
		return View{Error: "No reading list items found"}
	}

	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, Node{
			ID:       strconv.Itoa(i),
			Title:    item.Title,
			URL:      item.URL,
			Keywords: []string{},
		})
	}

	return View{Reading: &Data{
		ID:        "reading-list",
		Nodes:     nodes,
		Edges:     []Edge{},
		Clusters:  []Cluster{},
		Metadata:  map[string]string{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}}
}
