package posts

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md carries every optional extension: GFM (tables, strikethrough, task
// lists, autolinks), footnotes, definition lists, typographer and heading
// attributes. Raw HTML in the source stays escaped, so the output is
// structural HTML only.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
		extension.DefinitionList,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAttribute(),
	),
)

// Render converts markdown text to HTML (safe to inject as template.HTML).
func Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
