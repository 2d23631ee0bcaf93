// Package web holds the HTML form pages and the markdown renderer they use.
package web

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// Markdown renders LLM output (GFM, tables included) to sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

// DataURI embeds a download in the page so nothing has to be kept server side.
func DataURI(contentType string, data []byte) template.URL {
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// Templates parses the embedded pages.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"markdown": Markdown,
		"selected": func(a, b string) bool { return a == b },
		"contains": func(list []string, v string) bool {
			for _, s := range list {
				if s == v {
					return true
				}
			}
			return false
		},
	}).ParseFS(templateFS, "templates/*.html")
}
