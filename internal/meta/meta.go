// Package meta describes the document head published for the dashboard page:
// title, description, link-preview tags and icon paths.
package meta

import (
	"fmt"
	"html/template"
	"io"
)

const (
	Title       = "FlowSync AI - AI-Powered Productivity Assistant"
	AppName     = "FlowSync AI"
	Tagline     = "AI-Powered Productivity Assistant"
	ThemeColor  = "#3b82f6"
	description = "FlowSync AI is an intelligent productivity assistant that automates workflows, optimizes time management, and enhances remote work efficiency using artificial intelligence."
	previewText = "Boost your productivity with AI-powered workflow automation and intelligent time management tools."
	previewPath = "/og-image.png"
)

// Tag is a <meta> element. Exactly one of Name and Property is set.
type Tag struct {
	Name     string
	Property string
	Content  string
}

// Link is a <link> element.
type Link struct {
	Rel   string
	Type  string
	Sizes string
	Href  string
}

type Head struct {
	Title string
	Meta  []Tag
	Links []Link
}

// Default returns the fixed head of the dashboard page. The asset pipeline
// must serve files at every Link href.
func Default() *Head {
	return &Head{
		Title: Title,
		Meta: []Tag{
			{Name: "description", Content: description},
			{Name: "viewport", Content: "width=device-width, initial-scale=1"},
			{Name: "keywords", Content: "AI, productivity, remote work, automation, time management, workflow, task management, artificial intelligence"},
			{Name: "author", Content: "Vinesh Thota"},
			{Property: "og:title", Content: Title},
			{Property: "og:description", Content: previewText},
			{Property: "og:type", Content: "website"},
			{Property: "og:image", Content: previewPath},
			{Name: "twitter:card", Content: "summary_large_image"},
			{Name: "twitter:title", Content: Title},
			{Name: "twitter:description", Content: previewText},
			{Name: "twitter:image", Content: previewPath},
			{Name: "theme-color", Content: ThemeColor},
		},
		Links: []Link{
			{Rel: "icon", Href: "/favicon.ico"},
			{Rel: "apple-touch-icon", Sizes: "180x180", Href: "/apple-touch-icon.png"},
			{Rel: "icon", Type: "image/png", Sizes: "32x32", Href: "/favicon-32x32.png"},
			{Rel: "icon", Type: "image/png", Sizes: "16x16", Href: "/favicon-16x16.png"},
			{Rel: "manifest", Href: "/site.webmanifest"},
		},
	}
}

var headTemplate = template.Must(template.New("head").Parse(`<head>
  <title>{{.Title}}</title>
{{- range .Meta}}
  {{if .Property}}<meta property="{{.Property}}" content="{{.Content}}" />{{else}}<meta name="{{.Name}}" content="{{.Content}}" />{{end}}
{{- end}}
{{- range .Links}}
  <link rel="{{.Rel}}"{{if .Type}} type="{{.Type}}"{{end}}{{if .Sizes}} sizes="{{.Sizes}}"{{end}} href="{{.Href}}" />
{{- end}}
</head>
`))

// WriteHTML renders the head as an HTML <head> element.
func (h *Head) WriteHTML(w io.Writer) error {
	if err := headTemplate.Execute(w, h); err != nil {
		return fmt.Errorf("rendering head: %w", err)
	}
	return nil
}
