package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"folio/models"
)

// ID names one of the closed set of visual templates. The registry is
// built from this set at startup; there is no dynamic registration.
type ID string

const (
	Minimal   ID = "minimal"
	Modern    ID = "modern"
	Creative  ID = "creative"
	Corporate ID = "corporate"
	Resume1   ID = "resume_1"
)

// All enumerates every template. Validate checks the registry covers it.
var All = []ID{Minimal, Modern, Creative, Corporate, Resume1}

// Info describes a template for pickers.
type Info struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func List() []Info {
	return []Info{
		{ID: Minimal, Name: "Minimalist", Description: "Clean, text-focused design for professionals."},
		{ID: Modern, Name: "Modern Dark", Description: "Sleek, dark-themed design with gradients."},
		{ID: Creative, Name: "Creative", Description: "Bold, artistic design with vibrant colors."},
		{ID: Corporate, Name: "Corporate", Description: "Professional, business-focused design."},
		{ID: Resume1, Name: "Resume Style", Description: "Traditional resume format for job applications."},
	}
}

// PageData is what a renderer receives: the resolved content, never the
// raw portfolio record.
type PageData struct {
	Title       string
	Description string
	Content     models.Content
}

type Renderer interface {
	Render(w io.Writer, data PageData) error
}

// markdown renderer for bios and long descriptions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// On error serve the raw text rather than a broken page.
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(buf.String())
}

var funcMap = template.FuncMap{
	"markdown": renderMarkdown,
}

// htmlRenderer wraps a parsed page template.
type htmlRenderer struct {
	tmpl *template.Template
}

func (r *htmlRenderer) Render(w io.Writer, data PageData) error {
	return r.tmpl.Execute(w, data)
}

var registry = map[ID]Renderer{
	Minimal:   &htmlRenderer{tmpl: template.Must(template.New(string(Minimal)).Funcs(funcMap).Parse(minimalHTML))},
	Modern:    &htmlRenderer{tmpl: template.Must(template.New(string(Modern)).Funcs(funcMap).Parse(modernHTML))},
	Creative:  &htmlRenderer{tmpl: template.Must(template.New(string(Creative)).Funcs(funcMap).Parse(creativeHTML))},
	Corporate: &htmlRenderer{tmpl: template.Must(template.New(string(Corporate)).Funcs(funcMap).Parse(corporateHTML))},
	Resume1:   &htmlRenderer{tmpl: template.Must(template.New(string(Resume1)).Funcs(funcMap).Parse(resumeHTML))},
}

// Lookup resolves a stored template id. Unknown ids fall back to the
// minimal template so old portfolios keep rendering.
func Lookup(id string) Renderer {
	if r, ok := registry[ID(id)]; ok {
		return r
	}
	return registry[Minimal]
}

// Valid reports whether id names a known template.
func Valid(id string) bool {
	_, ok := registry[ID(id)]
	return ok
}

// Validate errors when a template constant lacks a renderer. Called at
// startup so a half-added template fails fast instead of falling back.
func Validate() error {
	for _, id := range All {
		if _, ok := registry[id]; !ok {
			return fmt.Errorf("template %q has no renderer", id)
		}
	}
	return nil
}
