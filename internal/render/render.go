// Package render turns a catalog index into the static HTML documents of
// the published site: the landing page (index.html) and the schema
// specification page (spec.html).
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openinstructions/catalogbuild/internal/catalog"
	"github.com/openinstructions/catalogbuild/internal/config"
	cberrors "github.com/openinstructions/catalogbuild/internal/errors"
)

// Generated page file names inside the dist directory.
const (
	IndexPageName = "index.html"
	SpecPageName  = "spec.html"
)

// descriptionLimit caps card descriptions on the landing page.
const descriptionLimit = 100

// Renderer generates the static site pages from a catalog index.
type Renderer struct {
	site config.SiteConfig
	log  *slog.Logger

	indexTpl *template.Template
	specTpl  *template.Template
}

// NewRenderer creates a Renderer. Template parsing happens once here; a
// parse failure is a programming error and is returned immediately.
func NewRenderer(site config.SiteConfig, log *slog.Logger) (*Renderer, error) {
	if log == nil {
		log = slog.Default()
	}

	indexTpl, err := template.New("index").Parse(indexPageTemplate)
	if err != nil {
		return nil, cberrors.RenderError(IndexPageName, fmt.Errorf("parse template: %w", err))
	}
	specTpl, err := template.New("spec").Parse(specPageTemplate)
	if err != nil {
		return nil, cberrors.RenderError(SpecPageName, fmt.Errorf("parse template: %w", err))
	}

	return &Renderer{site: site, log: log, indexTpl: indexTpl, specTpl: specTpl}, nil
}

// categoryView is one project type section on the landing page.
type categoryView struct {
	Key     string
	Title   string
	Entries []entryView
}

// entryView is one instruction card.
type entryView struct {
	Path        string
	Title       string
	Description template.HTML
	Version     string
}

type indexPageData struct {
	Site        config.SiteConfig
	Version     string
	UpdatedDate string
	Categories  []categoryView
}

type specPageData struct {
	Site config.SiteConfig
}

// RenderIndex renders the landing page for the given catalog index.
func (r *Renderer) RenderIndex(index *catalog.Index) ([]byte, error) {
	data := indexPageData{
		Site:        r.site,
		Version:     index.Version,
		UpdatedDate: datePart(index.UpdatedAt),
		Categories:  categoriesOf(index),
	}

	var buf bytes.Buffer
	if err := r.indexTpl.Execute(&buf, data); err != nil {
		return nil, cberrors.RenderError(IndexPageName, err)
	}
	r.log.Info("Generated landing page", slog.Int("categories", len(data.Categories)))
	return buf.Bytes(), nil
}

// RenderSpec renders the schema specification page.
func (r *Renderer) RenderSpec() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.specTpl.Execute(&buf, specPageData{Site: r.site}); err != nil {
		return nil, cberrors.RenderError(SpecPageName, err)
	}
	return buf.Bytes(), nil
}

// categoriesOf projects the index into display order. Category sections
// are sorted by key so regenerating the site from the same index yields
// identical pages; entry order within a category is the index's own.
func categoriesOf(index *catalog.Index) []categoryView {
	keys := make([]string, 0, len(index.Projects))
	for key := range index.Projects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	views := make([]categoryView, 0, len(keys))
	for _, key := range keys {
		entries := index.Projects[key]
		view := categoryView{
			Key:     key,
			Title:   CategoryTitle(key),
			Entries: make([]entryView, 0, len(entries)),
		}
		for _, entry := range entries {
			view.Entries = append(view.Entries, entryView{
				Path:        entry.Path,
				Title:       entry.Title,
				Description: descriptionHTML(entry.Description),
				Version:     entry.Version,
			})
		}
		views = append(views, view)
	}
	return views
}

var titleCaser = cases.Title(language.English)

// CategoryTitle turns a category key into its display heading:
// underscores become spaces and words are title-cased ("web_app" ->
// "Web App").
func CategoryTitle(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// descriptionHTML renders an entry description as inline HTML. Authors
// write Markdown in description fields; anything over the card limit is
// truncated first. A render failure degrades to escaped plain text.
func descriptionHTML(description string) template.HTML {
	text := truncate(description, descriptionLimit)
	if text == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// datePart returns the date portion of an ISO-8601 timestamp.
func datePart(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 {
		return ts[:i]
	}
	return ts
}
