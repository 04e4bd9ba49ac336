// Package render parses the view templates once at startup and executes them
// per request. Each page template is parsed into its own clone of the layouts,
// so pages may define the same block names without clashing.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

const layoutName = "main"

// PageDef ties a page name used by handlers to its template file and title.
type PageDef struct {
	Name     string
	Template string
	Title    string
}

// Pages lists every page the admin serves.
var Pages = []PageDef{
	{Name: "index", Template: "index.html", Title: "Esports Admin"},
	{Name: "teams", Template: "teams.html", Title: "Teams"},
	{Name: "games", Template: "games.html", Title: "Games"},
	{Name: "tournaments", Template: "tournaments.html", Title: "Tournaments"},
	{Name: "matches", Template: "matches.html", Title: "Matches"},
	{Name: "matchTeams", Template: "matchTeams.html", Title: "Match Teams"},
	{Name: "tournamentMatches", Template: "tournamentMatches.html", Title: "Tournament Matches"},
}

// PageData is what every template receives. Active names the nav entry to highlight.
type PageData struct {
	Title  string
	Active string
	Data   any
}

type TemplateSet struct {
	pages  map[string]*template.Template
	titles map[string]string
}

// New parses layouts/*.html and pages/<page>.html from views.
// Any parse error fails startup rather than the first request.
func New(views fs.FS) (*TemplateSet, error) {
	layouts, err := template.New(layoutName).Funcs(funcs).ParseFS(views, "layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageFS, err := fs.Sub(views, "pages")
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		pages:  make(map[string]*template.Template, len(Pages)),
		titles: make(map[string]string, len(Pages)),
	}
	for _, p := range Pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		if _, err := t.ParseFS(pageFS, p.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", p.Template, err)
		}
		ts.pages[p.Name] = t
		ts.titles[p.Name] = p.Title
	}
	return ts, nil
}

// Render executes the page into a buffer first so that a template error
// never leaves a half-written page; the caller answers with 500 instead.
func (ts *TemplateSet) Render(w http.ResponseWriter, page string, data PageData) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}
	if data.Title == "" {
		data.Title = ts.titles[page]
	}
	if data.Active == "" {
		data.Active = page
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
