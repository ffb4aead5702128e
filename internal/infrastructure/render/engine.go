package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"time"

	ginrender "github.com/gin-gonic/gin/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile = "templates/layout.html"
	layoutName = "layout"
)

// Page names
const (
	PageLogin        = "login"
	PageHome         = "home"
	PagePickupList   = "pickup_list"
	PagePickupDetail = "pickup_detail"
	PageError        = "error"
)

// Layout carries the fields every page's frame needs
type Layout struct {
	Title    string
	Username string // empty for anonymous pages
}

// Engine renders the portal's HTML pages. Each page is parsed together with
// the shared layout once, at construction.
type Engine struct {
	lang     language.Tag
	location *time.Location
	printer  *message.Printer
	title    cases.Caser
	funcMap  template.FuncMap
	pages    map[string]*template.Template
}

// Option configures the engine
type Option func(*Engine)

// WithLanguage sets the display language used for numbers and casing
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) { e.lang = tag }
}

// WithLocation sets the time zone dates are shown in
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// New parses the embedded page templates
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		lang:     language.Spanish,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.printer = message.NewPrinter(e.lang)
	e.title = cases.Title(e.lang)

	e.funcMap = template.FuncMap{
		"formatDate":     e.formatDate,
		"formatDateTime": e.formatDateTime,
		"formatInt":      e.formatInt,
		"title":          e.titleCase,
		"stateLabel":     StateLabel,
		"truncate":       truncate,
		"default":        defaultString,
	}

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	e.pages = make(map[string]*template.Template, len(pages))
	for _, file := range pages {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(e.funcMap).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		e.pages[name] = tmpl
	}

	return e, nil
}

// Render writes page with data to w
func (e *Engine) Render(w io.Writer, page string, data any) error {
	tmpl, ok := e.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	// buffer so a failing template never leaves a half-written response
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("render page %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Instance implements gin's render.HTMLRender so handlers can call c.HTML(status, page, data).
// Unknown pages fall back to the error page.
func (e *Engine) Instance(page string, data any) ginrender.Render {
	tmpl, ok := e.pages[page]
	if !ok {
		tmpl = e.pages[PageError]
	}
	return ginrender.HTML{Template: tmpl, Name: layoutName, Data: data}
}

// Pages returns the sorted names of the parsed pages
func (e *Engine) Pages() []string {
	return slices.Sorted(maps.Keys(e.pages))
}

var _ ginrender.HTMLRender = (*Engine)(nil)
