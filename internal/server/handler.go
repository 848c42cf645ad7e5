package server

import (
	"bytes"
	"html"
	"net/http"

	"github.com/3-lines-studio/mimir"
	"github.com/3-lines-studio/mimir/markup"
)

// Component produces a fresh description on every request.
type Component func() markup.Node

type Route struct {
	Pattern   string
	Name      string
	Component Component
}

// Router is the minimal surface the preview mounts onto; both
// http.ServeMux and chi.Router satisfy it.
type Router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

type handler struct {
	name      string
	component Component
	title     string
}

// NewHandler serves one component rendered into the HTML shell.
func NewHandler(name string, component Component, title string) http.Handler {
	return &handler{name: name, component: component, title: title}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	result, err := mimir.Render(h.component())
	if err != nil {
		serveError(w, err)
		return
	}
	defer result.Unmount()

	page, err := renderShell(h.title+" — "+h.name, result.HTML())
	if err != nil {
		serveError(w, err)
		return
	}

	serveHTML(w, http.StatusOK, page)
}

// Mount registers every route plus an index page listing them.
func Mount(r Router, routes []Route, title string) {
	for _, route := range routes {
		r.Handle(route.Pattern, NewHandler(route.Name, route.Component, title))
	}
	r.Handle("/", indexHandler(routes, title))
}

func indexHandler(routes []Route, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}

		var buf bytes.Buffer
		err := indexTemplate.Execute(&buf, map[string]any{
			"Title":  title,
			"Routes": routes,
		})
		if err != nil {
			serveError(w, err)
			return
		}

		serveHTML(w, http.StatusOK, buf.String())
	})
}

func serveHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func serveError(w http.ResponseWriter, err error) {
	var buf bytes.Buffer
	if tmplErr := errorTemplate.Execute(&buf, map[string]any{"Message": err.Error()}); tmplErr != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(err.Error()) + "</pre></body></html>"))
		return
	}

	serveHTML(w, http.StatusInternalServerError, buf.String())
}
