// Package gallery renderiza la galería de gatos como HTML del lado del servidor.
// El estado de la UI (q y trait) viaja en el query string, así que cada request
// vuelve a filtrar el catálogo completo.
package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"cat-gallery/internal/domain/cats"
	"cat-gallery/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Handler struct {
	svc  *cats.Service
	log  logger.Logger
	tmpl *template.Template
}

func New(svc *cats.Service, log logger.Logger) (*Handler, error) {
	if log == nil {
		log = logger.NewNop()
	}

	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{svc: svc, log: log, tmpl: tmpl}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/cats/{catID}", h.profile)
}

type traitOption struct {
	Value    string
	Selected bool
}

type indexData struct {
	Title  string
	Query  string
	Trait  string
	Traits []traitOption
	Cats   []cats.Cat
	Count  int
	Empty  bool
}

type profileData struct {
	Title string
	Cat   cats.Cat
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	q := cats.QueryFromRequest(r)
	res := h.svc.Search(r.Context(), q)

	traits := h.svc.Traits(r.Context())
	opts := make([]traitOption, 0, len(traits))
	for _, t := range traits {
		opts = append(opts, traitOption{Value: t, Selected: t == q.Trait})
	}

	h.render(w, "index", http.StatusOK, indexData{
		Title:  "Котогалерея",
		Query:  q.Text,
		Trait:  q.Trait,
		Traits: opts,
		Cats:   res.Cats,
		Count:  res.Count,
		Empty:  res.Empty,
	})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "catID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.render(w, "profile", http.StatusOK, profileData{
		Title: c.Name + " · Котогалерея",
		Cat:   c,
	})
}

// render ejecuta en un buffer: si el template falla no queda una página a medias.
func (h *Handler) render(w http.ResponseWriter, name string, status int, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.Error("render template failed", map[string]any{"template": name, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// equivalente a text-transform: capitalize
		"capitalize": func(s string) string {
			return cases.Title(language.Russian, cases.NoLower).String(s)
		},
	}
}
