package api

import (
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelpick/reelpick/internal/config"
	"github.com/reelpick/reelpick/internal/discovery"
	"github.com/reelpick/reelpick/internal/metadata"
	"github.com/reelpick/reelpick/web"
)

// Page template names.
const (
	pageIndex = "index.html"
	pageMovie = "movie.html"
)

// Renderer renders the embedded page templates for echo.
// Each page is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	fsys := web.TemplatesFS()
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{pageIndex, pageMovie} {
		tmpl, err := template.New(name).ParseFS(fsys, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

// pageBase carries the fields the shared layout needs.
type pageBase struct {
	Title         string
	Version       string
	DeveloperMode bool
}

type indexPage struct {
	pageBase
	Form    discovery.SelectionForm
	Genres  []metadata.Genre
	Posters []metadata.Poster
	Error   string
}

type moviePage struct {
	pageBase
	Form      discovery.SelectionForm
	Selection discovery.Selection
}

func (s *Server) base(title string) pageBase {
	return pageBase{
		Title:         title,
		Version:       config.Version,
		DeveloperMode: s.cfg.DeveloperMode,
	}
}

// indexPage renders the selection form and poster wall.
// GET /
func (s *Server) indexPage(c echo.Context) error {
	return s.renderIndex(c, http.StatusOK, discovery.SelectionForm{SelectionType: string(discovery.ModeRandom)}, "")
}

func (s *Server) renderIndex(c echo.Context, status int, form discovery.SelectionForm, message string) error {
	ctx := c.Request().Context()
	return c.Render(status, pageIndex, indexPage{
		pageBase: s.base("Pick a movie"),
		Form:     form,
		Genres:   s.metadataService.Genres(ctx),
		Posters:  s.metadataService.Posters(ctx),
		Error:    message,
	})
}

// selectPage runs a selection and renders the movie page, or the form with
// the error message when nothing could be picked.
// POST /select
func (s *Server) selectPage(c echo.Context) error {
	var form discovery.SelectionForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	selection, err := s.discoveryService.Select(ctx, form)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.renderIndex(c, discovery.StatusFor(err), form, selection.Error)
	}

	return c.Render(http.StatusOK, pageMovie, moviePage{
		pageBase:  s.base(selection.Movie.Title),
		Form:      form,
		Selection: selection,
	})
}
