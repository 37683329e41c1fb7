package httpapp

import (
	"bytes"
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/topmovies/internal/app"
	"github.com/cesargomez89/topmovies/internal/constants"
	"github.com/cesargomez89/topmovies/internal/logger"
	"github.com/cesargomez89/topmovies/internal/metrics"
	"github.com/cesargomez89/topmovies/web"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Movies  *app.MovieService
	DB      Pinger
	Metrics *metrics.Metrics
	Logger  *logger.Logger
}

func NewHandler(movies *app.MovieService, db Pinger, m *metrics.Metrics, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		Movies:  movies,
		DB:      db,
		Metrics: m,
		Logger:  log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Use(RequestLogger(h.Logger))
	r.Use(Instrument(h.Metrics))
	r.Use(http.NewCrossOriginProtection().Handler)

	r.Get("/", h.IndexPage)
	r.Get("/add", h.AddPage)
	r.Post("/add", h.AddSubmit)
	r.Get("/find", h.FindMovie)
	r.Get("/edit", h.EditPage)
	r.Post("/edit", h.EditSubmit)
	r.Get("/delete", h.DeleteMovie)

	r.Get("/healthz", h.Healthz)
	r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	r.Method(http.MethodGet, "/static/*", StaticFiles())
}

// StaticFiles serves the embedded static directory under /static/. Paths are
// resolved inside that directory only and directories are never listed.
func StaticFiles() http.Handler {
	sub, err := fs.Sub(web.Files, "static")
	if err != nil {
		panic(err)
	}
	files := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/static/" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) RenderPage(w http.ResponseWriter, pageTmpl string, data interface{}) {
	h.RenderPageStatus(w, http.StatusOK, pageTmpl, data)
}

// RenderPageStatus renders into a buffer first so a template failure can
// still be reported as a 500 instead of a truncated page.
func (h *Handler) RenderPageStatus(w http.ResponseWriter, status int, pageTmpl string, data interface{}) {
	tmpl, err := template.ParseFS(web.Files,
		"templates/base.html",
		"templates/"+pageTmpl,
	)
	if err != nil {
		h.Logger.Error("Failed to parse template", "template", pageTmpl, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		h.Logger.Error("Failed to render template", "template", pageTmpl, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", constants.MimeTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
