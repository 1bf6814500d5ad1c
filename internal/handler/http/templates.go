package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages holds one parsed template set per page, each combined with the layout.
type pages struct {
	index    *template.Template
	create   *template.Template
	update   *template.Template
	login    *template.Template
	register *template.Template
	errors   *template.Template
}

var blogPages = mustLoadPages()

func mustLoadPages() *pages {
	layout, err := templateFS.ReadFile("templates/layout.html")
	if err != nil {
		panic(err)
	}

	makePage := func(name string) *template.Template {
		content, err := templateFS.ReadFile("templates/" + name + ".html")
		if err != nil {
			panic(err)
		}
		t := template.Must(template.New("layout").Parse(string(layout)))
		return template.Must(t.Parse(string(content)))
	}

	return &pages{
		index:    makePage("index"),
		create:   makePage("create"),
		update:   makePage("update"),
		login:    makePage("login"),
		register: makePage("register"),
		errors:   makePage("errors"),
	}
}

// pageData is the root value every page template is executed with.
type pageData struct {
	// User is the logged-in identity, nil for anonymous visitors.
	User *models.User

	Flashes []string

	Posts []models.Post
	Post  models.Post

	PostForm models.PostForm
	AuthForm models.RegisterForm

	Status  int
	Message string
}

func (p pageData) StatusText() string {
	return http.StatusText(p.Status)
}

// render executes tmpl into a buffer first so that a template failure still
// produces a clean 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data pageData) {
	log := logger.FromRequest(r)

	if user, ok := utils.CurrentUserFromContext(r.Context()); ok {
		data.User = &user
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("func", "*Handler.render").Msg("error writing page")
	}
}
