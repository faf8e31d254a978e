package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/pagination"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewGrid  = "grid"
	viewTable = "table"
)

// pageData is the model of every page; each template reads the fields it
// needs.
type pageData struct {
	Title   string
	Email   string
	Flashes []notify.Notification

	LoginEmail    string
	LoginPassword string
	DemoEmail     string
	DemoPassword  string

	Users []models.User
	Page  pagination.State
	Pages []int
	Query string
	View  string

	User       models.User
	Form       models.UserUpdate
	FirstNames []string
	LastNames  []string
}

type actionsData struct {
	User  models.User
	Query string
	View  string
}

// usersURL links to the users page, keeping search and view. page 0 means
// the current page.
func usersURL(page int, q, view string) string {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if q != "" {
		v.Set("q", q)
	}
	if view != "" && view != viewGrid {
		v.Set("view", view)
	}
	if len(v) == 0 {
		return "/users"
	}
	return "/users?" + v.Encode()
}

func editURL(id int, q, view string) string {
	u := usersURL(0, q, view)
	return fmt.Sprintf("/users/%d/edit", id) + u[len("/users"):]
}

var funcs = template.FuncMap{
	"usersURL": usersURL,
	"editURL":  editURL,
	"inc":      func(i int) int { return i + 1 },
	"dec":      func(i int) int { return i - 1 },
	"actionsData": func(u models.User, q, view string) actionsData {
		return actionsData{User: u, Query: q, View: view}
	},
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{"login", "users", "edit"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render writes page with status. The page is rendered into a buffer first
// so a template error still produces a clean 500.
func (r *renderer) render(w http.ResponseWriter, status int, page string, data pageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func normalizeView(v string) string {
	if v == viewTable {
		return viewTable
	}
	return viewGrid
}
