package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/client/notify"
	"github.com/dmitrijs2005/userhub/internal/client/services"
	"github.com/dmitrijs2005/userhub/internal/client/session"
	"github.com/dmitrijs2005/userhub/internal/client/users"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/go-chi/chi/v5"
)

func (s *Server) page(r *http.Request, ws *Workspace, title string) pageData {
	return pageData{
		Title:   title,
		Email:   ws.Auth.Current(r.Context()).Email,
		Flashes: ws.Flashes.Drain(),
	}
}

func (s *Server) show(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if err := s.views.render(w, status, name, data); err != nil {
		s.logger.Error(r.Context(), "error rendering page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// handleLoginPage shows the sign-in form. Any token left in the store is
// dropped first.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	ws := workspaceFrom(r.Context())
	if err := ws.Auth.Reset(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "error clearing session", "error", err)
	}

	data := s.page(r, ws, "Sign in")
	data.LoginEmail = common.DemoEmail
	data.LoginPassword = common.DemoPassword
	data.DemoEmail = common.DemoEmail
	data.DemoPassword = common.DemoPassword
	s.show(w, r, http.StatusOK, "login", data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ws := workspaceFrom(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")

	if err := ws.Auth.Login(r.Context(), email, password); err != nil {
		data := s.page(r, ws, "Sign in")
		data.LoginEmail = email
		data.DemoEmail = common.DemoEmail
		data.DemoPassword = common.DemoPassword
		s.show(w, r, http.StatusUnauthorized, "login", data)
		return
	}

	ws.Dashboard.Reset()
	http.Redirect(w, r, session.UsersPath, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ws := workspaceFrom(r.Context())
	if err := ws.Auth.Logout(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "error clearing session", "error", err)
	}
	ws.Dashboard.Reset()
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}

// handleUsers renders the current page. ?page=N moves to page N first; an
// out-of-range N is ignored. ?q filters and ?view picks grid or table, both
// purely presentational.
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws := workspaceFrom(ctx)
	q := r.URL.Query()

	_ = ws.Dashboard.Open(ctx)

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p != ws.Dashboard.Page().Current {
		_, _ = ws.Dashboard.GoTo(ctx, p)
	}

	data := s.page(r, ws, "Users")
	data.Query = strings.TrimSpace(q.Get("q"))
	data.View = normalizeView(q.Get("view"))
	data.Users = ws.Dashboard.Visible(data.Query)
	data.Page = ws.Dashboard.Page()
	data.Pages = ws.Dashboard.Pages()
	s.show(w, r, http.StatusOK, "users", data)
}

func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws := workspaceFrom(ctx)
	q := r.URL.Query()
	query, view := strings.TrimSpace(q.Get("q")), normalizeView(q.Get("view"))

	id, ok := userID(r)
	var u models.User
	if ok {
		u, ok = ws.Dashboard.Find(id)
	}
	if !ok {
		notify.Error(ctx, ws.Flashes, services.MsgUserNotOnPage)
		http.Redirect(w, r, usersURL(0, query, view), http.StatusSeeOther)
		return
	}

	s.showEdit(w, r, ws, http.StatusOK, u, models.UserUpdate{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, query, view)
}

func (s *Server) showEdit(w http.ResponseWriter, r *http.Request, ws *Workspace, status int, u models.User, form models.UserUpdate, query, view string) {
	data := s.page(r, ws, "Edit user")
	data.User = u
	data.Form = form
	data.Query = query
	data.View = view
	data.FirstNames = users.FirstNames[:]
	data.LastNames = users.LastNames[:]
	s.show(w, r, status, "edit", data)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws := workspaceFrom(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	query, view := strings.TrimSpace(r.PostForm.Get("q")), normalizeView(r.PostForm.Get("view"))
	back := usersURL(0, query, view)

	id, ok := userID(r)
	if !ok {
		notify.Error(ctx, ws.Flashes, services.MsgUserNotOnPage)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	form := models.UserUpdate{
		FirstName: r.PostForm.Get("first_name"),
		LastName:  r.PostForm.Get("last_name"),
		Email:     r.PostForm.Get("email"),
	}

	_, err := ws.Dashboard.Edit(ctx, id, form)
	if errors.Is(err, common.ErrValidation) {
		if u, found := ws.Dashboard.Find(id); found {
			s.showEdit(w, r, ws, http.StatusUnprocessableEntity, u, form, query, view)
			return
		}
	}

	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ws := workspaceFrom(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	back := usersURL(0, strings.TrimSpace(r.PostForm.Get("q")), normalizeView(r.PostForm.Get("view")))

	id, ok := userID(r)
	if !ok {
		notify.Error(ctx, ws.Flashes, services.MsgUserNotOnPage)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	_ = ws.Dashboard.Delete(ctx, id)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func userID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
