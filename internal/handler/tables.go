package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/errors"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
	"github.com/indigo-rhapsody/indigo-admin/internal/resource"
)

// backField carries the list query through a mutation so the admin lands on
// the same filtered page afterwards.
const backField = "back"

type formPage struct {
	resource.Meta
	Action  string
	Values  map[string]string
	Editing bool
	ID      string
}

// rowsResponse is the body of the JSON rows endpoint.
type rowsResponse struct {
	Gen     uint64            `json:"gen"`
	Headers []resource.Header `json:"headers"`
	Rows    []resource.Row    `json:"rows"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	PrevURL string            `json:"prevUrl,omitempty"`
	NextURL string            `json:"nextUrl,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) (resource.View, bool) {
	name := chi.URLParam(r, "table")
	v, ok := h.Tables.Get(name)
	if !ok {
		// Unknown pages behave like unknown paths; API and form posts get 404.
		if r.Method == http.MethodGet && !strings.HasPrefix(r.URL.Path, "/api/") {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		} else {
			http.NotFound(w, r)
		}
		return nil, false
	}
	return v, true
}

func (h *Handler) TableHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	page, err := v.Load(r.Context(), middleware.Session(r), resource.ParseQuery(r.URL.Query()))
	if err != nil {
		if apiclient.IsAuth(err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		logger.Log.WarnContext(r.Context(), "loading table", "table", page.Name, "error", err)
		h.renderTemplateWithError(w, r, "table.html", page, err.Error())
		return
	}
	h.renderTemplate(w, r, "table.html", page)
}

// RowsAPIHandler serves a table page as JSON for live search. The gen
// parameter orders requests of one admin on one table: an answer whose
// generation was overtaken while the backend was queried gets 409.
func (h *Handler) RowsAPIHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	sess := middleware.Session(r)
	key := sess.UserID() + "/" + v.Meta().Name
	gen, guarded := parseGen(r.URL.Query().Get("gen"))
	if guarded && !h.Latest.Begin(key, gen) {
		writeJSON(w, r, http.StatusConflict, errorResponse{Error: "superseded"})
		return
	}

	page, err := v.Load(r.Context(), sess, resource.ParseQuery(r.URL.Query()))
	if guarded && !h.Latest.Current(key, gen) {
		writeJSON(w, r, http.StatusConflict, errorResponse{Error: "superseded"})
		return
	}
	if err != nil {
		status := http.StatusBadGateway
		if apiclient.IsAuth(err) {
			status = http.StatusUnauthorized
		}
		writeJSON(w, r, status, errorResponse{Error: err.Error()})
		return
	}

	resp := rowsResponse{
		Gen:     gen,
		Headers: page.Headers,
		Rows:    page.Rows,
		Total:   page.Total,
		Page:    page.PageNum,
		Pages:   page.Pages,
	}
	if resp.Rows == nil {
		resp.Rows = []resource.Row{}
	}
	if page.HasPrev() {
		resp.PrevURL = page.PrevURL()
	}
	if page.HasNext() {
		resp.NextURL = page.NextURL()
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func parseGen(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	gen, err := strconv.ParseUint(s, 10, 64)
	return gen, err == nil
}

// listURL rebuilds the list location from the back field. Only the query is
// taken from the form, so the redirect never leaves the table.
func listURL(name string, r *http.Request) string {
	target := "/" + name
	back, err := url.ParseQuery(r.PostFormValue(backField))
	if err != nil {
		return target
	}
	if enc := resource.ParseQuery(back).Values().Encode(); enc != "" {
		target += "?" + enc
	}
	return target
}

func (h *Handler) ActionHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	name := v.Meta().Name
	id := chi.URLParam(r, "id")
	action := chi.URLParam(r, "action")
	target := listURL(name, r)

	if err := v.Act(r.Context(), middleware.Session(r), id, action, r.PostForm); err != nil {
		if status := errors.StatusCode(err, 0); status == http.StatusNotFound {
			http.Error(w, err.Error(), status)
			return
		}
		h.handleAPIError(w, r, target, err)
		return
	}

	logger.Log.InfoContext(r.Context(), "row action", "table", name, "id", id, "action", action)
	h.redirectWithFlash(w, r, target, flashCookieSuccess, "Done.")
}

func (h *Handler) NewHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	meta := v.Meta()
	if !meta.CanCreate {
		http.NotFound(w, r)
		return
	}
	h.renderTemplate(w, r, "form.html", formPage{Meta: meta, Action: "/" + meta.Name, Values: map[string]string{}})
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	meta := v.Meta()
	if !meta.CanCreate {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := v.Create(r.Context(), middleware.Session(r), r.PostForm); err != nil {
		h.formError(w, r, formPage{Meta: meta, Action: "/" + meta.Name, Values: formValues(r.PostForm)}, err)
		return
	}

	logger.Log.InfoContext(r.Context(), "item created", "table", meta.Name)
	h.redirectWithFlash(w, r, "/"+meta.Name, flashCookieSuccess, "Created.")
}

func (h *Handler) EditHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	meta := v.Meta()
	id := chi.URLParam(r, "id")

	values, err := v.Edit(r.Context(), middleware.Session(r), id)
	if err != nil {
		if status := errors.StatusCode(err, 0); status != 0 {
			http.Error(w, err.Error(), status)
			return
		}
		h.handleAPIError(w, r, "/"+meta.Name, err)
		return
	}
	h.renderTemplate(w, r, "form.html", formPage{
		Meta:    meta,
		Action:  "/" + meta.Name + "/" + url.PathEscape(id) + "/edit",
		Values:  values,
		Editing: true,
		ID:      id,
	})
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	meta := v.Meta()
	if !meta.CanEdit {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")

	if err := v.Update(r.Context(), middleware.Session(r), id, r.PostForm); err != nil {
		h.formError(w, r, formPage{
			Meta:    meta,
			Action:  "/" + meta.Name + "/" + url.PathEscape(id) + "/edit",
			Values:  formValues(r.PostForm),
			Editing: true,
			ID:      id,
		}, err)
		return
	}

	logger.Log.InfoContext(r.Context(), "item updated", "table", meta.Name, "id", id)
	h.redirectWithFlash(w, r, "/"+meta.Name, flashCookieSuccess, "Saved.")
}

// formError re-renders a rejected form with what the admin typed.
func (h *Handler) formError(w http.ResponseWriter, r *http.Request, page formPage, err error) {
	if apiclient.IsAuth(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	logger.Log.InfoContext(r.Context(), "form rejected", "table", page.Name, "error", err)
	h.renderStatus(w, r, errors.StatusCode(err, http.StatusBadGateway), "form.html", page, err.Error())
}

func formValues(form url.Values) map[string]string {
	values := make(map[string]string, len(form))
	for key := range form {
		values[key] = form.Get(key)
	}
	return values
}
