package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
)

// NavItem is one entry of the sidebar.
type NavItem struct {
	Path   string
	Title  string
	Active bool
}

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error      string
	Success    string
	User       *session.Session
	CSRFToken  string
	AppName    string
	AppVersion string
	Debug      bool
	Nav        []NavItem
	// EmailPrefill keeps the login email across a failed attempt.
	EmailPrefill string
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

var navOrder = []NavItem{
	{Path: "/dashboard", Title: "Dashboard"},
	{Path: "/products", Title: "Products"},
	{Path: "/orders", Title: "Orders"},
	{Path: "/designers", Title: "Designers"},
	{Path: "/designer-requests", Title: "Designer Requests"},
	{Path: "/users", Title: "Users"},
	{Path: "/payment", Title: "Payments"},
	{Path: "/coupon", Title: "Coupons"},
	{Path: "/category", Title: "Categories"},
	{Path: "/subcategory", Title: "Subcategories"},
	{Path: "/video", Title: "Videos"},
	{Path: "/notification", Title: "Notifications"},
	{Path: "/manage-queries", Title: "Queries"},
	{Path: "/banner", Title: "Banners"},
	{Path: "/blogs", Title: "Blogs"},
}

func nav(active string) []NavItem {
	items := make([]NavItem, len(navOrder))
	copy(items, navOrder)
	for i := range items {
		items[i].Active = items[i].Path == active
	}
	return items
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	common := CommonTemplateData{
		Error:        readFlash(w, r, flashCookieError),
		Success:      readFlash(w, r, flashCookieSuccess),
		CSRFToken:    middleware.CSRFToken(r),
		AppName:      h.Env.AppName,
		AppVersion:   h.Env.AppVersion,
		Debug:        h.Env.Debug,
		Nav:          nav(activeSection(r.URL.Path)),
		EmailPrefill: readFlash(w, r, emailPrefillCookie),
	}
	if s := middleware.Session(r); s.IsAuthenticated() {
		snap := session.Snapshot(s)
		common.User = &snap
	}
	return common
}

// activeSection maps /coupon/new or /coupon/abc/edit to /coupon.
func activeSection(path string) string {
	for i := 1; i < len(path); i++ {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return path
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	h.renderStatus(w, r, http.StatusOK, name, data, errMsg)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any, errMsg string) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		logger.Log.ErrorContext(r.Context(), "template not found", "template", name)
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r)
	if errMsg != "" {
		common.Error = errMsg
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, TemplateData{Data: data, Common: common}); err != nil {
		logger.Log.ErrorContext(r.Context(), "error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.ErrorContext(r.Context(), "encoding json response", "error", err)
	}
}
