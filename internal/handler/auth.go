package handler

import (
	"net/http"
	"strings"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if middleware.Session(r).IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderTemplate(w, r, "login.html", nil)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/login"

	creds := api.LoginRequest{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(creds); err != nil {
		h.setFlash(w, r, emailPrefillCookie, creds.Email)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, validationMessage(err))
		return
	}

	sess := middleware.Session(r)
	s, err := h.APIClient.AdminLogin(r.Context(), sess, creds)
	if err != nil {
		logger.Log.InfoContext(r.Context(), "admin login failed", "email", creds.Email, "error", err)
		h.setFlash(w, r, emailPrefillCookie, creds.Email)
		h.redirectWithFlash(w, r, targetURL, flashCookieError, err.Error())
		return
	}

	logger.Log.InfoContext(r.Context(), "admin logged in", "user_id", s.UserID, "role", string(s.Role))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.APIClient.Logout(middleware.Session(r)); err != nil {
		logger.Log.ErrorContext(r.Context(), "clearing session on logout", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginThrottled answers a login attempt rejected by the rate limiter.
func (h *Handler) LoginThrottled(w http.ResponseWriter, r *http.Request, message string) {
	h.setFlash(w, r, emailPrefillCookie, strings.TrimSpace(r.PostFormValue("email")))
	h.redirectWithFlash(w, r, "/login", flashCookieError, message)
}
