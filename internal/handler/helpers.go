package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
)

const (
	flashCookieError   = "flash_error"
	flashCookieSuccess = "flash_success"
	emailPrefillCookie = "email_prefill"
	flashMaxAge        = 300 // 5 minutes, enough for the redirect
)

func (h *Handler) setFlash(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.StdEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies || session.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlash returns the flash message and expires its cookie.
func readFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, name, message string) {
	h.setFlash(w, r, name, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleAPIError redirects after a failed backend call. An auth failure has
// already cleared the session and goes to /login without a message; anything
// else is flashed on target.
func (h *Handler) handleAPIError(w http.ResponseWriter, r *http.Request, target string, err error) {
	if apiclient.IsAuth(err) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	logger.Log.WarnContext(r.Context(), "backend call failed", "target", target, "kind", apiclient.KindOf(err).String(), "error", err)
	h.redirectWithFlash(w, r, target, flashCookieError, err.Error())
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage turns validator errors into one line for a flash.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid form data."
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD).", field)
	}
	return fmt.Sprintf("%s is invalid.", field)
}
