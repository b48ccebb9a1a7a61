package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSRFMiddleware(t *testing.T) {
	t.Run("GenerateCSRFToken", func(t *testing.T) {
		var seen string
		handler := GenerateCSRFToken(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = CSRFToken(r)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		var cookie *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == "csrf_token" {
				cookie = c
			}
		}
		if assert.NotNil(t, cookie) {
			assert.Equal(t, seen, cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.False(t, cookie.Secure)
		}
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		var seen string
		handler := GenerateCSRFToken(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = CSRFToken(r)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "existing"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "existing", seen)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("tokens differ", func(t *testing.T) {
		a, err := generateCSRFToken()
		assert.NoError(t, err)
		b, err := generateCSRFToken()
		assert.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.GreaterOrEqual(t, len(a), 32)
	})

	t.Run("ValidateCSRFToken", func(t *testing.T) {
		token := "test-token-123"

		tests := []struct {
			name           string
			method         string
			cookie         *http.Cookie
			formToken      string
			header         string
			contentType    string
			expectedStatus int
		}{
			{"valid POST request", http.MethodPost, &http.Cookie{Name: "csrf_token", Value: token}, token, "", "", http.StatusOK},
			{"GET request (no validation)", http.MethodGet, nil, "", "", "", http.StatusOK},
			{"missing cookie", http.MethodPost, nil, token, "", "", http.StatusForbidden},
			{"missing form token", http.MethodPost, &http.Cookie{Name: "csrf_token", Value: token}, "", "", "", http.StatusForbidden},
			{"mismatched token", http.MethodPost, &http.Cookie{Name: "csrf_token", Value: token}, "wrong", "", "", http.StatusForbidden},
			{"header token for json", http.MethodPost, &http.Cookie{Name: "csrf_token", Value: token}, "", token, "application/json", http.StatusOK},
			{"json without header", http.MethodPost, &http.Cookie{Name: "csrf_token", Value: token}, "", "", "application/json", http.StatusForbidden},
			{"DELETE validated", http.MethodDelete, &http.Cookie{Name: "csrf_token", Value: token}, "nope", "", "", http.StatusForbidden},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := ValidateCSRFToken()(http.HandlerFunc(okHandler))

				var body string
				contentType := tt.contentType
				if contentType == "" {
					form := url.Values{}
					if tt.formToken != "" {
						form.Set("csrf_token", tt.formToken)
					}
					body = form.Encode()
					contentType = "application/x-www-form-urlencoded"
				} else {
					body = `{"content":"x"}`
				}

				req := httptest.NewRequest(tt.method, "/", strings.NewReader(body))
				req.Header.Set("Content-Type", contentType)
				if tt.header != "" {
					req.Header.Set(CSRFHeader, tt.header)
				}
				if tt.cookie != nil {
					req.AddCookie(tt.cookie)
				}

				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, req)
				assert.Equal(t, tt.expectedStatus, rr.Code)
			})
		}
	})
}
