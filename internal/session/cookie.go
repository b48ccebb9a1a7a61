package session

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/sessions"
)

// Cookie names, one per session field.
const (
	CookieToken  = "authToken"
	CookieUserID = "userId"
	CookieRole   = "userRole"
	CookieEmail  = "userEmail"
)

// MaxAge is the lifetime of every session cookie in seconds (7 days).
const MaxAge = 7 * 24 * 60 * 60

const valueKey = "v"

var cookieNames = []string{CookieToken, CookieUserID, CookieRole, CookieEmail}

// CookieStore issues request-bound session stores backed by signed cookies.
type CookieStore struct {
	store       *sessions.CookieStore
	forceSecure bool
}

// NewCookieStore creates a store signing cookies with secret. When
// forceSecure is false the Secure flag is set only for HTTPS requests.
func NewCookieStore(secret []byte, forceSecure bool) *CookieStore {
	store := sessions.NewCookieStore(secret)
	store.MaxAge(MaxAge)
	return &CookieStore{store: store, forceSecure: forceSecure}
}

// Load binds a Store to one request/response pair.
func (c *CookieStore) Load(w http.ResponseWriter, r *http.Request) *Cookies {
	return &Cookies{parent: c, w: w, r: r}
}

func (c *CookieStore) options(r *http.Request) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		Secure:   c.forceSecure || IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// IsHTTPS reports whether r reached us over TLS, directly or through a proxy.
func IsHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// Cookies is a Store reading from the request cookies and writing
// Set-Cookie headers to the response. It is safe for concurrent use; the
// dashboard fans several backend calls out over one request's store.
type Cookies struct {
	parent *CookieStore
	w      http.ResponseWriter
	r      *http.Request

	mu      sync.Mutex
	values  map[string]string
	cleared bool // expiry cookies already written since the last Set
}

var _ Store = (*Cookies)(nil)

// load must be called with mu held.
func (c *Cookies) load() map[string]string {
	if c.values != nil {
		return c.values
	}
	c.values = make(map[string]string, len(cookieNames))
	for _, name := range cookieNames {
		sess, err := c.parent.store.Get(c.r, name)
		if err != nil {
			// tampered or signed with an old key: treat as unset
			continue
		}
		if v, ok := sess.Values[valueKey].(string); ok {
			c.values[name] = v
		}
	}
	return c.values
}

func (c *Cookies) save(name, value string, maxAge int) error {
	sess, err := c.parent.store.New(c.r, name)
	if err != nil && sess == nil {
		return err
	}
	sess.Options = c.parent.options(c.r)
	sess.Options.MaxAge = maxAge
	if maxAge < 0 {
		sess.Values = map[any]any{}
	} else {
		sess.Values[valueKey] = value
	}
	return c.parent.store.Save(c.r, c.w, sess)
}

// Set writes all four cookies with identical options.
func (c *Cookies) Set(s Session) error {
	fields := map[string]string{
		CookieToken:  s.AccessToken,
		CookieUserID: s.UserID,
		CookieRole:   string(s.Role),
		CookieEmail:  s.Email,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	values := c.load()
	c.cleared = false
	for _, name := range cookieNames {
		if err := c.save(name, fields[name], MaxAge); err != nil {
			return err
		}
		values[name] = fields[name]
	}
	return nil
}

func (c *Cookies) get(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()[name]
}

func (c *Cookies) Token() string  { return c.get(CookieToken) }
func (c *Cookies) UserID() string { return c.get(CookieUserID) }
func (c *Cookies) Role() Role     { return Role(c.get(CookieRole)) }
func (c *Cookies) Email() string  { return c.get(CookieEmail) }

// Clear expires all four cookies. Only the first call after a Set writes
// headers; later calls are no-ops.
func (c *Cookies) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleared {
		return nil
	}
	c.values = map[string]string{}
	for _, name := range cookieNames {
		if err := c.save(name, "", -1); err != nil {
			return err
		}
	}
	c.cleared = true
	return nil
}

// IsAuthenticated requires the token and user id only.
func (c *Cookies) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	values := c.load()
	return values[CookieToken] != "" && values[CookieUserID] != ""
}
