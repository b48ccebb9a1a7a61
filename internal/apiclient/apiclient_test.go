package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/correlation"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
)

var admin = session.Session{AccessToken: "tok-123", UserID: "u1", Role: session.RoleAdmin, Email: "admin@indigo.test"}

func newTestClient(t *testing.T, h http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New(srv.URL, time.Second)
	c.PaymentsRetry.Backoff = time.Millisecond
	return c
}

func loggedIn(t *testing.T) *session.Memory {
	t.Helper()
	s := session.NewMemory()
	require.NoError(t, s.Set(admin))
	return s
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestCall_Headers(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, `{}`)
	})

	t.Run("no token, no authorization header", func(t *testing.T) {
		_, err := c.Call(context.Background(), session.NewMemory(), "/designer", Request{})
		require.NoError(t, err)
		_, present := got["Authorization"]
		assert.False(t, present)
		assert.Equal(t, "application/json", got.Get("Content-Type"))
	})

	t.Run("nil session", func(t *testing.T) {
		_, err := c.Call(context.Background(), nil, "/designer", Request{})
		require.NoError(t, err)
		_, present := got["Authorization"]
		assert.False(t, present)
	})

	t.Run("bearer token", func(t *testing.T) {
		_, err := c.Call(context.Background(), loggedIn(t), "/designer", Request{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bearer tok-123"}, got.Values("Authorization"))
	})

	t.Run("correlation id and caller headers", func(t *testing.T) {
		ctx := correlation.WithID(context.Background(), "req-42")
		_, err := c.Call(ctx, nil, "/designer", Request{Headers: map[string]string{"Content-Type": "text/plain", "X-Extra": "1"}})
		require.NoError(t, err)
		assert.Equal(t, "req-42", got.Get(correlation.Header))
		assert.Equal(t, "text/plain", got.Get("Content-Type"), "caller headers override defaults")
		assert.Equal(t, "1", got.Get("X-Extra"))
	})
}

func TestCall_RoundTrip(t *testing.T) {
	body := `{"designers":[{"_id":"d1","name":"Ada","tags":["a","b"],"nested":{"n":1.5}}],"total":1}`
	var gotMethod, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		writeJSON(w, http.StatusOK, body)
	})

	raw, err := c.Call(context.Background(), loggedIn(t), "/designer", Request{
		Method: http.MethodPost,
		Body:   map[string]any{"name": "Ada"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"name":"Ada"}`, gotBody)
}

func TestCall_EmptyAndInvalidBodies(t *testing.T) {
	t.Run("empty body decodes as null", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
		raw, err := c.Call(context.Background(), nil, "/coupon/1", Request{Method: http.MethodDelete})
		require.NoError(t, err)
		assert.Equal(t, "null", string(raw))
	})

	t.Run("invalid json on success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, "<html>oops</html>")
		})
		_, err := c.Call(context.Background(), nil, "/designer", Request{})
		require.Error(t, err)
		assert.Equal(t, KindApplication, KindOf(err))
		assert.Equal(t, "Invalid response from server.", err.Error())
	})
}

func TestCall_AuthFailureClearsSession(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"401", http.StatusUnauthorized, `{"message":"nope"}`},
		{"403", http.StatusForbidden, ``},
		{"unauthorized marker", http.StatusBadRequest, `{"message":"Unauthorized access"}`},
		{"forbidden marker", http.StatusInternalServerError, `{"error":"FORBIDDEN"}`},
		{"invalid token marker", http.StatusBadRequest, `{"message":"Invalid Token supplied"}`},
		{"token expired marker", http.StatusUnprocessableEntity, `{"message":"token expired"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { writeJSON(w, tc.status, tc.body) })
			sess := loggedIn(t)
			before := testutil.ToFloat64(backendRequestsTotal.WithLabelValues("designer", http.MethodGet, "auth"))

			raw, err := c.Call(context.Background(), sess, "/designer", Request{})
			require.Error(t, err)
			assert.Nil(t, raw)
			assert.True(t, IsAuth(err))
			assert.ErrorIs(t, err, ErrSessionExpired)
			assert.Equal(t, KindAuth, KindOf(err))
			assert.False(t, sess.IsAuthenticated())
			assert.Equal(t, session.Session{}, session.Snapshot(sess))

			after := testutil.ToFloat64(backendRequestsTotal.WithLabelValues("designer", http.MethodGet, "auth"))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestCall_ApplicationErrors(t *testing.T) {
	t.Run("message from body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, `{"message":"Coupon code already exists"}`)
		})
		sess := loggedIn(t)
		_, err := c.Call(context.Background(), sess, "/coupon", Request{Method: http.MethodPost})

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindApplication, apiErr.Kind)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Coupon code already exists", apiErr.Message)
		assert.False(t, errors.Is(err, ErrSessionExpired))
		assert.True(t, sess.IsAuthenticated(), "application errors keep the session")
	})

	t.Run("malformed body falls back to status text", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<h1>boom</h1>")
		})
		_, err := c.Call(context.Background(), nil, "/designer", Request{})
		require.Error(t, err)
		assert.Equal(t, KindApplication, KindOf(err))
		assert.Equal(t, "Internal Server Error", err.Error())
	})

	t.Run("module fallback when no message is known", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(599) })
		_, err := c.ListDesigners(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch designers", err.Error())
	})
}

func TestCall_Timeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c.Timeout = 50 * time.Millisecond

	_, err := c.Call(context.Background(), loggedIn(t), "/order", Request{})
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Equal(t, "Request timeout. Please try again.", err.Error())
}

func TestCall_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	sess := loggedIn(t)
	_, err := New(srv.URL, time.Second).Call(context.Background(), sess, "/order", Request{})
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, MsgNetwork, err.Error())
	assert.True(t, sess.IsAuthenticated())
}

func TestCall_CORSError(t *testing.T) {
	c := New("http://backend.invalid", time.Second)
	c.HttpClient.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("blocked by CORS policy")
	})
	_, err := c.Call(context.Background(), nil, "/order", Request{})
	assert.Equal(t, KindCORS, KindOf(err))
	assert.Equal(t, MsgCORS, err.Error())
}

func TestAdminLogin(t *testing.T) {
	t.Run("stores the session", func(t *testing.T) {
		var got api.LoginRequest
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/admin-login", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(w, http.StatusOK, `{"accessToken":"tok-123","user":{"_id":"u1","email":"admin@indigo.test","role":"Admin"}}`)
		})
		store := session.NewMemory()

		s, err := c.AdminLogin(context.Background(), store, api.LoginRequest{Email: "admin@indigo.test", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, admin, s)
		assert.Equal(t, admin, session.Snapshot(store))
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, api.LoginRequest{Email: "admin@indigo.test", Password: "secret"}, got)
	})

	t.Run("rejected credentials surface the message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid email or password"}`)
		})
		_, err := c.AdminLogin(context.Background(), session.NewMemory(), api.LoginRequest{Email: "a@b.c", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, KindApplication, KindOf(err))
		assert.False(t, IsAuth(err))
		assert.Equal(t, "Invalid email or password", err.Error())
	})

	t.Run("incomplete response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"accessToken":"tok"}`)
		})
		store := session.NewMemory()
		_, err := c.AdminLogin(context.Background(), store, api.LoginRequest{Email: "a@b.c", Password: "x"})
		require.Error(t, err)
		assert.False(t, store.IsAuthenticated())
	})
}

func TestLogout(t *testing.T) {
	c := New("http://backend.invalid", time.Second)
	store := loggedIn(t)

	require.NoError(t, c.Logout(store))
	require.NoError(t, c.Logout(store))
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, session.Session{}, session.Snapshot(store))
}

func TestDecodeList(t *testing.T) {
	type item struct {
		ID string `json:"_id"`
	}
	cases := map[string]string{
		"bare array":     `[{"_id":"1"},{"_id":"2"}]`,
		"named envelope": `{"designers":[{"_id":"1"},{"_id":"2"}],"count":2}`,
		"data envelope":  `{"success":true,"data":[{"_id":"1"},{"_id":"2"}]}`,
		"nested":         `{"data":{"designers":[{"_id":"1"},{"_id":"2"}]}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			items, err := decodeList[item](json.RawMessage(body), "designers")
			require.NoError(t, err)
			assert.Equal(t, []item{{"1"}, {"2"}}, items)
		})
	}

	items, err := decodeList[item](json.RawMessage(`null`), "designers")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = decodeList[item](json.RawMessage(`{"other":[]}`), "designers")
	assert.Error(t, err)
}

func TestResourcePaths(t *testing.T) {
	type call struct{ method, path, body string }
	var got call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = call{r.Method, r.URL.EscapedPath(), string(b)}
		writeJSON(w, http.StatusOK, `{"message":"ok"}`)
	})
	ctx := context.Background()
	sess := loggedIn(t)

	tests := []struct {
		name string
		run  func() error
		want call
	}{
		{"designer approval", func() error { return c.SetDesignerApproval(ctx, sess, "d1", true) }, call{http.MethodPatch, "/designer/d1/approval", `{"is_approved":true}`}},
		{"delete designer", func() error { return c.DeleteDesigner(ctx, sess, "d1") }, call{http.MethodDelete, "/designer/d1", ""}},
		{"approve request", func() error { return c.ApproveDesignerRequest(ctx, sess, "r1") }, call{http.MethodPatch, "/designer/requests/r1/approve", ""}},
		{"reject request", func() error { return c.RejectDesignerRequest(ctx, sess, "r1", "blurry logo") }, call{http.MethodPatch, "/designer/requests/r1/reject", `{"reason":"blurry logo"}`}},
		{"product status", func() error { return c.SetProductStatus(ctx, sess, "p1", false) }, call{http.MethodPatch, "/products/p1/status", `{"enabled":false}`}},
		{"delete product", func() error { return c.DeleteProduct(ctx, sess, "p1") }, call{http.MethodDelete, "/products/p1", ""}},
		{"order status", func() error { return c.UpdateOrderStatus(ctx, sess, "o1", "Shipped") }, call{http.MethodPut, "/order/o1/status", `{"status":"Shipped"}`}},
		{"delete user", func() error { return c.DeleteUser(ctx, sess, "u/2") }, call{http.MethodDelete, "/user/u%2F2", ""}},
		{"create coupon", func() error {
			return c.CreateCoupon(ctx, sess, api.CouponRequest{Code: "SAVE10", Amount: 10, ExpiryDate: "2026-12-31"})
		}, call{http.MethodPost, "/coupon", `{"couponCode":"SAVE10","couponAmount":10,"expiryDate":"2026-12-31"}`}},
		{"update coupon", func() error {
			return c.UpdateCoupon(ctx, sess, "c1", api.CouponRequest{Code: "SAVE20", Amount: 20, ExpiryDate: "2026-12-31"})
		}, call{http.MethodPut, "/coupon/c1", `{"couponCode":"SAVE20","couponAmount":20,"expiryDate":"2026-12-31"}`}},
		{"delete coupon", func() error { return c.DeleteCoupon(ctx, sess, "c1") }, call{http.MethodDelete, "/coupon/c1", ""}},
		{"create category", func() error { return c.CreateCategory(ctx, sess, api.CategoryRequest{Name: "Sarees"}) }, call{http.MethodPost, "/category", `{"name":"Sarees","image":""}`}},
		{"update category", func() error { return c.UpdateCategory(ctx, sess, "k1", api.CategoryRequest{Name: "Kurtas"}) }, call{http.MethodPut, "/category/k1", `{"name":"Kurtas","image":""}`}},
		{"delete category", func() error { return c.DeleteCategory(ctx, sess, "k1") }, call{http.MethodDelete, "/category/k1", ""}},
		{"approve subcategory", func() error { return c.ApproveSubcategory(ctx, sess, "s1") }, call{http.MethodPatch, "/subcategory/s1/approve", ""}},
		{"reject subcategory", func() error { return c.RejectSubcategory(ctx, sess, "s1", "") }, call{http.MethodPatch, "/subcategory/s1/reject", `{}`}},
		{"delete subcategory", func() error { return c.DeleteSubcategory(ctx, sess, "s1") }, call{http.MethodDelete, "/subcategory/s1", ""}},
		{"create banner", func() error {
			return c.CreateBanner(ctx, sess, api.BannerRequest{Name: "Sale", Image: "https://cdn/x.png"})
		}, call{http.MethodPost, "/banner", `{"name":"Sale","image":"https://cdn/x.png","link":"","platform":""}`}},
		{"delete banner", func() error { return c.DeleteBanner(ctx, sess, "b1") }, call{http.MethodDelete, "/banner/b1", ""}},
		{"update blog", func() error {
			return c.UpdateBlog(ctx, sess, "g1", api.BlogRequest{Title: "T", Content: "C"})
		}, call{http.MethodPut, "/blogs/g1", `{"title":"T","author":"","content":"C","image":"","published":false}`}},
		{"delete blog", func() error { return c.DeleteBlog(ctx, sess, "g1") }, call{http.MethodDelete, "/blogs/g1", ""}},
		{"approve video", func() error { return c.ApproveVideo(ctx, sess, "v1") }, call{http.MethodPatch, "/video/v1/approve", ""}},
		{"reject video", func() error { return c.RejectVideo(ctx, sess, "v1", "copyright") }, call{http.MethodPatch, "/video/v1/reject", `{"reason":"copyright"}`}},
		{"respond to query", func() error {
			return c.RespondToQuery(ctx, sess, "q1", api.QueryResponseRequest{Response: "Refunded"})
		}, call{http.MethodPut, "/queries/q1/respond", `{"response":"Refunded","status":"resolved"}`}},
		{"delete query", func() error { return c.DeleteQuery(ctx, sess, "q1") }, call{http.MethodDelete, "/queries/q1", ""}},
		{"send notification", func() error {
			return c.SendNotification(ctx, sess, api.NotificationRequest{Title: "Hi", Body: "Hello", Target: "all"})
		}, call{http.MethodPost, "/notification/send", `{"title":"Hi","message":"Hello","target":"all"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = call{}
			require.NoError(t, tt.run())
			assert.Equal(t, tt.want.method, got.method)
			assert.Equal(t, tt.want.path, got.path)
			if tt.want.body == "" {
				assert.Empty(t, got.body)
			} else {
				assert.JSONEq(t, tt.want.body, got.body)
			}
		})
	}
}

func TestGetOne(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/designer/d1":
			writeJSON(w, http.StatusOK, `{"designer":{"_id":"d1","name":"Ada","is_approved":true}}`)
		case "/blogs/g1":
			writeJSON(w, http.StatusOK, `{"_id":"g1","title":"Spring","content":"# Hi"}`)
		case "/order/o1":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"_id":"o1","orderId":"IR-1","amount":99.5}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	})
	ctx := context.Background()

	d, err := c.GetDesigner(ctx, nil, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", d.Name)
	assert.True(t, d.IsApproved)

	b, err := c.GetBlog(ctx, nil, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Spring", b.Title)

	o, err := c.GetOrder(ctx, nil, "o1")
	require.NoError(t, err)
	assert.Equal(t, "IR-1", o.OrderId)
	assert.Equal(t, 99.5, o.Amount)

	_, err = c.GetUser(ctx, nil, "missing")
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
}

func TestListProducts_WalksPages(t *testing.T) {
	var pages []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		pages = append(pages, r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		switch r.URL.Query().Get("page") {
		case "1":
			writeJSON(w, http.StatusOK, `{"products":[{"_id":"p1"},{"_id":"p2"}],"totalPages":2}`)
		case "2":
			writeJSON(w, http.StatusOK, `{"products":[{"_id":"p3"}],"totalPages":2}`)
		default:
			t.Errorf("unexpected page %s", r.URL.Query().Get("page"))
		}
	})
	c.ProductsLimit = 2

	products, err := c.ListProducts(context.Background(), loggedIn(t))
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "p3", products[2].Id)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestListProducts_StopsOnShortPageWithoutMetadata(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("page") == "1" {
			writeJSON(w, http.StatusOK, `{"products":[{"_id":"p1"},{"_id":"p2"}]}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"products":[{"_id":"p3"}]}`)
	})
	c.ProductsLimit = 2

	products, err := c.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, 2, calls)
}

func TestListPayments_RetriesNetworkErrors(t *testing.T) {
	var attempts atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"payments":[{"_id":"pay1","amount":10}]}`)
	})
	inner := http.DefaultTransport
	c.HttpClient.Transport = roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if attempts.Add(1) < 3 {
			return nil, errors.New("connection reset by peer")
		}
		return inner.RoundTrip(r)
	})

	payments, err := c.ListPayments(context.Background(), loggedIn(t))
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay1", payments[0].Id)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestListPayments_GivesUp(t *testing.T) {
	var attempts atomic.Int32
	c := New("http://backend.invalid", time.Second)
	c.PaymentsRetry.Backoff = time.Millisecond
	c.HttpClient.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		attempts.Add(1)
		return nil, errors.New("connection refused")
	})

	_, err := c.ListPayments(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestListPayments_DoesNotRetryOtherErrors(t *testing.T) {
	var attempts atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{}`)
	})
	sess := loggedIn(t)

	_, err := c.ListPayments(context.Background(), sess)
	assert.True(t, IsAuth(err))
	assert.Equal(t, int32(1), attempts.Load())
	assert.False(t, sess.IsAuthenticated())
}

func TestDashboardStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/order/total-orders":
			writeJSON(w, http.StatusOK, `{"totalOrders":12,"totalSales":"1500.50"}`)
		case "/user/total-users":
			writeJSON(w, http.StatusOK, `{"data":{"totalUsers":40}}`)
		case "/designer/total-designers":
			writeJSON(w, http.StatusOK, `7`)
		case "/products/total-products":
			writeJSON(w, http.StatusOK, `{"count":"99"}`)
		case "/order/recent":
			writeJSON(w, http.StatusOK, `{"orders":[{"_id":"o1","orderId":"IR-1"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	stats, err := c.DashboardStats(context.Background(), loggedIn(t))
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalOrders)
	assert.Equal(t, 1500.5, stats.TotalSales)
	assert.Equal(t, 40, stats.TotalUsers)
	assert.Equal(t, 7, stats.TotalDesigners)
	assert.Equal(t, 99, stats.TotalProducts)
	require.Len(t, stats.RecentOrders, 1)
	assert.Equal(t, "IR-1", stats.RecentOrders[0].OrderId)
}

func TestDashboardStats_FailsAsOne(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/total-users" {
			writeJSON(w, http.StatusInternalServerError, `{"message":"db down"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := c.DashboardStats(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, KindApplication, KindOf(err))
}

func TestDashboardStats_AuthFailureClearsCookiesOnce(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"jwt expired"}`)
	})

	store := session.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), false)
	loginRR := httptest.NewRecorder()
	require.NoError(t, store.Load(loginRR, httptest.NewRequest(http.MethodPost, "/login", nil)).Set(admin))
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range loginRR.Result().Cookies() {
		req.AddCookie(ck)
	}

	rr := httptest.NewRecorder()
	sess := store.Load(rr, req)
	require.True(t, sess.IsAuthenticated())

	_, err := c.DashboardStats(context.Background(), sess)
	assert.True(t, IsAuth(err))
	assert.False(t, sess.IsAuthenticated())

	res := rr.Result()
	assert.Len(t, res.Header.Values("Set-Cookie"), 4)
	for _, ck := range res.Cookies() {
		assert.Less(t, ck.MaxAge, 0, ck.Name)
	}
}

func TestEndpointGroup(t *testing.T) {
	for in, want := range map[string]string{
		"/designer":                   "designer",
		"/designer/requests/1/reject": "designer",
		"/products?page=1&limit=100":  "products",
		"/":                           "root",
		"":                            "root",
	} {
		assert.Equal(t, want, endpointGroup(in), fmt.Sprintf("endpointGroup(%q)", in))
	}
}
