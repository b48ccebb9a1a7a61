package resource

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	apperrors "github.com/indigo-rhapsody/indigo-admin/internal/errors"
)

type coupon struct {
	ID     string
	Code   string
	Amount int
	Active bool
}

func coupons() []coupon {
	return []coupon{
		{"1", "SPRING10", 10, true},
		{"2", "summer20", 20, false},
		{"3", "SPRING5", 5, true},
		{"4", "WINTER50", 50, true},
		{"5", "autumn10", 10, false},
	}
}

func couponOptions(pageSize int) Options[coupon] {
	return Options[coupon]{
		Haystack: func(c coupon) string { return c.Code },
		Filters: []Filter[coupon]{{
			Name:  "active",
			Match: func(c coupon, v string) bool { return strconv.FormatBool(c.Active) == v },
		}},
		Sorts: []Sort[coupon]{
			{Key: "amount", Cmp: func(a, b coupon) int { return cmp.Compare(a.Amount, b.Amount) }},
			{Key: "code", Cmp: func(a, b coupon) int { return cmp.Compare(a.Code, b.Code) }},
		},
		PageSize: pageSize,
	}
}

func ids(items []coupon) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.ID
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		size  int
		want  []string
		total int
		page  int
		pages int
	}{
		{"everything", Query{Page: 1}, 10, []string{"1", "2", "3", "4", "5"}, 5, 1, 1},
		{"search is case insensitive", Query{Search: "spring", Page: 1}, 10, []string{"1", "3"}, 2, 1, 1},
		{"filter", Query{Filters: map[string]string{"active": "false"}, Page: 1}, 10, []string{"2", "5"}, 2, 1, 1},
		{"filter then search", Query{Search: "10", Filters: map[string]string{"active": "true"}, Page: 1}, 10, []string{"1"}, 1, 1, 1},
		{"unknown filter ignored", Query{Filters: map[string]string{"color": "red"}, Page: 1}, 10, []string{"1", "2", "3", "4", "5"}, 5, 1, 1},
		{"sort is stable", Query{Sort: "amount", Page: 1}, 10, []string{"3", "1", "5", "2", "4"}, 5, 1, 1},
		{"sort descending is stable", Query{Sort: "amount", Desc: true, Page: 1}, 10, []string{"4", "2", "1", "5", "3"}, 5, 1, 1},
		{"unknown sort keeps order", Query{Sort: "nope", Page: 1}, 10, []string{"1", "2", "3", "4", "5"}, 5, 1, 1},
		{"second page", Query{Page: 2}, 2, []string{"3", "4"}, 5, 2, 3},
		{"last partial page", Query{Page: 3}, 2, []string{"5"}, 5, 3, 3},
		{"page past the end is clamped", Query{Page: 9}, 2, []string{"5"}, 5, 3, 3},
		{"page zero is first page", Query{}, 2, []string{"1", "2"}, 5, 1, 3},
		{"no matches", Query{Search: "zzz", Page: 1}, 2, []string{}, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := coupons()
			res := Apply(items, tt.query, couponOptions(tt.size))
			assert.Equal(t, tt.want, ids(res.Items))
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.page, res.Page)
			assert.Equal(t, tt.pages, res.Pages)
			assert.Equal(t, coupons(), items, "input must not be reordered")
		})
	}
}

func TestApply_DefaultPageSize(t *testing.T) {
	items := make([]coupon, 45)
	for i := range items {
		items[i] = coupon{ID: strconv.Itoa(i)}
	}
	res := Apply(items, Query{Page: 1}, Options[coupon]{})
	assert.Len(t, res.Items, DefaultPageSize)
	assert.Equal(t, 3, res.Pages)
}

func TestParseQuery(t *testing.T) {
	v, err := url.ParseQuery("q=+spring+&sort=amount&order=desc&page=3&active=true&status=&gen=7&csrf_token=x")
	require.NoError(t, err)

	q := ParseQuery(v)
	assert.Equal(t, "spring", q.Search)
	assert.Equal(t, "amount", q.Sort)
	assert.True(t, q.Desc)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, map[string]string{"active": "true"}, q.Filters)

	assert.Equal(t, 1, ParseQuery(url.Values{"page": {"-2"}}).Page)
	assert.Equal(t, 1, ParseQuery(url.Values{"page": {"abc"}}).Page)
}

func TestQuery_Links(t *testing.T) {
	q := Query{Search: "spring", Filters: map[string]string{"active": "true"}, Sort: "amount", Page: 2}

	assert.Equal(t, "active=true&q=spring&sort=amount", q.WithPage(1))
	assert.Equal(t, "active=true&page=3&q=spring&sort=amount", q.WithPage(3))
	assert.Equal(t, "active=true&order=desc&q=spring&sort=amount", q.WithSort("amount"), "same key flips direction")
	assert.Equal(t, "active=true&q=spring&sort=code", q.WithSort("code"))

	round := ParseQuery(q.Values())
	assert.Equal(t, q, round)
}

func TestLatest(t *testing.T) {
	l := NewLatest(0)

	require.True(t, l.Begin("u1/orders", 1))
	require.True(t, l.Begin("u1/orders", 2))
	assert.False(t, l.Current("u1/orders", 1), "generation 1 was superseded")
	assert.True(t, l.Current("u1/orders", 2))
	assert.False(t, l.Begin("u1/orders", 1), "older generation arriving late")
	assert.True(t, l.Begin("u1/orders", 2), "a repeated generation is allowed")

	assert.True(t, l.Begin("u2/orders", 1), "keys are independent")
	assert.True(t, l.Current("u1/orders", 2))
}

func TestLatest_ResetWhenFull(t *testing.T) {
	l := NewLatest(2)
	l.Begin("a", 5)
	l.Begin("b", 5)
	l.Begin("c", 1)

	assert.True(t, l.Current("a", 1), "dropped keys count as current")
	assert.True(t, l.Current("c", 1))
}

func TestLatest_Concurrent(t *testing.T) {
	l := NewLatest(0)
	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(gen uint64) {
			defer wg.Done()
			l.Begin("k", gen)
		}(uint64(i))
	}
	wg.Wait()
	assert.True(t, l.Current("k", 100))
}

func newCouponTable(fetchErr error) (*Table[coupon], *[]string) {
	var calls []string
	tbl := &Table[coupon]{
		Name:  "coupon",
		Title: "Coupons",
		ID:    func(c coupon) string { return c.ID },
		Columns: []Column[coupon]{
			{Title: "Code", Sort: "code", Value: func(c coupon) string { return c.Code }},
			{Title: "Amount", Sort: "amount", Value: func(c coupon) string { return strconv.Itoa(c.Amount) }},
			{Title: "Active", Value: func(c coupon) string { return strconv.FormatBool(c.Active) }, Badge: func(c coupon) string {
				if c.Active {
					return "success"
				}
				return "muted"
			}},
		},
		Fetch: func(context.Context, apiclient.Session) ([]coupon, error) {
			if fetchErr != nil {
				return nil, fetchErr
			}
			return coupons(), nil
		},
		Options: couponOptions(2),
		Actions: []Action[coupon]{
			{Name: "delete", Label: "Delete", Danger: true, Run: func(_ context.Context, _ apiclient.Session, id string, _ url.Values) error {
				calls = append(calls, "delete "+id)
				return nil
			}},
			{Name: "deactivate", Label: "Deactivate", Visible: func(c coupon) bool { return c.Active }, Run: func(_ context.Context, _ apiclient.Session, id string, _ url.Values) error {
				calls = append(calls, "deactivate "+id)
				return nil
			}},
		},
		Form: &Form[coupon]{
			Fields: []Field{{Name: "couponCode", Label: "Code", Type: "text", Required: true}},
			Values: func(c coupon) map[string]string { return map[string]string{"couponCode": c.Code} },
			Create: func(_ context.Context, _ apiclient.Session, form url.Values) error {
				calls = append(calls, "create "+form.Get("couponCode"))
				return nil
			},
			Update: func(_ context.Context, _ apiclient.Session, id string, form url.Values) error {
				calls = append(calls, "update "+id+" "+form.Get("couponCode"))
				return nil
			},
		},
	}
	return tbl, &calls
}

func TestTable_Load(t *testing.T) {
	tbl, _ := newCouponTable(nil)

	page, err := tbl.Load(context.Background(), nil, Query{Sort: "amount", Page: 1})
	require.NoError(t, err)

	assert.Equal(t, "coupon", page.Name)
	assert.True(t, page.Searchable)
	assert.True(t, page.CanCreate)
	assert.True(t, page.CanEdit)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.False(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, "?page=2&sort=amount", page.NextURL())

	require.Len(t, page.Headers, 3)
	assert.Equal(t, "?sort=code", page.Headers[0].Href)
	assert.Equal(t, "?order=desc&sort=amount", page.Headers[1].Href)
	assert.True(t, page.Headers[1].Active)
	assert.Empty(t, page.Headers[2].Href)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "3", page.Rows[0].ID)
	assert.Equal(t, []Cell{{Text: "SPRING5"}, {Text: "5"}, {Text: "true", Badge: "success"}}, page.Rows[0].Cells)
	assert.Len(t, page.Rows[0].Actions, 2)
	assert.True(t, page.Rows[0].Editable)

	page, err = tbl.Load(context.Background(), nil, Query{Filters: map[string]string{"active": "false"}, Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Rows, 2)
	require.Len(t, page.Rows[0].Actions, 1, "deactivate is hidden for inactive coupons")
	assert.Equal(t, "delete", page.Rows[0].Actions[0].Name)
	assert.Equal(t, "false", page.Filters[0].Selected)
}

func TestTable_LoadError(t *testing.T) {
	fetchErr := &apiclient.Error{Kind: apiclient.KindNetwork, Message: apiclient.MsgNetwork}
	tbl, _ := newCouponTable(fetchErr)

	page, err := tbl.Load(context.Background(), nil, Query{Page: 1})
	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, page.Rows)
	assert.Equal(t, "Coupons", page.Title, "the page still renders around the error")
}

func TestTable_Mutations(t *testing.T) {
	tbl, calls := newCouponTable(nil)
	ctx := context.Background()

	require.NoError(t, tbl.Act(ctx, nil, "2", "delete", nil))
	require.NoError(t, tbl.Create(ctx, nil, url.Values{"couponCode": {"NEW"}}))
	require.NoError(t, tbl.Update(ctx, nil, "4", url.Values{"couponCode": {"WINTER60"}}))
	assert.Equal(t, []string{"delete 2", "create NEW", "update 4 WINTER60"}, *calls)

	err := tbl.Act(ctx, nil, "2", "explode", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err, http.StatusInternalServerError))

	values, err := tbl.Edit(ctx, nil, "4")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"couponCode": "WINTER50"}, values)

	_, err = tbl.Edit(ctx, nil, "404")
	assert.True(t, errors.Is(err, ErrNotFound))

	tbl.Form = nil
	assert.ErrorIs(t, tbl.Create(ctx, nil, nil), ErrNotEditable)
	assert.False(t, tbl.Meta().CanCreate)
}

func TestRegistry(t *testing.T) {
	a, _ := newCouponTable(nil)
	b, _ := newCouponTable(nil)
	b.Name, b.Title = "banner", "Banners"

	r := NewRegistry(a, b)
	v, ok := r.Get("banner")
	require.True(t, ok)
	assert.Equal(t, "Banners", v.Meta().Title)
	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"coupon", "banner"}, []string{r.Metas()[0].Name, r.Metas()[1].Name})
}
