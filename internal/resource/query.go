package resource

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultPageSize = 20

// Query is the view state of a table page: what the admin typed, picked and
// clicked. It travels in the URL so every page state is linkable.
type Query struct {
	Search  string
	Filters map[string]string
	Sort    string
	Desc    bool
	Page    int
}

// Reserved query parameters. Anything else non-empty is treated as a filter.
const (
	paramSearch = "q"
	paramSort   = "sort"
	paramOrder  = "order"
	paramPage   = "page"
	paramGen    = "gen"
)

// ParseQuery reads a Query from URL parameters. Invalid page numbers become 1.
func ParseQuery(v url.Values) Query {
	q := Query{
		Search:  strings.TrimSpace(v.Get(paramSearch)),
		Filters: map[string]string{},
		Sort:    v.Get(paramSort),
		Desc:    v.Get(paramOrder) == "desc",
		Page:    1,
	}
	if p, err := strconv.Atoi(v.Get(paramPage)); err == nil && p > 0 {
		q.Page = p
	}
	for key, values := range v {
		switch key {
		case paramSearch, paramSort, paramOrder, paramPage, paramGen, "csrf_token":
			continue
		}
		if len(values) > 0 && values[0] != "" {
			q.Filters[key] = values[0]
		}
	}
	return q
}

// Values encodes q back into URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set(paramSearch, q.Search)
	}
	for key, value := range q.Filters {
		if value != "" {
			v.Set(key, value)
		}
	}
	if q.Sort != "" {
		v.Set(paramSort, q.Sort)
		if q.Desc {
			v.Set(paramOrder, "desc")
		}
	}
	if q.Page > 1 {
		v.Set(paramPage, strconv.Itoa(q.Page))
	}
	return v
}

// WithPage returns the encoded query for another page.
func (q Query) WithPage(page int) string {
	q.Page = page
	return q.Values().Encode()
}

// WithSort returns the encoded query sorted by key, flipping the direction
// when key is already the active sort. Sorting resets to the first page.
func (q Query) WithSort(key string) string {
	if q.Sort == key {
		q.Desc = !q.Desc
	} else {
		q.Sort, q.Desc = key, false
	}
	q.Page = 1
	return q.Values().Encode()
}
