package resource

import (
	"slices"
	"strings"
)

// Filter narrows the list by one named parameter.
type Filter[T any] struct {
	Name    string
	Label   string
	Options []Option
	Match   func(item T, value string) bool
}

type Option struct {
	Value string
	Label string
}

// Sort orders two items; negative when a comes first.
type Sort[T any] struct {
	Key   string
	Label string
	Cmp   func(a, b T) int
}

// Options is everything Apply needs to derive a page from a full list.
type Options[T any] struct {
	// Haystack returns the text searched by Query.Search. Nil disables search.
	Haystack func(T) string
	Filters  []Filter[T]
	Sorts    []Sort[T]
	PageSize int
}

type Result[T any] struct {
	Items []T
	Total int // items left after filtering and search
	Page  int
	Pages int
}

// Apply filters, searches, sorts and paginates items. Unknown filters and
// sort keys are ignored. A page past the end is clamped to the last page.
// items is never modified.
func Apply[T any](items []T, q Query, opts Options[T]) Result[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesFilters(item, q.Filters, opts.Filters) {
			continue
		}
		if q.Search != "" && opts.Haystack != nil && !Contains(opts.Haystack(item), q.Search) {
			continue
		}
		out = append(out, item)
	}

	if q.Sort != "" {
		for _, s := range opts.Sorts {
			if s.Key != q.Sort {
				continue
			}
			cmp := s.Cmp
			if q.Desc {
				cmp = func(a, b T) int { return s.Cmp(b, a) }
			}
			slices.SortStableFunc(out, cmp)
			break
		}
	}

	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(out)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	page := min(max(q.Page, 1), pages)

	start := min((page-1)*size, total)
	end := min(start+size, total)
	return Result[T]{
		Items: out[start:end],
		Total: total,
		Page:  page,
		Pages: pages,
	}
}

func matchesFilters[T any](item T, values map[string]string, filters []Filter[T]) bool {
	for _, f := range filters {
		value, ok := values[f.Name]
		if !ok || value == "" || f.Match == nil {
			continue
		}
		if !f.Match(item, value) {
			return false
		}
	}
	return true
}

// Contains is a case-insensitive substring test.
func Contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
