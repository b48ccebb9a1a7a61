// Package resource turns a backend list endpoint into a searchable, sortable,
// paginated admin table with row actions and create/edit forms.
package resource

import (
	"context"
	"net/http"
	"net/url"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/errors"
)

type Column[T any] struct {
	Title string
	// Sort names the Sort used when the header is clicked. Empty means the
	// column is not sortable.
	Sort  string
	Value func(T) string
	Badge func(T) string
	Link  func(T) string
}

// ActionInput is the form field carrying the admin's input for an action
// with a Prompt.
const ActionInput = "value"

type Action[T any] struct {
	Name    string
	Label   string
	Confirm string
	// Prompt asks the admin for text (a rejection reason, a reply) before
	// running. With Choices the input is a select instead.
	Prompt  string
	Choices []Option
	Danger  bool
	Visible func(T) bool
	Run     func(ctx context.Context, sess apiclient.Session, id string, form url.Values) error
}

type Field struct {
	Name        string
	Label       string
	Type        string // text, number, date, url, email, textarea, markdown, select, checkbox
	Options     []Option
	Required    bool
	Placeholder string
}

type Form[T any] struct {
	Fields []Field
	// Values pre-fills the edit form from an existing item.
	Values func(T) map[string]string
	Create func(ctx context.Context, sess apiclient.Session, form url.Values) error
	Update func(ctx context.Context, sess apiclient.Session, id string, form url.Values) error
}

// Table describes one resource page.
type Table[T any] struct {
	Name    string // URL segment
	Title   string
	Columns []Column[T]
	ID      func(T) string
	Fetch   func(ctx context.Context, sess apiclient.Session) ([]T, error)
	Options[T]
	Actions []Action[T]
	Form    *Form[T]
}

// View is a Table with its item type erased so handlers and templates can
// treat every resource alike.
type View interface {
	Meta() Meta
	Load(ctx context.Context, sess apiclient.Session, q Query) (Page, error)
	Act(ctx context.Context, sess apiclient.Session, id, action string, form url.Values) error
	Create(ctx context.Context, sess apiclient.Session, form url.Values) error
	Update(ctx context.Context, sess apiclient.Session, id string, form url.Values) error
	Edit(ctx context.Context, sess apiclient.Session, id string) (map[string]string, error)
}

var (
	ErrUnknownAction = errors.New(http.StatusNotFound, "Unknown action")
	ErrNotEditable   = errors.New(http.StatusMethodNotAllowed, "This table has no form")
	ErrNotFound      = errors.New(http.StatusNotFound, "Item not found")
)

type Meta struct {
	Name       string
	Title      string
	Searchable bool
	Fields     []Field
	CanCreate  bool
	CanEdit    bool
}

type Page struct {
	Meta
	Query   Query
	Headers []Header
	Filters []FilterView
	Rows    []Row
	Total   int
	PageNum int
	Pages   int
}

func (p Page) HasPrev() bool { return p.PageNum > 1 }
func (p Page) HasNext() bool { return p.PageNum < p.Pages }
func (p Page) PrevURL() string { return "?" + p.Query.WithPage(p.PageNum-1) }
func (p Page) NextURL() string { return "?" + p.Query.WithPage(p.PageNum+1) }

type Header struct {
	Title  string
	Href   string // empty when not sortable
	Active bool
	Desc   bool
}

type FilterView struct {
	Name     string
	Label    string
	Options  []Option
	Selected string
}

type Row struct {
	ID       string
	Cells    []Cell
	Actions  []ActionView
	Editable bool
}

type Cell struct {
	Text  string
	Badge string
	Link  string
}

type ActionView struct {
	Name    string
	Label   string
	Confirm string
	Prompt  string
	Choices []Option
	Danger  bool
}

func (t *Table[T]) Meta() Meta {
	m := Meta{
		Name:       t.Name,
		Title:      t.Title,
		Searchable: t.Haystack != nil,
	}
	if t.Form != nil {
		m.Fields = t.Form.Fields
		m.CanCreate = t.Form.Create != nil
		m.CanEdit = t.Form.Update != nil
	}
	return m
}

// Load fetches the full list and derives the requested page from it.
func (t *Table[T]) Load(ctx context.Context, sess apiclient.Session, q Query) (Page, error) {
	page := Page{
		Meta:    t.Meta(),
		Query:   q,
		Headers: t.headers(q),
		Filters: t.filterViews(q),
		PageNum: 1,
		Pages:   1,
	}

	items, err := t.Fetch(ctx, sess)
	if err != nil {
		return page, err
	}

	res := Apply(items, q, t.Options)
	page.Total = res.Total
	page.PageNum = res.Page
	page.Pages = res.Pages
	page.Query.Page = res.Page
	page.Rows = make([]Row, 0, len(res.Items))
	for _, item := range res.Items {
		page.Rows = append(page.Rows, t.row(item))
	}
	return page, nil
}

func (t *Table[T]) Act(ctx context.Context, sess apiclient.Session, id, action string, form url.Values) error {
	for _, a := range t.Actions {
		if a.Name == action && a.Run != nil {
			return a.Run(ctx, sess, id, form)
		}
	}
	return ErrUnknownAction
}

func (t *Table[T]) Create(ctx context.Context, sess apiclient.Session, form url.Values) error {
	if t.Form == nil || t.Form.Create == nil {
		return ErrNotEditable
	}
	return t.Form.Create(ctx, sess, form)
}

func (t *Table[T]) Update(ctx context.Context, sess apiclient.Session, id string, form url.Values) error {
	if t.Form == nil || t.Form.Update == nil {
		return ErrNotEditable
	}
	return t.Form.Update(ctx, sess, id, form)
}

// Edit returns the current values of one item for the edit form. Items are
// looked up in the list since not every backend resource has a detail
// endpoint.
func (t *Table[T]) Edit(ctx context.Context, sess apiclient.Session, id string) (map[string]string, error) {
	if t.Form == nil || t.Form.Update == nil || t.Form.Values == nil {
		return nil, ErrNotEditable
	}
	items, err := t.Fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if t.ID(item) == id {
			return t.Form.Values(item), nil
		}
	}
	return nil, ErrNotFound
}

func (t *Table[T]) headers(q Query) []Header {
	headers := make([]Header, len(t.Columns))
	for i, col := range t.Columns {
		h := Header{Title: col.Title}
		if col.Sort != "" {
			h.Href = "?" + q.WithSort(col.Sort)
			h.Active = q.Sort == col.Sort
			h.Desc = h.Active && q.Desc
		}
		headers[i] = h
	}
	return headers
}

func (t *Table[T]) filterViews(q Query) []FilterView {
	views := make([]FilterView, len(t.Filters))
	for i, f := range t.Filters {
		views[i] = FilterView{Name: f.Name, Label: f.Label, Options: f.Options, Selected: q.Filters[f.Name]}
	}
	return views
}

func (t *Table[T]) row(item T) Row {
	r := Row{
		ID:       t.ID(item),
		Cells:    make([]Cell, len(t.Columns)),
		Editable: t.Form != nil && t.Form.Update != nil,
	}
	for i, col := range t.Columns {
		c := Cell{Text: col.Value(item)}
		if col.Badge != nil {
			c.Badge = col.Badge(item)
		}
		if col.Link != nil {
			c.Link = col.Link(item)
		}
		r.Cells[i] = c
	}
	for _, a := range t.Actions {
		if a.Visible != nil && !a.Visible(item) {
			continue
		}
		r.Actions = append(r.Actions, ActionView{
			Name:    a.Name,
			Label:   a.Label,
			Confirm: a.Confirm,
			Prompt:  a.Prompt,
			Choices: a.Choices,
			Danger:  a.Danger,
		})
	}
	return r
}

// Registry looks views up by name.
type Registry struct {
	views map[string]View
	order []string
}

func NewRegistry(views ...View) *Registry {
	r := &Registry{views: make(map[string]View, len(views))}
	for _, v := range views {
		name := v.Meta().Name
		if _, dup := r.views[name]; !dup {
			r.order = append(r.order, name)
		}
		r.views[name] = v
	}
	return r
}

func (r *Registry) Get(name string) (View, bool) {
	v, ok := r.views[name]
	return v, ok
}

// Metas lists the registered views in registration order.
func (r *Registry) Metas() []Meta {
	out := make([]Meta, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.views[name].Meta())
	}
	return out
}
