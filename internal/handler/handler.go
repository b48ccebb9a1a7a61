package handler

import (
	"html/template"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/indigo-rhapsody/indigo-admin/internal/apiclient"
	"github.com/indigo-rhapsody/indigo-admin/internal/config"
	"github.com/indigo-rhapsody/indigo-admin/internal/markdown"
	"github.com/indigo-rhapsody/indigo-admin/internal/resource"
)

type Handler struct {
	Public    config.Public
	Env       config.Environment
	APIClient *apiclient.APIClient
	Markdown  *markdown.Renderer
	Tables    *resource.Registry
	Latest    *resource.Latest

	templatesMu sync.RWMutex
	templates   map[string]*template.Template
	validate    *validator.Validate
}

func New(templates map[string]*template.Template, publicCfg config.Public, env config.Environment, apiClient *apiclient.APIClient, md *markdown.Renderer) *Handler {
	h := &Handler{
		Public:    publicCfg,
		Env:       env,
		APIClient: apiClient,
		Markdown:  md,
		Latest:    resource.NewLatest(0),
		templates: templates,
		validate:  newValidator(),
	}
	h.Tables = resource.NewRegistry(h.tables()...)
	return h
}

// SetTemplates swaps the template set; used by the development reloader.
func (h *Handler) SetTemplates(templates map[string]*template.Template) {
	h.templatesMu.Lock()
	h.templates = templates
	h.templatesMu.Unlock()
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	h.templatesMu.RLock()
	defer h.templatesMu.RUnlock()
	tmpl, ok := h.templates[name]
	return tmpl, ok
}

func (h *Handler) pageSize() int {
	if h.Public.PageSize > 0 {
		return h.Public.PageSize
	}
	return resource.DefaultPageSize
}
