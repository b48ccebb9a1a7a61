package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
)

// maxPreviewBytes bounds the Markdown accepted by the live preview.
const maxPreviewBytes = 1 << 20

type blogPreviewPage struct {
	Blog domain.Blog
	Body template.HTML
}

type previewRequest struct {
	Content string `json:"content"`
}

type previewResponse struct {
	HTML template.HTML `json:"html"`
}

func (h *Handler) BlogPreviewHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	blog, err := h.APIClient.GetBlog(r.Context(), middleware.Session(r), id)
	if err != nil {
		h.handleAPIError(w, r, "/blogs", err)
		return
	}

	body, err := h.Markdown.Render(blog.Content)
	if err != nil {
		logger.Log.ErrorContext(r.Context(), "rendering blog markdown", "blog_id", id, "error", err)
		h.redirectWithFlash(w, r, "/blogs", flashCookieError, "Could not render this blog post.")
		return
	}
	h.renderTemplate(w, r, "blog_preview.html", blogPreviewPage{Blog: blog, Body: body})
}

// MarkdownPreviewHandler renders the editor's Markdown for the live preview
// pane. The output is sanitized the same way as the stored post.
func (h *Handler) MarkdownPreviewHandler(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBytes)).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	body, err := h.Markdown.Render(req.Content)
	if err != nil {
		logger.Log.ErrorContext(r.Context(), "rendering markdown preview", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Could not render preview"})
		return
	}
	writeJSON(w, r, http.StatusOK, previewResponse{HTML: body})
}

