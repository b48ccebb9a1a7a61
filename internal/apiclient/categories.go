package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

// === Category Methods ===

func (c *APIClient) ListCategories(ctx context.Context, sess Session) ([]domain.Category, error) {
	return fetchList[domain.Category](ctx, c, sess, "/category", "Failed to fetch categories", "categories")
}

func (c *APIClient) CreateCategory(ctx context.Context, sess Session, req api.CategoryRequest) error {
	return c.exec(ctx, sess, "/category", Request{Method: http.MethodPost, Body: req}, "Failed to create category")
}

func (c *APIClient) UpdateCategory(ctx context.Context, sess Session, id string, req api.CategoryRequest) error {
	return c.exec(ctx, sess, "/category/"+escape(id), Request{Method: http.MethodPut, Body: req}, "Failed to update category")
}

func (c *APIClient) DeleteCategory(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/category/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete category")
}

// === Subcategory Methods ===

func (c *APIClient) ListSubcategories(ctx context.Context, sess Session) ([]domain.Subcategory, error) {
	return fetchList[domain.Subcategory](ctx, c, sess, "/subcategory", "Failed to fetch subcategories", "subcategories")
}

func (c *APIClient) ApproveSubcategory(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/subcategory/"+escape(id)+"/approve", Request{Method: http.MethodPatch}, "Failed to approve subcategory")
}

func (c *APIClient) RejectSubcategory(ctx context.Context, sess Session, id, reason string) error {
	return c.exec(ctx, sess, "/subcategory/"+escape(id)+"/reject", Request{
		Method: http.MethodPatch,
		Body:   api.RejectRequest{Reason: reason},
	}, "Failed to reject subcategory")
}

func (c *APIClient) DeleteSubcategory(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/subcategory/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete subcategory")
}
