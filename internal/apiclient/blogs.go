package apiclient

import (
	"context"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/domain"
)

func (c *APIClient) ListBlogs(ctx context.Context, sess Session) ([]domain.Blog, error) {
	return fetchList[domain.Blog](ctx, c, sess, "/blogs", "Failed to fetch blogs", "blogs")
}

func (c *APIClient) GetBlog(ctx context.Context, sess Session, id string) (domain.Blog, error) {
	return fetchOne[domain.Blog](ctx, c, sess, "/blogs/"+escape(id), "Failed to fetch blog", "blog")
}

func (c *APIClient) CreateBlog(ctx context.Context, sess Session, req api.BlogRequest) error {
	return c.exec(ctx, sess, "/blogs", Request{Method: http.MethodPost, Body: req}, "Failed to create blog")
}

func (c *APIClient) UpdateBlog(ctx context.Context, sess Session, id string, req api.BlogRequest) error {
	return c.exec(ctx, sess, "/blogs/"+escape(id), Request{Method: http.MethodPut, Body: req}, "Failed to update blog")
}

func (c *APIClient) DeleteBlog(ctx context.Context, sess Session, id string) error {
	return c.exec(ctx, sess, "/blogs/"+escape(id), Request{Method: http.MethodDelete}, "Failed to delete blog")
}
